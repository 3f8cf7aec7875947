package read

// The long spelling of each value is tried before the short one so "#true"
// is never read as "#t" followed by "rue".
var parseBoolean Parser[bool] = alt("boolean #t, #true, #f or #false",
	terminated(value("#true", true)),
	terminated(value("#t", true)),
	terminated(value("#false", false)),
	terminated(value("#f", false)),
)

// ParseBoolean reads #t, #true, #f or #false surrounded by optional
// whitespace.
var ParseBoolean = Trim(parseBoolean)
