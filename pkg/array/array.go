package array

// Returns the length of the longest prefix of arr whose elements all satisfy
// cond.
func Span[T any](arr []T, cond func(T) bool) int {
	i := 0
	for i < len(arr) && cond(arr[i]) {
		i++
	}
	return i
}

// Returns the index of the first element that is true on the condition.
// Otherwise, returns -1.
func Some[T any](arr []T, cond func(T) bool) int {
	if i := Span(arr, func(elem T) bool { return !cond(elem) }); i < len(arr) {
		return i
	}
	return -1
}

// Returns true if the array contains the given value.
func Contains[T comparable](arr []T, value T) bool {
	return Some(arr, func(elem T) bool {
		return elem == value
	}) > -1
}

// Returns true if arr starts with every element of prefix, in order.
func HasPrefix[T comparable](arr, prefix []T) bool {
	if len(prefix) > len(arr) {
		return false
	}
	for i := range prefix {
		if arr[i] != prefix[i] {
			return false
		}
	}
	return true
}
