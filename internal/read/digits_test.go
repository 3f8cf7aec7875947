package read_test

import (
	"testing"

	"github.com/ian-shakespeare/r7rs/internal/read"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAccumulateDigits(t *testing.T) {
	t.Parallel()

	valid := []struct {
		name   string
		value  string
		radix  read.Radix
		expect string
	}{
		{"binary", "101010", read.Binary, "42"},
		{"binaryLong", "1111111111111111111111111111111111111111111111111111111111111111111111", read.Binary, "1180591620717411303423"},
		{"octal", "1234567", read.Octal, "342391"},
		{"octalLong", "777777777777777777777777", read.Octal, "4722366482869645213695"},
		{"decimal", "123456789", read.Decimal, "123456789"},
		{"decimalZero", "0", read.Decimal, "0"},
		{"decimalLeadingZeros", "000120", read.Decimal, "120"},
		{"hexadecimal", "123456789abcdefABCDEF", read.Hexadecimal, "1375488932539311409843695"},
		{"hexadecimalUpperCase", "FFFFFFFFFFFFFFFFFFFF", read.Hexadecimal, "1208925819614629174706175"},
	}

	for _, input := range valid {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			magnitude, rest, err := read.AccumulateDigits([]byte(input.value), input.radix)
			require.NoError(t, err)
			assert.Equal(t, input.expect, magnitude.String())
			assert.Empty(t, rest)
		})
	}

	remainders := []struct {
		name   string
		value  string
		radix  read.Radix
		expect string
		rest   string
	}{
		{"binaryStopsAtTwo", "1012", read.Binary, "5", "2"},
		{"octalStopsAtEight", "178", read.Octal, "15", "8"},
		{"decimalStopsAtLetter", "19a", read.Decimal, "19", "a"},
		{"hexadecimalStopsAtG", "fg", read.Hexadecimal, "15", "g"},
		{"stopsAtWhitespace", "12 34", read.Decimal, "12", " 34"},
	}

	for _, input := range remainders {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			magnitude, rest, err := read.AccumulateDigits([]byte(input.value), input.radix)
			require.NoError(t, err)
			assert.Equal(t, input.expect, magnitude.String())
			assert.Equal(t, input.rest, string(rest))
		})
	}

	noDigits := []struct {
		name  string
		value string
		radix read.Radix
	}{
		{"empty", "", read.Decimal},
		{"binaryTwo", "2", read.Binary},
		{"octalNine", "9", read.Octal},
		{"decimalLetter", "a1", read.Decimal},
		{"hexadecimalG", "g", read.Hexadecimal},
		{"sign", "-1", read.Decimal},
		{"unsupportedRadix", "123", read.Radix(7)},
	}

	for _, input := range noDigits {
		t.Run(input.name, func(t *testing.T) {
			t.Parallel()

			_, rest, err := read.AccumulateDigits([]byte(input.value), input.radix)
			assert.ErrorIs(t, err, read.ErrNoDigits)
			assert.Equal(t, input.value, string(rest))

			var perr *read.ParseError
			require.ErrorAs(t, err, &perr)
			assert.Equal(t, 0, perr.Offset)
		})
	}

	t.Run("digitsParser", func(t *testing.T) {
		t.Parallel()

		magnitude, rest, err := read.Digits(read.Hexadecimal)([]byte("ff)"))
		require.NoError(t, err)
		assert.Equal(t, 0, magnitude.Cmp(read.NewMagnitude(255)))
		assert.Equal(t, ")", string(rest))
	})
}

func TestMagnitude(t *testing.T) {
	t.Parallel()

	t.Run("zeroValue", func(t *testing.T) {
		t.Parallel()

		var m read.Magnitude
		assert.True(t, m.IsZero())
		assert.Equal(t, "0", m.String())
		assert.Equal(t, 0, m.Cmp(read.NewMagnitude(0)))
	})

	t.Run("bigIntIsACopy", func(t *testing.T) {
		t.Parallel()

		m := read.NewMagnitude(7)
		v := m.BigInt()
		v.SetInt64(-1)
		assert.Equal(t, "7", m.String())
	})

	t.Run("cmp", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, -1, read.NewMagnitude(1).Cmp(read.NewMagnitude(2)))
		assert.Equal(t, 1, read.NewMagnitude(3).Cmp(read.NewMagnitude(2)))
	})
}
