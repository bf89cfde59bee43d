package pricing

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFormatParseRoundTrip(t *testing.T) {
	cases := []struct {
		min, max int
	}{
		{0, 0},
		{500, 500},
		{1500, 3000},
		{999, 1000},
		{12500, 125000},
	}
	for _, c := range cases {
		s := FormatRange(c.min, c.max)
		min, max, ok := ParseRange(s)
		require.True(t, ok, "formatted string %q must parse", s)
		assert.Equal(t, c.min, min)
		assert.Equal(t, c.max, max)
	}
}

func TestFormatRangeGrouping(t *testing.T) {
	assert.Equal(t, "Rs. 1,500 - 3,000", FormatRange(1500, 3000))
	assert.Equal(t, "Rs. 999 - 999", FormatRange(999, 999))
	assert.Equal(t, "Rs. 1,250,000 - 1,250,000", FormatRange(1250000, 1250000))
}

func TestParseRangeFallsBackToZero(t *testing.T) {
	min, max, ok := ParseRange("price on request")
	assert.False(t, ok)
	assert.Zero(t, min)
	assert.Zero(t, max)

	// single amount: both bounds collapse onto it
	min, max, ok = ParseRange("Rs. 2,500")
	assert.True(t, ok)
	assert.Equal(t, 2500, min)
	assert.Equal(t, 2500, max)
}

func TestParseAmount(t *testing.T) {
	n, ok := ParseAmount("Rs. 1,999")
	assert.True(t, ok)
	assert.Equal(t, 1999, n)

	n, ok = ParseAmount("contact us")
	assert.False(t, ok)
	assert.Zero(t, n)
}

func TestMatchesBracketBoundaries(t *testing.T) {
	cases := []struct {
		amount  int
		bracket string
		want    bool
	}{
		{1999, BracketUnder2000, true},
		{1999, Bracket2000to4000, false},
		{2000, BracketUnder2000, false},
		{2000, Bracket2000to4000, true},
		{4000, Bracket2000to4000, true},
		{4000, Bracket4000to6000, true},
		{4001, Bracket2000to4000, false},
		{4001, Bracket4000to6000, true},
		{6000, Bracket4000to6000, true},
		{6000, BracketOver6000, false},
		{6001, Bracket4000to6000, false},
		{6001, BracketOver6000, true},
	}
	for _, c := range cases {
		got := MatchesBracket(c.amount, true, c.bracket)
		assert.Equalf(t, c.want, got, "amount=%d bracket=%s", c.amount, c.bracket)
	}
}

func TestUnparsableMatchesOnlyAll(t *testing.T) {
	assert.True(t, MatchesBracket(0, false, BracketAll))
	assert.True(t, MatchesBracket(0, false, ""))
	for _, b := range []string{BracketUnder2000, Bracket2000to4000, Bracket4000to6000, BracketOver6000} {
		assert.Falsef(t, MatchesBracket(0, false, b), "bracket=%s", b)
	}
}
