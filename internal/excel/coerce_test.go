package excel

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

func TestParseCount(t *testing.T) {
	require.Equal(t, 3, ParseCount("3"))
	require.Equal(t, 3, ParseCount(" 3 "))
	require.Equal(t, 2, ParseCount("2.7"), "fractional counters truncate")
	require.Equal(t, 0, ParseCount(""))
	require.Equal(t, 0, ParseCount("n/a"))
	require.Equal(t, -1, ParseCount("-1"))
}

func TestParseAmount(t *testing.T) {
	require.True(t, decimal.NewFromInt(5000).Equal(ParseAmount("5000")))
	require.True(t, decimal.RequireFromString("1234.56").Equal(ParseAmount("1234.56")))
	require.True(t, decimal.Zero.Equal(ParseAmount("")))
	require.True(t, decimal.Zero.Equal(ParseAmount("abc")))
	require.True(t, decimal.Zero.Equal(ParseAmount("-500")), "negative amounts coerce to zero")
}
