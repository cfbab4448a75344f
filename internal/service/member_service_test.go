package service

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestParseSheetDate_CommonLayouts(t *testing.T) {
	want := time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC)

	for _, raw := range []string{"2024-03-01", "2024/03/01", "3/1/2024", "03-01-24"} {
		got, err := parseSheetDate(raw)
		require.NoError(t, err, "layout %q", raw)
		require.True(t, want.Equal(got), "layout %q gave %s", raw, got)
	}
}

func TestParseSheetDate_ExcelSerialNumber(t *testing.T) {
	// 45352 is 2024-03-01 in the 1900 date system.
	got, err := parseSheetDate("45352")
	require.NoError(t, err)
	require.Equal(t, time.Date(2024, time.March, 1, 0, 0, 0, 0, time.UTC), got)
}

func TestParseSheetDate_Rejects(t *testing.T) {
	for _, raw := range []string{"", "  ", "yesterday", "-5"} {
		_, err := parseSheetDate(raw)
		require.Error(t, err, "input %q", raw)
	}
}
