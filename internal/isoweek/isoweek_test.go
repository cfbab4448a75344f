package isoweek

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestOf(t *testing.T) {
	year, week := Of(time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC))
	require.Equal(t, 2026, year)
	require.Equal(t, 6, week)

	// Jan 1 2027 is a Friday; it still belongs to ISO week 53 of 2026.
	year, week = Of(time.Date(2027, time.January, 1, 0, 0, 0, 0, time.UTC))
	require.Equal(t, 2026, year)
	require.Equal(t, 53, week)

	// Dec 29 2025 is a Monday opening ISO week 1 of 2026.
	year, week = Of(time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC))
	require.Equal(t, 2026, year)
	require.Equal(t, 1, week)
}

func TestBounds(t *testing.T) {
	start, end := Bounds(2026, 6)
	require.Equal(t, time.Date(2026, time.February, 2, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, time.February, 8, 0, 0, 0, 0, time.UTC), end)
	require.Equal(t, time.Monday, start.Weekday())
	require.Equal(t, time.Sunday, end.Weekday())

	start, end = Bounds(2026, 1)
	require.Equal(t, time.Date(2025, time.December, 29, 0, 0, 0, 0, time.UTC), start)
	require.Equal(t, time.Date(2026, time.January, 4, 0, 0, 0, 0, time.UTC), end)
}

func TestBounds_RoundTripsOf(t *testing.T) {
	for _, date := range []time.Time{
		time.Date(2026, time.February, 5, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.January, 1, 0, 0, 0, 0, time.UTC),
		time.Date(2026, time.December, 31, 0, 0, 0, 0, time.UTC),
		time.Date(2024, time.December, 30, 0, 0, 0, 0, time.UTC),
	} {
		year, week := Of(date)
		start, end := Bounds(year, week)
		require.False(t, date.Before(start), "date %s before start %s", date, start)
		require.False(t, date.After(end), "date %s after end %s", date, end)
	}
}
