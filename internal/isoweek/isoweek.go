// Package isoweek derives and reconstructs ISO 8601 week keys. Week numbers
// are assigned once at ingestion and week date ranges are rebuilt from the
// same definition, so the two can never disagree near year boundaries.
package isoweek

import "time"

// Of returns the ISO year and week containing t. Note the ISO year can
// differ from t's calendar year in the first and last days of a year.
func Of(t time.Time) (year, week int) {
	return t.ISOWeek()
}

// Bounds returns the Monday and Sunday of the given ISO (year, week).
func Bounds(year, week int) (start, end time.Time) {
	// January 4th is always inside ISO week 1.
	jan4 := time.Date(year, time.January, 4, 0, 0, 0, 0, time.UTC)
	daysSinceMonday := (int(jan4.Weekday()) + 6) % 7
	week1Monday := jan4.AddDate(0, 0, -daysSinceMonday)
	start = week1Monday.AddDate(0, 0, (week-1)*7)
	end = start.AddDate(0, 0, 6)
	return start, end
}
