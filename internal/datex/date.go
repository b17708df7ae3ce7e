// Package datex provides helpers for the ISO calendar dates (YYYY-MM-DD)
// the tracker stores and compares. All arithmetic is in whole days on the
// local calendar.
package datex

import "time"

// Layout is the date format used everywhere in the persisted store.
const Layout = "2006-01-02"

// Format renders t as an ISO calendar date, discarding the time of day.
func Format(t time.Time) string {
	return t.Format(Layout)
}

// TodayISO returns the current local date as an ISO calendar date.
func TodayISO() string {
	return Format(time.Now())
}

// Parse converts an ISO calendar date back into a time.Time (midnight,
// location-less). It returns an error for anything that is not a valid
// YYYY-MM-DD date.
func Parse(s string) (time.Time, error) {
	return time.Parse(Layout, s)
}

// AddDays shifts t by n whole days. n may be negative.
func AddDays(t time.Time, n int) time.Time {
	return t.AddDate(0, 0, n)
}
