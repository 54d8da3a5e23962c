// Package timeutil holds the date formats and reference zone shared by the
// upstream clients.
package timeutil

import "time"

// DateLayout is the canonical YYYY-MM-DD day key used when grouping games
// by date.
const DateLayout = "2006-01-02"

// scoreboardLayout is the compact YYYYMMDD form the ESPN scoreboard API
// expects in its dates query parameter.
const scoreboardLayout = "20060102"

// Game dates are reckoned in US Eastern, the league's reference zone; an
// evening game's UTC timestamp often lands on the next calendar day.
var eastern = loadEastern()

func loadEastern() *time.Location {
	loc, err := time.LoadLocation("America/New_York")
	if err != nil {
		return time.UTC
	}
	return loc
}

// Eastern converts a time to the league's reference zone.
func Eastern(t time.Time) time.Time {
	return t.In(eastern)
}

// FormatDate formats a time as a YYYY-MM-DD day key in its current location.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// ScoreboardDate formats a time the way the ESPN scoreboard API expects.
func ScoreboardDate(t time.Time) string {
	return t.Format(scoreboardLayout)
}
