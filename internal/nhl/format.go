package nhl

import (
	"context"
	"fmt"
	"time"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
	"github.com/ThatOhio/NHL-Bot/internal/timeutil"
)

// FormatGameInfo renders "<AWAY> @ <HOME> <time>", with the start time
// phrased relative to the current Eastern calendar date: "Today" for the
// same date, the weekday for 1-6 days out, and a full date beyond that.
func FormatGameInfo(g domain.Game, now time.Time) string {
	return fmt.Sprintf("%s @ %s %s", g.AwayAbbrev, g.HomeAbbrev, FormatGameTime(g, now))
}

// FormatGameTime renders only the relative-date start time of a game,
// e.g. "Today @ 7:00:00 PM" or "Saturday @ 1:00:00 PM".
func FormatGameTime(g domain.Game, now time.Time) string {
	start := timeutil.Eastern(g.StartTimeUTC)
	days := calendarDaysBetween(timeutil.Eastern(now), start)
	clock := start.Format("3:04:05 PM")

	switch {
	case days == 0:
		return "Today @ " + clock
	case days > 0 && days < 7:
		return start.Format("Monday") + " @ " + clock
	default:
		return start.Format("Monday, January 2, 2006 3:04:05 PM MST")
	}
}

// NextGameInfo fetches the next game for a team and formats it in one step.
func (c *Client) NextGameInfo(ctx context.Context, team string) (string, error) {
	game, err := c.NextGame(ctx, team)
	if err != nil {
		return "", err
	}
	return FormatGameInfo(game, c.now()), nil
}

// calendarDaysBetween counts whole calendar days from one date to another,
// ignoring the time of day on either side.
func calendarDaysBetween(from, to time.Time) int {
	f := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	t := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(t.Sub(f).Hours() / 24)
}
