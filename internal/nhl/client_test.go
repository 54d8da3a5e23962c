package nhl

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/ThatOhio/NHL-Bot/internal/testutil"
)

const weekScheduleFixture = `{
	"games": [
		{
			"startTimeUTC": "2026-01-14T00:00:00Z",
			"homeTeam": {"abbrev": "BUF"},
			"awayTeam": {"abbrev": "TOR"},
			"tvBroadcasts": [{"network": "MSG", "market": "H"}]
		},
		{
			"startTimeUTC": "2026-01-17T00:00:00Z",
			"homeTeam": {"abbrev": "SEA"},
			"awayTeam": {"abbrev": "BUF"},
			"tvBroadcasts": [{"network": "ESPN", "market": "N"}]
		}
	]
}`

const emptyScheduleFixture = `{"games": []}`

func newTestClient(doer *testutil.StubDoer, now time.Time) *Client {
	c := NewClient(Config{})
	c.httpClient = doer
	c.now = func() time.Time { return now }
	return c
}

func TestNextGameSkipsPastGames(t *testing.T) {
	doer := testutil.NewStubDoer(map[string]testutil.StubResponse{
		"/club-schedule/BUF/week/now": {Body: weekScheduleFixture},
	})
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	game, err := newTestClient(doer, now).NextGame(context.Background(), "BUF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.HomeAbbrev != "SEA" || game.AwayAbbrev != "BUF" {
		t.Fatalf("expected first future game, got %+v", game)
	}
	if len(game.Broadcasts) != 1 || game.Broadcasts[0].Network != "ESPN" {
		t.Fatalf("expected broadcasts mapped, got %+v", game.Broadcasts)
	}
}

func TestNextGameFallsBackToMonthWindow(t *testing.T) {
	doer := testutil.NewStubDoer(map[string]testutil.StubResponse{
		"/club-schedule/BUF/week/now":  {Body: emptyScheduleFixture},
		"/club-schedule/BUF/month/now": {Body: weekScheduleFixture},
	})
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	game, err := newTestClient(doer, now).NextGame(context.Background(), "BUF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if game.HomeAbbrev != "SEA" {
		t.Fatalf("expected month-window game, got %+v", game)
	}
}

func TestNextGameNoUpcoming(t *testing.T) {
	doer := testutil.NewStubDoer(map[string]testutil.StubResponse{
		"/club-schedule/BUF/week/now":  {Body: emptyScheduleFixture},
		"/club-schedule/BUF/month/now": {Body: emptyScheduleFixture},
	})
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	_, err := newTestClient(doer, now).NextGame(context.Background(), "BUF")
	if !errors.Is(err, ErrNoUpcomingGame) {
		t.Fatalf("expected ErrNoUpcomingGame, got %v", err)
	}
}

func TestNextGameSurfacesStatusError(t *testing.T) {
	doer := testutil.NewStubDoer(map[string]testutil.StubResponse{
		"/club-schedule/BUF/week/now": {Status: 503, Body: "unavailable"},
	})
	now := time.Date(2026, time.January, 15, 12, 0, 0, 0, time.UTC)

	_, err := newTestClient(doer, now).NextGame(context.Background(), "BUF")
	sErr, ok := AsStatusError(err)
	if !ok || sErr.StatusCode != 503 {
		t.Fatalf("expected 503 StatusError, got %v", err)
	}
}

func TestGetJSONSetsUserAgent(t *testing.T) {
	doer := testutil.NewStubDoer(map[string]testutil.StubResponse{
		"/standings/now": {Body: `{"standings": []}`},
	})

	_, err := newTestClient(doer, time.Now()).Standings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	reqs := doer.Requests()
	if len(reqs) != 1 {
		t.Fatalf("expected 1 request, got %d", len(reqs))
	}
	if got := reqs[0].Header.Get("User-Agent"); got != "Mozilla/5.0" {
		t.Fatalf("expected constant user agent, got %q", got)
	}
}

func TestStandingsMapsRows(t *testing.T) {
	doer := testutil.NewStubDoer(map[string]testutil.StubResponse{
		"/standings/now": {Body: `{
			"standings": [
				{
					"teamAbbrev": {"default": "BUF"},
					"teamName": {"default": "Buffalo Sabres"},
					"conferenceAbbrev": "E",
					"conferenceName": "Eastern",
					"divisionName": "Atlantic",
					"conferenceSequence": 5,
					"divisionSequence": 3,
					"wildcardSequence": 0,
					"gamesPlayed": 44,
					"wins": 25,
					"losses": 15,
					"otLosses": 4,
					"points": 54
				}
			]
		}`},
	})

	entries, err := newTestClient(doer, time.Now()).Standings(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry, got %d", len(entries))
	}
	e := entries[0]
	if e.TeamAbbrev != "BUF" || e.DivisionName != "Atlantic" || e.Points != 54 || e.OTLosses != 4 {
		t.Fatalf("unexpected mapping %+v", e)
	}
}

func TestTeamRosterPreservesGroupOrder(t *testing.T) {
	doer := testutil.NewStubDoer(map[string]testutil.StubResponse{
		"/roster/BUF/current": {Body: `{
			"forwards": [
				{"id": 1, "firstName": {"default": "Tage"}, "lastName": {"default": "Thompson"}, "positionCode": "C"}
			],
			"defensemen": [
				{"id": 2, "firstName": {"default": "Rasmus"}, "lastName": {"default": "Dahlin"}, "positionCode": "D"}
			],
			"goalies": [
				{"id": 3, "firstName": {"default": "Ukko-Pekka"}, "lastName": {"default": "Luukkonen"}, "positionCode": "G"}
			]
		}`},
	})

	players, err := newTestClient(doer, time.Now()).TeamRoster(context.Background(), "BUF")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(players) != 3 {
		t.Fatalf("expected 3 players, got %d", len(players))
	}
	if players[0].Position != "C" || players[1].Position != "D" || players[2].Position != "G" {
		t.Fatalf("expected forwards, defensemen, goalies order, got %+v", players)
	}
	if players[2].TeamAbbrev != "BUF" || players[2].FullName() != "Ukko-Pekka Luukkonen" {
		t.Fatalf("unexpected goalie mapping %+v", players[2])
	}
}

func TestPlayerLandingWithStats(t *testing.T) {
	doer := testutil.NewStubDoer(map[string]testutil.StubResponse{
		"/player/8478402/landing": {Body: `{
			"playerId": 8478402,
			"firstName": {"default": "Connor"},
			"lastName": {"default": "McDavid"},
			"sweaterNumber": 97,
			"position": "C",
			"currentTeamAbbrev": "EDM",
			"fullTeamName": {"default": "Edmonton Oilers"},
			"headshot": "https://assets.nhle.com/mugs/nhl/20252026/EDM/8478402.png",
			"featuredStats": {
				"season": 20252026,
				"regularSeason": {
					"subSeason": {"gamesPlayed": 44, "goals": 20, "assists": 50, "points": 70, "plusMinus": 12, "shots": 140}
				}
			}
		}`},
	})

	details, err := newTestClient(doer, time.Now()).PlayerLanding(context.Background(), 8478402)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !details.HasStats || details.Stats.Points != 70 {
		t.Fatalf("expected stats mapped, got %+v", details)
	}
	if details.Season != "20252026" || details.TeamName != "Edmonton Oilers" {
		t.Fatalf("unexpected details %+v", details)
	}
	if details.IsGoalie() {
		t.Fatalf("expected skater, got goalie for %+v", details)
	}
}

func TestPlayerLandingWithoutStats(t *testing.T) {
	doer := testutil.NewStubDoer(map[string]testutil.StubResponse{
		"/player/99/landing": {Body: `{
			"playerId": 99,
			"firstName": {"default": "Fresh"},
			"lastName": {"default": "Rookie"},
			"position": "G",
			"featuredStats": {"regularSeason": {}}
		}`},
	})

	details, err := newTestClient(doer, time.Now()).PlayerLanding(context.Background(), 99)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if details.HasStats {
		t.Fatalf("expected no stats, got %+v", details)
	}
	if details.Season != "N/A" {
		t.Fatalf("expected N/A season, got %q", details.Season)
	}
	if !details.IsGoalie() {
		t.Fatalf("expected goalie")
	}
}

func TestClubScheduleSchemaError(t *testing.T) {
	doer := testutil.NewStubDoer(map[string]testutil.StubResponse{
		"/club-schedule/BUF/week/now": {Body: `{"games": [{"startTimeUTC": "not-a-time"}]}`},
	})

	_, err := newTestClient(doer, time.Now()).ClubScheduleWeek(context.Background(), "BUF")
	if _, ok := AsSchemaError(err); !ok {
		t.Fatalf("expected SchemaError, got %v", err)
	}
}
