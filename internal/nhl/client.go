package nhl

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
)

// Config controls how the client reaches the public NHL API.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches schedules, standings, rosters, and player records from
// api-web.nhle.com and maps them to domain models.
type Client struct {
	baseURL    string
	httpClient httpDoer
	now        func() time.Time
}

// NewClient constructs a client with the provided configuration.
func NewClient(cfg Config) *Client {
	return &Client{
		baseURL:    normalizeBaseURL(cfg.BaseURL),
		httpClient: resolveHTTPClient(cfg.HTTPClient),
		now:        time.Now,
	}
}

// ClubScheduleWeek returns the team's week-ahead schedule window.
func (c *Client) ClubScheduleWeek(ctx context.Context, team string) ([]domain.Game, error) {
	return c.clubSchedule(ctx, team, "week")
}

// ClubScheduleMonth returns the team's month-ahead schedule window.
func (c *Client) ClubScheduleMonth(ctx context.Context, team string) ([]domain.Game, error) {
	return c.clubSchedule(ctx, team, "month")
}

func (c *Client) clubSchedule(ctx context.Context, team, window string) ([]domain.Game, error) {
	url := fmt.Sprintf("%s/club-schedule/%s/%s/now", c.baseURL, team, window)
	var payload scheduleResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	games := make([]domain.Game, 0, len(payload.Games))
	for _, g := range payload.Games {
		mapped, err := mapGame(g)
		if err != nil {
			return nil, &SchemaError{URL: url, Err: err}
		}
		games = append(games, mapped)
	}
	return games, nil
}

// NextGame scans the week window, then the month window, for the first game
// whose start time is strictly after now.
func (c *Client) NextGame(ctx context.Context, team string) (domain.Game, error) {
	now := c.now()

	games, err := c.ClubScheduleWeek(ctx, team)
	if err != nil {
		return domain.Game{}, err
	}
	if g, ok := firstFutureGame(games, now); ok {
		return g, nil
	}

	games, err = c.ClubScheduleMonth(ctx, team)
	if err != nil {
		return domain.Game{}, err
	}
	if g, ok := firstFutureGame(games, now); ok {
		return g, nil
	}

	return domain.Game{}, ErrNoUpcomingGame
}

func firstFutureGame(games []domain.Game, now time.Time) (domain.Game, bool) {
	for _, g := range games {
		if g.StartTimeUTC.After(now) {
			return g, true
		}
	}
	return domain.Game{}, false
}

// Standings returns the current league standings snapshot.
func (c *Client) Standings(ctx context.Context) ([]domain.StandingsEntry, error) {
	url := c.baseURL + "/standings/now"
	var payload standingsResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}

	entries := make([]domain.StandingsEntry, 0, len(payload.Standings))
	for _, row := range payload.Standings {
		entries = append(entries, mapStandingsRow(row))
	}
	return entries, nil
}

// TeamRoster returns the team's current roster: forwards, then defensemen,
// then goalies, each group in feed order.
func (c *Client) TeamRoster(ctx context.Context, team string) ([]domain.Player, error) {
	url := fmt.Sprintf("%s/roster/%s/current", c.baseURL, team)
	var payload rosterResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return nil, err
	}
	return mapRoster(team, payload), nil
}

// PlayerLanding returns the detail record for a single player.
func (c *Client) PlayerLanding(ctx context.Context, playerID int) (domain.PlayerDetails, error) {
	url := fmt.Sprintf("%s/player/%d/landing", c.baseURL, playerID)
	var payload landingResponse
	if err := c.getJSON(ctx, url, &payload); err != nil {
		return domain.PlayerDetails{}, err
	}
	return mapLanding(payload), nil
}

// FetchImage retrieves raw image bytes from an absolute URL, using the same
// user agent and failure taxonomy as the JSON endpoints.
func (c *Client) FetchImage(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, err
	}
	req.Header.Set("User-Agent", userAgent)

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, &StatusError{URL: url, StatusCode: resp.StatusCode}
	}
	return io.ReadAll(resp.Body)
}

func (c *Client) getJSON(ctx context.Context, url string, dest any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return err
	}
	req.Header.Set("User-Agent", userAgent)
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		_, _ = io.Copy(io.Discard, resp.Body)
		return &StatusError{URL: url, StatusCode: resp.StatusCode}
	}

	if err := json.NewDecoder(resp.Body).Decode(dest); err != nil {
		return &SchemaError{URL: url, Err: err}
	}
	return nil
}
