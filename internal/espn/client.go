// Package espn talks to ESPN's public endpoints: the NHL scoreboard used to
// refine streaming-availability answers, and the logo CDN.
package espn

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/ThatOhio/NHL-Bot/internal/timeutil"
)

const (
	defaultBaseURL     = "https://site.api.espn.com/apis/site/v2/sports/hockey/nhl"
	defaultHTTPTimeout = 10 * time.Second

	userAgent = "Mozilla/5.0"
)

// Config controls how the client reaches ESPN.
type Config struct {
	BaseURL    string
	HTTPClient *http.Client
}

// Client fetches the day's NHL scoreboard.
type Client struct {
	baseURL    string
	httpClient httpDoer
}

type httpDoer interface {
	Do(req *http.Request) (*http.Response, error)
}

// NewClient constructs an ESPN client with the provided configuration.
func NewClient(cfg Config) *Client {
	base := cfg.BaseURL
	if base == "" {
		base = defaultBaseURL
	}
	var doer httpDoer = cfg.HTTPClient
	if cfg.HTTPClient == nil {
		doer = &http.Client{Timeout: defaultHTTPTimeout}
	}
	return &Client{
		baseURL:    strings.TrimSuffix(base, "/"),
		httpClient: doer,
	}
}

// Event is one scoreboard entry reduced to what the broadcast classifier
// needs: who is playing and which networks carry the game.
type Event struct {
	Competitors    []string
	BroadcastNames []string
}

type scoreboardResponse struct {
	Events []struct {
		Competitions []struct {
			Competitors []struct {
				Team struct {
					Abbreviation string `json:"abbreviation"`
				} `json:"team"`
			} `json:"competitors"`
			Broadcasts []struct {
				Names []string `json:"names"`
			} `json:"broadcasts"`
		} `json:"competitions"`
	} `json:"events"`
}

// Scoreboard returns the events for the given start time's game date. The
// slate is keyed by Eastern calendar date, so an evening game's next-day
// UTC timestamp still lands on the right slate. A non-200 or decode failure
// returns an error; callers treat any error as "no secondary data".
func (c *Client) Scoreboard(ctx context.Context, date time.Time) ([]Event, error) {
	url := fmt.Sprintf("%s/scoreboard?dates=%s", c.baseURL, timeutil.ScoreboardDate(timeutil.Eastern(date)))

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
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil, fmt.Errorf("scoreboard status %d for %s", resp.StatusCode, url)
	}

	var payload scoreboardResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, err
	}

	events := make([]Event, 0, len(payload.Events))
	for _, e := range payload.Events {
		var event Event
		for _, comp := range e.Competitions {
			for _, competitor := range comp.Competitors {
				if abbr := competitor.Team.Abbreviation; abbr != "" {
					event.Competitors = append(event.Competitors, abbr)
				}
			}
			for _, b := range comp.Broadcasts {
				event.BroadcastNames = append(event.BroadcastNames, b.Names...)
			}
		}
		events = append(events, event)
	}
	return events, nil
}
