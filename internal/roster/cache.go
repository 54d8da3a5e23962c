// Package roster maintains the league-wide player list used for name search.
package roster

import (
	"context"
	"log/slog"
	"strings"
	"sync"
	"time"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
	"github.com/ThatOhio/NHL-Bot/internal/logging"
)

const (
	defaultMaxAge = 24 * time.Hour
	// Hard cap per team fetch so one slow club cannot stall the whole
	// refresh fan-out.
	defaultFetchTimeout = 8 * time.Second
)

// Directory is the slice of the NHL client the cache needs.
type Directory interface {
	Standings(ctx context.Context) ([]domain.StandingsEntry, error)
	TeamRoster(ctx context.Context, team string) ([]domain.Player, error)
}

// Cache holds the last-fetched flat list of all league players plus the
// completion time of the last full refresh. The list is rebuilt off-cache
// and swapped in whole, so readers never see a partial refresh.
type Cache struct {
	source       Directory
	logger       *slog.Logger
	maxAge       time.Duration
	fetchTimeout time.Duration
	now          func() time.Time

	// refreshMu serializes refreshes so two commands arriving together do
	// one upstream sweep instead of two.
	refreshMu sync.Mutex

	mu          sync.RWMutex
	players     []domain.Player
	lastRefresh time.Time
}

// Option tweaks cache construction.
type Option func(*Cache)

// WithMaxAge overrides the staleness threshold.
func WithMaxAge(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.maxAge = d
		}
	}
}

// WithFetchTimeout overrides the per-team fetch deadline.
func WithFetchTimeout(d time.Duration) Option {
	return func(c *Cache) {
		if d > 0 {
			c.fetchTimeout = d
		}
	}
}

// WithClock injects the time source.
func WithClock(now func() time.Time) Option {
	return func(c *Cache) {
		if now != nil {
			c.now = now
		}
	}
}

// NewCache constructs an empty cache over the given directory.
func NewCache(source Directory, logger *slog.Logger, opts ...Option) *Cache {
	c := &Cache{
		source:       source,
		logger:       logger,
		maxAge:       defaultMaxAge,
		fetchTimeout: defaultFetchTimeout,
		now:          time.Now,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Search returns every cached player whose "First Last" name contains the
// query, case-insensitively, in cache order. It refreshes first when the
// cache is empty or stale; a refresh that fails outright leaves any stale
// list serving.
func (c *Cache) Search(ctx context.Context, name string) []domain.Player {
	if c.stale() {
		c.refresh(ctx)
	}

	query := strings.ToLower(name)

	c.mu.RLock()
	defer c.mu.RUnlock()

	var matches []domain.Player
	for _, p := range c.players {
		if strings.Contains(strings.ToLower(p.FullName()), query) {
			matches = append(matches, p)
		}
	}
	return matches
}

// Players returns a snapshot of the cached list.
func (c *Cache) Players() []domain.Player {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]domain.Player, len(c.players))
	copy(out, c.players)
	return out
}

// LastRefresh returns the completion time of the last successful refresh.
func (c *Cache) LastRefresh() time.Time {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.lastRefresh
}

func (c *Cache) stale() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	if len(c.players) == 0 || c.lastRefresh.IsZero() {
		return true
	}
	return c.now().Sub(c.lastRefresh) > c.maxAge
}

// refresh enumerates teams from the standings and fetches every roster
// concurrently, joining before the swap. A team whose fetch fails
// contributes zero players; a failed standings fetch leaves the cache
// untouched.
func (c *Cache) refresh(ctx context.Context) {
	c.refreshMu.Lock()
	defer c.refreshMu.Unlock()

	// A caller that queued behind an in-flight refresh reuses its result.
	if !c.stale() {
		return
	}

	entries, err := c.source.Standings(ctx)
	if err != nil {
		logging.Warn(c.logger, "roster refresh skipped, standings fetch failed", logging.FieldError, err)
		return
	}

	teams := make([]string, 0, len(entries))
	for _, e := range entries {
		teams = append(teams, e.TeamAbbrev)
	}

	// Indexed results keep team-iteration order regardless of which fetch
	// finishes first.
	results := make([][]domain.Player, len(teams))
	var wg sync.WaitGroup
	for i, team := range teams {
		wg.Add(1)
		go func(i int, team string) {
			defer wg.Done()
			fetchCtx, cancel := context.WithTimeout(ctx, c.fetchTimeout)
			defer cancel()

			players, err := c.source.TeamRoster(fetchCtx, team)
			if err != nil {
				logging.Warn(c.logger, "team roster fetch failed", logging.FieldTeam, team, logging.FieldError, err)
				return
			}
			results[i] = players
		}(i, team)
	}
	wg.Wait()

	var all []domain.Player
	for _, players := range results {
		all = append(all, players...)
	}

	c.mu.Lock()
	c.players = all
	c.lastRefresh = c.now()
	c.mu.Unlock()

	logging.Info(c.logger, "roster cache refreshed",
		logging.FieldCount, len(all), "teams", len(teams))
}
