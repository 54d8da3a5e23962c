package render

import (
	"bytes"
	"context"
	"image"
	"log/slog"
	"strings"
	"sync"

	// Register decoders for the PNG logos and JPEG headshots served by the
	// upstream CDNs.
	_ "image/jpeg"
	_ "image/png"

	"github.com/ThatOhio/NHL-Bot/internal/espn"
	"github.com/ThatOhio/NHL-Bot/internal/logging"
)

// ImageFetcher retrieves raw image bytes; failures mean the slot is skipped.
type ImageFetcher interface {
	FetchImage(ctx context.Context, url string) ([]byte, error)
}

// LogoCache lazily fetches and decodes team logos, keyed by lowercase
// abbreviation. Entries never expire; logos do not change within a process
// lifetime.
type LogoCache struct {
	fetcher ImageFetcher
	logger  *slog.Logger

	mu    sync.Mutex
	logos map[string]image.Image
}

// NewLogoCache constructs an empty logo cache over the fetcher.
func NewLogoCache(fetcher ImageFetcher, logger *slog.Logger) *LogoCache {
	return &LogoCache{
		fetcher: fetcher,
		logger:  logger,
		logos:   make(map[string]image.Image),
	}
}

// Get returns the decoded logo for a team, fetching it on first request.
// A fetch or decode failure returns nil and is not cached, so a transient
// CDN error does not blank the team for the process lifetime.
func (lc *LogoCache) Get(ctx context.Context, teamAbbrev string) image.Image {
	key := strings.ToLower(teamAbbrev)

	lc.mu.Lock()
	cached, ok := lc.logos[key]
	lc.mu.Unlock()
	if ok {
		return cached
	}

	data, err := lc.fetcher.FetchImage(ctx, espn.LogoURL(teamAbbrev))
	if err != nil {
		logging.Warn(lc.logger, "logo fetch failed", logging.FieldTeam, teamAbbrev, logging.FieldError, err)
		return nil
	}

	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logging.Warn(lc.logger, "logo decode failed", logging.FieldTeam, teamAbbrev, logging.FieldError, err)
		return nil
	}

	lc.mu.Lock()
	lc.logos[key] = img
	lc.mu.Unlock()
	return img
}
