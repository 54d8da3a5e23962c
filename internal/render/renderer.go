// Package render composes schedule, standings, and player data into PNG
// images for the chat channel.
package render

import (
	"bytes"
	"context"
	"image"
	"log/slog"

	"github.com/ThatOhio/NHL-Bot/internal/logging"
)

// Renderer draws the bot's four image types. It is safe for concurrent use;
// per-image state lives on the stack and only the logo cache is shared.
type Renderer struct {
	fetcher ImageFetcher
	logos   *LogoCache
	logger  *slog.Logger
}

// New constructs a Renderer over the given image fetcher.
func New(fetcher ImageFetcher, logger *slog.Logger) *Renderer {
	return &Renderer{
		fetcher: fetcher,
		logos:   NewLogoCache(fetcher, logger),
		logger:  logger,
	}
}

// fetchDecoded retrieves and decodes an image, returning nil when the slot
// should be left blank.
func (r *Renderer) fetchDecoded(ctx context.Context, url string) image.Image {
	if url == "" {
		return nil
	}
	data, err := r.fetcher.FetchImage(ctx, url)
	if err != nil {
		logging.Warn(r.logger, "image fetch failed", logging.FieldURL, url, logging.FieldError, err)
		return nil
	}
	img, _, err := image.Decode(bytes.NewReader(data))
	if err != nil {
		logging.Warn(r.logger, "image decode failed", logging.FieldURL, url, logging.FieldError, err)
		return nil
	}
	return img
}
