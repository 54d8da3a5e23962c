package render

import (
	"bytes"
	"context"
	"strings"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
)

const (
	stripWidth  = 900
	stripHeight = 400

	stripLogoSize = 100
)

// UpcomingGames draws the 900x400 strip with one column per tracked team:
// name, both logos around a VS/@ marker, and the formatted start time.
func (r *Renderer) UpcomingGames(ctx context.Context, games []domain.NextGame) (*bytes.Buffer, error) {
	if len(games) == 0 {
		return nil, ErrNoData
	}

	dc := newCanvas(stripWidth, stripHeight)
	drawText(dc, "UPCOMING GAMES", stripWidth/2, 50, 0.5, 0.5, 40, colorWhite)

	colWidth := (stripWidth - 40) / 3
	for i, game := range games {
		center := float64(20 + i*colWidth + colWidth/2)
		y := 130.0

		drawText(dc, game.TeamName, center, y, 0.5, 0.5, 28, colorWhite)
		y += 80

		if logo := r.logos.Get(ctx, game.TeamAbbrev); logo != nil {
			scaled := scaleImage(logo, stripLogoSize, stripLogoSize)
			dc.DrawImage(scaled, int(center)-stripLogoSize-30, int(y)-stripLogoSize/2)
		}

		marker := "@"
		if game.IsHome {
			marker = "VS"
		}
		drawText(dc, marker, center, y, 0.5, 0.5, 24, colorMuted)

		if logo := r.logos.Get(ctx, game.OpponentAbbrev); logo != nil {
			scaled := scaleImage(logo, stripLogoSize, stripLogoSize)
			dc.DrawImage(scaled, int(center)+30, int(y)-stripLogoSize/2)
		}

		y += 90

		// Split "Day @ time" onto two lines so long dates fit the column.
		if day, clock, ok := strings.Cut(game.TimeText, " @ "); ok {
			drawText(dc, day, center, y, 0.5, 0.5, 22, colorBright)
			drawText(dc, clock, center, y+30, 0.5, 0.5, 22, colorBright)
		} else {
			drawText(dc, game.TimeText, center, y, 0.5, 0.5, 22, colorBright)
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
