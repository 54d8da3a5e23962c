package render

import (
	"bytes"
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
)

const (
	cardWidth  = 500
	cardHeight = 700

	cardStatsY = 500
)

type statColumn struct {
	label string
	value string
	width int
}

// statColumns selects the stat set for the card. Goalies get narrower
// columns except for the two decimal stats; skaters split the row evenly.
func statColumns(d domain.PlayerDetails) []statColumn {
	if !d.HasStats {
		return nil
	}

	s := d.Stats
	if d.IsGoalie() {
		return []statColumn{
			{"GP", strconv.Itoa(s.GamesPlayed), 60},
			{"W", strconv.Itoa(s.Wins), 60},
			{"L", strconv.Itoa(s.Losses), 60},
			{"OTL", strconv.Itoa(s.OTLosses), 60},
			{"GAA", fmt.Sprintf("%.2f", s.GoalsAgainstAvg), 100},
			{"SV%", fmt.Sprintf("%.3f", s.SavePctg), 100},
		}
	}

	width := (cardWidth - 60) / 6
	return []statColumn{
		{"GP", strconv.Itoa(s.GamesPlayed), width},
		{"G", strconv.Itoa(s.Goals), width},
		{"A", strconv.Itoa(s.Assists), width},
		{"P", strconv.Itoa(s.Points), width},
		{"+/-", strconv.Itoa(s.PlusMinus), width},
		{"SOG", strconv.Itoa(s.Shots), width},
	}
}

// PlayerCard draws a 500x700 card: headshot, team logo, name and number,
// and the position-appropriate current-season stat row.
func (r *Renderer) PlayerCard(ctx context.Context, d domain.PlayerDetails) (*bytes.Buffer, error) {
	dc := newCanvas(cardWidth, cardHeight)

	if headshot := r.fetchDecoded(ctx, d.HeadshotURL); headshot != nil {
		dc.DrawImage(scaleImage(headshot, 350, 350), 75, 120)
	}
	if logo := r.logos.Get(ctx, d.TeamAbbrev); logo != nil {
		dc.DrawImage(scaleImage(logo, 100, 100), cardWidth-120, 20)
	}

	drawText(dc, d.FirstName, 30, 30, 0, 1, 25, colorBright)
	drawText(dc, strings.ToUpper(d.LastName), 30, 60, 0, 1, 40, colorWhite)
	info := fmt.Sprintf("#%d | %s | %s", d.SweaterNumber, d.Position, d.TeamName)
	drawText(dc, info, 30, 110, 0, 1, 25, colorMuted)

	setColor(dc, colorFaint)
	dc.SetLineWidth(2)
	dc.DrawLine(30, cardStatsY-10, cardWidth-30, cardStatsY-10)
	dc.Stroke()

	columns := statColumns(d)
	if columns == nil {
		drawText(dc, "No stats available for current season",
			cardWidth/2, cardStatsY+50, 0.5, 0.5, 25, colorMuted)
	} else {
		x := 30.0
		for _, col := range columns {
			center := x + float64(col.width)/2
			drawText(dc, col.label, center, cardStatsY+20, 0.5, 0.5, 20, colorMuted)
			drawText(dc, col.value, center, cardStatsY+60, 0.5, 0.5, 35, colorWhite)
			x += float64(col.width)
		}
	}

	footer := "NHL Stats Season " + d.Season
	drawText(dc, footer, cardWidth/2, cardHeight-30, 0.5, 0.5, 15, colorFaint)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
