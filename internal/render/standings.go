package render

import (
	"bytes"
	"context"
	"fmt"
	"sort"
	"strings"

	"github.com/fogleman/gg"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
)

const (
	maxDivisionLeaders   = 3
	maxWildcardsPerConf  = 2
	standingsBoardWidth  = 1200
	standingsBoardHeight = 650
)

// DivisionGroup holds a division's playoff-position leaders.
type DivisionGroup struct {
	Name  string
	Teams []domain.StandingsEntry
}

// conferenceGroups splits one conference's entries into per-division leader
// groups (top three non-wildcard teams by division sequence, divisions in
// name order) and the conference's wildcard pair (by wildcard sequence).
func conferenceGroups(entries []domain.StandingsEntry, confAbbrev string) ([]DivisionGroup, []domain.StandingsEntry) {
	var conf []domain.StandingsEntry
	for _, e := range entries {
		if e.ConferenceAbbrev == confAbbrev {
			conf = append(conf, e)
		}
	}

	divNames := make([]string, 0, 3)
	seen := make(map[string]bool)
	for _, e := range conf {
		if !seen[e.DivisionName] {
			seen[e.DivisionName] = true
			divNames = append(divNames, e.DivisionName)
		}
	}
	sort.Strings(divNames)

	groups := make([]DivisionGroup, 0, len(divNames))
	for _, name := range divNames {
		var teams []domain.StandingsEntry
		for _, e := range conf {
			if e.DivisionName == name && e.WildcardSequence == 0 {
				teams = append(teams, e)
			}
		}
		sort.SliceStable(teams, func(i, j int) bool {
			return teams[i].DivisionSequence < teams[j].DivisionSequence
		})
		if len(teams) > maxDivisionLeaders {
			teams = teams[:maxDivisionLeaders]
		}
		groups = append(groups, DivisionGroup{Name: name, Teams: teams})
	}

	var wildcards []domain.StandingsEntry
	for _, e := range conf {
		if e.WildcardSequence == 1 || e.WildcardSequence == 2 {
			wildcards = append(wildcards, e)
		}
	}
	sort.SliceStable(wildcards, func(i, j int) bool {
		return wildcards[i].WildcardSequence < wildcards[j].WildcardSequence
	})
	if len(wildcards) > maxWildcardsPerConf {
		wildcards = wildcards[:maxWildcardsPerConf]
	}

	return groups, wildcards
}

// conferenceOrder returns one conference's entries sorted by conference
// sequence, for the full-league board.
func conferenceOrder(entries []domain.StandingsEntry, confAbbrev string) []domain.StandingsEntry {
	var conf []domain.StandingsEntry
	for _, e := range entries {
		if e.ConferenceAbbrev == confAbbrev {
			conf = append(conf, e)
		}
	}
	sort.SliceStable(conf, func(i, j int) bool {
		return conf[i].ConferenceSequence < conf[j].ConferenceSequence
	})
	return conf
}

// drawTeamRow draws a logo, team name, and "GP | W-L-OTL | PTS" summary on
// one 32px row.
func (r *Renderer) drawTeamRow(ctx context.Context, dc *gg.Context, e domain.StandingsEntry, x, y float64) {
	if logo := r.logos.Get(ctx, e.TeamAbbrev); logo != nil {
		dc.DrawImage(scaleImage(logo, 32, 32), int(x), int(y))
	}

	drawText(dc, e.TeamName, x+45, y+16, 0, 0.5, 18, colorWhite)

	record := fmt.Sprintf("%d-%d-%d", e.Wins, e.Losses, e.OTLosses)
	stats := fmt.Sprintf("%d GP | %s | %d PTS", e.GamesPlayed, record, e.Points)
	drawText(dc, stats, x+500, y+16, 1, 0.5, 18, colorBright)
}

func (r *Renderer) drawConferenceColumn(ctx context.Context, dc *gg.Context, groups []DivisionGroup, wildcards []domain.StandingsEntry, title string, titleColor color, x float64) {
	y := 105.0
	drawText(dc, title, x+250, y, 0.5, 0.5, 30, titleColor)
	y += 50

	for _, group := range groups {
		drawText(dc, strings.ToUpper(group.Name), x, y, 0, 1, 22, colorMuted)
		y += 30
		for _, team := range group.Teams {
			r.drawTeamRow(ctx, dc, team, x, y)
			y += 40
		}
		y += 15
	}

	drawText(dc, "WILD CARD", x, y, 0, 1, 22, colorMuted)
	y += 30
	for _, team := range wildcards {
		r.drawTeamRow(ctx, dc, team, x, y)
		y += 40
	}
}

// PlayoffPicture draws the 1200x650 playoff board: division leaders and
// wildcards for both conferences side by side.
func (r *Renderer) PlayoffPicture(ctx context.Context, entries []domain.StandingsEntry) (*bytes.Buffer, error) {
	if len(entries) == 0 {
		return nil, ErrNoData
	}

	dc := newCanvas(standingsBoardWidth, standingsBoardHeight)
	drawText(dc, "NHL PLAYOFF PICTURE", standingsBoardWidth/2, 45, 0.5, 0.5, 40, colorWhite)

	eastGroups, eastWC := conferenceGroups(entries, domain.ConferenceEast)
	westGroups, westWC := conferenceGroups(entries, domain.ConferenceWest)

	r.drawConferenceColumn(ctx, dc, eastGroups, eastWC, "EASTERN CONFERENCE", colorEast, 66)
	r.drawConferenceColumn(ctx, dc, westGroups, westWC, "WESTERN CONFERENCE", colorWest, 634)

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

// LeagueStandings draws the full league, both conferences side by side in
// conference-sequence order. Height grows with the longer column.
func (r *Renderer) LeagueStandings(ctx context.Context, entries []domain.StandingsEntry) (*bytes.Buffer, error) {
	if len(entries) == 0 {
		return nil, ErrNoData
	}

	east := conferenceOrder(entries, domain.ConferenceEast)
	west := conferenceOrder(entries, domain.ConferenceWest)

	rows := len(east)
	if len(west) > rows {
		rows = len(west)
	}
	height := 100 + rows*45 + 50

	dc := newCanvas(standingsBoardWidth, height)
	drawText(dc, "NHL STANDINGS", standingsBoardWidth/2, 45, 0.5, 0.5, 35, colorWhite)

	setColor(dc, colorBorder)
	dc.SetLineWidth(2)
	dc.DrawLine(standingsBoardWidth/2, 80, standingsBoardWidth/2, float64(height-30))
	dc.Stroke()

	drawText(dc, "EASTERN", 333, 75, 0.5, 0.5, 25, colorEast)
	y := 105.0
	for i, team := range east {
		drawText(dc, fmt.Sprintf("%d.", i+1), 73, y+16, 1, 0.5, 18, colorMuted)
		r.drawTeamRow(ctx, dc, team, 83, y)
		y += 45
	}

	drawText(dc, "WESTERN", 917, 75, 0.5, 0.5, 25, colorWest)
	y = 105.0
	for i, team := range west {
		drawText(dc, fmt.Sprintf("%d.", i+1), 657, y+16, 1, 0.5, 18, colorMuted)
		r.drawTeamRow(ctx, dc, team, 667, y)
		y += 45
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}
