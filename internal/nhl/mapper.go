package nhl

import (
	"fmt"
	"time"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
)

func mapGame(g scheduleGame) (domain.Game, error) {
	start, err := time.Parse(time.RFC3339, g.StartTimeUTC)
	if err != nil {
		return domain.Game{}, fmt.Errorf("parsing startTimeUTC %q: %w", g.StartTimeUTC, err)
	}

	broadcasts := make([]domain.Broadcast, 0, len(g.TVBroadcasts))
	for _, b := range g.TVBroadcasts {
		broadcasts = append(broadcasts, domain.Broadcast{Network: b.Network, Market: b.Market})
	}

	return domain.Game{
		HomeAbbrev:   g.HomeTeam.Abbrev,
		AwayAbbrev:   g.AwayTeam.Abbrev,
		StartTimeUTC: start.UTC(),
		Broadcasts:   broadcasts,
	}, nil
}

func mapStandingsRow(row standingsRow) domain.StandingsEntry {
	return domain.StandingsEntry{
		TeamAbbrev:         row.TeamAbbrev.Default,
		TeamName:           row.TeamName.Default,
		ConferenceAbbrev:   row.ConferenceAbbrev,
		ConferenceName:     row.ConferenceName,
		DivisionAbbrev:     row.DivisionAbbrev,
		DivisionName:       row.DivisionName,
		ConferenceSequence: row.ConferenceSequence,
		DivisionSequence:   row.DivisionSequence,
		WildcardSequence:   row.WildcardSequence,
		GamesPlayed:        row.GamesPlayed,
		Wins:               row.Wins,
		Losses:             row.Losses,
		OTLosses:           row.OtLosses,
		Points:             row.Points,
	}
}

func mapRoster(team string, payload rosterResponse) []domain.Player {
	groups := [][]rosterPlayer{payload.Forwards, payload.Defensemen, payload.Goalies}

	total := 0
	for _, g := range groups {
		total += len(g)
	}

	players := make([]domain.Player, 0, total)
	for _, g := range groups {
		for _, p := range g {
			players = append(players, domain.Player{
				ID:         p.ID,
				FirstName:  p.FirstName.Default,
				LastName:   p.LastName.Default,
				TeamAbbrev: team,
				Position:   p.PositionCode,
			})
		}
	}
	return players
}

func mapLanding(payload landingResponse) domain.PlayerDetails {
	details := domain.PlayerDetails{
		ID:            payload.PlayerID,
		FirstName:     payload.FirstName.Default,
		LastName:      payload.LastName.Default,
		SweaterNumber: payload.SweaterNumber,
		Position:      payload.Position,
		TeamAbbrev:    payload.TeamAbbrev,
		TeamName:      payload.FullTeamName.Default,
		HeadshotURL:   payload.Headshot,
		Season:        formatSeason(payload.FeaturedStats.Season),
	}

	if sub := payload.FeaturedStats.RegularSeason.SubSeason; sub != nil {
		details.HasStats = true
		details.Stats = domain.SeasonStats{
			GamesPlayed:     sub.GamesPlayed,
			Goals:           sub.Goals,
			Assists:         sub.Assists,
			Points:          sub.Points,
			PlusMinus:       sub.PlusMinus,
			Shots:           sub.Shots,
			Wins:            sub.Wins,
			Losses:          sub.Losses,
			OTLosses:        sub.OtLosses,
			GoalsAgainstAvg: sub.GoalsAgainstAvg,
			SavePctg:        sub.SavePctg,
		}
	}
	return details
}

func formatSeason(season int) string {
	if season == 0 {
		return "N/A"
	}
	return fmt.Sprintf("%d", season)
}
