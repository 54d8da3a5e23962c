package bot

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/ThatOhio/NHL-Bot/internal/broadcast"
	"github.com/ThatOhio/NHL-Bot/internal/domain"
	"github.com/ThatOhio/NHL-Bot/internal/espn"
	"github.com/ThatOhio/NHL-Bot/internal/logging"
	"github.com/ThatOhio/NHL-Bot/internal/nhl"
	"github.com/ThatOhio/NHL-Bot/internal/render"
	"github.com/ThatOhio/NHL-Bot/internal/roster"
	"github.com/ThatOhio/NHL-Bot/internal/timeutil"
)

// ScheduleClient is the slice of the NHL client the commands consume.
type ScheduleClient interface {
	NextGame(ctx context.Context, team string) (domain.Game, error)
	Standings(ctx context.Context) ([]domain.StandingsEntry, error)
	PlayerLanding(ctx context.Context, playerID int) (domain.PlayerDetails, error)
}

// PlayerSearcher finds cached players by name substring.
type PlayerSearcher interface {
	Search(ctx context.Context, name string) []domain.Player
}

// ImageRenderer produces the four PNG image types.
type ImageRenderer interface {
	PlayerCard(ctx context.Context, d domain.PlayerDetails) (*bytes.Buffer, error)
	PlayoffPicture(ctx context.Context, entries []domain.StandingsEntry) (*bytes.Buffer, error)
	LeagueStandings(ctx context.Context, entries []domain.StandingsEntry) (*bytes.Buffer, error)
	UpcomingGames(ctx context.Context, games []domain.NextGame) (*bytes.Buffer, error)
}

// ScoreboardClient supplies the secondary broadcast data, keyed by date.
type ScoreboardClient interface {
	Scoreboard(ctx context.Context, date time.Time) ([]espn.Event, error)
}

// Response is one chat reply: text, an attached PNG, or both.
type Response struct {
	Content  string
	FileName string
	File     *bytes.Buffer
}

func textResponse(format string, args ...any) Response {
	return Response{Content: fmt.Sprintf(format, args...)}
}

// handleNextGames builds the "next game per tracked team" text reply, with
// an ESPN+ marker when the classifier thinks the game streams there.
func (b *Bot) handleNextGames(ctx context.Context) ([]Response, error) {
	var sb strings.Builder
	sb.WriteString("**Upcoming NHL Games:**\n")

	// Scoreboard fetches are cached per Eastern date so three teams on the
	// same night cost one call.
	events := make(map[string][]espn.Event)

	var firstErr error
	for _, team := range b.teams {
		info := b.nextGameLine(ctx, team.Abbrev, events)
		if firstErr == nil && strings.HasPrefix(info, "Error") {
			firstErr = errors.New(info)
		}
		fmt.Fprintf(&sb, "• **%s**: %s\n", team.Name, info)
	}

	return []Response{{Content: sb.String()}}, firstErr
}

func (b *Bot) nextGameLine(ctx context.Context, abbrev string, events map[string][]espn.Event) string {
	game, err := b.nhl.NextGame(ctx, abbrev)
	if errors.Is(err, nhl.ErrNoUpcomingGame) {
		return "No upcoming games found."
	}
	if err != nil {
		return fmt.Sprintf("Error fetching game: %v", err)
	}

	line := nhl.FormatGameInfo(game, b.now())
	if broadcast.Available(game, b.scoreboardFor(ctx, game, events)) {
		line += " [" + broadcast.ServiceName + "]"
	}
	return line
}

func (b *Bot) scoreboardFor(ctx context.Context, game domain.Game, cache map[string][]espn.Event) []espn.Event {
	if b.scoreboard == nil {
		return nil
	}
	key := timeutil.FormatDate(timeutil.Eastern(game.StartTimeUTC))
	if events, ok := cache[key]; ok {
		return events
	}

	events, err := b.scoreboard.Scoreboard(ctx, game.StartTimeUTC)
	if err != nil {
		// No secondary data; the primary heuristic decides.
		logging.Warn(b.logger, "scoreboard fetch failed", logging.FieldError, err)
		events = nil
	}
	cache[key] = events
	return events
}

// handleNextGamesImage renders the upcoming-games strip for the tracked
// teams. Teams without a fetchable future game are skipped.
func (b *Bot) handleNextGamesImage(ctx context.Context) ([]Response, error) {
	var games []domain.NextGame
	for _, team := range b.teams {
		game, err := b.nhl.NextGame(ctx, team.Abbrev)
		if err != nil {
			logging.Warn(b.logger, "next game lookup failed", logging.FieldTeam, team.Abbrev, logging.FieldError, err)
			continue
		}

		opponent := game.AwayAbbrev
		isHome := strings.EqualFold(game.HomeAbbrev, team.Abbrev)
		if !isHome {
			opponent = game.HomeAbbrev
		}
		games = append(games, domain.NextGame{
			TeamName:       team.Name,
			TeamAbbrev:     team.Abbrev,
			OpponentAbbrev: opponent,
			IsHome:         isHome,
			TimeText:       nhl.FormatGameTime(game, b.now()),
		})
	}

	buf, err := b.renderer.UpcomingGames(ctx, games)
	if err != nil {
		return []Response{textResponse("No upcoming games found.")}, err
	}
	return []Response{{FileName: "upcoming_games.png", File: buf}}, nil
}

// handlePlayer resolves a name to a single player and replies with a card.
func (b *Bot) handlePlayer(ctx context.Context, name string) ([]Response, error) {
	if strings.TrimSpace(name) == "" {
		return []Response{textResponse("Usage: %splayer <name>", b.prefix)}, nil
	}

	matches := b.search.Search(ctx, name)
	sel := roster.SelectBestMatch(matches, name)

	if sel.TooMany {
		return []Response{textResponse("Found %d matches for '%s'. Please be more specific.", sel.Count, name)}, nil
	}
	if !sel.Found {
		return []Response{textResponse("No players found matching '%s'.", name)}, nil
	}

	var responses []Response
	if len(sel.Alternates) > 0 {
		others := strings.Join(sel.Alternates, ", ")
		if sel.HasMore {
			others += "..."
		}
		responses = append(responses, textResponse(
			"Multiple matches found. Showing %s. (Others: %s)", sel.Player.FullName(), others))
	}

	details, err := b.nhl.PlayerLanding(ctx, sel.Player.ID)
	if err != nil {
		logging.Warn(b.logger, "player details fetch failed",
			logging.FieldPlayer, sel.Player.FullName(), logging.FieldError, err)
		responses = append(responses, textResponse("Could not fetch details for %s.", sel.Player.FullName()))
		return responses, err
	}

	buf, err := b.renderer.PlayerCard(ctx, details)
	if err != nil {
		responses = append(responses, textResponse("Error generating player card: %v", err))
		return responses, err
	}
	logging.Info(b.logger, "player card rendered", logging.FieldPlayer, sel.Player.FullName())

	responses = append(responses, Response{
		FileName: fmt.Sprintf("%s_card.png", sel.Player.LastName),
		File:     buf,
	})
	return responses, nil
}

// handleStandings replies with the playoff picture board.
func (b *Bot) handleStandings(ctx context.Context) ([]Response, error) {
	return b.standingsImage(ctx, "nhl_standings.png", "standings",
		func(entries []domain.StandingsEntry) (*bytes.Buffer, error) {
			return b.renderer.PlayoffPicture(ctx, entries)
		})
}

// handleConference replies with the full-league standings board.
func (b *Bot) handleConference(ctx context.Context) ([]Response, error) {
	return b.standingsImage(ctx, "nhl_league_standings.png", "conference",
		func(entries []domain.StandingsEntry) (*bytes.Buffer, error) {
			return b.renderer.LeagueStandings(ctx, entries)
		})
}

func (b *Bot) standingsImage(ctx context.Context, fileName, kind string, renderFn func([]domain.StandingsEntry) (*bytes.Buffer, error)) ([]Response, error) {
	entries, err := b.nhl.Standings(ctx)
	if err != nil {
		return []Response{textResponse("Could not fetch standings data.")}, err
	}

	buf, err := renderFn(entries)
	if errors.Is(err, render.ErrNoData) {
		return []Response{textResponse("Could not fetch standings data.")}, err
	}
	if err != nil {
		return []Response{textResponse("Error generating %s image: %v", kind, err)}, err
	}
	return []Response{{FileName: fileName, File: buf}}, nil
}
