// Package bot wires chat commands to the NHL data and rendering layers
// over a Discord gateway session.
package bot

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/bwmarrin/discordgo"

	"github.com/ThatOhio/NHL-Bot/internal/config"
	"github.com/ThatOhio/NHL-Bot/internal/logging"
	"github.com/ThatOhio/NHL-Bot/internal/metrics"
)

const commandTimeout = 60 * time.Second

// Deps collects the collaborators a Bot needs. Scoreboard is optional;
// without it the availability marker falls back to the primary heuristic.
type Deps struct {
	NHL        ScheduleClient
	Search     PlayerSearcher
	Renderer   ImageRenderer
	Scoreboard ScoreboardClient
}

// Bot owns the command handlers and, once Run is called, the gateway session.
type Bot struct {
	prefix     string
	teams      []config.TrackedTeam
	token      string
	nhl        ScheduleClient
	search     PlayerSearcher
	renderer   ImageRenderer
	scoreboard ScoreboardClient
	metrics    *metrics.Recorder
	logger     *slog.Logger
	now        func() time.Time
}

// New validates the dependencies and returns a Bot ready to Run.
func New(cfg config.Config, deps Deps, logger *slog.Logger, rec *metrics.Recorder) (*Bot, error) {
	if deps.NHL == nil || deps.Search == nil || deps.Renderer == nil {
		return nil, fmt.Errorf("bot: missing dependencies")
	}
	return &Bot{
		prefix:     cfg.CommandPrefix,
		teams:      cfg.TrackedTeams,
		token:      cfg.DiscordToken,
		nhl:        deps.NHL,
		search:     deps.Search,
		renderer:   deps.Renderer,
		scoreboard: deps.Scoreboard,
		metrics:    rec,
		logger:     logger,
		now:        time.Now,
	}, nil
}

// Run opens the gateway session and blocks until ctx is cancelled.
func (b *Bot) Run(ctx context.Context) error {
	if b.token == "" {
		return fmt.Errorf("bot: discord token is not set")
	}

	session, err := discordgo.New("Bot " + b.token)
	if err != nil {
		return fmt.Errorf("bot: create session: %w", err)
	}
	session.Identify.Intents = discordgo.IntentsGuildMessages | discordgo.IntentMessageContent

	session.AddHandler(func(s *discordgo.Session, r *discordgo.Ready) {
		logging.Info(b.logger, "logged in", "user", r.User.String())
	})
	session.AddHandler(b.onMessageCreate)

	if err := session.Open(); err != nil {
		return fmt.Errorf("bot: open gateway: %w", err)
	}
	logging.Info(b.logger, "bot is running", "prefix", b.prefix, logging.FieldCount, len(b.teams))

	<-ctx.Done()
	return session.Close()
}

func (b *Bot) onMessageCreate(s *discordgo.Session, m *discordgo.MessageCreate) {
	if m.Author == nil || m.Author.Bot {
		return
	}
	command, args, ok := b.parseCommand(m.Content)
	if !ok {
		return
	}

	// Image generation can take a moment; show the typing indicator.
	_ = s.ChannelTyping(m.ChannelID)

	ctx, cancel := context.WithTimeout(context.Background(), commandTimeout)
	defer cancel()

	responses, handled := b.Dispatch(ctx, command, args)
	if !handled {
		return
	}
	for _, resp := range responses {
		b.send(s, m.ChannelID, resp)
	}
}

// parseCommand splits a prefixed message into a lowercase command name and
// its argument remainder.
func (b *Bot) parseCommand(content string) (command, args string, ok bool) {
	if !strings.HasPrefix(content, b.prefix) {
		return "", "", false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(content, b.prefix))
	if rest == "" {
		return "", "", false
	}
	command, args, _ = strings.Cut(rest, " ")
	return strings.ToLower(command), strings.TrimSpace(args), true
}

// Dispatch routes a command name to its handler and records the outcome.
// The second return reports whether the command name is known.
func (b *Bot) Dispatch(ctx context.Context, command, args string) ([]Response, bool) {
	start := b.now()

	var (
		responses []Response
		err       error
	)
	switch command {
	case "nextgames":
		responses, err = b.handleNextGames(ctx)
	case "nextgamesimage":
		responses, err = b.handleNextGamesImage(ctx)
	case "player":
		responses, err = b.handlePlayer(ctx, args)
	case "standings":
		responses, err = b.handleStandings(ctx)
	case "conference":
		responses, err = b.handleConference(ctx)
	default:
		return nil, false
	}

	elapsed := b.now().Sub(start)
	b.metrics.RecordCommand(command, elapsed, err)
	if err != nil {
		logging.Error(b.logger, "command failed", err, logging.FieldCommand, command)
	} else {
		logging.Info(b.logger, "command handled",
			logging.FieldCommand, command,
			logging.FieldDurationMS, elapsed.Milliseconds())
	}
	return responses, true
}

func (b *Bot) send(s *discordgo.Session, channelID string, resp Response) {
	msg := &discordgo.MessageSend{Content: resp.Content}
	if resp.File != nil {
		msg.Files = []*discordgo.File{{
			Name:        resp.FileName,
			ContentType: "image/png",
			Reader:      resp.File,
		}}
	}
	if _, err := s.ChannelMessageSendComplex(channelID, msg); err != nil {
		logging.Error(b.logger, "send message failed", err)
	}
}
