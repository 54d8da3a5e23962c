package config

import "time"

const (
	envDiscordToken  = "DISCORD_TOKEN"
	envCommandPrefix = "COMMAND_PREFIX"
	envTrackedTeams  = "TRACKED_TEAMS"
	envNHLBaseURL    = "NHL_API_BASE_URL"
	envESPNBaseURL   = "ESPN_API_BASE_URL"
	envHTTPTimeout   = "HTTP_TIMEOUT"
	envRosterMaxAge  = "ROSTER_MAX_AGE"
	envOpsAddr       = "OPS_ADDR"
	envOpsEnabled    = "OPS_ENABLED"

	defaultCommandPrefix = "!"
	// The three clubs the bot's home server follows; overridable per deploy.
	defaultTrackedTeams = "Buffalo Sabres=BUF,Seattle Kraken=SEA,Dallas Stars=DAL"
	// Conservative default so a stalled upstream call fails the command
	// instead of hanging the handler.
	defaultHTTPTimeout  = 10 * time.Second
	defaultRosterMaxAge = 24 * time.Hour
	defaultOpsAddr      = ":9090"
	defaultOpsEnabled   = true
)
