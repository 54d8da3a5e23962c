package config

import (
	"strings"
	"time"
)

// TrackedTeam pairs a display name with its NHL three-letter abbreviation.
type TrackedTeam struct {
	Name   string
	Abbrev string
}

// Config holds runtime configuration for the bot.
type Config struct {
	DiscordToken  string
	CommandPrefix string
	TrackedTeams  []TrackedTeam
	NHLBaseURL    string
	ESPNBaseURL   string
	HTTPTimeout   time.Duration
	RosterMaxAge  time.Duration
	OpsAddr       string
	OpsEnabled    bool
}

// Load reads configuration from environment variables with sensible defaults.
func Load() Config {
	return Config{
		DiscordToken:  envOrDefault(envDiscordToken, ""),
		CommandPrefix: envOrDefault(envCommandPrefix, defaultCommandPrefix),
		TrackedTeams:  parseTrackedTeams(envOrDefault(envTrackedTeams, defaultTrackedTeams)),
		NHLBaseURL:    envOrDefault(envNHLBaseURL, ""),
		ESPNBaseURL:   envOrDefault(envESPNBaseURL, ""),
		HTTPTimeout:   durationEnvOrDefault(envHTTPTimeout, defaultHTTPTimeout),
		RosterMaxAge:  durationEnvOrDefault(envRosterMaxAge, defaultRosterMaxAge),
		OpsAddr:       envOrDefault(envOpsAddr, defaultOpsAddr),
		OpsEnabled:    boolEnvOrDefault(envOpsEnabled, defaultOpsEnabled),
	}
}

// parseTrackedTeams parses "Name=ABBR,Name=ABBR" pairs, skipping malformed entries.
func parseTrackedTeams(raw string) []TrackedTeam {
	var teams []TrackedTeam
	for _, pair := range strings.Split(raw, ",") {
		name, abbrev, ok := strings.Cut(strings.TrimSpace(pair), "=")
		if !ok {
			continue
		}
		name = strings.TrimSpace(name)
		abbrev = strings.ToUpper(strings.TrimSpace(abbrev))
		if name == "" || abbrev == "" {
			continue
		}
		teams = append(teams, TrackedTeam{Name: name, Abbrev: abbrev})
	}
	return teams
}
