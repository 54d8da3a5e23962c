package domain

import "time"

// Broadcast market codes from the club schedule feed.
const (
	MarketNational = "N"
	MarketHome     = "H"
	MarketAway     = "A"
)

// Broadcast is one television/streaming entry attached to a game.
type Broadcast struct {
	Network string `json:"network"`
	Market  string `json:"market"`
}

// Game is a single scheduled game. Fetched fresh per request, never cached.
type Game struct {
	HomeAbbrev   string      `json:"homeAbbrev"`
	AwayAbbrev   string      `json:"awayAbbrev"`
	StartTimeUTC time.Time   `json:"startTimeUTC"`
	Broadcasts   []Broadcast `json:"broadcasts"`
}

// NextGame is the field bundle the upcoming-games strip renders per column.
type NextGame struct {
	TeamName       string `json:"teamName"`
	TeamAbbrev     string `json:"teamAbbrev"`
	OpponentAbbrev string `json:"opponentAbbrev"`
	IsHome         bool   `json:"isHome"`
	TimeText       string `json:"timeText"`
}
