package domain

// Position codes as reported by the NHL roster feed.
const (
	PositionCenter    = "C"
	PositionLeftWing  = "L"
	PositionRightWing = "R"
	PositionDefense   = "D"
	PositionGoalie    = "G"
)

// Player is one roster entry as held by the roster cache.
type Player struct {
	ID         int    `json:"id"`
	FirstName  string `json:"firstName"`
	LastName   string `json:"lastName"`
	TeamAbbrev string `json:"teamAbbrev"`
	Position   string `json:"position"`
}

// FullName returns "First Last".
func (p Player) FullName() string {
	return p.FirstName + " " + p.LastName
}

// SeasonStats is the current-season stat block from the player landing feed.
// Skater and goalie fields share the struct; the renderer picks a subset by
// position.
type SeasonStats struct {
	GamesPlayed     int     `json:"gamesPlayed"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	Points          int     `json:"points"`
	PlusMinus       int     `json:"plusMinus"`
	Shots           int     `json:"shots"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	OTLosses        int     `json:"otLosses"`
	GoalsAgainstAvg float64 `json:"goalsAgainstAvg"`
	SavePctg        float64 `json:"savePctg"`
}

// PlayerDetails is the subset of the player landing record the card renderer
// needs.
type PlayerDetails struct {
	ID            int         `json:"id"`
	FirstName     string      `json:"firstName"`
	LastName      string      `json:"lastName"`
	SweaterNumber int         `json:"sweaterNumber"`
	Position      string      `json:"position"`
	TeamAbbrev    string      `json:"teamAbbrev"`
	TeamName      string      `json:"teamName"`
	HeadshotURL   string      `json:"headshot"`
	Season        string      `json:"season"`
	HasStats      bool        `json:"hasStats"`
	Stats         SeasonStats `json:"stats"`
}

// IsGoalie reports whether the player card should use the goalie stat set.
func (d PlayerDetails) IsGoalie() bool {
	return d.Position == PositionGoalie
}
