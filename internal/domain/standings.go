package domain

// Conference abbreviations used by the standings feed.
const (
	ConferenceEast = "E"
	ConferenceWest = "W"
)

// StandingsEntry is one team's row in the league standings snapshot.
type StandingsEntry struct {
	TeamAbbrev         string `json:"teamAbbrev"`
	TeamName           string `json:"teamName"`
	ConferenceAbbrev   string `json:"conferenceAbbrev"`
	ConferenceName     string `json:"conferenceName"`
	DivisionAbbrev     string `json:"divisionAbbrev"`
	DivisionName       string `json:"divisionName"`
	ConferenceSequence int    `json:"conferenceSequence"`
	DivisionSequence   int    `json:"divisionSequence"`
	WildcardSequence   int    `json:"wildcardSequence"`
	GamesPlayed        int    `json:"gamesPlayed"`
	Wins               int    `json:"wins"`
	Losses             int    `json:"losses"`
	OTLosses           int    `json:"otLosses"`
	Points             int    `json:"points"`
}
