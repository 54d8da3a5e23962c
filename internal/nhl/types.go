package nhl

// localizedName is the {"default": "..."} wrapper the NHL API uses for
// translatable strings.
type localizedName struct {
	Default string `json:"default"`
}

type scheduleTeam struct {
	Abbrev string `json:"abbrev"`
}

type tvBroadcast struct {
	Network string `json:"network"`
	Market  string `json:"market"`
}

type scheduleGame struct {
	StartTimeUTC string        `json:"startTimeUTC"`
	HomeTeam     scheduleTeam  `json:"homeTeam"`
	AwayTeam     scheduleTeam  `json:"awayTeam"`
	TVBroadcasts []tvBroadcast `json:"tvBroadcasts"`
}

type scheduleResponse struct {
	Games []scheduleGame `json:"games"`
}

type standingsRow struct {
	TeamAbbrev         localizedName `json:"teamAbbrev"`
	TeamName           localizedName `json:"teamName"`
	ConferenceAbbrev   string        `json:"conferenceAbbrev"`
	ConferenceName     string        `json:"conferenceName"`
	DivisionAbbrev     string        `json:"divisionAbbrev"`
	DivisionName       string        `json:"divisionName"`
	ConferenceSequence int           `json:"conferenceSequence"`
	DivisionSequence   int           `json:"divisionSequence"`
	WildcardSequence   int           `json:"wildcardSequence"`
	GamesPlayed        int           `json:"gamesPlayed"`
	Wins               int           `json:"wins"`
	Losses             int           `json:"losses"`
	OtLosses           int           `json:"otLosses"`
	Points             int           `json:"points"`
}

type standingsResponse struct {
	Standings []standingsRow `json:"standings"`
}

type rosterPlayer struct {
	ID           int           `json:"id"`
	FirstName    localizedName `json:"firstName"`
	LastName     localizedName `json:"lastName"`
	PositionCode string        `json:"positionCode"`
}

type rosterResponse struct {
	Forwards   []rosterPlayer `json:"forwards"`
	Defensemen []rosterPlayer `json:"defensemen"`
	Goalies    []rosterPlayer `json:"goalies"`
}

type subSeasonStats struct {
	GamesPlayed     int     `json:"gamesPlayed"`
	Goals           int     `json:"goals"`
	Assists         int     `json:"assists"`
	Points          int     `json:"points"`
	PlusMinus       int     `json:"plusMinus"`
	Shots           int     `json:"shots"`
	Wins            int     `json:"wins"`
	Losses          int     `json:"losses"`
	OtLosses        int     `json:"otLosses"`
	GoalsAgainstAvg float64 `json:"goalsAgainstAvg"`
	SavePctg        float64 `json:"savePctg"`
}

type landingResponse struct {
	PlayerID      int           `json:"playerId"`
	FirstName     localizedName `json:"firstName"`
	LastName      localizedName `json:"lastName"`
	SweaterNumber int           `json:"sweaterNumber"`
	Position      string        `json:"position"`
	TeamAbbrev    string        `json:"currentTeamAbbrev"`
	FullTeamName  localizedName `json:"fullTeamName"`
	Headshot      string        `json:"headshot"`
	FeaturedStats struct {
		Season        int `json:"season"`
		RegularSeason struct {
			SubSeason *subSeasonStats `json:"subSeason"`
		} `json:"regularSeason"`
	} `json:"featuredStats"`
}
