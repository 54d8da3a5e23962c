package espn

import (
	"fmt"
	"strings"
)

const logoBaseURL = "https://a.espncdn.com/i/teamlogos/nhl/500"

// A few clubs use a different abbreviation on ESPN than the NHL feed does.
var logoAbbrevOverrides = map[string]string{
	"tbl": "tb",
	"sjs": "sj",
	"lak": "la",
}

// LogoURL builds the CDN URL for a team's 500px logo from its NHL
// abbreviation.
func LogoURL(teamAbbrev string) string {
	abbr := strings.ToLower(teamAbbrev)
	if override, ok := logoAbbrevOverrides[abbr]; ok {
		abbr = override
	}
	return fmt.Sprintf("%s/%s.png", logoBaseURL, abbr)
}
