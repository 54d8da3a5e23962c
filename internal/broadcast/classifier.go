// Package broadcast estimates whether a game can be streamed on ESPN+.
//
// The answer is a two-stage decision: a heuristic over the schedule feed's
// own broadcast list, overridden by ESPN's scoreboard whenever a matching
// event is found there. Both stages are pure functions and the heuristic is
// deliberately approximate; false positives and negatives are accepted.
package broadcast

import (
	"strings"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
	"github.com/ThatOhio/NHL-Bot/internal/espn"
)

// ServiceName is the streaming service's marketing name as it appears in
// scoreboard broadcast lists.
const ServiceName = "ESPN+"

// National networks whose games simulcast on the service. TNT-family
// national games notably do not.
var nationalStreamingNetworks = map[string]bool{
	"ESPN":  true,
	"ESPN2": true,
	"ABC":   true,
	"ESPN+": true,
	"HULU":  true,
}

// Home-market regional networks whose broadcasts show up on the service's
// out-of-market package.
var regionalStreamingNetworks = map[string]bool{
	"MSG":          true,
	"MSG-B":        true,
	"ROOT SPORTS":  true,
	"ROOT SPORTS+": true,
	"VICTORY+":     true,
}

// Available composes both stages: the scoreboard override wins whenever the
// game was found there, otherwise the primary heuristic decides.
func Available(game domain.Game, events []espn.Event) bool {
	if streaming, matched := SecondaryOverride(game, events); matched {
		return streaming
	}
	return PrimaryHeuristic(game.Broadcasts)
}

// PrimaryHeuristic decides availability from the schedule feed's broadcast
// entries alone. Missing or malformed entries count as absent.
func PrimaryHeuristic(broadcasts []domain.Broadcast) bool {
	for _, b := range broadcasts {
		network := strings.ToUpper(strings.TrimSpace(b.Network))
		if network == "" {
			continue
		}
		switch b.Market {
		case domain.MarketNational:
			if nationalStreamingNetworks[network] {
				return true
			}
		case domain.MarketHome:
			if regionalStreamingNetworks[network] {
				return true
			}
		}
	}
	return false
}

// SecondaryOverride locates the game among scoreboard events by checking
// that both team abbreviations appear among an event's competitors, then
// reports whether the service's name appears among that event's broadcast
// names. The second return is false when no event matched.
func SecondaryOverride(game domain.Game, events []espn.Event) (streaming, matched bool) {
	for _, event := range events {
		if !hasCompetitor(event, game.HomeAbbrev) || !hasCompetitor(event, game.AwayAbbrev) {
			continue
		}
		for _, name := range event.BroadcastNames {
			if strings.Contains(strings.ToLower(name), strings.ToLower(ServiceName)) {
				return true, true
			}
		}
		return false, true
	}
	return false, false
}

func hasCompetitor(event espn.Event, abbrev string) bool {
	for _, c := range event.Competitors {
		if strings.EqualFold(c, abbrev) {
			return true
		}
	}
	return false
}
