package roster

import (
	"strings"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
)

// Beyond this many matches the caller should ask the user to narrow the
// query instead of guessing.
const maxGuessableMatches = 10

// Selection is the outcome of picking a single player from search matches.
type Selection struct {
	Player domain.Player
	Found  bool
	// TooMany means the query was too broad to guess from.
	TooMany bool
	Count   int
	// Alternates lists up to three other candidate names when the pick was
	// a guess; HasMore flags that candidates were cut off.
	Alternates []string
	HasMore    bool
}

// SelectBestMatch applies the disambiguation policy: a single match wins
// outright, an exact full-name match beats substring matches, more than ten
// matches defers to the user, and otherwise the first match is picked with
// up to three alternates reported.
func SelectBestMatch(matches []domain.Player, query string) Selection {
	sel := Selection{Count: len(matches)}

	switch {
	case len(matches) == 0:
		return sel
	case len(matches) == 1:
		sel.Player = matches[0]
		sel.Found = true
		return sel
	}

	for _, p := range matches {
		if strings.EqualFold(p.FullName(), query) {
			sel.Player = p
			sel.Found = true
			return sel
		}
	}

	if len(matches) > maxGuessableMatches {
		sel.TooMany = true
		return sel
	}

	sel.Player = matches[0]
	sel.Found = true
	for _, p := range matches[1:] {
		if len(sel.Alternates) == 3 {
			sel.HasMore = true
			break
		}
		sel.Alternates = append(sel.Alternates, p.FullName())
	}
	return sel
}
