package roster

import (
	"fmt"
	"testing"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
)

func TestSelectBestMatchNoMatches(t *testing.T) {
	sel := SelectBestMatch(nil, "nobody")
	if sel.Found || sel.TooMany || sel.Count != 0 {
		t.Fatalf("expected empty selection, got %+v", sel)
	}
}

func TestSelectBestMatchSingle(t *testing.T) {
	matches := []domain.Player{player(1, "Connor", "McDavid", "EDM", "C")}
	sel := SelectBestMatch(matches, "mcdavid")
	if !sel.Found || sel.Player.ID != 1 || len(sel.Alternates) != 0 {
		t.Fatalf("expected single match selected, got %+v", sel)
	}
}

func TestSelectBestMatchPrefersExactFullName(t *testing.T) {
	matches := []domain.Player{
		player(1, "Connor", "McDavid", "EDM", "C"),
		player(2, "Connor", "Bedard", "CHI", "C"),
	}
	sel := SelectBestMatch(matches, "connor bedard")
	if !sel.Found || sel.Player.ID != 2 {
		t.Fatalf("expected exact match preferred, got %+v", sel)
	}
	if len(sel.Alternates) != 0 {
		t.Fatalf("expected no alternates for exact match, got %+v", sel.Alternates)
	}
}

func TestSelectBestMatchTooMany(t *testing.T) {
	var matches []domain.Player
	for i := 0; i < 11; i++ {
		matches = append(matches, player(i, "Player", fmt.Sprintf("Number%d", i), "BUF", "C"))
	}

	sel := SelectBestMatch(matches, "player")
	if sel.Found || !sel.TooMany || sel.Count != 11 {
		t.Fatalf("expected too-many outcome, got %+v", sel)
	}
}

func TestSelectBestMatchGuessesFirstWithAlternates(t *testing.T) {
	matches := []domain.Player{
		player(1, "Matthew", "Tkachuk", "FLA", "L"),
		player(2, "Brady", "Tkachuk", "OTT", "L"),
		player(3, "Keith", "Tkachuk", "STL", "L"),
	}

	sel := SelectBestMatch(matches, "tkachuk")
	if !sel.Found || sel.Player.ID != 1 {
		t.Fatalf("expected first match picked, got %+v", sel)
	}
	if len(sel.Alternates) != 2 || sel.Alternates[0] != "Brady Tkachuk" {
		t.Fatalf("unexpected alternates %+v", sel.Alternates)
	}
	if sel.HasMore {
		t.Fatal("expected no ellipsis with only two alternates")
	}
}

func TestSelectBestMatchAlternatesCapAtThree(t *testing.T) {
	var matches []domain.Player
	for i := 0; i < 6; i++ {
		matches = append(matches, player(i, "Guy", fmt.Sprintf("Smith%d", i), "BUF", "C"))
	}

	sel := SelectBestMatch(matches, "smith")
	if len(sel.Alternates) != 3 || !sel.HasMore {
		t.Fatalf("expected 3 alternates with ellipsis, got %+v", sel)
	}
}
