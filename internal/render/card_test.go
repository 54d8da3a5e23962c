package render

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/png"
	"testing"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
)

type stubFetcher struct {
	images map[string][]byte
	calls  int
}

func (s *stubFetcher) FetchImage(ctx context.Context, url string) ([]byte, error) {
	s.calls++
	if data, ok := s.images[url]; ok {
		return data, nil
	}
	return nil, errors.New("image unavailable")
}

func tinyPNG(t *testing.T) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, image.NewRGBA(image.Rect(0, 0, 4, 4))); err != nil {
		t.Fatalf("encoding fixture png: %v", err)
	}
	return buf.Bytes()
}

func decodePNG(t *testing.T, buf *bytes.Buffer) image.Image {
	t.Helper()
	img, err := png.Decode(bytes.NewReader(buf.Bytes()))
	if err != nil {
		t.Fatalf("decoding rendered png: %v", err)
	}
	return img
}

func goalieDetails() domain.PlayerDetails {
	return domain.PlayerDetails{
		FirstName:  "Ukko-Pekka",
		LastName:   "Luukkonen",
		Position:   "G",
		TeamAbbrev: "BUF",
		Season:     "20252026",
		HasStats:   true,
		Stats: domain.SeasonStats{
			GamesPlayed:     30,
			Wins:            17,
			Losses:          10,
			OTLosses:        3,
			GoalsAgainstAvg: 2.6666,
			SavePctg:        0.91449,
		},
	}
}

func skaterDetails() domain.PlayerDetails {
	return domain.PlayerDetails{
		FirstName:  "Tage",
		LastName:   "Thompson",
		Position:   "C",
		TeamAbbrev: "BUF",
		Season:     "20252026",
		HasStats:   true,
		Stats: domain.SeasonStats{
			GamesPlayed: 44,
			Goals:       21,
			Assists:     25,
			Points:      46,
			PlusMinus:   -3,
			Shots:       160,
		},
	}
}

func TestStatColumnsGoalieSet(t *testing.T) {
	columns := statColumns(goalieDetails())

	labels := make([]string, 0, len(columns))
	for _, c := range columns {
		labels = append(labels, c.label)
	}
	want := []string{"GP", "W", "L", "OTL", "GAA", "SV%"}
	for i, label := range want {
		if labels[i] != label {
			t.Fatalf("expected goalie labels %v, got %v", want, labels)
		}
	}

	if columns[4].value != "2.67" {
		t.Fatalf("expected GAA to 2 places, got %q", columns[4].value)
	}
	if columns[5].value != "0.914" {
		t.Fatalf("expected SV%% to 3 places, got %q", columns[5].value)
	}
	for i, width := range []int{60, 60, 60, 60, 100, 100} {
		if columns[i].width != width {
			t.Fatalf("unexpected goalie widths %+v", columns)
		}
	}
}

func TestStatColumnsSkaterSet(t *testing.T) {
	columns := statColumns(skaterDetails())

	want := []string{"GP", "G", "A", "P", "+/-", "SOG"}
	for i, label := range want {
		if columns[i].label != label {
			t.Fatalf("expected skater labels %v, got %+v", want, columns)
		}
	}
	if columns[4].value != "-3" {
		t.Fatalf("expected plus/minus verbatim, got %q", columns[4].value)
	}
	for _, c := range columns {
		if c.width != (cardWidth-60)/6 {
			t.Fatalf("expected even skater widths, got %+v", columns)
		}
	}
}

func TestStatColumnsSelectionDependsOnlyOnPosition(t *testing.T) {
	d := goalieDetails()
	d.Position = "D"
	if columns := statColumns(d); columns[1].label != "G" {
		t.Fatalf("expected skater set for non-goalie position, got %+v", columns)
	}
}

func TestStatColumnsNoStats(t *testing.T) {
	d := goalieDetails()
	d.HasStats = false
	if columns := statColumns(d); columns != nil {
		t.Fatalf("expected nil columns without stats, got %+v", columns)
	}
}

func TestPlayerCardRendersWithMissingImages(t *testing.T) {
	r := New(&stubFetcher{}, nil)

	buf, err := r.PlayerCard(context.Background(), skaterDetails())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	img := decodePNG(t, buf)
	if img.Bounds().Dx() != cardWidth || img.Bounds().Dy() != cardHeight {
		t.Fatalf("unexpected card size %v", img.Bounds())
	}
}

func TestPlayerCardGoalieWithoutStats(t *testing.T) {
	d := goalieDetails()
	d.HasStats = false

	r := New(&stubFetcher{}, nil)
	buf, err := r.PlayerCard(context.Background(), d)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if buf.Len() == 0 {
		t.Fatal("expected non-empty image buffer")
	}
}
