package render

import (
	"context"
	"errors"
	"testing"

	"github.com/ThatOhio/NHL-Bot/internal/domain"
	"github.com/ThatOhio/NHL-Bot/internal/espn"
)

func TestUpcomingGamesRenders(t *testing.T) {
	fetcher := &stubFetcher{images: map[string][]byte{
		espn.LogoURL("BUF"): tinyPNG(t),
		espn.LogoURL("TOR"): tinyPNG(t),
	}}
	r := New(fetcher, nil)

	games := []domain.NextGame{
		{TeamName: "Buffalo Sabres", TeamAbbrev: "BUF", OpponentAbbrev: "TOR", IsHome: true, TimeText: "Today @ 7:00:00 PM"},
		{TeamName: "Seattle Kraken", TeamAbbrev: "SEA", OpponentAbbrev: "DAL", IsHome: false, TimeText: "Sunday @ 7:30:00 PM"},
	}

	buf, err := r.UpcomingGames(context.Background(), games)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	img := decodePNG(t, buf)
	if img.Bounds().Dx() != stripWidth || img.Bounds().Dy() != stripHeight {
		t.Fatalf("unexpected strip size %v", img.Bounds())
	}
}

func TestUpcomingGamesNoData(t *testing.T) {
	r := New(&stubFetcher{}, nil)
	if _, err := r.UpcomingGames(context.Background(), nil); !errors.Is(err, ErrNoData) {
		t.Fatalf("expected ErrNoData, got %v", err)
	}
}
