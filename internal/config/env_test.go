package config

import (
	"testing"
	"time"
)

func TestEnvOrDefault(t *testing.T) {
	t.Setenv("NHLBOT_TEST_STR", "")
	if got := envOrDefault("NHLBOT_TEST_STR", "!"); got != "!" {
		t.Fatalf("unset should yield default, got %q", got)
	}

	t.Setenv("NHLBOT_TEST_STR", "?")
	if got := envOrDefault("NHLBOT_TEST_STR", "!"); got != "?" {
		t.Fatalf("set value ignored, got %q", got)
	}
}

func TestDurationEnvOrDefault(t *testing.T) {
	const fallback = 24 * time.Hour

	tests := []struct {
		name string
		val  string
		want time.Duration
	}{
		{name: "unset", val: "", want: fallback},
		{name: "valid", val: "6h", want: 6 * time.Hour},
		{name: "not a duration", val: "soon", want: fallback},
		{name: "zero rejected", val: "0s", want: fallback},
		{name: "negative rejected", val: "-1h", want: fallback},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv("NHLBOT_TEST_DUR", tt.val)
			if got := durationEnvOrDefault("NHLBOT_TEST_DUR", fallback); got != tt.want {
				t.Fatalf("got %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBoolEnvOrDefault(t *testing.T) {
	tests := []struct {
		val  string
		want bool
	}{
		{val: "", want: true}, // default
		{val: "true", want: true},
		{val: "TRUE", want: true},
		{val: "1", want: true},
		{val: "yes", want: true},
		{val: "false", want: false},
		{val: "FALSE", want: false},
		{val: "0", want: false},
		{val: "no", want: false},
		{val: "maybe", want: true}, // unknown falls back to default
	}
	for _, tt := range tests {
		t.Setenv("NHLBOT_TEST_BOOL", tt.val)
		if got := boolEnvOrDefault("NHLBOT_TEST_BOOL", true); got != tt.want {
			t.Fatalf("%q: got %v, want %v", tt.val, got, tt.want)
		}
	}
}
