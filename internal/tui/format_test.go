package tui

import (
	"strings"
	"testing"
	"time"

	"github.com/akyairhashvil/takvim/internal/config"
)

func TestFormatCountdown(t *testing.T) {
	cases := []struct {
		name  string
		d     time.Duration
		style string
		want  string
	}{
		{"hm under an hour", 45 * time.Minute, config.CountdownHM, "45 minuta"},
		{"hm with hours", 2*time.Hour + 5*time.Minute, config.CountdownHM, "2 orë e 5 minuta"},
		{"hm rounds seconds up", 2*time.Hour + 4*time.Minute + 1*time.Second, config.CountdownHM, "2 orë e 5 minuta"},
		{"hm exact hour", 4 * time.Hour, config.CountdownHM, "4 orë e 0 minuta"},
		{"minutes only", 2*time.Hour + 5*time.Minute, config.CountdownMinutes, "125 minuta"},
		{"minutes last second", time.Second, config.CountdownMinutes, "1 minuta"},
		{"hms", 2*time.Hour + 5*time.Minute + 9*time.Second, config.CountdownHMS, "02:05:09"},
		{"negative clamps", -time.Minute, config.CountdownHMS, "00:00:00"},
		{"unknown style uses hm", 30 * time.Minute, "", "30 minuta"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := FormatCountdown(tc.d, tc.style); got != tc.want {
				t.Fatalf("FormatCountdown(%s, %q) = %q, want %q", tc.d, tc.style, got, tc.want)
			}
		})
	}
}

func TestFormatClock(t *testing.T) {
	if got := FormatClock(time.Date(2024, 1, 15, 7, 5, 9, 0, time.UTC)); got != "07:05:09" {
		t.Fatalf("FormatClock() = %q", got)
	}
}

func TestBigText(t *testing.T) {
	out := bigText("12:3x")
	lines := strings.Split(out, "\n")
	if len(lines) != 3 {
		t.Fatalf("expected 3 rows, got %d", len(lines))
	}
	if lines[0] != " ▄█ ▀▀█   ▀▀█" {
		t.Fatalf("unexpected first row %q", lines[0])
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("Xhamia e Madhe", 6); got != "Xhami"+config.TruncationSuffix {
		t.Fatalf("truncate() = %q", got)
	}
	if got := truncate("short", 10); got != "short" {
		t.Fatalf("truncate() = %q", got)
	}
	if got := truncate("anything", 0); got != "" {
		t.Fatalf("truncate() = %q", got)
	}
}

func TestThemeAtWraps(t *testing.T) {
	if ThemeAt(len(Themes)).Name != Themes[0].Name {
		t.Fatalf("expected wrap to the first theme")
	}
	if ThemeAt(-1).Name != Themes[1%len(Themes)].Name {
		t.Fatalf("negative index should not panic")
	}
}
