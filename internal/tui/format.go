package tui

import (
	"fmt"
	"time"

	"github.com/akyairhashvil/takvim/internal/config"
)

// FormatCountdown renders the time left until the next prayer in the given style.
// The minute styles round partial minutes up so "0 minuta" never shows early.
func FormatCountdown(remaining time.Duration, style string) string {
	total := int(remaining.Seconds())
	if total < 0 {
		total = 0
	}
	switch style {
	case config.CountdownHMS:
		return fmt.Sprintf("%02d:%02d:%02d", total/3600, (total%3600)/60, total%60)
	case config.CountdownMinutes:
		return fmt.Sprintf("%d minuta", ceilMinutes(total))
	}
	mins := ceilMinutes(total)
	if h := mins / 60; h > 0 {
		return fmt.Sprintf("%d orë e %d minuta", h, mins%60)
	}
	return fmt.Sprintf("%d minuta", mins)
}

func ceilMinutes(seconds int) int {
	return (seconds + 59) / 60
}

// FormatClock renders the wall clock as HH:MM:SS.
func FormatClock(t time.Time) string {
	return t.Format("15:04:05")
}
