package tui

import (
	"context"
	"time"

	"github.com/akyairhashvil/takvim/internal/loader"
	tea "github.com/charmbracelet/bubbletea"
)

// Timer messages carry the model generation that scheduled them, so ticks
// from before a full reload are dropped instead of doubling the timers.
type (
	ClockTickMsg       struct{ Gen int }
	ContentTickMsg     struct{ Gen int }
	WallpaperTickMsg   struct{ Gen int }
	PrayerTableLoadMsg struct {
		Result loader.PrayerResult
		Gen    int
	}
	QuotesLoadMsg struct {
		Result loader.QuotesResult
		Gen    int
	}
	ExportDoneMsg struct {
		Path string
		Err  error
	}
)

// ResourceLoader fetches the two display resources.
type ResourceLoader interface {
	PrayerTable(ctx context.Context) loader.PrayerResult
	Quotes(ctx context.Context) loader.QuotesResult
}

func clockTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ClockTickMsg{Gen: gen} })
}

func contentTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return ContentTickMsg{Gen: gen} })
}

func wallpaperTickCmd(d time.Duration, gen int) tea.Cmd {
	return tea.Tick(d, func(time.Time) tea.Msg { return WallpaperTickMsg{Gen: gen} })
}

func loadPrayerTableCmd(ctx context.Context, l ResourceLoader, gen int) tea.Cmd {
	return func() tea.Msg {
		return PrayerTableLoadMsg{Result: l.PrayerTable(ctx), Gen: gen}
	}
}

func loadQuotesCmd(ctx context.Context, l ResourceLoader, gen int) tea.Cmd {
	return func() tea.Msg {
		return QuotesLoadMsg{Result: l.Quotes(ctx), Gen: gen}
	}
}
