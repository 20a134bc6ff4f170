package tui

import (
	"fmt"
	"strings"

	"github.com/akyairhashvil/takvim/internal/calendar"
	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/akyairhashvil/takvim/internal/models"
	"github.com/akyairhashvil/takvim/internal/util"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"
)

var bigGlyphs = map[rune][3]string{
	'0': {"█▀█", "█ █", "▀▀▀"},
	'1': {" ▄█", "  █", "  ▀"},
	'2': {"▀▀█", "█▀▀", "▀▀▀"},
	'3': {"▀▀█", " ▀█", "▀▀▀"},
	'4': {"█ █", "▀▀█", "  ▀"},
	'5': {"█▀▀", "▀▀█", "▀▀▀"},
	'6': {"█▀▀", "█▀█", "▀▀▀"},
	'7': {"▀▀█", "  █", "  ▀"},
	'8': {"█▀█", "█▀█", "▀▀▀"},
	'9': {"█▀█", "▀▀█", "▀▀▀"},
	':': {" ", "▀", "▀"},
}

// bigText renders digits and colons three rows tall. Other runes are dropped.
func bigText(s string) string {
	var rows [3][]string
	for _, r := range s {
		g, ok := bigGlyphs[r]
		if !ok {
			continue
		}
		for i := range rows {
			rows[i] = append(rows[i], g[i])
		}
	}
	lines := make([]string, len(rows))
	for i, parts := range rows {
		lines[i] = strings.Join(parts, " ")
	}
	return strings.Join(lines, "\n")
}

func truncate(text string, max int) string {
	if max <= 0 {
		return ""
	}
	if ansi.StringWidth(text) <= max {
		return text
	}
	return ansi.Truncate(text, max, config.TruncationSuffix)
}

func (m Model) contentWidth() int {
	if m.width <= 0 {
		return config.MaxQuoteWidth
	}
	return util.Clamp(m.width-8, config.MinBoardCellWidth, config.MaxQuoteWidth)
}

func (m Model) renderHeader(theme Theme) string {
	p := m.kiosk.Profile
	var title string
	switch {
	case p.MosqueName != "" && p.Location != "":
		title = p.MosqueName + " - " + p.Location
	case p.MosqueName != "":
		title = p.MosqueName
	case p.Location != "":
		title = p.Location
	default:
		title = strings.ToUpper(config.AppName)
	}
	return theme.Header.Render(truncate(title, m.contentWidth()))
}

func (m Model) renderClock(theme Theme) string {
	clock := FormatClock(m.kiosk.Now)
	if m.width > 0 && m.width < config.CompactModeThreshold {
		return theme.Clock.Render(clock)
	}
	return theme.Clock.Render(bigText(clock))
}

// renderPanel shows either the countdown or the content side of the rotation.
func (m Model) renderPanel(theme Theme) string {
	width := m.contentWidth()
	if m.kiosk.ShowingCountdown() {
		if !m.kiosk.HasNext {
			return ""
		}
		line := fmt.Sprintf("%s edhe %s",
			calendar.PrayerLabel(m.kiosk.Next.Name),
			FormatCountdown(m.kiosk.Countdown, m.opts.Config.CountdownStyle))
		return theme.Countdown.Render(truncate(line, width))
	}
	c, ok := m.kiosk.Content()
	if !ok {
		return ""
	}
	var lines []string
	if c.Title != "" {
		lines = append(lines, theme.Countdown.Render(truncate(c.Title, width)))
	}
	if c.Body != "" {
		lines = append(lines, theme.Quote.Render(ansi.Wrap(c.Body, width, "")))
	}
	if c.Source != "" {
		lines = append(lines, theme.Source.Render("("+c.Source+")"))
	}
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}

func (m Model) renderDates(theme Theme) string {
	gregorian := calendar.FormatGregorian(m.kiosk.Now, m.kiosk.Location)
	hijri := m.opts.Hijri.Format(m.kiosk.Now)
	if hijri == "" {
		return theme.Date.Render(gregorian)
	}
	return theme.Date.Render(gregorian + "  •  " + hijri)
}

// boardEntries lists what the board shows; Sabahu follows Imsaku when the
// profile asks for iqamah times and the day has one.
func (m Model) boardEntries() []models.PrayerEntry {
	day := m.kiosk.Today
	entries := day.Entries()
	if !m.kiosk.Profile.ShowIqamah || day.Sabahu == "" {
		return entries
	}
	out := make([]models.PrayerEntry, 0, len(entries)+1)
	for _, e := range entries {
		out = append(out, e)
		if e.Name == models.Imsaku {
			out = append(out, models.PrayerEntry{Name: models.Sabahu, Time: day.Sabahu})
		}
	}
	return out
}

func (m Model) renderBoard(theme Theme) string {
	entries := m.boardEntries()
	compact := m.width > 0 && m.width < config.CompactModeThreshold
	cellWidth := config.MinBoardCellWidth
	if !compact && m.width > 0 {
		if w := (m.width-8)/len(entries) - 2; w > cellWidth {
			cellWidth = w
		}
	}
	cells := make([]string, 0, len(entries))
	for _, e := range entries {
		style := theme.Prayer
		if m.kiosk.IsActive(e.Name) {
			style = theme.Active
		}
		label := calendar.PrayerLabel(e.Name)
		if compact {
			cells = append(cells, style.Width(cellWidth*2).Render(fmt.Sprintf("%-14s %s", label, e.Time)))
			continue
		}
		cells = append(cells, style.Width(cellWidth+2).Render(label+"\n"+e.Time))
	}
	if compact {
		return lipgloss.JoinVertical(lipgloss.Left, cells...)
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, cells...)
}

func (m Model) renderDayNotes(theme Theme) string {
	day := m.kiosk.Today
	var parts []string
	if day.Holiday != "" {
		parts = append(parts, theme.Focused.Render(day.Holiday))
	}
	if day.Notes != "" {
		parts = append(parts, theme.Dim.Render(day.Notes))
	}
	return strings.Join(parts, "  ")
}

func (m Model) renderFooter(theme Theme) string {
	var lines []string
	if imam := m.kiosk.Profile.Imam; imam != "" {
		lines = append(lines, theme.Date.Render("Imami: "+truncate(imam, m.contentWidth())))
	}
	if m.kiosk.TableFailed || m.kiosk.QuotesFailed {
		lines = append(lines, theme.Error.Render("Gabim gjatë ngarkimit të të dhënave"))
	}
	if m.Message != "" {
		lines = append(lines, theme.Focused.Render(truncate(m.Message, m.contentWidth())))
	}
	lines = append(lines, theme.Dim.Render(m.keys.HelpFor(m.state)))
	return lipgloss.JoinVertical(lipgloss.Center, lines...)
}
