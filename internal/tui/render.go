package tui

import (
	"strings"

	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/charmbracelet/lipgloss"
)

func (m Model) place(theme Theme, body string) string {
	framed := theme.Base.Render(body)
	if m.width <= 0 || m.height <= 0 {
		return framed
	}
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, framed)
}

func (m Model) renderDisplay() string {
	theme := ThemeAt(m.kiosk.Theme)
	sections := []string{
		m.renderHeader(theme),
		"",
		m.renderClock(theme),
		"",
		m.renderPanel(theme),
		"",
		m.renderDates(theme),
		m.renderBoard(theme),
	}
	if notes := m.renderDayNotes(theme); notes != "" {
		sections = append(sections, notes)
	}
	sections = append(sections, "", m.renderFooter(theme))
	return m.place(theme, lipgloss.JoinVertical(lipgloss.Center, sections...))
}

func (m Model) renderLoading() string {
	theme := ThemeAt(m.kiosk.Theme)
	body := lipgloss.JoinVertical(lipgloss.Center,
		m.spinner.View()+" "+theme.Header.Render("Duke u ngarkuar..."),
		theme.Dim.Render("Ju lutemi prisni ndërsa po ngarkohen të dhënat e namazit"),
	)
	return m.place(theme, body)
}

func (m Model) renderSettings() string {
	theme := ThemeAt(m.kiosk.Theme)
	var b strings.Builder
	b.WriteString(theme.Header.Render("Plotëso Formularin"))
	b.WriteString("\n\n")
	for i := 0; i < fieldCount; i++ {
		label := theme.Date.Render(fieldLabels[i])
		if m.form.Focused() == i {
			label = theme.Focused.Render("> " + fieldLabels[i])
		}
		if i == fieldIqamah {
			box := "[ ]"
			if m.form.showIqamah {
				box = "[x]"
			}
			b.WriteString(label + " " + box + "\n")
			continue
		}
		b.WriteString(label + "\n")
		b.WriteString(theme.Input.Render(m.form.inputs[i].View()) + "\n")
	}
	if m.form.Status != "" {
		b.WriteString("\n" + theme.Focused.Render(m.form.Status) + "\n")
	}
	b.WriteString("\n" + theme.Dim.Render("[tab]fusha tjetër | [space]ndrysho | "+m.keys.HelpFor(StateSettings)))
	b.WriteString("\n" + theme.Dim.Render(config.AppName+" "+versionLabel()))
	return m.place(theme, b.String())
}

func (m Model) renderPIN() string {
	theme := ThemeAt(m.kiosk.Theme)
	lines := []string{
		theme.Header.Render("Shkruani PIN-in për cilësimet"),
		"",
		theme.Input.Width(20).Render(m.lock.Input.View()),
	}
	if m.lock.Message != "" {
		lines = append(lines, theme.Error.Render(m.lock.Message))
	}
	lines = append(lines, "", theme.Dim.Render("[enter]vazhdo | "+m.keys.HelpFor(StatePIN)))
	return m.place(theme, lipgloss.JoinVertical(lipgloss.Center, lines...))
}

// renderCrashed must not depend on state that may have caused the panic.
func (m Model) renderCrashed() string {
	theme := ThemeAt(0)
	body := lipgloss.JoinVertical(lipgloss.Center,
		theme.Error.Render("Ka ndodhur një gabim"),
		"",
		theme.Date.Render("Na vjen keq, por ka ndodhur një gabim. Ju lutemi rifreskoni faqen."),
		"",
		theme.Dim.Render("[r]Rifresko Faqen | [q]dil"),
	)
	return theme.Base.Render(body)
}
