package tui

import (
	"github.com/akyairhashvil/takvim/internal/models"
	"github.com/akyairhashvil/takvim/internal/profile"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

func (m Model) update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = msg.Width, msg.Height
		return m, nil
	case ClockTickMsg:
		return m.handleClockTick(msg)
	case ContentTickMsg:
		return m.handleContentTick(msg)
	case WallpaperTickMsg:
		return m.handleWallpaperTick(msg)
	case PrayerTableLoadMsg:
		if msg.Gen != m.gen || m.state == StateCrashed {
			return m, nil
		}
		m.kiosk = m.kiosk.ApplyPrayerTable(msg.Result)
		return m.settleReload().finishLoading(), nil
	case QuotesLoadMsg:
		if msg.Gen != m.gen || m.state == StateCrashed {
			return m, nil
		}
		m.kiosk = m.kiosk.ApplyQuotes(msg.Result)
		return m.settleReload().finishLoading(), nil
	case ExportDoneMsg:
		return m.handleExportDone(msg), nil
	case spinner.TickMsg:
		if m.state != StateLoading {
			return m, nil
		}
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	switch m.state {
	case StateSettings:
		m.form, cmd, _ = m.form.Update(msg)
	case StatePIN:
		m.lock.Input, cmd = m.lock.Input.Update(msg)
	}
	return m, cmd
}

func (m Model) handleClockTick(msg ClockTickMsg) (Model, tea.Cmd) {
	if msg.Gen != m.gen || m.state == StateCrashed {
		return m, nil
	}
	m.kiosk = m.kiosk.Tick(m.opts.Clock.Now())
	return m, clockTickCmd(m.opts.Config.ClockUpdate, m.gen)
}

func (m Model) handleContentTick(msg ContentTickMsg) (Model, tea.Cmd) {
	if msg.Gen != m.gen || m.state == StateCrashed {
		return m, nil
	}
	m.kiosk = m.kiosk.Rotate()
	return m, contentTickCmd(m.opts.Config.ContentRotation, m.gen)
}

func (m Model) handleWallpaperTick(msg WallpaperTickMsg) (Model, tea.Cmd) {
	if msg.Gen != m.gen || m.state == StateCrashed {
		return m, nil
	}
	m.kiosk = m.kiosk.RotateWallpaper(len(Themes))
	log.Debug().Str("theme", ThemeAt(m.kiosk.Theme).Name).Msg("[tui] wallpaper rotated")
	return m, wallpaperTickCmd(m.opts.Config.WallpaperRotation, m.gen)
}

// finishLoading leaves the loading screen once both resources are in. Without
// a stored profile the form opens first.
func (m Model) finishLoading() Model {
	if m.state != StateLoading || !m.kiosk.Loaded() {
		return m
	}
	if m.kiosk.ProfileFound {
		m.state = StateDisplay
		return m
	}
	m.form = NewSettingsForm(m.kiosk.Profile)
	m.state = StateSettings
	return m
}

// settleReload clears the refresh notice once both reload results are in.
// A failed load is reported by the footer from the kiosk state.
func (m Model) settleReload() Model {
	if m.pending == 0 {
		return m
	}
	m.pending--
	if m.pending == 0 {
		m.Message = ""
	}
	return m
}

func (m Model) handleKey(msg tea.KeyMsg) (Model, tea.Cmd) {
	if next, cmd, handled := m.keys.Handle(m, msg.String()); handled {
		return next, cmd
	}
	var cmd tea.Cmd
	switch m.state {
	case StateSettings:
		var changed bool
		m.form, cmd, changed = m.form.Update(msg)
		if changed {
			m, _ = m.saveProfile()
		}
	case StatePIN:
		m.lock.Input, cmd = m.lock.Input.Update(msg)
	}
	return m, cmd
}

// saveProfile writes the whole form as the profile. The display follows the
// form even when the write fails; the failure is shown in the form.
func (m Model) saveProfile() (Model, error) {
	p := m.form.Profile()
	m.kiosk = m.kiosk.ApplyProfile(p, true)
	if m.opts.Store == nil {
		return m, nil
	}
	if err := profile.Save(m.ctx, m.opts.Store, p); err != nil {
		log.Error().Err(err).Msg("[tui] profile save failed")
		m.form.Status = "Ruajtja dështoi"
		return m, err
	}
	m.form.Status = ""
	return m, nil
}

func (m Model) handleExportDone(msg ExportDoneMsg) Model {
	if msg.Err != nil {
		log.Error().Err(msg.Err).Msg("[tui] month export failed")
		m.Message = "Eksportimi dështoi"
		return m
	}
	log.Info().Str("path", msg.Path).Msg("[tui] month exported")
	m.Message = "U ruajt: " + msg.Path
	return m
}

func quitKey(m Model, _ string) (Model, tea.Cmd, bool) {
	return m, tea.Quit, true
}

func openSettingsKey(m Model, _ string) (Model, tea.Cmd, bool) {
	m.Message = ""
	if m.lock.Enabled() {
		m.lock = m.lock.Prepare()
		m.state = StatePIN
		return m, textinput.Blink, true
	}
	m.form = NewSettingsForm(m.kiosk.Profile)
	m.state = StateSettings
	return m, textinput.Blink, true
}

func reloadKey(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.opts.Loader == nil {
		return m, nil, true
	}
	m.Message = "Duke rifreskuar..."
	m.pending = 2
	return m, tea.Batch(
		loadPrayerTableCmd(m.ctx, m.opts.Loader, m.gen),
		loadQuotesCmd(m.ctx, m.opts.Loader, m.gen),
	), true
}

func exportKey(m Model, _ string) (Model, tea.Cmd, bool) {
	table := m.kiosk.Table
	month := m.kiosk.Now
	prof := m.kiosk.Profile
	dir := m.opts.ReportsDir
	m.Message = "Duke eksportuar..."
	return m, func() tea.Msg {
		path, err := ExportMonthPDF(table, month, prof, dir)
		return ExportDoneMsg{Path: path, Err: err}
	}, true
}

// fullReloadKey rebuilds the model from scratch, as after a crash.
func fullReloadKey(m Model, _ string) (Model, tea.Cmd, bool) {
	next := newModel(m.ctx, m.opts, m.gen+1)
	next.width, next.height = m.width, m.height
	log.Info().Int("generation", next.gen).Msg("[tui] full reload")
	return next, next.Init(), true
}

func saveAndCloseKey(m Model, _ string) (Model, tea.Cmd, bool) {
	next, err := m.saveProfile()
	if err != nil {
		return next, nil, true
	}
	next.state = StateDisplay
	return next, nil, true
}

func closeSettingsKey(m Model, _ string) (Model, tea.Cmd, bool) {
	m.form.Status = ""
	m.state = StateDisplay
	return m, nil, true
}

func deleteProfileKey(m Model, _ string) (Model, tea.Cmd, bool) {
	if m.opts.Store != nil {
		if err := profile.Delete(m.ctx, m.opts.Store); err != nil {
			log.Error().Err(err).Msg("[tui] profile delete failed")
			m.form.Status = "Fshirja dështoi"
			return m, nil, true
		}
	}
	m.kiosk = m.kiosk.ApplyProfile(models.MosqueProfile{}, false)
	m.form = m.form.Reset()
	m.form.Status = "Të dhënat u fshinë"
	return m, nil, true
}

func submitPINKey(m Model, _ string) (Model, tea.Cmd, bool) {
	lock, ok, exhausted := m.lock.Submit()
	m.lock = lock
	switch {
	case ok:
		m.form = NewSettingsForm(m.kiosk.Profile)
		m.state = StateSettings
		return m, textinput.Blink, true
	case exhausted:
		log.Warn().Msg("[tui] settings PIN attempts exhausted")
		m.Message = "Shumë përpjekje të gabuara"
		m.state = StateDisplay
	}
	return m, nil, true
}

func cancelPINKey(m Model, _ string) (Model, tea.Cmd, bool) {
	m.lock.Input.Reset()
	m.state = StateDisplay
	return m, nil, true
}

