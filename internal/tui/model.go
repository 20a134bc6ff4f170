package tui

import (
	"context"
	"fmt"
	"math/rand"
	"runtime/debug"
	"time"

	"github.com/akyairhashvil/takvim/internal/calendar"
	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/akyairhashvil/takvim/internal/database"
	"github.com/akyairhashvil/takvim/internal/kiosk"
	"github.com/akyairhashvil/takvim/internal/profile"
	"github.com/akyairhashvil/takvim/internal/quotes"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog/log"
)

// SessionState defines the high-level mode of the application.
type SessionState int

const (
	StateLoading SessionState = iota
	StateDisplay
	StateSettings
	StatePIN
	StateCrashed
)

func (s SessionState) String() string {
	switch s {
	case StateLoading:
		return "loading"
	case StateDisplay:
		return "display"
	case StateSettings:
		return "settings"
	case StatePIN:
		return "pin"
	case StateCrashed:
		return "crashed"
	}
	return fmt.Sprintf("state(%d)", int(s))
}

// Options are the collaborators the model needs. Zero-value fields get defaults.
type Options struct {
	Config     *config.Config
	Loader     ResourceLoader
	Store      database.SettingsRepository
	Clock      kiosk.Clock
	Hijri      *calendar.HijriFormatter
	Rand       *rand.Rand
	ReportsDir string
}

// Model is the root bubbletea model.
type Model struct {
	ctx     context.Context
	opts    Options
	gen     int
	state   SessionState
	kiosk   kiosk.State
	spinner spinner.Model
	form    SettingsForm
	lock    LockModel
	keys    *HandlerRegistry
	pending int // reload results still outstanding
	Message string
	width   int
	height  int
}

// NewModel builds the model and reads the stored profile. When no profile is
// stored the settings form opens as soon as loading finishes.
func NewModel(ctx context.Context, opts Options) Model {
	return newModel(ctx, withDefaults(opts), 0)
}

func withDefaults(opts Options) Options {
	if opts.Config == nil {
		cfg, err := config.FromEnv(func(string) string { return "" })
		if err != nil {
			panic(err)
		}
		opts.Config = cfg
	}
	if opts.Clock == nil {
		opts.Clock = kiosk.ZoneClock{Location: opts.Config.Location}
	}
	if opts.Hijri == nil {
		opts.Hijri = calendar.NewHijriFormatter(nil, opts.Config.Location)
	}
	if opts.Rand == nil {
		opts.Rand = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return opts
}

func newModel(ctx context.Context, opts Options, gen int) Model {
	order, err := quotes.ParseOrder(opts.Config.QuoteOrder)
	if err != nil {
		log.Warn().Err(err).Msg("[tui] falling back to sequential quote order")
		order = quotes.OrderSequential
	}
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	m := Model{
		ctx:     ctx,
		opts:    opts,
		gen:     gen,
		state:   StateLoading,
		kiosk:   kiosk.New(opts.Config.Location, order, opts.Rand, opts.Clock.Now()),
		spinner: sp,
		lock:    NewLockModel(opts.Config.SettingsPINHash),
		keys:    defaultKeys(),
	}
	if opts.Store != nil {
		p, found := profile.Load(ctx, opts.Store)
		m.kiosk = m.kiosk.ApplyProfile(p, found)
	}
	m.form = NewSettingsForm(m.kiosk.Profile)
	return m
}

func (m Model) Init() tea.Cmd {
	cfg := m.opts.Config
	cmds := []tea.Cmd{
		m.spinner.Tick,
		clockTickCmd(cfg.ClockUpdate, m.gen),
		contentTickCmd(cfg.ContentRotation, m.gen),
		wallpaperTickCmd(cfg.WallpaperRotation, m.gen),
	}
	if m.opts.Loader != nil {
		cmds = append(cmds,
			loadPrayerTableCmd(m.ctx, m.opts.Loader, m.gen),
			loadQuotesCmd(m.ctx, m.opts.Loader, m.gen),
		)
	}
	return tea.Batch(cmds...)
}

// Update recovers from any panic in the handlers and switches to the apology
// screen. Nothing of the failed update is kept.
func (m Model) Update(msg tea.Msg) (next tea.Model, cmd tea.Cmd) {
	defer func() {
		if r := recover(); r != nil {
			next, cmd = m.crash(r), nil
		}
	}()
	return m.update(msg)
}

func (m Model) crash(r any) Model {
	log.Error().
		Str("panic", fmt.Sprint(r)).
		Str("state", m.state.String()).
		Bytes("stack", debug.Stack()).
		Msg("[tui] recovered from panic")
	m.state = StateCrashed
	m.Message = ""
	return m
}

// State reports the current mode.
func (m Model) State() SessionState { return m.state }

// Kiosk exposes the display state.
func (m Model) Kiosk() kiosk.State { return m.kiosk }

// View renders the current state. A panic while rendering shows the apology
// screen for this frame.
func (m Model) View() (out string) {
	defer func() {
		if r := recover(); r != nil {
			log.Error().Str("panic", fmt.Sprint(r)).Bytes("stack", debug.Stack()).Msg("[tui] recovered from panic in view")
			out = m.renderCrashed()
		}
	}()
	switch m.state {
	case StateLoading:
		return m.renderLoading()
	case StateSettings:
		return m.renderSettings()
	case StatePIN:
		return m.renderPIN()
	case StateCrashed:
		return m.renderCrashed()
	}
	return m.renderDisplay()
}
