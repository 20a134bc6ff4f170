package tui

import (
	"sort"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
)

// KeyHandler runs a bound key. handled=false lets lower-priority bindings try.
type KeyHandler func(m Model, key string) (Model, tea.Cmd, bool)

type KeyBinding struct {
	Key         string
	Handler     KeyHandler
	Description string
	States      []SessionState
	Priority    int
}

func (b KeyBinding) AppliesTo(state SessionState) bool {
	if len(b.States) == 0 {
		return true
	}
	for _, s := range b.States {
		if s == state {
			return true
		}
	}
	return false
}

type HandlerRegistry struct {
	bindings []KeyBinding
}

func NewHandlerRegistry() *HandlerRegistry {
	return &HandlerRegistry{}
}

func (r *HandlerRegistry) Register(b KeyBinding) {
	r.bindings = append(r.bindings, b)
	sort.SliceStable(r.bindings, func(i, j int) bool {
		return r.bindings[i].Priority > r.bindings[j].Priority
	})
}

func (r *HandlerRegistry) Handle(m Model, key string) (Model, tea.Cmd, bool) {
	for _, b := range r.bindings {
		if b.Key == key && b.AppliesTo(m.state) {
			next, cmd, handled := b.Handler(m, key)
			if handled {
				return next, cmd, true
			}
		}
	}
	return m, nil, false
}

func (r *HandlerRegistry) BindingsFor(state SessionState) []KeyBinding {
	var out []KeyBinding
	for _, b := range r.bindings {
		if b.AppliesTo(state) {
			out = append(out, b)
		}
	}
	return out
}

// HelpFor renders "[key]description" pairs for the footer.
func (r *HandlerRegistry) HelpFor(state SessionState) string {
	seen := make(map[string]bool)
	var parts []string
	for _, b := range r.BindingsFor(state) {
		if b.Description == "" || seen[b.Key] {
			continue
		}
		seen[b.Key] = true
		parts = append(parts, "["+b.Key+"]"+b.Description)
	}
	return strings.Join(parts, " | ")
}

// defaultKeys wires the bindings of every non-text state. The settings and PIN
// states take raw input and only use the registry for their control keys.
func defaultKeys() *HandlerRegistry {
	r := NewHandlerRegistry()
	r.Register(KeyBinding{Key: "ctrl+c", Handler: quitKey, Priority: 100})
	r.Register(KeyBinding{Key: "q", Handler: quitKey, Description: "dil", States: []SessionState{StateDisplay, StateLoading, StateCrashed}, Priority: 10})
	r.Register(KeyBinding{Key: "s", Handler: openSettingsKey, Description: "cilësimet", States: []SessionState{StateDisplay}})
	r.Register(KeyBinding{Key: "r", Handler: reloadKey, Description: "rifresko", States: []SessionState{StateDisplay}})
	r.Register(KeyBinding{Key: "e", Handler: exportKey, Description: "eksporto muajin", States: []SessionState{StateDisplay}})
	r.Register(KeyBinding{Key: "r", Handler: fullReloadKey, Description: "rifresko", States: []SessionState{StateCrashed}})
	r.Register(KeyBinding{Key: "enter", Handler: saveAndCloseKey, Description: "ruaje", States: []SessionState{StateSettings}})
	r.Register(KeyBinding{Key: "esc", Handler: closeSettingsKey, Description: "mbyll", States: []SessionState{StateSettings}})
	r.Register(KeyBinding{Key: "ctrl+d", Handler: deleteProfileKey, Description: "fshij të dhënat", States: []SessionState{StateSettings}})
	r.Register(KeyBinding{Key: "enter", Handler: submitPINKey, States: []SessionState{StatePIN}})
	r.Register(KeyBinding{Key: "esc", Handler: cancelPINKey, Description: "anulo", States: []SessionState{StatePIN}})
	return r
}
