package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func TestHelpForState(t *testing.T) {
	r := defaultKeys()
	help := r.HelpFor(StateDisplay)
	for _, want := range []string{"[s]cilësimet", "[r]rifresko", "[e]eksporto muajin", "[q]dil"} {
		if !strings.Contains(help, want) {
			t.Fatalf("display help %q missing %q", help, want)
		}
	}
	if strings.Contains(r.HelpFor(StateSettings), "[q]") {
		t.Fatalf("q must not be bound while typing in the form")
	}
}

func TestRegistryPriorityAndFallthrough(t *testing.T) {
	r := NewHandlerRegistry()
	var calls []string
	r.Register(KeyBinding{Key: "a", Priority: 1, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		calls = append(calls, "low")
		return m, nil, true
	}})
	r.Register(KeyBinding{Key: "a", Priority: 5, Handler: func(m Model, _ string) (Model, tea.Cmd, bool) {
		calls = append(calls, "high")
		return m, nil, false
	}})
	if _, _, handled := r.Handle(Model{state: StateDisplay}, "a"); !handled {
		t.Fatalf("expected key to be handled")
	}
	if strings.Join(calls, ",") != "high,low" {
		t.Fatalf("unexpected call order %v", calls)
	}
	if _, _, handled := r.Handle(Model{}, "b"); handled {
		t.Fatalf("unbound key must not be handled")
	}
}

func TestBindingStates(t *testing.T) {
	b := KeyBinding{States: []SessionState{StatePIN}}
	if !b.AppliesTo(StatePIN) || b.AppliesTo(StateDisplay) {
		t.Fatalf("unexpected AppliesTo result")
	}
	if !(KeyBinding{}).AppliesTo(StateCrashed) {
		t.Fatalf("binding without states applies everywhere")
	}
}
