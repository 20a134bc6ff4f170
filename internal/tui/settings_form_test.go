package tui

import (
	"testing"

	"github.com/akyairhashvil/takvim/internal/models"
	tea "github.com/charmbracelet/bubbletea"
)

func TestSettingsFormPrefillAndFocus(t *testing.T) {
	p := models.MosqueProfile{Imam: "A", MosqueName: "B", Location: "C", AnnouncementTitle: "D", AnnouncementBody: "E", ShowIqamah: true}
	f := NewSettingsForm(p)
	if f.Profile() != p {
		t.Fatalf("Profile() = %+v, want %+v", f.Profile(), p)
	}
	f, _, changed := f.Update(tea.KeyMsg{Type: tea.KeyShiftTab})
	if changed || f.Focused() != fieldIqamah {
		t.Fatalf("shift+tab should wrap to the toggle, focus=%d", f.Focused())
	}
	f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	if f.Focused() != fieldImam {
		t.Fatalf("tab should wrap to the first field, focus=%d", f.Focused())
	}
}

func TestSettingsFormToggleIqamah(t *testing.T) {
	f := NewSettingsForm(models.MosqueProfile{})
	for i := 0; i < fieldIqamah; i++ {
		f, _, _ = f.Update(tea.KeyMsg{Type: tea.KeyTab})
	}
	f, _, changed := f.Update(tea.KeyMsg{Type: tea.KeySpace, Runes: []rune{' '}})
	if !changed || !f.Profile().ShowIqamah {
		t.Fatalf("space on the toggle should enable iqamah")
	}
	f, _, changed = f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	if changed {
		t.Fatalf("typing on the toggle must not change the profile")
	}
}

func TestSettingsFormTypingReportsChange(t *testing.T) {
	f := NewSettingsForm(models.MosqueProfile{})
	f, _, changed := f.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'H'}})
	if !changed || f.Profile().Imam != "H" {
		t.Fatalf("expected imam edit, got %+v", f.Profile())
	}
	f.Status = "kept"
	f = f.Reset()
	if f.Profile() != (models.MosqueProfile{}) || f.Status != "kept" {
		t.Fatalf("Reset() = %+v status %q", f.Profile(), f.Status)
	}
}

func TestLockModel(t *testing.T) {
	l := NewLockModel("")
	if l.Enabled() {
		t.Fatalf("lock without hash must be disabled")
	}
	l = NewLockModel("$2a$10$invalid")
	l = l.Prepare()
	l.Input.SetValue("1234")
	l, ok, exhausted := l.Submit()
	if ok || exhausted || l.Attempts != 1 || l.Input.Value() != "" {
		t.Fatalf("unexpected submit result ok=%v exhausted=%v attempts=%d", ok, exhausted, l.Attempts)
	}
}
