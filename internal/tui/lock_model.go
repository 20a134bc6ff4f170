package tui

import (
	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/akyairhashvil/takvim/internal/util"
	"github.com/charmbracelet/bubbles/textinput"
)

// LockModel guards the settings form behind a PIN when a hash is configured.
type LockModel struct {
	PINHash  string
	Input    textinput.Model
	Message  string
	Attempts int
}

func NewLockModel(hash string) LockModel {
	ti := textinput.New()
	ti.Placeholder = "PIN"
	ti.EchoMode = textinput.EchoPassword
	ti.EchoCharacter = '•'
	ti.CharLimit = 12
	ti.Width = 14
	return LockModel{PINHash: hash, Input: ti}
}

// Enabled reports whether opening settings requires a PIN.
func (l LockModel) Enabled() bool {
	return l.PINHash != ""
}

// Prepare resets the prompt for a new attempt.
func (l LockModel) Prepare() LockModel {
	l.Input.Reset()
	l.Input.Focus()
	l.Message = ""
	return l
}

// Submit checks the entered PIN. exhausted is set once the attempt limit is hit.
func (l LockModel) Submit() (next LockModel, ok bool, exhausted bool) {
	entered := l.Input.Value()
	l.Input.Reset()
	if util.CheckPIN(l.PINHash, entered) {
		l.Attempts = 0
		l.Message = ""
		return l, true, false
	}
	l.Attempts++
	l.Message = "PIN i gabuar"
	if l.Attempts >= config.MaxPINAttempts {
		l.Attempts = 0
		return l, false, true
	}
	return l, false, false
}
