package tui

import (
	"github.com/akyairhashvil/takvim/internal/config"
	"github.com/akyairhashvil/takvim/internal/models"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

const (
	fieldImam = iota
	fieldMosqueName
	fieldLocation
	fieldAnnouncementTitle
	fieldAnnouncementBody
	fieldIqamah
	fieldCount
)

var fieldLabels = [fieldCount]string{
	"Imami",
	"Emri i Xhamisë",
	"Lokacioni",
	"Titulli i njoftimit",
	"Njoftimi",
	"Shfaq Ikametin",
}

// SettingsForm edits the mosque profile. The iqamah toggle is the last focus
// position and has no text input.
type SettingsForm struct {
	inputs     [fieldIqamah]textinput.Model
	showIqamah bool
	focus      int
	Status     string
}

func newTextInput(placeholder string, limit int) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = limit
	ti.Width = 40
	return ti
}

// NewSettingsForm pre-fills the inputs from p and focuses the first field.
func NewSettingsForm(p models.MosqueProfile) SettingsForm {
	f := SettingsForm{
		inputs: [fieldIqamah]textinput.Model{
			newTextInput("Emri i imamit...", config.MaxProfileFieldLength),
			newTextInput("Emri i xhamisë...", config.MaxProfileFieldLength),
			newTextInput("Qyteti, shteti...", config.MaxProfileFieldLength),
			newTextInput("p.sh. Iftar i përbashkët", config.MaxProfileFieldLength),
			newTextInput("Teksti i njoftimit...", config.MaxAnnouncementLength),
		},
		showIqamah: p.ShowIqamah,
	}
	f.inputs[fieldImam].SetValue(p.Imam)
	f.inputs[fieldMosqueName].SetValue(p.MosqueName)
	f.inputs[fieldLocation].SetValue(p.Location)
	f.inputs[fieldAnnouncementTitle].SetValue(p.AnnouncementTitle)
	f.inputs[fieldAnnouncementBody].SetValue(p.AnnouncementBody)
	f.inputs[fieldImam].Focus()
	return f
}

// Profile builds the whole profile from the current inputs.
func (f SettingsForm) Profile() models.MosqueProfile {
	return models.MosqueProfile{
		Imam:              f.inputs[fieldImam].Value(),
		MosqueName:        f.inputs[fieldMosqueName].Value(),
		Location:          f.inputs[fieldLocation].Value(),
		AnnouncementTitle: f.inputs[fieldAnnouncementTitle].Value(),
		AnnouncementBody:  f.inputs[fieldAnnouncementBody].Value(),
		ShowIqamah:        f.showIqamah,
	}
}

// Focused returns the index of the focused field.
func (f SettingsForm) Focused() int { return f.focus }

func (f SettingsForm) setFocus(i int) SettingsForm {
	if i < 0 {
		i = fieldCount - 1
	}
	if i >= fieldCount {
		i = 0
	}
	for idx := range f.inputs {
		if idx == i {
			f.inputs[idx].Focus()
		} else {
			f.inputs[idx].Blur()
		}
	}
	f.focus = i
	return f
}

// Update handles a message while the form is open. changed reports whether
// the profile content differs afterwards, which is the signal to save.
func (f SettingsForm) Update(msg tea.Msg) (next SettingsForm, cmd tea.Cmd, changed bool) {
	before := f.Profile()
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "tab", "down":
			return f.setFocus(f.focus + 1), nil, false
		case "shift+tab", "up":
			return f.setFocus(f.focus - 1), nil, false
		case " ":
			if f.focus == fieldIqamah {
				f.showIqamah = !f.showIqamah
				return f, nil, true
			}
		}
	}
	if f.focus == fieldIqamah {
		return f, nil, false
	}
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	return f, cmd, f.Profile() != before
}

// Reset clears every field, as after deleting the stored profile.
func (f SettingsForm) Reset() SettingsForm {
	next := NewSettingsForm(models.MosqueProfile{})
	next.Status = f.Status
	return next
}
