package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tagdeck/tagdeck-cli/pkg/catalog"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// EditorModel holds one tag mutation session: the edit form plus the text
// inputs bound to it. At most one session exists at a time — Start on an
// open editor discards the previous session's unsaved state.
//
// Session states: closed (Active false) -> open -> submitting -> closed on
// success, back to open on failure.
type EditorModel struct {
	active     bool
	submitting bool
	errMsg     string

	form    catalog.EditForm
	tagCode string

	// inputs[0] is nickname; inputs[1:] follow the profile field order of
	// the form. The status row sits after the last input in focus order.
	inputs []textinput.Model
	focus  int
}

// NewEditor creates a closed editor
func NewEditor() *EditorModel {
	return &EditorModel{}
}

// Start opens an edit session seeded from an already-loaded tag. No fetch
// happens here; the list row is the source.
func (e *EditorModel) Start(tag models.Tag) {
	e.form = catalog.NewEditForm(tag)
	e.tagCode = tag.Code
	e.errMsg = ""
	e.submitting = false
	e.focus = 0

	e.inputs = make([]textinput.Model, 1+len(e.form.Fields))

	nickname := textinput.New()
	nickname.Placeholder = "Nickname"
	nickname.CharLimit = 60
	nickname.SetValue(e.form.Nickname)
	nickname.Focus()
	e.inputs[0] = nickname

	for i, field := range e.form.Fields {
		ti := textinput.New()
		ti.Placeholder = field.Label
		ti.CharLimit = 120
		ti.SetValue(e.form.Values[field.Name])
		e.inputs[i+1] = ti
	}

	e.active = true
}

// Reset closes the session and discards its state
func (e *EditorModel) Reset() {
	e.active = false
	e.submitting = false
	e.errMsg = ""
	e.inputs = nil
	e.focus = 0
}

// Active returns whether an edit session is open
func (e *EditorModel) Active() bool {
	return e.active
}

// Submitting returns whether a submit is in flight
func (e *EditorModel) Submitting() bool {
	return e.submitting
}

// Form returns the session's form with the current input values applied.
func (e *EditorModel) Form() catalog.EditForm {
	e.syncForm()
	return e.form
}

// statusRow is the focus index of the status selector.
func (e *EditorModel) statusRow() int {
	return len(e.inputs)
}

// syncForm copies the text input values into the form.
func (e *EditorModel) syncForm() {
	if len(e.inputs) == 0 {
		return
	}
	e.form.Nickname = e.inputs[0].Value()
	for i, field := range e.form.Fields {
		e.form.Values[field.Name] = e.inputs[i+1].Value()
	}
}

// submitResult is produced by HandleKey when the user submits the form.
type submitResult int

const (
	editKeep submitResult = iota // session stays open, nothing to send
	editSubmit                   // caller should send the PATCH
	editCancel                   // session discarded
)

// HandleKey processes a key press while the editor is open. Returns what
// the catalog model should do next, plus any input command.
func (e *EditorModel) HandleKey(msg tea.KeyMsg) (submitResult, tea.Cmd) {
	if e.submitting {
		// Edits are frozen while the request is in flight.
		return editKeep, nil
	}

	switch msg.String() {
	case "esc":
		e.Reset()
		return editCancel, nil

	case "enter":
		e.syncForm()
		if err := e.form.Validate(); err != nil {
			e.errMsg = err.Error()
			return editKeep, nil
		}
		e.errMsg = ""
		e.submitting = true
		return editSubmit, nil

	case "tab", "down":
		e.setFocus(e.focus + 1)
		return editKeep, nil

	case "shift+tab", "up":
		e.setFocus(e.focus - 1)
		return editKeep, nil

	case "left", "right", " ":
		if e.focus == e.statusRow() {
			e.form.CycleStatus()
			return editKeep, nil
		}
	}

	if e.focus < len(e.inputs) {
		var cmd tea.Cmd
		e.inputs[e.focus], cmd = e.inputs[e.focus].Update(msg)
		return editKeep, cmd
	}
	return editKeep, nil
}

// setFocus moves focus cyclically across inputs and the status row.
func (e *EditorModel) setFocus(next int) {
	rows := len(e.inputs) + 1 // inputs plus the status row
	e.focus = ((next % rows) + rows) % rows
	for i := range e.inputs {
		if i == e.focus {
			e.inputs[i].Focus()
		} else {
			e.inputs[i].Blur()
		}
	}
}

// SubmitFailed reopens the session after a rejected submit. The entered
// values stay as they were; nothing was applied locally.
func (e *EditorModel) SubmitFailed(errMsg string) {
	e.submitting = false
	e.errMsg = errMsg
}
