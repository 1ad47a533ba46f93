package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"filmoteca/internal/models"
)

// Form field indices, in display order.
const (
	fieldNome = iota
	fieldDescricao
	fieldDiretor
	fieldNota
	fieldCount
)

var fieldLabels = [fieldCount]string{"Nome", "Descrição", "Diretor", "Nota (0-5)"}

// newFormInputs builds the four draft inputs with the first one focused.
func newFormInputs() []textinput.Model {
	inputs := make([]textinput.Model, fieldCount)

	for i := range inputs {
		input := textinput.New()
		input.Placeholder = fieldLabels[i]
		input.CharLimit = 120
		input.Width = 40
		inputs[i] = input
	}

	inputs[fieldNota].CharLimit = 4
	inputs[fieldNota].Width = 6
	inputs[fieldNome].Focus()

	return inputs
}

// draftFromInputs snapshots the current form contents.
func draftFromInputs(inputs []textinput.Model) models.Draft {
	return models.Draft{
		Nome:      inputs[fieldNome].Value(),
		Descricao: inputs[fieldDescricao].Value(),
		Diretor:   inputs[fieldDiretor].Value(),
		Nota:      inputs[fieldNota].Value(),
	}
}

// resetInputs blanks every field and refocuses the first one.
func resetInputs(inputs []textinput.Model) {
	for i := range inputs {
		inputs[i].SetValue("")
		inputs[i].Blur()
	}
	inputs[fieldNome].Focus()
}

// updateFormInput routes a message to the focused input. The rating field
// rejects edits that would leave it non-numeric or outside [0, 5]: the
// previous value is restored and the keystroke is dropped.
func updateFormInput(inputs []textinput.Model, focused int, msg tea.Msg) tea.Cmd {
	previous := inputs[focused].Value()

	var cmd tea.Cmd
	inputs[focused], cmd = inputs[focused].Update(msg)

	if focused == fieldNota && !models.ValidNota(inputs[focused].Value()) {
		inputs[focused].SetValue(previous)
		inputs[focused].CursorEnd()
	}

	return cmd
}

// focusField moves the focus to the given field index.
func focusField(inputs []textinput.Model, focused int) tea.Cmd {
	var cmd tea.Cmd
	for i := range inputs {
		if i == focused {
			cmd = inputs[i].Focus()
			inputs[i].PromptStyle = styles.focused
			inputs[i].TextStyle = styles.focused
		} else {
			inputs[i].Blur()
			inputs[i].PromptStyle = styles.blurred
			inputs[i].TextStyle = styles.blurred
		}
	}
	return cmd
}

// renderForm renders the labeled inputs stacked vertically.
func renderForm(inputs []textinput.Model) string {
	var out string
	for i := range inputs {
		out += fmt.Sprintf("%s\n%s\n\n", styles.help.Render(fieldLabels[i]), inputs[i].View())
	}
	return out
}
