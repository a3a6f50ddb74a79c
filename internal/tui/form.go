package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const inputWidth = 40

type formField struct {
	label string
	input textinput.Model
}

// inputForm is a column of labelled text inputs with one focused field.
type inputForm struct {
	fields []formField
	focus  int
}

func textField(label, placeholder string, charLimit int) formField {
	in := textinput.New()
	in.Placeholder = placeholder
	in.CharLimit = charLimit
	in.Width = inputWidth
	return formField{label: label, input: in}
}

func passwordField(label, placeholder string) formField {
	f := textField(label, placeholder, 256)
	f.input.EchoMode = textinput.EchoPassword
	f.input.EchoCharacter = '*'
	return f
}

func newInputForm(fields ...formField) inputForm {
	f := inputForm{fields: fields}
	if len(f.fields) > 0 {
		f.fields[0].input.Focus()
	}
	return f
}

// handleKey moves the focus on tab and shift+tab. It reports whether the key
// was consumed.
func (f *inputForm) handleKey(msg tea.KeyMsg) bool {
	switch {
	case key.Matches(msg, keys.tab):
		f.setFocus((f.focus + 1) % len(f.fields))
		return true
	case key.Matches(msg, keys.backtab):
		f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
		return true
	}
	return false
}

func (f *inputForm) setFocus(i int) {
	f.fields[f.focus].input.Blur()
	f.focus = i
	f.fields[f.focus].input.Focus()
}

// update forwards msg to the focused input.
func (f *inputForm) update(msg tea.Msg) tea.Cmd {
	var cmd tea.Cmd
	f.fields[f.focus].input, cmd = f.fields[f.focus].input.Update(msg)
	return cmd
}

func (f inputForm) value(i int) string {
	return f.fields[i].input.Value()
}

func (f *inputForm) setValues(values ...string) {
	for i, v := range values {
		if i < len(f.fields) {
			f.fields[i].input.SetValue(v)
		}
	}
}

func (f *inputForm) reset() {
	for i := range f.fields {
		f.fields[i].input.Reset()
	}
	f.setFocus(0)
}

func (f inputForm) view() string {
	labelWidth := lipgloss.Width("Field")
	for _, field := range f.fields {
		if w := lipgloss.Width(field.label); w > labelWidth {
			labelWidth = w
		}
	}

	var b strings.Builder
	b.WriteString(fmt.Sprintf("%-*s │ Value\n", labelWidth, "Field"))
	b.WriteString(strings.Repeat("─", labelWidth))
	b.WriteString("─┼─")
	b.WriteString(strings.Repeat("─", inputWidth+4))
	b.WriteString("\n")

	for _, field := range f.fields {
		b.WriteString(fmt.Sprintf("%-*s │ [", labelWidth, field.label))
		b.WriteString(field.input.View())
		b.WriteString("]\n")
	}
	return strings.TrimRight(b.String(), "\n")
}

func submitButton(label string, submitting bool) string {
	if submitting {
		return "\n[" + label + "...]\n"
	}
	return "\n[" + label + "]\n"
}
