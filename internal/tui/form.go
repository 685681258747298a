package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/muurk/civi/internal/cv"
)

// formEventKind tells the owning section what a key press did to the form.
type formEventKind int

const (
	formNone formEventKind = iota
	formChanged
	formSubmit
	formCancel
)

type formEvent[F cv.Field] struct {
	kind  formEventKind
	field F
	value string
}

// fieldForm is the inline editor shown inside a card in edit mode: one
// text input per declared field of the record kind.
type fieldForm[F cv.Field] struct {
	fields []F
	inputs []textinput.Model
	focus  int
	keys   editKeyMap
}

func newFieldForm[F cv.Field](fields []F, value func(F) string, keys editKeyMap) fieldForm[F] {
	inputs := make([]textinput.Model, len(fields))
	for i, f := range fields {
		ti := textinput.New()
		ti.Prompt = ""
		ti.Placeholder = f.Label()
		ti.Width = 40
		ti.SetValue(value(f))
		ti.CursorEnd()
		inputs[i] = ti
	}
	form := fieldForm[F]{fields: fields, inputs: inputs, keys: keys}
	form.setFocus(0)
	return form
}

func (f *fieldForm[F]) setFocus(i int) tea.Cmd {
	if len(f.inputs) == 0 {
		return nil
	}
	i = (i + len(f.inputs)) % len(f.inputs)
	f.inputs[f.focus].Blur()
	f.focus = i
	return f.inputs[i].Focus()
}

// Focused returns the field whose input has the cursor.
func (f fieldForm[F]) Focused() F {
	return f.fields[f.focus]
}

// update routes one message to the focused input.
func (f fieldForm[F]) update(msg tea.Msg) (fieldForm[F], formEvent[F], tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		switch {
		case key.Matches(keyMsg, f.keys.Submit):
			return f, formEvent[F]{kind: formSubmit}, nil
		case key.Matches(keyMsg, f.keys.Cancel):
			return f, formEvent[F]{kind: formCancel}, nil
		case key.Matches(keyMsg, f.keys.Next):
			cmd := f.setFocus(f.focus + 1)
			return f, formEvent[F]{}, cmd
		case key.Matches(keyMsg, f.keys.Prev):
			cmd := f.setFocus(f.focus - 1)
			return f, formEvent[F]{}, cmd
		}
	}

	before := f.inputs[f.focus].Value()
	var cmd tea.Cmd
	f.inputs[f.focus], cmd = f.inputs[f.focus].Update(msg)
	after := f.inputs[f.focus].Value()
	if after == before {
		return f, formEvent[F]{}, cmd
	}
	return f, formEvent[F]{kind: formChanged, field: f.fields[f.focus], value: after}, cmd
}

// view renders "Label : [input]" rows.
func (f fieldForm[F]) view() string {
	width := labelWidth(f.fields)
	rows := make([]string, len(f.fields))
	for i, field := range f.fields {
		label := LabelStyle.Width(width).Render(field.Label() + " :")
		input := BlurredInputStyle.Render(f.inputs[i].View())
		if i == f.focus {
			label = FocusedLabelStyle.Width(width).Render(field.Label() + " :")
			input = f.inputs[i].View()
		}
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top, label, " ", input)
	}
	return strings.Join(rows, "\n")
}

// renderRows renders "Label : value" rows for display mode.
func renderRows[F cv.Field](fields []F, value func(F) string) string {
	width := labelWidth(fields)
	rows := make([]string, len(fields))
	for i, field := range fields {
		rows[i] = lipgloss.JoinHorizontal(lipgloss.Top,
			LabelStyle.Width(width).Render(field.Label()+" :"),
			" ",
			ValueStyle.Render(value(field)),
		)
	}
	return strings.Join(rows, "\n")
}

func labelWidth[F cv.Field](fields []F) int {
	w := 0
	for _, f := range fields {
		if n := lipgloss.Width(f.Label() + " :"); n > w {
			w = n
		}
	}
	return w
}
