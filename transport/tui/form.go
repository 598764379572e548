package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldChoice
)

type choice struct {
	Label string
	Value string
}

// field is either a free text input or a left/right picker over choices.
type field struct {
	name     string
	label    string
	kind     fieldKind
	input    textinput.Model
	choices  []choice
	selected int
}

func textField(name, label, value string) *field {
	input := textinput.New()
	input.Prompt = ""
	input.CharLimit = 100
	input.SetValue(value)

	return &field{name: name, label: label, kind: fieldText, input: input}
}

func choiceField(name, label string, choices []choice) *field {
	return &field{name: name, label: label, kind: fieldChoice, choices: choices}
}

func (f *field) value() string {
	if f.kind == fieldText {
		return strings.TrimSpace(f.input.Value())
	}

	if f.selected < 0 || f.selected >= len(f.choices) {
		return ""
	}

	return f.choices[f.selected].Value
}

func (f *field) selectedLabel() string {
	if f.selected < 0 || f.selected >= len(f.choices) {
		return ""
	}

	return f.choices[f.selected].Label
}

func (f *field) setChoices(choices []choice) {
	f.choices = choices
	f.selected = 0
}

// cycle moves the picker and reports whether the selection changed.
func (f *field) cycle(step int) bool {
	if f.kind != fieldChoice || len(f.choices) < 2 {
		return false
	}

	f.selected = (f.selected + step + len(f.choices)) % len(f.choices)

	return true
}

type form struct {
	fields []*field
	focus  int
}

func newForm(fields ...*field) *form {
	f := &form{fields: fields}
	f.focusField(0)

	return f
}

func (f *form) field(name string) *field {
	for _, fl := range f.fields {
		if fl.name == name {
			return fl
		}
	}

	return nil
}

func (f *form) focused() *field {
	if f.focus < 0 || f.focus >= len(f.fields) {
		return nil
	}

	return f.fields[f.focus]
}

func (f *form) focusField(index int) {
	if len(f.fields) == 0 {
		return
	}

	if current := f.focused(); current != nil && current.kind == fieldText {
		current.input.Blur()
	}

	f.focus = (index + len(f.fields)) % len(f.fields)

	if next := f.focused(); next.kind == fieldText {
		next.input.Focus()
	}
}

func (f *form) values() map[string]string {
	values := make(map[string]string, len(f.fields))
	for _, fl := range f.fields {
		values[fl.name] = fl.value()
	}

	return values
}

// replaceFrom drops every field from index on and appends fields.
func (f *form) replaceFrom(index int, fields ...*field) {
	f.fields = append(f.fields[:index:index], fields...)

	if f.focus >= len(f.fields) {
		f.focusField(0)
	}
}

// update routes a key to the form. changed names the picker whose selection
// moved, if any.
func (f *form) update(msg tea.KeyMsg) (changed string, cmd tea.Cmd) {
	current := f.focused()
	if current == nil {
		return "", nil
	}

	switch msg.String() {
	case "tab", "down":
		f.focusField(f.focus + 1)

		return "", nil
	case "shift+tab", "up":
		f.focusField(f.focus - 1)

		return "", nil
	}

	if current.kind == fieldChoice {
		switch msg.String() {
		case "left", "h":
			if current.cycle(-1) {
				return current.name, nil
			}
		case "right", "l":
			if current.cycle(1) {
				return current.name, nil
			}
		}

		return "", nil
	}

	current.input, cmd = current.input.Update(msg)

	return "", cmd
}

func (f *form) view() string {
	var b strings.Builder

	for i, fl := range f.fields {
		label := labelStyle.Render(fl.label)
		if i == f.focus {
			label = focusedLabelStyle.Render(fl.label)
		}

		b.WriteString(label)

		if fl.kind == fieldText {
			b.WriteString(fl.input.View())
		} else {
			value := fl.selectedLabel()
			if len(fl.choices) == 0 {
				value = mutedStyle.Render("loading…")
			}

			if i == f.focus {
				b.WriteString(selectedItemStyle.Render("‹ " + value + " ›"))
			} else {
				b.WriteString(unselectedItemStyle.Render("  " + value))
			}
		}

		b.WriteString("\n")
	}

	return b.String()
}
