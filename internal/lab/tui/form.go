package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
)

// field is one editable row of a view: either a free-form text input or
// a boolean toggle.
type field struct {
	label  string
	isFlag bool
	on     bool
	input  textinput.Model
}

func newTextField(label, value string, width int) field {
	ti := textinput.New()
	ti.SetValue(value)
	ti.CharLimit = 256
	ti.Width = width
	return field{label: label, input: ti}
}

func newFlagField(label string, on bool) field {
	return field{label: label, isFlag: true, on: on}
}

// form tracks a column of fields and which one has focus. One field is
// focused at a time; tab order is declaration order.
type form struct {
	fields []field
	focus  int
}

func newForm(fields ...field) form {
	f := form{fields: fields}
	if len(f.fields) > 0 && !f.fields[0].isFlag {
		f.fields[0].input.Focus()
	}
	return f
}

func (f *form) focused() *field {
	return &f.fields[f.focus]
}

func (f *form) setFocus(i int) {
	cur := f.focused()
	if !cur.isFlag {
		cur.input.Blur()
	}
	f.focus = i
	next := f.focused()
	if !next.isFlag {
		next.input.Focus()
	}
}

func (f *form) next() {
	f.setFocus((f.focus + 1) % len(f.fields))
}

func (f *form) prev() {
	f.setFocus((f.focus - 1 + len(f.fields)) % len(f.fields))
}

// value returns the current text of the named field, or "" if it is a
// flag.
func (f *form) value(label string) string {
	for i := range f.fields {
		if f.fields[i].label == label && !f.fields[i].isFlag {
			return f.fields[i].input.Value()
		}
	}
	return ""
}

// flag returns the current state of the named toggle.
func (f *form) flag(label string) bool {
	for i := range f.fields {
		if f.fields[i].label == label && f.fields[i].isFlag {
			return f.fields[i].on
		}
	}
	return false
}

// setValue replaces the text of the named field.
func (f *form) setValue(label, value string) {
	for i := range f.fields {
		if f.fields[i].label == label && !f.fields[i].isFlag {
			f.fields[i].input.SetValue(value)
		}
	}
}

// setFlag replaces the state of the named toggle.
func (f *form) setFlag(label string, on bool) {
	for i := range f.fields {
		if f.fields[i].label == label && f.fields[i].isFlag {
			f.fields[i].on = on
		}
	}
}

// update routes a key to the form: tab moves focus, space toggles a
// focused flag, anything else edits a focused text input. It returns the
// command from the text input, if any.
func (f *form) update(msg tea.KeyMsg) tea.Cmd {
	switch msg.String() {
	case "tab", "down":
		f.next()
		return nil
	case "shift+tab", "up":
		f.prev()
		return nil
	}

	cur := f.focused()
	if cur.isFlag {
		if msg.String() == " " || msg.String() == "enter" {
			cur.on = !cur.on
		}
		return nil
	}

	var cmd tea.Cmd
	cur.input, cmd = cur.input.Update(msg)
	return cmd
}

// view renders the form column, highlighting the focused row.
func (f *form) view(th Theme) string {
	var lines []string
	for i := range f.fields {
		fd := &f.fields[i]
		label := th.Label.Render(fd.label + ":")
		if i == f.focus {
			label = th.Focused.Render(fd.label + ":")
		}

		var val string
		if fd.isFlag {
			box := "[ ]"
			if fd.on {
				box = "[x]"
			}
			val = box
		} else {
			val = fd.input.View()
		}
		lines = append(lines, label+" "+val)
	}
	return strings.Join(lines, "\n")
}
