package tui

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// confirmation is a yes/no dialog. No is preselected.
type confirmation struct {
	title       string
	message     string
	yesSelected bool
	onConfirm   func() tea.Cmd
}

func newConfirmation(title, message string, onConfirm func() tea.Cmd) *confirmation {
	return &confirmation{title: title, message: message, onConfirm: onConfirm}
}

// update returns done once the dialog should close.
func (d *confirmation) update(msg tea.KeyMsg) (done bool, cmd tea.Cmd) {
	switch msg.String() {
	case "left", "h", "y":
		d.yesSelected = true
	case "right", "l", "n":
		d.yesSelected = false
	case "esc", "q":
		return true, nil
	case "enter":
		if d.yesSelected && d.onConfirm != nil {
			return true, d.onConfirm()
		}

		return true, nil
	}

	return false, nil
}

func (d *confirmation) view() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(d.title))
	b.WriteString("\n")
	b.WriteString(d.message)
	b.WriteString("\n\n")

	yesButton := inactiveButtonStyle.Render("Yes")
	noButton := inactiveButtonStyle.Render("No")

	if d.yesSelected {
		yesButton = activeButtonStyle.Render("Yes")
	} else {
		noButton = activeButtonStyle.Render("No")
	}

	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Left, yesButton, "  ", noButton))
	b.WriteString("\n")
	b.WriteString(helpStyle.Render(FormatKey("←/→", "choose") + " • " + FormatKey("enter", "confirm") + " • " + FormatKey("esc", "cancel")))

	return b.String()
}
