package tui

import (
	"context"
	"strings"
	"travel/internal/domains/page"
	reportDto "travel/internal/domains/report/model/dto"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

type focusArea int

const (
	focusSidebar focusArea = iota
	focusForm
	focusResult
	focusConfirm
)

// Model is the interactive console: a page selector on the left and the
// active page on the right.
type Model struct {
	app     *Console
	ctx     context.Context
	cursor  int
	active  int
	focus   focusArea
	form    *form
	reports []reportDto.ReportResponse
	result  *table.Model
	message string
	err     error
	confirm *confirmation
	loading bool
	initCmd tea.Cmd
}

// NewModel opens the console on startPage. An unknown slug opens Home.
func NewModel(ctx context.Context, app *Console, startPage string) Model {
	m := Model{app: app, ctx: ctx}

	index := page.Index(startPage)
	m.cursor = index
	m.initCmd = m.open(index)

	return m
}

func (m Model) Init() tea.Cmd {
	return m.initCmd
}

func (m Model) slug() string {
	return page.All[m.active].Slug
}

// open switches to a page and resets everything the previous page showed.
func (m *Model) open(index int) tea.Cmd {
	m.active = index
	m.result = nil
	m.message = ""
	m.err = nil
	m.confirm = nil
	m.loading = false

	var cmd tea.Cmd

	m.form, cmd = m.formFor(m.slug())

	if m.form != nil {
		m.focus = focusForm
	} else {
		m.focus = focusSidebar
	}

	return cmd
}

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case choicesMsg:
		return m.handleChoices(msg)
	case resultMsg:
		return m.handleResult(msg)
	case tea.KeyMsg:
		if msg.String() == "ctrl+c" {
			return m, tea.Quit
		}

		return m.handleKey(msg)
	}

	return m, nil
}

func (m Model) handleChoices(msg choicesMsg) (tea.Model, tea.Cmd) {
	if msg.page != m.slug() || m.form == nil {
		return m, nil
	}

	if msg.err != nil {
		m.err = msg.err

		return m, nil
	}

	f := m.form.field(msg.field)
	if f == nil {
		return m, nil
	}

	f.setChoices(msg.choices)

	if msg.field == fieldUser {
		return m, m.onChange(fieldUser)
	}

	return m, nil
}

func (m Model) handleResult(msg resultMsg) (tea.Model, tea.Cmd) {
	if msg.page != m.slug() {
		return m, nil
	}

	m.loading = false
	m.err = msg.err
	m.message = msg.message
	m.result = nil

	if msg.err != nil {
		return m, nil
	}

	if msg.frame != nil {
		result := newResultTable(*msg.frame)
		m.result = &result
		m.focus = focusResult
	}

	if m.slug() == page.SlugDeleteBooking {
		return m, m.onChange(fieldUser)
	}

	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusConfirm:
		done, cmd := m.confirm.update(msg)
		if done {
			m.confirm = nil
			m.focus = focusForm
			m.loading = cmd != nil
		}

		return m, cmd
	case focusSidebar:
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "up", "k":
			m.cursor = (m.cursor - 1 + len(page.All)) % len(page.All)
		case "down", "j":
			m.cursor = (m.cursor + 1) % len(page.All)
		case "enter", "right", "tab":
			return m, m.open(m.cursor)
		}

		return m, nil
	case focusResult:
		if msg.String() == "esc" {
			m.focus = focusForm

			return m, nil
		}

		result, cmd := m.result.Update(msg)
		m.result = &result

		return m, cmd
	case focusForm:
		switch msg.String() {
		case "esc":
			m.focus = focusSidebar

			return m, nil
		case "enter":
			m.err = nil
			m.message = ""

			cmd := m.submit()
			m.loading = cmd != nil

			return m, cmd
		}

		changed, cmd := m.form.update(msg)
		if changed != "" {
			return m, tea.Batch(cmd, m.onChange(changed))
		}

		return m, cmd
	}

	return m, nil
}

func (m Model) View() string {
	return lipgloss.JoinHorizontal(lipgloss.Top, m.sidebarView(), m.contentView())
}

func (m Model) sidebarView() string {
	var b strings.Builder

	for i, p := range page.All {
		marker := "  "
		if i == m.cursor {
			marker = "▸ "
		}

		line := unselectedItemStyle.Render(marker + p.Title)
		if i == m.active {
			line = selectedItemStyle.Render(marker + p.Title)
		}

		b.WriteString(line)
		b.WriteString("\n")
	}

	style := sidebarStyle
	if m.focus == focusSidebar {
		style = activeSidebarStyle
	}

	return style.Render(strings.TrimRight(b.String(), "\n"))
}

func (m Model) contentView() string {
	var b strings.Builder

	b.WriteString(titleStyle.Render(page.All[m.active].Title))
	b.WriteString("\n")

	if m.slug() == page.SlugHome {
		b.WriteString(page.Welcome)
		b.WriteString("\n")
	}

	if m.confirm != nil {
		b.WriteString(m.confirm.view())

		return contentStyle.Render(b.String())
	}

	if m.form != nil {
		b.WriteString(m.form.view())
	}

	switch {
	case m.loading:
		b.WriteString("\n" + mutedStyle.Render("Working…"))
	case m.err != nil:
		b.WriteString("\n" + errorStyle.Render(m.err.Error()))
	case m.message != "":
		b.WriteString("\n" + successStyle.Render(m.message))
	}

	if m.result != nil {
		b.WriteString("\n")
		b.WriteString(m.result.View())
	}

	b.WriteString("\n")
	b.WriteString(helpStyle.Render(m.help()))

	return contentStyle.Render(b.String())
}

func (m Model) help() string {
	switch m.focus {
	case focusForm:
		return FormatKey("tab/↑↓", "field") + " • " + FormatKey("←/→", "choose") + " • " + FormatKey("enter", "run") + " • " + FormatKey("esc", "pages")
	case focusResult:
		return FormatKey("↑/↓", "scroll") + " • " + FormatKey("esc", "back")
	default:
		return FormatKey("↑/↓", "page") + " • " + FormatKey("enter", "open") + " • " + FormatKey("q", "quit")
	}
}

// Run starts the console in the alternate screen and blocks until it quits.
func Run(ctx context.Context, app *Console, startPage string) error {
	_, err := tea.NewProgram(NewModel(ctx, app, startPage), tea.WithAltScreen(), tea.WithContext(ctx)).Run()

	return err //nolint:wrapcheck
}
