package tui

import (
	gDto "travel/shared/dto"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	lipTable "github.com/charmbracelet/lipgloss/table"
)

const (
	noRows         = "No rows."
	maxColumnWidth = 40
	minColumnWidth = 4
	resultHeight   = 12
)

// RenderFrame draws a frame as a bordered table for the non-interactive commands.
func RenderFrame(frame gDto.Frame) string {
	if len(frame.Columns) == 0 {
		return mutedStyle.Render(noRows)
	}

	t := lipTable.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(lipgloss.NewStyle().Foreground(colorBorder)).
		StyleFunc(func(row, _ int) lipgloss.Style {
			if row == lipTable.HeaderRow {
				return headerStyle
			}

			return cellStyle
		}).
		Headers(frame.Columns...).
		Rows(frame.Strings()...)

	out := t.Render()
	if frame.Empty() {
		out += "\n" + mutedStyle.Render(noRows)
	}

	return out
}

// newResultTable sizes one column per frame column from the widest cell.
func newResultTable(frame gDto.Frame) table.Model {
	cells := frame.Strings()

	columns := make([]table.Column, len(frame.Columns))
	for i, name := range frame.Columns {
		width := max(len(name), minColumnWidth)

		for _, row := range cells {
			width = max(width, len(row[i]))
		}

		columns[i] = table.Column{Title: name, Width: min(width, maxColumnWidth)}
	}

	rows := make([]table.Row, len(cells))
	for i, row := range cells {
		rows[i] = table.Row(row)
	}

	return table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(min(max(len(rows), 1), resultHeight)+1),
	)
}
