// Package components contains the widgets composed by the interactive shell.
package components

import (
	"fmt"
	"strconv"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/salesflow/internal/model"
	"github.com/Veraticus/salesflow/internal/tui/themes"
)

// RecordTableModel shows the records of a filtered view.
type RecordTableModel struct {
	theme  themes.Theme
	view   model.FilteredView
	table  table.Model
	width  int
	height int
	shown  bool
}

// NewRecordTable creates an empty record table.
func NewRecordTable(theme themes.Theme) RecordTableModel {
	t := table.New(
		table.WithFocused(true),
		table.WithHeight(10),
	)

	s := table.DefaultStyles()
	s.Header = theme.TableHeader
	s.Selected = theme.TableSelected
	t.SetStyles(s)

	m := RecordTableModel{
		theme:  theme,
		table:  t,
		width:  80,
		height: 14,
	}
	m.updateColumnWidths()
	return m
}

// SetView replaces the table rows with the view's records, in order.
func (m *RecordTableModel) SetView(view model.FilteredView) {
	m.view = view
	m.shown = true

	rows := make([]table.Row, 0, view.Len())
	for _, r := range view.Records {
		date := ""
		if !r.Date.IsZero() {
			date = r.DateString()
		}
		rows = append(rows, table.Row{
			r.ID,
			r.Name,
			r.Category,
			model.FormatMoney(r.Price),
			strconv.FormatInt(r.Quantity, 10),
			date,
		})
	}
	m.table.SetRows(rows)
	m.table.GotoTop()
}

// Clear removes any shown view.
func (m *RecordTableModel) Clear() {
	m.view = model.FilteredView{}
	m.shown = false
	m.table.SetRows(nil)
}

// Len returns the number of rows shown.
func (m RecordTableModel) Len() int {
	return m.view.Len()
}

// Rows returns the table rows, for inspection.
func (m RecordTableModel) Rows() []table.Row {
	return m.table.Rows()
}

// Update handles scrolling keys.
func (m RecordTableModel) Update(msg tea.Msg) (RecordTableModel, tea.Cmd) {
	var cmd tea.Cmd
	m.table, cmd = m.table.Update(msg)
	return m, cmd
}

// View renders the table or a hint when nothing has been filtered yet.
func (m RecordTableModel) View() string {
	switch {
	case !m.shown:
		return m.theme.Placeholder.Render("Load a sales file and filter a category to see its records.")
	case m.view.Empty():
		return m.theme.Placeholder.Render(fmt.Sprintf("No sales found for category %q.", m.view.Category))
	}

	title := m.theme.Bold.Render(fmt.Sprintf("%s (%d)", m.view.Category, m.view.Len()))
	return lipgloss.JoinVertical(lipgloss.Left, title, m.table.View())
}

// Resize updates the component size.
func (m *RecordTableModel) Resize(width, height int) {
	m.width = width
	m.height = height

	// Title line plus header row and its border.
	m.table.SetHeight(max(1, height-3))
	m.updateColumnWidths()
}

func (m *RecordTableModel) updateColumnWidths() {
	availableWidth := max(60, m.width-4)

	columns := []table.Column{
		{Title: "ID", Width: max(4, int(float64(availableWidth)*0.08))},
		{Title: "Product", Width: max(15, int(float64(availableWidth)*0.30))},
		{Title: "Category", Width: max(12, int(float64(availableWidth)*0.20))},
		{Title: "Price", Width: max(10, int(float64(availableWidth)*0.14))},
		{Title: "Qty", Width: max(4, int(float64(availableWidth)*0.08))},
		{Title: "Date", Width: max(10, int(float64(availableWidth)*0.14))},
	}
	m.table.SetColumns(columns)
}
