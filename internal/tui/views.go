package tui

import (
	"github.com/charmbracelet/lipgloss"
)

func (m Model) renderMain() string {
	header := m.renderHeader()

	body := lipgloss.JoinHorizontal(
		lipgloss.Top,
		m.selector.View(),
		"  ",
		m.records.View(),
	)

	sections := []string{header, body, "", m.renderStatus()}
	if m.config.ShowHelp {
		sections = append(sections, m.help.View(m.keymap))
	}
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) renderHeader() string {
	title := m.theme.Title.Render("Sales Reports")
	source := m.theme.Subtitle.Render("No sales file loaded")
	if m.source != "" {
		source = m.theme.Subtitle.Render(m.source)
	}
	return lipgloss.JoinVertical(lipgloss.Left, title, source, "")
}

func (m Model) renderStatus() string {
	switch {
	case m.state == StateBusy:
		return m.spinner.View() + " " + m.theme.StatusInfo.Render(m.busyText)
	case m.failed:
		return m.theme.StatusError.Render(m.status)
	case m.result != nil:
		return m.theme.StatusSuccess.Render(m.status)
	default:
		return m.theme.StatusBar.Render(m.status)
	}
}

func (m Model) renderPicker() string {
	return lipgloss.JoinVertical(
		lipgloss.Left,
		m.theme.Title.Render("Select sales file"),
		m.theme.Subtitle.Render(m.picker.CurrentDirectory),
		"",
		m.picker.View(),
		"",
		m.theme.StatusBar.Render("Enter to open, Esc to cancel"),
	)
}
