package components

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/Veraticus/salesflow/internal/tui/themes"
)

// ErrorModalModel is a blocking message box for failures.
type ErrorModalModel struct {
	theme   themes.Theme
	title   string
	message string
	visible bool
}

// NewErrorModal creates a hidden modal.
func NewErrorModal(theme themes.Theme) ErrorModalModel {
	return ErrorModalModel{theme: theme}
}

// Show displays message under title.
func (m *ErrorModalModel) Show(title, message string) {
	m.title = title
	m.message = message
	m.visible = true
}

// Hide dismisses the modal.
func (m *ErrorModalModel) Hide() {
	m.visible = false
}

// Visible reports whether the modal is shown.
func (m ErrorModalModel) Visible() bool {
	return m.visible
}

// Message returns the current message.
func (m ErrorModalModel) Message() string {
	return m.message
}

// View renders the modal centered in a width x height area.
func (m ErrorModalModel) View(width, height int) string {
	boxWidth := min(max(30, width-10), 70)
	body := lipgloss.JoinVertical(
		lipgloss.Center,
		m.theme.StatusError.Render(m.title),
		"",
		lipgloss.NewStyle().Width(boxWidth-8).Align(lipgloss.Center).Render(m.message),
		"",
		m.theme.Subtitle.Render("Press Enter to dismiss"),
	)

	return lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center,
		m.theme.ErrorBox.Width(boxWidth).Render(body))
}
