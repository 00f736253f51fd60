package components

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/Veraticus/salesflow/internal/tui/themes"
)

// SelectorKeyMap moves the selection.
type SelectorKeyMap struct {
	Prev key.Binding
	Next key.Binding
}

// DefaultSelectorKeyMap returns the default selector bindings.
func DefaultSelectorKeyMap() SelectorKeyMap {
	return SelectorKeyMap{
		Prev: key.NewBinding(
			key.WithKeys("k", "up"),
			key.WithHelp("↑/k", "previous category"),
		),
		Next: key.NewBinding(
			key.WithKeys("j", "down"),
			key.WithHelp("↓/j", "next category"),
		),
	}
}

// CategorySelectorModel is a dropdown-like list of category options whose
// first entry is the unselected placeholder.
type CategorySelectorModel struct {
	theme   themes.Theme
	keymap  SelectorKeyMap
	options []string
	cursor  int
}

// NewCategorySelector creates a selector showing only the placeholder.
func NewCategorySelector(theme themes.Theme, placeholder string) CategorySelectorModel {
	return CategorySelectorModel{
		theme:   theme,
		keymap:  DefaultSelectorKeyMap(),
		options: []string{placeholder},
	}
}

// SetOptions replaces the options and resets the selection to the placeholder.
func (m *CategorySelectorModel) SetOptions(options []string) {
	if len(options) == 0 {
		return
	}
	m.options = options
	m.cursor = 0
}

// Selected returns the index of the selected option. Zero is the placeholder.
func (m CategorySelectorModel) Selected() int {
	return m.cursor
}

// SelectedLabel returns the selected option text.
func (m CategorySelectorModel) SelectedLabel() string {
	return m.options[m.cursor]
}

// Options returns the option list.
func (m CategorySelectorModel) Options() []string {
	return m.options
}

// KeyMap returns the selector bindings.
func (m CategorySelectorModel) KeyMap() SelectorKeyMap {
	return m.keymap
}

// Update moves the selection. It wraps at both ends.
func (m CategorySelectorModel) Update(msg tea.Msg) (CategorySelectorModel, tea.Cmd) {
	keyMsg, ok := msg.(tea.KeyMsg)
	if !ok {
		return m, nil
	}

	n := len(m.options)
	switch {
	case key.Matches(keyMsg, m.keymap.Prev):
		m.cursor = (m.cursor - 1 + n) % n
	case key.Matches(keyMsg, m.keymap.Next):
		m.cursor = (m.cursor + 1) % n
	}
	return m, nil
}

// View renders the options with the selection marked.
func (m CategorySelectorModel) View() string {
	var b strings.Builder
	b.WriteString(m.theme.Bold.Render("Category"))
	b.WriteString("\n")

	for i, option := range m.options {
		style := m.theme.Normal
		if i == 0 {
			style = m.theme.Placeholder
		}

		prefix := "  "
		if i == m.cursor {
			prefix = "▸ "
			if i != 0 {
				style = m.theme.Selected
			}
		}
		b.WriteString(prefix + style.Render(option))
		if i < len(m.options)-1 {
			b.WriteString("\n")
		}
	}
	return m.theme.RoundedBox.Render(b.String())
}
