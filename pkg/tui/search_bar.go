package tui

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// SearchBar wraps a text input for the free-text owner/profile search.
// It only edits the pending term; the catalog model decides when the term
// is committed to the filter state (enter) or discarded (esc).
type SearchBar struct {
	input    textinput.Model
	isActive bool
	width    int
}

// NewSearchBar creates a new search bar component
func NewSearchBar() *SearchBar {
	ti := textinput.New()
	ti.Placeholder = "Search owner or profile..."
	ti.CharLimit = 100
	ti.Width = 50

	return &SearchBar{input: ti}
}

// SetActive sets whether the search bar has focus
func (s *SearchBar) SetActive(active bool) {
	s.isActive = active
	if active {
		s.input.Focus()
	} else {
		s.input.Blur()
	}
}

// Active returns whether the search bar has focus
func (s *SearchBar) Active() bool {
	return s.isActive
}

// SetWidth sets the width for the search bar
func (s *SearchBar) SetWidth(width int) {
	s.width = width
	// Account for border, padding and the icon
	s.input.Width = width - 12
}

// Value returns the pending search text
func (s *SearchBar) Value() string {
	return s.input.Value()
}

// SetValue sets the pending search text
func (s *SearchBar) SetValue(value string) {
	s.input.SetValue(value)
}

// Update handles tea messages for the search bar
func (s *SearchBar) Update(msg tea.Msg) (*SearchBar, tea.Cmd) {
	var cmd tea.Cmd
	s.input, cmd = s.input.Update(msg)
	return s, cmd
}

// View renders the search bar
func (s *SearchBar) View() string {
	borderColor := ColorInactive
	if s.isActive {
		borderColor = ColorActive
	}

	searchStyle := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(lipgloss.Color(borderColor)).
		Width(s.width - 4).
		Padding(0, 1)

	icon := "⌕ "
	if s.isActive {
		icon = lipgloss.NewStyle().
			Foreground(lipgloss.Color(ColorActive)).
			Bold(true).
			Render("⌕ ")
	}

	return searchStyle.Render(icon + s.input.View())
}
