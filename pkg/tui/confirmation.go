package tui

import (
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ConfirmationModel is the gate in front of destructive actions. Nothing is
// sent to the backend until the user answers y; n or esc cancels with no
// request issued.
type ConfirmationModel struct {
	active      bool
	message     string
	destructive bool
	onConfirm   func() tea.Cmd
	onCancel    func() tea.Cmd
	viewWidth   int
}

// NewConfirmation creates a new confirmation model
func NewConfirmation() *ConfirmationModel {
	return &ConfirmationModel{}
}

// Show activates the confirmation prompt
func (m *ConfirmationModel) Show(message string, destructive bool, onConfirm, onCancel func() tea.Cmd) {
	m.active = true
	m.message = message
	m.destructive = destructive
	m.onConfirm = onConfirm
	m.onCancel = onCancel
}

// Hide deactivates the confirmation
func (m *ConfirmationModel) Hide() {
	m.active = false
}

// Active returns whether the confirmation is currently shown
func (m *ConfirmationModel) Active() bool {
	return m.active
}

// SetWidth sets the width used to center the prompt
func (m *ConfirmationModel) SetWidth(width int) {
	m.viewWidth = width
}

// Update handles key events while the confirmation is active
func (m *ConfirmationModel) Update(msg tea.KeyMsg) tea.Cmd {
	if !m.active {
		return nil
	}

	switch msg.String() {
	case "y", "Y":
		m.active = false
		if m.onConfirm != nil {
			return m.onConfirm()
		}
		return nil

	case "n", "N", "esc":
		m.active = false
		if m.onCancel != nil {
			return m.onCancel()
		}
		return nil
	}

	return nil
}

// View renders the confirmation prompt
func (m *ConfirmationModel) View() string {
	if !m.active {
		return ""
	}

	yes := "y"
	no := "n"
	if m.destructive {
		yes = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorDanger)).Bold(true).Render("y")
		no = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorSuccess)).Bold(true).Render("n")
	}
	prompt := fmt.Sprintf("%s (%s/%s)", m.message, yes, no)

	if m.viewWidth > 0 && lipgloss.Width(prompt) < m.viewWidth {
		return lipgloss.NewStyle().
			Width(m.viewWidth).
			Align(lipgloss.Center).
			Render(prompt)
	}
	return prompt
}
