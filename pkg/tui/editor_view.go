package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/wordwrap"
)

// View renders the edit modal.
func (e *EditorModel) View(width int) string {
	if !e.active {
		return ""
	}

	boxWidth := 56
	if width > 0 && width-4 < boxWidth {
		boxWidth = width - 4
	}
	contentWidth := boxWidth - 4

	var b strings.Builder

	title := lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(ColorActive)).
		Render(fmt.Sprintf("Edit Tag %s", e.tagCode))
	b.WriteString(title)
	b.WriteString("\n\n")

	labelStyle := HeaderStyle
	writeRow := func(label, value string, focused bool) {
		marker := "  "
		if focused {
			marker = lipgloss.NewStyle().Foreground(lipgloss.Color(ColorActive)).Render("> ")
		}
		b.WriteString(marker + labelStyle.Render(label) + "\n")
		b.WriteString("  " + value + "\n")
	}

	writeRow("Nickname", e.inputs[0].View(), e.focus == 0)
	for i, field := range e.form.Fields {
		label := field.Label
		if field.Required {
			label += " *"
		}
		writeRow(label, e.inputs[i+1].View(), e.focus == i+1)
	}

	status := statusStyle(string(e.form.Status)).Render(string(e.form.Status))
	hint := ""
	if e.focus == e.statusRow() {
		hint = FooterStyle.Render("  ←/→ to change")
	}
	writeRow("Status", status+hint, e.focus == e.statusRow())

	if e.errMsg != "" {
		b.WriteString("\n")
		b.WriteString(ErrorStyle.Render(wordwrap.String(e.errMsg, contentWidth)))
		b.WriteString("\n")
	}

	b.WriteString("\n")
	if e.submitting {
		b.WriteString(FooterStyle.Render("Saving..."))
	} else {
		b.WriteString(FooterStyle.Render("enter save · tab next field · esc cancel"))
	}

	return ActiveBorderStyle.Width(boxWidth).Padding(0, 1).Render(b.String())
}
