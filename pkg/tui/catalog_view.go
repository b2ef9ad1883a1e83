package tui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/muesli/reflow/wordwrap"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// View renders the catalog screen.
func (m *CatalogModel) View() string {
	var b strings.Builder

	b.WriteString(m.renderTabs())
	b.WriteString("\n")
	b.WriteString(m.searchBar.View())
	b.WriteString("\n")
	b.WriteString(m.renderFilterLine())
	b.WriteString("\n\n")

	if m.editor.Active() {
		b.WriteString(m.editor.View(m.width))
		b.WriteString("\n")
		return b.String()
	}

	b.WriteString(m.renderList())
	b.WriteString("\n")

	if m.errMsg != "" {
		width := m.width - 2
		if width < 20 {
			width = 60
		}
		b.WriteString(ErrorStyle.Render(wordwrap.String(m.errMsg, width)))
		b.WriteString("\n")
	}
	if m.notice != "" {
		b.WriteString(NoticeStyle.Render(m.notice))
		b.WriteString("\n")
	}

	if m.deleteConfirm.Active() {
		b.WriteString(m.deleteConfirm.View())
		b.WriteString("\n")
	} else {
		b.WriteString(m.renderFooter())
	}

	return b.String()
}

func (m *CatalogModel) renderTabs() string {
	tabs := make([]string, 0, len(models.DomainTypes))
	for _, dt := range models.DomainTypes {
		label := fmt.Sprintf("%s TAGS", dt)
		if dt == m.domainType {
			tabs = append(tabs, TabActiveStyle.Render(label))
		} else {
			tabs = append(tabs, TabInactiveStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, tabs...)
}

// renderFilterLine shows the active status/vendor filters and, when a
// vendor is selected, its contact details.
func (m *CatalogModel) renderFilterLine() string {
	status := "all"
	if m.filter.Status != "" {
		status = m.filter.Status
	}
	parts := []string{fmt.Sprintf("status: %s", status)}

	if m.vendorCursor > 0 && m.vendorCursor <= len(m.vendors) {
		v := m.vendors[m.vendorCursor-1]
		vendor := fmt.Sprintf("vendor: %s", v.Name)
		if v.ContactEmail != "" {
			vendor += fmt.Sprintf(" <%s>", v.ContactEmail)
		}
		if !v.CreatedAt.IsZero() {
			vendor += fmt.Sprintf(" (since %s)", humanize.Time(v.CreatedAt))
		}
		parts = append(parts, vendor)
	} else if m.vendorsLoaded && len(m.vendors) == 0 {
		parts = append(parts, "vendor: unavailable")
	} else {
		parts = append(parts, "vendor: all")
	}

	return FooterStyle.Render(strings.Join(parts, "  ·  "))
}

func (m *CatalogModel) renderList() string {
	if m.loading && !m.fetched {
		return m.spinner.View() + " Loading tags..."
	}

	if len(m.tags) == 0 {
		if !m.fetched {
			return m.spinner.View() + " Loading tags..."
		}
		// Explicit empty state, distinct from loading and from errors.
		return EmptyStyle.Render(fmt.Sprintf("No %s tags found.", strings.ToLower(string(m.domainType))))
	}

	var b strings.Builder
	header := fmt.Sprintf("  %-12s %-20s %-10s %-20s", "CODE", "NICKNAME", "STATUS", "PROFILE")
	b.WriteString(HeaderStyle.Render(header))
	b.WriteString("\n")

	for i, tag := range m.tags {
		nickname := tag.Nickname
		if nickname == "" {
			nickname = "-"
		}
		row := fmt.Sprintf("%-12s %-20s %-10s %-20s",
			tag.Code, truncate(nickname, 20), tag.Status, truncate(tag.ProfileSummary(), 20))

		if i == m.cursor {
			b.WriteString(SelectedStyle.Render("> " + row))
		} else {
			b.WriteString(NormalStyle.Render("  " + row))
		}
		b.WriteString("\n")
	}

	b.WriteString("\n")
	b.WriteString(m.renderPageLine())
	return b.String()
}

func (m *CatalogModel) renderPageLine() string {
	if m.meta == nil {
		return FooterStyle.Render(fmt.Sprintf("%d tags", len(m.tags)))
	}
	line := fmt.Sprintf("page %d/%d · %d total", m.filter.Page, m.meta.TotalPages, m.meta.Total)
	if m.filter.Page < m.meta.TotalPages {
		line += " · → next"
	}
	if m.filter.Page > 1 {
		line += " · ← prev"
	}
	return FooterStyle.Render(line)
}

func (m *CatalogModel) renderFooter() string {
	keys := "↑/↓ move · tab type · / search · s status · v vendor · ←/→ page · e edit · d delete · c copy code · x clear · r refresh · q quit"
	if m.deleting {
		keys = m.spinner.View() + " Deleting..."
	}
	return FooterStyle.Render(keys)
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	if n <= 1 {
		return s[:n]
	}
	return s[:n-1] + "…"
}
