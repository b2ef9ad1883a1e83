package tui

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/tagdeck/tagdeck-cli/pkg/client"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// App is the root model: it owns window sizing, global keys and the status
// bar, and routes everything else to the catalog view.
type App struct {
	catalog   *CatalogModel
	width     int
	height    int
	statusMsg string
}

// NewApp builds the console rooted at the given start tab.
func NewApp(c *client.Client, startType models.DomainType) *App {
	return &App{
		catalog: NewCatalogModel(c, startType),
	}
}

func (a *App) Init() tea.Cmd {
	return a.catalog.Init()
}

func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.height = msg.Height
		a.catalog.SetSize(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return a, tea.Quit
		}
		// q quits only when no modal layer is capturing input.
		if msg.String() == "q" && !a.catalog.InputCaptured() {
			return a, tea.Quit
		}

	case StatusMsg:
		a.statusMsg = string(msg)
		return a, nil
	}

	var cmd tea.Cmd
	a.catalog, cmd = a.catalog.Update(msg)
	return a, cmd
}

func (a *App) View() string {
	if a.width == 0 || a.height == 0 {
		return "Loading..."
	}

	content := a.catalog.View()

	if a.statusMsg != "" {
		statusStyle := lipgloss.NewStyle().
			Background(lipgloss.Color("62")).
			Foreground(lipgloss.Color("230")).
			Padding(0, 1)
		content = lipgloss.JoinVertical(lipgloss.Top, content, statusStyle.Render(a.statusMsg))
	}

	return content
}

// StatusMsg sets the transient status bar text.
type StatusMsg string
