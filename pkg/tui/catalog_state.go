package tui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tagdeck/tagdeck-cli/pkg/catalog"
	"github.com/tagdeck/tagdeck-cli/pkg/client"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// CatalogModel is the tag catalog view: one domain-type tab at a time,
// server-side filtered and paginated. The tag list and pagination metadata
// always mirror the last successful fetch for the current filter+page; no
// client-side filtering is layered on top.
type CatalogModel struct {
	client *client.Client

	domainType models.DomainType
	filter     catalog.FilterState

	tags   []models.Tag
	meta   *models.PaginationMeta
	cursor int

	// fetchSeq tags each issued fetch; only the result carrying the
	// latest seq is allowed to land (last-request-wins).
	fetchSeq int
	loading  bool
	fetched  bool // at least one fetch completed; distinguishes empty from loading

	vendors       []models.Vendor
	vendorCursor  int // 0 = all, 1..n = vendors[n-1]
	vendorsLoaded bool

	errMsg string
	notice string

	searchBar     *SearchBar
	editor        *EditorModel
	deleteConfirm *ConfirmationModel

	// pendingDelete is the id awaiting its confirmation gate or in-flight
	// delete request.
	pendingDelete string
	deleting      bool

	spinner spinner.Model
	width   int
	height  int
}

// NewCatalogModel builds the catalog view starting on the given tab.
func NewCatalogModel(c *client.Client, startType models.DomainType) *CatalogModel {
	sp := spinner.New()
	sp.Spinner = spinner.Dot

	if !startType.Valid() {
		startType = models.DomainCar
	}

	return &CatalogModel{
		client:        c,
		domainType:    startType,
		filter:        catalog.NewFilterState(),
		searchBar:     NewSearchBar(),
		editor:        NewEditor(),
		deleteConfirm: NewConfirmation(),
		spinner:       sp,
	}
}

// Init issues the initial fetch and the once-per-session vendor load.
func (m *CatalogModel) Init() tea.Cmd {
	return tea.Batch(m.refetch(), loadVendorsCmd(m.client), m.spinner.Tick)
}

// SetSize updates layout dimensions.
func (m *CatalogModel) SetSize(width, height int) {
	m.width = width
	m.height = height
	m.searchBar.SetWidth(width)
	m.deleteConfirm.SetWidth(width)
}

// refetch issues a fetch for the current filter+page and bumps the fetch
// sequence so any in-flight result for older parameters is discarded on
// arrival.
func (m *CatalogModel) refetch() tea.Cmd {
	m.loading = true
	m.errMsg = ""
	m.fetchSeq++
	return fetchTagsCmd(m.client, m.domainType, m.filter, m.fetchSeq)
}

// InputCaptured reports whether a modal layer (editor, confirmation,
// search input) currently owns the keyboard.
func (m *CatalogModel) InputCaptured() bool {
	return m.editor.Active() || m.deleteConfirm.Active() || m.searchBar.Active()
}

// selected returns the tag under the cursor, or nil.
func (m *CatalogModel) selected() *models.Tag {
	if m.cursor < 0 || m.cursor >= len(m.tags) {
		return nil
	}
	return &m.tags[m.cursor]
}

// vendorFilterID returns the vendor id for the current vendor cursor,
// FilterAll when "all vendors" is selected.
func (m *CatalogModel) vendorFilterID() string {
	if m.vendorCursor == 0 || m.vendorCursor > len(m.vendors) {
		return catalog.FilterAll
	}
	return m.vendors[m.vendorCursor-1].ID
}

// Update routes messages for the catalog view.
func (m *CatalogModel) Update(msg tea.Msg) (*CatalogModel, tea.Cmd) {
	switch msg := msg.(type) {

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tagsLoadedMsg:
		if msg.seq != m.fetchSeq {
			// Superseded request; a newer fetch owns the display.
			return m, nil
		}
		m.loading = false
		m.fetched = true
		if msg.err != nil {
			// Fail-empty: never leave a stale page on screen.
			m.tags = nil
			m.meta = nil
			m.cursor = 0
			m.errMsg = userMessage(msg.err, "Failed to load tags. Check the connection and press r to retry.")
			return m, nil
		}
		m.tags = msg.page.Tags
		m.meta = msg.page.Meta
		if m.cursor >= len(m.tags) {
			m.cursor = max(0, len(m.tags)-1)
		}
		return m, nil

	case tagSavedMsg:
		if msg.err != nil {
			m.editor.SubmitFailed(userMessage(msg.err, "Failed to update tag. Nothing was changed."))
			return m, nil
		}
		m.editor.Reset()
		m.notice = "Tag updated"
		// Re-fetch with the filter state current now, not at submit time;
		// server-joined fields stay correct and filters may have moved.
		return m, m.refetch()

	case tagDeletedMsg:
		m.deleting = false
		m.pendingDelete = ""
		if msg.err != nil {
			m.errMsg = userMessage(msg.err, "Failed to delete tag.")
			return m, nil
		}
		m.notice = "Tag deleted"
		// Deleting can shift pagination totals, so re-fetch rather than
		// splice locally.
		return m, m.refetch()

	case vendorsLoadedMsg:
		m.vendorsLoaded = true
		if msg.err != nil {
			// Degrade to no vendor options; the page stays usable.
			m.vendors = nil
			return m, nil
		}
		m.vendors = msg.vendors
		return m, nil

	case copiedMsg:
		if msg.err == nil {
			m.notice = fmt.Sprintf("Copied %s", msg.code)
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *CatalogModel) handleKey(msg tea.KeyMsg) (*CatalogModel, tea.Cmd) {
	m.notice = ""

	// Modal layers take priority: confirmation gate, then editor, then
	// search input, then the list itself.
	if m.deleteConfirm.Active() {
		return m, m.deleteConfirm.Update(msg)
	}

	if m.editor.Active() {
		result, cmd := m.editor.HandleKey(msg)
		switch result {
		case editSubmit:
			form := m.editor.Form()
			return m, tea.Batch(saveTagCmd(m.client, form.TagID, form.Body()), m.spinner.Tick)
		default:
			return m, cmd
		}
	}

	if m.searchBar.Active() {
		switch msg.String() {
		case "enter":
			m.searchBar.SetActive(false)
			m.filter.SetSearch(m.searchBar.Value())
			return m, m.refetch()
		case "esc":
			m.searchBar.SetActive(false)
			m.searchBar.SetValue(m.filter.Search)
			return m, nil
		default:
			var cmd tea.Cmd
			m.searchBar, cmd = m.searchBar.Update(msg)
			return m, cmd
		}
	}

	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}

	case "down", "j":
		if m.cursor < len(m.tags)-1 {
			m.cursor++
		}

	case "tab":
		m.nextDomainType(1)
		return m, m.refetch()

	case "shift+tab":
		m.nextDomainType(-1)
		return m, m.refetch()

	case "/":
		m.searchBar.SetActive(true)
		return m, nil

	case "s":
		m.filter.CycleStatus()
		return m, m.refetch()

	case "v":
		if len(m.vendors) == 0 {
			return m, nil
		}
		m.vendorCursor = (m.vendorCursor + 1) % (len(m.vendors) + 1)
		m.filter.SetVendor(m.vendorFilterID())
		return m, m.refetch()

	case "right", "l", "n":
		before := m.filter.Page
		m.filter.NextPage(m.meta)
		if m.filter.Page != before {
			return m, m.refetch()
		}

	case "left", "h", "p":
		before := m.filter.Page
		m.filter.PrevPage()
		if m.filter.Page != before {
			return m, m.refetch()
		}

	case "enter", "e":
		if tag := m.selected(); tag != nil {
			// Last-opened wins: Start discards any previous session.
			m.editor.Start(*tag)
		}
		return m, nil

	case "d":
		tag := m.selected()
		if tag == nil || m.deleting {
			return m, nil
		}
		m.pendingDelete = tag.ID
		m.deleteConfirm.Show(
			fmt.Sprintf("Delete tag %s? This cannot be undone.", tag.Code),
			true,
			func() tea.Cmd {
				m.deleting = true
				return tea.Batch(deleteTagCmd(m.client, m.pendingDelete), m.spinner.Tick)
			},
			func() tea.Cmd {
				// Declined: no request is sent, state unchanged.
				m.pendingDelete = ""
				return nil
			},
		)
		return m, nil

	case "c":
		if tag := m.selected(); tag != nil {
			return m, copyCodeCmd(tag.Code)
		}

	case "x":
		m.filter.Reset()
		m.vendorCursor = 0
		m.searchBar.SetValue("")
		return m, m.refetch()

	case "r":
		return m, m.refetch()
	}

	return m, nil
}

// nextDomainType moves to the adjacent domain tab. Each tab is its own
// type-scoped view, so the filter state starts fresh.
func (m *CatalogModel) nextDomainType(step int) {
	idx := 0
	for i, dt := range models.DomainTypes {
		if dt == m.domainType {
			idx = i
			break
		}
	}
	n := len(models.DomainTypes)
	m.domainType = models.DomainTypes[((idx+step)%n+n)%n]
	m.filter.Reset()
	m.vendorCursor = 0
	m.searchBar.SetValue("")
	m.cursor = 0
	m.tags = nil
	m.meta = nil
	m.fetched = false
}

func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}
