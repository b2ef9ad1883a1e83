package tui

import (
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagdeck/tagdeck-cli/pkg/catalog"
	"github.com/tagdeck/tagdeck-cli/pkg/client"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

func key(s string) tea.KeyMsg {
	switch s {
	case "enter":
		return tea.KeyMsg{Type: tea.KeyEnter}
	case "esc":
		return tea.KeyMsg{Type: tea.KeyEsc}
	case "tab":
		return tea.KeyMsg{Type: tea.KeyTab}
	case "left":
		return tea.KeyMsg{Type: tea.KeyLeft}
	case "right":
		return tea.KeyMsg{Type: tea.KeyRight}
	default:
		return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
	}
}

func newTestModel() *CatalogModel {
	// The address is never dialed: tests drive the model with messages
	// directly and only inspect whether commands were produced.
	c := client.New("http://127.0.0.1:1")
	m := NewCatalogModel(c, models.DomainCar)
	m.SetSize(100, 40)
	return m
}

func sampleTags() []models.Tag {
	return []models.Tag{
		{
			ID: "t1", Code: "TD-0001", Status: models.StatusActive,
			DomainType: models.DomainCar, VendorID: "v-001",
			CarProfile: &models.CarProfile{VehicleNumber: "TN01AB1234"},
		},
		{
			ID: "t2", Code: "TD-0002", Nickname: "spare", Status: models.StatusMinted,
			DomainType: models.DomainCar, VendorID: "v-001",
			CarProfile: &models.CarProfile{VehicleNumber: "TN09AZ9001"},
		},
	}
}

func loadTags(t *testing.T, m *CatalogModel, tags []models.Tag, meta *models.PaginationMeta) {
	t.Helper()
	m.refetch()
	_, cmd := m.Update(tagsLoadedMsg{seq: m.fetchSeq, page: catalog.Page{Tags: tags, Meta: meta}})
	assert.Nil(t, cmd)
	require.Equal(t, len(tags), len(m.tags))
}

func TestCatalog_StaleFetchResultIsDiscarded(t *testing.T) {
	m := newTestModel()

	// First request goes out, then the filters change and a second
	// request supersedes it.
	m.refetch()
	staleSeq := m.fetchSeq
	m.filter.SetSearch("Ravi")
	m.refetch()
	freshSeq := m.fetchSeq
	require.NotEqual(t, staleSeq, freshSeq)

	// The stale result arrives late; it must not land.
	m.Update(tagsLoadedMsg{seq: staleSeq, page: catalog.Page{Tags: sampleTags()}})
	assert.True(t, m.loading)
	assert.Empty(t, m.tags, "superseded fetch must not overwrite newer state")

	// The fresh result lands normally.
	m.Update(tagsLoadedMsg{seq: freshSeq, page: catalog.Page{Tags: sampleTags()[:1]}})
	assert.False(t, m.loading)
	assert.Len(t, m.tags, 1)
}

func TestCatalog_FilterChangeResetsPageBeforeFetch(t *testing.T) {
	m := newTestModel()
	meta := &models.PaginationMeta{Total: 25, Page: 2, Limit: 10, TotalPages: 3}
	loadTags(t, m, sampleTags(), meta)
	m.filter.Page = 2

	// Changing the status filter from page 2 must issue a page-1 fetch.
	_, cmd := m.Update(key("s"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.filter.Page)
	assert.Equal(t, "MINTED", m.filter.Status)
	assert.True(t, m.loading)
}

func TestCatalog_FailedFetchIsEmptyNotStale(t *testing.T) {
	m := newTestModel()
	loadTags(t, m, sampleTags(), nil)

	m.refetch()
	m.Update(tagsLoadedMsg{seq: m.fetchSeq, err: errors.New("connection refused")})

	assert.Empty(t, m.tags, "a failed fetch must leave a clearly-empty list, not a stale one")
	assert.Nil(t, m.meta)
	assert.NotEmpty(t, m.errMsg)
	assert.True(t, m.fetched)
}

func TestCatalog_FetchErrorUsesServerMessage(t *testing.T) {
	m := newTestModel()
	m.refetch()
	m.Update(tagsLoadedMsg{seq: m.fetchSeq, err: &client.APIError{StatusCode: 403, Message: "session expired"}})
	assert.Equal(t, "session expired", m.errMsg)
}

func TestCatalog_DeleteDeclinedSendsNothing(t *testing.T) {
	m := newTestModel()
	loadTags(t, m, sampleTags(), nil)

	_, cmd := m.Update(key("d"))
	assert.Nil(t, cmd)
	assert.True(t, m.deleteConfirm.Active())
	assert.Equal(t, "t1", m.pendingDelete)

	// Decline: no request, no state change.
	_, cmd = m.Update(key("n"))
	assert.Nil(t, cmd, "declined delete must not issue any request")
	assert.False(t, m.deleteConfirm.Active())
	assert.Empty(t, m.pendingDelete)
	assert.False(t, m.deleting)
	assert.Len(t, m.tags, 2)
}

func TestCatalog_DeleteConfirmedThenServerFailure(t *testing.T) {
	m := newTestModel()
	loadTags(t, m, sampleTags(), nil)

	m.Update(key("d"))
	_, cmd := m.Update(key("y"))
	require.NotNil(t, cmd, "confirmed delete must issue the request")
	assert.True(t, m.deleting)

	// Server rejects: tag stays visible, error surfaced, no local removal.
	_, cmd = m.Update(tagDeletedMsg{id: "t1", err: &client.APIError{StatusCode: 404, Message: "tag not found"}})
	assert.Nil(t, cmd, "failed delete must not trigger a re-fetch or local splice")
	assert.False(t, m.deleting)
	assert.Len(t, m.tags, 2)
	assert.Equal(t, "tag not found", m.errMsg)
}

func TestCatalog_DeleteSuccessRefetchesCurrentPage(t *testing.T) {
	m := newTestModel()
	loadTags(t, m, sampleTags(), nil)

	m.Update(key("d"))
	m.Update(key("y"))
	seqBefore := m.fetchSeq

	_, cmd := m.Update(tagDeletedMsg{id: "t1"})
	require.NotNil(t, cmd, "successful delete re-fetches instead of splicing locally")
	assert.Greater(t, m.fetchSeq, seqBefore)
	assert.True(t, m.loading)
}

func TestCatalog_EditSessionLifecycle(t *testing.T) {
	m := newTestModel()
	loadTags(t, m, sampleTags(), nil)

	_, cmd := m.Update(key("e"))
	assert.Nil(t, cmd)
	require.True(t, m.editor.Active())
	assert.Equal(t, "t1", m.editor.Form().TagID)

	// Opening a session for another tag discards the first session.
	m.editor.Reset()
	m.cursor = 1
	m.Update(key("e"))
	assert.Equal(t, "t2", m.editor.Form().TagID)
}

func TestCatalog_SubmitSuccessClosesAndRefetches(t *testing.T) {
	m := newTestModel()
	loadTags(t, m, sampleTags(), nil)
	m.Update(key("e"))

	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd, "submit must issue the PATCH")
	assert.True(t, m.editor.Submitting())

	// Filters move while the submit is in flight; the post-success
	// re-fetch must use the state current at success time.
	m.filter.SetStatus("ACTIVE")

	seqBefore := m.fetchSeq
	_, cmd = m.Update(tagSavedMsg{id: "t1"})
	require.NotNil(t, cmd)
	assert.False(t, m.editor.Active(), "successful submit closes the session")
	assert.Greater(t, m.fetchSeq, seqBefore)
	assert.Equal(t, "ACTIVE", m.filter.Status, "re-fetch uses current filter state")
	assert.Equal(t, 1, m.filter.Page)
}

func TestCatalog_SubmitFailureKeepsSessionOpen(t *testing.T) {
	m := newTestModel()
	loadTags(t, m, sampleTags(), nil)
	m.Update(key("e"))
	m.Update(key("enter"))

	_, cmd := m.Update(tagSavedMsg{id: "t1", err: &client.APIError{StatusCode: 422, Message: "vehicleNumber already in use"}})
	assert.Nil(t, cmd, "failed submit must not re-fetch or patch the list")
	assert.True(t, m.editor.Active(), "session stays open on failure")
	assert.False(t, m.editor.Submitting())
	assert.Equal(t, "vehicleNumber already in use", m.editor.errMsg)
	assert.Len(t, m.tags, 2, "no partial local mutation")
}

func TestCatalog_VendorLoadFailureDegradesToEmpty(t *testing.T) {
	m := newTestModel()
	m.Update(vendorsLoadedMsg{err: errors.New("boom")})

	assert.True(t, m.vendorsLoaded)
	assert.Empty(t, m.vendors)

	// The vendor filter key becomes a no-op instead of an error.
	_, cmd := m.Update(key("v"))
	assert.Nil(t, cmd)
	assert.Equal(t, catalog.FilterAll, m.filter.Vendor)
}

func TestCatalog_VendorCycle(t *testing.T) {
	m := newTestModel()
	m.Update(vendorsLoadedMsg{vendors: []models.Vendor{
		{ID: "v-001", Name: "Acme"},
		{ID: "v-002", Name: "Globex"},
	}})

	_, cmd := m.Update(key("v"))
	require.NotNil(t, cmd)
	assert.Equal(t, "v-001", m.filter.Vendor)
	assert.Equal(t, 1, m.filter.Page)

	m.Update(key("v"))
	assert.Equal(t, "v-002", m.filter.Vendor)

	m.Update(key("v"))
	assert.Equal(t, catalog.FilterAll, m.filter.Vendor)
}

func TestCatalog_TabSwitchResetsFilters(t *testing.T) {
	m := newTestModel()
	loadTags(t, m, sampleTags(), nil)
	m.filter.SetSearch("Ravi")
	m.filter.Page = 2

	_, cmd := m.Update(key("tab"))
	require.NotNil(t, cmd)
	assert.Equal(t, models.DomainBike, m.domainType)
	assert.Equal(t, catalog.NewFilterState(), m.filter)
	assert.Empty(t, m.tags)
}

func TestCatalog_SearchCommit(t *testing.T) {
	m := newTestModel()
	loadTags(t, m, sampleTags(), &models.PaginationMeta{TotalPages: 3})
	m.filter.Page = 2

	m.Update(key("/"))
	require.True(t, m.searchBar.Active())

	m.searchBar.SetValue("Ravi")
	_, cmd := m.Update(key("enter"))
	require.NotNil(t, cmd)
	assert.Equal(t, "Ravi", m.filter.Search)
	assert.Equal(t, 1, m.filter.Page, "search commit resets to page 1 before the fetch")
	assert.False(t, m.searchBar.Active())
}

func TestCatalog_SearchEscRestoresCommittedTerm(t *testing.T) {
	m := newTestModel()
	m.filter.SetSearch("Ravi")
	m.searchBar.SetValue("Ravi")

	m.Update(key("/"))
	m.searchBar.SetValue("Rav")
	_, cmd := m.Update(key("esc"))
	assert.Nil(t, cmd, "cancelled search edit must not fetch")
	assert.Equal(t, "Ravi", m.filter.Search)
	assert.Equal(t, "Ravi", m.searchBar.Value())
}

func TestCatalog_PagingKeys(t *testing.T) {
	m := newTestModel()
	meta := &models.PaginationMeta{Total: 11, Page: 1, Limit: 10, TotalPages: 2}
	loadTags(t, m, sampleTags(), meta)

	_, cmd := m.Update(key("n"))
	require.NotNil(t, cmd)
	assert.Equal(t, 2, m.filter.Page)

	// Next on the last page is a no-op: no fetch, no page change.
	m.loading = false
	_, cmd = m.Update(key("n"))
	assert.Nil(t, cmd)
	assert.Equal(t, 2, m.filter.Page)

	_, cmd = m.Update(key("p"))
	require.NotNil(t, cmd)
	assert.Equal(t, 1, m.filter.Page)
}

func TestCatalog_SingleMatchScenario(t *testing.T) {
	// search="Ravi" returns one match: list shows exactly that tag and
	// pagination reports one page, so Next is a no-op.
	m := newTestModel()
	m.filter.SetSearch("Ravi")
	meta := &models.PaginationMeta{Total: 1, Page: 1, Limit: 10, TotalPages: 1}
	tag := models.Tag{
		ID: "t7", Code: "TD-0007", Status: models.StatusActive,
		DomainType: models.DomainKid,
		KidProfile: &models.KidProfile{DisplayName: "Ravi"},
	}
	loadTags(t, m, []models.Tag{tag}, meta)

	assert.Len(t, m.tags, 1)
	assert.Equal(t, 1, m.meta.Total)
	assert.Equal(t, 1, m.meta.TotalPages)

	_, cmd := m.Update(key("n"))
	assert.Nil(t, cmd, "next must be disabled on the only page")
	assert.Equal(t, 1, m.filter.Page)
}
