// Package catalog holds the pure query-and-mutation logic of the tag
// console: filter state, request descriptors, and edit-form construction.
// Everything here is side-effect free; pkg/client executes the requests
// and pkg/tui drives the interaction.
package catalog

import (
	"net/url"
	"strconv"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// PageSize is the fixed page length of every catalog query. It is not
// user-configurable.
const PageSize = 10

// FilterAll is the "no filter" sentinel for the status and vendor filters.
const FilterAll = ""

// FilterState is the current server-side query for one domain-type view:
// free-text search, status filter, vendor filter and the 1-based page.
//
// Mutate it only through the Set* helpers: they own the invariant that any
// filter change resets Page to 1, so a stale page number can never be
// combined with a new filter.
type FilterState struct {
	Search string
	Status string // models.Status value or FilterAll
	Vendor string // vendor id or FilterAll
	Page   int
}

// NewFilterState returns an unfiltered state on page 1.
func NewFilterState() FilterState {
	return FilterState{Page: 1}
}

// SetSearch updates the search term, resetting to page 1.
func (f *FilterState) SetSearch(term string) {
	if f.Search == term {
		return
	}
	f.Search = term
	f.Page = 1
}

// SetStatus updates the status filter, resetting to page 1.
func (f *FilterState) SetStatus(status string) {
	if f.Status == status {
		return
	}
	f.Status = status
	f.Page = 1
}

// SetVendor updates the vendor filter, resetting to page 1.
func (f *FilterState) SetVendor(vendorID string) {
	if f.Vendor == vendorID {
		return
	}
	f.Vendor = vendorID
	f.Page = 1
}

// CycleStatus advances the status filter through
// all -> MINTED -> ACTIVE -> SUSPENDED -> REVOKED -> all,
// resetting to page 1 on every step.
func (f *FilterState) CycleStatus() {
	order := make([]string, 0, len(models.Statuses)+1)
	order = append(order, FilterAll)
	for _, s := range models.Statuses {
		order = append(order, string(s))
	}
	current := 0
	for i, s := range order {
		if s == f.Status {
			current = i
			break
		}
	}
	f.Status = order[(current+1)%len(order)]
	f.Page = 1
}

// NextPage advances one page. Paging is not a filter change; the other
// fields are left alone. If meta is known the page is clamped to the last
// one so Next is a no-op on the final page.
func (f *FilterState) NextPage(meta *models.PaginationMeta) {
	if meta != nil && f.Page >= meta.TotalPages {
		return
	}
	f.Page++
}

// PrevPage goes back one page, never below 1.
func (f *FilterState) PrevPage() {
	if f.Page > 1 {
		f.Page--
	}
}

// Reset clears every filter and returns to page 1.
func (f *FilterState) Reset() {
	*f = NewFilterState()
}

// Query builds the canonical request descriptor for this state. Filter
// fields holding the "no filter" sentinel are omitted entirely rather than
// sent as empty values, so the server's own no-filter semantics apply.
// Page and limit are always present.
func (f FilterState) Query() url.Values {
	q := url.Values{}
	if f.Vendor != FilterAll {
		q.Set("vendorId", f.Vendor)
	}
	if f.Status != FilterAll {
		q.Set("status", f.Status)
	}
	if f.Search != "" {
		q.Set("search", f.Search)
	}
	page := f.Page
	if page < 1 {
		page = 1
	}
	q.Set("page", strconv.Itoa(page))
	q.Set("limit", strconv.Itoa(PageSize))
	return q
}

// Page is the normalized result of one catalog fetch: the tags to display
// and the server pagination block, nil when the backend answered with a
// legacy flat list.
type Page struct {
	Tags []models.Tag
	Meta *models.PaginationMeta
}

// HasNext reports whether a further page exists. Without pagination
// metadata the listing is taken as complete.
func (p Page) HasNext(current int) bool {
	return p.Meta != nil && current < p.Meta.TotalPages
}
