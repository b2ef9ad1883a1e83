package tui

import (
	"context"
	"errors"

	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/tagdeck/tagdeck-cli/pkg/catalog"
	"github.com/tagdeck/tagdeck-cli/pkg/client"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// tagsLoadedMsg carries one fetch result. seq identifies the request that
// produced it; the model discards results whose seq is not the latest, so a
// superseded in-flight fetch can never overwrite newer state.
type tagsLoadedMsg struct {
	seq  int
	page catalog.Page
	err  error
}

// tagSavedMsg reports the outcome of a PATCH submit.
type tagSavedMsg struct {
	id  string
	err error
}

// tagDeletedMsg reports the outcome of a confirmed delete.
type tagDeletedMsg struct {
	id  string
	err error
}

// vendorsLoadedMsg carries the once-per-session vendor list.
type vendorsLoadedMsg struct {
	vendors []models.Vendor
	err     error
}

// copiedMsg reports a clipboard copy of a tag code.
type copiedMsg struct {
	code string
	err  error
}

// fetchTagsCmd runs one catalog fetch. The filter is captured by value at
// issue time; the seq check on arrival decides whether it still matters.
func fetchTagsCmd(c *client.Client, domainType models.DomainType, filter catalog.FilterState, seq int) tea.Cmd {
	return func() tea.Msg {
		page, err := c.FetchPage(context.Background(), domainType, filter)
		return tagsLoadedMsg{seq: seq, page: page, err: err}
	}
}

func saveTagCmd(c *client.Client, id string, body map[string]any) tea.Cmd {
	return func() tea.Msg {
		err := c.UpdateTag(context.Background(), id, body)
		return tagSavedMsg{id: id, err: err}
	}
}

func deleteTagCmd(c *client.Client, id string) tea.Cmd {
	return func() tea.Msg {
		err := c.DeleteTag(context.Background(), id)
		return tagDeletedMsg{id: id, err: err}
	}
}

func loadVendorsCmd(c *client.Client) tea.Cmd {
	return func() tea.Msg {
		vendors, err := c.ListVendors(context.Background())
		return vendorsLoadedMsg{vendors: vendors, err: err}
	}
}

func copyCodeCmd(code string) tea.Cmd {
	return func() tea.Msg {
		return copiedMsg{code: code, err: clipboard.WriteAll(code)}
	}
}

// userMessage converts a request error into the inline text shown to the
// user: the server's own message for business failures, a generic
// retry-worthy line for transport problems.
func userMessage(err error, fallback string) string {
	var apiErr *client.APIError
	if errors.As(err, &apiErr) {
		return apiErr.Error()
	}
	return fallback
}
