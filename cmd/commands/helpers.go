package commands

import (
	"context"
	"fmt"
	"time"

	"github.com/tagdeck/tagdeck-cli/pkg/catalog"
	"github.com/tagdeck/tagdeck-cli/pkg/client"
	"github.com/tagdeck/tagdeck-cli/pkg/config"
	"github.com/tagdeck/tagdeck-cli/pkg/logging"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// NewClient builds the API client from settings, the stored session token
// and the file logger. Shared by every command and by the TUI launcher.
func NewClient() (*client.Client, *models.Settings, error) {
	settings, err := config.ReadSettings()
	if err != nil {
		return nil, nil, err
	}
	token, err := config.LoadToken()
	if err != nil {
		return nil, nil, err
	}

	log := logging.Nop()
	if path, err := config.LogPath(); err == nil {
		if fileLog, err := logging.New(settings.Log.Level, path); err == nil {
			log = fileLog
		}
	}

	c := client.New(settings.API.BaseURL,
		client.WithToken(token),
		client.WithTimeout(time.Duration(settings.API.TimeoutSeconds)*time.Second),
		client.WithLegacyPaths(settings.API.LegacyPaths),
		client.WithLogger(log),
	)
	return c, settings, nil
}

// findTag locates one tag by id within its domain type by walking the
// paginated listing. The backend exposes no single-tag read, so this is
// how scripted commands load the envelope an edit session seeds from.
func findTag(ctx context.Context, c *client.Client, domainType models.DomainType, id string) (*models.Tag, error) {
	filter := catalog.NewFilterState()
	for {
		page, err := c.FetchPage(ctx, domainType, filter)
		if err != nil {
			return nil, err
		}
		for i := range page.Tags {
			if page.Tags[i].ID == id || page.Tags[i].Code == id {
				return &page.Tags[i], nil
			}
		}
		if !page.HasNext(filter.Page) {
			return nil, fmt.Errorf("tag not found: %s", id)
		}
		filter.NextPage(page.Meta)
	}
}
