package client

import (
	"encoding/json"
	"fmt"

	"github.com/tagdeck/tagdeck-cli/pkg/catalog"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// normalizeTagList accepts the three listing shapes the backend has shipped:
//
//	{"tags": [...], "pagination": {...}}
//	{"tags": [...], "meta": {...}}
//	[...]                               (legacy flat list, no metadata)
//
// and returns a single normalized Page. When both pagination keys are
// present the "pagination" block wins.
func normalizeTagList(body []byte) (catalog.Page, error) {
	var envelope struct {
		Tags       []models.Tag           `json:"tags"`
		Pagination *models.PaginationMeta `json:"pagination"`
		Meta       *models.PaginationMeta `json:"meta"`
	}
	if err := json.Unmarshal(body, &envelope); err == nil && envelope.Tags != nil {
		meta := envelope.Pagination
		if meta == nil {
			meta = envelope.Meta
		}
		return catalog.Page{Tags: envelope.Tags, Meta: meta}, nil
	}

	var flat []models.Tag
	if err := json.Unmarshal(body, &flat); err != nil {
		return catalog.Page{}, fmt.Errorf("decode tag listing: %w", err)
	}
	return catalog.Page{Tags: flat}, nil
}
