package catalog

import (
	"fmt"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
	"github.com/tagdeck/tagdeck-cli/pkg/schema"
)

// EditForm holds the editable state of one tag mutation session: nickname,
// status, and the profile fields of the tag's domain type — exactly those
// keys, nothing else. Profile values are kept in registry order so forms
// and PATCH bodies are stable.
type EditForm struct {
	TagID    string
	Nickname string
	Status   models.Status

	Fields []schema.Field // registry order for the tag's domain type
	Values map[string]string
}

// NewEditForm seeds an edit form from an already-loaded tag. Profile values
// take precedence for their own keys; nickname and status never appear in a
// profile. Missing profile fields seed as empty strings so the submitted
// body always carries the full key set.
func NewEditForm(tag models.Tag) EditForm {
	fields := schema.FieldsFor(tag.DomainType)
	profile := tag.ProfileValues()

	values := make(map[string]string, len(fields))
	for _, f := range fields {
		values[f.Name] = profile[f.Name]
	}

	return EditForm{
		TagID:    tag.ID,
		Nickname: tag.Nickname,
		Status:   tag.Status,
		Fields:   fields,
		Values:   values,
	}
}

// Set updates one profile field. Unknown names are rejected so a session
// can never accrete keys outside its domain type's schema.
func (f *EditForm) Set(name, value string) error {
	if _, ok := f.Values[name]; !ok {
		return fmt.Errorf("field %q is not part of this tag's profile", name)
	}
	f.Values[name] = value
	return nil
}

// CycleStatus advances the status to the next lifecycle state.
func (f *EditForm) CycleStatus() {
	for i, s := range models.Statuses {
		if s == f.Status {
			f.Status = models.Statuses[(i+1)%len(models.Statuses)]
			return
		}
	}
	f.Status = models.Statuses[0]
}

// Validate checks that every required profile field is non-empty and the
// status is a known lifecycle state.
func (f *EditForm) Validate() error {
	if !f.Status.Valid() {
		return fmt.Errorf("invalid status: %s", f.Status)
	}
	for _, field := range f.Fields {
		if field.Required && f.Values[field.Name] == "" {
			return fmt.Errorf("%s is required", field.Label)
		}
	}
	return nil
}

// Body builds the PATCH payload: {nickname, status} plus every profile
// field of the domain type, present even when empty. The server applies it
// as a partial update against the tag envelope and its profile.
func (f *EditForm) Body() map[string]any {
	body := map[string]any{
		"nickname": f.Nickname,
		"status":   string(f.Status),
	}
	for _, field := range f.Fields {
		body[field.Name] = f.Values[field.Name]
	}
	return body
}
