// Package schema defines the profile field registry: the ordered, typed
// field lists that drive edit forms and PATCH bodies for each tag domain
// type. The registry is static data; the backend owns validation beyond
// the required flags declared here.
package schema

import (
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

// FieldKind is the input kind presented for a profile field.
type FieldKind string

const (
	KindText FieldKind = "text"
)

// Field describes one editable profile field.
type Field struct {
	Name     string    // wire field name, e.g. "vehicleNumber"
	Label    string    // human label, e.g. "Vehicle Number"
	Kind     FieldKind // input kind
	Required bool
}

var fieldsByType = map[models.DomainType][]Field{
	models.DomainCar: {
		{Name: "vehicleNumber", Label: "Vehicle Number", Kind: KindText, Required: true},
		{Name: "vehicleType", Label: "Vehicle Type", Kind: KindText},
	},
	models.DomainBike: {
		{Name: "vehicleNumber", Label: "Vehicle Number", Kind: KindText, Required: true},
		{Name: "bikeModel", Label: "Bike Model", Kind: KindText},
	},
	models.DomainPet: {
		{Name: "petName", Label: "Pet Name", Kind: KindText, Required: true},
		{Name: "breedInfo", Label: "Breed Info", Kind: KindText},
	},
	models.DomainKid: {
		{Name: "displayName", Label: "Display Name", Kind: KindText, Required: true},
		{Name: "medicalAlerts", Label: "Medical Alerts", Kind: KindText},
	},
}

// FieldsFor returns the ordered profile field list for a domain type.
// Unknown types return nil rather than an error: the views calling this are
// already type-scoped, so an unknown type simply renders no profile fields.
// The returned slice is a copy; callers may reorder or mutate it freely.
func FieldsFor(domainType models.DomainType) []Field {
	fields, ok := fieldsByType[domainType]
	if !ok {
		return nil
	}
	out := make([]Field, len(fields))
	copy(out, fields)
	return out
}

// RequiredFieldsFor returns only the required profile fields for a domain
// type, preserving registry order.
func RequiredFieldsFor(domainType models.DomainType) []Field {
	var out []Field
	for _, f := range FieldsFor(domainType) {
		if f.Required {
			out = append(out, f)
		}
	}
	return out
}
