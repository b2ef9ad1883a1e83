package models

import (
	"fmt"
	"strings"
	"time"
)

// DomainType is the fixed category of a tag. It is immutable once a tag is
// minted and determines which profile variant the tag carries.
type DomainType string

const (
	DomainCar  DomainType = "CAR"
	DomainBike DomainType = "BIKE"
	DomainPet  DomainType = "PET"
	DomainKid  DomainType = "KID"
)

// DomainTypes lists all known domain types in display order.
var DomainTypes = []DomainType{DomainCar, DomainBike, DomainPet, DomainKid}

// ParseDomainType normalizes a user-supplied type string (e.g. "car", "CAR")
// to a DomainType. Returns an error for anything outside the known set.
func ParseDomainType(s string) (DomainType, error) {
	dt := DomainType(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range DomainTypes {
		if dt == known {
			return dt, nil
		}
	}
	return "", fmt.Errorf("unknown tag type: %s (must be: car, bike, pet, or kid)", s)
}

// Valid reports whether the domain type is one of the known four.
func (d DomainType) Valid() bool {
	for _, known := range DomainTypes {
		if d == known {
			return true
		}
	}
	return false
}

// Status is the lifecycle state of a tag.
type Status string

const (
	StatusMinted    Status = "MINTED"
	StatusActive    Status = "ACTIVE"
	StatusSuspended Status = "SUSPENDED"
	StatusRevoked   Status = "REVOKED"
)

// Statuses lists all lifecycle states in their natural progression order.
// The edit form and the status filter cycle through them in this order.
var Statuses = []Status{StatusMinted, StatusActive, StatusSuspended, StatusRevoked}

// Valid reports whether the status is a known lifecycle state.
func (s Status) Valid() bool {
	for _, known := range Statuses {
		if s == known {
			return true
		}
	}
	return false
}

// CarProfile holds the CAR-specific fields of a tag.
type CarProfile struct {
	VehicleNumber string `json:"vehicleNumber"`
	VehicleType   string `json:"vehicleType,omitempty"`
}

// BikeProfile holds the BIKE-specific fields of a tag.
type BikeProfile struct {
	VehicleNumber string `json:"vehicleNumber"`
	BikeModel     string `json:"bikeModel,omitempty"`
}

// PetProfile holds the PET-specific fields of a tag.
type PetProfile struct {
	PetName   string `json:"petName"`
	BreedInfo string `json:"breedInfo,omitempty"`
}

// KidProfile holds the KID-specific fields of a tag.
type KidProfile struct {
	DisplayName   string `json:"displayName"`
	MedicalAlerts string `json:"medicalAlerts,omitempty"`
}

// Tag is the envelope entity for an issued identity tag. Exactly one of the
// profile pointers is non-nil, and which one is fixed by DomainType.
// ID, Code, DomainType and VendorID are immutable once minted; only
// Nickname, Status and the profile subfields are ever patched.
type Tag struct {
	ID         string     `json:"id"`
	Code       string     `json:"code"`
	Nickname   string     `json:"nickname,omitempty"`
	Status     Status     `json:"status"`
	DomainType DomainType `json:"domainType"`
	VendorID   string     `json:"vendorId"`

	CarProfile  *CarProfile  `json:"carProfile,omitempty"`
	BikeProfile *BikeProfile `json:"bikeProfile,omitempty"`
	PetProfile  *PetProfile  `json:"petProfile,omitempty"`
	KidProfile  *KidProfile  `json:"kidProfile,omitempty"`
}

// ProfileValues returns the tag's profile fields keyed by wire field name.
// A tag whose profile pointer is missing (or whose DomainType is unknown)
// yields an empty map rather than an error: the views driving this are
// type-scoped already, so an inert result is the safe shape.
func (t *Tag) ProfileValues() map[string]string {
	values := map[string]string{}
	switch t.DomainType {
	case DomainCar:
		if p := t.CarProfile; p != nil {
			values["vehicleNumber"] = p.VehicleNumber
			values["vehicleType"] = p.VehicleType
		}
	case DomainBike:
		if p := t.BikeProfile; p != nil {
			values["vehicleNumber"] = p.VehicleNumber
			values["bikeModel"] = p.BikeModel
		}
	case DomainPet:
		if p := t.PetProfile; p != nil {
			values["petName"] = p.PetName
			values["breedInfo"] = p.BreedInfo
		}
	case DomainKid:
		if p := t.KidProfile; p != nil {
			values["displayName"] = p.DisplayName
			values["medicalAlerts"] = p.MedicalAlerts
		}
	}
	return values
}

// ProfileSummary returns the single identity field shown in list views:
// the vehicle number for CAR/BIKE, the pet name for PET, the display name
// for KID.
func (t *Tag) ProfileSummary() string {
	switch t.DomainType {
	case DomainCar:
		if t.CarProfile != nil {
			return t.CarProfile.VehicleNumber
		}
	case DomainBike:
		if t.BikeProfile != nil {
			return t.BikeProfile.VehicleNumber
		}
	case DomainPet:
		if t.PetProfile != nil {
			return t.PetProfile.PetName
		}
	case DomainKid:
		if t.KidProfile != nil {
			return t.KidProfile.DisplayName
		}
	}
	return ""
}

// Vendor is a sponsoring company associated with tag branding. Read-only
// from the console's perspective; vendor mutation is a separate workflow.
type Vendor struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	LogoURL      string    `json:"logoUrl,omitempty"`
	QRDesignURL  string    `json:"qrDesignUrl,omitempty"`
	ContactEmail string    `json:"contactEmail,omitempty"`
	CreatedAt    time.Time `json:"createdAt"`
}

// PaginationMeta is the server-reported pagination block. It may be absent
// entirely (legacy flat-list responses) and may arrive under either a
// "pagination" or a "meta" response key.
type PaginationMeta struct {
	Total      int `json:"total"`
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalPages int `json:"totalPages"`
}
