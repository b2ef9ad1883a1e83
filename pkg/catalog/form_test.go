package catalog

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

func carTag() models.Tag {
	return models.Tag{
		ID:         "tag-1",
		Code:       "TD-0001",
		Nickname:   "daily ride",
		Status:     models.StatusActive,
		DomainType: models.DomainCar,
		VendorID:   "v-001",
		CarProfile: &models.CarProfile{VehicleNumber: "TN01AB1234"},
	}
}

func TestNewEditForm_SeedsExactKeySet(t *testing.T) {
	form := NewEditForm(carTag())

	assert.Equal(t, "tag-1", form.TagID)
	assert.Equal(t, "daily ride", form.Nickname)
	assert.Equal(t, models.StatusActive, form.Status)

	// Exactly the CAR profile keys, optional ones seeded empty.
	assert.Equal(t, map[string]string{
		"vehicleNumber": "TN01AB1234",
		"vehicleType":   "",
	}, form.Values)
}

func TestEditForm_UnchangedRoundTrip(t *testing.T) {
	// Opening a session and submitting unchanged must produce exactly
	// {nickname, status, ...profileFields} with no extra or missing keys.
	form := NewEditForm(carTag())

	body := form.Body()
	assert.Equal(t, map[string]any{
		"nickname":      "daily ride",
		"status":        "ACTIVE",
		"vehicleNumber": "TN01AB1234",
		"vehicleType":   "",
	}, body)
}

func TestEditForm_BodyPerDomainType(t *testing.T) {
	tests := []struct {
		name     string
		tag      models.Tag
		wantKeys []string
	}{
		{
			name: "bike",
			tag: models.Tag{
				DomainType:  models.DomainBike,
				Status:      models.StatusMinted,
				BikeProfile: &models.BikeProfile{VehicleNumber: "TN22XY0001", BikeModel: "RE Classic"},
			},
			wantKeys: []string{"nickname", "status", "vehicleNumber", "bikeModel"},
		},
		{
			name: "pet",
			tag: models.Tag{
				DomainType: models.DomainPet,
				Status:     models.StatusActive,
				PetProfile: &models.PetProfile{PetName: "Bruno"},
			},
			wantKeys: []string{"nickname", "status", "petName", "breedInfo"},
		},
		{
			name: "kid",
			tag: models.Tag{
				DomainType: models.DomainKid,
				Status:     models.StatusSuspended,
				KidProfile: &models.KidProfile{DisplayName: "Ravi"},
			},
			wantKeys: []string{"nickname", "status", "displayName", "medicalAlerts"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			form := NewEditForm(tt.tag)
			body := form.Body()
			assert.Len(t, body, len(tt.wantKeys))
			for _, k := range tt.wantKeys {
				assert.Contains(t, body, k)
			}
		})
	}
}

func TestEditForm_Set(t *testing.T) {
	form := NewEditForm(carTag())

	require.NoError(t, form.Set("vehicleType", "Sedan"))
	assert.Equal(t, "Sedan", form.Values["vehicleType"])

	// Keys outside the domain type's schema are rejected, so the session
	// can never diverge from the profile shape.
	assert.Error(t, form.Set("petName", "Bruno"))
	assert.Error(t, form.Set("nickname", "x"))
}

func TestEditForm_Validate(t *testing.T) {
	form := NewEditForm(carTag())
	assert.NoError(t, form.Validate())

	require.NoError(t, form.Set("vehicleNumber", ""))
	err := form.Validate()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Vehicle Number")

	form = NewEditForm(carTag())
	form.Status = models.Status("BROKEN")
	assert.Error(t, form.Validate())
}

func TestEditForm_CycleStatus(t *testing.T) {
	form := NewEditForm(carTag())
	assert.Equal(t, models.StatusActive, form.Status)

	form.CycleStatus()
	assert.Equal(t, models.StatusSuspended, form.Status)
	form.CycleStatus()
	assert.Equal(t, models.StatusRevoked, form.Status)
	form.CycleStatus()
	assert.Equal(t, models.StatusMinted, form.Status)
}
