package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseDomainType(t *testing.T) {
	tests := []struct {
		name    string
		input   string
		want    DomainType
		wantErr bool
	}{
		{name: "uppercase", input: "CAR", want: DomainCar},
		{name: "lowercase", input: "pet", want: DomainPet},
		{name: "mixed case with spaces", input: "  Bike ", want: DomainBike},
		{name: "kid", input: "kid", want: DomainKid},
		{name: "unknown", input: "boat", wantErr: true},
		{name: "empty", input: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseDomainType(tt.input)
			if tt.wantErr {
				assert.Error(t, err)
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTag_ProfileValues(t *testing.T) {
	tests := []struct {
		name string
		tag  Tag
		want map[string]string
	}{
		{
			name: "car profile",
			tag: Tag{
				DomainType: DomainCar,
				CarProfile: &CarProfile{VehicleNumber: "TN01AB1234", VehicleType: "Sedan"},
			},
			want: map[string]string{"vehicleNumber": "TN01AB1234", "vehicleType": "Sedan"},
		},
		{
			name: "bike profile with empty optional field",
			tag: Tag{
				DomainType:  DomainBike,
				BikeProfile: &BikeProfile{VehicleNumber: "TN22XY0001"},
			},
			want: map[string]string{"vehicleNumber": "TN22XY0001", "bikeModel": ""},
		},
		{
			name: "pet profile",
			tag: Tag{
				DomainType: DomainPet,
				PetProfile: &PetProfile{PetName: "Bruno", BreedInfo: "Labrador"},
			},
			want: map[string]string{"petName": "Bruno", "breedInfo": "Labrador"},
		},
		{
			name: "kid profile",
			tag: Tag{
				DomainType: DomainKid,
				KidProfile: &KidProfile{DisplayName: "Ravi", MedicalAlerts: "none"},
			},
			want: map[string]string{"displayName": "Ravi", "medicalAlerts": "none"},
		},
		{
			name: "missing profile pointer is inert",
			tag:  Tag{DomainType: DomainCar},
			want: map[string]string{},
		},
		{
			name: "unknown domain type is inert",
			tag:  Tag{DomainType: DomainType("BOAT"), CarProfile: &CarProfile{VehicleNumber: "X"}},
			want: map[string]string{},
		},
		{
			name: "profile pointer for the wrong variant is ignored",
			tag:  Tag{DomainType: DomainPet, CarProfile: &CarProfile{VehicleNumber: "X"}},
			want: map[string]string{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.tag.ProfileValues())
		})
	}
}

func TestTag_ProfileSummary(t *testing.T) {
	car := Tag{DomainType: DomainCar, CarProfile: &CarProfile{VehicleNumber: "TN01AB1234"}}
	assert.Equal(t, "TN01AB1234", car.ProfileSummary())

	pet := Tag{DomainType: DomainPet, PetProfile: &PetProfile{PetName: "Bruno"}}
	assert.Equal(t, "Bruno", pet.ProfileSummary())

	kid := Tag{DomainType: DomainKid, KidProfile: &KidProfile{DisplayName: "Ravi"}}
	assert.Equal(t, "Ravi", kid.ProfileSummary())

	empty := Tag{DomainType: DomainBike}
	assert.Equal(t, "", empty.ProfileSummary())
}

func TestStatus_Valid(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid(), "expected %s to be valid", s)
	}
	assert.False(t, Status("ARCHIVED").Valid())
	assert.False(t, Status("").Valid())
}
