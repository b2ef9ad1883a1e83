package commands

import (
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tagdeck/tagdeck-cli/pkg/client"
	"github.com/tagdeck/tagdeck-cli/pkg/models"
)

func TestFindTag_WalksPages(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		page := r.URL.Query().Get("page")
		switch page {
		case "1":
			fmt.Fprint(w, `{"tags": [{"id": "t1", "code": "TD-0001", "status": "ACTIVE", "domainType": "CAR", "vendorId": "v-001"}],
				"pagination": {"total": 2, "page": 1, "limit": 10, "totalPages": 2}}`)
		case "2":
			fmt.Fprint(w, `{"tags": [{"id": "t2", "code": "TD-0002", "status": "MINTED", "domainType": "CAR", "vendorId": "v-001"}],
				"pagination": {"total": 2, "page": 2, "limit": 10, "totalPages": 2}}`)
		default:
			http.Error(w, `{"message": "no such page"}`, http.StatusBadRequest)
		}
	}))
	defer srv.Close()

	c := client.New(srv.URL)

	tag, err := findTag(context.Background(), c, models.DomainCar, "TD-0002")
	require.NoError(t, err)
	assert.Equal(t, "t2", tag.ID)

	// Lookup by id works too.
	tag, err = findTag(context.Background(), c, models.DomainCar, "t1")
	require.NoError(t, err)
	assert.Equal(t, "TD-0001", tag.Code)

	_, err = findTag(context.Background(), c, models.DomainCar, "missing")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "tag not found")
}

func TestFindTag_FlatListStopsAfterOnePage(t *testing.T) {
	calls := 0
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		fmt.Fprint(w, `[{"id": "t1", "code": "TD-0001", "status": "ACTIVE", "domainType": "PET", "vendorId": "v-001"}]`)
	}))
	defer srv.Close()

	c := client.New(srv.URL)
	_, err := findTag(context.Background(), c, models.DomainPet, "missing")
	require.Error(t, err)
	assert.Equal(t, 1, calls, "a flat listing has no next page to walk")
}
