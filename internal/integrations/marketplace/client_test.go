package marketplace

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *Client {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)
	return NewClient(srv.URL+"/", "secret", 2*time.Second, logger.Nop())
}

func TestClient_GetProvider(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/providers/42/", r.URL.Path)
		assert.Equal(t, "Token secret", r.Header.Get("Authorization"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{
			"id": 42,
			"business_name": "Happy Paws",
			"category": {"id": 4, "name": "Grooming", "slug": "grooming"},
			"groomer_details": {"base_price": "40.00", "species_ids": [1]},
			"service_options": [{"id": 7, "name": "Full groom", "price": "65.00"}]
		}`)
	})

	provider, err := client.GetProvider(context.Background(), 42)
	require.NoError(t, err)
	assert.Equal(t, int64(42), provider.ID)
	assert.Equal(t, domain.SlugGrooming, provider.Category.Slug)
	require.NotNil(t, provider.Groomer)
	assert.Equal(t, "40.00", provider.Groomer.BasePrice.String())

	option, ok := provider.ServiceOption(7)
	require.True(t, ok)
	assert.Equal(t, "65.00", option.Price.String())
	assert.Nil(t, option.BasePrice)
}

func TestClient_GetProvider_NotFound(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNotFound)
	})

	_, err := client.GetProvider(context.Background(), 1)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestClient_ListCategories(t *testing.T) {
	bodies := []string{
		`[{"id": 1, "name": "Veterinary", "slug": "veterinary"}]`,
		`{"count": 1, "results": [{"id": 1, "name": "Veterinary", "slug": "veterinary"}]}`,
	}

	for _, body := range bodies {
		client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
			assert.Equal(t, "/categories/", r.URL.Path)
			_, _ = io.WriteString(w, body)
		})

		categories, err := client.ListCategories(context.Background())
		require.NoError(t, err)
		require.Len(t, categories, 1)
		assert.Equal(t, domain.SlugVeterinary, categories[0].Slug)
	}
}

func TestClient_CreateProvider(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		var body map[string]json.RawMessage
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, `"Happy Paws"`, string(body["business_name"]))
		assert.Contains(t, body, "foster_details")

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 101, "business_name": "Happy Paws"}`)
	})

	created, err := client.CreateProvider(context.Background(), &domain.ProviderPayload{
		BusinessName:    "Happy Paws",
		ProviderDetails: domain.ProviderDetails{Foster: &domain.FosterDetails{}},
	})
	require.NoError(t, err)
	assert.Equal(t, int64(101), created.ID)
}

func TestClient_CreateProvider_Rejected(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		_, _ = io.WriteString(w, `{"detail": "business_name already taken"}`)
	})

	_, err := client.CreateProvider(context.Background(), &domain.ProviderPayload{})
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "business_name already taken")
}

func TestClient_AttachMedia(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/providers/101/media/", r.URL.Path)

		var body MediaAttachRequest
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.True(t, body.IsPrimary)
		w.WriteHeader(http.StatusNoContent)
	})

	err := client.AttachMedia(context.Background(), 101, MediaAttachRequest{FileURL: "https://img/1.jpg", IsPrimary: true})
	require.NoError(t, err)
}

func TestClient_GetAvailability(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/providers/42/availability/", r.URL.Path)
		assert.Equal(t, "2024-03-10", r.URL.Query().Get("date"))
		_, _ = io.WriteString(w, `{"available_slots": ["09:00", "12:30"]}`)
	})

	availability, err := client.GetAvailability(context.Background(), 42, time.Date(2024, 3, 10, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, []types.TimeString{"09:00", "12:30"}, availability.AvailableSlots)
}

func TestClient_CreateBooking(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/bookings/", r.URL.Path)

		var body map[string]interface{}
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, "recurring", body["booking_type"])
		assert.Equal(t, "100.00", body["agreed_price"])
		assert.Nil(t, body["booking_time"])

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id": 555, "status": "pending", "agreed_price": "100.00"}`)
	})

	created, err := client.CreateBooking(context.Background(), &domain.BookingPayload{
		Provider:    42,
		Pet:         3,
		BookingType: domain.BookingTypeRecurring,
		AgreedPrice: "100.00",
	})
	require.NoError(t, err)
	assert.Equal(t, int64(555), created.ID)
}

func TestClient_UnexpectedStatus(t *testing.T) {
	client := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	})

	_, err := client.CreateBooking(context.Background(), &domain.BookingPayload{})
	require.ErrorIs(t, err, ErrInvalidResponse)

	unauthorized := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	})
	_, err = unauthorized.ListCategories(context.Background())
	require.ErrorIs(t, err, ErrUnauthorized)
}

func TestClient_Unreachable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	srv.Close()

	client := NewClient(srv.URL, "", time.Second, logger.Nop())
	_, err := client.GetProvider(context.Background(), 1)
	require.ErrorIs(t, err, ErrInternal)
}
