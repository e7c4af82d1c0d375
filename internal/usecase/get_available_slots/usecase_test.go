package get_available_slots

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

type fakeAvailability struct {
	availability *marketplace.Availability
	err          error
	calls        int
}

func (f *fakeAvailability) GetAvailability(_ context.Context, _ int64, _ time.Time) (*marketplace.Availability, error) {
	f.calls++
	return f.availability, f.err
}

type fixedTime struct{ now time.Time }

func (f fixedTime) Now() time.Time { return f.now }

func newTestUseCase(client AvailabilityClient) *UseCase {
	uc := NewUseCase(client, logger.Nop())
	uc.timeProvider = fixedTime{now: time.Date(2024, 3, 1, 18, 0, 0, 0, time.UTC)}
	return uc
}

func TestExecute_RemoteSlots(t *testing.T) {
	client := &fakeAvailability{availability: &marketplace.Availability{
		AvailableSlots: []types.TimeString{"09:30", "14:00"},
	}}

	resp, err := newTestUseCase(client).Execute(context.Background(), &Request{
		ProviderID: 42,
		Date:       time.Date(2024, 3, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.False(t, resp.Fallback)
	assert.Equal(t, []types.TimeString{"09:30", "14:00"}, resp.Slots)
}

func TestExecute_EmptyListFallsBackToDefaults(t *testing.T) {
	for _, availability := range []*marketplace.Availability{{}, {AvailableSlots: []types.TimeString{}}} {
		client := &fakeAvailability{availability: availability}

		resp, err := newTestUseCase(client).Execute(context.Background(), &Request{
			ProviderID: 42,
			Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
		})
		require.NoError(t, err)
		assert.True(t, resp.Fallback)
		assert.Equal(t, domain.DefaultSlots, resp.Slots)
	}
}

func TestExecute_FetchErrorIsNotMasked(t *testing.T) {
	client := &fakeAvailability{err: fmt.Errorf("%w: status 502", marketplace.ErrInvalidResponse)}

	_, err := newTestUseCase(client).Execute(context.Background(), &Request{
		ProviderID: 42,
		Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrInternal)

	client.err = fmt.Errorf("%w: GET /providers/42/", marketplace.ErrNotFound)
	_, err = newTestUseCase(client).Execute(context.Background(), &Request{
		ProviderID: 42,
		Date:       time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC),
	})
	require.ErrorIs(t, err, ErrProviderNotFound)
}

func TestExecute_Validation(t *testing.T) {
	client := &fakeAvailability{}
	uc := newTestUseCase(client)

	_, err := uc.Execute(context.Background(), &Request{Date: time.Date(2024, 3, 5, 0, 0, 0, 0, time.UTC)})
	require.True(t, errors.Is(err, ErrInvalidInput))

	_, err = uc.Execute(context.Background(), &Request{ProviderID: 1})
	require.ErrorIs(t, err, ErrInvalidInput)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: 1, Date: time.Date(2024, 2, 29, 0, 0, 0, 0, time.UTC)})
	require.ErrorIs(t, err, ErrInvalidDate)

	assert.Equal(t, 0, client.calls)
}
