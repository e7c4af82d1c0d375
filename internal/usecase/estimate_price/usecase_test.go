package estimate_price

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-PetCareService/internal/pricing"
	"github.com/m04kA/SMC-PetCareService/internal/resolver"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
	"github.com/m04kA/SMC-PetCareService/pkg/ptr"
)

type fakeProviders map[int64]*domain.Provider

func (f fakeProviders) GetProvider(_ context.Context, providerID int64) (*domain.Provider, error) {
	p, ok := f[providerID]
	if !ok {
		return nil, fmt.Errorf("%w: GET /providers/%d/", marketplace.ErrNotFound, providerID)
	}
	return p, nil
}

type recordingMetrics struct {
	estimates []string
}

func (m *recordingMetrics) ObserveEstimate(mode, category string) {
	m.estimates = append(m.estimates, mode+"/"+category)
}

func newTestUseCase(m *recordingMetrics) *UseCase {
	providers := fakeProviders{
		1: {
			ID:       1,
			Category: domain.Category{ID: 2, Name: "Foster", Slug: domain.SlugFoster},
			ProviderDetails: domain.ProviderDetails{
				Foster: &domain.FosterDetails{DailyRate: domain.MustParseAmount("25")},
			},
		},
		2: {
			ID:       2,
			Category: domain.Category{ID: 5, Name: "Pet Sitting", Slug: domain.SlugPetSitting},
			ProviderDetails: domain.ProviderDetails{
				Sitter: &domain.SitterDetails{WalkingRate: domain.MustParseAmount("15"), HouseSittingRate: domain.MustParseAmount("60")},
			},
			ServiceOptions: []domain.ServiceOption{{ID: 20, Name: "Evening Dog Walk"}},
		},
	}
	return NewUseCase(providers, resolver.New(), pricing.New(), m, logger.Nop())
}

func TestExecute_FosterRange(t *testing.T) {
	m := &recordingMetrics{}
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	resp, err := newTestUseCase(m).Execute(context.Background(), &Request{
		ProviderID: 1,
		StartDate:  start,
		EndDate:    ptr.Ptr(start.AddDate(0, 0, 4)),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeRange, resp.Mode)
	assert.Equal(t, resolver.RuleRangeVariant, resp.Rule)
	assert.Equal(t, int64(4), resp.UnitCount)
	assert.Equal(t, "100.00", resp.Total.String())
	assert.Equal(t, domain.LabelPerNight, resp.Label)
	assert.True(t, resp.IsEstimate)
	assert.Equal(t, []string{"range/foster"}, m.estimates)
}

func TestExecute_WalkService(t *testing.T) {
	resp, err := newTestUseCase(&recordingMetrics{}).Execute(context.Background(), &Request{
		ProviderID:      2,
		ServiceOptionID: ptr.Ptr(int64(20)),
		StartDate:       time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
	})
	require.NoError(t, err)
	assert.Equal(t, domain.ModeAppointment, resp.Mode)
	assert.Equal(t, resolver.RuleAppointmentService, resp.Rule)
	assert.Equal(t, "15.00", resp.Total.String())
	assert.Equal(t, domain.LabelPerWalk, resp.Label)
}

func TestExecute_Errors(t *testing.T) {
	uc := newTestUseCase(&recordingMetrics{})
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)

	_, err := uc.Execute(context.Background(), &Request{ProviderID: 99, StartDate: start})
	require.ErrorIs(t, err, ErrProviderNotFound)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: 2, ServiceOptionID: ptr.Ptr(int64(21)), StartDate: start})
	require.ErrorIs(t, err, ErrServiceOptionNotFound)

	_, err = uc.Execute(context.Background(), &Request{ProviderID: 2})
	require.ErrorIs(t, err, ErrInvalidInput)
}
