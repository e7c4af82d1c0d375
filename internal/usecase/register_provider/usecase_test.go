package register_provider

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-PetCareService/internal/profile"
	"github.com/m04kA/SMC-PetCareService/pkg/logger"
)

type fakeCategories struct {
	categories []domain.Category
	err        error
}

func (f fakeCategories) ListCategories(context.Context) ([]domain.Category, error) {
	return f.categories, f.err
}

type fakeClient struct {
	createErr   error
	failMedia   map[string]bool
	created     []*domain.ProviderPayload
	attachments []marketplace.MediaAttachRequest
}

func (c *fakeClient) CreateProvider(_ context.Context, payload *domain.ProviderPayload) (*marketplace.CreatedProvider, error) {
	if c.createErr != nil {
		return nil, c.createErr
	}
	c.created = append(c.created, payload)
	return &marketplace.CreatedProvider{ID: 101, BusinessName: payload.BusinessName}, nil
}

func (c *fakeClient) AttachMedia(_ context.Context, providerID int64, req marketplace.MediaAttachRequest) error {
	c.attachments = append(c.attachments, req)
	if c.failMedia[req.FileURL] {
		return fmt.Errorf("%w: status 500", marketplace.ErrInvalidResponse)
	}
	return nil
}

type countingMetrics struct{ failures int }

func (m *countingMetrics) ObserveMediaAttachFailure() { m.failures++ }

var categories = fakeCategories{categories: []domain.Category{
	{ID: 1, Name: "Veterinary", Slug: domain.SlugVeterinary},
	{ID: 2, Name: "Foster", Slug: domain.SlugFoster},
}}

func fosterDraft() *domain.ProviderProfileDraft {
	return &domain.ProviderProfileDraft{
		CategoryID:   2,
		BusinessName: "Happy Paws",
		Description:  "Loving foster home",
		SpeciesIDs:   []int64{1},
		DailyRate:    "25",
	}
}

func TestExecute_CreatesProviderAndAttachesMedia(t *testing.T) {
	client := &fakeClient{failMedia: map[string]bool{"https://img/2.jpg": true}}
	m := &countingMetrics{}
	uc := NewUseCase(categories, client, profile.NewBuilder(), m, logger.Nop())

	draft := fosterDraft()
	draft.Images = []domain.MediaImage{
		{FileURL: "https://img/1.jpg", AltText: "front"},
		{FileURL: "https://img/2.jpg"},
		{FileURL: "https://img/3.jpg"},
	}

	resp, err := uc.Execute(context.Background(), &Request{UserID: 7, Draft: draft})
	require.NoError(t, err)
	assert.Equal(t, int64(101), resp.ProviderID)
	assert.Equal(t, domain.SlugFoster, resp.Category.Slug)
	assert.Equal(t, 2, resp.MediaAttached)
	assert.Equal(t, 1, resp.MediaFailed)
	assert.Equal(t, 1, m.failures)

	require.Len(t, client.created, 1)
	require.NotNil(t, client.created[0].Foster)
	assert.Equal(t, "750.00", client.created[0].Foster.MonthlyRate.String())

	require.Len(t, client.attachments, 3)
	assert.True(t, client.attachments[0].IsPrimary)
	assert.False(t, client.attachments[1].IsPrimary)
	assert.False(t, client.attachments[2].IsPrimary)
}

func TestExecute_ValidationNeverReachesMarketplace(t *testing.T) {
	client := &fakeClient{}
	uc := NewUseCase(categories, client, profile.NewBuilder(), &countingMetrics{}, logger.Nop())

	draft := fosterDraft()
	draft.SpeciesIDs = nil
	_, err := uc.Execute(context.Background(), &Request{UserID: 7, Draft: draft})
	require.ErrorIs(t, err, profile.ErrValidation)

	var verr *profile.ValidationError
	require.True(t, errors.As(err, &verr))
	assert.True(t, verr.Has("species_ids"))

	vet := fosterDraft()
	vet.CategoryID = 1
	_, err = uc.Execute(context.Background(), &Request{UserID: 7, Draft: vet})
	require.ErrorIs(t, err, profile.ErrValidation)

	assert.Empty(t, client.created)
}

func TestExecute_MarketplaceRejection(t *testing.T) {
	client := &fakeClient{createErr: fmt.Errorf("%w: business_name already taken", marketplace.ErrRejected)}
	uc := NewUseCase(categories, client, profile.NewBuilder(), &countingMetrics{}, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, Draft: fosterDraft()})
	require.ErrorIs(t, err, ErrRejected)
	assert.Contains(t, err.Error(), "business_name already taken")

	client.createErr = fmt.Errorf("%w: connection refused", marketplace.ErrInternal)
	_, err = uc.Execute(context.Background(), &Request{UserID: 7, Draft: fosterDraft()})
	require.ErrorIs(t, err, ErrInternal)
}

func TestExecute_CategoryLookupFailure(t *testing.T) {
	uc := NewUseCase(fakeCategories{err: errors.New("timeout")}, &fakeClient{}, profile.NewBuilder(), &countingMetrics{}, logger.Nop())

	_, err := uc.Execute(context.Background(), &Request{UserID: 7, Draft: fosterDraft()})
	require.ErrorIs(t, err, ErrInternal)

	_, err = uc.Execute(context.Background(), &Request{UserID: 7})
	require.ErrorIs(t, err, ErrInvalidInput)
}
