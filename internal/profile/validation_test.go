package profile

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

var testCategories = []domain.Category{
	{ID: 1, Name: "Veterinary", Slug: domain.SlugVeterinary},
	{ID: 2, Name: "Foster", Slug: domain.SlugFoster},
	{ID: 3, Name: "Training", Slug: domain.SlugTraining},
	{ID: 4, Name: "Grooming", Slug: domain.SlugGrooming},
	{ID: 5, Name: "Pet Sitting", Slug: domain.SlugPetSitting},
	{ID: 9, Name: "Aquarium", Slug: "aquarium"},
}

func validationFields(t *testing.T, err error) *ValidationError {
	t.Helper()
	require.ErrorIs(t, err, ErrValidation)
	var verr *ValidationError
	require.True(t, errors.As(err, &verr))
	return verr
}

func TestValidate_OK(t *testing.T) {
	category, err := Validate(baseDraft(2), testCategories)
	require.NoError(t, err)
	assert.Equal(t, domain.SlugFoster, category.Slug)
}

func TestValidate_UnknownSlugIsAccepted(t *testing.T) {
	category, err := Validate(baseDraft(9), testCategories)
	require.NoError(t, err)
	assert.Equal(t, domain.CategorySlug("aquarium"), category.Slug)
}

func TestValidate_RequiredFields(t *testing.T) {
	draft := &domain.ProviderProfileDraft{}

	_, err := Validate(draft, testCategories)
	verr := validationFields(t, err)
	assert.True(t, verr.Has("category"))
	assert.True(t, verr.Has("business_name"))
	assert.True(t, verr.Has("description"))
	assert.True(t, verr.Has("species_ids"))
}

func TestValidate_BusinessNameLength(t *testing.T) {
	draft := baseDraft(2)
	draft.BusinessName = strings.Repeat("ы", domain.MaxBusinessNameLength)
	_, err := Validate(draft, testCategories)
	require.NoError(t, err)

	draft.BusinessName += "ы"
	_, err = Validate(draft, testCategories)
	verr := validationFields(t, err)
	assert.True(t, verr.Has("business_name"))
}

func TestValidate_EmptySpecies(t *testing.T) {
	draft := baseDraft(4)
	draft.SpeciesIDs = []int64{}

	_, err := Validate(draft, testCategories)
	verr := validationFields(t, err)
	assert.True(t, verr.Has("species_ids"))
}

func TestValidate_CategoryNotFound(t *testing.T) {
	_, err := Validate(baseDraft(77), testCategories)
	verr := validationFields(t, err)
	assert.True(t, verr.Has("category"))
}

func TestValidate_CategoryRequiredSelections(t *testing.T) {
	_, err := Validate(baseDraft(3), testCategories)
	verr := validationFields(t, err)
	assert.True(t, verr.Has("specializations_ids"))

	_, err = Validate(baseDraft(1), testCategories)
	verr = validationFields(t, err)
	assert.True(t, verr.Has("services_ids"))

	training := baseDraft(3)
	training.SpecializationsIDs = []int64{4}
	_, err = Validate(training, testCategories)
	require.NoError(t, err)

	vet := baseDraft(1)
	vet.ServicesIDs = []int64{8, 9}
	_, err = Validate(vet, testCategories)
	require.NoError(t, err)
}

func TestValidate_BusinessHours(t *testing.T) {
	draft := baseDraft(4)
	draft.BusinessHours = DefaultBusinessHours()[:3]
	_, err := Validate(draft, testCategories)
	verr := validationFields(t, err)
	assert.True(t, verr.Has("business_hours"))

	draft.BusinessHours = DefaultBusinessHours()
	draft.BusinessHours[0].CloseTime = "08:00"
	_, err = Validate(draft, testCategories)
	verr = validationFields(t, err)
	assert.True(t, verr.Has("business_hours"))

	draft.BusinessHours = DefaultBusinessHours()
	draft.BusinessHours[1].OpenTime = "9am"
	_, err = Validate(draft, testCategories)
	validationFields(t, err)

	draft.BusinessHours = DefaultBusinessHours()
	draft.BusinessHours[6].Day = 0
	_, err = Validate(draft, testCategories)
	validationFields(t, err)

	draft.BusinessHours = DefaultBusinessHours()
	_, err = Validate(draft, testCategories)
	require.NoError(t, err)
}

func TestValidate_Email(t *testing.T) {
	draft := baseDraft(4)
	draft.Email = "not-an-email"

	_, err := Validate(draft, testCategories)
	verr := validationFields(t, err)
	assert.True(t, verr.Has("email"))
	assert.Contains(t, verr.Error(), "email")
}
