package profile

import (
	"encoding/json"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/pkg/ptr"
)

func baseDraft(categoryID int64) *domain.ProviderProfileDraft {
	return &domain.ProviderProfileDraft{
		CategoryID:   categoryID,
		BusinessName: "Happy Paws",
		Description:  "Loving care for your pets",
		Email:        "hello@happypaws.test",
		Phone:        "+1 555 0100",
		AddressLine1: "1 Main St",
		City:         "Springfield",
		State:        "IL",
		ZipCode:      "62701",
		SpeciesIDs:   []int64{1, 2},
	}
}

func decode(t *testing.T, payload *domain.ProviderPayload) map[string]json.RawMessage {
	t.Helper()
	data, err := json.Marshal(payload)
	require.NoError(t, err)
	var raw map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(data, &raw))
	return raw
}

func TestBuild_FosterMonthlyDefault(t *testing.T) {
	for _, daily := range []string{"25", "10.555", "0.01", "33.33", ""} {
		t.Run(daily, func(t *testing.T) {
			draft := baseDraft(2)
			draft.DailyRate = domain.RateInput(daily)

			payload := NewBuilder().Build(draft, domain.Category{ID: 2, Slug: domain.SlugFoster})
			require.NotNil(t, payload.Foster)

			want := domain.MustParseAmount(daily).Decimal().Mul(decimal.NewFromInt(30))
			assert.True(t, payload.Foster.MonthlyRate.Decimal().Equal(want))

			raw := decode(t, payload)
			var foster map[string]json.RawMessage
			require.NoError(t, json.Unmarshal(raw["foster_details"], &foster))
			assert.Equal(t, `"`+want.StringFixed(2)+`"`, string(foster["monthly_rate"]))
		})
	}
}

func TestBuild_FosterExplicitMonthly(t *testing.T) {
	draft := baseDraft(2)
	draft.DailyRate = "25"
	draft.MonthlyRate = "650"

	payload := NewBuilder().Build(draft, domain.Category{ID: 2, Slug: domain.SlugFoster})
	assert.Equal(t, "650.00", payload.Foster.MonthlyRate.String())
}

func TestBuild_AtMostOneVariant(t *testing.T) {
	for _, spec := range domain.Categories() {
		t.Run(string(spec.Slug), func(t *testing.T) {
			draft := baseDraft(1)
			draft.DailyRate = "10"
			draft.BasePrice = "20"
			draft.WalkingRate = "5"

			payload := NewBuilder().Build(draft, domain.Category{ID: 1, Slug: spec.Slug})
			active, ok := payload.Active()
			require.True(t, ok)
			assert.Equal(t, spec.Slug, active)

			raw := decode(t, payload)
			found := 0
			for _, other := range domain.Categories() {
				if _, ok := raw[other.DetailsKey]; ok {
					found++
					assert.Equal(t, spec.DetailsKey, other.DetailsKey)
				}
			}
			assert.Equal(t, 1, found)
		})
	}
}

func TestBuild_UnknownSlugBaseOnly(t *testing.T) {
	payload := NewBuilder().Build(baseDraft(9), domain.Category{ID: 9, Slug: "aquarium"})

	_, ok := payload.Active()
	assert.False(t, ok)
	raw := decode(t, payload)
	for _, spec := range domain.Categories() {
		assert.NotContains(t, raw, spec.DetailsKey)
	}
	assert.Equal(t, `"Happy Paws"`, string(raw["business_name"]))
	assert.Equal(t, `9`, string(raw["category"]))
}

func TestBuild_CoordinatesAndWebsite(t *testing.T) {
	draft := baseDraft(1)
	raw := decode(t, NewBuilder().Build(draft, domain.Category{ID: 1, Slug: domain.SlugGrooming}))
	assert.Equal(t, "null", string(raw["latitude"]))
	assert.Equal(t, "null", string(raw["longitude"]))
	assert.Equal(t, "null", string(raw["website"]))

	draft.Latitude = ptr.Ptr(39.7817)
	draft.Longitude = ptr.Ptr(-89.6501234567)
	draft.Website = "https://happypaws.test"
	raw = decode(t, NewBuilder().Build(draft, domain.Category{ID: 1, Slug: domain.SlugGrooming}))
	assert.Equal(t, `"39.781700"`, string(raw["latitude"]))
	assert.Equal(t, `"-89.650123"`, string(raw["longitude"]))
	assert.Equal(t, `"https://happypaws.test"`, string(raw["website"]))
}

func TestBuild_DefaultHours(t *testing.T) {
	payload := NewBuilder().Build(baseDraft(1), domain.Category{ID: 1, Slug: domain.SlugTraining})

	require.Len(t, payload.Hours, 7)
	for i, h := range payload.Hours {
		assert.Equal(t, i, h.Day)
		if i < 5 {
			assert.False(t, h.IsClosed)
			assert.Equal(t, "09:00", *h.OpenTime)
			assert.Equal(t, "17:00", *h.CloseTime)
			continue
		}
		assert.True(t, h.IsClosed)
		assert.Nil(t, h.OpenTime)
		assert.Nil(t, h.CloseTime)
	}
}

func TestBuild_HoursSortedByDay(t *testing.T) {
	draft := baseDraft(2)
	draft.BusinessHours = []domain.BusinessHours{
		{Day: 4, OpenTime: "09:00", CloseTime: "17:00"},
		{Day: 0, OpenTime: "08:00", CloseTime: "16:00"},
		{Day: 6, IsClosed: true},
		{Day: 2, OpenTime: "10:00", CloseTime: "18:00"},
	}

	payload := NewBuilder().Build(draft, domain.Category{ID: 2, Slug: domain.SlugFoster})
	require.Len(t, payload.Hours, 4)
	days := make([]int, 0, len(payload.Hours))
	for _, h := range payload.Hours {
		days = append(days, h.Day)
	}
	assert.Equal(t, []int{0, 2, 4, 6}, days)
	assert.Equal(t, "08:00", *payload.Hours[0].OpenTime)
	assert.Nil(t, payload.Hours[3].OpenTime)

	// анкета не меняется
	assert.Equal(t, 4, draft.BusinessHours[0].Day)
}

func TestBuild_ClosedDayDropsTimes(t *testing.T) {
	draft := baseDraft(1)
	draft.BusinessHours = DefaultBusinessHours()
	draft.BusinessHours[2] = domain.BusinessHours{Day: 2, OpenTime: "10:00", CloseTime: "12:00", IsClosed: true}

	raw := decode(t, NewBuilder().Build(draft, domain.Category{ID: 1, Slug: domain.SlugTraining}))
	var hours []map[string]interface{}
	require.NoError(t, json.Unmarshal(raw["hours"], &hours))
	require.Len(t, hours, 7)
	assert.Nil(t, hours[2]["open_time"])
	assert.Nil(t, hours[2]["close_time"])
	assert.Equal(t, true, hours[2]["is_closed"])
}

func TestBuild_MissingRatesAreZero(t *testing.T) {
	draft := baseDraft(1)
	draft.HouseSittingRate = "not a number"

	raw := decode(t, NewBuilder().Build(draft, domain.Category{ID: 1, Slug: domain.SlugPetSitting}))
	var sitter map[string]json.RawMessage
	require.NoError(t, json.Unmarshal(raw["sitter_details"], &sitter))
	assert.Equal(t, `"0.00"`, string(sitter["house_sitting_rate"]))
	assert.Equal(t, `"0.00"`, string(sitter["drop_in_rate"]))
	assert.Equal(t, `"0.00"`, string(sitter["walking_rate"]))
	assert.Equal(t, `[1,2]`, string(sitter["species_ids"]))
}

func TestBuild_WeeklyDiscountPassedThrough(t *testing.T) {
	draft := baseDraft(2)
	draft.WeeklyDiscount = 150

	payload := NewBuilder().Build(draft, domain.Category{ID: 2, Slug: domain.SlugFoster})
	assert.Equal(t, 150, payload.Foster.WeeklyDiscount)
}

func TestBuild_RoundTripWithinCent(t *testing.T) {
	draft := baseDraft(3)
	draft.PrivateSessionRate = "85.555"
	draft.GroupClassRate = "19.994"
	draft.Packages = []domain.PackageOptionInput{{Name: "Basics", Sessions: 6, Price: "299.999"}}

	payload := NewBuilder().Build(draft, domain.Category{ID: 3, Slug: domain.SlugTraining})
	data, err := json.Marshal(payload)
	require.NoError(t, err)

	var parsed domain.ProviderDetails
	require.NoError(t, json.Unmarshal(data, &parsed))
	require.NotNil(t, parsed.Trainer)

	tolerance := decimal.RequireFromString("0.01")
	pairs := [][2]domain.Amount{
		{payload.Trainer.PrivateSessionRate, parsed.Trainer.PrivateSessionRate},
		{payload.Trainer.GroupClassRate, parsed.Trainer.GroupClassRate},
		{payload.Trainer.Packages[0].Price, parsed.Trainer.Packages[0].Price},
	}
	for _, p := range pairs {
		diff := p[0].Decimal().Sub(p[1].Decimal()).Abs()
		assert.True(t, diff.LessThanOrEqual(tolerance), "%s vs %s", p[0], p[1])
	}
}
