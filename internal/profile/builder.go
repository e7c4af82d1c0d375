package profile

import (
	"slices"
	"strconv"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/pkg/ptr"
	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

const coordinatePrecision = 6

// Builder ProviderProfileBuilder
type Builder struct{}

// NewBuilder создает билдер
func NewBuilder() *Builder {
	return &Builder{}
}

// Build собирает payload из анкеты; чистая функция
// Неизвестный slug категории: только общие поля, без варианта деталей
func (b *Builder) Build(draft *domain.ProviderProfileDraft, category domain.Category) *domain.ProviderPayload {
	payload := &domain.ProviderPayload{
		BusinessName: draft.BusinessName,
		Description:  draft.Description,
		Category:     draft.CategoryID,
		Email:        draft.Email,
		Phone:        draft.Phone,
		Website:      optionalString(draft.Website),
		AddressLine1: draft.AddressLine1,
		AddressLine2: draft.AddressLine2,
		City:         draft.City,
		State:        draft.State,
		ZipCode:      draft.ZipCode,
		Latitude:     formatCoordinate(draft.Latitude),
		Longitude:    formatCoordinate(draft.Longitude),
		Hours:        buildHours(draft.BusinessHours),
	}

	if spec, ok := domain.LookupCategory(category.Slug); ok {
		payload.ProviderDetails = spec.Details(draft)
	}

	return payload
}

// DefaultBusinessHours пн-пт 09:00-17:00, сб и вс выходные
func DefaultBusinessHours() []domain.BusinessHours {
	hours := make([]domain.BusinessHours, 0, domain.DaysInWeek)
	for day := 0; day < domain.DaysInWeek; day++ {
		if day >= 5 {
			hours = append(hours, domain.BusinessHours{Day: day, IsClosed: true})
			continue
		}
		hours = append(hours, domain.BusinessHours{Day: day, OpenTime: "09:00", CloseTime: "17:00"})
	}
	return hours
}

func buildHours(hours []domain.BusinessHours) []domain.HoursPayload {
	if len(hours) == 0 {
		hours = DefaultBusinessHours()
	}
	// маркетплейс ждет дни по порядку с понедельника
	hours = slices.Clone(hours)
	slices.SortStableFunc(hours, func(a, b domain.BusinessHours) int { return a.Day - b.Day })

	out := make([]domain.HoursPayload, 0, len(hours))
	for _, h := range hours {
		item := domain.HoursPayload{Day: h.Day, IsClosed: h.IsClosed}
		if !h.IsClosed {
			item.OpenTime = optionalTime(h.OpenTime)
			item.CloseTime = optionalTime(h.CloseTime)
		}
		out = append(out, item)
	}
	return out
}

func formatCoordinate(v *float64) *string {
	if v == nil {
		return nil
	}
	return ptr.Ptr(strconv.FormatFloat(*v, 'f', coordinatePrecision, 64))
}

func optionalString(s string) *string {
	if s == "" {
		return nil
	}
	return ptr.Ptr(s)
}

func optionalTime(t types.TimeString) *string {
	if t.IsZero() {
		return nil
	}
	return ptr.Ptr(t.String())
}
