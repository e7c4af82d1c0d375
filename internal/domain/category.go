package domain

import "strings"

// CategorySlug идентификатор категории услуг
type CategorySlug string

const (
	SlugVeterinary CategorySlug = "veterinary"
	SlugFoster     CategorySlug = "foster"
	SlugTraining   CategorySlug = "training"
	SlugGrooming   CategorySlug = "grooming"
	SlugPetSitting CategorySlug = "pet_sitting"
)

// BookingMode режим бронирования
type BookingMode string

const (
	// ModeAppointment одна дата и время
	ModeAppointment BookingMode = "appointment"
	// ModeRange период с даты по дату
	ModeRange BookingMode = "range"
)

// Rate labels
const (
	LabelFlatRate     = "Flat Rate"
	LabelPerSession   = "Per Session"
	LabelConsultation = "Consultation"
	LabelStartingAt   = "Starting At"
	LabelPerNight     = "Per Night"
	LabelPerWalk      = "Per Walk"
)

// Category категория из справочника маркетплейса
type Category struct {
	ID   int64        `json:"id"`
	Name string       `json:"name"`
	Slug CategorySlug `json:"slug"`
}

// CategorySpec описание категории: какой вариант деталей она заполняет,
// как наличие варианта влияет на режим бронирования и откуда берется ставка
type CategorySpec struct {
	Slug CategorySlug

	// DetailsKey ключ варианта деталей в payload
	DetailsKey string

	// VariantMode режим, который задает само наличие варианта; пустой = не задает
	VariantMode BookingMode

	// Present true, если у провайдера заполнен вариант этой категории
	Present func(d ProviderDetails) bool

	// Rate ставка и подпись; walking нужен только для pet_sitting
	Rate func(d ProviderDetails, walking bool) (Amount, string)

	// Details собирает вариант деталей из черновика анкеты
	Details func(draft *ProviderProfileDraft) ProviderDetails

	// RequiredIDsField обязательный для категории мультивыбор (json имя), пустой = нет
	RequiredIDsField string
	RequiredIDs      func(draft *ProviderProfileDraft) []int64
}

// categoryTable единственное место, где категория связывается с полями
var categoryTable = map[CategorySlug]CategorySpec{
	SlugVeterinary: {
		Slug:        SlugVeterinary,
		DetailsKey:  "vet_details",
		VariantMode: ModeAppointment,
		Present:     func(d ProviderDetails) bool { return d.Vet != nil },
		Rate: func(ProviderDetails, bool) (Amount, string) {
			// стоимость консультации не оценивается
			return ZeroAmount, LabelConsultation
		},
		Details:          func(draft *ProviderProfileDraft) ProviderDetails { return ProviderDetails{Vet: draft.vetDetails()} },
		RequiredIDsField: "services_ids",
		RequiredIDs:      func(draft *ProviderProfileDraft) []int64 { return draft.ServicesIDs },
	},
	SlugFoster: {
		Slug:        SlugFoster,
		DetailsKey:  "foster_details",
		VariantMode: ModeRange,
		Present:     func(d ProviderDetails) bool { return d.Foster != nil },
		Rate: func(d ProviderDetails, _ bool) (Amount, string) {
			if d.Foster == nil {
				return ZeroAmount, LabelPerNight
			}
			return d.Foster.DailyRate, LabelPerNight
		},
		Details: func(draft *ProviderProfileDraft) ProviderDetails {
			return ProviderDetails{Foster: draft.fosterDetails()}
		},
	},
	SlugTraining: {
		Slug:       SlugTraining,
		DetailsKey: "trainer_details",
		Present:    func(d ProviderDetails) bool { return d.Trainer != nil },
		Rate: func(d ProviderDetails, _ bool) (Amount, string) {
			if d.Trainer == nil {
				return ZeroAmount, LabelPerSession
			}
			return d.Trainer.PrivateSessionRate, LabelPerSession
		},
		Details: func(draft *ProviderProfileDraft) ProviderDetails {
			return ProviderDetails{Trainer: draft.trainerDetails()}
		},
		RequiredIDsField: "specializations_ids",
		RequiredIDs:      func(draft *ProviderProfileDraft) []int64 { return draft.SpecializationsIDs },
	},
	SlugGrooming: {
		Slug:        SlugGrooming,
		DetailsKey:  "groomer_details",
		VariantMode: ModeAppointment,
		Present:     func(d ProviderDetails) bool { return d.Groomer != nil },
		Rate: func(d ProviderDetails, _ bool) (Amount, string) {
			if d.Groomer == nil {
				return ZeroAmount, LabelStartingAt
			}
			return d.Groomer.BasePrice, LabelStartingAt
		},
		Details: func(draft *ProviderProfileDraft) ProviderDetails {
			return ProviderDetails{Groomer: draft.groomerDetails()}
		},
	},
	SlugPetSitting: {
		Slug:       SlugPetSitting,
		DetailsKey: "sitter_details",
		Present:    func(d ProviderDetails) bool { return d.Sitter != nil },
		Rate: func(d ProviderDetails, walking bool) (Amount, string) {
			if walking {
				if d.Sitter == nil {
					return ZeroAmount, LabelPerWalk
				}
				return d.Sitter.WalkingRate, LabelPerWalk
			}
			if d.Sitter == nil {
				return ZeroAmount, LabelPerNight
			}
			if !d.Sitter.HouseSittingRate.IsZero() {
				return d.Sitter.HouseSittingRate, LabelPerNight
			}
			return d.Sitter.DropInRate, LabelPerNight
		},
		Details: func(draft *ProviderProfileDraft) ProviderDetails {
			return ProviderDetails{Sitter: draft.sitterDetails()}
		},
	},
}

// variantOrder порядок проверки вариантов при определении активного
var variantOrder = []CategorySlug{SlugFoster, SlugVeterinary, SlugTraining, SlugGrooming, SlugPetSitting}

// LookupCategory возвращает описание категории по slug
func LookupCategory(slug CategorySlug) (CategorySpec, bool) {
	spec, ok := categoryTable[CategorySlug(strings.ToLower(string(slug)))]
	return spec, ok
}

// IsKnown true для одной из пяти категорий
func (s CategorySlug) IsKnown() bool {
	_, ok := LookupCategory(s)
	return ok
}

// Categories все известные категории в фиксированном порядке
func Categories() []CategorySpec {
	out := make([]CategorySpec, 0, len(variantOrder))
	for _, slug := range variantOrder {
		out = append(out, categoryTable[slug])
	}
	return out
}
