package domain

import "strings"

// Certification сертификат специалиста
type Certification struct {
	Name         string `json:"name"`
	Organization string `json:"organization"`
	Year         int    `json:"year,omitempty"`
}

// PackageOption пакет занятий дрессировщика
type PackageOption struct {
	Name        string `json:"name"`
	Sessions    int    `json:"sessions"`
	Price       Amount `json:"price"`
	Description string `json:"description"`
}

// ServiceMenuItem позиция прайса грумера
type ServiceMenuItem struct {
	Name        string `json:"name"`
	Price       Amount `json:"price"`
	Description string `json:"description"`
}

// FosterDetails передержка
type FosterDetails struct {
	SpeciesIDs          []int64 `json:"species_ids"`
	Capacity            int     `json:"capacity"`
	CurrentAvailability int     `json:"current_availability"`
	DailyRate           Amount  `json:"daily_rate"`
	WeeklyDiscount      int     `json:"weekly_discount"`
	MonthlyRate         Amount  `json:"monthly_rate"`
	HasYard             bool    `json:"has_yard"`
	HasFencedYard       bool    `json:"has_fenced_yard"`
	HasOtherPets        bool    `json:"has_other_pets"`
	AcceptsSpecialNeeds bool    `json:"accepts_special_needs"`
	ProvidesTransport   bool    `json:"provides_transport"`
}

// VetDetails ветеринарная клиника
type VetDetails struct {
	SpeciesIDs        []int64         `json:"species_ids"`
	ServicesIDs       []int64         `json:"services_ids"`
	ClinicType        string          `json:"clinic_type"`
	LicenseNumber     string          `json:"license_number"`
	EmergencyServices bool            `json:"emergency_services"`
	HouseCalls        bool            `json:"house_calls"`
	AcceptsInsurance  bool            `json:"accepts_insurance"`
	Certifications    []Certification `json:"certifications"`
}

// TrainerDetails дрессировщик
type TrainerDetails struct {
	SpeciesIDs            []int64         `json:"species_ids"`
	SpecializationsIDs    []int64         `json:"specializations_ids"`
	PrimaryMethod         string          `json:"primary_method"`
	YearsExperience       int             `json:"years_experience"`
	PrivateSessionRate    Amount          `json:"private_session_rate"`
	GroupClassRate        Amount          `json:"group_class_rate"`
	OffersPrivateSessions bool            `json:"offers_private_sessions"`
	OffersGroupClasses    bool            `json:"offers_group_classes"`
	OffersBoardAndTrain   bool            `json:"offers_board_and_train"`
	Certifications        []Certification `json:"certifications"`
	Packages              []PackageOption `json:"packages"`
}

// GroomerDetails грумер
type GroomerDetails struct {
	SpeciesIDs      []int64           `json:"species_ids"`
	SalonType       string            `json:"salon_type"`
	YearsExperience int               `json:"years_experience"`
	BasePrice       Amount            `json:"base_price"`
	MobileService   bool              `json:"mobile_service"`
	Certifications  []Certification   `json:"certifications"`
	ServiceMenu     []ServiceMenuItem `json:"service_menu"`
}

// SitterDetails догситтер / пет-ситтер
type SitterDetails struct {
	SpeciesIDs         []int64 `json:"species_ids"`
	ServiceRadiusKm    int     `json:"service_radius_km"`
	HouseSittingRate   Amount  `json:"house_sitting_rate"`
	DropInRate         Amount  `json:"drop_in_rate"`
	WalkingRate        Amount  `json:"walking_rate"`
	OffersHouseSitting bool    `json:"offers_house_sitting"`
	OffersDropIn       bool    `json:"offers_drop_in"`
	OffersWalking      bool    `json:"offers_walking"`
	IsInsured          bool    `json:"is_insured"`
	IsBonded           bool    `json:"is_bonded"`
}

// ProviderDetails вариант деталей по категории, заполнен не более чем один
type ProviderDetails struct {
	Foster  *FosterDetails  `json:"foster_details,omitempty"`
	Vet     *VetDetails     `json:"vet_details,omitempty"`
	Trainer *TrainerDetails `json:"trainer_details,omitempty"`
	Groomer *GroomerDetails `json:"groomer_details,omitempty"`
	Sitter  *SitterDetails  `json:"sitter_details,omitempty"`
}

// Active возвращает slug заполненного варианта
func (d ProviderDetails) Active() (CategorySlug, bool) {
	for _, slug := range variantOrder {
		if categoryTable[slug].Present(d) {
			return slug, true
		}
	}
	return "", false
}

// ServiceOption услуга провайдера, которую можно выбрать при бронировании
type ServiceOption struct {
	ID        int64   `json:"id"`
	Name      string  `json:"name"`
	Price     *Amount `json:"price,omitempty"`
	BasePrice *Amount `json:"base_price,omitempty"`
}

// ExplicitPrice цена позиции, если она задана (price важнее base_price)
func (s *ServiceOption) ExplicitPrice() (Amount, bool) {
	if s == nil {
		return ZeroAmount, false
	}
	if s.Price != nil && !s.Price.IsZero() {
		return *s.Price, true
	}
	if s.BasePrice != nil && !s.BasePrice.IsZero() {
		return *s.BasePrice, true
	}
	return ZeroAmount, false
}

// Provider карточка провайдера из маркетплейса
type Provider struct {
	ID             int64           `json:"id"`
	BusinessName   string          `json:"business_name"`
	Category       Category        `json:"category"`
	ServiceOptions []ServiceOption `json:"service_options"`
	ProviderDetails
}

// ServiceOption ищет услугу по ID
func (p *Provider) ServiceOption(id int64) (*ServiceOption, bool) {
	for i := range p.ServiceOptions {
		if p.ServiceOptions[i].ID == id {
			return &p.ServiceOptions[i], true
		}
	}
	return nil, false
}

// CategoryMatches true, если slug или название категории содержит keyword
func (p *Provider) CategoryMatches(keyword string) bool {
	keyword = strings.ToLower(keyword)
	if strings.ToLower(string(p.Category.Slug)) == keyword {
		return true
	}
	return keyword != "" && strings.Contains(strings.ToLower(p.Category.Name), keyword)
}
