package domain

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

// ErrIndexOutOfRange возвращается при обращении к строке списка по несуществующему индексу
var ErrIndexOutOfRange = errors.New("domain: index out of range")

// BusinessHours часы работы за один день, Day: 0 = понедельник ... 6 = воскресенье
type BusinessHours struct {
	Day       int              `json:"day" validate:"min=0,max=6"`
	OpenTime  types.TimeString `json:"open_time"`
	CloseTime types.TimeString `json:"close_time"`
	IsClosed  bool             `json:"is_closed"`
}

// MediaImage загруженное изображение
type MediaImage struct {
	FileURL      string `json:"file_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	AltText      string `json:"alt_text"`
}

// RateInput ставка из формы как ее ввел пользователь
// В JSON принимается строка или число; null дает пустое значение
type RateInput string

// UnmarshalJSON не отклоняет анкету из-за формата ставки, некорректное значение станет 0 при сборке
func (r *RateInput) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	switch {
	case len(data) == 0 || bytes.Equal(data, []byte("null")):
		*r = ""
	case data[0] == '"':
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*r = ""
			return nil
		}
		*r = RateInput(s)
	default:
		*r = RateInput(data)
	}
	return nil
}

// Parse разбирает ставку, ok = false для пустого или некорректного значения
func (r RateInput) Parse() (Amount, bool) {
	return ParseAmount(string(r))
}

// Amount ставка или 0
func (r RateInput) Amount() Amount {
	a, _ := r.Parse()
	return a
}

// PackageOptionInput строка пакета в форме (цена как ввел пользователь)
type PackageOptionInput struct {
	Name        string    `json:"name"`
	Sessions    int       `json:"sessions"`
	Price       RateInput `json:"price"`
	Description string    `json:"description"`
}

// ServiceMenuItemInput строка прайса в форме
type ServiceMenuItemInput struct {
	Name        string    `json:"name"`
	Price       RateInput `json:"price"`
	Description string    `json:"description"`
}

// ProviderProfileDraft состояние формы регистрации провайдера
// Ставки хранятся строками, как их ввел пользователь
type ProviderProfileDraft struct {
	CategoryID   int64    `json:"category" validate:"required"`
	BusinessName string   `json:"business_name" validate:"required"`
	Description  string   `json:"description" validate:"required"`
	Email        string   `json:"email" validate:"omitempty,email"`
	Phone        string   `json:"phone"`
	Website      string   `json:"website"`
	AddressLine1 string   `json:"address_line1"`
	AddressLine2 string   `json:"address_line2"`
	City         string   `json:"city"`
	State        string   `json:"state"`
	ZipCode      string   `json:"zip_code"`
	Latitude     *float64 `json:"latitude"`
	Longitude    *float64 `json:"longitude"`

	SpeciesIDs    []int64         `json:"species_ids" validate:"required,min=1"`
	BusinessHours []BusinessHours `json:"business_hours" validate:"omitempty,len=7,dive"`
	Images        []MediaImage    `json:"images"`

	// foster
	Capacity            int       `json:"capacity"`
	CurrentAvailability int       `json:"current_availability"`
	DailyRate           RateInput `json:"daily_rate"`
	WeeklyDiscount      int       `json:"weekly_discount"`
	MonthlyRate         RateInput `json:"monthly_rate"`
	HasYard             bool      `json:"has_yard"`
	HasFencedYard       bool      `json:"has_fenced_yard"`
	HasOtherPets        bool      `json:"has_other_pets"`
	AcceptsSpecialNeeds bool      `json:"accepts_special_needs"`
	ProvidesTransport   bool      `json:"provides_transport"`

	// veterinary
	ClinicType        string  `json:"clinic_type"`
	LicenseNumber     string  `json:"license_number"`
	ServicesIDs       []int64 `json:"services_ids"`
	EmergencyServices bool    `json:"emergency_services"`
	HouseCalls        bool    `json:"house_calls"`
	AcceptsInsurance  bool    `json:"accepts_insurance"`

	// training
	PrimaryMethod         string    `json:"primary_method"`
	YearsExperience       int       `json:"years_experience"`
	SpecializationsIDs    []int64   `json:"specializations_ids"`
	PrivateSessionRate    RateInput `json:"private_session_rate"`
	GroupClassRate        RateInput `json:"group_class_rate"`
	OffersPrivateSessions bool      `json:"offers_private_sessions"`
	OffersGroupClasses    bool      `json:"offers_group_classes"`
	OffersBoardAndTrain   bool      `json:"offers_board_and_train"`

	// grooming
	SalonType     string    `json:"salon_type"`
	BasePrice     RateInput `json:"base_price"`
	MobileService bool      `json:"mobile_service"`

	// pet_sitting
	ServiceRadiusKm    int       `json:"service_radius_km"`
	HouseSittingRate   RateInput `json:"house_sitting_rate"`
	DropInRate         RateInput `json:"drop_in_rate"`
	WalkingRate        RateInput `json:"walking_rate"`
	OffersHouseSitting bool      `json:"offers_house_sitting"`
	OffersDropIn       bool      `json:"offers_drop_in"`
	OffersWalking      bool      `json:"offers_walking"`
	IsInsured          bool      `json:"is_insured"`
	IsBonded           bool      `json:"is_bonded"`

	Certifications []Certification        `json:"certifications"`
	Packages       []PackageOptionInput   `json:"packages"`
	ServiceMenu    []ServiceMenuItemInput `json:"service_menu"`
}

func appendItem[T any](items []T, item T) []T {
	return append(items, item)
}

func updateItemAt[T any](items []T, index int, item T) error {
	if index < 0 || index >= len(items) {
		return fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(items))
	}
	items[index] = item
	return nil
}

func removeItemAt[T any](items []T, index int) ([]T, error) {
	if index < 0 || index >= len(items) {
		return items, fmt.Errorf("%w: %d (len %d)", ErrIndexOutOfRange, index, len(items))
	}
	out := make([]T, 0, len(items)-1)
	out = append(out, items[:index]...)
	return append(out, items[index+1:]...), nil
}

func (d *ProviderProfileDraft) AddCertification(c Certification) {
	d.Certifications = appendItem(d.Certifications, c)
}

func (d *ProviderProfileDraft) UpdateCertification(index int, c Certification) error {
	return updateItemAt(d.Certifications, index, c)
}

func (d *ProviderProfileDraft) RemoveCertification(index int) error {
	items, err := removeItemAt(d.Certifications, index)
	if err != nil {
		return err
	}
	d.Certifications = items
	return nil
}

func (d *ProviderProfileDraft) AddPackage(p PackageOptionInput) {
	d.Packages = appendItem(d.Packages, p)
}

func (d *ProviderProfileDraft) UpdatePackage(index int, p PackageOptionInput) error {
	return updateItemAt(d.Packages, index, p)
}

func (d *ProviderProfileDraft) RemovePackage(index int) error {
	items, err := removeItemAt(d.Packages, index)
	if err != nil {
		return err
	}
	d.Packages = items
	return nil
}

func (d *ProviderProfileDraft) AddServiceMenuItem(item ServiceMenuItemInput) {
	d.ServiceMenu = appendItem(d.ServiceMenu, item)
}

func (d *ProviderProfileDraft) UpdateServiceMenuItem(index int, item ServiceMenuItemInput) error {
	return updateItemAt(d.ServiceMenu, index, item)
}

func (d *ProviderProfileDraft) RemoveServiceMenuItem(index int) error {
	items, err := removeItemAt(d.ServiceMenu, index)
	if err != nil {
		return err
	}
	d.ServiceMenu = items
	return nil
}

// строки без названия (добавлены в форме, но не заполнены) пропускаются

func (d *ProviderProfileDraft) certifications() []Certification {
	out := make([]Certification, 0, len(d.Certifications))
	for _, c := range d.Certifications {
		if c.Name == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

func (d *ProviderProfileDraft) packages() []PackageOption {
	out := make([]PackageOption, 0, len(d.Packages))
	for _, p := range d.Packages {
		if p.Name == "" {
			continue
		}
		out = append(out, PackageOption{
			Name:        p.Name,
			Sessions:    p.Sessions,
			Price:       p.Price.Amount(),
			Description: p.Description,
		})
	}
	return out
}

func (d *ProviderProfileDraft) serviceMenu() []ServiceMenuItem {
	out := make([]ServiceMenuItem, 0, len(d.ServiceMenu))
	for _, item := range d.ServiceMenu {
		if item.Name == "" {
			continue
		}
		out = append(out, ServiceMenuItem{
			Name:        item.Name,
			Price:       item.Price.Amount(),
			Description: item.Description,
		})
	}
	return out
}

func (d *ProviderProfileDraft) species() []int64 {
	if d.SpeciesIDs == nil {
		return []int64{}
	}
	return d.SpeciesIDs
}

func (d *ProviderProfileDraft) fosterDetails() *FosterDetails {
	daily := d.DailyRate.Amount()
	monthly, ok := d.MonthlyRate.Parse()
	if !ok {
		monthly = daily.MulInt(MonthlyRateDays)
	}
	return &FosterDetails{
		SpeciesIDs:          d.species(),
		Capacity:            d.Capacity,
		CurrentAvailability: d.CurrentAvailability,
		DailyRate:           daily,
		WeeklyDiscount:      d.WeeklyDiscount,
		MonthlyRate:         monthly,
		HasYard:             d.HasYard,
		HasFencedYard:       d.HasFencedYard,
		HasOtherPets:        d.HasOtherPets,
		AcceptsSpecialNeeds: d.AcceptsSpecialNeeds,
		ProvidesTransport:   d.ProvidesTransport,
	}
}

func (d *ProviderProfileDraft) vetDetails() *VetDetails {
	services := d.ServicesIDs
	if services == nil {
		services = []int64{}
	}
	return &VetDetails{
		SpeciesIDs:        d.species(),
		ServicesIDs:       services,
		ClinicType:        d.ClinicType,
		LicenseNumber:     d.LicenseNumber,
		EmergencyServices: d.EmergencyServices,
		HouseCalls:        d.HouseCalls,
		AcceptsInsurance:  d.AcceptsInsurance,
		Certifications:    d.certifications(),
	}
}

func (d *ProviderProfileDraft) trainerDetails() *TrainerDetails {
	specializations := d.SpecializationsIDs
	if specializations == nil {
		specializations = []int64{}
	}
	return &TrainerDetails{
		SpeciesIDs:            d.species(),
		SpecializationsIDs:    specializations,
		PrimaryMethod:         d.PrimaryMethod,
		YearsExperience:       d.YearsExperience,
		PrivateSessionRate:    d.PrivateSessionRate.Amount(),
		GroupClassRate:        d.GroupClassRate.Amount(),
		OffersPrivateSessions: d.OffersPrivateSessions,
		OffersGroupClasses:    d.OffersGroupClasses,
		OffersBoardAndTrain:   d.OffersBoardAndTrain,
		Certifications:        d.certifications(),
		Packages:              d.packages(),
	}
}

func (d *ProviderProfileDraft) groomerDetails() *GroomerDetails {
	return &GroomerDetails{
		SpeciesIDs:      d.species(),
		SalonType:       d.SalonType,
		YearsExperience: d.YearsExperience,
		BasePrice:       d.BasePrice.Amount(),
		MobileService:   d.MobileService,
		Certifications:  d.certifications(),
		ServiceMenu:     d.serviceMenu(),
	}
}

func (d *ProviderProfileDraft) sitterDetails() *SitterDetails {
	return &SitterDetails{
		SpeciesIDs:         d.species(),
		ServiceRadiusKm:    d.ServiceRadiusKm,
		HouseSittingRate:   d.HouseSittingRate.Amount(),
		DropInRate:         d.DropInRate.Amount(),
		WalkingRate:        d.WalkingRate.Amount(),
		OffersHouseSitting: d.OffersHouseSitting,
		OffersDropIn:       d.OffersDropIn,
		OffersWalking:      d.OffersWalking,
		IsInsured:          d.IsInsured,
		IsBonded:           d.IsBonded,
	}
}
