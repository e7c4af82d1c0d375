package domain

import (
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

// BookingType тип бронирования на стороне маркетплейса
type BookingType string

const (
	BookingTypeStandard  BookingType = "standard"
	BookingTypeRecurring BookingType = "recurring"
)

var (
	// ErrInvalidBookingDraft возвращается, когда черновик бронирования неполный
	ErrInvalidBookingDraft = errors.New("domain: invalid booking draft")
)

// BookingTypeFor маппинг режима на тип маркетплейса:
// appointment = "standard", range = "recurring"
func BookingTypeFor(mode BookingMode) BookingType {
	if mode == ModeAppointment {
		return BookingTypeStandard
	}
	return BookingTypeRecurring
}

// BookingDraft черновик бронирования, отправляется один раз
type BookingDraft struct {
	ProviderID      int64
	PetID           int64
	ServiceOptionID *int64
	Mode            BookingMode
	StartDate       time.Time
	EndDate         time.Time         // только range
	SelectedTime    *types.TimeString // только appointment
	Notes           string
	AgreedPrice     Amount
}

// BookingPayload тело запроса на создание бронирования в маркетплейсе
type BookingPayload struct {
	Provider            int64       `json:"provider"`
	Pet                 int64       `json:"pet"`
	ServiceOption       *int64      `json:"service_option"`
	BookingType         BookingType `json:"booking_type"`
	BookingDate         string      `json:"booking_date"`
	BookingTime         *string     `json:"booking_time"`
	StartDatetime       string      `json:"start_datetime"`
	EndDatetime         string      `json:"end_datetime"`
	SpecialRequirements string      `json:"special_requirements"`
	AgreedPrice         string      `json:"agreed_price"`
}

// Payload сериализует черновик
// appointment: start = дата + выбранное время, end = start + appointmentDuration
// range: с начала даты начала до начала даты окончания, booking_time = null
func (b *BookingDraft) Payload(appointmentDuration time.Duration) (*BookingPayload, error) {
	if b.ProviderID <= 0 || b.PetID <= 0 {
		return nil, fmt.Errorf("%w: provider and pet are required", ErrInvalidBookingDraft)
	}
	if b.StartDate.IsZero() {
		return nil, fmt.Errorf("%w: start date is required", ErrInvalidBookingDraft)
	}

	startDay := DateOnly(b.StartDate)
	payload := &BookingPayload{
		Provider:            b.ProviderID,
		Pet:                 b.PetID,
		ServiceOption:       b.ServiceOptionID,
		BookingType:         BookingTypeFor(b.Mode),
		BookingDate:         startDay.Format(DateFormat),
		SpecialRequirements: b.Notes,
		AgreedPrice:         b.AgreedPrice.String(),
	}

	switch b.Mode {
	case ModeAppointment:
		if b.SelectedTime == nil || b.SelectedTime.IsZero() {
			return nil, fmt.Errorf("%w: time is required for appointment", ErrInvalidBookingDraft)
		}
		start, err := b.SelectedTime.On(startDay)
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrInvalidBookingDraft, err)
		}
		bookingTime := b.SelectedTime.String()
		payload.BookingTime = &bookingTime
		payload.StartDatetime = start.Format(time.RFC3339)
		payload.EndDatetime = start.Add(appointmentDuration).Format(time.RFC3339)
	case ModeRange:
		if b.EndDate.IsZero() {
			return nil, fmt.Errorf("%w: end date is required for range", ErrInvalidBookingDraft)
		}
		payload.StartDatetime = startDay.Format(time.RFC3339)
		payload.EndDatetime = DateOnly(b.EndDate).Format(time.RFC3339)
	default:
		return nil, fmt.Errorf("%w: unknown booking mode %q", ErrInvalidBookingDraft, b.Mode)
	}

	return payload, nil
}

// DateOnly полночь UTC того же календарного дня
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}
