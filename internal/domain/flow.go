package domain

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

// FlowStep шаг сценария бронирования
type FlowStep string

const (
	StepCollectingSchedule FlowStep = "collecting_schedule"
	StepSelectingPet       FlowStep = "selecting_pet"
	StepReviewingSummary   FlowStep = "reviewing_summary"
	StepSubmitted          FlowStep = "submitted"
)

var flowSteps = []FlowStep{
	StepCollectingSchedule,
	StepSelectingPet,
	StepReviewingSummary,
	StepSubmitted,
}

func (s FlowStep) index() int {
	for i, step := range flowSteps {
		if step == s {
			return i
		}
	}
	return -1
}

// IsValid true для известного шага
func (s FlowStep) IsValid() bool {
	return s.index() >= 0
}

// IsTerminal true для Submitted
func (s FlowStep) IsTerminal() bool {
	return s == StepSubmitted
}

// Next следующий шаг; перейти в Submitted можно только отправкой
func (s FlowStep) Next() (FlowStep, bool) {
	i := s.index()
	if i < 0 || i+1 >= len(flowSteps) || flowSteps[i+1] == StepSubmitted {
		return s, false
	}
	return flowSteps[i+1], true
}

// Prev предыдущий шаг; из Submitted и CollectingSchedule назад нельзя
func (s FlowStep) Prev() (FlowStep, bool) {
	i := s.index()
	if i <= 0 || s.IsTerminal() {
		return s, false
	}
	return flowSteps[i-1], true
}

// BookingFlow серверное состояние сценария бронирования
type BookingFlow struct {
	ID              uuid.UUID
	UserID          int64
	ProviderID      int64
	Step            FlowStep
	Mode            BookingMode
	ServiceOptionID *int64
	StartDate       *time.Time
	EndDate         *time.Time
	SelectedTime    *types.TimeString
	PetID           *int64
	Notes           *string
	BookingID       *int64
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// NewBookingFlow новый сценарий на первом шаге
func NewBookingFlow(userID, providerID int64, serviceOptionID *int64, now time.Time) *BookingFlow {
	return &BookingFlow{
		ID:              uuid.New(),
		UserID:          userID,
		ProviderID:      providerID,
		Step:            StepCollectingSchedule,
		ServiceOptionID: serviceOptionID,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// ScheduleComplete true, если расписание заполнено для выбранного режима
func (f *BookingFlow) ScheduleComplete() bool {
	if f.StartDate == nil || f.Mode == "" {
		return false
	}
	switch f.Mode {
	case ModeAppointment:
		return f.SelectedTime != nil && !f.SelectedTime.IsZero()
	case ModeRange:
		return f.EndDate != nil
	default:
		return false
	}
}

// CanAdvance проверяет, что данные текущего шага заполнены
func (f *BookingFlow) CanAdvance() bool {
	switch f.Step {
	case StepCollectingSchedule:
		return f.ScheduleComplete()
	case StepSelectingPet:
		return f.PetID != nil
	default:
		return false
	}
}

// Draft черновик бронирования из заполненного сценария
func (f *BookingFlow) Draft(agreedPrice Amount) BookingDraft {
	d := BookingDraft{
		ProviderID:      f.ProviderID,
		ServiceOptionID: f.ServiceOptionID,
		Mode:            f.Mode,
		SelectedTime:    f.SelectedTime,
		AgreedPrice:     agreedPrice,
	}
	if f.PetID != nil {
		d.PetID = *f.PetID
	}
	if f.StartDate != nil {
		d.StartDate = *f.StartDate
	}
	if f.EndDate != nil {
		d.EndDate = *f.EndDate
	}
	if f.Notes != nil {
		d.Notes = *f.Notes
	}
	return d
}
