package models

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

// OpenRequest открытие (или переоткрытие) сценария
type OpenRequest struct {
	UserID          int64
	ProviderID      int64
	ServiceOptionID *int64
}

// ScheduleRequest данные шага расписания
type ScheduleRequest struct {
	UserID          int64
	FlowID          uuid.UUID
	ServiceOptionID *int64
	StartDate       time.Time
	EndDate         *time.Time        // только range
	SelectedTime    *types.TimeString // только appointment
}

// PetRequest данные шага выбора питомца
type PetRequest struct {
	UserID int64
	FlowID uuid.UUID
	PetID  int64
	Notes  *string
}

// FlowResponse состояние сценария
type FlowResponse struct {
	ID              uuid.UUID
	ProviderID      int64
	Step            string
	Mode            string
	ServiceOptionID *int64
	StartDate       *time.Time
	EndDate         *time.Time
	SelectedTime    *string
	PetID           *int64
	Notes           *string
	BookingID       *int64
	CanAdvance      bool
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

// FromDomainFlow конвертирует domain.BookingFlow в FlowResponse
func FromDomainFlow(flow *domain.BookingFlow) *FlowResponse {
	resp := &FlowResponse{
		ID:              flow.ID,
		ProviderID:      flow.ProviderID,
		Step:            string(flow.Step),
		Mode:            string(flow.Mode),
		ServiceOptionID: flow.ServiceOptionID,
		StartDate:       flow.StartDate,
		EndDate:         flow.EndDate,
		PetID:           flow.PetID,
		Notes:           flow.Notes,
		BookingID:       flow.BookingID,
		CanAdvance:      flow.CanAdvance(),
		CreatedAt:       flow.CreatedAt,
		UpdatedAt:       flow.UpdatedAt,
	}
	if flow.SelectedTime != nil {
		t := flow.SelectedTime.String()
		resp.SelectedTime = &t
	}
	return resp
}
