package booking_flow

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/service/booking_flow/models"
	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

// OpenFlowRequest HTTP request model
type OpenFlowRequest struct {
	ProviderID      int64  `json:"provider_id"`
	ServiceOptionID *int64 `json:"service_option_id,omitempty"`
}

// ScheduleRequest HTTP request model
type ScheduleRequest struct {
	ServiceOptionID *int64  `json:"service_option_id,omitempty"`
	StartDate       string  `json:"start_date"`              // "2025-10-15"
	EndDate         *string `json:"end_date,omitempty"`      // только range
	SelectedTime    *string `json:"selected_time,omitempty"` // только appointment, "10:00"
}

// PetRequest HTTP request model
type PetRequest struct {
	PetID int64   `json:"pet_id"`
	Notes *string `json:"notes,omitempty"`
}

// FlowResponse HTTP response model
type FlowResponse struct {
	ID              string  `json:"id"`
	ProviderID      int64   `json:"provider_id"`
	Step            string  `json:"step"`
	BookingMode     string  `json:"booking_mode,omitempty"`
	ServiceOptionID *int64  `json:"service_option_id,omitempty"`
	StartDate       *string `json:"start_date,omitempty"`
	EndDate         *string `json:"end_date,omitempty"`
	SelectedTime    *string `json:"selected_time,omitempty"`
	PetID           *int64  `json:"pet_id,omitempty"`
	Notes           *string `json:"notes,omitempty"`
	BookingID       *int64  `json:"booking_id,omitempty"`
	CanAdvance      bool    `json:"can_advance"`
	CreatedAt       string  `json:"created_at"`
	UpdatedAt       string  `json:"updated_at"`
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *OpenFlowRequest) ToServiceRequest(userID int64) *models.OpenRequest {
	return &models.OpenRequest{
		UserID:          userID,
		ProviderID:      r.ProviderID,
		ServiceOptionID: r.ServiceOptionID,
	}
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса (с парсингом дат)
func (r *ScheduleRequest) ToServiceRequest(userID int64, flowID uuid.UUID) (*models.ScheduleRequest, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	req := &models.ScheduleRequest{
		UserID:          userID,
		FlowID:          flowID,
		ServiceOptionID: r.ServiceOptionID,
		StartDate:       start,
	}

	if r.EndDate != nil && *r.EndDate != "" {
		end, err := time.Parse(domain.DateFormat, *r.EndDate)
		if err != nil {
			return nil, err
		}
		req.EndDate = &end
	}

	// Формат времени проверяет сервис, он знает режим бронирования
	if r.SelectedTime != nil {
		selected := types.TimeString(*r.SelectedTime)
		req.SelectedTime = &selected
	}

	return req, nil
}

// ToServiceRequest конвертирует HTTP запрос в модель сервиса
func (r *PetRequest) ToServiceRequest(userID int64, flowID uuid.UUID) *models.PetRequest {
	return &models.PetRequest{
		UserID: userID,
		FlowID: flowID,
		PetID:  r.PetID,
		Notes:  r.Notes,
	}
}

// FromServiceResponse конвертирует ответ сервиса в HTTP response
func FromServiceResponse(resp *models.FlowResponse) *FlowResponse {
	return &FlowResponse{
		ID:              resp.ID.String(),
		ProviderID:      resp.ProviderID,
		Step:            resp.Step,
		BookingMode:     resp.Mode,
		ServiceOptionID: resp.ServiceOptionID,
		StartDate:       formatDate(resp.StartDate),
		EndDate:         formatDate(resp.EndDate),
		SelectedTime:    resp.SelectedTime,
		PetID:           resp.PetID,
		Notes:           resp.Notes,
		BookingID:       resp.BookingID,
		CanAdvance:      resp.CanAdvance,
		CreatedAt:       resp.CreatedAt.Format(time.RFC3339),
		UpdatedAt:       resp.UpdatedAt.Format(time.RFC3339),
	}
}

func formatDate(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(domain.DateFormat)
	return &s
}
