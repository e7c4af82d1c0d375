package estimate_price

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	estimatePrice "github.com/m04kA/SMC-PetCareService/internal/usecase/estimate_price"
)

// EstimateRequest HTTP request model
type EstimateRequest struct {
	ServiceOptionID *int64  `json:"service_option_id,omitempty"`
	StartDate       string  `json:"start_date"`         // "2025-10-15"
	EndDate         *string `json:"end_date,omitempty"` // только для range
}

// EstimateResponse HTTP response model
type EstimateResponse struct {
	ProviderID  int64         `json:"provider_id"`
	BookingMode string        `json:"booking_mode"`
	Rule        string        `json:"rule"`
	Rate        domain.Amount `json:"rate"`
	UnitCount   int64         `json:"unit_count"`
	Total       domain.Amount `json:"total"`
	Label       string        `json:"label"`
	IsEstimate  bool          `json:"is_estimate"`
}

// ToUseCaseRequest конвертирует HTTP запрос в модель use case
func (r *EstimateRequest) ToUseCaseRequest(providerID int64) (*estimatePrice.Request, error) {
	start, err := time.Parse(domain.DateFormat, r.StartDate)
	if err != nil {
		return nil, err
	}

	req := &estimatePrice.Request{
		ProviderID:      providerID,
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

	return req, nil
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *estimatePrice.Response) *EstimateResponse {
	return &EstimateResponse{
		ProviderID:  resp.ProviderID,
		BookingMode: string(resp.Mode),
		Rule:        resp.Rule,
		Rate:        resp.Rate,
		UnitCount:   resp.UnitCount,
		Total:       resp.Total,
		Label:       resp.Label,
		IsEstimate:  resp.IsEstimate,
	}
}
