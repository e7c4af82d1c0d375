package create_booking

import (
	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	createBooking "github.com/m04kA/SMC-PetCareService/internal/usecase/create_booking"
)

// BookingResponse HTTP response model
type BookingResponse struct {
	BookingID   int64         `json:"booking_id"`
	Status      string        `json:"status"`
	BookingType string        `json:"booking_type"`
	AgreedPrice domain.Amount `json:"agreed_price"`
	Label       string        `json:"label"`
	IsEstimate  bool          `json:"is_estimate"`
	CheckoutURL string        `json:"checkout_url,omitempty"`
}

// ToUseCaseRequest создает запрос use case
func ToUseCaseRequest(userID int64, flowID uuid.UUID) *createBooking.Request {
	return &createBooking.Request{
		UserID: userID,
		FlowID: flowID,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *createBooking.Response) *BookingResponse {
	return &BookingResponse{
		BookingID:   resp.BookingID,
		Status:      resp.Status,
		BookingType: string(resp.BookingType),
		AgreedPrice: resp.AgreedPrice,
		Label:       resp.Label,
		IsEstimate:  resp.IsEstimate,
		CheckoutURL: resp.CheckoutURL,
	}
}
