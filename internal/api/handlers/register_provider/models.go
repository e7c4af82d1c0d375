package register_provider

import (
	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/profile"
	registerProvider "github.com/m04kA/SMC-PetCareService/internal/usecase/register_provider"
)

// ProviderResponse HTTP response model
type ProviderResponse struct {
	ID            int64           `json:"id"`
	BusinessName  string          `json:"business_name"`
	Category      domain.Category `json:"category"`
	MediaAttached int             `json:"media_attached"`
	MediaFailed   int             `json:"media_failed"`
}

// ToUseCaseRequest собирает запрос use case из анкеты
func ToUseCaseRequest(userID int64, draft *domain.ProviderProfileDraft) *registerProvider.Request {
	return &registerProvider.Request{
		UserID: userID,
		Draft:  draft,
	}
}

// FromUseCaseResponse конвертирует ответ use case в HTTP response
func FromUseCaseResponse(resp *registerProvider.Response) *ProviderResponse {
	return &ProviderResponse{
		ID:            resp.ProviderID,
		BusinessName:  resp.BusinessName,
		Category:      resp.Category,
		MediaAttached: resp.MediaAttached,
		MediaFailed:   resp.MediaFailed,
	}
}

// FieldDetails конвертирует ошибки полей анкеты в HTTP модель
func FieldDetails(verr *profile.ValidationError) []handlers.FieldDetail {
	details := make([]handlers.FieldDetail, len(verr.Fields))
	for i, f := range verr.Fields {
		details[i] = handlers.FieldDetail{Field: f.Field, Message: f.Message}
	}
	return details
}
