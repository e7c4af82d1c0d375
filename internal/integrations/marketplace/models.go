package marketplace

import (
	"encoding/json"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

// CreatedProvider ответ на создание провайдера
type CreatedProvider struct {
	ID           int64  `json:"id"`
	BusinessName string `json:"business_name"`
}

// MediaAttachRequest прикрепление изображения к провайдеру
type MediaAttachRequest struct {
	FileURL      string `json:"file_url"`
	ThumbnailURL string `json:"thumbnail_url"`
	IsPrimary    bool   `json:"is_primary"`
	AltText      string `json:"alt_text"`
}

// Availability доступное время провайдера на дату
type Availability struct {
	AvailableSlots []types.TimeString `json:"available_slots"`
}

// CreatedBooking ответ на создание бронирования
type CreatedBooking struct {
	ID          int64         `json:"id"`
	Status      string        `json:"status"`
	AgreedPrice domain.Amount `json:"agreed_price"`
}

// ErrorResponse модель ошибки маркетплейса
type ErrorResponse struct {
	Detail string `json:"detail"`
}

// categoryList справочник приходит массивом или страницей {"results": [...]}
type categoryList []domain.Category

func (l *categoryList) UnmarshalJSON(data []byte) error {
	var plain []domain.Category
	if err := json.Unmarshal(data, &plain); err == nil {
		*l = plain
		return nil
	}

	var page struct {
		Results []domain.Category `json:"results"`
	}
	if err := json.Unmarshal(data, &page); err != nil {
		return err
	}
	*l = page.Results
	return nil
}
