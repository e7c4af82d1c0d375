package register_provider

import "github.com/m04kA/SMC-PetCareService/internal/domain"

// Request модель запроса на регистрацию провайдера
type Request struct {
	UserID int64                        // ID пользователя (для логирования)
	Draft  *domain.ProviderProfileDraft // Анкета
}

// Response модель ответа с созданным провайдером
type Response struct {
	ProviderID    int64
	BusinessName  string
	Category      domain.Category
	MediaAttached int // успешно прикрепленные изображения
	MediaFailed   int // изображения, которые не удалось прикрепить
}
