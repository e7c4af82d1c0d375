package register_provider

import (
	"context"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
)

// CategorySource справочник категорий
type CategorySource interface {
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// MarketplaceClient интерфейс клиента маркетплейса для регистрации провайдера
type MarketplaceClient interface {
	CreateProvider(ctx context.Context, payload *domain.ProviderPayload) (*marketplace.CreatedProvider, error)
	AttachMedia(ctx context.Context, providerID int64, req marketplace.MediaAttachRequest) error
}

// ProfileBuilder собирает тело запроса из анкеты
type ProfileBuilder interface {
	Build(draft *domain.ProviderProfileDraft, category domain.Category) *domain.ProviderPayload
}

// Metrics счетчик неудачных прикреплений медиа
type Metrics interface {
	ObserveMediaAttachFailure()
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
