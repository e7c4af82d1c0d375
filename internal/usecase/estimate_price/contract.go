package estimate_price

import (
	"context"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/pricing"
	"github.com/m04kA/SMC-PetCareService/internal/resolver"
)

// ProviderSource источник карточек провайдеров
type ProviderSource interface {
	GetProvider(ctx context.Context, providerID int64) (*domain.Provider, error)
}

// ModeResolver определяет режим бронирования
type ModeResolver interface {
	Resolve(provider *domain.Provider, serviceName string) resolver.Resolution
}

// PriceEstimator считает предварительную стоимость
type PriceEstimator interface {
	Estimate(in pricing.Input) pricing.Result
}

// Metrics счетчик расчетов стоимости
type Metrics interface {
	ObserveEstimate(mode, category string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
