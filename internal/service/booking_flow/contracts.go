package booking_flow

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/resolver"
)

// FlowRepository интерфейс репозитория сценариев бронирования
type FlowRepository interface {
	Create(ctx context.Context, flow *domain.BookingFlow) error
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingFlow, error)
	DeleteByUserAndProvider(ctx context.Context, userID, providerID int64) error
	Update(ctx context.Context, flow *domain.BookingFlow, expected domain.FlowStep) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// ProviderSource источник карточек провайдеров (кэш поверх маркетплейса)
type ProviderSource interface {
	GetProvider(ctx context.Context, providerID int64) (*domain.Provider, error)
}

// ModeResolver определяет режим бронирования
type ModeResolver interface {
	Resolve(provider *domain.Provider, serviceName string) resolver.Resolution
}

// TransactionManager интерфейс для управления транзакциями
type TransactionManager interface {
	Do(ctx context.Context, fn func(ctx context.Context) error) error
}

// TimeProvider интерфейс для получения текущего времени (для тестирования)
type TimeProvider interface {
	Now() time.Time
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}

// RealTimeProvider реальный провайдер времени
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
