package create_booking

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-PetCareService/internal/pricing"
)

// FlowRepository интерфейс репозитория сценариев бронирования
type FlowRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*domain.BookingFlow, error)
	TransitionStep(ctx context.Context, id uuid.UUID, from, to domain.FlowStep, now time.Time) error
	SetBookingID(ctx context.Context, id uuid.UUID, bookingID int64, now time.Time) error
}

// ProviderSource источник карточек провайдеров
type ProviderSource interface {
	GetProvider(ctx context.Context, providerID int64) (*domain.Provider, error)
}

// PriceEstimator считает стоимость для agreed_price
type PriceEstimator interface {
	Estimate(in pricing.Input) pricing.Result
}

// BookingClient интерфейс клиента маркетплейса для создания бронирования
type BookingClient interface {
	CreateBooking(ctx context.Context, payload *domain.BookingPayload) (*marketplace.CreatedBooking, error)
}

// Metrics счетчик отправок бронирования
type Metrics interface {
	ObserveBookingSubmit(outcome string)
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

// RealTimeProvider реальный провайдер времени для production
type RealTimeProvider struct{}

// Now возвращает текущее время
func (p *RealTimeProvider) Now() time.Time {
	return time.Now()
}
