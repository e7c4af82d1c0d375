package get_available_slots

import (
	"context"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
)

// AvailabilityClient интерфейс клиента маркетплейса для доступного времени
type AvailabilityClient interface {
	GetAvailability(ctx context.Context, providerID int64, date time.Time) (*marketplace.Availability, error)
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
