package marketplace

import (
	"context"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// Source исходный клиент маркетплейса
type Source interface {
	GetProvider(ctx context.Context, providerID int64) (*domain.Provider, error)
	ListCategories(ctx context.Context) ([]domain.Category, error)
}

// Metrics счетчики обращений к кэшу
type Metrics interface {
	ObserveCacheLookup(kind, result string)
}

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
	Warn(format string, v ...interface{})
	Error(format string, v ...interface{})
}
