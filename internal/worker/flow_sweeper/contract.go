package flow_sweeper

import (
	"context"
	"time"
)

// FlowRepository удаление брошенных сценариев
type FlowRepository interface {
	DeleteStale(ctx context.Context, before time.Time) (int64, error)
}

// Metrics счетчик удаленных сценариев
type Metrics interface {
	ObserveFlowsSwept(count int64)
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
