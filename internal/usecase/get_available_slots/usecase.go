package get_available_slots

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
)

// UseCase use case для получения доступного времени провайдера
type UseCase struct {
	client       AvailabilityClient
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(client AvailabilityClient, logger Logger) *UseCase {
	return &UseCase{
		client:       client,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute выполняет use case получения доступного времени
// Пустой список от маркетплейса заменяется слотами по умолчанию,
// ошибка запроса возвращается как есть
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("GetAvailableSlots: provider=%d, date=%s", req.ProviderID, req.Date.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("GetAvailableSlots: validation failed: %v", err)
		return nil, err
	}

	// 2. Дата не должна быть в прошлом
	if isDateInPast(req.Date, uc.timeProvider.Now()) {
		uc.logger.Warn("GetAvailableSlots: date %s is in the past", req.Date.Format(domain.DateFormat))
		return nil, ErrInvalidDate
	}

	// 3. Запрашиваем доступное время
	availability, err := uc.client.GetAvailability(ctx, req.ProviderID, req.Date)
	if err != nil {
		if errors.Is(err, marketplace.ErrNotFound) {
			uc.logger.Warn("GetAvailableSlots: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("GetAvailableSlots: failed to get availability for provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get availability: %v", ErrInternal, err)
	}

	// 4. Подставляем слоты по умолчанию, если список пуст
	slots := domain.NewAvailableSlots(req.Date, availability.AvailableSlots)
	if slots.Fallback {
		uc.logger.Info("GetAvailableSlots: provider=%d returned no slots, using defaults", req.ProviderID)
	}

	return &Response{
		Date:       domain.DateOnly(req.Date),
		ProviderID: req.ProviderID,
		Slots:      slots.Slots,
		Fallback:   slots.Fallback,
	}, nil
}
