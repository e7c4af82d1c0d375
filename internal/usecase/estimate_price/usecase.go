package estimate_price

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-PetCareService/internal/pricing"
)

// UseCase use case предварительного расчета стоимости
type UseCase struct {
	providers ProviderSource
	resolver  ModeResolver
	estimator PriceEstimator
	metrics   Metrics
	logger    Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	providers ProviderSource,
	resolver ModeResolver,
	estimator PriceEstimator,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		providers: providers,
		resolver:  resolver,
		estimator: estimator,
		metrics:   metrics,
		logger:    logger,
	}
}

// Execute определяет режим бронирования и считает стоимость
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("EstimatePrice: provider=%d, start=%s", req.ProviderID, req.StartDate.Format(domain.DateFormat))

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("EstimatePrice: validation failed: %v", err)
		return nil, err
	}

	// 2. Получаем провайдера
	provider, err := uc.providers.GetProvider(ctx, req.ProviderID)
	if err != nil {
		if errors.Is(err, marketplace.ErrNotFound) {
			uc.logger.Warn("EstimatePrice: provider id=%d not found", req.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("EstimatePrice: failed to get provider id=%d: %v", req.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	// 3. Находим выбранную услугу
	var service *domain.ServiceOption
	serviceName := ""
	if req.ServiceOptionID != nil {
		option, ok := provider.ServiceOption(*req.ServiceOptionID)
		if !ok {
			uc.logger.Warn("EstimatePrice: service option id=%d not found for provider=%d", *req.ServiceOptionID, req.ProviderID)
			return nil, ErrServiceOptionNotFound
		}
		service = option
		serviceName = option.Name
	}

	// 4. Определяем режим и считаем стоимость
	resolution := uc.resolver.Resolve(provider, serviceName)

	var end time.Time
	if req.EndDate != nil {
		end = *req.EndDate
	}
	result := uc.estimator.Estimate(pricing.Input{
		Provider: provider,
		Mode:     resolution.Mode,
		Service:  service,
		Start:    req.StartDate,
		End:      end,
	})

	uc.metrics.ObserveEstimate(string(resolution.Mode), string(provider.Category.Slug))
	uc.logger.Info("EstimatePrice: provider=%d mode=%s rule=%s total=%s (%s x %d)",
		req.ProviderID, resolution.Mode, resolution.Rule, result.Total, result.Rate, result.UnitCount)

	return &Response{
		ProviderID: req.ProviderID,
		Mode:       resolution.Mode,
		Rule:       resolution.Rule,
		Rate:       result.Rate,
		UnitCount:  result.UnitCount,
		Total:      result.Total,
		Label:      result.Label,
		IsEstimate: result.IsEstimate,
	}, nil
}
