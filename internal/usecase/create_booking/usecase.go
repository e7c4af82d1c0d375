package create_booking

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	flowRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/booking_flow"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-PetCareService/internal/pricing"
)

// Исходы отправки для метрик
const (
	outcomeCreated  = "created"
	outcomeRejected = "rejected"
	outcomeFailed   = "failed"
	outcomeConflict = "conflict"
)

// detachedTimeout ограничивает запись в хранилище после ответа маркетплейса
const detachedTimeout = 5 * time.Second

// UseCase use case для отправки сценария бронирования в маркетплейс
type UseCase struct {
	flowRepo     FlowRepository
	providers    ProviderSource
	estimator    PriceEstimator
	client       BookingClient
	metrics      Metrics
	config       Config
	timeProvider TimeProvider
	logger       Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	flowRepo FlowRepository,
	providers ProviderSource,
	estimator PriceEstimator,
	client BookingClient,
	metrics Metrics,
	config Config,
	logger Logger,
) *UseCase {
	if config.AppointmentDuration <= 0 {
		config.AppointmentDuration = domain.DefaultAppointmentDurationMinutes * time.Minute
	}
	return &UseCase{
		flowRepo:     flowRepo,
		providers:    providers,
		estimator:    estimator,
		client:       client,
		metrics:      metrics,
		config:       config,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Execute отправляет сценарий один раз
// Сценарий захватывается переходом reviewing_summary -> submitted до запроса в маркетплейс,
// поэтому повторная отправка получает ErrAlreadySubmitted. Повторных попыток нет:
// при ошибке маркетплейса захват снимается и пользователь отправляет снова сам
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	uc.logger.Info("CreateBooking: user=%d, flow=%s", req.UserID, req.FlowID)

	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("CreateBooking: validation failed: %v", err)
		return nil, err
	}

	// 2. Загружаем сценарий и проверяем владельца
	flow, err := uc.flowRepo.GetByID(ctx, req.FlowID)
	if err != nil {
		if errors.Is(err, flowRepo.ErrFlowNotFound) {
			uc.logger.Warn("CreateBooking: flow=%s not found", req.FlowID)
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("CreateBooking: failed to get flow=%s: %v", req.FlowID, err)
		return nil, fmt.Errorf("%w: failed to get flow: %v", ErrInternal, err)
	}
	if flow.UserID != req.UserID {
		uc.logger.Warn("CreateBooking: access denied for user=%d to flow=%s", req.UserID, req.FlowID)
		return nil, ErrAccessDenied
	}

	// 3. Проверяем шаг
	switch flow.Step {
	case domain.StepReviewingSummary:
	case domain.StepSubmitted:
		uc.logger.Warn("CreateBooking: flow=%s is already submitted", flow.ID)
		uc.metrics.ObserveBookingSubmit(outcomeConflict)
		return nil, ErrAlreadySubmitted
	default:
		uc.logger.Warn("CreateBooking: flow=%s is at step %s", flow.ID, flow.Step)
		return nil, ErrFlowNotReady
	}

	// 4. Получаем провайдера и услугу
	provider, err := uc.providers.GetProvider(ctx, flow.ProviderID)
	if err != nil {
		if errors.Is(err, marketplace.ErrNotFound) {
			uc.logger.Warn("CreateBooking: provider id=%d not found", flow.ProviderID)
			return nil, ErrProviderNotFound
		}
		uc.logger.Error("CreateBooking: failed to get provider id=%d: %v", flow.ProviderID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}

	var service *domain.ServiceOption
	if flow.ServiceOptionID != nil {
		option, ok := provider.ServiceOption(*flow.ServiceOptionID)
		if !ok {
			uc.logger.Warn("CreateBooking: service option id=%d not found for provider=%d", *flow.ServiceOptionID, provider.ID)
			return nil, ErrServiceOptionNotFound
		}
		service = option
	}

	// 5. Пересчитываем стоимость по текущим тарифам провайдера
	input := pricing.Input{Provider: provider, Mode: flow.Mode, Service: service}
	if flow.StartDate != nil {
		input.Start = *flow.StartDate
	}
	if flow.EndDate != nil {
		input.End = *flow.EndDate
	}
	estimate := uc.estimator.Estimate(input)

	// 6. Собираем тело запроса
	draft := flow.Draft(estimate.Total)
	payload, err := draft.Payload(uc.config.AppointmentDuration)
	if err != nil {
		uc.logger.Warn("CreateBooking: flow=%s is incomplete: %v", flow.ID, err)
		return nil, fmt.Errorf("%w: %v", ErrFlowNotReady, err)
	}

	// 7. Захватываем сценарий
	if err := uc.flowRepo.TransitionStep(ctx, flow.ID, domain.StepReviewingSummary, domain.StepSubmitted, uc.timeProvider.Now()); err != nil {
		switch {
		case errors.Is(err, flowRepo.ErrStepConflict):
			uc.logger.Warn("CreateBooking: flow=%s was claimed concurrently", flow.ID)
			uc.metrics.ObserveBookingSubmit(outcomeConflict)
			return nil, ErrAlreadySubmitted
		case errors.Is(err, flowRepo.ErrFlowNotFound):
			return nil, ErrFlowNotFound
		}
		uc.logger.Error("CreateBooking: failed to claim flow=%s: %v", flow.ID, err)
		return nil, fmt.Errorf("%w: failed to claim flow: %v", ErrInternal, err)
	}

	// 8. Создаем бронирование
	created, err := uc.client.CreateBooking(ctx, payload)
	if err != nil {
		uc.release(ctx, flow)
		if errors.Is(err, marketplace.ErrRejected) {
			uc.logger.Warn("CreateBooking: marketplace rejected booking for flow=%s: %v", flow.ID, err)
			uc.metrics.ObserveBookingSubmit(outcomeRejected)
			return nil, fmt.Errorf("%w: %v", ErrBookingRejected, err)
		}
		uc.logger.Error("CreateBooking: failed to create booking for flow=%s: %v", flow.ID, err)
		uc.metrics.ObserveBookingSubmit(outcomeFailed)
		return nil, fmt.Errorf("%w: failed to create booking: %v", ErrInternal, err)
	}

	uc.metrics.ObserveBookingSubmit(outcomeCreated)

	// 9. Запоминаем ID бронирования; бронирование уже создано, ошибку только логируем
	saveCtx, cancel := detached(ctx)
	defer cancel()
	if err := uc.flowRepo.SetBookingID(saveCtx, flow.ID, created.ID, uc.timeProvider.Now()); err != nil {
		uc.logger.Error("CreateBooking: failed to save booking id=%d for flow=%s: %v", created.ID, flow.ID, err)
	}

	uc.logger.Info("CreateBooking: successfully created booking id=%d for flow=%s, agreed_price=%s",
		created.ID, flow.ID, payload.AgreedPrice)

	return &Response{
		BookingID:   created.ID,
		Status:      created.Status,
		BookingType: payload.BookingType,
		AgreedPrice: estimate.Total,
		Label:       estimate.Label,
		IsEstimate:  estimate.IsEstimate,
		CheckoutURL: checkoutURL(uc.config.CheckoutURLTemplate, created.ID),
	}, nil
}

// release возвращает сценарий на шаг подтверждения после неудачной отправки
// Выполняется и после отмены запроса клиентом, иначе сценарий остается в submitted
func (uc *UseCase) release(ctx context.Context, flow *domain.BookingFlow) {
	ctx, cancel := detached(ctx)
	defer cancel()
	err := uc.flowRepo.TransitionStep(ctx, flow.ID, domain.StepSubmitted, domain.StepReviewingSummary, uc.timeProvider.Now())
	if err != nil {
		uc.logger.Error("CreateBooking: failed to release flow=%s: %v", flow.ID, err)
	}
}

// detached отвязывает контекст от отмены запроса, сохраняя его значения
func detached(ctx context.Context) (context.Context, context.CancelFunc) {
	return context.WithTimeout(context.WithoutCancel(ctx), detachedTimeout)
}
