package booking_flow

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
	flowRepo "github.com/m04kA/SMC-PetCareService/internal/infra/storage/booking_flow"
	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-PetCareService/internal/service/booking_flow/models"
)

// Service сервис сценария бронирования:
// CollectingSchedule -> SelectingPet -> ReviewingSummary -> Submitted
// Переход в Submitted выполняет только create_booking
type Service struct {
	flowRepo     FlowRepository
	providers    ProviderSource
	resolver     ModeResolver
	txManager    TransactionManager
	timeProvider TimeProvider
	logger       Logger
}

// NewService создает новый экземпляр сервиса
func NewService(
	flowRepo FlowRepository,
	providers ProviderSource,
	resolver ModeResolver,
	txManager TransactionManager,
	logger Logger,
) *Service {
	return &Service{
		flowRepo:     flowRepo,
		providers:    providers,
		resolver:     resolver,
		txManager:    txManager,
		timeProvider: &RealTimeProvider{},
		logger:       logger,
	}
}

// Open открывает сценарий для провайдера
// Существующий сценарий того же пользователя для этого провайдера сбрасывается
func (s *Service) Open(ctx context.Context, req *models.OpenRequest) (*models.FlowResponse, error) {
	s.logger.Info("Open: user=%d, provider=%d", req.UserID, req.ProviderID)

	if req.UserID <= 0 || req.ProviderID <= 0 {
		return nil, fmt.Errorf("%w: user and provider are required", ErrInvalidInput)
	}

	provider, err := s.getProvider(ctx, "Open", req.ProviderID)
	if err != nil {
		return nil, err
	}
	if req.ServiceOptionID != nil {
		if _, ok := provider.ServiceOption(*req.ServiceOptionID); !ok {
			s.logger.Warn("Open: service option id=%d not found for provider=%d", *req.ServiceOptionID, req.ProviderID)
			return nil, ErrServiceOptionNotFound
		}
	}

	flow := domain.NewBookingFlow(req.UserID, req.ProviderID, req.ServiceOptionID, s.timeProvider.Now())

	err = s.txManager.Do(ctx, func(txCtx context.Context) error {
		if err := s.flowRepo.DeleteByUserAndProvider(txCtx, req.UserID, req.ProviderID); err != nil {
			return err
		}
		return s.flowRepo.Create(txCtx, flow)
	})
	if err != nil {
		s.logger.Error("Open: failed to save flow for user=%d, provider=%d: %v", req.UserID, req.ProviderID, err)
		return nil, fmt.Errorf("%w: Open - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Open: flow id=%s opened", flow.ID)
	return models.FromDomainFlow(flow), nil
}

// Get возвращает сценарий владельцу
func (s *Service) Get(ctx context.Context, flowID uuid.UUID, userID int64) (*models.FlowResponse, error) {
	flow, err := s.load(ctx, "Get", flowID, userID)
	if err != nil {
		return nil, err
	}
	return models.FromDomainFlow(flow), nil
}

// SetSchedule сохраняет расписание и режим бронирования
// Режим определяется по провайдеру и названию выбранной услуги
func (s *Service) SetSchedule(ctx context.Context, req *models.ScheduleRequest) (*models.FlowResponse, error) {
	s.logger.Info("SetSchedule: flow=%s, user=%d", req.FlowID, req.UserID)

	// 1. Загружаем сценарий и проверяем шаг
	flow, err := s.load(ctx, "SetSchedule", req.FlowID, req.UserID)
	if err != nil {
		return nil, err
	}
	if flow.Step != domain.StepCollectingSchedule {
		s.logger.Warn("SetSchedule: flow=%s is at step %s", flow.ID, flow.Step)
		return nil, ErrInvalidStep
	}

	// 2. Получаем провайдера и услугу
	provider, err := s.getProvider(ctx, "SetSchedule", flow.ProviderID)
	if err != nil {
		return nil, err
	}

	serviceOptionID := flow.ServiceOptionID
	if req.ServiceOptionID != nil {
		serviceOptionID = req.ServiceOptionID
	}
	serviceName := ""
	if serviceOptionID != nil {
		option, ok := provider.ServiceOption(*serviceOptionID)
		if !ok {
			s.logger.Warn("SetSchedule: service option id=%d not found for provider=%d", *serviceOptionID, provider.ID)
			return nil, ErrServiceOptionNotFound
		}
		serviceName = option.Name
	}

	// 3. Определяем режим
	resolution := s.resolver.Resolve(provider, serviceName)
	s.logger.Info("SetSchedule: flow=%s resolved mode=%s by rule=%s", flow.ID, resolution.Mode, resolution.Rule)

	// 4. Валидация расписания для режима
	if err := validateSchedule(resolution.Mode, req); err != nil {
		s.logger.Warn("SetSchedule: validation failed: %v", err)
		return nil, err
	}

	// 5. Сохраняем
	start := domain.DateOnly(req.StartDate)
	flow.Mode = resolution.Mode
	flow.ServiceOptionID = serviceOptionID
	flow.StartDate = &start
	flow.EndDate = nil
	flow.SelectedTime = nil
	switch resolution.Mode {
	case domain.ModeAppointment:
		selected := *req.SelectedTime
		flow.SelectedTime = &selected
	case domain.ModeRange:
		end := domain.DateOnly(*req.EndDate)
		flow.EndDate = &end
	}

	if err := s.save(ctx, "SetSchedule", flow, domain.StepCollectingSchedule); err != nil {
		return nil, err
	}
	return models.FromDomainFlow(flow), nil
}

// SetPet сохраняет выбранного питомца и заметки
func (s *Service) SetPet(ctx context.Context, req *models.PetRequest) (*models.FlowResponse, error) {
	s.logger.Info("SetPet: flow=%s, user=%d, pet=%d", req.FlowID, req.UserID, req.PetID)

	if req.PetID <= 0 {
		return nil, fmt.Errorf("%w: pet is required", ErrInvalidInput)
	}
	if req.Notes != nil && len(*req.Notes) > domain.MaxNotesLength {
		return nil, fmt.Errorf("%w: notes are longer than %d characters", ErrInvalidInput, domain.MaxNotesLength)
	}

	flow, err := s.load(ctx, "SetPet", req.FlowID, req.UserID)
	if err != nil {
		return nil, err
	}
	if flow.Step != domain.StepSelectingPet {
		s.logger.Warn("SetPet: flow=%s is at step %s", flow.ID, flow.Step)
		return nil, ErrInvalidStep
	}

	petID := req.PetID
	flow.PetID = &petID
	flow.Notes = req.Notes

	if err := s.save(ctx, "SetPet", flow, domain.StepSelectingPet); err != nil {
		return nil, err
	}
	return models.FromDomainFlow(flow), nil
}

// Next переводит сценарий на следующий шаг, если текущий заполнен
func (s *Service) Next(ctx context.Context, flowID uuid.UUID, userID int64) (*models.FlowResponse, error) {
	flow, err := s.load(ctx, "Next", flowID, userID)
	if err != nil {
		return nil, err
	}

	current := flow.Step
	next, ok := current.Next()
	if !ok {
		s.logger.Warn("Next: flow=%s cannot advance from %s", flow.ID, current)
		return nil, ErrInvalidStep
	}
	if !flow.CanAdvance() {
		s.logger.Warn("Next: flow=%s step %s is incomplete", flow.ID, current)
		return nil, ErrStepIncomplete
	}

	flow.Step = next
	if err := s.save(ctx, "Next", flow, current); err != nil {
		return nil, err
	}

	s.logger.Info("Next: flow=%s %s -> %s", flow.ID, current, next)
	return models.FromDomainFlow(flow), nil
}

// Back возвращает сценарий на предыдущий шаг, данные шагов сохраняются
func (s *Service) Back(ctx context.Context, flowID uuid.UUID, userID int64) (*models.FlowResponse, error) {
	flow, err := s.load(ctx, "Back", flowID, userID)
	if err != nil {
		return nil, err
	}

	current := flow.Step
	prev, ok := current.Prev()
	if !ok {
		s.logger.Warn("Back: flow=%s cannot go back from %s", flow.ID, current)
		return nil, ErrInvalidStep
	}

	flow.Step = prev
	if err := s.save(ctx, "Back", flow, current); err != nil {
		return nil, err
	}

	s.logger.Info("Back: flow=%s %s -> %s", flow.ID, current, prev)
	return models.FromDomainFlow(flow), nil
}

// Abandon удаляет черновик сценария
func (s *Service) Abandon(ctx context.Context, flowID uuid.UUID, userID int64) error {
	flow, err := s.load(ctx, "Abandon", flowID, userID)
	if err != nil {
		return err
	}

	if err := s.flowRepo.Delete(ctx, flow.ID); err != nil {
		if errors.Is(err, flowRepo.ErrFlowNotFound) {
			return ErrFlowNotFound
		}
		s.logger.Error("Abandon: failed to delete flow=%s: %v", flow.ID, err)
		return fmt.Errorf("%w: Abandon - repository error: %v", ErrInternal, err)
	}

	s.logger.Info("Abandon: flow=%s discarded", flow.ID)
	return nil
}

func (s *Service) load(ctx context.Context, op string, flowID uuid.UUID, userID int64) (*domain.BookingFlow, error) {
	flow, err := s.flowRepo.GetByID(ctx, flowID)
	if err != nil {
		if errors.Is(err, flowRepo.ErrFlowNotFound) {
			s.logger.Warn("%s: flow=%s not found", op, flowID)
			return nil, ErrFlowNotFound
		}
		s.logger.Error("%s: repository error for flow=%s: %v", op, flowID, err)
		return nil, fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}

	if flow.UserID != userID {
		s.logger.Warn("%s: access denied for user=%d to flow=%s", op, userID, flowID)
		return nil, ErrAccessDenied
	}
	return flow, nil
}

func (s *Service) save(ctx context.Context, op string, flow *domain.BookingFlow, expected domain.FlowStep) error {
	flow.UpdatedAt = s.timeProvider.Now()

	if err := s.flowRepo.Update(ctx, flow, expected); err != nil {
		switch {
		case errors.Is(err, flowRepo.ErrStepConflict):
			s.logger.Warn("%s: flow=%s changed concurrently", op, flow.ID)
			return ErrConflict
		case errors.Is(err, flowRepo.ErrFlowNotFound):
			return ErrFlowNotFound
		}
		s.logger.Error("%s: failed to update flow=%s: %v", op, flow.ID, err)
		return fmt.Errorf("%w: %s - repository error: %v", ErrInternal, op, err)
	}
	return nil
}

func (s *Service) getProvider(ctx context.Context, op string, providerID int64) (*domain.Provider, error) {
	provider, err := s.providers.GetProvider(ctx, providerID)
	if err != nil {
		if errors.Is(err, marketplace.ErrNotFound) {
			s.logger.Warn("%s: provider id=%d not found", op, providerID)
			return nil, ErrProviderNotFound
		}
		s.logger.Error("%s: failed to get provider id=%d: %v", op, providerID, err)
		return nil, fmt.Errorf("%w: failed to get provider: %v", ErrInternal, err)
	}
	return provider, nil
}

func validateSchedule(mode domain.BookingMode, req *models.ScheduleRequest) error {
	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	switch mode {
	case domain.ModeAppointment:
		if req.SelectedTime == nil || req.SelectedTime.IsZero() {
			return fmt.Errorf("%w: time is required for appointment booking", ErrInvalidInput)
		}
		if err := req.SelectedTime.Validate(); err != nil {
			return fmt.Errorf("%w: %v", ErrInvalidInput, err)
		}
	case domain.ModeRange:
		if req.EndDate == nil || req.EndDate.IsZero() {
			return fmt.Errorf("%w: end date is required for range booking", ErrInvalidInput)
		}
		if domain.DateOnly(*req.EndDate).Before(domain.DateOnly(req.StartDate)) {
			return fmt.Errorf("%w: end date is before start date", ErrInvalidInput)
		}
	}
	return nil
}
