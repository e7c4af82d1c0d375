package register_provider

import (
	"context"
	"errors"
	"fmt"

	"github.com/m04kA/SMC-PetCareService/internal/integrations/marketplace"
	"github.com/m04kA/SMC-PetCareService/internal/profile"
)

// UseCase use case для регистрации провайдера
type UseCase struct {
	categories CategorySource
	client     MarketplaceClient
	builder    ProfileBuilder
	metrics    Metrics
	logger     Logger
}

// NewUseCase создает новый экземпляр use case
func NewUseCase(
	categories CategorySource,
	client MarketplaceClient,
	builder ProfileBuilder,
	metrics Metrics,
	logger Logger,
) *UseCase {
	return &UseCase{
		categories: categories,
		client:     client,
		builder:    builder,
		metrics:    metrics,
		logger:     logger,
	}
}

// Execute проверяет анкету, создает провайдера и прикрепляет изображения
// Ошибки валидации возвращаются как *profile.ValidationError и до маркетплейса не доходят
func (uc *UseCase) Execute(ctx context.Context, req *Request) (*Response, error) {
	// 1. Валидация входных данных
	if err := validateRequest(req); err != nil {
		uc.logger.Warn("RegisterProvider: validation failed: %v", err)
		return nil, err
	}

	uc.logger.Info("RegisterProvider: user=%d, business=%q, category=%d",
		req.UserID, req.Draft.BusinessName, req.Draft.CategoryID)

	// 2. Получаем справочник категорий
	categories, err := uc.categories.ListCategories(ctx)
	if err != nil {
		uc.logger.Error("RegisterProvider: failed to list categories: %v", err)
		return nil, fmt.Errorf("%w: failed to list categories: %v", ErrInternal, err)
	}

	// 3. Проверяем анкету
	category, err := profile.Validate(req.Draft, categories)
	if err != nil {
		uc.logger.Warn("RegisterProvider: profile rejected: %v", err)
		return nil, err
	}

	// 4. Собираем тело запроса
	payload := uc.builder.Build(req.Draft, category)
	if variant, ok := payload.Active(); ok {
		uc.logger.Info("RegisterProvider: category=%s, details=%s", category.Slug, variant)
	} else {
		uc.logger.Warn("RegisterProvider: category=%s has no details variant, sending base profile", category.Slug)
	}

	// 5. Создаем провайдера
	created, err := uc.client.CreateProvider(ctx, payload)
	if err != nil {
		if errors.Is(err, marketplace.ErrRejected) {
			uc.logger.Warn("RegisterProvider: marketplace rejected provider: %v", err)
			return nil, fmt.Errorf("%w: %v", ErrRejected, err)
		}
		uc.logger.Error("RegisterProvider: failed to create provider: %v", err)
		return nil, fmt.Errorf("%w: failed to create provider: %v", ErrInternal, err)
	}

	uc.logger.Info("RegisterProvider: provider id=%d created", created.ID)

	// 6. Прикрепляем изображения; ошибки не отменяют регистрацию
	resp := &Response{
		ProviderID:   created.ID,
		BusinessName: payload.BusinessName,
		Category:     category,
	}
	for i, image := range req.Draft.Images {
		if image.FileURL == "" {
			continue
		}

		err := uc.client.AttachMedia(ctx, created.ID, marketplace.MediaAttachRequest{
			FileURL:      image.FileURL,
			ThumbnailURL: image.ThumbnailURL,
			IsPrimary:    i == 0,
			AltText:      image.AltText,
		})
		if err != nil {
			uc.logger.Warn("RegisterProvider: failed to attach image %d to provider id=%d: %v", i, created.ID, err)
			uc.metrics.ObserveMediaAttachFailure()
			resp.MediaFailed++
			continue
		}
		resp.MediaAttached++
	}

	return resp, nil
}
