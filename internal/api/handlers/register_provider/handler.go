package register_provider

import (
	"errors"
	"net/http"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	"github.com/m04kA/SMC-PetCareService/internal/domain"
	"github.com/m04kA/SMC-PetCareService/internal/profile"
	registerProvider "github.com/m04kA/SMC-PetCareService/internal/usecase/register_provider"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgValidationFailed   = "анкета заполнена с ошибками"
	msgRejected           = "маркетплейс отклонил анкету"
)

type Handler struct {
	useCase RegisterProviderUseCase
	logger  Logger
}

func NewHandler(useCase RegisterProviderUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/providers
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /providers - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	var draft domain.ProviderProfileDraft
	if err := handlers.DecodeJSON(r, &draft); err != nil {
		h.logger.Warn("POST /providers - Invalid request body: %v", err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(userID, &draft))
	if err != nil {
		var verr *profile.ValidationError
		switch {
		case errors.As(err, &verr):
			h.logger.Warn("POST /providers - Validation failed: user_id=%d, error=%v", userID, err)
			handlers.RespondValidation(w, msgValidationFailed, FieldDetails(verr))

		case errors.Is(err, registerProvider.ErrInvalidInput):
			h.logger.Warn("POST /providers - Invalid input: user_id=%d, error=%v", userID, err)
			handlers.RespondBadRequest(w, msgInvalidRequestBody)

		case errors.Is(err, registerProvider.ErrRejected):
			h.logger.Warn("POST /providers - Rejected by marketplace: user_id=%d, error=%v", userID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgRejected)

		default:
			h.logger.Error("POST /providers - Failed to register provider: user_id=%d, error=%v", userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /providers - Provider registered: provider_id=%d, user_id=%d, media_attached=%d, media_failed=%d",
		result.ProviderID, userID, result.MediaAttached, result.MediaFailed)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
