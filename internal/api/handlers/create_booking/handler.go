package create_booking

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	createBooking "github.com/m04kA/SMC-PetCareService/internal/usecase/create_booking"
)

const (
	msgMissingUserID    = "отсутствует ID пользователя"
	msgInvalidFlowID    = "некорректный ID сценария"
	msgFlowNotFound     = "сценарий бронирования не найден"
	msgAccessDenied     = "доступ к сценарию запрещен"
	msgFlowNotReady     = "сценарий не готов к отправке"
	msgAlreadySubmitted = "бронирование по сценарию уже отправлено"
	msgProviderNotFound = "провайдер не найден"
	msgServiceNotFound  = "услуга больше недоступна"
	msgBookingRejected  = "маркетплейс отклонил бронирование"
	msgInvalidInput     = "некорректные данные бронирования"
)

type Handler struct {
	useCase CreateBookingUseCase
	logger  Logger
}

func NewHandler(useCase CreateBookingUseCase, logger Logger) *Handler {
	return &Handler{
		useCase: useCase,
		logger:  logger,
	}
}

// Handle POST /api/v1/booking-flows/{flowId}/submit
func (h *Handler) Handle(w http.ResponseWriter, r *http.Request) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("POST /booking-flows/{id}/submit - Missing user ID")
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return
	}

	flowID, err := uuid.Parse(mux.Vars(r)["flowId"])
	if err != nil {
		h.logger.Warn("POST /booking-flows/{id}/submit - Invalid flow ID: %v", err)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return
	}

	result, err := h.useCase.Execute(r.Context(), ToUseCaseRequest(userID, flowID))
	if err != nil {
		switch {
		case errors.Is(err, createBooking.ErrFlowNotFound):
			h.logger.Warn("POST /booking-flows/{id}/submit - Flow not found: flow_id=%s", flowID)
			handlers.RespondNotFound(w, msgFlowNotFound)

		case errors.Is(err, createBooking.ErrAccessDenied):
			h.logger.Warn("POST /booking-flows/{id}/submit - Access denied: flow_id=%s, user_id=%d", flowID, userID)
			handlers.RespondForbidden(w, msgAccessDenied)

		case errors.Is(err, createBooking.ErrFlowNotReady):
			h.logger.Warn("POST /booking-flows/{id}/submit - Flow not ready: flow_id=%s", flowID)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgFlowNotReady)

		case errors.Is(err, createBooking.ErrAlreadySubmitted):
			h.logger.Warn("POST /booking-flows/{id}/submit - Already submitted: flow_id=%s", flowID)
			handlers.RespondConflict(w, msgAlreadySubmitted)

		case errors.Is(err, createBooking.ErrProviderNotFound):
			h.logger.Warn("POST /booking-flows/{id}/submit - Provider not found: flow_id=%s", flowID)
			handlers.RespondNotFound(w, msgProviderNotFound)

		case errors.Is(err, createBooking.ErrServiceOptionNotFound):
			h.logger.Warn("POST /booking-flows/{id}/submit - Service option not found: flow_id=%s", flowID)
			handlers.RespondNotFound(w, msgServiceNotFound)

		case errors.Is(err, createBooking.ErrBookingRejected):
			h.logger.Warn("POST /booking-flows/{id}/submit - Rejected by marketplace: flow_id=%s, error=%v", flowID, err)
			handlers.RespondError(w, http.StatusUnprocessableEntity, msgBookingRejected)

		case errors.Is(err, createBooking.ErrInvalidInput):
			h.logger.Warn("POST /booking-flows/{id}/submit - Invalid input: flow_id=%s, error=%v", flowID, err)
			handlers.RespondBadRequest(w, msgInvalidInput)

		default:
			h.logger.Error("POST /booking-flows/{id}/submit - Failed to create booking: flow_id=%s, user_id=%d, error=%v",
				flowID, userID, err)
			handlers.RespondInternalError(w)
		}
		return
	}

	h.logger.Info("POST /booking-flows/{id}/submit - Booking created successfully: booking_id=%d, flow_id=%s, user_id=%d",
		result.BookingID, flowID, userID)
	handlers.RespondJSON(w, http.StatusCreated, FromUseCaseResponse(result))
}
