package booking_flow

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/gorilla/mux"

	"github.com/m04kA/SMC-PetCareService/internal/api/handlers"
	"github.com/m04kA/SMC-PetCareService/internal/api/middleware"
	bookingFlow "github.com/m04kA/SMC-PetCareService/internal/service/booking_flow"
)

const (
	msgMissingUserID      = "отсутствует ID пользователя"
	msgInvalidFlowID      = "некорректный ID сценария"
	msgInvalidRequestBody = "некорректное тело запроса"
	msgInvalidDate        = "некорректный формат даты, ожидается YYYY-MM-DD"
	msgInvalidInput       = "некорректные данные шага"
	msgFlowNotFound       = "сценарий бронирования не найден"
	msgAccessDenied       = "доступ к сценарию запрещен"
	msgProviderNotFound   = "провайдер не найден"
	msgServiceNotFound    = "услуга не найдена"
	msgInvalidStep        = "действие недоступно на текущем шаге"
	msgStepIncomplete     = "текущий шаг заполнен не полностью"
	msgConflict           = "сценарий был изменен параллельно, обновите данные"
)

// Handler обработчики шагов сценария бронирования
type Handler struct {
	service FlowService
	logger  Logger
}

func NewHandler(service FlowService, logger Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// HandleOpen POST /api/v1/booking-flows
func (h *Handler) HandleOpen(w http.ResponseWriter, r *http.Request) {
	const route = "POST /booking-flows"

	userID, ok := h.userID(w, r, route)
	if !ok {
		return
	}

	var req OpenFlowRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.Open(r.Context(), req.ToServiceRequest(userID))
	if err != nil {
		h.respondServiceError(w, route, userID, err)
		return
	}

	h.logger.Info("%s - Flow opened: flow_id=%s, user_id=%d, provider_id=%d", route, result.ID, userID, result.ProviderID)
	handlers.RespondJSON(w, http.StatusCreated, FromServiceResponse(result))
}

// HandleGet GET /api/v1/booking-flows/{flowId}
func (h *Handler) HandleGet(w http.ResponseWriter, r *http.Request) {
	const route = "GET /booking-flows/{id}"

	userID, flowID, ok := h.identify(w, r, route)
	if !ok {
		return
	}

	result, err := h.service.Get(r.Context(), flowID, userID)
	if err != nil {
		h.respondServiceError(w, route, userID, err)
		return
	}

	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// HandleSchedule PUT /api/v1/booking-flows/{flowId}/schedule
func (h *Handler) HandleSchedule(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /booking-flows/{id}/schedule"

	userID, flowID, ok := h.identify(w, r, route)
	if !ok {
		return
	}

	var req ScheduleRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	serviceReq, err := req.ToServiceRequest(userID, flowID)
	if err != nil {
		h.logger.Warn("%s - Failed to parse dates: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidDate)
		return
	}

	result, err := h.service.SetSchedule(r.Context(), serviceReq)
	if err != nil {
		h.respondServiceError(w, route, userID, err)
		return
	}

	h.logger.Info("%s - Schedule saved: flow_id=%s, mode=%s", route, flowID, result.Mode)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// HandlePet PUT /api/v1/booking-flows/{flowId}/pet
func (h *Handler) HandlePet(w http.ResponseWriter, r *http.Request) {
	const route = "PUT /booking-flows/{id}/pet"

	userID, flowID, ok := h.identify(w, r, route)
	if !ok {
		return
	}

	var req PetRequest
	if err := handlers.DecodeJSON(r, &req); err != nil {
		h.logger.Warn("%s - Invalid request body: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidRequestBody)
		return
	}

	result, err := h.service.SetPet(r.Context(), req.ToServiceRequest(userID, flowID))
	if err != nil {
		h.respondServiceError(w, route, userID, err)
		return
	}

	h.logger.Info("%s - Pet saved: flow_id=%s, pet_id=%d", route, flowID, req.PetID)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// HandleNext POST /api/v1/booking-flows/{flowId}/next
func (h *Handler) HandleNext(w http.ResponseWriter, r *http.Request) {
	const route = "POST /booking-flows/{id}/next"

	userID, flowID, ok := h.identify(w, r, route)
	if !ok {
		return
	}

	result, err := h.service.Next(r.Context(), flowID, userID)
	if err != nil {
		h.respondServiceError(w, route, userID, err)
		return
	}

	h.logger.Info("%s - Flow advanced: flow_id=%s, step=%s", route, flowID, result.Step)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// HandleBack POST /api/v1/booking-flows/{flowId}/back
func (h *Handler) HandleBack(w http.ResponseWriter, r *http.Request) {
	const route = "POST /booking-flows/{id}/back"

	userID, flowID, ok := h.identify(w, r, route)
	if !ok {
		return
	}

	result, err := h.service.Back(r.Context(), flowID, userID)
	if err != nil {
		h.respondServiceError(w, route, userID, err)
		return
	}

	h.logger.Info("%s - Flow moved back: flow_id=%s, step=%s", route, flowID, result.Step)
	handlers.RespondJSON(w, http.StatusOK, FromServiceResponse(result))
}

// HandleAbandon DELETE /api/v1/booking-flows/{flowId}
func (h *Handler) HandleAbandon(w http.ResponseWriter, r *http.Request) {
	const route = "DELETE /booking-flows/{id}"

	userID, flowID, ok := h.identify(w, r, route)
	if !ok {
		return
	}

	if err := h.service.Abandon(r.Context(), flowID, userID); err != nil {
		h.respondServiceError(w, route, userID, err)
		return
	}

	h.logger.Info("%s - Flow abandoned: flow_id=%s, user_id=%d", route, flowID, userID)
	handlers.RespondNoContent(w)
}

func (h *Handler) userID(w http.ResponseWriter, r *http.Request, route string) (int64, bool) {
	userID, ok := middleware.GetUserID(r.Context())
	if !ok {
		h.logger.Warn("%s - Missing user ID", route)
		handlers.RespondUnauthorized(w, msgMissingUserID)
		return 0, false
	}
	return userID, true
}

// identify достает пользователя из контекста и ID сценария из URL
func (h *Handler) identify(w http.ResponseWriter, r *http.Request, route string) (int64, uuid.UUID, bool) {
	userID, ok := h.userID(w, r, route)
	if !ok {
		return 0, uuid.Nil, false
	}

	flowID, err := uuid.Parse(mux.Vars(r)["flowId"])
	if err != nil {
		h.logger.Warn("%s - Invalid flow ID: %v", route, err)
		handlers.RespondBadRequest(w, msgInvalidFlowID)
		return 0, uuid.Nil, false
	}
	return userID, flowID, true
}

func (h *Handler) respondServiceError(w http.ResponseWriter, route string, userID int64, err error) {
	switch {
	case errors.Is(err, bookingFlow.ErrFlowNotFound):
		h.logger.Warn("%s - Flow not found: user_id=%d", route, userID)
		handlers.RespondNotFound(w, msgFlowNotFound)

	case errors.Is(err, bookingFlow.ErrAccessDenied):
		h.logger.Warn("%s - Access denied: user_id=%d", route, userID)
		handlers.RespondForbidden(w, msgAccessDenied)

	case errors.Is(err, bookingFlow.ErrProviderNotFound):
		h.logger.Warn("%s - Provider not found: user_id=%d", route, userID)
		handlers.RespondNotFound(w, msgProviderNotFound)

	case errors.Is(err, bookingFlow.ErrServiceOptionNotFound):
		h.logger.Warn("%s - Service option not found: user_id=%d", route, userID)
		handlers.RespondNotFound(w, msgServiceNotFound)

	case errors.Is(err, bookingFlow.ErrInvalidStep):
		h.logger.Warn("%s - Invalid step: user_id=%d", route, userID)
		handlers.RespondConflict(w, msgInvalidStep)

	case errors.Is(err, bookingFlow.ErrStepIncomplete):
		h.logger.Warn("%s - Step incomplete: user_id=%d", route, userID)
		handlers.RespondError(w, http.StatusUnprocessableEntity, msgStepIncomplete)

	case errors.Is(err, bookingFlow.ErrConflict):
		h.logger.Warn("%s - Concurrent update: user_id=%d", route, userID)
		handlers.RespondConflict(w, msgConflict)

	case errors.Is(err, bookingFlow.ErrInvalidInput):
		h.logger.Warn("%s - Invalid input: user_id=%d, error=%v", route, userID, err)
		handlers.RespondBadRequest(w, msgInvalidInput)

	default:
		h.logger.Error("%s - Internal error: user_id=%d, error=%v", route, userID, err)
		handlers.RespondInternalError(w)
	}
}
