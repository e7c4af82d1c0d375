package booking_flow

import "errors"

var (
	// ErrFlowNotFound возвращается, когда сценарий не найден
	ErrFlowNotFound = errors.New("flow not found")

	// ErrAccessDenied возвращается, когда сценарий принадлежит другому пользователю
	ErrAccessDenied = errors.New("access denied")

	// ErrProviderNotFound возвращается, когда провайдер не найден в маркетплейсе
	ErrProviderNotFound = errors.New("provider not found")

	// ErrServiceOptionNotFound возвращается, когда у провайдера нет такой услуги
	ErrServiceOptionNotFound = errors.New("service option not found")

	// ErrInvalidStep возвращается, когда операция недоступна на текущем шаге
	ErrInvalidStep = errors.New("operation is not allowed at the current step")

	// ErrStepIncomplete возвращается при попытке перейти дальше с незаполненным шагом
	ErrStepIncomplete = errors.New("current step is incomplete")

	// ErrConflict возвращается, когда сценарий изменили параллельно
	ErrConflict = errors.New("flow was changed concurrently")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках сервиса
	ErrInternal = errors.New("service: internal error")
)
