package create_booking

import "errors"

var (
	// ErrFlowNotFound возвращается, когда сценарий не найден
	ErrFlowNotFound = errors.New("create_booking: flow not found")

	// ErrAccessDenied возвращается, когда сценарий принадлежит другому пользователю
	ErrAccessDenied = errors.New("create_booking: access denied")

	// ErrFlowNotReady возвращается, когда сценарий не дошел до подтверждения или заполнен не полностью
	ErrFlowNotReady = errors.New("create_booking: flow is not ready for submission")

	// ErrAlreadySubmitted возвращается при повторной отправке сценария
	ErrAlreadySubmitted = errors.New("create_booking: flow is already submitted")

	// ErrProviderNotFound возвращается, когда провайдер не найден
	ErrProviderNotFound = errors.New("create_booking: provider not found")

	// ErrServiceOptionNotFound возвращается, когда услуги больше нет у провайдера
	ErrServiceOptionNotFound = errors.New("create_booking: service option not found")

	// ErrBookingRejected возвращается, когда маркетплейс отклонил бронирование
	ErrBookingRejected = errors.New("create_booking: booking rejected by marketplace")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("create_booking: invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("create_booking: internal error")
)
