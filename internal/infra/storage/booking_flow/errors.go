package booking_flow

import "errors"

var (
	// ErrFlowNotFound возвращается, когда сценарий не найден
	ErrFlowNotFound = errors.New("booking_flow.repository: flow not found")

	// ErrStepConflict возвращается, когда шаг сценария изменился параллельно
	ErrStepConflict = errors.New("booking_flow.repository: step changed concurrently")

	// ErrBuildQuery возвращается при ошибке построения SQL запроса
	ErrBuildQuery = errors.New("booking_flow.repository: failed to build query")

	// ErrExecQuery возвращается при ошибке выполнения SQL запроса
	ErrExecQuery = errors.New("booking_flow.repository: failed to execute query")

	// ErrScanRow возвращается при ошибке сканирования результата запроса
	ErrScanRow = errors.New("booking_flow.repository: failed to scan row")
)
