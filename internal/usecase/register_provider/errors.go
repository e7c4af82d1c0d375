package register_provider

import "errors"

var (
	// ErrRejected возвращается, когда маркетплейс отклонил анкету
	ErrRejected = errors.New("provider rejected by marketplace")

	// ErrInvalidInput возвращается при некорректных входных данных
	ErrInvalidInput = errors.New("invalid input data")

	// ErrInternal возвращается при внутренних ошибках usecase
	ErrInternal = errors.New("register_provider: internal error")
)
