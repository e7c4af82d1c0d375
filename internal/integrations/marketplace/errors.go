package marketplace

import "errors"

var (
	// ErrNotFound возвращается, когда ресурс не найден (провайдер, категория)
	ErrNotFound = errors.New("marketplace client: not found")

	// ErrRejected возвращается, когда маркетплейс отклонил запрос (400)
	ErrRejected = errors.New("marketplace client: request rejected")

	// ErrUnauthorized возвращается при неверном токене сервиса
	ErrUnauthorized = errors.New("marketplace client: unauthorized")

	// ErrInternal возвращается при внутренних ошибках клиента
	ErrInternal = errors.New("marketplace client: internal error")

	// ErrInvalidResponse возвращается при некорректном ответе от маркетплейса
	ErrInvalidResponse = errors.New("marketplace client: invalid response")
)
