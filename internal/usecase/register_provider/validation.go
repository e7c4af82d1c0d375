package register_provider

import "fmt"

// validateRequest валидирует входные данные запроса
// Содержимое анкеты проверяет profile.Validate
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.Draft == nil {
		return fmt.Errorf("%w: profile is required", ErrInvalidInput)
	}

	return nil
}
