package estimate_price

import "fmt"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	if req.StartDate.IsZero() {
		return fmt.Errorf("%w: start date is required", ErrInvalidInput)
	}

	if req.ServiceOptionID != nil && *req.ServiceOptionID <= 0 {
		return fmt.Errorf("%w: serviceOptionID must be positive", ErrInvalidInput)
	}

	return nil
}
