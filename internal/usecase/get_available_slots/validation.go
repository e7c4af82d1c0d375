package get_available_slots

import (
	"fmt"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.ProviderID <= 0 {
		return fmt.Errorf("%w: providerID must be positive", ErrInvalidInput)
	}

	// Проверяем, что дата не является нулевой
	if req.Date.IsZero() {
		return fmt.Errorf("%w: date is required", ErrInvalidInput)
	}

	return nil
}

// isDateInPast сравнивает только календарные дни
func isDateInPast(date time.Time, now time.Time) bool {
	return domain.DateOnly(date).Before(domain.DateOnly(now))
}
