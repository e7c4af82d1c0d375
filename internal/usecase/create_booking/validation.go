package create_booking

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/google/uuid"
)

const bookingIDPlaceholder = "{booking_id}"

// validateRequest валидирует входные данные запроса
func validateRequest(req *Request) error {
	if req.UserID <= 0 {
		return fmt.Errorf("%w: userID must be positive", ErrInvalidInput)
	}

	if req.FlowID == uuid.Nil {
		return fmt.Errorf("%w: flowID is required", ErrInvalidInput)
	}

	return nil
}

// checkoutURL подставляет ID бронирования в шаблон
func checkoutURL(template string, bookingID int64) string {
	if template == "" {
		return ""
	}
	return strings.ReplaceAll(template, bookingIDPlaceholder, strconv.FormatInt(bookingID, 10))
}
