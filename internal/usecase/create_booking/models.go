package create_booking

import (
	"time"

	"github.com/google/uuid"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// Request модель запроса на отправку сценария
type Request struct {
	UserID int64     // ID текущего пользователя
	FlowID uuid.UUID // ID сценария бронирования
}

// Response модель ответа с созданным бронированием
type Response struct {
	BookingID   int64              // ID бронирования в маркетплейсе
	Status      string             // Статус, который вернул маркетплейс
	BookingType domain.BookingType // standard или recurring
	AgreedPrice domain.Amount      // Отправленная цена
	Label       string             // Подпись тарифа
	IsEstimate  bool               // Цена предварительная
	CheckoutURL string             // Куда перевести пользователя для оплаты
}

// Config параметры use case
type Config struct {
	AppointmentDuration time.Duration // Длительность appointment бронирования
	CheckoutURLTemplate string        // Шаблон ссылки оплаты с плейсхолдером {booking_id}
}
