package get_available_slots

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

// Request модель запроса на получение доступного времени
type Request struct {
	ProviderID int64     // ID провайдера
	Date       time.Time // Дата (без времени)
}

// Response модель ответа со списком доступного времени
type Response struct {
	Date       time.Time          // Дата, на которую запрашивались слоты
	ProviderID int64              // ID провайдера
	Slots      []types.TimeString // Время начала (HH:MM)
	Fallback   bool               // true, если маркетплейс не вернул слоты и подставлены слоты по умолчанию
}
