package estimate_price

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// Request модель запроса на расчет стоимости
type Request struct {
	ProviderID      int64
	ServiceOptionID *int64
	StartDate       time.Time
	EndDate         *time.Time // только range
}

// Response предварительная стоимость
type Response struct {
	ProviderID int64
	Mode       domain.BookingMode
	Rule       string // правило, определившее режим
	Rate       domain.Amount
	UnitCount  int64
	Total      domain.Amount
	Label      string
	IsEstimate bool // всегда true: итоговую цену считает маркетплейс
}
