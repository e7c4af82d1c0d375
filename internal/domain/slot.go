package domain

import (
	"time"

	"github.com/m04kA/SMC-PetCareService/pkg/types"
)

// DefaultSlots слоты по умолчанию, если маркетплейс не вернул доступное время
var DefaultSlots = []types.TimeString{
	"09:00", "10:00", "11:00", "13:00", "14:00", "15:00", "16:00", "17:00",
}

// AvailableSlots доступное время провайдера на дату
type AvailableSlots struct {
	Date     time.Time
	Slots    []types.TimeString
	Fallback bool // true, если вернули DefaultSlots
}

// NewAvailableSlots берет слоты маркетплейса или DefaultSlots, если их нет
func NewAvailableSlots(date time.Time, remote []types.TimeString) AvailableSlots {
	if len(remote) == 0 {
		slots := make([]types.TimeString, len(DefaultSlots))
		copy(slots, DefaultSlots)
		return AvailableSlots{Date: date, Slots: slots, Fallback: true}
	}
	return AvailableSlots{Date: date, Slots: remote}
}
