package pricing

import (
	"math"
	"strings"
	"time"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

const hoursPerDay = 24

// Input данные для оценки стоимости
type Input struct {
	Provider *domain.Provider
	Mode     domain.BookingMode
	Service  *domain.ServiceOption // nil, если услуга не выбрана
	Start    time.Time
	End      time.Time // для appointment не используется
}

// Result PricingResult
// Оценка носит справочный характер, итоговую цену считает сервер при оплате
type Result struct {
	Rate       domain.Amount
	UnitCount  int64
	Total      domain.Amount
	Label      string
	IsEstimate bool
}

// Estimator PriceEstimator
type Estimator struct{}

// New создает оценщик
func New() *Estimator {
	return &Estimator{}
}

// Estimate считает total = rate * unit_count; отсутствующая ставка = 0
func (e *Estimator) Estimate(in Input) Result {
	rate, label := ResolveRate(in.Provider, in.Mode, in.Service)
	units := UnitCount(in.Mode, in.Start, in.End)

	return Result{
		Rate:       rate,
		UnitCount:  units,
		Total:      rate.MulInt(units),
		Label:      label,
		IsEstimate: true,
	}
}

// ResolveRate ставка и подпись
// 1. явная цена выбранной услуги
// 2. поле ставки варианта деталей по slug категории
// 3. неизвестная категория: 0 и "Flat Rate"
func ResolveRate(provider *domain.Provider, mode domain.BookingMode, service *domain.ServiceOption) (domain.Amount, string) {
	if price, ok := service.ExplicitPrice(); ok {
		if mode == domain.ModeAppointment {
			return price, domain.LabelPerSession
		}
		return price, domain.LabelFlatRate
	}

	if provider == nil {
		return domain.ZeroAmount, domain.LabelFlatRate
	}

	spec, ok := domain.LookupCategory(provider.Category.Slug)
	if !ok {
		return domain.ZeroAmount, domain.LabelFlatRate
	}

	return spec.Rate(provider.ProviderDetails, isWalking(provider, service))
}

// UnitCount appointment = 1
// range = ceil(|end - start| в днях), минимум 1; время суток не учитывается
func UnitCount(mode domain.BookingMode, start, end time.Time) int64 {
	if mode != domain.ModeRange {
		return 1
	}
	if start.IsZero() || end.IsZero() {
		return 1
	}

	diff := domain.DateOnly(end).Sub(domain.DateOnly(start))
	days := int64(math.Ceil(math.Abs(diff.Hours()) / hoursPerDay))
	if days < 1 {
		return 1
	}
	return days
}

// isWalking услуга выгула: по названию услуги или категории
func isWalking(provider *domain.Provider, service *domain.ServiceOption) bool {
	if service != nil && strings.Contains(strings.ToLower(service.Name), domain.WalkingKeyword) {
		return true
	}
	return strings.Contains(strings.ToLower(provider.Category.Name), domain.WalkingKeyword)
}
