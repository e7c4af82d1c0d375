package resolver

import (
	"strings"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

// Rule names
const (
	RuleAppointmentVariant  = "appointment_variant"
	RuleRangeVariant        = "range_variant"
	RuleAppointmentService  = "appointment_service_name"
	RuleRangeService        = "range_service_name"
	RuleAppointmentCategory = "appointment_category"
	RuleDefault             = "default"
)

// Input пара (провайдер, необязательная услуга)
type Input struct {
	Provider    *domain.Provider
	ServiceName string
}

// Rule одно правило классификации
// Match возвращает режим и true, если правило сработало
type Rule struct {
	Name  string
	Match func(in Input) (domain.BookingMode, bool)
}

// Resolution результат классификации
type Resolution struct {
	Mode domain.BookingMode
	Rule string
}

// DefaultRules порядок важен: структурированные данные провайдера,
// затем название услуги, затем категория
var DefaultRules = []Rule{
	{Name: RuleAppointmentVariant, Match: variantRule(domain.ModeAppointment)},
	{Name: RuleRangeVariant, Match: variantRule(domain.ModeRange)},
	{Name: RuleAppointmentService, Match: serviceNameRule(domain.AppointmentServiceKeywords, domain.ModeAppointment)},
	{Name: RuleRangeService, Match: serviceNameRule(domain.RangeServiceKeywords, domain.ModeRange)},
	{Name: RuleAppointmentCategory, Match: categoryRule},
}

// Resolver BookingTypeResolver: первое сработавшее правило побеждает
type Resolver struct {
	rules []Rule
}

// New создает резолвер с DefaultRules
func New() *Resolver {
	return &Resolver{rules: DefaultRules}
}

// NewWithRules создает резолвер с произвольным набором правил
func NewWithRules(rules []Rule) *Resolver {
	return &Resolver{rules: rules}
}

// Resolve классифицирует бронирование; без совпадений = range
func (r *Resolver) Resolve(provider *domain.Provider, serviceName string) Resolution {
	in := Input{Provider: provider, ServiceName: serviceName}
	if provider != nil {
		for _, rule := range r.rules {
			if mode, ok := rule.Match(in); ok {
				return Resolution{Mode: mode, Rule: rule.Name}
			}
		}
	}
	return Resolution{Mode: domain.ModeRange, Rule: RuleDefault}
}

// variantRule срабатывает, если у провайдера заполнен вариант категории,
// чье наличие само задает режим mode
func variantRule(mode domain.BookingMode) func(Input) (domain.BookingMode, bool) {
	return func(in Input) (domain.BookingMode, bool) {
		for _, spec := range domain.Categories() {
			if spec.VariantMode == mode && spec.Present(in.Provider.ProviderDetails) {
				return mode, true
			}
		}
		return "", false
	}
}

func serviceNameRule(keywords []string, mode domain.BookingMode) func(Input) (domain.BookingMode, bool) {
	return func(in Input) (domain.BookingMode, bool) {
		name := strings.ToLower(strings.TrimSpace(in.ServiceName))
		if name == "" {
			return "", false
		}
		for _, kw := range keywords {
			if strings.Contains(name, kw) {
				return mode, true
			}
		}
		return "", false
	}
}

func categoryRule(in Input) (domain.BookingMode, bool) {
	for _, kw := range domain.AppointmentCategoryKeywords {
		if in.Provider.CategoryMatches(kw) {
			return domain.ModeAppointment, true
		}
	}
	return "", false
}
