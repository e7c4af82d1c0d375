package profile

import (
	"errors"
	"reflect"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/m04kA/SMC-PetCareService/internal/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// в ошибках используем json имена полей
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

var tagMessages = map[string]string{
	"required": "is required",
	"min":      "is too small",
	"max":      "is too long",
	"len":      "must contain one entry per day of the week",
	"email":    "must be a valid email",
}

// Validate проверяет анкету до сборки payload и находит категорию по ID
// Ошибки не отправляются в маркетплейс
func Validate(draft *domain.ProviderProfileDraft, categories []domain.Category) (domain.Category, error) {
	verr := &ValidationError{}

	if err := validate.Struct(draft); err != nil {
		var fieldErrs validator.ValidationErrors
		if !errors.As(err, &fieldErrs) {
			return domain.Category{}, err
		}
		for _, fe := range fieldErrs {
			verr.Fields = append(verr.Fields, FieldError{Field: fieldPath(fe), Message: tagMessage(fe.Tag())})
		}
	}

	if utf8.RuneCountInString(draft.BusinessName) > domain.MaxBusinessNameLength {
		verr.Fields = append(verr.Fields, FieldError{Field: "business_name", Message: tagMessage("max")})
	}

	category, found := findCategory(categories, draft.CategoryID)
	if draft.CategoryID != 0 && !found {
		verr.Fields = append(verr.Fields, FieldError{Field: "category", Message: ErrCategoryNotFound.Error()})
	}

	// обязательный мультивыбор категории: специализации для training, услуги для veterinary
	if spec, ok := domain.LookupCategory(category.Slug); found && ok && spec.RequiredIDs != nil {
		if len(spec.RequiredIDs(draft)) == 0 {
			verr.Fields = append(verr.Fields, FieldError{Field: spec.RequiredIDsField, Message: tagMessage("required")})
		}
	}

	verr.Fields = append(verr.Fields, validateHours(draft.BusinessHours)...)

	if len(verr.Fields) > 0 {
		return domain.Category{}, verr
	}
	return category, nil
}

func findCategory(categories []domain.Category, id int64) (domain.Category, bool) {
	for _, c := range categories {
		if c.ID == id {
			return c, true
		}
	}
	return domain.Category{}, false
}

func validateHours(hours []domain.BusinessHours) []FieldError {
	var out []FieldError
	seen := make(map[int]bool, len(hours))

	for _, h := range hours {
		if seen[h.Day] {
			out = append(out, FieldError{Field: "business_hours", Message: "duplicate day"})
			continue
		}
		seen[h.Day] = true

		if h.IsClosed {
			continue
		}
		if h.OpenTime.Validate() != nil || h.CloseTime.Validate() != nil {
			out = append(out, FieldError{Field: "business_hours", Message: "open and close time must be HH:MM"})
			continue
		}
		if !h.OpenTime.IsBefore(h.CloseTime) {
			out = append(out, FieldError{Field: "business_hours", Message: "open time must be before close time"})
		}
	}
	return out
}

func fieldPath(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ns
}

func tagMessage(tag string) string {
	if msg, ok := tagMessages[tag]; ok {
		return msg
	}
	return "is invalid"
}
