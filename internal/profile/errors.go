package profile

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrValidation возвращается, когда анкета не проходит проверку перед отправкой
	ErrValidation = errors.New("profile: validation failed")

	// ErrCategoryNotFound возвращается, когда ID категории нет в справочнике
	ErrCategoryNotFound = errors.New("profile: category not found")
)

// FieldError ошибка одного поля анкеты
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError набор ошибок полей, errors.Is(err, ErrValidation) == true
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	parts := make([]string, 0, len(e.Fields))
	for _, f := range e.Fields {
		parts = append(parts, fmt.Sprintf("%s: %s", f.Field, f.Message))
	}
	return fmt.Sprintf("%s: %s", ErrValidation, strings.Join(parts, "; "))
}

func (e *ValidationError) Unwrap() error {
	return ErrValidation
}

// Has true, если есть ошибка по полю
func (e *ValidationError) Has(field string) bool {
	for _, f := range e.Fields {
		if f.Field == field {
			return true
		}
	}
	return false
}
