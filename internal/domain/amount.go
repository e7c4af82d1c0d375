package domain

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/shopspring/decimal"
)

// AmountPlaces количество знаков после запятой при сериализации денежных сумм
const AmountPlaces = 2

// Amount денежная сумма
// Хранится точно, округляется до AmountPlaces только при сериализации
type Amount struct {
	d decimal.Decimal
}

// ZeroAmount нулевая сумма
var ZeroAmount = Amount{}

// AmountFromInt создает сумму из целого числа
func AmountFromInt(v int64) Amount {
	return Amount{d: decimal.NewFromInt(v)}
}

// ParseAmount разбирает строковое значение поля формы
// Пустое или некорректное значение дает 0, ok = false
func ParseAmount(s string) (Amount, bool) {
	s = strings.TrimSpace(s)
	if s == "" {
		return ZeroAmount, false
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return ZeroAmount, false
	}
	return Amount{d: d}, true
}

// MustParseAmount как ParseAmount, но без признака успеха
func MustParseAmount(s string) Amount {
	a, _ := ParseAmount(s)
	return a
}

func (a Amount) Decimal() decimal.Decimal {
	return a.d
}

func (a Amount) Add(b Amount) Amount {
	return Amount{d: a.d.Add(b.d)}
}

func (a Amount) MulInt(n int64) Amount {
	return Amount{d: a.d.Mul(decimal.NewFromInt(n))}
}

func (a Amount) IsZero() bool {
	return a.d.IsZero()
}

func (a Amount) Equal(b Amount) bool {
	return a.d.Equal(b.d)
}

// Float64 приближенное значение (для логов и метрик)
func (a Amount) Float64() float64 {
	f, _ := a.d.Float64()
	return f
}

// String строка с AmountPlaces знаками, например "40.00"
func (a Amount) String() string {
	return a.d.StringFixed(AmountPlaces)
}

// MarshalJSON сериализует сумму как строку с двумя знаками
func (a Amount) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.String())
}

// GobEncode пишет точное значение без округления; используется кэшем
func (a Amount) GobEncode() ([]byte, error) {
	return []byte(a.d.String()), nil
}

func (a *Amount) GobDecode(data []byte) error {
	d, err := decimal.NewFromString(string(data))
	if err != nil {
		return err
	}
	a.d = d
	return nil
}

// UnmarshalJSON принимает число или строку
// null, пустая строка и некорректное значение дают 0
func (a *Amount) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 || bytes.Equal(data, []byte("null")) {
		*a = ZeroAmount
		return nil
	}

	raw := string(data)
	if data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			*a = ZeroAmount
			return nil
		}
		raw = s
	}

	*a, _ = ParseAmount(raw)
	return nil
}
