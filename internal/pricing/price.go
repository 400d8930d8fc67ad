package pricing

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidPrice возвращается, когда цену не удалось разобрать
var ErrInvalidPrice = errors.New("pricing: invalid price")

// ParsePrice разбирает цену из внешних данных
// Поддерживаются "150", "150.5", "60,00", "1.234,56" и префикс "R$"
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.TrimSpace(raw)
	s = strings.TrimPrefix(s, "R$")
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, fmt.Errorf("%w: empty value", ErrInvalidPrice)
	}

	if strings.Contains(s, ",") {
		// Бразильский формат: точка - разделитель тысяч, запятая - десятичный
		s = strings.ReplaceAll(s, ".", "")
		s = strings.ReplaceAll(s, ",", ".")
	}

	price, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", ErrInvalidPrice, raw)
	}
	if price.IsNegative() {
		return decimal.Zero, fmt.Errorf("%w: negative value %q", ErrInvalidPrice, raw)
	}

	return price, nil
}

// Format форматирует сумму для отображения: "R$ 1.234,56"
func Format(amount decimal.Decimal) string {
	fixed := amount.Abs().StringFixed(2)
	intPart, frac, _ := strings.Cut(fixed, ".")

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(r)
	}

	sign := ""
	if amount.IsNegative() {
		sign = "-"
	}
	return sign + "R$ " + b.String() + "," + frac
}
