package utils

import (
	"strings"

	"github.com/shopspring/decimal"
)

// ParseAmount interpreta um valor numérico formatado, ignorando símbolo de moeda
// e separador de milhar (ex: "$1,042.65")
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	s = strings.TrimPrefix(s, "$")
	s = strings.ReplaceAll(s, ",", "")

	return decimal.NewFromString(strings.TrimSpace(s))
}

// FormatThousands formata um inteiro com separador de milhar, ex: 1234567 -> 1,234,567
func FormatThousands(n int64) string {
	if n < 0 {
		return "-" + FormatThousands(-n)
	}

	digits := decimal.NewFromInt(n).String()
	if len(digits) <= 3 {
		return digits
	}

	var b strings.Builder
	head := len(digits) % 3
	if head > 0 {
		b.WriteString(digits[:head])
	}
	for i := head; i < len(digits); i += 3 {
		if b.Len() > 0 {
			b.WriteByte(',')
		}
		b.WriteString(digits[i : i+3])
	}

	return b.String()
}

// RoundWithTwoDecimalPlace arredonda para duas casas, metade para longe do zero
func RoundWithTwoDecimalPlace(d decimal.Decimal) decimal.Decimal {
	return d.Round(2)
}
