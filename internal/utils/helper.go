package utils

import (
	"math"
	"strconv"
	"strings"
)

func Ptr[T any](v T) *T {
	return &v
}

func PtrString(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// FormatVND renders an amount in dong: 1500000 -> "1.500.000 ₫".
// Fractions are rounded; the currency has no minor unit.
func FormatVND(amount float64) string {
	n := int64(math.Round(amount))
	sign := ""
	if n < 0 {
		sign = "-"
		n = -n
	}

	digits := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, d := range digits {
		if i > 0 && (len(digits)-i)%3 == 0 {
			b.WriteByte('.')
		}
		b.WriteRune(d)
	}
	return sign + b.String() + " ₫"
}
