package exchange

import (
	"math"
	"strconv"
	"strings"

	"go-currency-converter/domain"
)

// ParseAmount reads raw amount text leniently. Surrounding whitespace is ignored;
// empty, malformed, out of range, NaN and infinite input all become 0.
func ParseAmount(text string) domain.Amount {
	f, err := strconv.ParseFloat(strings.TrimSpace(text), 64)
	if err != nil || math.IsNaN(f) || math.IsInf(f, 0) {
		return 0
	}
	return domain.Amount(f)
}

// FormatAmount renders an amount as plain text without rounding or currency formatting.
// Whole numbers keep a trailing ".0" and magnitudes outside [1e-3, 1e7) use the
// "1.5E7" scientific form.
func FormatAmount(a domain.Amount) string {
	f := float64(a)
	switch {
	case math.IsNaN(f):
		return "NaN"
	case math.IsInf(f, 1):
		return "Infinity"
	case math.IsInf(f, -1):
		return "-Infinity"
	case f == 0:
		if math.Signbit(f) {
			return "-0.0"
		}
		return "0.0"
	}

	abs := math.Abs(f)
	if abs >= 1e-3 && abs < 1e7 {
		return withFraction(strconv.FormatFloat(f, 'f', -1, 64))
	}

	s := strconv.FormatFloat(f, 'e', -1, 64)
	mantissa, exp, _ := strings.Cut(s, "e")
	e, _ := strconv.Atoi(exp) // FormatFloat always writes a valid exponent
	return withFraction(mantissa) + "E" + strconv.Itoa(e)
}

func withFraction(s string) string {
	if strings.Contains(s, ".") {
		return s
	}
	return s + ".0"
}
