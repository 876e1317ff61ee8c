package domain

import "strings"

// Currency a currency code
type Currency string

const (
	// NoCurrency is the zero value, used while no currency has been selected
	NoCurrency Currency = ""

	PKR Currency = "PKR"
	CAD Currency = "CAD"
	AED Currency = "AED"
	USD Currency = "USD"
	EUR Currency = "EUR"
	GBP Currency = "GBP"
)

// Currencies returns the supported currencies in display order.
func Currencies() []Currency {
	return []Currency{PKR, CAD, AED, USD, EUR, GBP}
}

// ParseCurrency maps a code to a supported Currency. Matching ignores case and surrounding spaces.
// Unknown codes return NoCurrency and false.
func ParseCurrency(s string) (Currency, bool) {
	c := Currency(strings.ToUpper(strings.TrimSpace(s)))
	for _, known := range Currencies() {
		if c == known {
			return c, true
		}
	}
	return NoCurrency, false
}

// Selected reports whether c is an actual selection rather than NoCurrency
func (c Currency) Selected() bool {
	return c != NoCurrency
}

// Amount a monetary amount... which should be a float...
type Amount float64

// Rate a multiplier to or from the reference unit
type Rate float64

type Rates map[Currency]Rate

// Exchanged the outcome of a single conversion
type Exchanged struct {
	// Standardized the amount expressed in the reference unit
	Standardized Amount
	// Amount the amount in the target currency
	Amount Amount
	// Resolved is false when either currency was unknown and the zero fallback was used
	Resolved bool
}
