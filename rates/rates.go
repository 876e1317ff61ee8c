package rates

import (
	"errors"
	"fmt"
	"math"

	"go-currency-converter/domain"
)

var (
	// ErrMissingRate a supported currency has no entry in one of the legs
	ErrMissingRate = errors.New("missing rate")
	// ErrInvalidRate a rate is zero, negative, NaN or infinite
	ErrInvalidRate = errors.New("invalid rate")
)

// Table holds the multipliers into and out of the reference unit.
// A Table is never modified after construction and is safe for concurrent reads.
type Table struct {
	toBase   domain.Rates
	fromBase domain.Rates
}

// New validates the two legs and returns a Table holding copies of them.
// Every currency in domain.Currencies must have a positive finite rate in both legs;
// entries for any other code are dropped.
func New(toBase, fromBase domain.Rates) (*Table, error) {
	for _, c := range domain.Currencies() {
		if err := check(toBase, c); err != nil {
			return nil, fmt.Errorf("to base [%v]: %w", c, err)
		}
		if err := check(fromBase, c); err != nil {
			return nil, fmt.Errorf("from base [%v]: %w", c, err)
		}
	}
	return &Table{
		toBase:   clone(toBase),
		fromBase: clone(fromBase),
	}, nil
}

// Default returns the built-in placeholder table.
func Default() *Table {
	t, err := New(
		domain.Rates{
			domain.PKR: 0.29,
			domain.CAD: 62.5,
			domain.AED: 22.7272,
			domain.USD: 83.0,
			domain.EUR: 88.0,
			domain.GBP: 101.0,
		},
		domain.Rates{
			domain.PKR: 3.45,
			domain.CAD: 0.016,
			domain.AED: 0.044,
			domain.USD: 0.012,
			domain.EUR: 0.011,
			domain.GBP: 0.0098,
		},
	)
	if err != nil {
		panic(err)
	}
	return t
}

// ToBase the multiplier converting one unit of c into the reference unit
func (t *Table) ToBase(c domain.Currency) (domain.Rate, bool) {
	r, ok := t.toBase[c]
	return r, ok
}

// FromBase the multiplier converting one reference unit into c
func (t *Table) FromBase(c domain.Currency) (domain.Rate, bool) {
	r, ok := t.fromBase[c]
	return r, ok
}

// Row one currency's entries in the table
type Row struct {
	Currency domain.Currency
	ToBase   domain.Rate
	FromBase domain.Rate
	// RoundTrip is ToBase*FromBase, which is 1 only for consistent rates
	RoundTrip float64
}

// Rows lists the table in display order.
func (t *Table) Rows() []Row {
	rows := make([]Row, 0, len(t.toBase))
	for _, c := range domain.Currencies() {
		to := t.toBase[c]
		from := t.fromBase[c]
		rows = append(rows, Row{
			Currency:  c,
			ToBase:    to,
			FromBase:  from,
			RoundTrip: float64(to) * float64(from),
		})
	}
	return rows
}

// Inconsistencies returns the rows whose round trip through the reference unit does not come back to 1.
func (t *Table) Inconsistencies() []Row {
	var bad []Row
	for _, row := range t.Rows() {
		if row.RoundTrip != 1 {
			bad = append(bad, row)
		}
	}
	return bad
}

func check(rates domain.Rates, c domain.Currency) error {
	r, ok := rates[c]
	if !ok {
		return ErrMissingRate
	}
	f := float64(r)
	if math.IsNaN(f) || math.IsInf(f, 0) || f <= 0 {
		return fmt.Errorf("%w: %v", ErrInvalidRate, f)
	}
	return nil
}

func clone(rates domain.Rates) domain.Rates {
	out := domain.Rates{}
	for _, c := range domain.Currencies() {
		out[c] = rates[c]
	}
	return out
}
