// Package form models the converter screen: an amount field and two currency selectors.
// Every change recomputes the result synchronously, so Result always reflects the current input.
// A Form is owned by a single goroutine.
package form

import (
	"go-currency-converter/domain"
	"go-currency-converter/exchange"
)

// Side identifies one of the two selectors
type Side int

const (
	From Side = iota
	To
)

const (
	fromPlaceholder = "From Currency"
	toPlaceholder   = "To Currency"
)

// Form input state plus the last computed result
type Form struct {
	service exchange.Service

	text string
	from domain.Currency
	to   domain.Currency

	result domain.Exchanged
}

// New returns an empty form: no amount text, nothing selected, result zero.
func New(s exchange.Service) *Form {
	return &Form{service: s}
}

// SetAmountText replaces the amount text and recomputes
func (f *Form) SetAmountText(text string) {
	f.text = text
	f.recompute()
}

// SelectFrom sets the source currency and recomputes
func (f *Form) SelectFrom(c domain.Currency) {
	f.from = c
	f.recompute()
}

// SelectTo sets the target currency and recomputes
func (f *Form) SelectTo(c domain.Currency) {
	f.to = c
	f.recompute()
}

// Select sets the currency for side
func (f *Form) Select(side Side, c domain.Currency) {
	if side == From {
		f.SelectFrom(c)
		return
	}
	f.SelectTo(c)
}

func (f *Form) recompute() {
	f.result = f.service.Convert(exchange.ParseAmount(f.text), f.from, f.to)
}

func (f *Form) AmountText() string {
	return f.text
}

// Selection returns the currency chosen for side, or NoCurrency
func (f *Form) Selection(side Side) domain.Currency {
	if side == From {
		return f.from
	}
	return f.to
}

// Label the text shown on a selector: the chosen code, or a placeholder while nothing is chosen
func (f *Form) Label(side Side) string {
	c := f.Selection(side)
	if c.Selected() {
		return string(c)
	}
	if side == From {
		return fromPlaceholder
	}
	return toPlaceholder
}

// Options the currencies a selector offers
func (f *Form) Options() []domain.Currency {
	return domain.Currencies()
}

func (f *Form) Result() domain.Exchanged {
	return f.result
}

// Display the result line
func (f *Form) Display() string {
	return "Result: " + exchange.FormatAmount(f.result.Amount)
}
