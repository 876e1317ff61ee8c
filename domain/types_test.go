package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestParseCurrency(t *testing.T) {
	tests := []struct {
		in     string
		want   Currency
		wantOk bool
	}{
		{"USD", USD, true},
		{" gbp ", GBP, true},
		{"Pkr", PKR, true},
		{"", NoCurrency, false},
		{"From Currency", NoCurrency, false},
		{"JPY", NoCurrency, false},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, ok := ParseCurrency(tt.in)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantOk, ok)
		})
	}
}

func TestCurrencies(t *testing.T) {
	assert.Equal(t, []Currency{PKR, CAD, AED, USD, EUR, GBP}, Currencies())
	for _, c := range Currencies() {
		assert.True(t, c.Selected())
	}
	assert.False(t, NoCurrency.Selected())
}
