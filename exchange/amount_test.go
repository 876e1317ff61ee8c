package exchange

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"

	"go-currency-converter/domain"
)

func TestParseAmount(t *testing.T) {
	tests := []struct {
		in   string
		want domain.Amount
	}{
		{"100", 100},
		{"50.5", 50.5},
		{" 42 ", 42},
		{"-3", -3},
		{"1e3", 1000},
		{".5", 0.5},
		{"", 0},
		{"abc", 0},
		{"12abc", 0},
		{"1,000", 0},
		{"NaN", 0},
		{"Inf", 0},
		{"-infinity", 0},
		{"1e400", 0},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			assert.Equal(t, tt.want, ParseAmount(tt.in))
		})
	}
}

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		in   float64
		want string
	}{
		{28635, "28635.0"},
		{43.12, "43.12"},
		{0, "0.0"},
		{math.Copysign(0, -1), "-0.0"},
		{-3, "-3.0"},
		{1.0005, "1.0005"},
		{0.001, "0.001"},
		{0.0005, "5.0E-4"},
		{0.00012345, "1.2345E-4"},
		{9999999, "9999999.0"},
		{1e7, "1.0E7"},
		{12345678.9, "1.23456789E7"},
		{-2.5e10, "-2.5E10"},
		{math.NaN(), "NaN"},
		{math.Inf(1), "Infinity"},
		{math.Inf(-1), "-Infinity"},
	}
	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatAmount(domain.Amount(tt.in)))
		})
	}
}
