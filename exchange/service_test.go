package exchange

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"go-currency-converter/domain"
	"go-currency-converter/rates"
)

type table struct {
	toBase   domain.Rates
	fromBase domain.Rates
}

func (m *table) ToBase(c domain.Currency) (domain.Rate, bool) {
	r, ok := m.toBase[c]
	return r, ok
}

func (m *table) FromBase(c domain.Currency) (domain.Rate, bool) {
	r, ok := m.fromBase[c]
	return r, ok
}

func TestService_Convert(t *testing.T) {
	service := &service{
		table: &table{
			toBase:   domain.Rates{"FOO": 2.0, "BAR": 10.0},
			fromBase: domain.Rates{"FOO": 0.5, "BAR": 3.0},
		},
	}

	type args struct {
		amount domain.Amount
		from   domain.Currency
		to     domain.Currency
	}
	tests := []struct {
		name string
		args args
		want domain.Exchanged
	}{
		{
			"foo -> bar",
			args{10.0, "FOO", "BAR"},
			domain.Exchanged{Standardized: 20.0, Amount: 60.0, Resolved: true},
		},
		{
			"bar -> foo",
			args{10.0, "BAR", "FOO"},
			domain.Exchanged{Standardized: 100.0, Amount: 50.0, Resolved: true},
		},
		{
			"bar -> bar",
			args{1.0, "BAR", "BAR"},
			domain.Exchanged{Standardized: 10.0, Amount: 30.0, Resolved: true},
		},
		{
			"negative",
			args{-4.0, "FOO", "FOO"},
			domain.Exchanged{Standardized: -8.0, Amount: -4.0, Resolved: true},
		},
		{
			"unknown from",
			args{10.0, "XYZ", "FOO"},
			domain.Exchanged{},
		},
		{
			"unknown to",
			args{10.0, "FOO", "XYZ"},
			domain.Exchanged{},
		},
		{
			"no selection",
			args{10.0, domain.NoCurrency, domain.NoCurrency},
			domain.Exchanged{},
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Convert(tt.args.amount, tt.args.from, tt.args.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Convert_DefaultTable(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		from   domain.Currency
		to     domain.Currency
		want   domain.Exchanged
	}{
		{
			"100 usd -> pkr",
			"100", domain.USD, domain.PKR,
			domain.Exchanged{Standardized: 8300, Amount: 28635.0, Resolved: true},
		},
		{
			"50 eur -> gbp",
			"50", domain.EUR, domain.GBP,
			domain.Exchanged{Standardized: 4400, Amount: 43.12, Resolved: true},
		},
		{
			"empty cad -> aed",
			"", domain.CAD, domain.AED,
			domain.Exchanged{Standardized: 0, Amount: 0, Resolved: true},
		},
		{
			"garbage usd -> eur",
			"12abc", domain.USD, domain.EUR,
			domain.Exchanged{Standardized: 0, Amount: 0, Resolved: true},
		},
		{
			"no target selected",
			"100", domain.USD, domain.NoCurrency,
			domain.Exchanged{},
		},
	}

	service := NewService(rates.Default())
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := service.Convert(ParseAmount(tt.amount), tt.from, tt.to)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestService_Convert_Formula(t *testing.T) {
	table := rates.Default()
	service := NewService(table)
	amounts := []domain.Amount{0, 1, 2.5, 100, 1234.5678, -7}

	for _, from := range domain.Currencies() {
		for _, to := range domain.Currencies() {
			toBase, _ := table.ToBase(from)
			fromBase, _ := table.FromBase(to)
			for _, a := range amounts {
				want := float64(a) * float64(toBase) * float64(fromBase)
				got := service.Convert(a, from, to)
				assert.True(t, got.Resolved)
				assert.Equal(t, domain.Amount(want), got.Amount, "%v %v -> %v", a, from, to)
				if a == 0 {
					assert.Zero(t, got.Amount, "%v -> %v", from, to)
				}
			}
		}
	}
}

func TestService_Convert_SameCurrencyIsNotIdentity(t *testing.T) {
	service := NewService(rates.Default())

	got := service.Convert(100, domain.USD, domain.USD)

	a, toBase, fromBase := 100.0, 83.0, 0.012
	assert.Equal(t, domain.Amount(a*toBase*fromBase), got.Amount)
	assert.NotEqual(t, domain.Amount(100), got.Amount)
}
