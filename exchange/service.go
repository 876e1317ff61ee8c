package exchange

import (
	"go-currency-converter/domain"
)

// Service interface for converting from one currency to another
type Service interface {
	Convert(amount domain.Amount, from domain.Currency, to domain.Currency) domain.Exchanged
}

// RateTable source of the two conversion legs. Implementations must be safe for concurrent reads.
type RateTable interface {
	ToBase(c domain.Currency) (domain.Rate, bool)
	FromBase(c domain.Currency) (domain.Rate, bool)
}

// service converts through the reference unit of a fixed table
type service struct {
	table RateTable
}

// NewService constructs a valid Service
func NewService(table RateTable) Service {
	return &service{
		table: table,
	}
}

// Convert computes amount in from expressed in to, going through the reference unit:
// amount * toBase[from] * fromBase[to]. No rounding is applied.
//
// If either currency is not in the table, NoCurrency included, the result is zero and Resolved is false.
func (s *service) Convert(amount domain.Amount, from domain.Currency, to domain.Currency) domain.Exchanged {
	toBase, ok := s.table.ToBase(from)
	if !ok {
		return domain.Exchanged{}
	}
	fromBase, ok := s.table.FromBase(to)
	if !ok {
		return domain.Exchanged{}
	}

	standardized := float64(amount) * float64(toBase)
	return domain.Exchanged{
		Standardized: domain.Amount(standardized),
		Amount:       domain.Amount(standardized * float64(fromBase)),
		Resolved:     true,
	}
}
