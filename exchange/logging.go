package exchange

import (
	"time"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-converter/domain"
)

// loggingService decorates an exchange.Service with logging
type loggingService struct {
	logger log.Logger
	next   Service
}

// NewLoggingService returns a new instance of a logging Service
func NewLoggingService(logger log.Logger, s Service) Service {
	return &loggingService{
		next:   s,
		logger: logger,
	}
}

func (s *loggingService) Convert(amount domain.Amount, from domain.Currency, to domain.Currency) (ex domain.Exchanged) {
	defer func(begin time.Time) {
		level.Debug(s.logger).Log(
			"method", "convert",
			"amount", amount,
			"from", from,
			"to", to,
			"standardized", ex.Standardized,
			"converted_amount", ex.Amount,
			"resolved", ex.Resolved,
			"took", time.Since(begin),
		)
	}(time.Now())
	return s.next.Convert(amount, from, to)
}
