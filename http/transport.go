package http

import (
	"bytes"
	"encoding/json"
	"io"
	"math"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-kit/log"
	"github.com/google/uuid"

	"go-currency-converter/domain"
	"go-currency-converter/exchange"
	"go-currency-converter/rates"
)

// RateLister lists the rate table
type RateLister interface {
	Rows() []rates.Row
}

// Server dependencies for HTTP Server functions
type Server struct {
	Service exchange.Service
	Rates   RateLister
	Logger  log.Logger
	router  *chi.Mux
}

func NewServer(s exchange.Service, r RateLister, logger log.Logger) *Server {
	server := &Server{
		Service: s,
		Rates:   r,
		Logger:  logger,
		router:  chi.NewRouter(),
	}
	server.routes()
	return server
}

func (s *Server) routes() {
	s.router.Use(uuidRequestID, middleware.RequestID, s.accessLog)
	s.router.MethodNotAllowed(func(rw http.ResponseWriter, r *http.Request) {
		writeError(rw, http.StatusMethodNotAllowed, "method not allowed")
	})
	s.router.NotFound(func(rw http.ResponseWriter, r *http.Request) {
		writeError(rw, http.StatusNotFound, "not found")
	})

	s.router.Post("/api/convert", s.convert())
	s.router.Get("/api/currencies", s.currencies())
	s.router.Get("/api/rates", s.rates())
}

func (s *Server) ServeHTTP(rw http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(rw, r)
}

// uuidRequestID fills in a uuid when the client sent no request id, so middleware.RequestID keeps it
func uuidRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		if r.Header.Get(middleware.RequestIDHeader) == "" {
			r.Header.Set(middleware.RequestIDHeader, uuid.NewString())
		}
		next.ServeHTTP(rw, r)
	})
}

// accessLog echoes the request id and writes one log line per request
func (s *Server) accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(rw http.ResponseWriter, r *http.Request) {
		begin := time.Now()
		id := middleware.GetReqID(r.Context())
		rw.Header().Set(middleware.RequestIDHeader, id)

		ww := middleware.NewWrapResponseWriter(rw, r.ProtoMajor)
		next.ServeHTTP(ww, r)

		status := ww.Status()
		if status == 0 {
			status = http.StatusOK
		}
		s.Logger.Log(
			"request_id", id,
			"method", r.Method,
			"path", r.URL.Path,
			"status", status,
			"took", time.Since(begin),
		)
	})
}

// convert produces HTTP handler for currency conversions
func (s *Server) convert() http.HandlerFunc {

	// request for unmarshalling JSON requests posted by clients
	type request struct {
		FromCurrency string
		ToCurrency   string
		// Amount is a JSON number or the raw text typed by the user
		Amount json.RawMessage
	}

	// response for marshalling JSON responses to return to clients
	// Amount and Standardized are null when the product overflows
	type response struct {
		Amount       *domain.Amount `json:"amount"`
		Standardized *domain.Amount `json:"standardized"`
		Original     domain.Amount  `json:"original"`
		Display      string        `json:"display"`
		Resolved     bool          `json:"resolved"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		body, err := io.ReadAll(r.Body)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "invalid request")
			return
		}

		var request request
		err = json.Unmarshal(body, &request)
		if err != nil {
			writeError(rw, http.StatusBadRequest, "invalid json")
			return
		}

		// unknown codes are passed through as NoCurrency and convert to zero
		from, _ := domain.ParseCurrency(request.FromCurrency)
		to, _ := domain.ParseCurrency(request.ToCurrency)
		amount := amountOf(request.Amount)

		result := s.Service.Convert(amount, from, to)

		writeJSON(rw, http.StatusOK, response{
			Amount:       finite(result.Amount),
			Standardized: finite(result.Standardized),
			Original:     amount,
			Display:      exchange.FormatAmount(result.Amount),
			Resolved:     result.Resolved,
		})
	}
}

// currencies produces HTTP handler listing the selectable currencies
func (s *Server) currencies() http.HandlerFunc {
	type response struct {
		Currencies []domain.Currency `json:"currencies"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		writeJSON(rw, http.StatusOK, response{Currencies: domain.Currencies()})
	}
}

// rates produces HTTP handler describing the rate table
func (s *Server) rates() http.HandlerFunc {
	type row struct {
		Currency  domain.Currency `json:"currency"`
		ToBase    domain.Rate     `json:"toBase"`
		FromBase  domain.Rate     `json:"fromBase"`
		RoundTrip float64         `json:"roundTrip"`
	}
	type response struct {
		Rates []row `json:"rates"`
	}

	return func(rw http.ResponseWriter, r *http.Request) {
		var res response
		for _, tr := range s.Rates.Rows() {
			res.Rates = append(res.Rates, row(tr))
		}
		writeJSON(rw, http.StatusOK, res)
	}
}

// amountOf reads a JSON number or string leniently; anything unusable is 0
func amountOf(raw json.RawMessage) domain.Amount {
	raw = bytes.TrimSpace(raw)
	if len(raw) == 0 {
		return 0
	}
	var text string
	if err := json.Unmarshal(raw, &text); err == nil {
		return exchange.ParseAmount(text)
	}
	return exchange.ParseAmount(string(raw))
}

// finite returns nil for amounts JSON cannot carry
func finite(a domain.Amount) *domain.Amount {
	f := float64(a)
	if math.IsNaN(f) || math.IsInf(f, 0) {
		return nil
	}
	return &a
}

func writeJSON(rw http.ResponseWriter, status int, v interface{}) {
	body, err := json.Marshal(v)
	if err != nil {
		writeError(rw, http.StatusInternalServerError, "failed json encoding")
		return
	}
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	rw.Write(append(body, '\n'))
}

func writeError(rw http.ResponseWriter, status int, msg string) {
	rw.Header().Set("Content-Type", "application/json")
	rw.WriteHeader(status)
	rw.Write([]byte(`{"error":"` + msg + `"}` + "\n"))
}
