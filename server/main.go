package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-kit/log"
	"github.com/go-kit/log/level"

	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/http"
	"go-currency-converter/logging"
	"go-currency-converter/rates"

	nhttp "net/http"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	if err := run(*configPath); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(configPath string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		return fmt.Errorf("logger: %w", err)
	}

	table := rates.Default()
	for _, row := range table.Inconsistencies() {
		level.Warn(logger).Log(
			"msg", "rates do not round trip",
			"currency", row.Currency,
			"to_base", row.ToBase,
			"from_base", row.FromBase,
			"round_trip", row.RoundTrip,
		)
	}

	convertService := exchange.NewService(table)
	convertService = exchange.NewLoggingService(log.With(logger, "component", "convert"), convertService)

	handler := http.NewServer(convertService, table, log.With(logger, "component", "http"))
	srv := &nhttp.Server{
		Addr:    cfg.HTTP.Addr,
		Handler: handler,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errc := make(chan error, 1)
	go func() {
		level.Info(logger).Log("msg", "listening", "addr", cfg.HTTP.Addr)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return fmt.Errorf("listen: %w", err)
	case <-ctx.Done():
	}

	level.Info(logger).Log("msg", "shutting down", "timeout", cfg.HTTP.ShutdownTimeout)
	shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.HTTP.ShutdownTimeout)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	if err := <-errc; err != nil && !errors.Is(err, nhttp.ErrServerClosed) {
		return fmt.Errorf("listen: %w", err)
	}
	return nil
}
