package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/go-kit/log"

	"go-currency-converter/config"
	"go-currency-converter/exchange"
	"go-currency-converter/form"
	"go-currency-converter/logging"
	"go-currency-converter/rates"
)

func main() {
	configPath := flag.String("config", "", "path to a config file")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	logger, err := logging.New(os.Stderr, cfg.Log.Format, cfg.Log.Level)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	service := exchange.NewService(rates.Default())
	service = exchange.NewLoggingService(log.With(logger, "component", "convert"), service)

	if err := run(form.New(service), os.Stdin, os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(f *form.Form, in io.Reader, out io.Writer) error {
	return newConsole(f, out).serve(in)
}
