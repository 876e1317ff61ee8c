package main

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"go-currency-converter/domain"
	"go-currency-converter/form"
)

const help = `commands:
  from <CODE>   select the source currency
  to <CODE>     select the target currency
  list          show the currencies
  quit          exit
anything else is taken as the amount`

// console drives a form from lines of text, one event per line
type console struct {
	form *form.Form
	out  io.Writer
}

func newConsole(f *form.Form, out io.Writer) *console {
	return &console{form: f, out: out}
}

// serve handles lines until quit or end of input
func (c *console) serve(in io.Reader) error {
	fmt.Fprintln(c.out, "Currency Converter")
	fmt.Fprintln(c.out, help)
	c.status()

	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		if !c.handle(scanner.Text()) {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading input: %w", err)
	}
	return nil
}

// handle applies one line and reports whether to keep going
func (c *console) handle(line string) bool {
	cmd, arg, _ := strings.Cut(strings.TrimSpace(line), " ")
	switch strings.ToLower(cmd) {
	case "quit", "exit":
		return false
	case "list":
		codes := make([]string, 0, len(c.form.Options()))
		for _, o := range c.form.Options() {
			codes = append(codes, string(o))
		}
		fmt.Fprintln(c.out, strings.Join(codes, " "))
		return true
	case "from", "to":
		side := form.From
		if strings.ToLower(cmd) == "to" {
			side = form.To
		}
		code, ok := domain.ParseCurrency(arg)
		if !ok {
			fmt.Fprintf(c.out, "unknown currency %q\n", strings.TrimSpace(arg))
			return true
		}
		c.form.Select(side, code)
	default:
		c.form.SetAmountText(line)
	}
	c.status()
	return true
}

func (c *console) status() {
	fmt.Fprintf(c.out, "[%s] -> [%s] amount=%q  %s\n",
		c.form.Label(form.From),
		c.form.Label(form.To),
		c.form.AmountText(),
		c.form.Display(),
	)
}
