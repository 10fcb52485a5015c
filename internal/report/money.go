package report

import (
	"fmt"
	"strconv"

	"github.com/Rhymond/go-money"
	"github.com/shopspring/decimal"
)

// DefaultCurrency is the ISO 4217 code used for display when none is configured.
const DefaultCurrency = "BRL"

// Formatter renders values for people. It is never used for persisted values.
type Formatter struct {
	currency *money.Currency
}

// NewFormatter returns a formatter for the ISO 4217 currency code.
func NewFormatter(code string) (Formatter, error) {
	if code == "" {
		code = DefaultCurrency
	}
	cur := money.GetCurrency(code)
	if cur == nil {
		return Formatter{}, fmt.Errorf("report: unknown currency %q", code)
	}
	return Formatter{currency: cur}, nil
}

// Currency returns the currency code.
func (f Formatter) Currency() string {
	if f.currency == nil {
		return DefaultCurrency
	}
	return f.currency.Code
}

// Symbol returns the currency symbol, e.g. "R$".
func (f Formatter) Symbol() string {
	if f.currency == nil {
		return money.GetCurrency(DefaultCurrency).Grapheme
	}
	return f.currency.Grapheme
}

// Money formats d in the formatter's currency, rounded to its minor unit.
func (f Formatter) Money(d decimal.Decimal) string {
	code := f.Currency()
	cur := money.GetCurrency(code)
	minor := d.Shift(int32(cur.Fraction)).Round(0).IntPart()
	return money.New(minor, code).Display()
}

// Quantity formats a stock count.
func (f Formatter) Quantity(q int64) string {
	return strconv.FormatInt(q, 10)
}
