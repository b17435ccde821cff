package domain

import (
	"fmt"

	"github.com/andriybobchuk/mooney/internal/apperrors"
	"github.com/shopspring/decimal"
)

// Currency is an ISO-like currency code (e.g. "PLN").
type Currency string

const (
	PLN Currency = "PLN"
	USD Currency = "USD"
	EUR Currency = "EUR"
	UAH Currency = "UAH"
)

// Symbol returns the display symbol for the currency, falling back to the
// code itself for currencies without a known symbol.
func (c Currency) Symbol() string {
	switch c {
	case PLN:
		return "zł"
	case USD:
		return "$"
	case EUR:
		return "€"
	case UAH:
		return "₴"
	default:
		return string(c)
	}
}

// ExchangeRates is an immutable snapshot of conversion rates, each expressed
// relative to a single base currency (the base's own rate is 1.0).
type ExchangeRates struct {
	Base  Currency
	rates map[Currency]decimal.Decimal
}

// NewExchangeRates builds a rate snapshot. The caller supplies rates relative
// to base; the map is copied so later mutation of the argument has no effect.
func NewExchangeRates(base Currency, rates map[Currency]decimal.Decimal) ExchangeRates {
	copied := make(map[Currency]decimal.Decimal, len(rates))
	for code, rate := range rates {
		copied[code] = rate
	}
	return ExchangeRates{Base: base, rates: copied}
}

// Currencies lists every currency present in the snapshot.
func (er ExchangeRates) Currencies() []Currency {
	out := make([]Currency, 0, len(er.rates))
	for code := range er.rates {
		out = append(out, code)
	}
	return out
}

// Has reports whether the snapshot carries a rate for the given currency.
func (er ExchangeRates) Has(c Currency) bool {
	_, ok := er.rates[c]
	return ok
}

// Convert converts amount from one currency to another via the base-relative
// rates: amount / rate[from] * rate[to]. No rounding is applied; callers
// round for display only. Returns ErrMissingRate if either currency is
// absent from the snapshot.
func (er ExchangeRates) Convert(amount decimal.Decimal, from, to Currency) (decimal.Decimal, error) {
	fromRate, ok := er.rates[from]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrMissingRate, from)
	}
	toRate, ok := er.rates[to]
	if !ok {
		return decimal.Zero, fmt.Errorf("%w: %s", apperrors.ErrMissingRate, to)
	}
	return amount.Div(fromRate).Mul(toRate), nil
}
