package models

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Currency is a closed enumeration of supported currency codes. Symbols are
// cosmetic only; no exchange-rate logic exists anywhere.
type Currency string

const (
	USD Currency = "USD"
	EUR Currency = "EUR"
	BDT Currency = "BDT"
	GBP Currency = "GBP"
	JPY Currency = "JPY"
	AUD Currency = "AUD"
	CAD Currency = "CAD"
	INR Currency = "INR"
)

// DefaultCurrency is used whenever no valid persisted value exists.
const DefaultCurrency = USD

var currencySymbols = map[Currency]string{
	USD: "$",
	EUR: "€",
	BDT: "৳",
	GBP: "£",
	JPY: "¥",
	AUD: "A$",
	CAD: "C$",
	INR: "₹",
}

// Currencies returns the supported codes in display order.
func Currencies() []Currency {
	return []Currency{USD, EUR, BDT, GBP, JPY, AUD, CAD, INR}
}

// ParseCurrency maps an arbitrary stored string onto the closed set,
// falling back to the default for anything unknown. Corrupt persisted
// values are recovered here, never surfaced as an error.
func ParseCurrency(code string) Currency {
	c := Currency(code)
	if _, ok := currencySymbols[c]; ok {
		return c
	}

	return DefaultCurrency
}

// Symbol returns the cosmetic symbol for the currency.
func (c Currency) Symbol() string {
	s, ok := currencySymbols[c]
	if !ok {
		return currencySymbols[DefaultCurrency]
	}

	return s
}

// Format renders an amount as a currency string, e.g. 1234.5 -> "$1,234.50".
func (c Currency) Format(amount float64) string {
	p := message.NewPrinter(language.English)

	return p.Sprintf("%v%.2f", c.Symbol(), amount)
}

// FormatAbs is Format over the magnitude of the amount. Expense totals are
// naturally non-positive but are displayed unsigned.
func (c Currency) FormatAbs(amount float64) string {
	return c.Format(math.Abs(amount))
}
