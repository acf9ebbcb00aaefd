package models

import (
	"time"

	"github.com/VladPetriv/currency_bot/pkg/money"
)

// CurrencyDefinition describes a currency that can be recognised in a message.
type CurrencyDefinition struct {
	// Code is an ISO-like 3-letter identifier, e.g. USD.
	Code string
	// Triggers are literal, case-insensitive tokens that identify the currency in text.
	Triggers []string
	// Symbol is shown in front of the converted amount.
	Symbol string
	// DropLimit is the converted value above which amounts are rounded to whole units.
	DropLimit money.Money
}

// CurrencyGroup is an ordered list of currency codes displayed together.
type CurrencyGroup struct {
	Codes []string
}

// DetectionResult represents the first currency amount found in a message.
type DetectionResult struct {
	Currency string
	Value    money.Money
}

// IsEmpty reports whether nothing was detected.
func (d DetectionResult) IsEmpty() bool {
	return d.Currency == ""
}

// RateTable is a snapshot of exchange rates relative to one base currency.
type RateTable struct {
	// IsStable is true only when the last fetch succeeded and reported success.
	IsStable bool
	// LastUpdate is the time of the last fetch attempt, successful or not.
	LastUpdate time.Time
	// Data maps a currency code to its rate against the provider's base currency.
	Data map[string]float64
}

// Rate returns a positive rate for the given currency code.
func (r RateTable) Rate(code string) (float64, bool) {
	rate, ok := r.Data[code]
	if !ok || rate <= 0 {
		return 0, false
	}

	return rate, true
}

// RateResponse is the payload returned by a rates provider.
type RateResponse struct {
	Success   bool
	Timestamp int64
	Base      string
	Date      string
	Rates     map[string]float64
	Error     *RateError
}

// RateError describes a failure reported inside a rates provider payload.
type RateError struct {
	Code int
	Type string
	Info string
}

// ConversionLine is one rendered conversion.
type ConversionLine struct {
	Symbol string
	Value  string
}
