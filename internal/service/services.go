package service

import (
	"context"

	"github.com/VladPetriv/currency_bot/internal/currency"
	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/pkg/errs"
)

// Services contains all services.
type Services struct {
	Currency CurrencyService
	Rate     RateService
	Handler  HandlerService
	Event    EventService
}

// ErrNoCurrencyDetected is returned when a message mentions no known currency amount.
var ErrNoCurrencyDetected = errs.New("no currency amount found in the message")

// CurrencyService runs the detection and conversion pipeline.
type CurrencyService interface {
	// Convert detects the first currency amount in text and renders its conversions
	// using the session rates, refreshing them when stale.
	Convert(ctx context.Context, opts ConvertCurrencyOptions) (*ConvertCurrencyOutput, error)
}

// ConvertCurrencyOptions represents input options for the Convert method.
type ConvertCurrencyOptions struct {
	Text  string
	Rates *currency.RateCache
}

// ConvertCurrencyOutput represents the result of the Convert method.
type ConvertCurrencyOutput struct {
	Detection models.DetectionResult
	Lines     []models.ConversionLine
	Report    string
}

// RateService keeps rate caches fresh.
type RateService interface {
	// GetRates returns the cached table, refreshing it first when it is stale.
	// Fetch failures never surface: they leave an unstable, empty table behind.
	GetRates(ctx context.Context, cache *currency.RateCache) models.RateTable
}

// HandlerService reacts on recognised bot events.
type HandlerService interface {
	// HandleConvertCurrency replies to a currency command with a conversion report.
	HandleConvertCurrency(ctx context.Context, opts HandleCommandOptions) error
	// HandleAccessDenied notifies the admin chat about a message from a foreign chat.
	HandleAccessDenied(ctx context.Context, msg Message) error
}

// HandleCommandOptions represents input options for command handlers.
type HandleCommandOptions struct {
	Msg Message
	// Args is the command text after the command itself.
	Args string
}

// EventService receives updates from the messenger and routes them to handlers.
type EventService interface {
	// Listen blocks until ctx is done.
	Listen(ctx context.Context)
}
