package service

import (
	"context"

	"github.com/VladPetriv/currency_bot/internal/currency"
	"github.com/VladPetriv/currency_bot/internal/metrics"
	"github.com/VladPetriv/currency_bot/pkg/logger"
)

type currencyService struct {
	logger    *logger.Logger
	services  Services
	metrics   *metrics.Metrics
	detector  *currency.Detector
	converter *currency.Converter
	formatter *currency.Formatter
}

var _ CurrencyService = (*currencyService)(nil)

// CurrencyOptions represents input options for new instance of currency service.
type CurrencyOptions struct {
	Logger   *logger.Logger
	Services Services
	Metrics  *metrics.Metrics
	Registry *currency.Registry
	Markup   currency.Markup
}

// NewCurrency returns new instance of currency service.
func NewCurrency(opts CurrencyOptions) *currencyService {
	return &currencyService{
		logger:    opts.Logger,
		services:  opts.Services,
		metrics:   opts.Metrics,
		detector:  currency.NewDetector(opts.Registry),
		converter: currency.NewConverter(opts.Registry),
		formatter: currency.NewFormatter(opts.Markup),
	}
}

func (c *currencyService) Convert(ctx context.Context, opts ConvertCurrencyOptions) (*ConvertCurrencyOutput, error) {
	logger := c.logger.With().Str("name", "currencyService.Convert").Logger()
	logger.Debug().Str("text", opts.Text).Msg("got args")

	detection := c.detector.Detect(opts.Text)
	if detection.IsEmpty() {
		c.metrics.MissedDetectionsTotal.Inc()
		logger.Info().Msg(ErrNoCurrencyDetected.Error())
		return nil, ErrNoCurrencyDetected
	}
	c.metrics.DetectionsTotal.WithLabelValues(detection.Currency).Inc()
	logger.Debug().
		Str("currency", detection.Currency).
		Str("value", detection.Value.String()).
		Msg("detected currency")

	table := c.services.Rate.GetRates(ctx, opts.Rates)
	if !table.IsStable {
		logger.Warn().Time("lastUpdate", table.LastUpdate).Msg("rates are unavailable, conversions are skipped")
	}

	lines := c.converter.Convert(detection.Value, detection.Currency, table)
	for _, line := range lines {
		c.metrics.ConversionLinesTotal.WithLabelValues(line.Symbol).Inc()
	}
	logger.Debug().Any("lines", lines).Msg("converted amount")

	return &ConvertCurrencyOutput{
		Detection: detection,
		Lines:     lines,
		Report:    c.formatter.Format(detection, lines),
	}, nil
}
