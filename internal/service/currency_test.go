package service

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/VladPetriv/currency_bot/internal/currency"
	"github.com/VladPetriv/currency_bot/internal/metrics"
	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/pkg/errs"
	"github.com/VladPetriv/currency_bot/pkg/logger"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestCurrencyService(fetcher RatesFetcher, m *metrics.Metrics) *currencyService {
	rate := newTestRateService(fetcher, &testClock{now: time.Now()}, m)

	return NewCurrency(CurrencyOptions{
		Logger:   logger.NewNop(),
		Services: Services{Rate: rate},
		Metrics:  m,
		Registry: currency.DefaultRegistry(),
		Markup:   currency.PlainMarkup{},
	})
}

func TestCurrencyService_Convert(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	fetcher := &mockFetcher{fetchFn: successfulRates(map[string]float64{"USD": 1.0, "EUR": 0.92, "RUB": 90.0})}
	service := newTestCurrencyService(fetcher, m)

	output, err := service.Convert(context.Background(), ConvertCurrencyOptions{
		Text:  "I paid 100 USD for it",
		Rates: currency.NewRateCache(),
	})
	require.NoError(t, err)

	assert.Equal(t, "USD", output.Detection.Currency)
	assert.Equal(t, []models.ConversionLine{{Symbol: "€", Value: "92"}, {Symbol: "₽", Value: "9000"}}, output.Lines)
	assert.Equal(t, "💵 100 USD \n\n€       92\n₽     9000", output.Report)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.DetectionsTotal.WithLabelValues("USD")))
	assert.Equal(t, float64(1), testutil.ToFloat64(m.ConversionLinesTotal.WithLabelValues("€")))
}

func TestCurrencyService_Convert_NothingDetected(t *testing.T) {
	t.Parallel()

	m := metrics.New()
	fetcher := &mockFetcher{}
	service := newTestCurrencyService(fetcher, m)

	output, err := service.Convert(context.Background(), ConvertCurrencyOptions{
		Text:  "just some words",
		Rates: currency.NewRateCache(),
	})

	assert.Nil(t, output)
	assert.ErrorIs(t, err, ErrNoCurrencyDetected)
	assert.True(t, errs.IsExpected(err))
	assert.Equal(t, 0, fetcher.Calls())
	assert.Equal(t, float64(1), testutil.ToFloat64(m.MissedDetectionsTotal))
}

func TestCurrencyService_Convert_RatesUnavailable(t *testing.T) {
	t.Parallel()

	fetcher := &mockFetcher{fetchFn: func(context.Context) (*models.RateResponse, error) {
		return nil, fmt.Errorf("provider is down")
	}}
	service := newTestCurrencyService(fetcher, metrics.New())

	output, err := service.Convert(context.Background(), ConvertCurrencyOptions{
		Text:  "10,5 EUR",
		Rates: currency.NewRateCache(),
	})
	require.NoError(t, err)

	assert.Empty(t, output.Lines)
	assert.Equal(t, "💵 10.5 EUR \n\n", output.Report)
}
