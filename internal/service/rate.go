package service

import (
	"context"
	"time"

	"github.com/VladPetriv/currency_bot/internal/currency"
	"github.com/VladPetriv/currency_bot/internal/metrics"
	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/pkg/logger"
)

type rateService struct {
	logger     *logger.Logger
	apis       APIs
	metrics    *metrics.Metrics
	staleAfter time.Duration
	now        func() time.Time
}

var _ RateService = (*rateService)(nil)

// RateOptions represents input options for new instance of rate service.
type RateOptions struct {
	Logger     *logger.Logger
	APIs       APIs
	Metrics    *metrics.Metrics
	StaleAfter time.Duration
	// Now overrides the clock, time.Now by default.
	Now func() time.Time
}

// NewRate returns new instance of rate service.
func NewRate(opts RateOptions) *rateService {
	staleAfter := opts.StaleAfter
	if staleAfter <= 0 {
		staleAfter = currency.DefaultStaleAfter
	}

	now := opts.Now
	if now == nil {
		now = time.Now
	}

	return &rateService{
		logger:     opts.Logger,
		apis:       opts.APIs,
		metrics:    opts.Metrics,
		staleAfter: staleAfter,
		now:        now,
	}
}

func (r *rateService) GetRates(ctx context.Context, cache *currency.RateCache) models.RateTable {
	logger := r.logger.With().Str("name", "rateService.GetRates").Logger()

	// the fetch is shared with concurrent callers, so one caller going away must not fail it
	fetchCtx := context.WithoutCancel(ctx)

	table, refreshed := cache.RefreshIfStale(r.now(), r.staleAfter, func() models.RateTable {
		return r.fetch(fetchCtx)
	})
	if refreshed {
		logger.Info().
			Bool("isStable", table.IsStable).
			Int("ratesCount", len(table.Data)).
			Msg("currency data updated")
	}

	return table
}

func (r *rateService) fetch(ctx context.Context) models.RateTable {
	logger := r.logger.With().Str("name", "rateService.fetch").Logger()

	startedAt := time.Now()
	response, err := r.apis.RatesFetcher.FetchRates(ctx)
	r.metrics.RateFetchDuration.Observe(time.Since(startedAt).Seconds())

	fetchedAt := r.now()
	if err != nil {
		logger.Warn().Err(err).Msg("fetch rates through rates provider")
		r.metrics.RateRefreshesTotal.WithLabelValues(metrics.RefreshFailure).Inc()

		return currency.TableFromResponse(nil, fetchedAt)
	}

	if response == nil || !response.Success {
		event := logger.Warn()
		if response != nil && response.Error != nil {
			event = event.
				Int("errorCode", response.Error.Code).
				Str("errorType", response.Error.Type).
				Str("errorInfo", response.Error.Info)
		}
		event.Msg("rates provider reported failure")
		r.metrics.RateRefreshesTotal.WithLabelValues(metrics.RefreshFailure).Inc()

		return currency.TableFromResponse(nil, fetchedAt)
	}

	logger.Debug().
		Str("base", response.Base).
		Str("date", response.Date).
		Int64("timestamp", response.Timestamp).
		Msg("fetched rates")
	r.metrics.RateRefreshesTotal.WithLabelValues(metrics.RefreshSuccess).Inc()

	return currency.TableFromResponse(response, fetchedAt)
}
