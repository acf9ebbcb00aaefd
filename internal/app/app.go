package app

import (
	"context"
	"errors"
	"fmt"

	"github.com/VladPetriv/currency_bot/config"
	"github.com/VladPetriv/currency_bot/internal/api/fixer"
	"github.com/VladPetriv/currency_bot/internal/api/telegram"
	"github.com/VladPetriv/currency_bot/internal/currency"
	"github.com/VladPetriv/currency_bot/internal/metrics"
	"github.com/VladPetriv/currency_bot/internal/service"
	"github.com/VladPetriv/currency_bot/internal/store"
	"github.com/VladPetriv/currency_bot/pkg/logger"
	"github.com/coocood/freecache"
)

// Run is used to start the application.
func Run(ctx context.Context, cfg *config.Config, logger *logger.Logger) error {
	registry, err := newRegistry(cfg)
	if err != nil {
		return err
	}

	appMetrics := metrics.New()
	if cfg.Metrics.Address != "" {
		go func() {
			logger.Info().Str("address", cfg.Metrics.Address).Msg("start metrics server")

			err := appMetrics.Serve(ctx, cfg.Metrics.Address)
			if err != nil {
				logger.Error().Err(err).Msg("serve metrics")
			}
		}()
	}

	telegramAPI, err := telegram.New(telegram.Options{
		Token:         cfg.Telegram.BotToken,
		UpdatesType:   cfg.Telegram.UpdatesType,
		ServerAddress: cfg.Telegram.SeverAddress,
		WebhookURL:    cfg.Telegram.WebhookURL,
	})
	if err != nil {
		return fmt.Errorf("create telegram api: %w", err)
	}
	defer func() {
		err := telegramAPI.Close()
		if err != nil {
			logger.Error().Err(err).Msg("close telegram api")
		}
	}()

	fixerAPI := fixer.New(fixer.Options{
		APIURL:    cfg.Fixer.APIURL,
		AccessKey: cfg.Fixer.AccessKey,
		Timeout:   cfg.Fixer.Timeout,
	})
	defer fixerAPI.Close()

	apis := service.APIs{
		Messenger:    telegramAPI,
		RatesFetcher: fixerAPI,
	}

	stores := service.Stores{
		Session:  store.NewSession(),
		Throttle: store.NewThrottle(store.ThrottleOptions{Cache: freecache.NewCache(store.DefaultThrottleCacheSize)}),
	}

	services := newServices(cfg, logger, appMetrics, apis, stores, registry, telegram.MarkdownV2{})

	logger.Info().
		Str("updatesType", cfg.Telegram.UpdatesType).
		Int("currencies", len(registry.Definitions())).
		Msg("start listening for updates")

	services.Event.Listen(ctx)

	logger.Info().Int("sessions", stores.Session.Count()).Msg("bot stopped")
	return nil
}

// Convert runs the currency pipeline once against live rates and returns a plain text report.
func Convert(ctx context.Context, cfg *config.Config, logger *logger.Logger, text string) (string, error) {
	registry, err := newRegistry(cfg)
	if err != nil {
		return "", err
	}

	fixerAPI := fixer.New(fixer.Options{
		APIURL:    cfg.Fixer.APIURL,
		AccessKey: cfg.Fixer.AccessKey,
		Timeout:   cfg.Fixer.Timeout,
	})
	defer fixerAPI.Close()

	services := newServices(
		cfg, logger, metrics.New(),
		service.APIs{RatesFetcher: fixerAPI},
		service.Stores{},
		registry,
		currency.PlainMarkup{},
	)

	output, err := services.Currency.Convert(ctx, service.ConvertCurrencyOptions{
		Text:  text,
		Rates: currency.NewRateCache(),
	})
	if err != nil {
		if errors.Is(err, service.ErrNoCurrencyDetected) {
			return "", err
		}

		return "", fmt.Errorf("convert currency: %w", err)
	}

	return output.Report, nil
}

func newRegistry(cfg *config.Config) (*currency.Registry, error) {
	if cfg.Currency.RegistryFile == "" {
		return currency.DefaultRegistry(), nil
	}

	registry, err := currency.LoadRegistry(cfg.Currency.RegistryFile)
	if err != nil {
		return nil, fmt.Errorf("load currency registry: %w", err)
	}

	return registry, nil
}

func newServices(
	cfg *config.Config,
	logger *logger.Logger,
	appMetrics *metrics.Metrics,
	apis service.APIs,
	stores service.Stores,
	registry *currency.Registry,
	markup currency.Markup,
) service.Services {
	var services service.Services

	services.Rate = service.NewRate(service.RateOptions{
		Logger:     logger,
		APIs:       apis,
		Metrics:    appMetrics,
		StaleAfter: cfg.Currency.StaleAfter,
	})
	services.Currency = service.NewCurrency(service.CurrencyOptions{
		Logger:   logger,
		Services: services,
		Metrics:  appMetrics,
		Registry: registry,
		Markup:   markup,
	})
	services.Handler = service.NewHandler(service.HandlerOptions{
		Logger:      logger,
		APIs:        apis,
		Services:    services,
		Stores:      stores,
		Metrics:     appMetrics,
		AdminChatID: cfg.Telegram.AdminChatID,
	})
	services.Event = service.NewEvent(service.EventOptions{
		Logger:           logger,
		APIs:             apis,
		Services:         services,
		Stores:           stores,
		Metrics:          appMetrics,
		AllowedChatIDs:   cfg.Telegram.AllowedChatIDs,
		AdminChatID:      cfg.Telegram.AdminChatID,
		ThrottleInterval: cfg.Telegram.ThrottleInterval,
		WorkersCount:     cfg.Telegram.WorkersCount,
	})

	return services
}
