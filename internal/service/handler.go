package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/VladPetriv/currency_bot/internal/metrics"
	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/pkg/errs"
	"github.com/VladPetriv/currency_bot/pkg/logger"
)

type handlerService struct {
	logger      *logger.Logger
	apis        APIs
	services    Services
	stores      Stores
	metrics     *metrics.Metrics
	adminChatID int64
}

var _ HandlerService = (*handlerService)(nil)

// HandlerOptions represents input options for new instance of handler service.
type HandlerOptions struct {
	Logger   *logger.Logger
	APIs     APIs
	Services Services
	Stores   Stores
	Metrics  *metrics.Metrics
	// AdminChatID receives access warnings, zero disables them.
	AdminChatID int64
}

// NewHandler returns new instance of handler service.
func NewHandler(opts HandlerOptions) *handlerService {
	return &handlerService{
		logger:      opts.Logger,
		apis:        opts.APIs,
		services:    opts.Services,
		stores:      opts.Stores,
		metrics:     opts.Metrics,
		adminChatID: opts.AdminChatID,
	}
}

func (h *handlerService) HandleConvertCurrency(ctx context.Context, opts HandleCommandOptions) error {
	logger := h.logger.With().Str("name", "handlerService.HandleConvertCurrency").Logger()
	logger.Debug().Int64("chatID", opts.Msg.GetChatID()).Str("args", opts.Args).Msg("got args")

	// a replied message wins over the command arguments
	text := opts.Msg.GetReplyText()
	if strings.TrimSpace(text) == "" {
		text = opts.Args
	}
	if strings.TrimSpace(text) == "" {
		h.metrics.CommandsTotal.WithLabelValues(string(models.ConvertCurrencyEvent), metrics.CommandEmpty).Inc()
		logger.Info().Msg("nothing to convert")
		return nil
	}

	session := h.stores.Session.GetOrCreate(opts.Msg.GetChatID())

	output, err := h.services.Currency.Convert(ctx, ConvertCurrencyOptions{
		Text:  text,
		Rates: session.Rates,
	})
	if err != nil {
		if errs.IsExpected(err) {
			logger.Info().Err(err).Msg("skip message")
			return nil
		}

		logger.Error().Err(err).Msg("convert currency")
		return fmt.Errorf("convert currency: %w", err)
	}

	err = h.apis.Messenger.SendMessage(SendMessageOptions{
		ChatID:           opts.Msg.GetChatID(),
		Text:             output.Report,
		ReplyToMessageID: opts.Msg.GetMessageID(),
		Markdown:         true,
	})
	if err != nil {
		logger.Error().Err(err).Msg("send conversion report")
		return fmt.Errorf("send conversion report: %w", err)
	}

	h.metrics.CommandsTotal.WithLabelValues(string(models.ConvertCurrencyEvent), metrics.CommandHandled).Inc()
	logger.Info().Str("currency", output.Detection.Currency).Int("lines", len(output.Lines)).Msg("sent conversion report")
	return nil
}

func (h *handlerService) HandleAccessDenied(ctx context.Context, msg Message) error {
	logger := h.logger.With().Str("name", "handlerService.HandleAccessDenied").Logger()
	logger.Debug().Int64("chatID", msg.GetChatID()).Int("updateID", msg.GetUpdateID()).Msg("got args")

	if h.adminChatID == 0 {
		return nil
	}

	err := h.apis.Messenger.SendMessage(SendMessageOptions{
		ChatID: h.adminChatID,
		Text: fmt.Sprintf(
			"Access warning! From %d (sender: %s, update: %d): %s",
			msg.GetChatID(), msg.GetSenderName(), msg.GetUpdateID(), msg.GetText(),
		),
	})
	if err != nil {
		logger.Error().Err(err).Msg("send access warning")
		return fmt.Errorf("send access warning: %w", err)
	}

	return nil
}
