package service

import (
	"context"
	"fmt"
	"runtime/debug"
	"strconv"
	"time"

	"github.com/VladPetriv/currency_bot/internal/metrics"
	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/pkg/logger"
	"github.com/VladPetriv/currency_bot/pkg/worker"
	"github.com/google/uuid"
	"github.com/samber/lo"
)

// DefaultThrottleInterval is the minimal pause between two hits of a command in one chat.
const DefaultThrottleInterval = time.Second

type eventService struct {
	logger           *logger.Logger
	apis             APIs
	services         Services
	stores           Stores
	metrics          *metrics.Metrics
	allowedChatIDs   []int64
	adminChatID      int64
	throttleInterval time.Duration
	workersCount     int
}

var _ EventService = (*eventService)(nil)

// EventOptions represents an input options for creating new instance of event service.
type EventOptions struct {
	Logger   *logger.Logger
	APIs     APIs
	Services Services
	Stores   Stores
	Metrics  *metrics.Metrics
	// AllowedChatIDs limits the chats the bot answers in, empty allows every chat.
	AllowedChatIDs   []int64
	AdminChatID      int64
	ThrottleInterval time.Duration
	WorkersCount     int
}

// NewEvent returns new instance of event service.
func NewEvent(opts EventOptions) *eventService {
	throttleInterval := opts.ThrottleInterval
	if throttleInterval <= 0 {
		throttleInterval = DefaultThrottleInterval
	}

	return &eventService{
		logger:           opts.Logger,
		apis:             opts.APIs,
		services:         opts.Services,
		stores:           opts.Stores,
		metrics:          opts.Metrics,
		allowedChatIDs:   opts.AllowedChatIDs,
		adminChatID:      opts.AdminChatID,
		throttleInterval: throttleInterval,
		workersCount:     opts.WorkersCount,
	}
}

func (e *eventService) Listen(ctx context.Context) {
	logger := e.logger.With().Str("name", "eventService.Listen").Logger()

	updatesCH := make(chan Message)
	errorsCH := make(chan error)

	pool := worker.NewPool(e.workersCount, e.handleUpdate, e.logger)
	pool.Start(ctx)
	defer pool.Stop()

	go e.apis.Messenger.ReadUpdates(updatesCH, errorsCH)

	for {
		select {
		case <-ctx.Done():
			logger.Info().Msg("stop listening for updates")
			return
		case msg := <-updatesCH:
			pool.AddJob(ctx, strconv.Itoa(msg.GetUpdateID()), msg)
		case err := <-errorsCH:
			logger.Error().Err(err).Msg("read updates")
		}
	}
}

func (e *eventService) handleUpdate(ctx context.Context, _ string, msg Message) (err error) {
	logger := e.logger.With().
		Str("name", "eventService.handleUpdate").
		Str("requestID", uuid.NewString()).
		Int("updateID", msg.GetUpdateID()).
		Int64("chatID", msg.GetChatID()).
		Logger()

	defer func() {
		if r := recover(); r != nil {
			logger.Error().
				Any("panic", r).
				Str("stack", string(debug.Stack())).
				Msg("recovered from panic while processing bot update")

			err = fmt.Errorf("panic while processing update %d: %v", msg.GetUpdateID(), r)
		}
	}()

	if !e.isAllowed(msg.GetChatID()) {
		logger.Debug().Msg("skip message from foreign chat")
		e.metrics.CommandsTotal.WithLabelValues(string(models.UnknownEvent), metrics.CommandDenied).Inc()

		return e.services.Handler.HandleAccessDenied(ctx, msg)
	}

	command, ok := models.ParseCommand(msg.GetText())
	if !ok {
		return nil
	}

	event := command.Event()
	if event == models.UnknownEvent {
		logger.Debug().Str("command", command.Name).Msg("skip unknown command")
		return nil
	}

	throttled, err := e.stores.Throttle.Hit(fmt.Sprintf("%d:%s", msg.GetChatID(), event), e.throttleInterval)
	if err != nil {
		logger.Error().Err(err).Msg("check command throttle")
		return fmt.Errorf("check command throttle: %w", err)
	}
	if throttled {
		logger.Debug().Str("event", string(event)).Msg("skip throttled command")
		e.metrics.CommandsTotal.WithLabelValues(string(event), metrics.CommandThrottled).Inc()

		return nil
	}

	logger.Info().Str("event", string(event)).Str("sender", msg.GetSenderName()).Msg("react on event")

	switch event {
	case models.ConvertCurrencyEvent:
		return e.services.Handler.HandleConvertCurrency(ctx, HandleCommandOptions{
			Msg:  msg,
			Args: command.Args,
		})
	default:
		return nil
	}
}

func (e *eventService) isAllowed(chatID int64) bool {
	if len(e.allowedChatIDs) == 0 {
		return true
	}

	return chatID == e.adminChatID || lo.Contains(e.allowedChatIDs, chatID)
}
