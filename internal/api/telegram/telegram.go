package telegram

import (
	"fmt"
	"sync"

	"github.com/VladPetriv/currency_bot/internal/service"
	"github.com/fasthttp/router"
	"github.com/mymmrac/telego"
	"github.com/mymmrac/telego/telegoutil"
	"github.com/valyala/fasthttp"
)

// Supported ways of receiving updates.
const (
	UpdatesTypeWebhook = "webhook"
	UpdatesTypePolling = "polling"
)

type telegramMessenger struct {
	api         *telego.Bot
	updatesType string
	srvAddr     string
	webhookURL  string

	done      chan struct{}
	closeOnce sync.Once
}

var _ service.Messenger = (*telegramMessenger)(nil)

// Options represents options that required for creating new instance of telegram API.
type Options struct {
	// Token represents telegram bot token.
	Token string
	// UpdatesType represents a way we'll receive updates from Telegram. (webhook | polling)
	UpdatesType string

	// ServerAddress represents an address on which we'll start a server. (Required for webhook updates type)
	ServerAddress string
	// WebhookURL represents an url to which telegram will send updates. (Required for webhook updates type)
	WebhookURL string

	// APIServer overrides the Bot API address, https://api.telegram.org by default.
	APIServer string
}

// New creates a new instance of telegram API.
func New(opts Options) (*telegramMessenger, error) {
	botOptions := []telego.BotOption{telego.WithDefaultLogger(false, true)}
	if opts.APIServer != "" {
		botOptions = append(botOptions, telego.WithAPIServer(opts.APIServer))
	}

	bot, err := telego.NewBot(opts.Token, botOptions...)
	if err != nil {
		return nil, fmt.Errorf("init bot instance: %w", err)
	}

	if opts.UpdatesType == UpdatesTypeWebhook {
		err := bot.SetWebhook(&telego.SetWebhookParams{
			URL: opts.WebhookURL + "/bot",
		})
		if err != nil {
			return nil, fmt.Errorf("set webhook url: %w", err)
		}
	}

	return &telegramMessenger{
		api:         bot,
		updatesType: opts.UpdatesType,
		srvAddr:     opts.ServerAddress,
		webhookURL:  opts.WebhookURL,
		done:        make(chan struct{}),
	}, nil
}

func (t *telegramMessenger) ReadUpdates(result chan service.Message, errors chan error) {
	var (
		updates <-chan telego.Update
		err     error
	)

	switch t.updatesType {
	case UpdatesTypeWebhook:
		updates, err = t.api.UpdatesViaWebhook("/bot",
			telego.WithWebhookServer(telego.FastHTTPWebhookServer{
				Logger: t.api.Logger(),
				Server: &fasthttp.Server{},
				Router: router.New(),
			}),
		)
		if err != nil {
			t.sendError(errors, fmt.Errorf("register webhook telegram updates receiver: %w", err))

			return
		}

		go func() {
			err := t.api.StartWebhook(t.srvAddr)
			if err != nil {
				t.sendError(errors, fmt.Errorf("start webhook: %w", err))
			}
		}()
	case UpdatesTypePolling:
		updates, err = t.api.UpdatesViaLongPolling(nil)
		if err != nil {
			t.sendError(errors, fmt.Errorf("register long polling telegram updates receiver: %w", err))

			return
		}

	default:
		t.sendError(errors, fmt.Errorf("unknown updates type: %s", t.updatesType))

		return
	}

	for {
		select {
		case <-t.done:
			return
		case update, ok := <-updates:
			if !ok {
				return
			}
			if update.Message == nil {
				continue
			}

			select {
			case result <- &Update{update: update}:
			case <-t.done:
				return
			}
		}
	}
}

// sendError gives up once the messenger is closed and nobody reads errors anymore.
func (t *telegramMessenger) sendError(errors chan error, err error) {
	select {
	case errors <- err:
	case <-t.done:
	}
}

func (t *telegramMessenger) Close() error {
	t.closeOnce.Do(func() {
		close(t.done)
	})

	switch t.updatesType {
	case UpdatesTypeWebhook:
		return t.api.StopWebhook()
	case UpdatesTypePolling:
		t.api.StopLongPolling()
	}

	return nil
}

func (t *telegramMessenger) SendMessage(opts service.SendMessageOptions) error {
	message := telegoutil.Message(telegoutil.ID(opts.ChatID), opts.Text)
	if opts.Markdown {
		message.ParseMode = telego.ModeMarkdownV2
	}
	if opts.ReplyToMessageID != 0 {
		message.ReplyToMessageID = opts.ReplyToMessageID
		message.AllowSendingWithoutReply = true
	}

	_, err := t.api.SendMessage(message)
	if err != nil {
		return fmt.Errorf("send message to chat %d: %w", opts.ChatID, err)
	}

	return nil
}
