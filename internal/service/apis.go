package service

import (
	"context"

	"github.com/VladPetriv/currency_bot/internal/models"
)

// APIs contains all external collaborators.
type APIs struct {
	Messenger    Messenger
	RatesFetcher RatesFetcher
}

// Messenger handles messaging operations between the application and messaging platform.
type Messenger interface {
	// ReadUpdates retrieves new incoming updates/messages from the messaging platform.
	ReadUpdates(result chan Message, errors chan error)
	// SendMessage sends a text message to the specified chat.
	SendMessage(opts SendMessageOptions) error

	// Close closes the underlying connection to the messaging platform.
	Close() error
}

// SendMessageOptions represents options for sending a message.
type SendMessageOptions struct {
	ChatID int64
	Text   string
	// ReplyToMessageID is the message to reply to, zero for a standalone message.
	ReplyToMessageID int
	// Markdown marks Text as already escaped MarkdownV2.
	Markdown bool
}

// Message represents a message that was received from the messaging platform.
type Message interface {
	// GetUpdateID returns the ID of the update that carried the message.
	GetUpdateID() int
	// GetChatID returns the ID of the chat the message was sent to.
	GetChatID() int64
	// GetMessageID returns the ID of the message.
	GetMessageID() int
	// GetText returns the text or the caption of the message.
	GetText() string
	// GetReplyText returns the text or the caption of the message this one replies to.
	GetReplyText() string
	// GetSenderName returns the name of the user who sent the message.
	GetSenderName() string
}

// RatesFetcher fetches the latest rate table from a rates provider.
// A transport failure or a non-200 status is returned as an error.
type RatesFetcher interface {
	FetchRates(ctx context.Context) (*models.RateResponse, error)
}
