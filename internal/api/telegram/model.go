package telegram

import (
	"github.com/VladPetriv/currency_bot/pkg/typecast"
	"github.com/mymmrac/telego"
)

// Update represents the update received from the Telegram.
type Update struct {
	update telego.Update
}

// GetUpdateID returns the ID of the update.
func (t *Update) GetUpdateID() int {
	return t.update.UpdateID
}

// GetChatID returns the ID of the chat the message was sent to.
func (t *Update) GetChatID() int64 {
	return typecast.FromPtr(t.update.Message).Chat.ID
}

// GetMessageID returns the ID of the message.
func (t *Update) GetMessageID() int {
	return typecast.FromPtr(t.update.Message).MessageID
}

// GetText returns the text of the message, or its caption for media messages.
func (t *Update) GetText() string {
	return messageText(t.update.Message)
}

// GetReplyText returns the text of the message this one replies to.
func (t *Update) GetReplyText() string {
	return messageText(typecast.FromPtr(t.update.Message).ReplyToMessage)
}

// GetSenderName returns the name of the user who sent the message.
func (t *Update) GetSenderName() string {
	sender := typecast.FromPtr(typecast.FromPtr(t.update.Message).From)
	if sender.Username != "" {
		return sender.Username
	}

	return sender.FirstName
}

func messageText(message *telego.Message) string {
	text := typecast.FromPtr(message).Text
	if text != "" {
		return text
	}

	return typecast.FromPtr(message).Caption
}
