package telegram

import (
	"testing"

	"github.com/VladPetriv/currency_bot/pkg/typecast"
	"github.com/mymmrac/telego"
	"github.com/stretchr/testify/assert"
)

func TestUpdate(t *testing.T) {
	t.Parallel()

	type expected struct {
		chatID     int64
		messageID  int
		text       string
		replyText  string
		senderName string
	}

	testCases := [...]struct {
		desc     string
		update   telego.Update
		expected expected
	}{
		{
			desc: "should read plain text message",
			update: telego.Update{
				UpdateID: 10,
				Message: typecast.ToPtr(telego.Message{
					MessageID: 5,
					Chat:      telego.Chat{ID: -100},
					From:      typecast.ToPtr(telego.User{FirstName: "Ann", Username: "ann"}),
					Text:      "/q 10 USD",
				}),
			},
			expected: expected{chatID: -100, messageID: 5, text: "/q 10 USD", senderName: "ann"},
		},
		{
			desc: "should fall back to caption and first name",
			update: telego.Update{
				Message: typecast.ToPtr(telego.Message{
					MessageID: 6,
					Chat:      telego.Chat{ID: 42},
					From:      typecast.ToPtr(telego.User{FirstName: "Bob"}),
					Caption:   "/currency",
					ReplyToMessage: typecast.ToPtr(telego.Message{
						Caption: "lunch was 25 GEL",
					}),
				}),
			},
			expected: expected{chatID: 42, messageID: 6, text: "/currency", replyText: "lunch was 25 GEL", senderName: "Bob"},
		},
		{
			desc: "should prefer reply text over reply caption",
			update: telego.Update{
				Message: typecast.ToPtr(telego.Message{
					Chat: telego.Chat{ID: 1},
					Text: "/q",
					ReplyToMessage: typecast.ToPtr(telego.Message{
						Text:    "100 EUR",
						Caption: "ignored",
					}),
				}),
			},
			expected: expected{chatID: 1, text: "/q", replyText: "100 EUR"},
		},
		{
			desc:   "should tolerate update without message",
			update: telego.Update{UpdateID: 11},
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			update := &Update{update: tc.update}

			assert.Equal(t, tc.update.UpdateID, update.GetUpdateID())
			assert.Equal(t, tc.expected, expected{
				chatID:     update.GetChatID(),
				messageID:  update.GetMessageID(),
				text:       update.GetText(),
				replyText:  update.GetReplyText(),
				senderName: update.GetSenderName(),
			})
		})
	}
}
