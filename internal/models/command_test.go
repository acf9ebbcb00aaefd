package models_test

import (
	"testing"

	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/stretchr/testify/assert"
)

func TestParseCommand(t *testing.T) {
	t.Parallel()

	testCases := [...]struct {
		desc          string
		text          string
		expected      models.Command
		expectedOK    bool
		expectedEvent models.Event
	}{
		{
			desc:          "should parse command without args",
			text:          "/currency",
			expected:      models.Command{Name: "/currency"},
			expectedOK:    true,
			expectedEvent: models.ConvertCurrencyEvent,
		},
		{
			desc:          "should parse short command with args",
			text:          "/q 100 USD",
			expected:      models.Command{Name: "/q", Args: "100 USD"},
			expectedOK:    true,
			expectedEvent: models.ConvertCurrencyEvent,
		},
		{
			desc:          "should strip bot mention",
			text:          "/q@spaghetti_bot 5 евро",
			expected:      models.Command{Name: "/q", Args: "5 евро"},
			expectedOK:    true,
			expectedEvent: models.ConvertCurrencyEvent,
		},
		{
			desc:          "should keep multi-line args",
			text:          "/currency\nfirst line\n10 USD",
			expected:      models.Command{Name: "/currency", Args: "first line\n10 USD"},
			expectedOK:    true,
			expectedEvent: models.ConvertCurrencyEvent,
		},
		{
			desc:          "should map unknown command to unknown event",
			text:          "/start",
			expected:      models.Command{Name: "/start"},
			expectedOK:    true,
			expectedEvent: models.UnknownEvent,
		},
		{
			desc: "should ignore plain text",
			text: "100 USD",
		},
		{
			desc: "should ignore bare slash",
			text: "/",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			actual, ok := models.ParseCommand(tc.text)
			assert.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expected, actual)
			if ok {
				assert.Equal(t, tc.expectedEvent, actual.Event())
			}
		})
	}
}
