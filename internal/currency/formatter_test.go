package currency_test

import (
	"strings"
	"testing"

	"github.com/VladPetriv/currency_bot/internal/currency"
	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/pkg/money"
	"github.com/stretchr/testify/assert"
)

// testMarkup mimics a markdown dialect: dots are escaped, bold uses "*", code uses "`".
type testMarkup struct{}

func (testMarkup) Escape(text string) string { return strings.ReplaceAll(text, ".", `\.`) }

func (testMarkup) Bold(text string) string { return "*" + text + "*" }

func (testMarkup) Code(text string) string { return "`" + text + "`" }

func TestFormatter_Format(t *testing.T) {
	t.Parallel()

	formatter := currency.NewFormatter(testMarkup{})

	testCases := [...]struct {
		desc     string
		result   models.DetectionResult
		lines    []models.ConversionLine
		expected string
	}{
		{
			desc:   "should pad values to the header width",
			result: models.DetectionResult{Currency: "USD", Value: money.NewFromInt(100)},
			lines: []models.ConversionLine{
				{Symbol: "€", Value: "92"},
				{Symbol: "₽", Value: "9000"},
			},
			expected: "💵 *100 USD *\n\n`€       92`\n`₽     9000`",
		},
		{
			desc:   "should pad to the widest value when it exceeds the header",
			result: models.DetectionResult{Currency: "USD", Value: money.NewFromInt(1)},
			lines: []models.ConversionLine{
				{Symbol: "₽", Value: "123456789"},
				{Symbol: "€", Value: "0.9"},
			},
			expected: "💵 *1 USD *\n\n`₽ 123456789`\n`€       0\\.9`",
		},
		{
			desc:     "should escape the header amount",
			result:   models.DetectionResult{Currency: "EUR", Value: money.NewFromFloat(10.5)},
			expected: "💵 *10\\.5 EUR *\n\n",
		},
	}
	for _, tc := range testCases {
		t.Run(tc.desc, func(t *testing.T) {
			t.Parallel()

			assert.Equal(t, tc.expected, formatter.Format(tc.result, tc.lines))
		})
	}
}

func TestFormatter_IsIdempotent(t *testing.T) {
	t.Parallel()

	formatter := currency.NewFormatter(testMarkup{})
	result := models.DetectionResult{Currency: "RUB", Value: money.NewFromFloat(1500.5)}
	lines := []models.ConversionLine{{Symbol: "$", Value: "16.7"}, {Symbol: "€", Value: "15.4"}}

	assert.Equal(t, formatter.Format(result, lines), formatter.Format(result, lines))
}

func TestPipeline_EndToEnd(t *testing.T) {
	t.Parallel()

	registry := currency.DefaultRegistry()
	table := models.RateTable{
		IsStable: true,
		Data:     map[string]float64{"USD": 1.0, "EUR": 0.92, "RUB": 90.0},
	}

	result := currency.NewDetector(registry).Detect("I paid 100 USD for it")
	assert.Equal(t, "USD", result.Currency)
	assert.Equal(t, "100", result.Value.String())

	lines := currency.NewConverter(registry).Convert(result.Value, result.Currency, table)
	report := currency.NewFormatter(currency.PlainMarkup{}).Format(result, lines)

	assert.Equal(t, "💵 100 USD \n\n€       92\n₽     9000", report)
}
