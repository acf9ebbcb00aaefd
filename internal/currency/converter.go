package currency

import (
	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/pkg/money"
)

// roundingEpsilon is added before rounding to one decimal place,
// so values stored just below a .x5 boundary round up consistently.
var roundingEpsilon = money.NewFromFloat(1e-12)

// Converter computes cross-rate conversions of a detected amount.
type Converter struct {
	registry *Registry
}

// NewConverter creates a new converter bound to registry.
func NewConverter(registry *Registry) *Converter {
	return &Converter{registry: registry}
}

// Convert returns one line per displayed currency other than from.
// A currency that belongs to no group gets no conversions. Otherwise every group is
// walked in order, and targets without a rate in table are skipped.
func (c *Converter) Convert(amount money.Money, from string, table models.RateTable) []models.ConversionLine {
	if _, ok := c.registry.GroupOf(from); !ok {
		return nil
	}

	selfRate, ok := table.Rate(from)
	if !ok {
		return nil
	}

	var lines []models.ConversionLine
	for _, group := range c.registry.Groups() {
		for _, code := range group.Codes {
			if code == from {
				continue
			}

			exchangeRate, ok := table.Rate(code)
			if !ok {
				continue
			}

			definition, ok := c.registry.Lookup(code)
			if !ok {
				continue
			}

			exchangeValue := amount
			exchangeValue.Div(money.NewFromFloat(selfRate))
			exchangeValue.Mul(money.NewFromFloat(exchangeRate))

			lines = append(lines, models.ConversionLine{
				Symbol: definition.Symbol,
				Value:  renderValue(exchangeValue, definition.DropLimit),
			})
		}
	}

	return lines
}

// renderValue applies the drop limit policy: whole units strictly above the limit,
// one decimal place otherwise, two fixed places when rounding would show zero.
func renderValue(value, dropLimit money.Money) string {
	var rounded money.Money
	if value.GreaterThan(dropLimit) {
		rounded = value.Round(0)
	} else {
		nudged := value
		nudged.Inc(roundingEpsilon)
		rounded = nudged.Round(1)
	}

	if rounded.IsZero() {
		return value.StringFixed()
	}

	return rounded.String()
}
