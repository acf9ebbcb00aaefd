package currency

import (
	"regexp"
	"strings"

	"github.com/VladPetriv/currency_bot/internal/models"
	"github.com/VladPetriv/currency_bot/pkg/money"
	"github.com/samber/lo"
	"golang.org/x/text/width"
)

// amountPattern matches a decimal number with "." or "," as separator.
const amountPattern = `(\d+(?:[.,]\d+)?)`

type pattern struct {
	code   string
	regexp *regexp.Regexp
}

// Detector finds the first currency amount mentioned in text.
type Detector struct {
	patterns []pattern
}

// NewDetector compiles one pattern per registry definition, keeping the registry order.
func NewDetector(registry *Registry) *Detector {
	definitions := registry.Definitions()

	patterns := make([]pattern, 0, len(definitions))
	for _, definition := range definitions {
		triggers := lo.Map(definition.Triggers, func(trigger string, _ int) string {
			return regexp.QuoteMeta(width.Narrow.String(trigger))
		})

		// The amount must precede the trigger on the same line: "." does not cross newlines.
		expression := `(?im)` + amountPattern + `.*(?:` + strings.Join(triggers, "|") + `)`

		patterns = append(patterns, pattern{
			code:   definition.Code,
			regexp: regexp.MustCompile(expression),
		})
	}

	return &Detector{patterns: patterns}
}

// Detect returns the amount and currency of the first definition whose pattern matches text.
// An empty result is returned when nothing matches.
func (d *Detector) Detect(text string) models.DetectionResult {
	// Only full-width forms are folded: superscripts, fractions and circled digits stay non-ASCII.
	text = width.Narrow.String(text)

	for _, p := range d.patterns {
		match := p.regexp.FindStringSubmatch(text)
		if len(match) < 2 {
			continue
		}

		value, err := money.NewFromString(strings.ReplaceAll(match[1], ",", "."))
		if err != nil {
			continue
		}

		return models.DetectionResult{
			Currency: p.code,
			Value:    value,
		}
	}

	return models.DetectionResult{
		Currency: "",
		Value:    money.Zero,
	}
}
