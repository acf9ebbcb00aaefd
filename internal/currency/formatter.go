package currency

import (
	"strings"
	"unicode/utf8"

	"github.com/VladPetriv/currency_bot/internal/models"
)

// headerIcon opens every report.
const headerIcon = "💵"

// Markup escapes and decorates text for the delivery channel.
type Markup interface {
	// Escape escapes characters that are special in the markup dialect.
	Escape(text string) string
	// Bold wraps already escaped text in a bold marker.
	Bold(text string) string
	// Code wraps already escaped text in a fixed-width marker.
	Code(text string) string
}

// Formatter renders a detection and its conversions as an aligned report.
type Formatter struct {
	markup Markup
}

// NewFormatter creates a new formatter that renders with markup.
func NewFormatter(markup Markup) *Formatter {
	return &Formatter{markup: markup}
}

// Format renders the header line followed by one fixed-width line per conversion.
// Values are left-padded to the width of the widest of "amount code" plus the symbol
// column and every converted value.
func (f *Formatter) Format(result models.DetectionResult, lines []models.ConversionLine) string {
	amount := result.Value.String()

	width := utf8.RuneCountInString(amount) + utf8.RuneCountInString(result.Currency) + 2
	for _, line := range lines {
		width = max(width, utf8.RuneCountInString(line.Value))
	}

	var out strings.Builder
	out.WriteString(headerIcon + " ")
	out.WriteString(f.markup.Bold(f.markup.Escape(amount+" "+result.Currency) + " "))
	out.WriteString("\n\n")

	for index, line := range lines {
		if index > 0 {
			out.WriteString("\n")
		}

		out.WriteString(f.markup.Code(line.Symbol + " " + f.markup.Escape(padLeft(line.Value, width))))
	}

	return out.String()
}

func padLeft(value string, width int) string {
	padding := width - utf8.RuneCountInString(value)
	if padding <= 0 {
		return value
	}

	return strings.Repeat(" ", padding) + value
}

// PlainMarkup renders without any markup, for terminals and logs.
type PlainMarkup struct{}

var _ Markup = PlainMarkup{}

func (PlainMarkup) Escape(text string) string { return text }

func (PlainMarkup) Bold(text string) string { return text }

func (PlainMarkup) Code(text string) string { return text }
