package telegram

import (
	"strings"

	"github.com/VladPetriv/currency_bot/internal/currency"
)

var markdownV2Replacer = strings.NewReplacer(
	`\`, `\\`,
	"_", `\_`,
	"*", `\*`,
	"[", `\[`,
	"]", `\]`,
	"(", `\(`,
	")", `\)`,
	"~", `\~`,
	"`", "\\`",
	">", `\>`,
	"#", `\#`,
	"+", `\+`,
	"-", `\-`,
	"=", `\=`,
	"|", `\|`,
	"{", `\{`,
	"}", `\}`,
	".", `\.`,
	"!", `\!`,
)

// MarkdownV2 renders reports with Telegram MarkdownV2 entities.
type MarkdownV2 struct{}

var _ currency.Markup = MarkdownV2{}

// Escape escapes every character reserved by MarkdownV2.
func (MarkdownV2) Escape(text string) string {
	return markdownV2Replacer.Replace(text)
}

func (MarkdownV2) Bold(text string) string {
	return "*" + text + "*"
}

func (MarkdownV2) Code(text string) string {
	return "`" + text + "`"
}
