package models

import "strings"

// Commands that we can received from bot.
const (
	// BotCurrencyCommand represents the command to convert a mentioned amount
	BotCurrencyCommand string = "/currency"
	// BotShortCurrencyCommand is a short alias of BotCurrencyCommand
	BotShortCurrencyCommand string = "/q"
)

// CommandToEvent maps commands to their corresponding events
var CommandToEvent = map[string]Event{
	BotCurrencyCommand:      ConvertCurrencyEvent,
	BotShortCurrencyCommand: ConvertCurrencyEvent,
}

// Command is a bot command parsed from message text.
type Command struct {
	Name string
	Args string
}

// ParseCommand splits "/name@bot args" into its name and arguments.
// It returns false when text does not start with a command.
func ParseCommand(text string) (Command, bool) {
	text = strings.TrimSpace(text)
	if !strings.HasPrefix(text, "/") {
		return Command{}, false
	}

	name, args, _ := strings.Cut(text, " ")
	if newlineIndex := strings.IndexByte(name, '\n'); newlineIndex >= 0 {
		name, args = text[:newlineIndex], text[newlineIndex+1:]
	}

	name, _, _ = strings.Cut(name, "@")
	if name == "/" {
		return Command{}, false
	}

	return Command{
		Name: strings.ToLower(name),
		Args: strings.TrimSpace(args),
	}, true
}

// Event returns the event the command triggers.
func (c Command) Event() Event {
	event, ok := CommandToEvent[c.Name]
	if !ok {
		return UnknownEvent
	}

	return event
}
