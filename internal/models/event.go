package models

// Event represents the type of event that occurs during bot interaction
type Event string

const (
	// UnknownEvent represents an unrecognized or unsupported event
	UnknownEvent Event = "unknown"
	// ConvertCurrencyEvent represents the event for converting a mentioned amount
	ConvertCurrencyEvent Event = "currency/convert"
)
