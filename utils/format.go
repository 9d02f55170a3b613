package utils

import (
	"fmt"
	"time"
)

// MessageType is a custom type used as a placeholder for various message types.
type MessageType int

// The message types used across the CLI application.
const (
	DefaultMessage MessageType = iota
	SuccessMessage
	ErrorMessage
	StatusMessage
)

// Colors used across the CLI application.
const (
	DefaultColor = "\x1b[0m"
	StatusColor  = "\x1b[36m"
	SuccessColor = "\x1b[32m"
	ErrorColor   = "\x1b[31m"
)

var messageColors = map[MessageType]string{
	DefaultMessage: DefaultColor,
	SuccessMessage: SuccessColor,
	ErrorMessage:   ErrorColor,
	StatusMessage:  StatusColor,
}

// DecorateText shows the message types in different colors.
func DecorateText(s string, msgType MessageType) string {
	col, ok := messageColors[msgType]
	if !ok {
		return s
	}
	return col + s + DefaultColor
}

// FormatTime formats a time.Duration into a human readable value, e.g. "1h 2m 3.45s".
func FormatTime(d time.Duration) string {
	const day = 24 * time.Hour

	secs := (d % time.Minute).Seconds()
	mins := int64(d/time.Minute) % 60
	hours := int64(d/time.Hour) % 24
	days := int64(d / day)

	switch {
	case d < time.Minute:
		return fmt.Sprintf("%.2fs", secs)
	case d < time.Hour:
		return fmt.Sprintf("%dm %.2fs", mins, secs)
	case d < day:
		return fmt.Sprintf("%dh %dm %.2fs", hours, mins, secs)
	}
	return fmt.Sprintf("%dd %dh %dm %.2fs", days, hours, mins, secs)
}
