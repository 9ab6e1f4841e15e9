package alert

import (
	"fmt"
	"unicode/utf8"

	"ujenzi-notify/internal/model"
)

const (
	// MessageHeader is the fixed first line of every outbound alert message.
	MessageHeader = "UjenziIQ Alert"
	// UpdateHeader is the fixed first line of ad-hoc status updates.
	UpdateHeader = "UjenziIQ Update"
	// MaxMessageLength is the single-SMS-segment limit for the basic
	// character set.
	MaxMessageLength = 160
)

// FormatMessage renders the outbound SMS text for an alert. The output is
// always header, project name, category line, body, newline separated.
// Messages over MaxMessageLength are rejected with ErrMessageTooLong and
// never truncated.
func FormatMessage(projectName, category, body string) (string, error) {
	if projectName == "" || body == "" {
		return "", ErrInvalidInput
	}
	if !model.IsValidAlertCategory(category) {
		return "", ErrInvalidInput
	}

	msg := fmt.Sprintf("%s\n%s\nType: %s\n%s", MessageHeader, projectName, category, body)
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return msg, nil
}

// FormatUpdate renders the outbound SMS text for an ad-hoc status update.
// Updates carry no category line. The same single-segment limit applies.
func FormatUpdate(projectName, body string) (string, error) {
	if projectName == "" || body == "" {
		return "", ErrInvalidInput
	}

	msg := fmt.Sprintf("%s\n%s\n%s", UpdateHeader, projectName, body)
	if utf8.RuneCountInString(msg) > MaxMessageLength {
		return "", ErrMessageTooLong
	}
	return msg, nil
}
