package alert

import "errors"

var (
	// ErrUnauthorized is returned when the actor may not dispatch alerts.
	// Nothing is persisted.
	ErrUnauthorized = errors.New("actor is not allowed to dispatch alerts")
	// ErrInvalidInput is returned for missing or malformed fields.
	// Nothing is persisted.
	ErrInvalidInput = errors.New("invalid alert input")
	// ErrMessageTooLong is returned when the rendered message exceeds a
	// single SMS segment. The message is never truncated.
	ErrMessageTooLong = errors.New("rendered message exceeds a single SMS segment")
	// ErrProjectNotFound is returned when the referenced project does not
	// exist. Project existence is checked before the alert is persisted.
	ErrProjectNotFound = errors.New("project not found")
	// ErrAlertNotFound is returned when the requested alert does not exist.
	ErrAlertNotFound = errors.New("alert not found")
)
