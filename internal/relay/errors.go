package relay

import "errors"

var (
	// ErrInvalidInput is returned for a missing phone number or message.
	ErrInvalidInput = errors.New("phone number and message are required")
	// ErrSendFailed is returned when the gateway rejects or fails the send.
	// The attempt is still recorded in the delivery log.
	ErrSendFailed = errors.New("gateway send failed")
)
