package sms

import "errors"

var (
	// ErrNoRecipients is returned when Send is called with an empty
	// recipient list. Callers are expected to detect the empty set
	// before invoking the gateway.
	ErrNoRecipients = errors.New("no recipients provided")
	// ErrGatewayFailure is returned when the gateway call fails or the
	// response cannot be interpreted as an acknowledgment.
	ErrGatewayFailure = errors.New("sms gateway failure")

	errCredentialsRequired = errors.New("sms gateway username and api key are required")
)
