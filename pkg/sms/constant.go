package sms

import "time"

const (
	// DefaultEndpoint is the provider's bulk messaging endpoint.
	DefaultEndpoint = "https://api.africastalking.com/version1/messaging"
	// DefaultTimeout bounds one gateway request end-to-end.
	DefaultTimeout = 10 * time.Second

	// UserAgent identifies this service to the gateway.
	UserAgent = "ujenzi-notify/1.0"
)

// Gateway per-recipient status codes that count as accepted:
// 100 Processed, 101 Sent, 102 Queued.
const (
	statusProcessed = 100
	statusSent      = 101
	statusQueued    = 102
)

func isAcceptedStatusCode(code int) bool {
	return code == statusProcessed || code == statusSent || code == statusQueued
}
