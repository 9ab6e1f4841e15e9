package sms

import "context"

// ISMS is the outbound SMS gateway client.
type ISMS interface {
	// Send transmits one message to the given recipients in a single
	// gateway request. Recipients must be non-empty; numbers are
	// normalized to international format before transmission. The
	// returned outcome carries the gateway's per-recipient statuses and
	// the raw response payload. Send performs no retries; retry policy,
	// if any, belongs to the caller.
	Send(ctx context.Context, recipients []string, message string) (DeliveryOutcome, error)
	Close() error
}
