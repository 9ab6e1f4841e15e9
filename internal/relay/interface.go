package relay

import "context"

// UseCase relays a single inbound SMS request to the gateway. Used by
// trusted internal callers (scheduled functions, back-office tooling),
// not by end users.
type UseCase interface {
	Send(ctx context.Context, ip SendInput) (SendOutput, error)
}
