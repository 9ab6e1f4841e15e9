package discord

import "context"

// IDiscord posts operational diagnostics to a Discord webhook.
// Delivery is best-effort; failures are returned, never retried here.
type IDiscord interface {
	SendEmbed(ctx context.Context, options MessageOptions) error
	SendError(ctx context.Context, title, description string, err error) error
	SendWarning(ctx context.Context, title, description string) error
	Close() error
}
