package discord

import (
	"errors"
	"time"
)

const (
	webhookURLTemplate = "https://discord.com/api/webhooks/%s/%s"

	// DefaultTimeout bounds one webhook request.
	DefaultTimeout = 10 * time.Second
	// DefaultUsername is the display name for webhook messages.
	DefaultUsername = "UjenziIQ Notify"
	// UserAgent identifies this service to Discord.
	UserAgent = "ujenzi-notify/1.0"

	// MaxTitleLen and MaxDescriptionLen are Discord embed limits.
	MaxTitleLen       = 256
	MaxDescriptionLen = 4096

	// Embed accent colors.
	ColorInfo    = 0x3498DB
	ColorWarning = 0xF1C40F
	ColorError   = 0xE74C3C
)

var errWebhookRequired = errors.New("discord webhook id and token are required")
