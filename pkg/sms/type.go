package sms

import (
	"encoding/json"
	"net/http"
	"time"

	"ujenzi-notify/pkg/log"
)

// Config holds the gateway account and endpoint configuration. The
// credential pair is always supplied through process configuration.
type Config struct {
	Username string
	APIKey   string
	SenderID string // optional short-code for the "from" field
	Endpoint string
	Timeout  time.Duration
}

// RecipientResult is the gateway's acknowledgment for one recipient.
type RecipientResult struct {
	Number     string
	Status     string
	StatusCode int
	Cost       string
	MessageID  string
	Accepted   bool
}

// DeliveryOutcome is the structured result of one Send call.
type DeliveryOutcome struct {
	// Accepted is true when the gateway returned a well-formed
	// acknowledgment with at least one recipient entry.
	Accepted   bool
	Recipients []RecipientResult
	Raw        json.RawMessage
}

// gatewayResponse mirrors the provider's JSON response body.
type gatewayResponse struct {
	SMSMessageData struct {
		Message    string `json:"Message"`
		Recipients []struct {
			StatusCode int    `json:"statusCode"`
			Number     string `json:"number"`
			Status     string `json:"status"`
			Cost       string `json:"cost"`
			MessageID  string `json:"messageId"`
		} `json:"Recipients"`
	} `json:"SMSMessageData"`
}

// implSMS implements ISMS.
type implSMS struct {
	l      log.Logger
	cfg    Config
	client *http.Client
}
