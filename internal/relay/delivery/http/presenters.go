package http

import (
	"encoding/json"
	"time"

	"ujenzi-notify/internal/relay"
)

// The relay endpoint keeps its historical response shape instead of the
// standard envelope; internal callers depend on these exact fields.

type sendReq struct {
	PhoneNumber string `json:"phoneNumber"`
	Message     string `json:"message"`
}

func (r sendReq) toInput() relay.SendInput {
	return relay.SendInput{
		PhoneNumber: r.PhoneNumber,
		Message:     r.Message,
	}
}

type sendDetails struct {
	To        string          `json:"to"`
	Timestamp string          `json:"timestamp"`
	Response  json.RawMessage `json:"response,omitempty"`
	LogID     string          `json:"logId"`
}

type sendResp struct {
	Success bool        `json:"success"`
	Message string      `json:"message"`
	Details sendDetails `json:"details"`
}

func newSendResp(o relay.SendOutput) sendResp {
	return sendResp{
		Success: true,
		Message: "SMS sent successfully",
		Details: sendDetails{
			To:        o.To,
			Timestamp: o.Timestamp.Format(time.RFC3339),
			Response:  o.Response,
			LogID:     o.LogID,
		},
	}
}

type sendErrResp struct {
	Success   bool   `json:"success"`
	Error     string `json:"error"`
	Timestamp string `json:"timestamp"`
}

func newSendErrResp(err error) sendErrResp {
	return sendErrResp{
		Success:   false,
		Error:     err.Error(),
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
