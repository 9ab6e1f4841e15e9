package relay

import (
	"encoding/json"
	"time"
)

// SendInput is one relay request. PhoneNumber may arrive without the
// leading "+"; it is prefixed before transmission.
type SendInput struct {
	PhoneNumber string
	Message     string
}

// SendOutput reports a successful relay send.
type SendOutput struct {
	To        string
	Timestamp time.Time
	Response  json.RawMessage
	LogID     string
}
