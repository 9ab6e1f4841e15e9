package sms

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"
)

func (s *implSMS) Close() error {
	if s.client != nil {
		s.client.CloseIdleConnections()
	}
	return nil
}

func (s *implSMS) Send(ctx context.Context, recipients []string, message string) (DeliveryOutcome, error) {
	if len(recipients) == 0 {
		return DeliveryOutcome{}, ErrNoRecipients
	}

	normalized := make([]string, 0, len(recipients))
	for _, r := range recipients {
		n, ok := NormalizeNumber(r)
		if !ok {
			return DeliveryOutcome{}, fmt.Errorf("%w: empty recipient number", ErrGatewayFailure)
		}
		normalized = append(normalized, n)
	}

	form := url.Values{}
	form.Set("username", s.cfg.Username)
	form.Set("to", strings.Join(normalized, ","))
	form.Set("message", message)
	if s.cfg.SenderID != "" {
		form.Set("from", s.cfg.SenderID)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.cfg.Endpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return DeliveryOutcome{}, fmt.Errorf("%w: failed to create request: %v", ErrGatewayFailure, err)
	}
	req.Header.Set("Accept", "application/json")
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	req.Header.Set("apiKey", s.cfg.APIKey)
	req.Header.Set("User-Agent", UserAgent)

	resp, err := s.client.Do(req)
	if err != nil {
		return DeliveryOutcome{}, fmt.Errorf("%w: request failed: %v", ErrGatewayFailure, err)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return DeliveryOutcome{}, fmt.Errorf("%w: failed to read response: %v", ErrGatewayFailure, err)
	}

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return DeliveryOutcome{Raw: body}, fmt.Errorf("%w: gateway returned status %d: %s", ErrGatewayFailure, resp.StatusCode, string(body))
	}

	return s.parseResponse(body)
}

// parseResponse interprets the gateway's JSON acknowledgment. A response
// without a non-empty Recipients array is a failure even on HTTP 2xx.
func (s *implSMS) parseResponse(body []byte) (DeliveryOutcome, error) {
	var gw gatewayResponse
	if err := json.Unmarshal(body, &gw); err != nil {
		return DeliveryOutcome{Raw: body}, fmt.Errorf("%w: malformed response body: %v", ErrGatewayFailure, err)
	}

	if len(gw.SMSMessageData.Recipients) == 0 {
		return DeliveryOutcome{Raw: body}, fmt.Errorf("%w: acknowledgment contains no recipients: %s", ErrGatewayFailure, gw.SMSMessageData.Message)
	}

	results := make([]RecipientResult, len(gw.SMSMessageData.Recipients))
	for i, r := range gw.SMSMessageData.Recipients {
		results[i] = RecipientResult{
			Number:     r.Number,
			Status:     r.Status,
			StatusCode: r.StatusCode,
			Cost:       r.Cost,
			MessageID:  r.MessageID,
			Accepted:   isAcceptedStatusCode(r.StatusCode),
		}
	}

	return DeliveryOutcome{
		Accepted:   true,
		Recipients: results,
		Raw:        body,
	}, nil
}
