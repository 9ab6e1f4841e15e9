package sms

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
)

type noopLogger struct{}

func (noopLogger) Debug(ctx context.Context, arg ...any)                   {}
func (noopLogger) Debugf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Info(ctx context.Context, arg ...any)                    {}
func (noopLogger) Infof(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Warn(ctx context.Context, arg ...any)                    {}
func (noopLogger) Warnf(ctx context.Context, template string, arg ...any)  {}
func (noopLogger) Error(ctx context.Context, arg ...any)                   {}
func (noopLogger) Errorf(ctx context.Context, template string, arg ...any) {}
func (noopLogger) Fatal(ctx context.Context, arg ...any)                   {}
func (noopLogger) Fatalf(ctx context.Context, template string, arg ...any) {}

func newTestClient(t *testing.T, handler http.HandlerFunc) (ISMS, *httptest.Server) {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	client, err := New(noopLogger{}, Config{
		Username: "sandbox-account",
		APIKey:   "test-api-key",
		SenderID: "UJENZI",
		Endpoint: srv.URL,
	})
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}
	t.Cleanup(func() { client.Close() })
	return client, srv
}

func TestSendSuccess(t *testing.T) {
	var gotForm map[string]string
	var gotAPIKey string
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		if err := r.ParseForm(); err != nil {
			t.Errorf("ParseForm() error = %v", err)
		}
		gotForm = map[string]string{
			"username": r.PostFormValue("username"),
			"to":       r.PostFormValue("to"),
			"message":  r.PostFormValue("message"),
			"from":     r.PostFormValue("from"),
		}
		gotAPIKey = r.Header.Get("apiKey")

		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"SMSMessageData":{"Message":"Sent to 2/2 Total Cost: KES 1.6000","Recipients":[
			{"statusCode":101,"number":"+254712345678","status":"Success","cost":"KES 0.8000","messageId":"ATXid_1"},
			{"statusCode":403,"number":"+254798765432","status":"InvalidSenderId","cost":"0","messageId":"None"}
		]}}`))
	})

	out, err := client.Send(context.Background(), []string{"254712345678", "+254798765432"}, "hello")
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}

	if gotForm["username"] != "sandbox-account" {
		t.Errorf("form username = %q", gotForm["username"])
	}
	if gotForm["to"] != "+254712345678,+254798765432" {
		t.Errorf("form to = %q, want comma-joined normalized numbers", gotForm["to"])
	}
	if gotForm["message"] != "hello" {
		t.Errorf("form message = %q", gotForm["message"])
	}
	if gotForm["from"] != "UJENZI" {
		t.Errorf("form from = %q", gotForm["from"])
	}
	if gotAPIKey != "test-api-key" {
		t.Errorf("apiKey header = %q", gotAPIKey)
	}

	if !out.Accepted {
		t.Error("outcome not accepted")
	}
	if len(out.Recipients) != 2 {
		t.Fatalf("got %d recipient results, want 2", len(out.Recipients))
	}
	if !out.Recipients[0].Accepted {
		t.Errorf("status code 101 should count as accepted")
	}
	if out.Recipients[1].Accepted {
		t.Errorf("status code 403 should not count as accepted")
	}
	if len(out.Raw) == 0 {
		t.Error("raw payload not captured")
	}
}

func TestSendNon2xx(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`The supplied authentication is invalid`))
	})

	out, err := client.Send(context.Background(), []string{"+254712345678"}, "hello")
	if !errors.Is(err, ErrGatewayFailure) {
		t.Fatalf("Send() error = %v, want %v", err, ErrGatewayFailure)
	}
	if out.Accepted {
		t.Error("outcome accepted on non-2xx response")
	}
	if len(out.Raw) == 0 {
		t.Error("raw payload not captured on failure")
	}
}

func TestSendEmptyRecipientsArrayIsFailure(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"SMSMessageData":{"Message":"InvalidPhoneNumber","Recipients":[]}}`))
	})

	_, err := client.Send(context.Background(), []string{"+254712345678"}, "hello")
	if !errors.Is(err, ErrGatewayFailure) {
		t.Fatalf("Send() error = %v, want %v on empty Recipients", err, ErrGatewayFailure)
	}
}

func TestSendMalformedBody(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`not json`))
	})

	_, err := client.Send(context.Background(), []string{"+254712345678"}, "hello")
	if !errors.Is(err, ErrGatewayFailure) {
		t.Fatalf("Send() error = %v, want %v on malformed body", err, ErrGatewayFailure)
	}
}

func TestSendNoRecipients(t *testing.T) {
	client, _ := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		t.Error("gateway must not be called with no recipients")
	})

	if _, err := client.Send(context.Background(), nil, "hello"); err != ErrNoRecipients {
		t.Fatalf("Send() error = %v, want %v", err, ErrNoRecipients)
	}
}

func TestNewRequiresCredentials(t *testing.T) {
	if _, err := New(noopLogger{}, Config{Username: "acct"}); err == nil {
		t.Error("New() accepted a missing API key")
	}
	if _, err := New(noopLogger{}, Config{APIKey: "key"}); err == nil {
		t.Error("New() accepted a missing username")
	}
}
