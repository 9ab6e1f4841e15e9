package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	deliveryRepo "ujenzi-notify/internal/deliverylog/repository"
	"ujenzi-notify/internal/model"
	"ujenzi-notify/internal/relay"
	"ujenzi-notify/pkg/sms"
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

type fakeDeliveryRepo struct {
	created   []deliveryRepo.CreateOptions
	createErr error
}

func (f *fakeDeliveryRepo) Create(ctx context.Context, opts deliveryRepo.CreateOptions) (model.DeliveryAttempt, error) {
	if f.createErr != nil {
		return model.DeliveryAttempt{}, f.createErr
	}
	f.created = append(f.created, opts)
	return model.DeliveryAttempt{ID: "attempt-1"}, nil
}

func (f *fakeDeliveryRepo) Recent(ctx context.Context, opts deliveryRepo.RecentOptions) ([]model.DeliveryAttempt, error) {
	return nil, nil
}

type fakeSMS struct {
	calls   [][]string
	outcome sms.DeliveryOutcome
	err     error
}

func (f *fakeSMS) Send(ctx context.Context, recipients []string, message string) (sms.DeliveryOutcome, error) {
	f.calls = append(f.calls, recipients)
	if f.err != nil {
		return sms.DeliveryOutcome{}, f.err
	}
	return f.outcome, nil
}

func (f *fakeSMS) Close() error { return nil }

func TestSendPrefixesBareNumber(t *testing.T) {
	deliveries := &fakeDeliveryRepo{}
	gateway := &fakeSMS{outcome: sms.DeliveryOutcome{
		Accepted: true,
		Recipients: []sms.RecipientResult{
			{Number: "+254712345678", Status: "Success", StatusCode: 101, Accepted: true},
		},
		Raw: json.RawMessage(`{"SMSMessageData":{"Message":"Sent"}}`),
	}}
	uc := New(noopLogger{}, deliveries, gateway)

	o, err := uc.Send(context.Background(), relay.SendInput{
		PhoneNumber: "254712345678",
		Message:     "Site inspection at 10am",
	})
	if err != nil {
		t.Fatalf("Send() error = %v", err)
	}
	if o.To != "+254712345678" {
		t.Errorf("Send() to = %q, want +254712345678", o.To)
	}
	if o.LogID != "attempt-1" {
		t.Errorf("Send() log ID = %q, want attempt-1", o.LogID)
	}
	if len(gateway.calls) != 1 || gateway.calls[0][0] != "+254712345678" {
		t.Errorf("gateway recipients = %v, want [+254712345678]", gateway.calls)
	}
	if len(deliveries.created) != 1 {
		t.Fatalf("recorded %d delivery attempts, want 1", len(deliveries.created))
	}
	if deliveries.created[0].AlertID != nil {
		t.Errorf("relay attempt should carry no alert reference")
	}
	if deliveries.created[0].Status != model.DeliveryStatusDelivered {
		t.Errorf("attempt status = %q, want %q", deliveries.created[0].Status, model.DeliveryStatusDelivered)
	}
}

func TestSendInvalidInput(t *testing.T) {
	uc := New(noopLogger{}, &fakeDeliveryRepo{}, &fakeSMS{})

	if _, err := uc.Send(context.Background(), relay.SendInput{Message: "hi"}); err != relay.ErrInvalidInput {
		t.Errorf("Send() missing number error = %v, want %v", err, relay.ErrInvalidInput)
	}
	if _, err := uc.Send(context.Background(), relay.SendInput{PhoneNumber: "+254712345678"}); err != relay.ErrInvalidInput {
		t.Errorf("Send() missing message error = %v, want %v", err, relay.ErrInvalidInput)
	}
}

func TestSendGatewayFailureStillLogged(t *testing.T) {
	deliveries := &fakeDeliveryRepo{}
	gateway := &fakeSMS{err: errors.New("gateway unreachable")}
	uc := New(noopLogger{}, deliveries, gateway)

	_, err := uc.Send(context.Background(), relay.SendInput{
		PhoneNumber: "+254712345678",
		Message:     "hello",
	})
	if err != relay.ErrSendFailed {
		t.Fatalf("Send() error = %v, want %v", err, relay.ErrSendFailed)
	}
	if len(deliveries.created) != 1 {
		t.Fatalf("recorded %d delivery attempts, want 1", len(deliveries.created))
	}
	attempt := deliveries.created[0]
	if attempt.Status != model.DeliveryStatusFailed {
		t.Errorf("attempt status = %q, want %q", attempt.Status, model.DeliveryStatusFailed)
	}
	if attempt.ErrorMessage == nil || *attempt.ErrorMessage != "gateway unreachable" {
		t.Errorf("attempt error message = %v, want gateway unreachable", attempt.ErrorMessage)
	}
}
