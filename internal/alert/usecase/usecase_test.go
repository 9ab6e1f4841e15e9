package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"ujenzi-notify/internal/alert"
	alertRepo "ujenzi-notify/internal/alert/repository"
	deliveryRepo "ujenzi-notify/internal/deliverylog/repository"
	"ujenzi-notify/internal/model"
	projectRepo "ujenzi-notify/internal/project/repository"
	"ujenzi-notify/pkg/paginator"
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

type fakeProjectRepo struct {
	projects     map[string]model.Project
	stakeholders map[string]model.Stakeholder
	listErr      error
}

func (f *fakeProjectRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	p, ok := f.projects[id]
	if !ok {
		return model.Project{}, projectRepo.ErrNotFound
	}
	return p, nil
}

func (f *fakeProjectRepo) Get(ctx context.Context, sc model.Scope, opts projectRepo.GetOptions) ([]model.Project, paginator.Paginator, error) {
	return nil, paginator.Paginator{}, nil
}

func (f *fakeProjectRepo) ListStakeholders(ctx context.Context, sc model.Scope, ids []string) ([]model.Stakeholder, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	var res []model.Stakeholder
	for _, id := range ids {
		if s, ok := f.stakeholders[id]; ok {
			res = append(res, s)
		}
	}
	return res, nil
}

type fakeAlertRepo struct {
	created   []model.Alert
	createErr error
}

func (f *fakeAlertRepo) Create(ctx context.Context, sc model.Scope, opts alertRepo.CreateOptions) (model.Alert, error) {
	if f.createErr != nil {
		return model.Alert{}, f.createErr
	}
	a := model.Alert{
		ID:           "alert-1",
		ProjectID:    opts.ProjectID,
		Category:     opts.Category,
		Body:         opts.Body,
		RecipientIDs: opts.RecipientIDs,
		CreatedBy:    opts.CreatedBy,
		CreatorRole:  opts.CreatorRole,
	}
	f.created = append(f.created, a)
	return a, nil
}

func (f *fakeAlertRepo) Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	for _, a := range f.created {
		if a.ID == id {
			return a, nil
		}
	}
	return model.Alert{}, alertRepo.ErrNotFound
}

func (f *fakeAlertRepo) Get(ctx context.Context, sc model.Scope, opts alertRepo.GetOptions) ([]model.Alert, paginator.Paginator, error) {
	return f.created, paginator.Paginator{}, nil
}

func (f *fakeAlertRepo) MarkRead(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	for i, a := range f.created {
		if a.ID == id {
			f.created[i].IsRead = true
			return f.created[i], nil
		}
	}
	return model.Alert{}, alertRepo.ErrNotFound
}

type fakeDeliveryRepo struct {
	created   []deliveryRepo.CreateOptions
	createErr error
}

func (f *fakeDeliveryRepo) Create(ctx context.Context, opts deliveryRepo.CreateOptions) (model.DeliveryAttempt, error) {
	if f.createErr != nil {
		return model.DeliveryAttempt{}, f.createErr
	}
	f.created = append(f.created, opts)
	return model.DeliveryAttempt{
		ID:         "attempt-1",
		AlertID:    opts.AlertID,
		Message:    opts.Message,
		Recipients: opts.Recipients,
		Status:     opts.Status,
	}, nil
}

func (f *fakeDeliveryRepo) Recent(ctx context.Context, opts deliveryRepo.RecentOptions) ([]model.DeliveryAttempt, error) {
	return nil, nil
}

type fakeSMS struct {
	calls    [][]string
	messages []string
	outcome  sms.DeliveryOutcome
	err      error
}

func (f *fakeSMS) Send(ctx context.Context, recipients []string, message string) (sms.DeliveryOutcome, error) {
	f.calls = append(f.calls, recipients)
	f.messages = append(f.messages, message)
	if f.err != nil {
		return sms.DeliveryOutcome{}, f.err
	}
	return f.outcome, nil
}

func (f *fakeSMS) Close() error { return nil }

func adminScope() model.Scope {
	return model.Scope{UserID: "user-1", Username: "admin", Role: model.RoleAdmin}
}

func site1Fixture() *fakeProjectRepo {
	phone := "712345678"
	return &fakeProjectRepo{
		projects: map[string]model.Project{
			"proj-1": {
				ID:             "proj-1",
				Name:           "SITE1",
				SiteCode:       "SITE1",
				Status:         model.ProjectStatusInProgress,
				StakeholderIDs: []string{"stk-1", "stk-2"},
			},
		},
		stakeholders: map[string]model.Stakeholder{
			"stk-1": {ID: "stk-1", FullName: "Asha Mwangi", PhoneNumber: &phone},
			"stk-2": {ID: "stk-2", FullName: "John Otieno"},
		},
	}
}

func acceptedOutcome(numbers ...string) sms.DeliveryOutcome {
	out := sms.DeliveryOutcome{
		Accepted: true,
		Raw:      json.RawMessage(`{"SMSMessageData":{"Message":"Sent"}}`),
	}
	for _, n := range numbers {
		out.Recipients = append(out.Recipients, sms.RecipientResult{
			Number:     n,
			Status:     "Success",
			StatusCode: 101,
			Cost:       "KES 0.8000",
			MessageID:  "ATXid_1",
			Accepted:   true,
		})
	}
	return out
}

func newTestUseCase(projects *fakeProjectRepo, alerts *fakeAlertRepo, deliveries *fakeDeliveryRepo, gateway *fakeSMS) alert.UseCase {
	return New(noopLogger{}, alerts, projects, deliveries, gateway, nil, nil)
}

func TestCreateAlertDispatchesToResolvedRecipients(t *testing.T) {
	projects := site1Fixture()
	alerts := &fakeAlertRepo{}
	deliveries := &fakeDeliveryRepo{}
	gateway := &fakeSMS{outcome: acceptedOutcome("+712345678")}
	uc := newTestUseCase(projects, alerts, deliveries, gateway)

	out, err := uc.CreateAlert(context.Background(), adminScope(), alert.CreateAlertInput{
		ProjectID: "proj-1",
		Category:  model.AlertCategoryDelay,
		Body:      "Material shortage",
	})
	if err != nil {
		t.Fatalf("CreateAlert() error = %v", err)
	}

	if len(gateway.calls) != 1 {
		t.Fatalf("gateway called %d times, want 1", len(gateway.calls))
	}
	if len(gateway.calls[0]) != 1 || gateway.calls[0][0] != "+712345678" {
		t.Errorf("gateway recipients = %v, want [+712345678]", gateway.calls[0])
	}
	wantMsg := "UjenziIQ Alert\nSITE1\nType: delay\nMaterial shortage"
	if gateway.messages[0] != wantMsg {
		t.Errorf("gateway message = %q, want %q", gateway.messages[0], wantMsg)
	}

	if len(alerts.created) != 1 {
		t.Fatalf("persisted %d alerts, want 1", len(alerts.created))
	}
	if got := alerts.created[0].RecipientIDs; len(got) != 1 || got[0] != "stk-1" {
		t.Errorf("alert recipient IDs = %v, want [stk-1]", got)
	}

	if len(deliveries.created) != 1 {
		t.Fatalf("recorded %d delivery attempts, want 1", len(deliveries.created))
	}
	attempt := deliveries.created[0]
	if attempt.AlertID == nil || *attempt.AlertID != out.Alert.ID {
		t.Errorf("attempt alert ID = %v, want %q", attempt.AlertID, out.Alert.ID)
	}
	if attempt.Status != model.DeliveryStatusDelivered {
		t.Errorf("attempt status = %q, want %q", attempt.Status, model.DeliveryStatusDelivered)
	}
	if len(attempt.Statuses) != 1 || attempt.Statuses[0].Number != "+712345678" {
		t.Errorf("attempt recipient statuses = %v", attempt.Statuses)
	}

	if out.Delivery.State != alert.DeliveryStateDelivered {
		t.Errorf("delivery state = %q, want %q", out.Delivery.State, alert.DeliveryStateDelivered)
	}
	if out.Delivery.Recipients != 1 {
		t.Errorf("delivery recipients = %d, want 1", out.Delivery.Recipients)
	}
}

func TestCreateAlertUnauthorizedPersistsNothing(t *testing.T) {
	projects := site1Fixture()
	alerts := &fakeAlertRepo{}
	deliveries := &fakeDeliveryRepo{}
	gateway := &fakeSMS{outcome: acceptedOutcome("+712345678")}
	uc := newTestUseCase(projects, alerts, deliveries, gateway)

	sc := model.Scope{UserID: "user-2", Role: model.RoleStakeholder}
	_, err := uc.CreateAlert(context.Background(), sc, alert.CreateAlertInput{
		ProjectID: "proj-1",
		Category:  model.AlertCategoryInfo,
		Body:      "hello",
	})
	if err != alert.ErrUnauthorized {
		t.Fatalf("CreateAlert() error = %v, want %v", err, alert.ErrUnauthorized)
	}
	if len(alerts.created) != 0 || len(deliveries.created) != 0 || len(gateway.calls) != 0 {
		t.Error("unauthorized request left partial state behind")
	}
}

func TestCreateAlertRejectsLongBodyBeforePersistence(t *testing.T) {
	projects := site1Fixture()
	alerts := &fakeAlertRepo{}
	deliveries := &fakeDeliveryRepo{}
	gateway := &fakeSMS{outcome: acceptedOutcome("+712345678")}
	uc := newTestUseCase(projects, alerts, deliveries, gateway)

	_, err := uc.CreateAlert(context.Background(), adminScope(), alert.CreateAlertInput{
		ProjectID: "proj-1",
		Category:  model.AlertCategoryDelay,
		Body:      strings.Repeat("x", 200),
	})
	if err != alert.ErrMessageTooLong {
		t.Fatalf("CreateAlert() error = %v, want %v", err, alert.ErrMessageTooLong)
	}
	if len(alerts.created) != 0 || len(deliveries.created) != 0 || len(gateway.calls) != 0 {
		t.Error("oversized message left partial state behind")
	}
}

func TestCreateAlertUnknownProject(t *testing.T) {
	projects := site1Fixture()
	alerts := &fakeAlertRepo{}
	uc := newTestUseCase(projects, alerts, &fakeDeliveryRepo{}, &fakeSMS{})

	_, err := uc.CreateAlert(context.Background(), adminScope(), alert.CreateAlertInput{
		ProjectID: "proj-missing",
		Category:  model.AlertCategoryInfo,
		Body:      "hello",
	})
	if err != alert.ErrProjectNotFound {
		t.Fatalf("CreateAlert() error = %v, want %v", err, alert.ErrProjectNotFound)
	}
	if len(alerts.created) != 0 {
		t.Error("unknown project left an orphaned alert behind")
	}
}

func TestCreateAlertGatewayFailureStillSucceeds(t *testing.T) {
	projects := site1Fixture()
	alerts := &fakeAlertRepo{}
	deliveries := &fakeDeliveryRepo{}
	gateway := &fakeSMS{err: errors.New("gateway unreachable")}
	uc := newTestUseCase(projects, alerts, deliveries, gateway)

	out, err := uc.CreateAlert(context.Background(), adminScope(), alert.CreateAlertInput{
		ProjectID: "proj-1",
		Category:  model.AlertCategoryIncident,
		Body:      "Scaffold collapse",
	})
	if err != nil {
		t.Fatalf("CreateAlert() error = %v, want nil despite gateway failure", err)
	}

	if len(alerts.created) != 1 {
		t.Fatalf("persisted %d alerts, want 1", len(alerts.created))
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
	if out.Delivery.State != alert.DeliveryStateFailed {
		t.Errorf("delivery state = %q, want %q", out.Delivery.State, alert.DeliveryStateFailed)
	}

	// The alert stays retrievable even when delivery failed.
	if _, err := uc.Detail(context.Background(), adminScope(), out.Alert.ID); err != nil {
		t.Errorf("Detail() after failed delivery error = %v", err)
	}
}

func TestCreateAlertNoRecipients(t *testing.T) {
	projects := site1Fixture()
	delete(projects.stakeholders, "stk-1") // only the phoneless stakeholder remains
	alerts := &fakeAlertRepo{}
	deliveries := &fakeDeliveryRepo{}
	gateway := &fakeSMS{outcome: acceptedOutcome()}
	uc := newTestUseCase(projects, alerts, deliveries, gateway)

	out, err := uc.CreateAlert(context.Background(), adminScope(), alert.CreateAlertInput{
		ProjectID: "proj-1",
		Category:  model.AlertCategoryInfo,
		Body:      "hello",
	})
	if err != nil {
		t.Fatalf("CreateAlert() error = %v", err)
	}
	if len(gateway.calls) != 0 {
		t.Errorf("gateway called %d times, want 0", len(gateway.calls))
	}
	if len(deliveries.created) != 0 {
		t.Errorf("recorded %d delivery attempts, want 0", len(deliveries.created))
	}
	if len(alerts.created) != 1 {
		t.Errorf("persisted %d alerts, want 1", len(alerts.created))
	}
	if out.Delivery.State != alert.DeliveryStateNoRecipients {
		t.Errorf("delivery state = %q, want %q", out.Delivery.State, alert.DeliveryStateNoRecipients)
	}
}

func TestCreateAlertLogAppendFailureAbsorbed(t *testing.T) {
	projects := site1Fixture()
	alerts := &fakeAlertRepo{}
	deliveries := &fakeDeliveryRepo{createErr: errors.New("insert failed")}
	gateway := &fakeSMS{outcome: acceptedOutcome("+712345678")}
	uc := newTestUseCase(projects, alerts, deliveries, gateway)

	out, err := uc.CreateAlert(context.Background(), adminScope(), alert.CreateAlertInput{
		ProjectID: "proj-1",
		Category:  model.AlertCategoryDelay,
		Body:      "Material shortage",
	})
	if err != nil {
		t.Fatalf("CreateAlert() error = %v, want nil despite log failure", err)
	}
	if len(alerts.created) != 1 {
		t.Errorf("persisted %d alerts, want 1", len(alerts.created))
	}
	if out.Delivery.State != alert.DeliveryStateDelivered {
		t.Errorf("delivery state = %q, want %q", out.Delivery.State, alert.DeliveryStateDelivered)
	}
	if out.Delivery.AttemptID != "" {
		t.Errorf("delivery attempt ID = %q, want empty after log failure", out.Delivery.AttemptID)
	}
}

func TestCreateAlertPersistenceFailureIsFatal(t *testing.T) {
	projects := site1Fixture()
	insertErr := errors.New("insert failed")
	alerts := &fakeAlertRepo{createErr: insertErr}
	deliveries := &fakeDeliveryRepo{}
	gateway := &fakeSMS{outcome: acceptedOutcome("+712345678")}
	uc := newTestUseCase(projects, alerts, deliveries, gateway)

	_, err := uc.CreateAlert(context.Background(), adminScope(), alert.CreateAlertInput{
		ProjectID: "proj-1",
		Category:  model.AlertCategoryDelay,
		Body:      "Material shortage",
	})
	if err != insertErr {
		t.Fatalf("CreateAlert() error = %v, want %v", err, insertErr)
	}
	if len(gateway.calls) != 0 || len(deliveries.created) != 0 {
		t.Error("failed persistence still reached the gateway or the log")
	}
}

func TestResolveRecipientsFiltersAndDedupes(t *testing.T) {
	withPlus := "+254712345678"
	bare := "254712345678" // same number, no plus
	short := "12"
	projects := &fakeProjectRepo{
		projects: map[string]model.Project{
			"proj-1": {
				ID:             "proj-1",
				Name:           "SITE1",
				StakeholderIDs: []string{"a", "b", "c", "d", "e"},
			},
		},
		stakeholders: map[string]model.Stakeholder{
			"a": {ID: "a", FullName: "A", PhoneNumber: &withPlus},
			"b": {ID: "b", FullName: "B", PhoneNumber: &bare},
			"c": {ID: "c", FullName: "C"},
			"d": {ID: "d", FullName: "D", PhoneNumber: &short},
			// "e" has no stakeholder record at all
		},
	}
	uc := newTestUseCase(projects, &fakeAlertRepo{}, &fakeDeliveryRepo{}, &fakeSMS{}).(*implUseCase)

	p, _ := projects.Detail(context.Background(), adminScope(), "proj-1")
	recipients, ids, err := uc.resolveRecipients(context.Background(), adminScope(), p)
	if err != nil {
		t.Fatalf("resolveRecipients() error = %v", err)
	}
	if len(recipients) != 1 {
		t.Fatalf("resolved %d recipients, want 1 (deduped, filtered)", len(recipients))
	}
	if recipients[0].PhoneNumber != "+254712345678" {
		t.Errorf("recipient number = %q, want +254712345678", recipients[0].PhoneNumber)
	}
	if len(ids) != 1 || ids[0] != "a" {
		t.Errorf("resolved stakeholder IDs = %v, want [a]", ids)
	}
}

func TestDispatchUpdateWritesNoAlertRow(t *testing.T) {
	projects := site1Fixture()
	alerts := &fakeAlertRepo{}
	deliveries := &fakeDeliveryRepo{}
	gateway := &fakeSMS{outcome: acceptedOutcome("+712345678")}
	uc := newTestUseCase(projects, alerts, deliveries, gateway)

	out, err := uc.DispatchUpdate(context.Background(), adminScope(), alert.DispatchUpdateInput{
		ProjectID: "proj-1",
		Body:      "Concrete pour rescheduled",
	})
	if err != nil {
		t.Fatalf("DispatchUpdate() error = %v", err)
	}
	if len(alerts.created) != 0 {
		t.Errorf("persisted %d alerts, want 0 for an ad-hoc update", len(alerts.created))
	}
	if len(deliveries.created) != 1 {
		t.Fatalf("recorded %d delivery attempts, want 1", len(deliveries.created))
	}
	if deliveries.created[0].AlertID != nil {
		t.Errorf("attempt alert ID = %v, want nil", deliveries.created[0].AlertID)
	}
	wantMsg := "UjenziIQ Update\nSITE1\nConcrete pour rescheduled"
	if gateway.messages[0] != wantMsg {
		t.Errorf("gateway message = %q, want %q", gateway.messages[0], wantMsg)
	}
	if out.Delivery.State != alert.DeliveryStateDelivered {
		t.Errorf("delivery state = %q, want %q", out.Delivery.State, alert.DeliveryStateDelivered)
	}
}

func TestDispatchUpdateUnauthorized(t *testing.T) {
	uc := newTestUseCase(site1Fixture(), &fakeAlertRepo{}, &fakeDeliveryRepo{}, &fakeSMS{})

	sc := model.Scope{UserID: "user-2", Role: model.RoleStakeholder}
	_, err := uc.DispatchUpdate(context.Background(), sc, alert.DispatchUpdateInput{
		ProjectID: "proj-1",
		Body:      "hello",
	})
	if err != alert.ErrUnauthorized {
		t.Fatalf("DispatchUpdate() error = %v, want %v", err, alert.ErrUnauthorized)
	}
}
