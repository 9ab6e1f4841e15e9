package usecase

import (
	"context"
	"testing"

	"ujenzi-notify/internal/deliverylog"
	"ujenzi-notify/internal/deliverylog/repository"
	"ujenzi-notify/internal/model"
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

type fakeRepo struct {
	lastOpts repository.RecentOptions
	attempts []model.DeliveryAttempt
}

func (f *fakeRepo) Create(ctx context.Context, opts repository.CreateOptions) (model.DeliveryAttempt, error) {
	return model.DeliveryAttempt{}, nil
}

func (f *fakeRepo) Recent(ctx context.Context, opts repository.RecentOptions) ([]model.DeliveryAttempt, error) {
	f.lastOpts = opts
	return f.attempts, nil
}

func TestRecentNonAdminRequiresProject(t *testing.T) {
	uc := New(noopLogger{}, &fakeRepo{})

	sc := model.Scope{UserID: "u1", Role: model.RoleSupervisor}
	_, err := uc.Recent(context.Background(), sc, deliverylog.RecentInput{})
	if err != deliverylog.ErrProjectRequired {
		t.Fatalf("Recent() error = %v, want %v", err, deliverylog.ErrProjectRequired)
	}

	if _, err := uc.Recent(context.Background(), sc, deliverylog.RecentInput{ProjectID: "proj-1"}); err != nil {
		t.Fatalf("Recent() with project filter error = %v", err)
	}
}

func TestRecentAdminUnfiltered(t *testing.T) {
	repo := &fakeRepo{attempts: []model.DeliveryAttempt{{ID: "a1"}, {ID: "a2"}}}
	uc := New(noopLogger{}, repo)

	sc := model.Scope{UserID: "u1", Role: model.RoleAdmin}
	o, err := uc.Recent(context.Background(), sc, deliverylog.RecentInput{})
	if err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if len(o.Attempts) != 2 {
		t.Errorf("got %d attempts, want 2", len(o.Attempts))
	}
	if repo.lastOpts.Limit != deliverylog.DefaultRecentLimit {
		t.Errorf("limit = %d, want default %d", repo.lastOpts.Limit, deliverylog.DefaultRecentLimit)
	}
}

func TestRecentLimitClamped(t *testing.T) {
	repo := &fakeRepo{}
	uc := New(noopLogger{}, repo)

	sc := model.Scope{UserID: "u1", Role: model.RoleAdmin}
	if _, err := uc.Recent(context.Background(), sc, deliverylog.RecentInput{Limit: 10000}); err != nil {
		t.Fatalf("Recent() error = %v", err)
	}
	if repo.lastOpts.Limit != deliverylog.MaxRecentLimit {
		t.Errorf("limit = %d, want clamped to %d", repo.lastOpts.Limit, deliverylog.MaxRecentLimit)
	}
}
