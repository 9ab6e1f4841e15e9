package postgre

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"ujenzi-notify/internal/deliverylog/repository"
	"ujenzi-notify/internal/model"
	pkgPostgre "ujenzi-notify/pkg/postgre"

	"github.com/aarondl/null/v8"
	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) Create(ctx context.Context, opts repository.CreateOptions) (model.DeliveryAttempt, error) {
	now := time.Now().UTC()
	a := model.DeliveryAttempt{
		ID:           pkgPostgre.NewUUID(),
		AlertID:      opts.AlertID,
		Message:      opts.Message,
		Recipients:   opts.Recipients,
		Status:       opts.Status,
		Statuses:     opts.Statuses,
		ErrorMessage: opts.ErrorMessage,
		RawResponse:  opts.RawResponse,
		CreatedAt:    now,
	}

	var alertID null.String
	if a.AlertID != nil {
		alertID = null.StringFrom(*a.AlertID)
	}
	var errMsg null.String
	if a.ErrorMessage != nil {
		errMsg = null.StringFrom(*a.ErrorMessage)
	}

	var statuses null.JSON
	if len(a.Statuses) > 0 {
		b, err := json.Marshal(a.Statuses)
		if err != nil {
			r.l.Errorf(ctx, "internal.deliverylog.repository.postgre.Create.Marshal: %v", err)
			return model.DeliveryAttempt{}, errors.Wrap(err, "failed to encode recipient statuses")
		}
		statuses = null.JSONFrom(b)
	}
	var raw null.JSON
	if len(a.RawResponse) > 0 {
		raw = null.JSONFrom([]byte(a.RawResponse))
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO delivery_attempts (id, alert_id, message, recipients, status, recipient_statuses, error_message, raw_response, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, alertID, a.Message, types.StringArray(a.Recipients),
		a.Status, statuses, errMsg, raw, a.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.deliverylog.repository.postgre.Create.Exec: %v", err)
		return model.DeliveryAttempt{}, errors.Wrap(err, "failed to insert delivery attempt")
	}

	return a, nil
}

func (r *implRepository) Recent(ctx context.Context, opts repository.RecentOptions) ([]model.DeliveryAttempt, error) {
	where := []string{"1 = 1"}
	var args []interface{}

	if opts.AlertID != "" {
		args = append(args, opts.AlertID)
		where = append(where, fmt.Sprintf("d.alert_id = $%d", len(args)))
	}
	if opts.ProjectID != "" {
		args = append(args, opts.ProjectID)
		where = append(where, fmt.Sprintf(
			"d.alert_id IN (SELECT id FROM alerts WHERE project_id = $%d)", len(args)))
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = 20
	}
	args = append(args, limit)

	query := fmt.Sprintf(
		`SELECT d.id, d.alert_id, d.message, d.recipients, d.status, d.recipient_statuses, d.error_message, d.raw_response, d.created_at
		 FROM delivery_attempts d
		 WHERE %s
		 ORDER BY d.created_at DESC
		 LIMIT $%d`,
		strings.Join(where, " AND "), len(args),
	)

	var rows []attemptRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.deliverylog.repository.postgre.Recent.Bind: %v", err)
		return nil, errors.Wrap(err, "failed to query delivery attempts")
	}

	res := make([]model.DeliveryAttempt, len(rows))
	for i := range rows {
		res[i] = rows[i].toModel()
	}
	return res, nil
}
