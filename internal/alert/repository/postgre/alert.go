package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"ujenzi-notify/internal/alert/repository"
	"ujenzi-notify/internal/model"
	"ujenzi-notify/pkg/paginator"
	pkgPostgre "ujenzi-notify/pkg/postgre"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/sqlboiler/v4/types"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) Create(ctx context.Context, sc model.Scope, opts repository.CreateOptions) (model.Alert, error) {
	now := time.Now().UTC()
	a := model.Alert{
		ID:           pkgPostgre.NewUUID(),
		ProjectID:    opts.ProjectID,
		Category:     opts.Category,
		Body:         opts.Body,
		RecipientIDs: opts.RecipientIDs,
		CreatedBy:    opts.CreatedBy,
		CreatorRole:  opts.CreatorRole,
		CreatedAt:    now,
	}

	_, err := r.db.ExecContext(ctx,
		`INSERT INTO alerts (id, project_id, category, body, recipient_ids, is_read, created_by, creator_role, created_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)`,
		a.ID, a.ProjectID, a.Category, a.Body, types.StringArray(a.RecipientIDs),
		a.IsRead, a.CreatedBy, a.CreatorRole, a.CreatedAt,
	)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.Create.Exec: %v", err)
		return model.Alert{}, errors.Wrap(err, "failed to insert alert")
	}

	return a, nil
}

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	if err := pkgPostgre.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.Detail.IsUUID: %v", err)
		return model.Alert{}, err
	}

	var row alertRow
	err := queries.Raw(
		`SELECT id, project_id, category, body, recipient_ids, is_read, created_by, creator_role, created_at
		 FROM alerts
		 WHERE id = $1`,
		id,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Alert{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.alert.repository.postgre.Detail.Bind: %v", err)
		return model.Alert{}, errors.Wrap(err, "failed to query alert")
	}

	return row.toModel(), nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Alert, paginator.Paginator, error) {
	where := []string{"1 = 1"}
	var args []interface{}

	if opts.Filter.ProjectID != "" {
		args = append(args, opts.Filter.ProjectID)
		where = append(where, fmt.Sprintf("project_id = $%d", len(args)))
	}
	if opts.Filter.Category != "" {
		args = append(args, opts.Filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countRow := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM alerts WHERE "+whereClause, args...)
	if err := countRow.Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "failed to count alerts")
	}

	opts.PaginateQuery.Adjust()
	args = append(args, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset())
	query := fmt.Sprintf(
		`SELECT id, project_id, category, body, recipient_ids, is_read, created_by, creator_role, created_at
		 FROM alerts
		 WHERE %s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`,
		whereClause, len(args)-1, len(args),
	)

	var rows []alertRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "failed to query alerts")
	}

	res := make([]model.Alert, len(rows))
	for i := range rows {
		res[i] = rows[i].toModel()
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(res)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}

	return res, pag, nil
}

func (r *implRepository) MarkRead(ctx context.Context, sc model.Scope, id string) (model.Alert, error) {
	if err := pkgPostgre.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.MarkRead.IsUUID: %v", err)
		return model.Alert{}, err
	}

	result, err := r.db.ExecContext(ctx, `UPDATE alerts SET is_read = TRUE WHERE id = $1`, id)
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.MarkRead.Exec: %v", err)
		return model.Alert{}, errors.Wrap(err, "failed to mark alert read")
	}
	affected, err := result.RowsAffected()
	if err != nil {
		r.l.Errorf(ctx, "internal.alert.repository.postgre.MarkRead.RowsAffected: %v", err)
		return model.Alert{}, errors.Wrap(err, "failed to mark alert read")
	}
	if affected == 0 {
		return model.Alert{}, repository.ErrNotFound
	}

	return r.Detail(ctx, sc, id)
}
