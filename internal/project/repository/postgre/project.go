package postgre

import (
	"context"
	"database/sql"
	"fmt"
	"strings"

	"ujenzi-notify/internal/model"
	"ujenzi-notify/internal/project/repository"
	pkgPostgre "ujenzi-notify/pkg/postgre"
	"ujenzi-notify/pkg/paginator"

	"github.com/aarondl/sqlboiler/v4/queries"
	"github.com/aarondl/strmangle"
	"github.com/friendsofgo/errors"
)

func (r *implRepository) Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	if err := pkgPostgre.IsUUID(id); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Detail.IsUUID: %v", err)
		return model.Project{}, err
	}

	var row projectRow
	err := queries.Raw(
		`SELECT id, name, site_code, status, location, created_at, updated_at, deleted_at
		 FROM projects
		 WHERE id = $1 AND deleted_at IS NULL`,
		id,
	).Bind(ctx, r.db, &row)
	if err != nil {
		if err == sql.ErrNoRows {
			return model.Project{}, repository.ErrNotFound
		}
		r.l.Errorf(ctx, "internal.project.repository.postgre.Detail.Bind: %v", err)
		return model.Project{}, errors.Wrap(err, "failed to query project")
	}

	stakeholderIDs, err := r.stakeholderIDs(ctx, id)
	if err != nil {
		return model.Project{}, err
	}

	return row.toModel(stakeholderIDs), nil
}

func (r *implRepository) Get(ctx context.Context, sc model.Scope, opts repository.GetOptions) ([]model.Project, paginator.Paginator, error) {
	where := []string{"deleted_at IS NULL"}
	var args []interface{}

	if opts.Filter.SiteCode != "" {
		args = append(args, opts.Filter.SiteCode)
		where = append(where, fmt.Sprintf("site_code = $%d", len(args)))
	}
	if opts.Filter.Status != "" {
		args = append(args, opts.Filter.Status)
		where = append(where, fmt.Sprintf("status = $%d", len(args)))
	}
	whereClause := strings.Join(where, " AND ")

	var total int64
	countRow := r.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM projects WHERE "+whereClause, args...)
	if err := countRow.Scan(&total); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Get.Count: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "failed to count projects")
	}

	opts.PaginateQuery.Adjust()
	args = append(args, opts.PaginateQuery.Limit, opts.PaginateQuery.Offset())
	query := fmt.Sprintf(
		`SELECT id, name, site_code, status, location, created_at, updated_at, deleted_at
		 FROM projects
		 WHERE %s
		 ORDER BY created_at DESC
		 LIMIT $%d OFFSET $%d`,
		whereClause, len(args)-1, len(args),
	)

	var rows []projectRow
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.Get.Bind: %v", err)
		return nil, paginator.Paginator{}, errors.Wrap(err, "failed to query projects")
	}

	res := make([]model.Project, len(rows))
	for i := range rows {
		res[i] = rows[i].toModel(nil)
	}

	pag := paginator.Paginator{
		Total:       total,
		Count:       int64(len(res)),
		PerPage:     opts.PaginateQuery.Limit,
		CurrentPage: opts.PaginateQuery.Page,
	}

	return res, pag, nil
}

func (r *implRepository) ListStakeholders(ctx context.Context, sc model.Scope, ids []string) ([]model.Stakeholder, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	if err := pkgPostgre.ValidateUUIDs(ids); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.ListStakeholders.ValidateUUIDs: %v", err)
		return nil, err
	}

	args := make([]interface{}, len(ids))
	for i, id := range ids {
		args[i] = id
	}
	placeholders := strmangle.Placeholders(true, len(ids), 1, 1)

	var rows []stakeholderRow
	query := fmt.Sprintf(
		`SELECT id, full_name, role, phone_number, created_at, updated_at
		 FROM users
		 WHERE id IN (%s) AND deleted_at IS NULL`,
		placeholders,
	)
	if err := queries.Raw(query, args...).Bind(ctx, r.db, &rows); err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.ListStakeholders.Bind: %v", err)
		return nil, errors.Wrap(err, "failed to query stakeholders")
	}

	res := make([]model.Stakeholder, len(rows))
	for i := range rows {
		res[i] = rows[i].toModel()
	}

	return res, nil
}

// stakeholderIDs loads the project's stakeholder identifier list.
func (r *implRepository) stakeholderIDs(ctx context.Context, projectID string) ([]string, error) {
	type idRow struct {
		UserID string `boil:"user_id"`
	}

	var rows []idRow
	err := queries.Raw(
		`SELECT user_id FROM project_stakeholders WHERE project_id = $1`,
		projectID,
	).Bind(ctx, r.db, &rows)
	if err != nil {
		r.l.Errorf(ctx, "internal.project.repository.postgre.stakeholderIDs.Bind: %v", err)
		return nil, errors.Wrap(err, "failed to query project stakeholders")
	}

	ids := make([]string, len(rows))
	for i, row := range rows {
		ids[i] = row.UserID
	}
	return ids, nil
}
