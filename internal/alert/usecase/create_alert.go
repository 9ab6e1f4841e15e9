package usecase

import (
	"context"
	"errors"

	"ujenzi-notify/internal/alert"
	"ujenzi-notify/internal/alert/repository"
	"ujenzi-notify/internal/model"
	projectRepo "ujenzi-notify/internal/project/repository"
	pkgPostgre "ujenzi-notify/pkg/postgre"
)

// CreateAlert runs the dispatch pipeline: authorize, validate, resolve
// the project, render the message, persist the alert, then deliver.
// Everything up to persistence aborts with no partial state; everything
// after persistence is best-effort and never fails the call.
func (uc *implUseCase) CreateAlert(ctx context.Context, sc model.Scope, ip alert.CreateAlertInput) (alert.CreateAlertOutput, error) {
	if !sc.CanDispatchAlerts() {
		return alert.CreateAlertOutput{}, alert.ErrUnauthorized
	}

	if ip.ProjectID == "" || ip.Body == "" || !model.IsValidAlertCategory(ip.Category) {
		return alert.CreateAlertOutput{}, alert.ErrInvalidInput
	}

	p, err := uc.lookupProject(ctx, sc, ip.ProjectID)
	if err != nil {
		return alert.CreateAlertOutput{}, err
	}

	msg, err := alert.FormatMessage(p.Name, ip.Category, ip.Body)
	if err != nil {
		return alert.CreateAlertOutput{}, err
	}

	recipients, recipientIDs, err := uc.resolveRecipients(ctx, sc, p)
	if err != nil {
		return alert.CreateAlertOutput{}, err
	}

	a, err := uc.repo.Create(ctx, sc, repository.CreateOptions{
		ProjectID:    p.ID,
		Category:     ip.Category,
		Body:         ip.Body,
		RecipientIDs: recipientIDs,
		CreatedBy:    sc.UserID,
		CreatorRole:  sc.Role,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.alert.usecase.CreateAlert.repo.Create: %v", err)
		return alert.CreateAlertOutput{}, err
	}

	res := uc.dispatch(ctx, &a.ID, msg, recipients)

	return alert.CreateAlertOutput{
		Alert:    a,
		Delivery: res,
	}, nil
}

// lookupProject resolves the target project before anything is
// persisted, so a request against an unknown project never leaves an
// orphaned alert behind.
func (uc *implUseCase) lookupProject(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	p, err := uc.projectRepo.Detail(ctx, sc, id)
	if err != nil {
		if err == projectRepo.ErrNotFound {
			return model.Project{}, alert.ErrProjectNotFound
		}
		if errors.Is(err, pkgPostgre.ErrInvalidUUID) {
			return model.Project{}, alert.ErrInvalidInput
		}
		uc.l.Errorf(ctx, "internal.alert.usecase.lookupProject.projectRepo.Detail: %v", err)
		return model.Project{}, err
	}
	return p, nil
}
