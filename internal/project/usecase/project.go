package usecase

import (
	"context"

	"ujenzi-notify/internal/model"
	"ujenzi-notify/internal/project"
	"ujenzi-notify/internal/project/repository"
)

func (uc *implUseCase) Detail(ctx context.Context, sc model.Scope, id string) (model.Project, error) {
	p, err := uc.repo.Detail(ctx, sc, id)
	if err != nil {
		if err == repository.ErrNotFound {
			return model.Project{}, project.ErrProjectNotFound
		}
		uc.l.Errorf(ctx, "internal.project.usecase.Detail.repo.Detail: %v", err)
		return model.Project{}, err
	}
	return p, nil
}

func (uc *implUseCase) Get(ctx context.Context, sc model.Scope, ip project.GetInput) (project.GetOutput, error) {
	projects, pag, err := uc.repo.Get(ctx, sc, repository.GetOptions{
		Filter: repository.Filter{
			SiteCode: ip.Filter.SiteCode,
			Status:   ip.Filter.Status,
		},
		PaginateQuery: ip.PaginateQuery,
	})
	if err != nil {
		uc.l.Errorf(ctx, "internal.project.usecase.Get.repo.Get: %v", err)
		return project.GetOutput{}, err
	}

	return project.GetOutput{
		Projects:  projects,
		Paginator: pag,
	}, nil
}
