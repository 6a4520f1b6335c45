package service

import (
	"context"

	"github.com/pkg/errors"

	fsDAL "github.com/querylens/querylens/querytemplates/dal/firestore"
	"github.com/querylens/querylens/querytemplates/domain"
)

var ErrProjectExists = fsDAL.ErrProjectExists

func (s *TemplateService) CreateProject(ctx context.Context, project domain.Project) (*domain.Project, error) {
	return s.projectsDAL.Create(ctx, project)
}

func (s *TemplateService) GetProject(ctx context.Context, projectID string) (*domain.Project, error) {
	project, err := s.projectsDAL.Get(ctx, projectID)
	if err != nil {
		if errors.Is(err, fsDAL.ErrNotFound) {
			return nil, ErrProjectNotFound
		}

		return nil, err
	}

	return project, nil
}

func (s *TemplateService) ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error) {
	return s.projectsDAL.List(ctx, activeOnly)
}

// DeleteProject deactivates a project. By default stored templates survive
// so a re-registered project resumes with its history intact; with purge set,
// every stored template of the project is removed as well.
func (s *TemplateService) DeleteProject(ctx context.Context, projectID string, purge bool) error {
	if err := s.projectsDAL.Delete(ctx, projectID); err != nil {
		if errors.Is(err, fsDAL.ErrNotFound) {
			return ErrProjectNotFound
		}

		return err
	}

	if purge {
		if err := s.templatesDAL.DeleteAll(ctx, projectID); err != nil {
			return errors.Wrap(ErrStoreWrite, err.Error())
		}
	}

	return nil
}
