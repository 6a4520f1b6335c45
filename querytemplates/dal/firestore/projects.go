package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/querylens/querylens/common"
	"github.com/querylens/querylens/querytemplates/domain"
)

var ErrProjectExists = errors.New("project already registered")

type ProjectsDAL struct {
	firestoreClient *firestore.Client
}

func NewProjectsDAL(fs *firestore.Client) *ProjectsDAL {
	return &ProjectsDAL{
		firestoreClient: fs,
	}
}

func (d *ProjectsDAL) projectsRef() *firestore.CollectionRef {
	return d.firestoreClient.Collection(projectsCollection)
}

// Create registers a project for scanning. Registering an existing inactive
// project reactivates it with the new settings; an active duplicate is an
// error.
func (d *ProjectsDAL) Create(ctx context.Context, project domain.Project) (*domain.Project, error) {
	now := time.Now().UTC()

	if project.Region == "" {
		project.Region = domain.DefaultRegion
	}

	if project.AnalysisWindowDays <= 0 {
		project.AnalysisWindowDays = domain.DefaultAnalysisWindowDays
	}

	if project.PricePerTB <= 0 {
		project.PricePerTB = common.DefaultPricePerTB
	}

	project.IsActive = true
	project.UpdatedAt = now

	existing, err := d.Get(ctx, project.ID)

	switch {
	case err == nil && existing.IsActive:
		return nil, ErrProjectExists
	case err == nil:
		// Reactivation keeps registration time and scan history.
		project.CreatedAt = existing.CreatedAt
		project.LastScanAt = existing.LastScanAt
	case errors.Is(err, ErrNotFound):
		project.CreatedAt = now
	default:
		return nil, err
	}

	if _, err := d.projectsRef().Doc(project.ID).Set(ctx, project); err != nil {
		return nil, errors.Wrapf(err, "registering project %s", project.ID)
	}

	return &project, nil
}

func (d *ProjectsDAL) Get(ctx context.Context, projectID string) (*domain.Project, error) {
	snap, err := d.projectsRef().Doc(projectID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, errors.Wrapf(err, "getting project %s", projectID)
	}

	var project domain.Project
	if err := snap.DataTo(&project); err != nil {
		return nil, errors.Wrapf(err, "decoding project %s", projectID)
	}

	return &project, nil
}

func (d *ProjectsDAL) List(ctx context.Context, activeOnly bool) ([]domain.Project, error) {
	query := d.projectsRef().Query
	if activeOnly {
		query = query.Where("isActive", "==", true)
	}

	it := query.Documents(ctx)
	defer it.Stop()

	var projects []domain.Project

	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, errors.Wrap(err, "listing projects")
		}

		var project domain.Project
		if err := snap.DataTo(&project); err != nil {
			return nil, errors.Wrapf(err, "decoding project %s", snap.Ref.ID)
		}

		projects = append(projects, project)
	}

	return projects, nil
}

func (d *ProjectsDAL) Update(ctx context.Context, projectID string, updates []firestore.Update) error {
	updates = append(updates, firestore.Update{Path: "updatedAt", Value: time.Now().UTC()})

	_, err := d.projectsRef().Doc(projectID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}

		return errors.Wrapf(err, "updating project %s", projectID)
	}

	return nil
}

// Delete deactivates a project. The registration and its templates stay in
// place so a later re-registration picks up where it left off.
func (d *ProjectsDAL) Delete(ctx context.Context, projectID string) error {
	return d.Update(ctx, projectID, []firestore.Update{
		{Path: "isActive", Value: false},
	})
}

func (d *ProjectsDAL) SetLastScan(ctx context.Context, projectID string, scannedAt time.Time) error {
	return d.Update(ctx, projectID, []firestore.Update{
		{Path: "lastScanAt", Value: scannedAt},
	})
}
