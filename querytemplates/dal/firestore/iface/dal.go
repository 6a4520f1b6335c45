//go:generate mockery --all --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"

	"github.com/querylens/querylens/querytemplates/domain"
)

type Templates interface {
	Upsert(ctx context.Context, projectID string, templates []domain.QueryTemplate) (created, updated int, err error)
	List(ctx context.Context, projectID, orderBy string, limit int) ([]domain.QueryTemplate, error)
	Get(ctx context.Context, projectID, templateID string) (*domain.QueryTemplate, error)
	AttachAnalysis(ctx context.Context, projectID, templateID, analysisID string, complianceScore *float64) error
	MarkPending(ctx context.Context, projectID string, templateIDs []string) error
	DeleteAll(ctx context.Context, projectID string) error
}

type Projects interface {
	Create(ctx context.Context, project domain.Project) (*domain.Project, error)
	Get(ctx context.Context, projectID string) (*domain.Project, error)
	List(ctx context.Context, activeOnly bool) ([]domain.Project, error)
	Update(ctx context.Context, projectID string, updates []firestore.Update) error
	Delete(ctx context.Context, projectID string) error
	SetLastScan(ctx context.Context, projectID string, scannedAt time.Time) error
}

type Analyses interface {
	Get(ctx context.Context, analysisID string) (*domain.AnalysisResult, error)
	GetBatch(ctx context.Context, analysisIDs []string) (map[string]*domain.AnalysisResult, error)
}
