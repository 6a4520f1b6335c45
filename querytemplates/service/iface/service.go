//go:generate mockery --name QueryTemplates --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"github.com/querylens/querylens/querytemplates/domain"
	"github.com/querylens/querylens/querytemplates/service"
)

type QueryTemplates interface {
	Scan(ctx context.Context, req domain.ScanRequest) (*domain.ScanSummary, error)
	RefreshAll(ctx context.Context) ([]domain.ScanSummary, error)

	ListTemplates(ctx context.Context, projectID, orderBy string, limit int, includeAnalyses bool) ([]service.TemplateWithAnalysis, error)
	GetTemplate(ctx context.Context, projectID, templateID string) (*service.TemplateWithAnalysis, error)
	AttachAnalysis(ctx context.Context, projectID, templateID, analysisID string, complianceScore *float64) error
	MarkPending(ctx context.Context, projectID string, templateIDs []string) error
	DashboardStats(ctx context.Context, projectID string) (*domain.DashboardStats, error)

	CreateProject(ctx context.Context, project domain.Project) (*domain.Project, error)
	GetProject(ctx context.Context, projectID string) (*domain.Project, error)
	ListProjects(ctx context.Context, activeOnly bool) ([]domain.Project, error)
	DeleteProject(ctx context.Context, projectID string, purge bool) error
}
