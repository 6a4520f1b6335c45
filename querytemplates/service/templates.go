package service

import (
	"context"

	"github.com/pkg/errors"

	fsDAL "github.com/querylens/querylens/querytemplates/dal/firestore"
	"github.com/querylens/querylens/querytemplates/domain"
)

// TemplateWithAnalysis pairs a template with its hydrated analysis result,
// when one is linked and requested.
type TemplateWithAnalysis struct {
	domain.QueryTemplate
	Analysis *domain.AnalysisResult `json:"analysis,omitempty"`
}

// ListTemplates returns a project's templates sorted by the requested key.
// With includeAnalyses set, linked analysis results are fetched alongside.
func (s *TemplateService) ListTemplates(ctx context.Context, projectID, orderBy string, limit int, includeAnalyses bool) ([]TemplateWithAnalysis, error) {
	if _, err := s.projectsDAL.Get(ctx, projectID); err != nil {
		return nil, errors.Wrapf(ErrProjectNotFound, "project %s", projectID)
	}

	templates, err := s.templatesDAL.List(ctx, projectID, orderBy, limit)
	if err != nil {
		return nil, errors.Wrapf(err, "listing templates for project %s", projectID)
	}

	out := make([]TemplateWithAnalysis, len(templates))
	for i, tmpl := range templates {
		out[i] = TemplateWithAnalysis{QueryTemplate: tmpl}
	}

	if !includeAnalyses {
		return out, nil
	}

	var analysisIDs []string

	for _, tmpl := range templates {
		if tmpl.AnalysisResultID != "" {
			analysisIDs = append(analysisIDs, tmpl.AnalysisResultID)
		}
	}

	if len(analysisIDs) == 0 {
		return out, nil
	}

	results, err := s.analysesDAL.GetBatch(ctx, analysisIDs)
	if err != nil {
		return nil, errors.Wrapf(err, "fetching analyses for project %s", projectID)
	}

	for i := range out {
		if id := out[i].AnalysisResultID; id != "" {
			out[i].Analysis = results[id]
		}
	}

	return out, nil
}

func (s *TemplateService) GetTemplate(ctx context.Context, projectID, templateID string) (*TemplateWithAnalysis, error) {
	tmpl, err := s.templatesDAL.Get(ctx, projectID, templateID)
	if err != nil {
		if errors.Is(err, fsDAL.ErrNotFound) {
			return nil, ErrTemplateNotFound
		}

		return nil, err
	}

	out := &TemplateWithAnalysis{QueryTemplate: *tmpl}

	if tmpl.AnalysisResultID != "" {
		analysis, err := s.analysesDAL.Get(ctx, tmpl.AnalysisResultID)
		if err != nil && !errors.Is(err, fsDAL.ErrNotFound) {
			return nil, err
		}

		out.Analysis = analysis
	}

	return out, nil
}

// AttachAnalysis links an analysis result to a template, completing its
// analysis lifecycle.
func (s *TemplateService) AttachAnalysis(ctx context.Context, projectID, templateID, analysisID string, complianceScore *float64) error {
	if err := s.templatesDAL.AttachAnalysis(ctx, projectID, templateID, analysisID, complianceScore); err != nil {
		if errors.Is(err, fsDAL.ErrNotFound) {
			return ErrTemplateNotFound
		}

		return err
	}

	return nil
}

// MarkPending queues templates for analysis without touching completed ones.
func (s *TemplateService) MarkPending(ctx context.Context, projectID string, templateIDs []string) error {
	return s.templatesDAL.MarkPending(ctx, projectID, templateIDs)
}

// DashboardStats aggregates a project's stored templates into the overview
// the dashboard renders.
func (s *TemplateService) DashboardStats(ctx context.Context, projectID string) (*domain.DashboardStats, error) {
	project, err := s.projectsDAL.Get(ctx, projectID)
	if err != nil {
		return nil, errors.Wrapf(ErrProjectNotFound, "project %s", projectID)
	}

	templates, err := s.templatesDAL.List(ctx, projectID, fsDAL.OrderByCost, 0)
	if err != nil {
		return nil, errors.Wrapf(err, "listing templates for project %s", projectID)
	}

	stats := &domain.DashboardStats{
		ProjectID:  projectID,
		ByPriority: make(map[domain.Priority]int),
		LastScanAt: project.LastScanAt,
	}

	var cacheRateSum float64

	for _, tmpl := range templates {
		stats.TemplateCount++
		stats.TotalCost += tmpl.Stats.TotalCost
		stats.TotalRuns += tmpl.Stats.TotalRuns
		stats.ByPriority[tmpl.Priority]++
		cacheRateSum += tmpl.Stats.CacheHitRate

		if tmpl.AnalysisStatus == domain.AnalysisStatusCompleted {
			stats.AnalyzedCount++
		}
	}

	if stats.TemplateCount > 0 {
		stats.AvgCacheHitRate = cacheRateSum / float64(stats.TemplateCount)
	}

	return stats, nil
}
