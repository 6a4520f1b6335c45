package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	fsDAL "github.com/querylens/querylens/querytemplates/dal/firestore"
	"github.com/querylens/querylens/querytemplates/domain"
)

func TestListTemplatesHydratesAnalyses(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	templates := []domain.QueryTemplate{
		{ID: "t1", AnalysisResultID: "an-1", AnalysisStatus: domain.AnalysisStatusCompleted},
		{ID: "t2", AnalysisStatus: domain.AnalysisStatusNew},
	}

	analysis := &domain.AnalysisResult{ID: "an-1", TemplateID: "t1"}

	f.projectsDAL.On("Get", ctx, "proj-1").Return(activeProject(), nil)
	f.templatesDAL.On("List", ctx, "proj-1", fsDAL.OrderByCost, 10).Return(templates, nil)
	f.analysesDAL.On("GetBatch", ctx, []string{"an-1"}).
		Return(map[string]*domain.AnalysisResult{"an-1": analysis}, nil)

	out, err := s.ListTemplates(ctx, "proj-1", fsDAL.OrderByCost, 10, true)
	require.NoError(t, err)
	require.Len(t, out, 2)

	assert.Equal(t, analysis, out[0].Analysis)
	assert.Nil(t, out[1].Analysis)
}

func TestListTemplatesWithoutAnalyses(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	f.projectsDAL.On("Get", ctx, "proj-1").Return(activeProject(), nil)
	f.templatesDAL.On("List", ctx, "proj-1", fsDAL.OrderByRuns, 0).
		Return([]domain.QueryTemplate{{ID: "t1", AnalysisResultID: "an-1"}}, nil)

	out, err := s.ListTemplates(ctx, "proj-1", fsDAL.OrderByRuns, 0, false)
	require.NoError(t, err)
	require.Len(t, out, 1)
	assert.Nil(t, out[0].Analysis)
}

func TestGetTemplateNotFound(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	f.templatesDAL.On("Get", ctx, "proj-1", "missing").Return(nil, fsDAL.ErrNotFound)

	_, err := s.GetTemplate(ctx, "proj-1", "missing")
	assert.ErrorIs(t, err, ErrTemplateNotFound)
}

func TestDashboardStats(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	f.projectsDAL.On("Get", ctx, "proj-1").Return(activeProject(), nil)
	f.templatesDAL.On("List", ctx, "proj-1", fsDAL.OrderByCost, 0).Return([]domain.QueryTemplate{
		{
			ID:             "t1",
			Priority:       domain.PriorityCritical,
			AnalysisStatus: domain.AnalysisStatusCompleted,
			Stats:          domain.TemplateStats{TotalCost: 120, TotalRuns: 600, CacheHitRate: 40},
		},
		{
			ID:       "t2",
			Priority: domain.PriorityLow,
			Stats:    domain.TemplateStats{TotalCost: 2, TotalRuns: 10, CacheHitRate: 60},
		},
	}, nil)

	stats, err := s.DashboardStats(ctx, "proj-1")
	require.NoError(t, err)

	assert.Equal(t, 2, stats.TemplateCount)
	assert.InDelta(t, 122, stats.TotalCost, 1e-9)
	assert.Equal(t, int64(610), stats.TotalRuns)
	assert.Equal(t, 1, stats.ByPriority[domain.PriorityCritical])
	assert.Equal(t, 1, stats.ByPriority[domain.PriorityLow])
	assert.Equal(t, 1, stats.AnalyzedCount)
	assert.InDelta(t, 50, stats.AvgCacheHitRate, 1e-9)
}
