package service

import (
	"context"
	"sync"
	"testing"
	"time"

	"cloud.google.com/go/bigquery"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"google.golang.org/api/googleapi"

	"github.com/querylens/querylens/logger"
	bqMocks "github.com/querylens/querylens/querytemplates/dal/bigquery/mocks"
	fsDAL "github.com/querylens/querylens/querytemplates/dal/firestore"
	fsMocks "github.com/querylens/querylens/querytemplates/dal/firestore/mocks"
	"github.com/querylens/querylens/querytemplates/domain"
)

type quietLogger struct{}

func (quietLogger) Trace() string                   { return "" }
func (quietLogger) SetLabel(string, string)         {}
func (quietLogger) SetLabels(map[string]string)     {}
func (quietLogger) End(*gin.Context)                {}
func (quietLogger) Debug(...interface{})            {}
func (quietLogger) Info(...interface{})             {}
func (quietLogger) Print(...interface{})            {}
func (quietLogger) Warning(...interface{})          {}
func (quietLogger) Error(...interface{})            {}
func (quietLogger) Debugf(string, ...interface{})   {}
func (quietLogger) Infof(string, ...interface{})    {}
func (quietLogger) Printf(string, ...interface{})   {}
func (quietLogger) Warningf(string, ...interface{}) {}
func (quietLogger) Errorf(string, ...interface{})   {}

type scanFields struct {
	jobsDAL      *bqMocks.Jobs
	templatesDAL *fsMocks.Templates
	projectsDAL  *fsMocks.Projects
	analysesDAL  *fsMocks.Analyses
}

func newTestService(t *testing.T) (*TemplateService, scanFields) {
	f := scanFields{
		jobsDAL:      bqMocks.NewJobs(t),
		templatesDAL: fsMocks.NewTemplates(t),
		projectsDAL:  fsMocks.NewProjects(t),
		analysesDAL:  fsMocks.NewAnalyses(t),
	}

	s := &TemplateService{
		loggerProvider: func(_ context.Context) logger.ILogger { return quietLogger{} },
		bqFun:          func(_ context.Context) *bigquery.Client { return nil },
		normalizer:     RegexNormalizer{},
		jobsDAL:        f.jobsDAL,
		templatesDAL:   f.templatesDAL,
		projectsDAL:    f.projectsDAL,
		analysesDAL:    f.analysesDAL,
		scans:          make(map[string]*sync.Mutex),
	}

	return s, f
}

func activeProject() *domain.Project {
	return &domain.Project{
		ID:                 "proj-1",
		Region:             "us",
		AnalysisWindowDays: 30,
		PricePerTB:         5.0,
		IsActive:           true,
	}
}

func TestScanProjectNotFound(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	f.projectsDAL.On("Get", ctx, "missing").Return(nil, fsDAL.ErrNotFound)

	_, err := s.Scan(ctx, domain.ScanRequest{ProjectID: "missing"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestScanProjectLookupFailure(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	f.projectsDAL.On("Get", ctx, "proj-1").Return(nil, assert.AnError)

	_, err := s.Scan(ctx, domain.ScanRequest{ProjectID: "proj-1"})
	assert.ErrorIs(t, err, assert.AnError)
	assert.NotErrorIs(t, err, ErrProjectNotFound)
}

func TestScanInactiveProject(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	project := activeProject()
	project.IsActive = false
	f.projectsDAL.On("Get", ctx, "proj-1").Return(project, nil)

	_, err := s.Scan(ctx, domain.ScanRequest{ProjectID: "proj-1"})
	assert.ErrorIs(t, err, ErrProjectNotFound)
}

func TestScanNoAccess(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	f.projectsDAL.On("Get", ctx, "proj-1").Return(activeProject(), nil)
	f.jobsDAL.On("CheckAccess", ctx, mock.Anything, "proj-1", "us").
		Return(&googleapi.Error{Code: 403, Message: "permission denied"})

	_, err := s.Scan(ctx, domain.ScanRequest{ProjectID: "proj-1"})
	assert.ErrorIs(t, err, ErrNoJobHistoryAccess)
}

func TestScanSourceUnavailable(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	f.projectsDAL.On("Get", ctx, "proj-1").Return(activeProject(), nil)
	f.jobsDAL.On("CheckAccess", ctx, mock.Anything, "proj-1", "us").Return(nil)
	f.jobsDAL.On("ListJobs", ctx, mock.Anything, "proj-1", "us", 30, maxScanRecords).
		Return(nil, assert.AnError)

	_, err := s.Scan(ctx, domain.ScanRequest{ProjectID: "proj-1"})
	assert.ErrorIs(t, err, ErrSourceUnavailable)
}

func TestScanStoreWriteFailure(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	f.projectsDAL.On("Get", ctx, "proj-1").Return(activeProject(), nil)
	f.jobsDAL.On("CheckAccess", ctx, mock.Anything, "proj-1", "us").Return(nil)
	f.jobsDAL.On("ListJobs", ctx, mock.Anything, "proj-1", "us", 30, maxScanRecords).
		Return([]domain.JobRecord{job("SELECT 1")}, nil)
	f.templatesDAL.On("Upsert", ctx, "proj-1", mock.Anything).
		Return(0, 0, assert.AnError)

	_, err := s.Scan(ctx, domain.ScanRequest{ProjectID: "proj-1"})
	assert.ErrorIs(t, err, ErrStoreWrite)
}

func TestScanEndToEnd(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	now := time.Now().UTC()

	records := []domain.JobRecord{
		{
			JobID:               "j1",
			Query:               "SELECT * FROM sales WHERE year = 2023",
			TotalBytesProcessed: 1e9,
			TotalBytesBilled:    1e9,
			StatementType:       "SELECT",
			CreationTime:        now.Add(-2 * time.Hour),
		},
		{
			JobID:               "j2",
			Query:               "SELECT * FROM sales WHERE year = 2024",
			TotalBytesProcessed: 3e9,
			TotalBytesBilled:    3e9,
			StatementType:       "SELECT",
			CreationTime:        now.Add(-time.Hour),
		},
		{
			JobID:               "j3",
			Query:               "SELECT id FROM users",
			TotalBytesProcessed: 5e8,
			TotalBytesBilled:    5e8,
			StatementType:       "SELECT",
			CacheHit:            true,
			CreationTime:        now,
		},
	}

	f.projectsDAL.On("Get", ctx, "proj-1").Return(activeProject(), nil)
	f.jobsDAL.On("CheckAccess", ctx, mock.Anything, "proj-1", "us").Return(nil)
	f.jobsDAL.On("ListJobs", ctx, mock.Anything, "proj-1", "us", 30, maxScanRecords).
		Return(records, nil)

	var written []domain.QueryTemplate

	f.templatesDAL.On("Upsert", ctx, "proj-1", mock.Anything).
		Run(func(args mock.Arguments) {
			written = args.Get(2).([]domain.QueryTemplate)
		}).
		Return(2, 0, nil)
	f.projectsDAL.On("SetLastScan", ctx, "proj-1", mock.Anything).Return(nil)

	summary, err := s.Scan(ctx, domain.ScanRequest{ProjectID: "proj-1"})
	require.NoError(t, err)

	assert.Equal(t, 3, summary.JobsScanned)
	assert.Equal(t, 2, summary.TemplatesFound)
	assert.Equal(t, 2, summary.TemplatesCreated)
	assert.Equal(t, 0, summary.JobsExcluded)

	require.Len(t, written, 2)

	byID := make(map[string]domain.QueryTemplate)
	for _, tmpl := range written {
		byID[tmpl.ID] = tmpl
	}

	salesID := TemplateID(NormalizeSQL(records[0].Query))
	usersID := TemplateID(NormalizeSQL(records[2].Query))

	salesTmpl, ok := byID[salesID]
	require.True(t, ok)
	assert.Equal(t, int64(2), salesTmpl.Stats.TotalRuns)
	assert.Equal(t, int64(4e9), salesTmpl.Stats.TotalBytesProcessed)
	assert.InDelta(t, 0.0, salesTmpl.Stats.CacheHitRate, 1e-9)
	assert.Equal(t, now.Add(-2*time.Hour), salesTmpl.FirstSeen)
	assert.Equal(t, now.Add(-time.Hour), salesTmpl.LastSeen)

	usersTmpl, ok := byID[usersID]
	require.True(t, ok)
	assert.Equal(t, int64(1), usersTmpl.Stats.TotalRuns)
	assert.InDelta(t, 100.0, usersTmpl.Stats.CacheHitRate, 1e-9)
}

func TestScanWindowOverrideClamped(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	f.projectsDAL.On("Get", ctx, "proj-1").Return(activeProject(), nil)
	f.jobsDAL.On("CheckAccess", ctx, mock.Anything, "proj-1", "us").Return(nil)
	f.jobsDAL.On("ListJobs", ctx, mock.Anything, "proj-1", "us", domain.MaxAnalysisWindowDays, maxScanRecords).
		Return([]domain.JobRecord{}, nil)
	f.templatesDAL.On("Upsert", ctx, "proj-1", mock.Anything).Return(0, 0, nil)
	f.projectsDAL.On("SetLastScan", ctx, "proj-1", mock.Anything).Return(nil)

	summary, err := s.Scan(ctx, domain.ScanRequest{ProjectID: "proj-1", WindowDays: 9999})
	require.NoError(t, err)
	assert.Equal(t, 0, summary.TemplatesFound)
}

func TestRefreshAllContinuesOnFailure(t *testing.T) {
	s, f := newTestService(t)
	ctx := context.Background()

	f.projectsDAL.On("List", ctx, true).Return([]domain.Project{
		{ID: "bad", IsActive: true},
		{ID: "proj-1", IsActive: true, Region: "us", AnalysisWindowDays: 30, PricePerTB: 5},
	}, nil)

	f.projectsDAL.On("Get", ctx, "bad").Return(nil, assert.AnError)

	f.projectsDAL.On("Get", ctx, "proj-1").Return(activeProject(), nil)
	f.jobsDAL.On("CheckAccess", ctx, mock.Anything, "proj-1", "us").Return(nil)
	f.jobsDAL.On("ListJobs", ctx, mock.Anything, "proj-1", "us", 30, maxScanRecords).
		Return([]domain.JobRecord{}, nil)
	f.templatesDAL.On("Upsert", ctx, "proj-1", mock.Anything).Return(0, 0, nil)
	f.projectsDAL.On("SetLastScan", ctx, "proj-1", mock.Anything).Return(nil)

	summaries, err := s.RefreshAll(ctx)
	require.NoError(t, err)
	require.Len(t, summaries, 1)
	assert.Equal(t, "proj-1", summaries[0].ProjectID)
}
