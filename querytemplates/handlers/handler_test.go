package handlers

import (
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"github.com/querylens/querylens/framework/web"
	"github.com/querylens/querylens/logger"
	loggerMocks "github.com/querylens/querylens/logger/mocks"
	"github.com/querylens/querylens/querytemplates/domain"
	"github.com/querylens/querylens/querytemplates/service"
	"github.com/querylens/querylens/querytemplates/service/mocks"
)

type fields struct {
	service     *mocks.QueryTemplates
	loggerMocks *loggerMocks.ILogger
}

func newTestHandler(t *testing.T) (*QueryTemplates, *fields) {
	f := &fields{
		service:     mocks.NewQueryTemplates(t),
		loggerMocks: loggerMocks.NewILogger(t),
	}

	h := &QueryTemplates{
		service: f.service,
		loggerProvider: func(ctx context.Context) logger.ILogger {
			return f.loggerMocks
		},
	}

	return h, f
}

func TestScanHandler(t *testing.T) {
	projectID := "test-project-1"

	scanError := errors.New("scan error")

	summary := &domain.ScanSummary{
		ProjectID:      projectID,
		JobsScanned:    3,
		TemplatesFound: 2,
	}

	type args struct {
		body io.Reader
	}

	tests := []struct {
		name         string
		args         args
		on           func(*fields, *gin.Context)
		wantedStatus int
		wantErr      bool
	}{
		{
			name: "successful scan",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.loggerMocks.On("Infof", "scan of project '%s' started", projectID).Once()
				f.service.On("Scan", ctx, domain.ScanRequest{ProjectID: projectID}).
					Return(summary, nil).Once()
				f.loggerMocks.On("Infof", "scan of project '%s' completed in '%v' seconds", projectID, mock.AnythingOfType("float64")).Once()
			},
			wantedStatus: http.StatusOK,
		},
		{
			name: "project not registered",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.loggerMocks.On("Infof", "scan of project '%s' started", projectID).Once()
				f.service.On("Scan", ctx, domain.ScanRequest{ProjectID: projectID}).
					Return(nil, service.ErrProjectNotFound).Once()
				f.loggerMocks.On("Infof", "scan of project '%s' completed in '%v' seconds", projectID, mock.AnythingOfType("float64")).Once()
				f.loggerMocks.On("Error", service.ErrProjectNotFound).Once()
			},
			wantedStatus: http.StatusNotFound,
			wantErr:      true,
		},
		{
			name: "no access to job history",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.loggerMocks.On("Infof", "scan of project '%s' started", projectID).Once()
				f.service.On("Scan", ctx, domain.ScanRequest{ProjectID: projectID}).
					Return(nil, service.ErrNoJobHistoryAccess).Once()
				f.loggerMocks.On("Infof", "scan of project '%s' completed in '%v' seconds", projectID, mock.AnythingOfType("float64")).Once()
				f.loggerMocks.On("Error", service.ErrNoJobHistoryAccess).Once()
			},
			wantedStatus: http.StatusForbidden,
			wantErr:      true,
		},
		{
			name: "scan failed",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.loggerMocks.On("Infof", "scan of project '%s' started", projectID).Once()
				f.service.On("Scan", ctx, domain.ScanRequest{ProjectID: projectID}).
					Return(nil, scanError).Once()
				f.loggerMocks.On("Infof", "scan of project '%s' completed in '%v' seconds", projectID, mock.AnythingOfType("float64")).Once()
				f.loggerMocks.On("Error", scanError).Once()
			},
			wantedStatus: http.StatusInternalServerError,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			h, f := newTestHandler(t)

			if tt.on != nil {
				tt.on(f, ctx)
			}

			ctx.Params = []gin.Param{
				{Key: "projectID", Value: projectID},
			}
			ctx.Request = httptest.NewRequest(http.MethodPost, "/queryTemplates/projects/"+projectID+"/scan", tt.args.body)

			err := h.Scan(ctx)
			if err == nil {
				assert.False(t, tt.wantErr)
				assert.Equal(t, tt.wantedStatus, recorder.Code)

				return
			}

			assert.True(t, tt.wantErr)
			assert.Equal(t, tt.wantedStatus, statusOf(t, err))
		})
	}
}

func statusOf(t *testing.T, err error) int {
	t.Helper()

	var webErr *web.Error
	if !errors.As(err, &webErr) {
		t.Fatalf("error %v carries no status", err)
	}

	return webErr.Status
}

func TestCreateProjectHandler(t *testing.T) {
	validPayload := `{"projectId": "proj-1", "region": "eu", "analysisWindowDays": 14}`

	tests := []struct {
		name         string
		body         io.Reader
		on           func(*fields, *gin.Context)
		wantedStatus int
		wantErr      bool
	}{
		{
			name: "successful registration",
			body: strings.NewReader(validPayload),
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("CreateProject", ctx, domain.Project{
					ID:                 "proj-1",
					Region:             "eu",
					AnalysisWindowDays: 14,
				}).Return(&domain.Project{ID: "proj-1", IsActive: true}, nil).Once()
			},
			wantedStatus: http.StatusCreated,
		},
		{
			name: "duplicate active project",
			body: strings.NewReader(validPayload),
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("CreateProject", ctx, mock.Anything).
					Return(nil, service.ErrProjectExists).Once()
			},
			wantedStatus: http.StatusConflict,
			wantErr:      true,
		},
		{
			name: "missing project id",
			body: strings.NewReader(`{"region": "eu"}`),
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
			},
			wantedStatus: http.StatusBadRequest,
			wantErr:      true,
		},
		{
			name: "no payload",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
			},
			wantedStatus: http.StatusBadRequest,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			h, f := newTestHandler(t)

			if tt.on != nil {
				tt.on(f, ctx)
			}

			ctx.Request = httptest.NewRequest(http.MethodPost, "/queryTemplates/projects", tt.body)

			err := h.CreateProject(ctx)
			if err == nil {
				assert.False(t, tt.wantErr)
				assert.Equal(t, tt.wantedStatus, recorder.Code)

				return
			}

			assert.True(t, tt.wantErr)
			assert.Equal(t, tt.wantedStatus, statusOf(t, err))
		})
	}
}

func TestDeleteProjectHandler(t *testing.T) {
	projectID := "proj-1"

	tests := []struct {
		name         string
		query        string
		on           func(*fields, *gin.Context)
		wantedStatus int
		wantErr      bool
	}{
		{
			name:  "soft delete by default",
			query: "",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("DeleteProject", ctx, projectID, false).Return(nil).Once()
			},
			wantedStatus: http.StatusOK,
		},
		{
			name:  "purge removes stored templates",
			query: "?purge=true",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("DeleteProject", ctx, projectID, true).Return(nil).Once()
			},
			wantedStatus: http.StatusOK,
		},
		{
			name:  "project not registered",
			query: "",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("DeleteProject", ctx, projectID, false).
					Return(service.ErrProjectNotFound).Once()
			},
			wantedStatus: http.StatusNotFound,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			h, f := newTestHandler(t)

			if tt.on != nil {
				tt.on(f, ctx)
			}

			ctx.Params = []gin.Param{
				{Key: "projectID", Value: projectID},
			}
			ctx.Request = httptest.NewRequest(http.MethodDelete, "/queryTemplates/projects/"+projectID+tt.query, nil)

			err := h.DeleteProject(ctx)
			if err == nil {
				assert.False(t, tt.wantErr)
				assert.Equal(t, tt.wantedStatus, recorder.Code)

				return
			}

			assert.True(t, tt.wantErr)
			assert.Equal(t, tt.wantedStatus, statusOf(t, err))
		})
	}
}

func TestListTemplatesHandler(t *testing.T) {
	projectID := "proj-1"

	tests := []struct {
		name         string
		query        string
		on           func(*fields, *gin.Context)
		wantedStatus int
		wantErr      bool
	}{
		{
			name:  "defaults to cost ordering",
			query: "",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("ListTemplates", ctx, projectID, "cost", 0, false).
					Return([]service.TemplateWithAnalysis{}, nil).Once()
			},
			wantedStatus: http.StatusOK,
		},
		{
			name:  "custom ordering with analyses",
			query: "?orderBy=impact&limit=5&includeAnalyses=true",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
				f.service.On("ListTemplates", ctx, projectID, "impact", 5, true).
					Return([]service.TemplateWithAnalysis{}, nil).Once()
			},
			wantedStatus: http.StatusOK,
		},
		{
			name:  "bad limit",
			query: "?limit=abc",
			on: func(f *fields, ctx *gin.Context) {
				f.loggerMocks.On("SetLabels", mock.Anything)
			},
			wantedStatus: http.StatusBadRequest,
			wantErr:      true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			recorder := httptest.NewRecorder()
			ctx, _ := gin.CreateTestContext(recorder)

			h, f := newTestHandler(t)

			if tt.on != nil {
				tt.on(f, ctx)
			}

			ctx.Params = []gin.Param{
				{Key: "projectID", Value: projectID},
			}
			ctx.Request = httptest.NewRequest(http.MethodGet, "/queryTemplates/projects/"+projectID+"/templates"+tt.query, nil)

			err := h.ListTemplates(ctx)
			if err == nil {
				assert.False(t, tt.wantErr)
				assert.Equal(t, tt.wantedStatus, recorder.Code)

				return
			}

			assert.True(t, tt.wantErr)
			assert.Equal(t, tt.wantedStatus, statusOf(t, err))
		})
	}
}
