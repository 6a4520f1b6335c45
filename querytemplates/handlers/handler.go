package handlers

import (
	"context"
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"

	"github.com/querylens/querylens/framework/connection"
	"github.com/querylens/querylens/framework/web"
	"github.com/querylens/querylens/logger"
	"github.com/querylens/querylens/querytemplates/domain"
	"github.com/querylens/querylens/querytemplates/service"
	"github.com/querylens/querylens/querytemplates/service/iface"
)

type QueryTemplates struct {
	loggerProvider logger.Provider
	conn           *connection.Connection
	service        iface.QueryTemplates
}

func NewQueryTemplates(_ context.Context, log logger.Provider, conn *connection.Connection) *QueryTemplates {
	svc := service.NewTemplateService(log, conn)

	return &QueryTemplates{
		loggerProvider: log,
		conn:           conn,
		service:        svc,
	}
}

func (h *QueryTemplates) setLabels(ctx *gin.Context, module string) logger.ILogger {
	l := h.loggerProvider(ctx)

	l.SetLabels(map[string]string{
		"feature": "query-lens",
		"module":  module,
		"service": "querytemplates",
	})

	return l
}

func (h *QueryTemplates) Scan(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")

	l := h.setLabels(ctx, "scan")

	input := domain.ScanRequest{ProjectID: projectID}

	if raw := ctx.Query("windowDays"); raw != "" {
		days, err := strconv.Atoi(raw)
		if err != nil {
			return web.NewRequestError(err, http.StatusBadRequest)
		}

		input.WindowDays = days
	}

	if err := validator.New().Struct(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	startTimestamp := time.Now()

	l.Infof("scan of project '%s' started", input.ProjectID)

	summary, err := h.service.Scan(ctx, input)

	l.Infof("scan of project '%s' completed in '%v' seconds", input.ProjectID, time.Since(startTimestamp).Seconds())

	if err != nil {
		l.Error(err)
		return scanError(err)
	}

	return web.Respond(ctx, summary, http.StatusOK)
}

func (h *QueryTemplates) Refresh(ctx *gin.Context) error {
	l := h.setLabels(ctx, "scan")

	summaries, err := h.service.RefreshAll(ctx)
	if err != nil {
		l.Error(err)
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, summaries, http.StatusOK)
}

func (h *QueryTemplates) ListTemplates(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")

	h.setLabels(ctx, "templates")

	limit := 0

	if raw := ctx.Query("limit"); raw != "" {
		parsed, err := strconv.Atoi(raw)
		if err != nil || parsed < 0 {
			return web.NewRequestError(ErrInvalidLimit, http.StatusBadRequest)
		}

		limit = parsed
	}

	orderBy := ctx.DefaultQuery("orderBy", "cost")
	includeAnalyses := ctx.Query("includeAnalyses") == "true"

	templates, err := h.service.ListTemplates(ctx, projectID, orderBy, limit, includeAnalyses)
	if err != nil {
		return serviceError(err)
	}

	return web.Respond(ctx, templates, http.StatusOK)
}

func (h *QueryTemplates) GetTemplate(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")
	templateID := ctx.Param("templateID")

	h.setLabels(ctx, "templates")

	template, err := h.service.GetTemplate(ctx, projectID, templateID)
	if err != nil {
		return serviceError(err)
	}

	return web.Respond(ctx, template, http.StatusOK)
}

type attachAnalysisRequest struct {
	AnalysisID      string   `json:"analysisId" validate:"required"`
	ComplianceScore *float64 `json:"complianceScore" validate:"omitempty,gte=0,lte=100"`
}

func (h *QueryTemplates) AttachAnalysis(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")
	templateID := ctx.Param("templateID")

	h.setLabels(ctx, "analysis")

	var input attachAnalysisRequest

	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validator.New().Struct(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.AttachAnalysis(ctx, projectID, templateID, input.AnalysisID, input.ComplianceScore); err != nil {
		return serviceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

type markPendingRequest struct {
	TemplateIDs []string `json:"templateIds" validate:"required,min=1"`
}

func (h *QueryTemplates) MarkPending(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")

	h.setLabels(ctx, "analysis")

	var input markPendingRequest

	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validator.New().Struct(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := h.service.MarkPending(ctx, projectID, input.TemplateIDs); err != nil {
		return serviceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}

func (h *QueryTemplates) DashboardStats(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")

	h.setLabels(ctx, "dashboard")

	stats, err := h.service.DashboardStats(ctx, projectID)
	if err != nil {
		return serviceError(err)
	}

	return web.Respond(ctx, stats, http.StatusOK)
}

type createProjectRequest struct {
	ProjectID          string  `json:"projectId" validate:"required"`
	DisplayName        string  `json:"displayName"`
	Region             string  `json:"region"`
	AnalysisWindowDays int     `json:"analysisWindowDays" validate:"gte=0,lte=365"`
	PricePerTB         float64 `json:"pricePerTb" validate:"gte=0"`
}

func (h *QueryTemplates) CreateProject(ctx *gin.Context) error {
	l := h.setLabels(ctx, "projects")

	var input createProjectRequest

	if err := ctx.ShouldBindJSON(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	if err := validator.New().Struct(&input); err != nil {
		return web.NewRequestError(err, http.StatusBadRequest)
	}

	project, err := h.service.CreateProject(ctx, domain.Project{
		ID:                 input.ProjectID,
		DisplayName:        input.DisplayName,
		Region:             input.Region,
		AnalysisWindowDays: input.AnalysisWindowDays,
		PricePerTB:         input.PricePerTB,
	})
	if err != nil {
		if errors.Is(err, service.ErrProjectExists) {
			return web.NewRequestError(err, http.StatusConflict)
		}

		l.Error(err)

		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, project, http.StatusCreated)
}

func (h *QueryTemplates) GetProject(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")

	h.setLabels(ctx, "projects")

	project, err := h.service.GetProject(ctx, projectID)
	if err != nil {
		return serviceError(err)
	}

	return web.Respond(ctx, project, http.StatusOK)
}

func (h *QueryTemplates) ListProjects(ctx *gin.Context) error {
	h.setLabels(ctx, "projects")

	activeOnly := ctx.DefaultQuery("activeOnly", "true") != "false"

	projects, err := h.service.ListProjects(ctx, activeOnly)
	if err != nil {
		return web.NewRequestError(err, http.StatusInternalServerError)
	}

	return web.Respond(ctx, projects, http.StatusOK)
}

func (h *QueryTemplates) DeleteProject(ctx *gin.Context) error {
	projectID := ctx.Param("projectID")

	h.setLabels(ctx, "projects")

	purge := ctx.Query("purge") == "true"

	if err := h.service.DeleteProject(ctx, projectID, purge); err != nil {
		return serviceError(err)
	}

	return web.Respond(ctx, nil, http.StatusOK)
}
