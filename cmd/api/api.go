package api

import (
	"context"
	"net/http"
	"os"

	"github.com/gin-gonic/gin"

	"github.com/querylens/querylens/framework/connection"
	"github.com/querylens/querylens/framework/mid"
	"github.com/querylens/querylens/framework/web"
	"github.com/querylens/querylens/logger"
	templateHandlers "github.com/querylens/querylens/querytemplates/handlers"
)

// API constructs an api with the needed functionality.
type API struct {
	shutdown chan os.Signal
	log      *logger.Logging
	conn     *connection.Connection
}

func NewAPI(shutdown chan os.Signal, logging *logger.Logging, conn *connection.Connection) *API {
	return &API{
		shutdown,
		logging,
		conn,
	}
}

// Build builds the api endpoints with the needed middlewares, and returns http.Handler interface.
func (a *API) Build() http.Handler {
	loggerProvider := logger.FromContext

	backgroundContext := context.Background()

	// Construct the web.App which holds all routes as well as common Middleware.
	app := web.NewApp(a.shutdown, a.conn, mid.Logger(), mid.Errors(), mid.Panics(), mid.Sentry())

	queryTemplates := templateHandlers.NewQueryTemplates(backgroundContext, loggerProvider, a.conn)

	app.Get("/health", func(ctx *gin.Context) error {
		return web.Respond(ctx, nil, http.StatusOK)
	})

	projectsGroup := web.NewGroup(app, "/projects")
	{
		projectsGroup.Post("", queryTemplates.CreateProject)
		projectsGroup.Get("", queryTemplates.ListProjects)
		projectsGroup.Get("/:projectID", queryTemplates.GetProject)
		projectsGroup.Delete("/:projectID", queryTemplates.DeleteProject)

		projectsGroup.Post("/:projectID/scan", queryTemplates.Scan, mid.ValidatePathParamNotEmpty("projectID"))

		projectsGroup.Get("/:projectID/templates", queryTemplates.ListTemplates)
		projectsGroup.Get("/:projectID/templates/:templateID", queryTemplates.GetTemplate)
		projectsGroup.Post("/:projectID/templates/:templateID/analysis", queryTemplates.AttachAnalysis)
		projectsGroup.Post("/:projectID/templates/pending", queryTemplates.MarkPending)

		projectsGroup.Get("/:projectID/dashboard", queryTemplates.DashboardStats)
	}

	tasksGroup := web.NewGroup(app, "/tasks")
	{
		tasksGroup.Post("/refresh", queryTemplates.Refresh)
	}

	return app
}
