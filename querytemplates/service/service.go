package service

import (
	"context"
	"sync"

	"github.com/querylens/querylens/framework/connection"
	"github.com/querylens/querylens/logger"
	bqDAL "github.com/querylens/querylens/querytemplates/dal/bigquery"
	bqIface "github.com/querylens/querylens/querytemplates/dal/bigquery/iface"
	fsDAL "github.com/querylens/querylens/querytemplates/dal/firestore"
	fsIface "github.com/querylens/querylens/querytemplates/dal/firestore/iface"
)

type TemplateService struct {
	loggerProvider logger.Provider
	bqFun          connection.BigQueryFromContextFun

	normalizer   PatternNormalizer
	jobsDAL      bqIface.Jobs
	templatesDAL fsIface.Templates
	projectsDAL  fsIface.Projects
	analysesDAL  fsIface.Analyses

	// Scans are serialized per project: a second scan request for the same
	// project waits for the running one instead of racing its writes.
	scanMu sync.Mutex
	scans  map[string]*sync.Mutex
}

func NewTemplateService(log logger.Provider, conn *connection.Connection) *TemplateService {
	fs := conn.Firestore(context.Background())

	return &TemplateService{
		loggerProvider: log,
		bqFun:          conn.Bigquery,
		normalizer:     RegexNormalizer{},
		jobsDAL:        bqDAL.NewJobsDAL(log),
		templatesDAL:   fsDAL.NewTemplatesDAL(fs),
		projectsDAL:    fsDAL.NewProjectsDAL(fs),
		analysesDAL:    fsDAL.NewAnalysesDAL(fs),
		scans:          make(map[string]*sync.Mutex),
	}
}

func (s *TemplateService) projectLock(projectID string) *sync.Mutex {
	s.scanMu.Lock()
	defer s.scanMu.Unlock()

	mu, ok := s.scans[projectID]
	if !ok {
		mu = &sync.Mutex{}
		s.scans[projectID] = mu
	}

	return mu
}
