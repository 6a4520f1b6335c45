package service

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"google.golang.org/api/googleapi"

	"github.com/querylens/querylens/common"
	fsDAL "github.com/querylens/querylens/querytemplates/dal/firestore"
	"github.com/querylens/querylens/querytemplates/domain"
)

// maxScanRecords caps how many job records one scan pulls from the source.
const maxScanRecords = 10000

// Scan runs one discovery pass over a project's job history: fetch, group,
// aggregate, classify and persist.
func (s *TemplateService) Scan(ctx context.Context, req domain.ScanRequest) (*domain.ScanSummary, error) {
	l := s.loggerProvider(ctx)

	mu := s.projectLock(req.ProjectID)
	mu.Lock()
	defer mu.Unlock()

	project, err := s.projectsDAL.Get(ctx, req.ProjectID)
	if err != nil {
		if errors.Is(err, fsDAL.ErrNotFound) {
			return nil, errors.Wrapf(ErrProjectNotFound, "project %s", req.ProjectID)
		}

		return nil, err
	}

	if !project.IsActive {
		return nil, errors.Wrapf(ErrProjectNotFound, "project %s is deactivated", req.ProjectID)
	}

	windowDays := project.AnalysisWindowDays
	if req.WindowDays > 0 {
		windowDays = req.WindowDays
	}

	if windowDays > domain.MaxAnalysisWindowDays {
		windowDays = domain.MaxAnalysisWindowDays
	}

	pricePerTB := project.PricePerTB
	if pricePerTB <= 0 {
		pricePerTB = common.DefaultPricePerTB
	}

	started := time.Now().UTC()

	bq := s.bqFun(ctx)

	if err := s.jobsDAL.CheckAccess(ctx, bq, project.ID, project.Region); err != nil {
		return nil, classifySourceError(err, project.ID)
	}

	records, err := s.jobsDAL.ListJobs(ctx, bq, project.ID, project.Region, windowDays, maxScanRecords)
	if err != nil {
		return nil, classifySourceError(err, project.ID)
	}

	grouped := GroupJobs(s.normalizer, records)

	templates := make([]domain.QueryTemplate, 0, len(grouped.Groups))

	var totalCost float64

	for _, group := range grouped.Groups {
		tmpl, err := s.buildTemplate(project.ID, group, pricePerTB)
		if err != nil {
			l.Errorf("skipping template %s: %v", group.TemplateID, err)
			continue
		}

		totalCost += tmpl.Stats.TotalCost

		templates = append(templates, tmpl)
	}

	created, updated, err := s.templatesDAL.Upsert(ctx, project.ID, templates)
	if err != nil {
		return nil, errors.Wrapf(ErrStoreWrite, "project %s: %v", project.ID, err)
	}

	finished := time.Now().UTC()

	if err := s.projectsDAL.SetLastScan(ctx, project.ID, finished); err != nil {
		l.Errorf("recording scan time for project %s: %v", project.ID, err)
	}

	l.Infof("scan of project %s: %d jobs, %d templates (%d new, %d updated), %d excluded, %d malformed",
		project.ID, len(records), len(templates), created, updated, grouped.Excluded, grouped.Malformed)

	return &domain.ScanSummary{
		ProjectID:        project.ID,
		JobsScanned:      len(records),
		JobsExcluded:     grouped.Excluded,
		JobsMalformed:    grouped.Malformed,
		TemplatesFound:   len(templates),
		TemplatesCreated: created,
		TemplatesUpdated: updated,
		TotalCost:        totalCost,
		StartedAt:        started,
		FinishedAt:       finished,
	}, nil
}

// RefreshAll scans every active project in turn and reports per-project
// summaries. A failing project does not stop the sweep.
func (s *TemplateService) RefreshAll(ctx context.Context) ([]domain.ScanSummary, error) {
	l := s.loggerProvider(ctx)

	projects, err := s.projectsDAL.List(ctx, true)
	if err != nil {
		return nil, errors.Wrap(err, "listing active projects")
	}

	summaries := make([]domain.ScanSummary, 0, len(projects))

	for _, project := range projects {
		summary, err := s.Scan(ctx, domain.ScanRequest{ProjectID: project.ID})
		if err != nil {
			l.Errorf("refresh of project %s failed: %v", project.ID, err)
			continue
		}

		summaries = append(summaries, *summary)
	}

	return summaries, nil
}

// buildTemplate turns one job group into its stored template. Identity stays
// derived from the full pattern; only the displayed pattern is truncated.
func (s *TemplateService) buildTemplate(projectID string, group *JobGroup, pricePerTB float64) (domain.QueryTemplate, error) {
	stats, err := Aggregate(group.Records, pricePerTB)
	if err != nil {
		return domain.QueryTemplate{}, err
	}

	firstSeen, lastSeen := seenRange(group.Records)

	pattern := group.Pattern
	if len(pattern) > domain.MaxPatternLength {
		pattern = pattern[:domain.MaxPatternLength]
	}

	return domain.QueryTemplate{
		ID:         group.TemplateID,
		ProjectID:  projectID,
		SQLPattern: pattern,
		SampleSQL:  group.SampleSQL,
		Tables:     ExtractTables(group.Records),
		FirstSeen:  firstSeen,
		LastSeen:   lastSeen,
		Stats:      stats,
		Priority:   Classify(stats),
	}, nil
}

func seenRange(records []domain.JobRecord) (first, last time.Time) {
	for _, rec := range records {
		if rec.CreationTime.IsZero() {
			continue
		}

		if first.IsZero() || rec.CreationTime.Before(first) {
			first = rec.CreationTime
		}

		if rec.CreationTime.After(last) {
			last = rec.CreationTime
		}
	}

	return first, last
}

// classifySourceError separates "we are not allowed to look" from "the
// source is broken".
func classifySourceError(err error, projectID string) error {
	var apiErr *googleapi.Error
	if errors.As(err, &apiErr) && apiErr.Code == 403 {
		return errors.Wrapf(ErrNoJobHistoryAccess, "project %s", projectID)
	}

	return errors.Wrapf(ErrSourceUnavailable, "project %s: %v", projectID, err)
}
