package dal

import (
	"context"
	"time"

	"cloud.google.com/go/firestore"
	"github.com/hashicorp/go-multierror"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/querylens/querylens/querytemplates/domain"
)

const (
	projectsCollection  = "queryLensProjects"
	templatesCollection = "templates"
	analysesCollection  = "queryLensAnalyses"

	// Firestore caps a write batch at 500 operations.
	maxBatchSize = 500
)

// Sort keys accepted by List.
const (
	OrderByCost   = "cost"
	OrderByRuns   = "runs"
	OrderByImpact = "impact"
)

type TemplatesDAL struct {
	firestoreClient *firestore.Client
}

func NewTemplatesDAL(fs *firestore.Client) *TemplatesDAL {
	return &TemplatesDAL{
		firestoreClient: fs,
	}
}

func (d *TemplatesDAL) templatesRef(projectID string) *firestore.CollectionRef {
	return d.firestoreClient.Collection(projectsCollection).Doc(projectID).Collection(templatesCollection)
}

// Upsert writes scan results for a project. Templates that already exist keep
// their analysis linkage (result ID, status, compliance score) and original
// creation time; a completed analysis status never regresses. Writes go out
// in batches of up to 500 operations, and a failed batch reports every
// template identity it carried.
func (d *TemplatesDAL) Upsert(ctx context.Context, projectID string, templates []domain.QueryTemplate) (created, updated int, err error) {
	if len(templates) == 0 {
		return 0, 0, nil
	}

	col := d.templatesRef(projectID)

	refs := make([]*firestore.DocumentRef, len(templates))
	for i, tmpl := range templates {
		refs[i] = col.Doc(tmpl.ID)
	}

	snaps, err := d.firestoreClient.GetAll(ctx, refs)
	if err != nil {
		return 0, 0, errors.Wrapf(err, "loading existing templates for project %s", projectID)
	}

	existing := make(map[string]domain.QueryTemplate, len(snaps))

	for _, snap := range snaps {
		if !snap.Exists() {
			continue
		}

		var tmpl domain.QueryTemplate
		if err := snap.DataTo(&tmpl); err != nil {
			return 0, 0, errors.Wrapf(err, "decoding template %s", snap.Ref.ID)
		}

		existing[snap.Ref.ID] = tmpl
	}

	merged, created, updated := mergeTemplates(existing, templates, time.Now().UTC())

	var batchErrs error

	for _, bounds := range chunkBounds(len(merged), maxBatchSize) {
		chunk := merged[bounds[0]:bounds[1]]

		batch := d.firestoreClient.Batch()
		for _, tmpl := range chunk {
			batch.Set(col.Doc(tmpl.ID), tmpl)
		}

		if _, err := batch.Commit(ctx); err != nil {
			for _, tmpl := range chunk {
				batchErrs = multierror.Append(batchErrs, errors.Wrapf(err, "writing template %s", tmpl.ID))
			}
		}
	}

	return created, updated, batchErrs
}

// chunkBounds splits n items into [start, end) ranges of at most size each.
func chunkBounds(n, size int) [][2]int {
	var bounds [][2]int

	for start := 0; start < n; start += size {
		end := start + size
		if end > n {
			end = n
		}

		bounds = append(bounds, [2]int{start, end})
	}

	return bounds
}

// mergeTemplates overlays freshly scanned templates on what is already
// stored. Scan output carries no analysis state, so the stored linkage wins
// wholesale; first-seen keeps the earliest observation across scans.
func mergeTemplates(existing map[string]domain.QueryTemplate, incoming []domain.QueryTemplate, now time.Time) (merged []domain.QueryTemplate, created, updated int) {
	merged = make([]domain.QueryTemplate, len(incoming))

	for i, tmpl := range incoming {
		tmpl.UpdatedAt = now

		prev, ok := existing[tmpl.ID]
		if !ok {
			tmpl.CreatedAt = now
			tmpl.AnalysisStatus = domain.AnalysisStatusNew
			created++
		} else {
			tmpl.CreatedAt = prev.CreatedAt
			tmpl.AnalysisResultID = prev.AnalysisResultID
			tmpl.AnalysisStatus = prev.AnalysisStatus
			tmpl.ComplianceScore = prev.ComplianceScore

			if tmpl.AnalysisStatus == "" {
				tmpl.AnalysisStatus = domain.AnalysisStatusNew
			}

			if !prev.FirstSeen.IsZero() && prev.FirstSeen.Before(tmpl.FirstSeen) {
				tmpl.FirstSeen = prev.FirstSeen
			}

			updated++
		}

		merged[i] = tmpl
	}

	return merged, created, updated
}

// List returns the project's templates ordered by the requested key,
// highest first.
func (d *TemplatesDAL) List(ctx context.Context, projectID, orderBy string, limit int) ([]domain.QueryTemplate, error) {
	query := d.templatesRef(projectID).Query

	switch orderBy {
	case OrderByRuns:
		query = query.OrderBy("stats.totalRuns", firestore.Desc)
	case OrderByImpact:
		query = query.OrderBy("stats.impactScore", firestore.Desc)
	default:
		query = query.OrderBy("stats.totalCost", firestore.Desc)
	}

	if limit > 0 {
		query = query.Limit(limit)
	}

	it := query.Documents(ctx)
	defer it.Stop()

	var templates []domain.QueryTemplate

	for {
		snap, err := it.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, errors.Wrapf(err, "listing templates for project %s", projectID)
		}

		var tmpl domain.QueryTemplate
		if err := snap.DataTo(&tmpl); err != nil {
			return nil, errors.Wrapf(err, "decoding template %s", snap.Ref.ID)
		}

		templates = append(templates, tmpl)
	}

	return templates, nil
}

func (d *TemplatesDAL) Get(ctx context.Context, projectID, templateID string) (*domain.QueryTemplate, error) {
	snap, err := d.templatesRef(projectID).Doc(templateID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, errors.Wrapf(err, "getting template %s", templateID)
	}

	var tmpl domain.QueryTemplate
	if err := snap.DataTo(&tmpl); err != nil {
		return nil, errors.Wrapf(err, "decoding template %s", templateID)
	}

	return &tmpl, nil
}

// AttachAnalysis links a completed analysis result to a template and marks it
// completed. A fresher analysis may overwrite a previous one.
func (d *TemplatesDAL) AttachAnalysis(ctx context.Context, projectID, templateID, analysisID string, complianceScore *float64) error {
	updates := []firestore.Update{
		{Path: "analysisResultId", Value: analysisID},
		{Path: "analysisStatus", Value: domain.AnalysisStatusCompleted},
		{Path: "updatedAt", Value: time.Now().UTC()},
	}

	if complianceScore != nil {
		updates = append(updates, firestore.Update{Path: "complianceScore", Value: *complianceScore})
	}

	_, err := d.templatesRef(projectID).Doc(templateID).Update(ctx, updates)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return ErrNotFound
		}

		return errors.Wrapf(err, "attaching analysis %s to template %s", analysisID, templateID)
	}

	return nil
}

// MarkPending marks templates as queued for analysis, skipping any that
// already completed.
func (d *TemplatesDAL) MarkPending(ctx context.Context, projectID string, templateIDs []string) error {
	var errs error

	for _, id := range templateIDs {
		tmpl, err := d.Get(ctx, projectID, id)
		if err != nil {
			errs = multierror.Append(errs, err)
			continue
		}

		if tmpl.AnalysisStatus == domain.AnalysisStatusCompleted {
			continue
		}

		_, err = d.templatesRef(projectID).Doc(id).Update(ctx, []firestore.Update{
			{Path: "analysisStatus", Value: domain.AnalysisStatusPending},
			{Path: "updatedAt", Value: time.Now().UTC()},
		})
		if err != nil {
			errs = multierror.Append(errs, errors.Wrapf(err, "marking template %s pending", id))
		}
	}

	return errs
}

// DeleteAll removes every stored template of a project in batched deletes.
func (d *TemplatesDAL) DeleteAll(ctx context.Context, projectID string) error {
	it := d.templatesRef(projectID).DocumentRefs(ctx)

	batch := d.firestoreClient.Batch()
	pending := 0

	for {
		ref, err := it.Next()
		if err == iterator.Done {
			break
		}

		if err != nil {
			return errors.Wrapf(err, "listing template refs for project %s", projectID)
		}

		batch.Delete(ref)
		pending++

		if pending == maxBatchSize {
			if _, err := batch.Commit(ctx); err != nil {
				return errors.Wrapf(err, "deleting templates for project %s", projectID)
			}

			batch = d.firestoreClient.Batch()
			pending = 0
		}
	}

	if pending > 0 {
		if _, err := batch.Commit(ctx); err != nil {
			return errors.Wrapf(err, "deleting templates for project %s", projectID)
		}
	}

	return nil
}
