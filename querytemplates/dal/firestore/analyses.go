package dal

import (
	"context"
	"sync"

	"cloud.google.com/go/firestore"
	"github.com/pkg/errors"
	"golang.org/x/sync/errgroup"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/querylens/querylens/querytemplates/domain"
)

// maxConcurrentFetches bounds parallel document reads when hydrating a page
// of templates with their analysis results.
const maxConcurrentFetches = 10

type AnalysesDAL struct {
	firestoreClient *firestore.Client
}

func NewAnalysesDAL(fs *firestore.Client) *AnalysesDAL {
	return &AnalysesDAL{
		firestoreClient: fs,
	}
}

func (d *AnalysesDAL) analysesRef() *firestore.CollectionRef {
	return d.firestoreClient.Collection(analysesCollection)
}

func (d *AnalysesDAL) Get(ctx context.Context, analysisID string) (*domain.AnalysisResult, error) {
	snap, err := d.analysesRef().Doc(analysisID).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, ErrNotFound
		}

		return nil, errors.Wrapf(err, "getting analysis %s", analysisID)
	}

	var result domain.AnalysisResult
	if err := snap.DataTo(&result); err != nil {
		return nil, errors.Wrapf(err, "decoding analysis %s", analysisID)
	}

	return &result, nil
}

// GetBatch fetches analysis results by ID with bounded concurrency. Missing
// documents are skipped rather than failing the batch.
func (d *AnalysesDAL) GetBatch(ctx context.Context, analysisIDs []string) (map[string]*domain.AnalysisResult, error) {
	results := make(map[string]*domain.AnalysisResult, len(analysisIDs))

	var mu sync.Mutex

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrentFetches)

	for _, id := range analysisIDs {
		id := id

		g.Go(func() error {
			result, err := d.Get(ctx, id)
			if err != nil {
				if errors.Is(err, ErrNotFound) {
					return nil
				}

				return err
			}

			mu.Lock()
			results[id] = result
			mu.Unlock()

			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return results, nil
}
