package connection

import (
	"context"

	"cloud.google.com/go/bigquery"
	"cloud.google.com/go/firestore"
	"github.com/gin-gonic/gin"

	"github.com/querylens/querylens/logger"
)

const (
	// CtxFirestoreKey is how firestore connections are stored/retrieved.
	CtxFirestoreKey = "app-firestore"

	// CtxBigqueryKey is how bigquery connections are stored/retrieved.
	CtxBigqueryKey = "app-bigquery"
)

type Connection struct {
	*FirestoreClient
	*BigQueryClient
}

// NewConnection initializes db connections necessary for api support.
func NewConnection(ctx context.Context, log *logger.Logging) (*Connection, error) {
	fs, err := NewFirestore(ctx, log)
	if err != nil {
		return nil, err
	}

	bq, err := NewBigQuery(ctx, log)
	if err != nil {
		return nil, err
	}

	return &Connection{
		fs,
		bq,
	}, nil
}

// Firestore returns a firestore connection that was stored in context.
// it returns by default a firestore connection, if there was not on context.
func (c *Connection) Firestore(ctx context.Context) *firestore.Client {
	if fs, ok := ctx.Value(CtxFirestoreKey).(*firestore.Client); ok {
		return fs
	}

	return c.fs
}

// Bigquery returns a bigquery connection that was stored in context.
// It returns by default a bigquery connection, if there was not one in the context.
func (c *Connection) Bigquery(ctx context.Context) *bigquery.Client {
	if bq, ok := ctx.Value(CtxBigqueryKey).(*bigquery.Client); ok {
		return bq
	}

	return c.bq
}

// FirestoreWithContext stores under gin context, a firestore connection.
func (c *Connection) FirestoreWithContext(ctx *gin.Context) {
	ctx.Set(CtxFirestoreKey, c.fs)
}

type FirestoreFromContextFun = func(ctx context.Context) *firestore.Client
type BigQueryFromContextFun = func(ctx context.Context) *bigquery.Client
