//go:generate mockery --name Jobs --output ../mocks --outpkg mocks --case=underscore
package iface

import (
	"context"

	"cloud.google.com/go/bigquery"

	"github.com/querylens/querylens/querytemplates/domain"
)

type Jobs interface {
	ListJobs(
		ctx context.Context,
		client *bigquery.Client,
		projectID string,
		region string,
		windowDays int,
		limit int,
	) ([]domain.JobRecord, error)

	CheckAccess(
		ctx context.Context,
		client *bigquery.Client,
		projectID string,
		region string,
	) error
}
