package bq

import (
	"context"
	"strconv"
	"strings"

	"cloud.google.com/go/bigquery"
	"github.com/pkg/errors"
	"google.golang.org/api/iterator"

	"github.com/querylens/querylens/logger"
	"github.com/querylens/querylens/querytemplates/domain"
)

const scanJobPrefix = "querylens_scan"

const jobsHistoryQueryTemplate = `
SELECT
	job_id,
	query,
	user_email,
	creation_time,
	start_time,
	end_time,
	total_bytes_processed,
	total_bytes_billed,
	total_slot_ms,
	cache_hit,
	statement_type,
	error_result.reason AS error_reason,
	referenced_tables
FROM ` + "`{project_id}`.`region-{region}`.INFORMATION_SCHEMA.JOBS_BY_PROJECT" + `
WHERE
	creation_time >= TIMESTAMP_SUB(CURRENT_TIMESTAMP(), INTERVAL {window_days} DAY)
	AND job_type = 'QUERY'
	AND state = 'DONE'
ORDER BY creation_time DESC
LIMIT {limit}
`

const accessProbeQueryTemplate = `
SELECT job_id
FROM ` + "`{project_id}`.`region-{region}`.INFORMATION_SCHEMA.JOBS_BY_PROJECT" + `
LIMIT 1
`

type jobRow struct {
	JobID               bigquery.NullString    `bigquery:"job_id"`
	Query               bigquery.NullString    `bigquery:"query"`
	UserEmail           bigquery.NullString    `bigquery:"user_email"`
	CreationTime        bigquery.NullTimestamp `bigquery:"creation_time"`
	StartTime           bigquery.NullTimestamp `bigquery:"start_time"`
	EndTime             bigquery.NullTimestamp `bigquery:"end_time"`
	TotalBytesProcessed bigquery.NullInt64     `bigquery:"total_bytes_processed"`
	TotalBytesBilled    bigquery.NullInt64     `bigquery:"total_bytes_billed"`
	TotalSlotMS         bigquery.NullInt64     `bigquery:"total_slot_ms"`
	CacheHit            bigquery.NullBool      `bigquery:"cache_hit"`
	StatementType       bigquery.NullString    `bigquery:"statement_type"`
	ErrorReason         bigquery.NullString    `bigquery:"error_reason"`
	ReferencedTables    []tableRefRow          `bigquery:"referenced_tables"`
}

type tableRefRow struct {
	ProjectID bigquery.NullString `bigquery:"project_id"`
	DatasetID bigquery.NullString `bigquery:"dataset_id"`
	TableID   bigquery.NullString `bigquery:"table_id"`
}

type JobsDAL struct {
	loggerProvider logger.Provider
}

func NewJobsDAL(loggerProvider logger.Provider) *JobsDAL {
	return &JobsDAL{
		loggerProvider: loggerProvider,
	}
}

// ListJobs reads the project's recent query jobs from
// INFORMATION_SCHEMA.JOBS_BY_PROJECT, newest first, capped at limit rows.
func (d *JobsDAL) ListJobs(ctx context.Context, client *bigquery.Client, projectID, region string, windowDays, limit int) ([]domain.JobRecord, error) {
	l := d.loggerProvider(ctx)

	query := strings.NewReplacer(
		"{project_id}", projectID,
		"{region}", region,
		"{window_days}", strconv.Itoa(windowDays),
		"{limit}", strconv.Itoa(limit),
	).Replace(jobsHistoryQueryTemplate)

	queryJob := client.Query(query)
	queryJob.JobIDConfig = bigquery.JobIDConfig{JobID: scanJobPrefix, AddJobIDSuffix: true}
	queryJob.Labels = map[string]string{
		"feature": "query-lens",
		"module":  "scan",
	}

	it, err := queryJob.Read(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "reading job history for project %s", projectID)
	}

	records := make([]domain.JobRecord, 0)

	for {
		var row jobRow

		err := it.Next(&row)
		if err == iterator.Done {
			break
		}

		if err != nil {
			return nil, errors.Wrapf(err, "iterating job history for project %s", projectID)
		}

		records = append(records, rowToRecord(row))
	}

	l.Infof("fetched %d job records for project %s", len(records), projectID)

	return records, nil
}

// CheckAccess probes the project's job history with a minimal query so a
// permission problem surfaces before a full scan starts.
func (d *JobsDAL) CheckAccess(ctx context.Context, client *bigquery.Client, projectID, region string) error {
	query := strings.NewReplacer(
		"{project_id}", projectID,
		"{region}", region,
	).Replace(accessProbeQueryTemplate)

	it, err := client.Query(query).Read(ctx)
	if err != nil {
		return errors.Wrapf(err, "probing job history access for project %s", projectID)
	}

	var row jobRow

	if err := it.Next(&row); err != nil && err != iterator.Done {
		return errors.Wrapf(err, "probing job history access for project %s", projectID)
	}

	return nil
}

func rowToRecord(row jobRow) domain.JobRecord {
	rec := domain.JobRecord{
		JobID:               row.JobID.StringVal,
		Query:               row.Query.StringVal,
		UserEmail:           row.UserEmail.StringVal,
		TotalBytesProcessed: row.TotalBytesProcessed.Int64,
		TotalBytesBilled:    row.TotalBytesBilled.Int64,
		TotalSlotMS:         row.TotalSlotMS.Int64,
		CacheHit:            row.CacheHit.Valid && row.CacheHit.Bool,
		StatementType:       row.StatementType.StringVal,
		HasError:            row.ErrorReason.Valid && row.ErrorReason.StringVal != "",
	}

	if row.CreationTime.Valid {
		rec.CreationTime = row.CreationTime.Timestamp
	}

	if row.StartTime.Valid {
		rec.StartTime = row.StartTime.Timestamp
	}

	if row.EndTime.Valid {
		rec.EndTime = row.EndTime.Timestamp
	}

	if row.StartTime.Valid && row.EndTime.Valid && row.EndTime.Timestamp.After(row.StartTime.Timestamp) {
		rec.RuntimeSeconds = row.EndTime.Timestamp.Sub(row.StartTime.Timestamp).Seconds()
	}

	for _, ref := range row.ReferencedTables {
		if !ref.ProjectID.Valid || !ref.DatasetID.Valid || !ref.TableID.Valid {
			continue
		}

		rec.ReferencedTables = append(rec.ReferencedTables, domain.TableReference{
			ProjectID: ref.ProjectID.StringVal,
			DatasetID: ref.DatasetID.StringVal,
			TableID:   ref.TableID.StringVal,
		})
	}

	return rec
}
