package domain

import "time"

// TableReference identifies one table referenced by a job.
type TableReference struct {
	ProjectID string `json:"projectId"`
	DatasetID string `json:"datasetId"`
	TableID   string `json:"tableId"`
}

// JobRecord is one historical query execution read from the job-history
// source. Records are never mutated and never persisted individually; they
// only live for the duration of one scan.
type JobRecord struct {
	JobID               string
	Query               string
	UserEmail           string
	CreationTime        time.Time
	StartTime           time.Time
	EndTime             time.Time
	TotalBytesProcessed int64
	TotalBytesBilled    int64
	TotalSlotMS         int64
	RuntimeSeconds      float64
	CacheHit            bool
	StatementType       string
	HasError            bool
	ReferencedTables    []TableReference
}
