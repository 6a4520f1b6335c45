package service

import "errors"

var (
	// ErrSourceUnavailable means the job-history source could not be queried.
	ErrSourceUnavailable = errors.New("job history source unavailable")
	// ErrNoJobHistoryAccess means the caller lacks permission on the
	// project's INFORMATION_SCHEMA.
	ErrNoJobHistoryAccess = errors.New("no access to project job history")
	// ErrStoreWrite means persisting scan results failed after aggregation.
	ErrStoreWrite = errors.New("template store write failed")
	// ErrAggregationInputEmpty is returned when stats are requested for an
	// empty record group.
	ErrAggregationInputEmpty = errors.New("aggregation requires at least one record")
	// ErrProjectNotFound means the requested project is not registered.
	ErrProjectNotFound = errors.New("project not found")
	// ErrTemplateNotFound means the requested template does not exist.
	ErrTemplateNotFound = errors.New("template not found")
)
