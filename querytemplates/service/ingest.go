package service

import (
	"regexp"
	"sort"
	"strings"

	"github.com/querylens/querylens/querytemplates/domain"
)

// Statement types eligible for template discovery. Anything else (DDL, DML,
// scripts) is excluded from grouping.
var allowedStatementTypes = map[string]bool{
	"SELECT": true,
}

// tableRefRegexp recovers dataset-qualified table references from raw SQL
// when the job metadata does not carry structured references.
var tableRefRegexp = regexp.MustCompile("(?i)(?:FROM|JOIN)\\s+`?([a-zA-Z0-9_-]+)\\.([a-zA-Z0-9_-]+)\\.([a-zA-Z0-9_-]+)`?")

// JobGroup is a set of job records sharing one template identity.
type JobGroup struct {
	TemplateID string
	Pattern    string
	SampleSQL  string
	Records    []domain.JobRecord
}

// GroupResult carries the grouped records plus per-scan bookkeeping counts.
type GroupResult struct {
	Groups    map[string]*JobGroup
	Excluded  int
	Malformed int
}

// Excluded reports whether a job record is out of scope for discovery:
// failed jobs, jobs that billed nothing, and non-SELECT statements.
func Excluded(rec domain.JobRecord) bool {
	if rec.HasError {
		return true
	}

	if rec.TotalBytesBilled <= 0 {
		return true
	}

	return !allowedStatementTypes[rec.StatementType]
}

// GroupJobs partitions job records by template identity, applying the
// exclusion filter. Records with an empty query text are counted as
// malformed and skipped rather than failing the scan.
func GroupJobs(norm PatternNormalizer, records []domain.JobRecord) GroupResult {
	res := GroupResult{Groups: make(map[string]*JobGroup)}

	for _, rec := range records {
		if strings.TrimSpace(rec.Query) == "" {
			res.Malformed++
			continue
		}

		if Excluded(rec) {
			res.Excluded++
			continue
		}

		pattern := norm.Normalize(rec.Query)
		if pattern == "" {
			res.Malformed++
			continue
		}

		id := TemplateID(pattern)

		group, ok := res.Groups[id]
		if !ok {
			group = &JobGroup{
				TemplateID: id,
				Pattern:    pattern,
				SampleSQL:  rec.Query,
			}
			res.Groups[id] = group
		}

		group.Records = append(group.Records, rec)
	}

	return res
}

// ExtractTables returns the sorted, deduplicated set of fully qualified
// tables touched by a group. Structured references from job metadata win;
// the regex fallback only runs for records without them.
func ExtractTables(records []domain.JobRecord) []string {
	seen := make(map[string]bool)

	for _, rec := range records {
		if len(rec.ReferencedTables) > 0 {
			for _, ref := range rec.ReferencedTables {
				seen[ref.ProjectID+"."+ref.DatasetID+"."+ref.TableID] = true
			}

			continue
		}

		for _, m := range tableRefRegexp.FindAllStringSubmatch(rec.Query, -1) {
			seen[m[1]+"."+m[2]+"."+m[3]] = true
		}
	}

	tables := make([]string, 0, len(seen))
	for t := range seen {
		tables = append(tables, t)
	}

	sort.Strings(tables)

	return tables
}
