package domain

import "time"

// AnalysisStatus tracks the optimization-analysis lifecycle of a template.
// A rescan never regresses a completed analysis back to new.
type AnalysisStatus string

const (
	AnalysisStatusNew       AnalysisStatus = "new"
	AnalysisStatusPending   AnalysisStatus = "pending"
	AnalysisStatusCompleted AnalysisStatus = "completed"
)

// Priority is the cost/frequency tier assigned to a template.
type Priority string

const (
	PriorityCritical Priority = "CRITICAL"
	PriorityHigh     Priority = "HIGH"
	PriorityMedium   Priority = "MEDIUM"
	PriorityLow      Priority = "LOW"
)

// TemplateStats holds the per-template aggregates computed from one scan's
// job records.
type TemplateStats struct {
	TotalRuns           int64   `firestore:"totalRuns" json:"totalRuns"`
	UniqueUsers         int64   `firestore:"uniqueUsers" json:"uniqueUsers"`
	TotalBytesProcessed int64   `firestore:"totalBytesProcessed" json:"totalBytesProcessed"`
	AvgBytesProcessed   float64 `firestore:"avgBytesProcessed" json:"avgBytesProcessed"`
	P50BytesProcessed   int64   `firestore:"bytesProcessedP50" json:"bytesProcessedP50"`
	P90BytesProcessed   int64   `firestore:"bytesProcessedP90" json:"bytesProcessedP90"`
	P99BytesProcessed   int64   `firestore:"bytesProcessedP99" json:"bytesProcessedP99"`
	AvgRuntimeSeconds   float64 `firestore:"avgRuntime" json:"avgRuntime"`
	P50RuntimeSeconds   float64 `firestore:"runtimeP50" json:"runtimeP50"`
	P90RuntimeSeconds   float64 `firestore:"runtimeP90" json:"runtimeP90"`
	P99RuntimeSeconds   float64 `firestore:"runtimeP99" json:"runtimeP99"`
	CacheHitRate        float64 `firestore:"cacheHitRate" json:"cacheHitRate"`
	TotalCost           float64 `firestore:"totalCost" json:"totalCost"`
	AvgCost             float64 `firestore:"avgCostPerRun" json:"avgCostPerRun"`
	MinCost             float64 `firestore:"minCost" json:"minCost"`
	MaxCost             float64 `firestore:"maxCost" json:"maxCost"`
	ImpactScore         float64 `firestore:"impactScore" json:"impactScore"`
}

// QueryTemplate is the aggregate unit of record: the canonical identity of a
// recurring query shape together with its execution statistics.
type QueryTemplate struct {
	ID               string           `firestore:"templateId" json:"id"`
	ProjectID        string           `firestore:"projectId" json:"projectId"`
	SQLPattern       string           `firestore:"sqlPattern" json:"sqlPattern"`
	SampleSQL        string           `firestore:"sampleSql" json:"sampleSql"`
	Tables           []string         `firestore:"tables" json:"tables"`
	FirstSeen        time.Time        `firestore:"firstSeen" json:"firstSeen"`
	LastSeen         time.Time        `firestore:"lastSeen" json:"lastSeen"`
	Stats            TemplateStats    `firestore:"stats" json:"stats"`
	Priority         Priority         `firestore:"priority" json:"priority"`
	AnalysisResultID string           `firestore:"analysisResultId" json:"analysisResultId,omitempty"`
	AnalysisStatus   AnalysisStatus   `firestore:"analysisStatus" json:"analysisStatus"`
	ComplianceScore  *float64         `firestore:"complianceScore" json:"complianceScore,omitempty"`
	CreatedAt        time.Time        `firestore:"createdAt" json:"createdAt"`
	UpdatedAt        time.Time        `firestore:"updatedAt" json:"updatedAt"`
}

// MaxPatternLength bounds the stored display pattern.
const MaxPatternLength = 500

// AnalysisResult is an externally produced optimization result attached to a
// template. The discovery pipeline treats its payload as opaque.
type AnalysisResult struct {
	ID         string                 `firestore:"analysisId" json:"id"`
	TemplateID string                 `firestore:"templateId" json:"templateId"`
	ProjectID  string                 `firestore:"projectId" json:"projectId"`
	Result     map[string]interface{} `firestore:"result" json:"result"`
	Timestamp  time.Time              `firestore:"timestamp" json:"timestamp"`
}
