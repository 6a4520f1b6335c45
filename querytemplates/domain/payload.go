package domain

import "time"

// ScanRequest parameterizes a single discovery scan of one project.
type ScanRequest struct {
	ProjectID  string `json:"projectId" validate:"required"`
	WindowDays int    `json:"windowDays"`
}

// ScanSummary reports what a completed scan did.
type ScanSummary struct {
	ProjectID        string    `json:"projectId"`
	JobsScanned      int       `json:"jobsScanned"`
	JobsExcluded     int       `json:"jobsExcluded"`
	JobsMalformed    int       `json:"jobsMalformed"`
	TemplatesFound   int       `json:"templatesFound"`
	TemplatesCreated int       `json:"templatesCreated"`
	TemplatesUpdated int       `json:"templatesUpdated"`
	TotalCost        float64   `json:"totalCost"`
	StartedAt        time.Time `json:"startedAt"`
	FinishedAt       time.Time `json:"finishedAt"`
}

// DashboardStats is the aggregate view over a project's stored templates.
type DashboardStats struct {
	ProjectID        string           `json:"projectId"`
	TemplateCount    int              `json:"templateCount"`
	TotalCost        float64          `json:"totalCost"`
	TotalRuns        int64            `json:"totalRuns"`
	AvgCacheHitRate  float64          `json:"avgCacheHitRate"`
	ByPriority       map[Priority]int `json:"byPriority"`
	AnalyzedCount    int              `json:"analyzedCount"`
	LastScanAt       *time.Time       `json:"lastScanAt,omitempty"`
}
