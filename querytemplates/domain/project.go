package domain

import "time"

// Default scan parameters applied when a project omits them.
const (
	DefaultRegion             = "us"
	DefaultAnalysisWindowDays = 30
	MaxAnalysisWindowDays     = 365
)

// Project is a monitored GCP project registered for template discovery.
type Project struct {
	ID                 string     `firestore:"projectId" json:"projectId"`
	DisplayName        string     `firestore:"displayName" json:"displayName"`
	Region             string     `firestore:"region" json:"region"`
	AnalysisWindowDays int        `firestore:"analysisWindowDays" json:"analysisWindowDays"`
	PricePerTB         float64    `firestore:"pricePerTb" json:"pricePerTb"`
	IsActive           bool       `firestore:"isActive" json:"isActive"`
	LastScanAt         *time.Time `firestore:"lastScanAt" json:"lastScanAt,omitempty"`
	CreatedAt          time.Time  `firestore:"createdAt" json:"createdAt"`
	UpdatedAt          time.Time  `firestore:"updatedAt" json:"updatedAt"`
}
