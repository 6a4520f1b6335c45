package service

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/querylens/querylens/querytemplates/domain"
)

func TestClassify(t *testing.T) {
	tests := []struct {
		name  string
		stats domain.TemplateStats
		want  domain.Priority
	}{
		{
			name:  "critical by cost",
			stats: domain.TemplateStats{TotalCost: 100.01},
			want:  domain.PriorityCritical,
		},
		{
			name:  "critical by frequency",
			stats: domain.TemplateStats{TotalCost: 20, TotalRuns: 501, AvgCost: 1.01},
			want:  domain.PriorityCritical,
		},
		{
			name:  "thresholds are strict",
			stats: domain.TemplateStats{TotalCost: 100, TotalRuns: 500, AvgCost: 1.0},
			want:  domain.PriorityHigh, // 100 > 50 still holds
		},
		{
			name:  "high by cost",
			stats: domain.TemplateStats{TotalCost: 50.5},
			want:  domain.PriorityHigh,
		},
		{
			name:  "high by frequency",
			stats: domain.TemplateStats{TotalCost: 5, TotalRuns: 101, AvgCost: 0.6},
			want:  domain.PriorityHigh,
		},
		{
			name:  "medium by cost",
			stats: domain.TemplateStats{TotalCost: 10.5},
			want:  domain.PriorityMedium,
		},
		{
			name:  "medium by frequency",
			stats: domain.TemplateStats{TotalCost: 1, TotalRuns: 51, AvgCost: 0.2},
			want:  domain.PriorityMedium,
		},
		{
			name:  "low",
			stats: domain.TemplateStats{TotalCost: 10, TotalRuns: 50, AvgCost: 0.1},
			want:  domain.PriorityLow,
		},
		{
			name:  "zero",
			stats: domain.TemplateStats{},
			want:  domain.PriorityLow,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Classify(tt.stats))
		})
	}
}
