package service

import "github.com/querylens/querylens/querytemplates/domain"

// Priority thresholds. Each tier needs either a raw cost above its cost bar,
// or a run count above its runs bar combined with a per-run cost above its
// average bar. All comparisons are strict.
const (
	criticalCost    = 100.0
	criticalRuns    = 500
	criticalAvgCost = 1.0

	highCost    = 50.0
	highRuns    = 100
	highAvgCost = 0.5

	mediumCost    = 10.0
	mediumRuns    = 50
	mediumAvgCost = 0.1
)

// Classify assigns the priority tier for a template's aggregated stats.
func Classify(stats domain.TemplateStats) domain.Priority {
	switch {
	case stats.TotalCost > criticalCost || (stats.TotalRuns > criticalRuns && stats.AvgCost > criticalAvgCost):
		return domain.PriorityCritical
	case stats.TotalCost > highCost || (stats.TotalRuns > highRuns && stats.AvgCost > highAvgCost):
		return domain.PriorityHigh
	case stats.TotalCost > mediumCost || (stats.TotalRuns > mediumRuns && stats.AvgCost > mediumAvgCost):
		return domain.PriorityMedium
	default:
		return domain.PriorityLow
	}
}
