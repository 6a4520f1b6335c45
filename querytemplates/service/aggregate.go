package service

import (
	"math"
	"sort"

	"github.com/querylens/querylens/common"
	"github.com/querylens/querylens/querytemplates/domain"
)

// JobCost prices one job. Bytes billed is the billing source of truth; bytes
// processed is the fallback for records billed to a reservation.
func JobCost(rec domain.JobRecord, pricePerTB float64) float64 {
	bytes := rec.TotalBytesBilled
	if bytes <= 0 {
		bytes = rec.TotalBytesProcessed
	}

	return float64(bytes) / float64(common.TebiByte) * pricePerTB
}

// percentileInt64 uses the nearest-rank rule on a sorted slice:
// index = floor(p/100 * (n-1)).
func percentileInt64(sorted []int64, p float64) int64 {
	idx := int(math.Floor(p / 100 * float64(len(sorted)-1)))
	return sorted[idx]
}

func percentileFloat64(sorted []float64, p float64) float64 {
	idx := int(math.Floor(p / 100 * float64(len(sorted)-1)))
	return sorted[idx]
}

// Aggregate computes template statistics over one group's records.
// The group must be non-empty.
func Aggregate(records []domain.JobRecord, pricePerTB float64) (domain.TemplateStats, error) {
	if len(records) == 0 {
		return domain.TemplateStats{}, ErrAggregationInputEmpty
	}

	n := len(records)

	bytesVals := make([]int64, 0, n)
	runtimeVals := make([]float64, 0, n)
	users := make(map[string]bool)

	var (
		totalBytes   int64
		totalRuntime float64
		cacheHits    int64
		totalCost    float64
		minCost      = math.MaxFloat64
		maxCost      float64
	)

	for _, rec := range records {
		bytesVals = append(bytesVals, rec.TotalBytesProcessed)
		runtimeVals = append(runtimeVals, rec.RuntimeSeconds)

		totalBytes += rec.TotalBytesProcessed
		totalRuntime += rec.RuntimeSeconds

		if rec.CacheHit {
			cacheHits++
		}

		if rec.UserEmail != "" {
			users[rec.UserEmail] = true
		}

		cost := JobCost(rec, pricePerTB)
		totalCost += cost

		if cost < minCost {
			minCost = cost
		}

		if cost > maxCost {
			maxCost = cost
		}
	}

	sort.Slice(bytesVals, func(i, j int) bool { return bytesVals[i] < bytesVals[j] })
	sort.Float64s(runtimeVals)

	stats := domain.TemplateStats{
		TotalRuns:           int64(n),
		UniqueUsers:         int64(len(users)),
		TotalBytesProcessed: totalBytes,
		AvgBytesProcessed:   float64(totalBytes) / float64(n),
		P50BytesProcessed:   percentileInt64(bytesVals, 50),
		P90BytesProcessed:   percentileInt64(bytesVals, 90),
		P99BytesProcessed:   percentileInt64(bytesVals, 99),
		AvgRuntimeSeconds:   totalRuntime / float64(n),
		P50RuntimeSeconds:   percentileFloat64(runtimeVals, 50),
		P90RuntimeSeconds:   percentileFloat64(runtimeVals, 90),
		P99RuntimeSeconds:   percentileFloat64(runtimeVals, 99),
		CacheHitRate:        math.Round(float64(cacheHits)/float64(n)*1000) / 10,
		TotalCost:           totalCost,
		AvgCost:             totalCost / float64(n),
		MinCost:             minCost,
		MaxCost:             maxCost,
	}

	stats.ImpactScore = stats.TotalCost * math.Log(float64(stats.TotalRuns)+1)

	return stats, nil
}
