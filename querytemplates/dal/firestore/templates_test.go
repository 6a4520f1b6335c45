package dal

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/querylens/querylens/querytemplates/domain"
)

func TestMergeTemplates(t *testing.T) {
	now := time.Date(2026, 8, 1, 12, 0, 0, 0, time.UTC)
	createdAt := now.Add(-72 * time.Hour)
	firstSeen := now.Add(-48 * time.Hour)
	score := 87.5

	existing := map[string]domain.QueryTemplate{
		"t1": {
			ID:               "t1",
			AnalysisResultID: "an-1",
			AnalysisStatus:   domain.AnalysisStatusCompleted,
			ComplianceScore:  &score,
			CreatedAt:        createdAt,
			FirstSeen:        firstSeen,
		},
		"t2": {
			ID:        "t2",
			CreatedAt: createdAt,
		},
	}

	incoming := []domain.QueryTemplate{
		{ID: "t1", AnalysisStatus: domain.AnalysisStatusNew, FirstSeen: now.Add(-time.Hour)},
		{ID: "t2", FirstSeen: now.Add(-time.Hour)},
		{ID: "t3", FirstSeen: now},
	}

	merged, created, updated := mergeTemplates(existing, incoming, now)

	assert.Equal(t, 1, created)
	assert.Equal(t, 2, updated)

	// Completed analysis linkage survives a rescan untouched.
	assert.Equal(t, domain.AnalysisStatusCompleted, merged[0].AnalysisStatus)
	assert.Equal(t, "an-1", merged[0].AnalysisResultID)
	assert.Equal(t, &score, merged[0].ComplianceScore)
	assert.Equal(t, createdAt, merged[0].CreatedAt)
	assert.Equal(t, firstSeen, merged[0].FirstSeen)

	// Missing stored status is treated as new.
	assert.Equal(t, domain.AnalysisStatusNew, merged[1].AnalysisStatus)
	assert.Equal(t, createdAt, merged[1].CreatedAt)

	// Brand new template.
	assert.Equal(t, domain.AnalysisStatusNew, merged[2].AnalysisStatus)
	assert.Equal(t, now, merged[2].CreatedAt)

	for _, tmpl := range merged {
		assert.Equal(t, now, tmpl.UpdatedAt)
	}
}

func TestChunkBounds(t *testing.T) {
	tests := []struct {
		name string
		n    int
		size int
		want [][2]int
	}{
		{name: "empty", n: 0, size: 500, want: nil},
		{name: "single partial", n: 3, size: 500, want: [][2]int{{0, 3}}},
		{name: "exact boundary", n: 500, size: 500, want: [][2]int{{0, 500}}},
		{name: "boundary plus one", n: 501, size: 500, want: [][2]int{{0, 500}, {500, 501}}},
		{name: "multiple full and partial", n: 1200, size: 500, want: [][2]int{{0, 500}, {500, 1000}, {1000, 1200}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, chunkBounds(tt.n, tt.size))
		})
	}
}
