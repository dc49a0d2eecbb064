package stats

import (
	"testing"

	"github.com/course-reviews-api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func TestForReviews_Empty(t *testing.T) {
	s := ForReviews(nil)
	assert.Equal(t, domain.ReviewStats{}, s)
}

func TestForReviews_Averages(t *testing.T) {
	s := ForReviews([]domain.Review{
		{Rating: 4, Difficulty: 2, Workload: 10},
		{Rating: 5, Difficulty: 4, Workload: 30},
	})
	assert.Equal(t, 2, s.ReviewCount)
	assert.InDelta(t, 4.5, s.AvgRating, 1e-9)
	assert.InDelta(t, 3.0, s.AvgDifficulty, 1e-9)
	assert.InDelta(t, 20.0, s.AvgWorkload, 1e-9)
}

func TestForReviews_SkipsMissingMetrics(t *testing.T) {
	s := ForReviews([]domain.Review{
		{Rating: 3, Workload: 20}, // no difficulty recorded
		{Rating: 5, Difficulty: 4, Workload: 40},
	})
	assert.Equal(t, 2, s.ReviewCount)
	assert.InDelta(t, 4.0, s.AvgRating, 1e-9)
	assert.InDelta(t, 4.0, s.AvgDifficulty, 1e-9)
	assert.InDelta(t, 30.0, s.AvgWorkload, 1e-9)
}
