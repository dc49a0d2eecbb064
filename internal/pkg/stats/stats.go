package stats

import "github.com/course-reviews-api/internal/domain"

// ForReviews aggregates rating/difficulty/workload averages over a course's
// reviews. A metric left at zero (absent on documents imported from before
// the metric existed) is excluded from its average. An empty slice yields
// all-zero stats.
func ForReviews(reviews []domain.Review) domain.ReviewStats {
	s := domain.ReviewStats{ReviewCount: len(reviews)}
	var ratings, difficulties, workloads []int
	for _, r := range reviews {
		if r.Rating > 0 {
			ratings = append(ratings, r.Rating)
		}
		if r.Difficulty > 0 {
			difficulties = append(difficulties, r.Difficulty)
		}
		if r.Workload > 0 {
			workloads = append(workloads, r.Workload)
		}
	}
	s.AvgRating = mean(ratings)
	s.AvgDifficulty = mean(difficulties)
	s.AvgWorkload = mean(workloads)
	return s
}

func mean(values []int) float64 {
	if len(values) == 0 {
		return 0
	}
	sum := 0
	for _, v := range values {
		sum += v
	}
	return float64(sum) / float64(len(values))
}
