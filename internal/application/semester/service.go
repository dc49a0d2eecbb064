package semester

import (
	"context"
	"sort"
	"time"

	"github.com/course-reviews-api/internal/domain"
)

type semesterStore interface {
	Scan(ctx context.Context) ([]domain.Semester, error)
}

type Service interface {
	ListRecent(ctx context.Context, limit int) ([]domain.Semester, error)
}

type service struct {
	repo semesterStore
}

func NewService(repo semesterStore) Service {
	return &service{repo: repo}
}

// ListRecent returns semesters that have already started, newest first.
// Future semesters are excluded: a review cannot reference a term nobody has
// taken a course in yet.
func (s *service) ListRecent(ctx context.Context, limit int) ([]domain.Semester, error) {
	semesters, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	now := time.Now().UTC()
	started := semesters[:0]
	for _, sem := range semesters {
		if !sem.StartDate.After(now) {
			started = append(started, sem)
		}
	}
	sort.Slice(started, func(i, j int) bool {
		return started[i].StartDate.After(started[j].StartDate)
	})
	if limit > 0 && len(started) > limit {
		started = started[:limit]
	}
	return started, nil
}
