package course

import (
	"context"

	"github.com/course-reviews-api/internal/domain"
	"github.com/course-reviews-api/internal/pkg/stats"
)

type courseStore interface {
	Scan(ctx context.Context) ([]domain.Course, error)
	GetBySlug(ctx context.Context, slug string) (*domain.Course, error)
}

type reviewStore interface {
	ListByCourse(ctx context.Context, courseID string) ([]domain.Review, error)
}

type semesterStore interface {
	Get(ctx context.Context, semesterID string) (*domain.Semester, error)
}

type Service interface {
	ListWithStats(ctx context.Context) ([]domain.CourseWithStats, error)
	GetBySlug(ctx context.Context, slug string) (*domain.CourseDetail, error)
}

type service struct {
	courseRepo   courseStore
	reviewRepo   reviewStore
	semesterRepo semesterStore
}

func NewService(courseRepo courseStore, reviewRepo reviewStore, semesterRepo semesterStore) Service {
	return &service{courseRepo: courseRepo, reviewRepo: reviewRepo, semesterRepo: semesterRepo}
}

// ListWithStats returns every course with its review metrics aggregated.
func (s *service) ListWithStats(ctx context.Context) ([]domain.CourseWithStats, error) {
	courses, err := s.courseRepo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	out := make([]domain.CourseWithStats, 0, len(courses))
	for _, c := range courses {
		reviews, err := s.reviewRepo.ListByCourse(ctx, c.CourseID)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.CourseWithStats{Course: c, Stats: stats.ForReviews(reviews)})
	}
	return out, nil
}

// GetBySlug returns one course with its full reviews, newest first, each with
// its semester reference resolved.
func (s *service) GetBySlug(ctx context.Context, slug string) (*domain.CourseDetail, error) {
	c, err := s.courseRepo.GetBySlug(ctx, slug)
	if err != nil {
		return nil, err
	}
	reviews, err := s.reviewRepo.ListByCourse(ctx, c.CourseID)
	if err != nil {
		return nil, err
	}

	semesters := make(map[string]*domain.Semester)
	detail := &domain.CourseDetail{Course: *c, Reviews: make([]domain.CourseReview, 0, len(reviews))}
	for _, rev := range reviews {
		cr := domain.CourseReview{Review: rev}
		if rev.SemesterID != "" {
			sem, ok := semesters[rev.SemesterID]
			if !ok {
				sem, err = s.semesterRepo.Get(ctx, rev.SemesterID)
				if err != nil {
					return nil, err
				}
				semesters[rev.SemesterID] = sem
			}
			cr.Semester = sem
		}
		detail.Reviews = append(detail.Reviews, cr)
	}
	return detail, nil
}
