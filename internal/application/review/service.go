package review

import (
	"context"

	"github.com/course-reviews-api/internal/domain"
	"github.com/course-reviews-api/internal/pkg/validate"
)

// Client-facing rejection reasons for review submission.
const (
	msgCodeNotFound = "Code not found. Please request a new code."
	msgCodeMismatch = "Code must match value that was sent via email."
)

// maxRecent caps the recent-reviews feed.
const maxRecent = 100

type codeChecker interface {
	CheckCode(ctx context.Context, username, code string) (domain.CheckOutcome, error)
}

type authorEncryptor interface {
	Encrypt(username string) string
}

type reviewStore interface {
	Put(ctx context.Context, rev *domain.Review) error
	Recent(ctx context.Context, limit int32) ([]domain.Review, error)
}

type courseStore interface {
	Get(ctx context.Context, courseID string) (*domain.Course, error)
}

type semesterStore interface {
	Get(ctx context.Context, semesterID string) (*domain.Semester, error)
}

// SubmitStatus tags the classified outcome of a submission. Unclassified
// failures (provider transport errors, store errors) are returned as plain
// errors instead and map to a 500 at the boundary.
type SubmitStatus int

const (
	StatusCreated SubmitStatus = iota
	StatusRejected
)

// SubmitResult is the tagged outcome of one submission attempt.
type SubmitResult struct {
	Status SubmitStatus
	Errors []string // client-facing, set when rejected
}

func rejected(msgs ...string) SubmitResult {
	return SubmitResult{Status: StatusRejected, Errors: msgs}
}

type Service interface {
	Submit(ctx context.Context, sub domain.ReviewSubmission) (SubmitResult, error)
	Recent(ctx context.Context, limit int) ([]domain.RecentReview, error)
}

type ServiceDeps struct {
	Checker      codeChecker
	Encryptor    authorEncryptor
	ReviewRepo   reviewStore
	CourseRepo   courseStore
	SemesterRepo semesterStore
}

type service struct {
	checker      codeChecker
	encryptor    authorEncryptor
	reviewRepo   reviewStore
	courseRepo   courseStore
	semesterRepo semesterStore
}

func NewService(deps ServiceDeps) Service {
	return &service{
		checker:      deps.Checker,
		encryptor:    deps.Encryptor,
		reviewRepo:   deps.ReviewRepo,
		courseRepo:   deps.CourseRepo,
		semesterRepo: deps.SemesterRepo,
	}
}

// Submit runs one review-creation request end to end: validate, verify the
// one-time code, encrypt the author identity, persist. The store create is
// attempted only after the code is approved, so a review can never exist
// without proof of mailbox control. Exactly one check call and at most one
// create call per attempt.
func (s *service) Submit(ctx context.Context, sub domain.ReviewSubmission) (SubmitResult, error) {
	if msgs := validate.Messages(sub); msgs != nil {
		return rejected(msgs...), nil
	}

	outcome, err := s.checker.CheckCode(ctx, sub.Username, sub.Code)
	if err != nil {
		return SubmitResult{}, err
	}
	switch outcome {
	case domain.CheckNotFound:
		return rejected(msgCodeNotFound), nil
	case domain.CheckMismatch:
		return rejected(msgCodeMismatch), nil
	}

	rev := &domain.Review{
		AuthorID:   s.encryptor.Encrypt(sub.Username),
		CourseID:   sub.CourseID,
		SemesterID: sub.SemesterID,
		Rating:     sub.Rating,
		Difficulty: sub.Difficulty,
		Workload:   sub.Workload,
		Body:       sub.Body,
	}
	// A nonexistent course or semester reference surfaces here as a store
	// error and becomes a generic 500; no reference pre-check is done.
	if err := s.reviewRepo.Put(ctx, rev); err != nil {
		return SubmitResult{}, err
	}
	return SubmitResult{Status: StatusCreated}, nil
}

// Recent returns the newest reviews across all courses with their course and
// semester references resolved.
func (s *service) Recent(ctx context.Context, limit int) ([]domain.RecentReview, error) {
	if limit < 1 || limit > maxRecent {
		limit = maxRecent
	}
	reviews, err := s.reviewRepo.Recent(ctx, int32(limit))
	if err != nil {
		return nil, err
	}

	courses := make(map[string]*domain.Course)
	semesters := make(map[string]*domain.Semester)
	out := make([]domain.RecentReview, 0, len(reviews))
	for _, rev := range reviews {
		item := domain.RecentReview{Review: rev}
		c, ok := courses[rev.CourseID]
		if !ok {
			c, err = s.courseRepo.Get(ctx, rev.CourseID)
			if err != nil {
				return nil, err
			}
			courses[rev.CourseID] = c
		}
		item.CourseName = c.Name
		item.CourseSlug = c.Slug
		if rev.SemesterID != "" {
			sem, ok := semesters[rev.SemesterID]
			if !ok {
				sem, err = s.semesterRepo.Get(ctx, rev.SemesterID)
				if err != nil {
					return nil, err
				}
				semesters[rev.SemesterID] = sem
			}
			item.Semester = sem
		}
		out = append(out, item)
	}
	return out, nil
}
