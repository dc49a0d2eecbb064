package course

import (
	"context"
	"errors"
	"testing"

	"github.com/course-reviews-api/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// --- mocks ---

type mockCourseStore struct{ mock.Mock }

func (m *mockCourseStore) Scan(ctx context.Context) ([]domain.Course, error) {
	args := m.Called(ctx)
	if c, _ := args.Get(0).([]domain.Course); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}
func (m *mockCourseStore) GetBySlug(ctx context.Context, slug string) (*domain.Course, error) {
	args := m.Called(ctx, slug)
	if c, _ := args.Get(0).(*domain.Course); c != nil {
		return c, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockReviewStore struct{ mock.Mock }

func (m *mockReviewStore) ListByCourse(ctx context.Context, courseID string) ([]domain.Review, error) {
	args := m.Called(ctx, courseID)
	if r, _ := args.Get(0).([]domain.Review); r != nil {
		return r, args.Error(1)
	}
	return nil, args.Error(1)
}

type mockSemesterStore struct{ mock.Mock }

func (m *mockSemesterStore) Get(ctx context.Context, semesterID string) (*domain.Semester, error) {
	args := m.Called(ctx, semesterID)
	if s, _ := args.Get(0).(*domain.Semester); s != nil {
		return s, args.Error(1)
	}
	return nil, args.Error(1)
}

// --- tests ---

func TestListWithStats(t *testing.T) {
	courses := &mockCourseStore{}
	reviews := &mockReviewStore{}
	courses.On("Scan", mock.Anything).Return([]domain.Course{
		{CourseID: "c1", Name: "Computer Networks"},
		{CourseID: "c2", Name: "Machine Learning"},
	}, nil)
	reviews.On("ListByCourse", mock.Anything, "c1").Return([]domain.Review{
		{Rating: 4, Difficulty: 2, Workload: 10},
		{Rating: 2, Difficulty: 4, Workload: 30},
	}, nil)
	reviews.On("ListByCourse", mock.Anything, "c2").Return([]domain.Review{}, nil)

	svc := NewService(courses, reviews, nil)
	out, err := svc.ListWithStats(context.Background())

	require.NoError(t, err)
	require.Len(t, out, 2)
	assert.Equal(t, 2, out[0].Stats.ReviewCount)
	assert.InDelta(t, 3.0, out[0].Stats.AvgRating, 1e-9)
	assert.InDelta(t, 3.0, out[0].Stats.AvgDifficulty, 1e-9)
	assert.InDelta(t, 20.0, out[0].Stats.AvgWorkload, 1e-9)
	assert.Equal(t, domain.ReviewStats{}, out[1].Stats)
}

func TestListWithStats_ReviewStoreError(t *testing.T) {
	courses := &mockCourseStore{}
	reviews := &mockReviewStore{}
	courses.On("Scan", mock.Anything).Return([]domain.Course{{CourseID: "c1"}}, nil)
	reviews.On("ListByCourse", mock.Anything, "c1").Return(nil, errors.New("dynamo error"))

	svc := NewService(courses, reviews, nil)
	_, err := svc.ListWithStats(context.Background())

	require.Error(t, err)
}

func TestGetBySlug_ResolvesSemesters(t *testing.T) {
	courses := &mockCourseStore{}
	reviews := &mockReviewStore{}
	semesters := &mockSemesterStore{}
	courses.On("GetBySlug", mock.Anything, "computer-networks").
		Return(&domain.Course{CourseID: "c1", Slug: "computer-networks"}, nil)
	reviews.On("ListByCourse", mock.Anything, "c1").Return([]domain.Review{
		{ReviewID: "r1", SemesterID: "s1"},
		{ReviewID: "r2", SemesterID: "s1"},
		{ReviewID: "r3"}, // legacy review without a semester
	}, nil)
	semesters.On("Get", mock.Anything, "s1").
		Return(&domain.Semester{SemesterID: "s1", Term: domain.TermSpring}, nil).Once()

	svc := NewService(courses, reviews, semesters)
	detail, err := svc.GetBySlug(context.Background(), "computer-networks")

	require.NoError(t, err)
	require.Len(t, detail.Reviews, 3)
	require.NotNil(t, detail.Reviews[0].Semester)
	assert.Equal(t, domain.TermSpring, detail.Reviews[0].Semester.Term)
	assert.Nil(t, detail.Reviews[2].Semester)
	semesters.AssertExpectations(t)
}

func TestGetBySlug_NotFound(t *testing.T) {
	courses := &mockCourseStore{}
	courses.On("GetBySlug", mock.Anything, "nope").Return(nil, domain.ErrNotFound)

	svc := NewService(courses, nil, nil)
	_, err := svc.GetBySlug(context.Background(), "nope")

	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNotFound))
}
