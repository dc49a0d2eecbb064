package program

import (
	"context"
	"sort"

	"github.com/course-reviews-api/internal/domain"
)

type programStore interface {
	Scan(ctx context.Context) ([]domain.Program, error)
}

type Service interface {
	List(ctx context.Context) ([]domain.Program, error)
}

type service struct {
	repo programStore
}

func NewService(repo programStore) Service {
	return &service{repo: repo}
}

// List returns all degree programs ordered by acronym.
func (s *service) List(ctx context.Context) ([]domain.Program, error) {
	programs, err := s.repo.Scan(ctx)
	if err != nil {
		return nil, err
	}
	sort.Slice(programs, func(i, j int) bool {
		return programs[i].Acronym < programs[j].Acronym
	})
	return programs, nil
}
