package category

import (
	"context"
	"fmt"
	"unicode/utf8"

	"catalog-api/internal/domain"
	"catalog-api/internal/repository/category"
)

type Service struct {
	repo category.Repository
}

func New(repo category.Repository) *Service {
	return &Service{repo: repo}
}

func (s *Service) List(ctx context.Context) ([]domain.Category, error) {
	return s.repo.ListAll(ctx)
}

// Create validates the name before any store access. Duplicates surface as
// domain.ErrConflict from the repository.
func (s *Service) Create(ctx context.Context, name string) (*domain.Category, error) {
	if name == "" {
		return nil, domain.NewValidationError(domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if utf8.RuneCountInString(name) > domain.MaxCategoryNameLen {
		return nil, domain.NewValidationError(domain.FieldError{
			Field:   "name",
			Message: fmt.Sprintf("must be at most %d characters", domain.MaxCategoryNameLen),
		})
	}
	return s.repo.Create(ctx, name)
}
