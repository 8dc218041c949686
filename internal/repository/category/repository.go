package category

import (
	"context"

	"catalog-api/internal/domain"
)

type Repository interface {
	// ListAll returns every category ordered by name ascending.
	ListAll(ctx context.Context) ([]domain.Category, error)
	// Create inserts a category. A duplicate name yields domain.ErrConflict.
	Create(ctx context.Context, name string) (*domain.Category, error)
}
