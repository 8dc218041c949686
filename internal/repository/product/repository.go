package product

import (
	"context"

	"catalog-api/internal/domain"
	"github.com/shopspring/decimal"
)

// SortField is a whitelisted listing sort column.
type SortField string

// SortOrder is the listing sort direction.
type SortOrder string

const (
	SortByCreatedAt SortField = "created_at"
	SortByPrice     SortField = "price"

	SortAsc  SortOrder = "asc"
	SortDesc SortOrder = "desc"
)

// ListParams describes a product listing request: filter predicate
// (search, category, price range), sort specification and page window.
type ListParams struct {
	Search     string
	CategoryID string
	MinPrice   *decimal.Decimal
	MaxPrice   *decimal.Decimal
	SortBy     SortField
	SortOrder  SortOrder
	Page       int
	PageSize   int
}

// CreateParams carries the fields of a new product. Nil CategoryID stays
// NULL, nil Tags persist as an empty array.
type CreateParams struct {
	Name       string
	Price      decimal.Decimal
	CategoryID *string
	Tags       []string
}

// UpdateParams is a partial update. Each field is three-state: unset fields
// are left untouched, an explicitly-null CategoryID clears the reference.
type UpdateParams struct {
	Name       domain.Optional[string]
	Price      domain.Optional[decimal.Decimal]
	CategoryID domain.Optional[string]
	Tags       domain.Optional[[]string]
}

type Repository interface {
	// List returns one page of matching products plus the total count of
	// rows matching the same filter predicate.
	List(ctx context.Context, params ListParams) ([]domain.Product, int64, error)
	GetByID(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, params CreateParams) (*domain.Product, error)
	Update(ctx context.Context, id string, params UpdateParams) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
