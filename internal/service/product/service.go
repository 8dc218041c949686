package product

import (
	"context"

	"catalog-api/internal/domain"
	productrepo "catalog-api/internal/repository/product"
	"github.com/google/uuid"
)

type Service struct {
	repo productrepo.Repository
}

func New(repo productrepo.Repository) *Service {
	return &Service{repo: repo}
}

// List fetches one page and wraps it in the pagination envelope. Page and
// pageSize in the envelope are the normalized values actually used for the
// query.
func (s *Service) List(ctx context.Context, params productrepo.ListParams) (domain.Page[domain.Product], error) {
	p := params.Normalize()
	rows, total, err := s.repo.List(ctx, p)
	if err != nil {
		return domain.Page[domain.Product]{}, err
	}
	return domain.NewPage(rows, p.Page, p.PageSize, total), nil
}

func (s *Service) Get(ctx context.Context, id string) (*domain.Product, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *Service) Create(ctx context.Context, params productrepo.CreateParams) (*domain.Product, error) {
	var fields []domain.FieldError
	if params.Name == "" {
		fields = append(fields, domain.FieldError{Field: "name", Message: "must not be empty"})
	}
	if params.Price.IsNegative() {
		fields = append(fields, domain.FieldError{Field: "price", Message: "must not be negative"})
	}
	if params.CategoryID != nil {
		if _, err := uuid.Parse(*params.CategoryID); err != nil {
			fields = append(fields, domain.FieldError{Field: "categoryId", Message: "must be a valid UUID"})
		}
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}
	return s.repo.Create(ctx, params)
}

// Update validates only the fields present in the partial input. A null
// categoryId is a valid request (it clears the reference); null on any other
// field is rejected.
func (s *Service) Update(ctx context.Context, id string, params productrepo.UpdateParams) (*domain.Product, error) {
	var fields []domain.FieldError
	if params.Name.IsSet() {
		if v, ok := params.Name.Get(); !ok {
			fields = append(fields, domain.FieldError{Field: "name", Message: "must not be null"})
		} else if v == "" {
			fields = append(fields, domain.FieldError{Field: "name", Message: "must not be empty"})
		}
	}
	if params.Price.IsSet() {
		if v, ok := params.Price.Get(); !ok {
			fields = append(fields, domain.FieldError{Field: "price", Message: "must not be null"})
		} else if v.IsNegative() {
			fields = append(fields, domain.FieldError{Field: "price", Message: "must not be negative"})
		}
	}
	if params.CategoryID.IsSet() {
		if v, ok := params.CategoryID.Get(); ok {
			if _, err := uuid.Parse(v); err != nil {
				fields = append(fields, domain.FieldError{Field: "categoryId", Message: "must be a valid UUID"})
			}
		}
	}
	if params.Tags.IsSet() && params.Tags.IsNull() {
		fields = append(fields, domain.FieldError{Field: "tags", Message: "must not be null"})
	}
	if len(fields) > 0 {
		return nil, domain.NewValidationError(fields...)
	}
	return s.repo.Update(ctx, id, params)
}

func (s *Service) Delete(ctx context.Context, id string) error {
	return s.repo.Delete(ctx, id)
}
