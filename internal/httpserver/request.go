package httpserver

import (
	"net/url"
	"strconv"

	"catalog-api/internal/domain"
	productrepo "catalog-api/internal/repository/product"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Typed request shapes plus pure parse/validate functions. Handlers only
// bridge gin to these; nothing here touches the framework.

type createCategoryRequest struct {
	Name *string `json:"name"`
}

func (r createCategoryRequest) validate() (string, []domain.FieldError) {
	if r.Name == nil {
		return "", []domain.FieldError{{Field: "name", Message: "is required"}}
	}
	return *r.Name, nil
}

type createProductRequest struct {
	Name       *string          `json:"name"`
	Price      *decimal.Decimal `json:"price"`
	CategoryID *string          `json:"categoryId"`
	Tags       []string         `json:"tags"`
}

func (r createProductRequest) validate() (productrepo.CreateParams, []domain.FieldError) {
	var fields []domain.FieldError
	if r.Name == nil {
		fields = append(fields, domain.FieldError{Field: "name", Message: "is required"})
	}
	if r.Price == nil {
		fields = append(fields, domain.FieldError{Field: "price", Message: "is required"})
	}
	if len(fields) > 0 {
		return productrepo.CreateParams{}, fields
	}
	return productrepo.CreateParams{
		Name:       *r.Name,
		Price:      *r.Price,
		CategoryID: r.CategoryID,
		Tags:       r.Tags,
	}, nil
}

type updateProductRequest struct {
	Name       domain.Optional[string]          `json:"name"`
	Price      domain.Optional[decimal.Decimal] `json:"price"`
	CategoryID domain.Optional[string]          `json:"categoryId"`
	Tags       domain.Optional[[]string]        `json:"tags"`
}

func (r updateProductRequest) params() productrepo.UpdateParams {
	return productrepo.UpdateParams{
		Name:       r.Name,
		Price:      r.Price,
		CategoryID: r.CategoryID,
		Tags:       r.Tags,
	}
}

// parseListProductsQuery turns raw query values into ListParams. Malformed
// or out-of-range values are field errors, not silent fallbacks.
func parseListProductsQuery(q url.Values) (productrepo.ListParams, []domain.FieldError) {
	var params productrepo.ListParams
	var fields []domain.FieldError

	if v := q.Get("page"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 {
			fields = append(fields, domain.FieldError{Field: "page", Message: "must be an integer >= 1"})
		} else {
			params.Page = n
		}
	}
	if v := q.Get("pageSize"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 1 || n > productrepo.MaxPageSize {
			fields = append(fields, domain.FieldError{Field: "pageSize", Message: "must be an integer in [1,100]"})
		} else {
			params.PageSize = n
		}
	}
	params.Search = q.Get("search")
	if v := q.Get("categoryId"); v != "" {
		if _, err := uuid.Parse(v); err != nil {
			fields = append(fields, domain.FieldError{Field: "categoryId", Message: "must be a valid UUID"})
		} else {
			params.CategoryID = v
		}
	}
	if v := q.Get("minPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil || d.IsNegative() {
			fields = append(fields, domain.FieldError{Field: "minPrice", Message: "must be a non-negative number"})
		} else {
			params.MinPrice = &d
		}
	}
	if v := q.Get("maxPrice"); v != "" {
		d, err := decimal.NewFromString(v)
		if err != nil || d.IsNegative() {
			fields = append(fields, domain.FieldError{Field: "maxPrice", Message: "must be a non-negative number"})
		} else {
			params.MaxPrice = &d
		}
	}
	switch v := q.Get("sortBy"); v {
	case "":
	case string(productrepo.SortByPrice), string(productrepo.SortByCreatedAt):
		params.SortBy = productrepo.SortField(v)
	default:
		fields = append(fields, domain.FieldError{Field: "sortBy", Message: "must be one of: price, created_at"})
	}
	switch v := q.Get("sortOrder"); v {
	case "":
	case string(productrepo.SortAsc), string(productrepo.SortDesc):
		params.SortOrder = productrepo.SortOrder(v)
	default:
		fields = append(fields, domain.FieldError{Field: "sortOrder", Message: "must be one of: asc, desc"})
	}

	if len(fields) > 0 {
		return productrepo.ListParams{}, fields
	}
	return params, nil
}

// parseID rejects malformed path identifiers before repository logic runs.
func parseID(raw string) (string, []domain.FieldError) {
	id, err := uuid.Parse(raw)
	if err != nil {
		return "", []domain.FieldError{{Field: "id", Message: "must be a valid UUID"}}
	}
	return id.String(), nil
}
