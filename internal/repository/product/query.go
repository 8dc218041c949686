package product

import (
	"fmt"
	"strings"
)

// DefaultPageSize and MaxPageSize bound the listing page window.
const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Normalize fills defaults for zero-valued fields and clamps the page
// window. Invalid sort values fall back to the default rather than reaching
// the store.
func (p ListParams) Normalize() ListParams {
	if p.SortBy != SortByPrice {
		p.SortBy = SortByCreatedAt
	}
	if p.SortOrder != SortAsc {
		p.SortOrder = SortDesc
	}
	if p.Page < 1 {
		p.Page = 1
	}
	if p.PageSize < 1 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset is the row offset of the requested page.
func (p ListParams) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// whereClause renders the filter predicate once; count and data queries both
// use the exact same SQL text and argument list, so total and rows can never
// disagree on which products qualify.
func (p ListParams) whereClause() (string, []any) {
	var conds []string
	var args []any

	if p.Search != "" {
		args = append(args, "%"+escapeLike(p.Search)+"%")
		conds = append(conds, fmt.Sprintf("name ILIKE $%d", len(args)))
	}
	if p.CategoryID != "" {
		args = append(args, p.CategoryID)
		conds = append(conds, fmt.Sprintf("category_id = $%d", len(args)))
	}
	if p.MinPrice != nil {
		args = append(args, *p.MinPrice)
		conds = append(conds, fmt.Sprintf("price >= $%d", len(args)))
	}
	if p.MaxPrice != nil {
		args = append(args, *p.MaxPrice)
		conds = append(conds, fmt.Sprintf("price <= $%d", len(args)))
	}

	if len(conds) == 0 {
		return "", nil
	}
	return "WHERE " + strings.Join(conds, " AND "), args
}

// orderClause renders the sort specification from the whitelisted fields.
func (p ListParams) orderClause() string {
	field := "created_at"
	if p.SortBy == SortByPrice {
		field = "price"
	}
	dir := "DESC"
	if p.SortOrder == SortAsc {
		dir = "ASC"
	}
	return fmt.Sprintf("ORDER BY %s %s", field, dir)
}

// escapeLike neutralizes LIKE metacharacters in user search text so a
// literal % or _ matches itself.
func escapeLike(s string) string {
	s = strings.ReplaceAll(s, `\`, `\\`)
	s = strings.ReplaceAll(s, `%`, `\%`)
	s = strings.ReplaceAll(s, `_`, `\_`)
	return s
}
