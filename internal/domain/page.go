package domain

// Page is the pagination envelope returned by list endpoints.
type Page[T any] struct {
	Data       []T   `json:"data"`
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	Total      int64 `json:"total"`
	TotalPages int   `json:"totalPages"`
}

// NewPage wraps a page of rows. TotalPages is ceil(total/pageSize) with a
// floor of 1: an empty result still reports one page.
func NewPage[T any](data []T, page, pageSize int, total int64) Page[T] {
	if data == nil {
		data = []T{}
	}
	totalPages := int((total + int64(pageSize) - 1) / int64(pageSize))
	if totalPages < 1 {
		totalPages = 1
	}
	return Page[T]{
		Data:       data,
		Page:       page,
		PageSize:   pageSize,
		Total:      total,
		TotalPages: totalPages,
	}
}
