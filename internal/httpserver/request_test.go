package httpserver

import (
	"net/url"
	"testing"

	productrepo "catalog-api/internal/repository/product"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseListProductsQuery_Empty(t *testing.T) {
	params, fields := parseListProductsQuery(url.Values{})

	require.Nil(t, fields)
	assert.Equal(t, productrepo.ListParams{}, params)
}

func TestParseListProductsQuery_AllValues(t *testing.T) {
	q := url.Values{}
	q.Set("page", "2")
	q.Set("pageSize", "5")
	q.Set("search", "mouse")
	q.Set("categoryId", "11111111-1111-1111-1111-111111111111")
	q.Set("minPrice", "10")
	q.Set("maxPrice", "20.50")
	q.Set("sortBy", "price")
	q.Set("sortOrder", "asc")

	params, fields := parseListProductsQuery(q)

	require.Nil(t, fields)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 5, params.PageSize)
	assert.Equal(t, "mouse", params.Search)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", params.CategoryID)
	require.NotNil(t, params.MinPrice)
	require.NotNil(t, params.MaxPrice)
	assert.Equal(t, "10", params.MinPrice.String())
	assert.Equal(t, "20.5", params.MaxPrice.String())
	assert.Equal(t, productrepo.SortByPrice, params.SortBy)
	assert.Equal(t, productrepo.SortAsc, params.SortOrder)
}

func TestParseListProductsQuery_Invalid(t *testing.T) {
	cases := []struct {
		key, val, field string
	}{
		{"page", "0", "page"},
		{"page", "abc", "page"},
		{"pageSize", "0", "pageSize"},
		{"pageSize", "101", "pageSize"},
		{"categoryId", "nope", "categoryId"},
		{"minPrice", "-1", "minPrice"},
		{"minPrice", "ten", "minPrice"},
		{"maxPrice", "-0.01", "maxPrice"},
		{"sortBy", "name", "sortBy"},
		{"sortOrder", "up", "sortOrder"},
	}
	for _, tc := range cases {
		t.Run(tc.key+"="+tc.val, func(t *testing.T) {
			q := url.Values{}
			q.Set(tc.key, tc.val)

			_, fields := parseListProductsQuery(q)

			require.Len(t, fields, 1)
			assert.Equal(t, tc.field, fields[0].Field)
		})
	}
}

func TestCreateProductRequest_Validate(t *testing.T) {
	_, fields := createProductRequest{}.validate()
	require.Len(t, fields, 2)
	assert.Equal(t, "name", fields[0].Field)
	assert.Equal(t, "price", fields[1].Field)
}

func TestParseID(t *testing.T) {
	id, fields := parseID("11111111-1111-1111-1111-111111111111")
	require.Nil(t, fields)
	assert.Equal(t, "11111111-1111-1111-1111-111111111111", id)

	_, fields = parseID("123")
	require.Len(t, fields, 1)
	assert.Equal(t, "id", fields[0].Field)
}
