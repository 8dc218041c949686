package product

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func decPtr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func TestNormalize_Defaults(t *testing.T) {
	p := ListParams{}.Normalize()

	assert.Equal(t, SortByCreatedAt, p.SortBy)
	assert.Equal(t, SortDesc, p.SortOrder)
	assert.Equal(t, 1, p.Page)
	assert.Equal(t, DefaultPageSize, p.PageSize)
}

func TestNormalize_ClampsPageSize(t *testing.T) {
	p := ListParams{Page: -3, PageSize: 500}.Normalize()

	assert.Equal(t, 1, p.Page)
	assert.Equal(t, MaxPageSize, p.PageSize)
}

func TestOffset(t *testing.T) {
	p := ListParams{Page: 2, PageSize: 5}.Normalize()

	assert.Equal(t, 5, p.Offset())
	assert.Equal(t, 5, p.PageSize)
}

func TestWhereClause_Empty(t *testing.T) {
	where, args := ListParams{}.Normalize().whereClause()

	assert.Empty(t, where)
	assert.Empty(t, args)
}

func TestWhereClause_AllFilters(t *testing.T) {
	p := ListParams{
		Search:     "mouse",
		CategoryID: "11111111-1111-1111-1111-111111111111",
		MinPrice:   decPtr("10"),
		MaxPrice:   decPtr("20"),
	}.Normalize()

	where, args := p.whereClause()

	assert.Equal(t, "WHERE name ILIKE $1 AND category_id = $2 AND price >= $3 AND price <= $4", where)
	assert.Len(t, args, 4)
	assert.Equal(t, "%mouse%", args[0])
}

func TestWhereClause_SingleBound(t *testing.T) {
	where, args := ListParams{MinPrice: decPtr("10")}.Normalize().whereClause()
	assert.Equal(t, "WHERE price >= $1", where)
	assert.Len(t, args, 1)

	where, args = ListParams{MaxPrice: decPtr("20")}.Normalize().whereClause()
	assert.Equal(t, "WHERE price <= $1", where)
	assert.Len(t, args, 1)
}

func TestWhereClause_EscapesLikeMetacharacters(t *testing.T) {
	_, args := ListParams{Search: `100%_cotton\shirt`}.Normalize().whereClause()

	assert.Equal(t, `%100\%\_cotton\\shirt%`, args[0])
}

func TestWhereClause_PriceBoundsDoNotAffectOrder(t *testing.T) {
	base := ListParams{SortBy: SortByPrice, SortOrder: SortAsc}.Normalize()
	bounded := ListParams{SortBy: SortByPrice, SortOrder: SortAsc, MinPrice: decPtr("10"), MaxPrice: decPtr("20")}.Normalize()

	assert.Equal(t, base.orderClause(), bounded.orderClause())
}

func TestOrderClause(t *testing.T) {
	cases := []struct {
		sortBy SortField
		order  SortOrder
		want   string
	}{
		{"", "", "ORDER BY created_at DESC"},
		{SortByCreatedAt, SortAsc, "ORDER BY created_at ASC"},
		{SortByPrice, SortDesc, "ORDER BY price DESC"},
		{SortByPrice, SortAsc, "ORDER BY price ASC"},
		{"name; DROP TABLE products", SortAsc, "ORDER BY created_at ASC"},
	}
	for _, tc := range cases {
		p := ListParams{SortBy: tc.sortBy, SortOrder: tc.order}.Normalize()
		assert.Equal(t, tc.want, p.orderClause())
	}
}
