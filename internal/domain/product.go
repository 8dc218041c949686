package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product is a catalog entry. Price is a fixed-point decimal end-to-end;
// CategoryID is nil for uncategorized products. Tags keep insertion order
// and may repeat.
type Product struct {
	ID         string          `json:"id"`
	Name       string          `json:"name"`
	Price      decimal.Decimal `json:"price"`
	CategoryID *string         `json:"categoryId"`
	Tags       []string        `json:"tags"`
	CreatedAt  time.Time       `json:"createdAt"`
}
