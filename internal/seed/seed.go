package seed

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

type productSeed struct {
	Name     string
	Price    string
	Category string
	Tags     []string
}

// Apply inserts demo data for manual testing. Product ids are derived from
// the name, so re-running updates in place instead of duplicating rows.
func Apply(ctx context.Context, pool *pgxpool.Pool) error {
	categoryIDs := map[string]string{}
	for _, name := range []string{"Peripherals", "Audio", "Office"} {
		id, err := ensureCategory(ctx, pool, name)
		if err != nil {
			return fmt.Errorf("ensure category %s: %w", name, err)
		}
		categoryIDs[name] = id
	}

	products := []productSeed{
		{Name: "Wireless Mouse", Price: "19.99", Category: "Peripherals", Tags: []string{"gadget", "accessory"}},
		{Name: "Mechanical Keyboard", Price: "89.00", Category: "Peripherals", Tags: []string{"gadget"}},
		{Name: "USB-C Headset", Price: "49.50", Category: "Audio", Tags: []string{"audio", "accessory"}},
		{Name: "Desk Lamp", Price: "24.90", Category: "Office", Tags: nil},
		{Name: "Mystery Box", Price: "0.00", Category: "", Tags: []string{"promo"}},
	}

	for _, p := range products {
		if err := upsertProduct(ctx, pool, categoryIDs, p); err != nil {
			return fmt.Errorf("upsert product %s: %w", p.Name, err)
		}
	}

	return nil
}

func ensureCategory(ctx context.Context, pool *pgxpool.Pool, name string) (string, error) {
	const q = `
INSERT INTO categories (name)
VALUES ($1)
ON CONFLICT (name) DO UPDATE SET name = EXCLUDED.name
RETURNING id::text
`
	var id string
	if err := pool.QueryRow(ctx, q, name).Scan(&id); err != nil {
		return "", err
	}
	return id, nil
}

func upsertProduct(ctx context.Context, pool *pgxpool.Pool, categoryIDs map[string]string, p productSeed) error {
	const q = `
INSERT INTO products (id, name, price, category_id, tags)
VALUES ($1, $2, $3, $4, $5)
ON CONFLICT (id) DO UPDATE SET
    name = EXCLUDED.name,
    price = EXCLUDED.price,
    category_id = EXCLUDED.category_id,
    tags = EXCLUDED.tags
`
	id := uuid.NewSHA1(uuid.NameSpaceOID, []byte("seed:"+p.Name)).String()

	var categoryID *string
	if p.Category != "" {
		cid, ok := categoryIDs[p.Category]
		if !ok {
			return fmt.Errorf("unknown seed category %q", p.Category)
		}
		categoryID = &cid
	}

	tags := p.Tags
	if tags == nil {
		tags = []string{}
	}

	_, err := pool.Exec(ctx, q, id, p.Name, decimal.RequireFromString(p.Price), categoryID, tags)
	return err
}
