package category

import (
	"context"

	"catalog-api/internal/db"
	"catalog-api/internal/domain"
	"github.com/jackc/pgx/v5/pgxpool"
)

type postgresRepo struct {
	pool *pgxpool.Pool
}

func NewPostgres(pool *pgxpool.Pool) Repository {
	return &postgresRepo{pool: pool}
}

func (r *postgresRepo) ListAll(ctx context.Context) ([]domain.Category, error) {
	const q = `
SELECT id::text, name, created_at
FROM categories
ORDER BY name ASC
`
	rows, err := r.pool.Query(ctx, q)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var result []domain.Category
	for rows.Next() {
		var c domain.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.CreatedAt); err != nil {
			return nil, err
		}
		result = append(result, c)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return result, nil
}

func (r *postgresRepo) Create(ctx context.Context, name string) (*domain.Category, error) {
	const q = `
INSERT INTO categories (name)
VALUES ($1)
RETURNING id::text, name, created_at
`
	var c domain.Category
	err := r.pool.QueryRow(ctx, q, name).Scan(&c.ID, &c.Name, &c.CreatedAt)
	if err != nil {
		switch db.ClassifyError(err) {
		case db.OutcomeUniqueViolation:
			return nil, domain.ErrConflict
		default:
			return nil, err
		}
	}
	return &c, nil
}
