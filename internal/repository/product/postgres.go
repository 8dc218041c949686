package product

import (
	"context"
	"fmt"
	"strings"

	"catalog-api/internal/db"
	"catalog-api/internal/domain"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

const productColumns = `id::text, name, price, category_id::text, tags, created_at`

type postgresRepo struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

func NewPostgres(pool *pgxpool.Pool, logger zerolog.Logger) Repository {
	return &postgresRepo{pool: pool, logger: logger}
}

// List runs the count and the page fetch inside one read-only transaction at
// REPEATABLE READ, so both statements read the same snapshot and total cannot
// disagree with the returned rows. The filter predicate is shared verbatim.
func (r *postgresRepo) List(ctx context.Context, params ListParams) ([]domain.Product, int64, error) {
	p := params.Normalize()
	where, args := p.whereClause()

	countQ := "SELECT count(*) FROM products " + where
	dataQ := fmt.Sprintf(
		"SELECT %s FROM products %s %s LIMIT $%d OFFSET $%d",
		productColumns, where, p.orderClause(), len(args)+1, len(args)+2,
	)
	dataArgs := append(append([]any{}, args...), p.PageSize, p.Offset())

	tx, err := r.pool.BeginTx(ctx, pgx.TxOptions{IsoLevel: pgx.RepeatableRead, AccessMode: pgx.ReadOnly})
	if err != nil {
		return nil, 0, fmt.Errorf("begin list tx: %w", err)
	}
	defer func() { _ = tx.Rollback(ctx) }()

	var total int64
	if err := tx.QueryRow(ctx, countQ, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("count products: %w", err)
	}

	rows, err := tx.Query(ctx, dataQ, dataArgs...)
	if err != nil {
		return nil, 0, fmt.Errorf("query products: %w", err)
	}
	defer rows.Close()

	var result []domain.Product
	for rows.Next() {
		var row domain.Product
		if err := rows.Scan(&row.ID, &row.Name, &row.Price, &row.CategoryID, &row.Tags, &row.CreatedAt); err != nil {
			return nil, 0, err
		}
		result = append(result, row)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}

	if err := tx.Commit(ctx); err != nil {
		return nil, 0, fmt.Errorf("commit list tx: %w", err)
	}
	r.logger.Debug().Int("count", len(result)).Int64("total", total).Msg("product repo: list")
	return result, total, nil
}

func (r *postgresRepo) GetByID(ctx context.Context, id string) (*domain.Product, error) {
	q := fmt.Sprintf("SELECT %s FROM products WHERE id = $1", productColumns)

	var p domain.Product
	err := r.pool.QueryRow(ctx, q, id).Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Tags, &p.CreatedAt)
	if err != nil {
		switch db.ClassifyError(err) {
		case db.OutcomeNoRows:
			return nil, domain.ErrNotFound
		default:
			r.logger.Error().Err(err).Str("id", id).Msg("product repo: get")
			return nil, err
		}
	}
	return &p, nil
}

func (r *postgresRepo) Create(ctx context.Context, params CreateParams) (*domain.Product, error) {
	q := fmt.Sprintf(`
INSERT INTO products (name, price, category_id, tags)
VALUES ($1, $2, $3, $4)
RETURNING %s`, productColumns)

	tags := params.Tags
	if tags == nil {
		tags = []string{}
	}

	var p domain.Product
	err := r.pool.QueryRow(ctx, q, params.Name, params.Price, params.CategoryID, tags).
		Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Tags, &p.CreatedAt)
	if err != nil {
		switch db.ClassifyError(err) {
		case db.OutcomeForeignKeyViolation:
			return nil, domain.ErrCategoryNotFound
		default:
			r.logger.Error().Err(err).Str("name", params.Name).Msg("product repo: create")
			return nil, err
		}
	}
	r.logger.Debug().Str("id", p.ID).Msg("product repo: created")
	return &p, nil
}

// Update applies only the fields set in params. An all-unset update is a
// plain read. A set-to-null CategoryID clears the reference.
func (r *postgresRepo) Update(ctx context.Context, id string, params UpdateParams) (*domain.Product, error) {
	var sets []string
	args := []any{id}

	if v, ok := params.Name.Get(); ok {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("name = $%d", len(args)))
	}
	if v, ok := params.Price.Get(); ok {
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("price = $%d", len(args)))
	}
	if params.CategoryID.IsSet() {
		if v, ok := params.CategoryID.Get(); ok {
			args = append(args, v)
			sets = append(sets, fmt.Sprintf("category_id = $%d", len(args)))
		} else {
			sets = append(sets, "category_id = NULL")
		}
	}
	if v, ok := params.Tags.Get(); ok {
		if v == nil {
			v = []string{}
		}
		args = append(args, v)
		sets = append(sets, fmt.Sprintf("tags = $%d", len(args)))
	}

	if len(sets) == 0 {
		return r.GetByID(ctx, id)
	}

	q := fmt.Sprintf(
		"UPDATE products SET %s WHERE id = $1 RETURNING %s",
		strings.Join(sets, ", "), productColumns,
	)

	var p domain.Product
	err := r.pool.QueryRow(ctx, q, args...).Scan(&p.ID, &p.Name, &p.Price, &p.CategoryID, &p.Tags, &p.CreatedAt)
	if err != nil {
		switch db.ClassifyError(err) {
		case db.OutcomeNoRows:
			return nil, domain.ErrNotFound
		case db.OutcomeForeignKeyViolation:
			return nil, domain.ErrCategoryNotFound
		default:
			r.logger.Error().Err(err).Str("id", id).Msg("product repo: update")
			return nil, err
		}
	}
	r.logger.Debug().Str("id", p.ID).Msg("product repo: updated")
	return &p, nil
}

func (r *postgresRepo) Delete(ctx context.Context, id string) error {
	cmd, err := r.pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		r.logger.Error().Err(err).Str("id", id).Msg("product repo: delete")
		return err
	}
	if cmd.RowsAffected() == 0 {
		return domain.ErrNotFound
	}
	r.logger.Debug().Str("id", id).Msg("product repo: deleted")
	return nil
}
