package postgres

import (
	"context"
	"errors"

	"github.com/DanielPopoola/aquapure/internal/application"
	"github.com/DanielPopoola/aquapure/internal/domain"
	"github.com/jackc/pgx/v5"
)

const productColumns = `id, name, description, price::text, quantity, created_at, updated_at`

type ProductRepository struct {
	db *DB
}

func NewProductRepository(db *DB) *ProductRepository {
	return &ProductRepository{db: db}
}

var _ application.ProductRepository = (*ProductRepository)(nil)

func (r *ProductRepository) List(ctx context.Context) ([]*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products ORDER BY id`

	rows, err := r.db.Pool.Query(ctx, query)
	if err != nil {
		return nil, storeFailure("list products", err)
	}

	products, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (*domain.Product, error) {
		return scanProduct(row)
	})
	if err != nil {
		return nil, storeFailure("list products", err)
	}

	return products, nil
}

// FindByID retrieves a product
func (r *ProductRepository) FindByID(ctx context.Context, id domain.ProductID) (*domain.Product, error) {
	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	product, err := scanProduct(r.db.Pool.QueryRow(ctx, query, id.Value()))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, application.ErrRecordNotFound
		}
		return nil, storeFailure("find product", err)
	}

	return product, nil
}

// Save inserts transient products and upserts identified ones.
func (r *ProductRepository) Save(ctx context.Context, product *domain.Product) (*domain.Product, error) {
	model := toDBModel(product)

	if !product.IsPersisted() {
		query := `
			INSERT INTO products (name, description, price, quantity)
			VALUES ($1, $2, $3::numeric, $4)
			RETURNING ` + productColumns

		saved, err := scanProduct(r.db.Pool.QueryRow(ctx, query, model.Name, model.Description, model.Price, model.Quantity))
		if err != nil {
			return nil, storeFailure("insert product", err)
		}
		return saved, nil
	}

	var saved *domain.Product
	err := r.db.WithTransaction(ctx, func(tx pgx.Tx) error {
		query := `
			INSERT INTO products (id, name, description, price, quantity)
			VALUES ($1, $2, $3, $4::numeric, $5)
			ON CONFLICT (id) DO UPDATE SET
				name = EXCLUDED.name,
				description = EXCLUDED.description,
				price = EXCLUDED.price,
				quantity = EXCLUDED.quantity,
				updated_at = NOW()
			RETURNING ` + productColumns + `, (xmax = 0) AS inserted`

		var (
			row      ProductModel
			inserted bool
		)
		err := tx.QueryRow(ctx, query, model.ID, model.Name, model.Description, model.Price, model.Quantity).Scan(
			&row.ID, &row.Name, &row.Description, &row.Price, &row.Quantity, &row.CreatedAt, &row.UpdatedAt, &inserted,
		)
		if err != nil {
			return err
		}
		if saved, err = toDomainModel(row); err != nil {
			return err
		}
		if !inserted {
			return nil
		}

		// An explicit id may sit ahead of the sequence; move it forward, never back.
		_, err = tx.Exec(ctx, `
			SELECT setval(pg_get_serial_sequence('products', 'id'),
				GREATEST($1::bigint, (SELECT last_value FROM products_id_seq)))
		`, row.ID)
		return err
	})
	if err != nil {
		return nil, storeFailure("upsert product", err)
	}

	return saved, nil
}

// DeleteByID removes a product, reporting ErrRecordNotFound when nothing was deleted.
func (r *ProductRepository) DeleteByID(ctx context.Context, id domain.ProductID) error {
	tag, err := r.db.Pool.Exec(ctx, `DELETE FROM products WHERE id = $1`, id.Value())
	if err != nil {
		return storeFailure("delete product", err)
	}
	if tag.RowsAffected() == 0 {
		return application.ErrRecordNotFound
	}
	return nil
}

func scanProduct(row pgx.Row) (*domain.Product, error) {
	var m ProductModel
	err := row.Scan(
		&m.ID, &m.Name, &m.Description, &m.Price, &m.Quantity, &m.CreatedAt, &m.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return toDomainModel(m)
}
