package product

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"dalarosa-be/internal/logger"

	"go.uber.org/zap"
)

const productColumns = `id, name, description, price, stock, category, unit, image_url,
	is_featured, is_on_sale, sale_price, sale_ends_at, created_at`

type Repository interface {
	List(ctx context.Context, filter Filter) ([]Product, error)
	Create(ctx context.Context, p *Product) (*Product, error)
	Update(ctx context.Context, p *Product) (*Product, error)
	Delete(ctx context.Context, id string) error
}

type repository struct {
	db *sql.DB
}

func NewRepository(db *sql.DB) Repository {
	return &repository{db: db}
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (Product, error) {
	var p Product
	err := row.Scan(
		&p.ID,
		&p.Name,
		&p.Description,
		&p.Price,
		&p.Stock,
		&p.Category,
		&p.Unit,
		&p.ImageURL,
		&p.IsFeatured,
		&p.IsOnSale,
		&p.SalePrice,
		&p.SaleEndsAt,
		&p.CreatedAt,
	)
	return p, err
}

func (r *repository) List(ctx context.Context, filter Filter) ([]Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "ListProducts"),
	)

	start := time.Now()

	// ---------- where ----------
	var (
		where []string
		args  []any
	)

	if filter.ID != "" {
		args = append(args, filter.ID)
		where = append(where, fmt.Sprintf("id = $%d", len(args)))
	}
	if filter.Category != "" {
		args = append(args, filter.Category)
		where = append(where, fmt.Sprintf("category = $%d", len(args)))
		log = log.With(zap.String("filter_category", string(filter.Category)))
	}
	if filter.OnSale != nil {
		args = append(args, *filter.OnSale)
		where = append(where, fmt.Sprintf("is_on_sale = $%d", len(args)))
		log = log.With(zap.Bool("filter_on_sale", *filter.OnSale))
	}

	query := "SELECT " + productColumns + " FROM products"
	if len(where) > 0 {
		query += " WHERE " + strings.Join(where, " AND ")
	}
	// Stable fetch order; the catalog sort breaks ties on it.
	query += " ORDER BY created_at, id"

	if filter.Limit > 0 {
		args = append(args, filter.Limit)
		query += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Error("query failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFailedListProducts, err)
	}
	defer rows.Close()

	products := make([]Product, 0)
	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			log.Error("scan failed", zap.Error(err))
			return nil, fmt.Errorf("%w: %w", ErrFailedListProducts, err)
		}
		products = append(products, p)
	}
	if err := rows.Err(); err != nil {
		log.Error("rows iteration failed", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFailedListProducts, err)
	}

	log.Debug("query finished",
		zap.Int("count", len(products)),
		zap.Duration("duration", time.Since(start)),
	)
	return products, nil
}

func (r *repository) Create(ctx context.Context, p *Product) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "CreateProduct"),
		zap.String("name", p.Name),
	)

	query := `
	INSERT INTO products (
		name, description, price, stock, category, unit, image_url,
		is_featured, is_on_sale, sale_price, sale_ends_at
	)
	VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11)
	RETURNING id, created_at
	`

	out := *p
	err := r.db.QueryRowContext(ctx, query,
		p.Name,
		p.Description,
		p.Price,
		p.Stock,
		p.Category,
		p.Unit,
		p.ImageURL,
		p.IsFeatured,
		p.IsOnSale,
		p.SalePrice,
		p.SaleEndsAt,
	).Scan(&out.ID, &out.CreatedAt)
	if err != nil {
		log.Error("failed to insert product", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFailedSaveProduct, err)
	}

	log.Info("product created", zap.String("product_id", out.ID))
	return &out, nil
}

func (r *repository) Update(ctx context.Context, p *Product) (*Product, error) {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "UpdateProduct"),
		zap.String("product_id", p.ID),
	)

	query := `
	UPDATE products
	SET name = $1,
	    description = $2,
	    price = $3,
	    stock = $4,
	    category = $5,
	    unit = $6,
	    image_url = $7,
	    is_featured = $8,
	    is_on_sale = $9,
	    sale_price = $10,
	    sale_ends_at = $11
	WHERE id = $12
	RETURNING created_at
	`

	out := *p
	err := r.db.QueryRowContext(ctx, query,
		p.Name,
		p.Description,
		p.Price,
		p.Stock,
		p.Category,
		p.Unit,
		p.ImageURL,
		p.IsFeatured,
		p.IsOnSale,
		p.SalePrice,
		p.SaleEndsAt,
		p.ID,
	).Scan(&out.CreatedAt)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrProductNotFound
	}
	if err != nil {
		log.Error("failed to update product", zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrFailedSaveProduct, err)
	}

	log.Info("product updated")
	return &out, nil
}

func (r *repository) Delete(ctx context.Context, id string) error {
	log := logger.FromCtx(ctx).With(
		zap.String("layer", "repository"),
		zap.String("method", "DeleteProduct"),
		zap.String("product_id", id),
	)

	res, err := r.db.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		log.Error("failed to delete product", zap.Error(err))
		return fmt.Errorf("%w: %w", ErrFailedDeleteProduct, err)
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrFailedDeleteProduct, err)
	}
	if affected == 0 {
		return ErrProductNotFound
	}

	log.Info("product deleted")
	return nil
}
