package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/Niral-09/herbal-cosmetics-ecommerce/internal/models"
	"github.com/lib/pq"
	"github.com/shopspring/decimal"
)

var (
	ErrProductNotFound = errors.New("product not found")
	ErrDuplicateSKU    = errors.New("product sku already exists")
)

// unique_violation
const pqUniqueViolation = "23505"

type ProductRepository interface {
	ListProducts(ctx context.Context) ([]models.Product, error)
	GetProductByID(ctx context.Context, id string) (*models.Product, error)
	CreateProduct(ctx context.Context, product *models.Product) error
	UpdateProducts(ctx context.Context, products []models.Product) error
	DeleteProducts(ctx context.Context, ids []string) (int, error)
	ListCategories(ctx context.Context) ([]models.Category, error)
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `id, name, sku, category, brand, description, image, price, original_price,
		discount_percent, stock, rating, review_count, is_new, featured, status,
		skin_types, ingredients, variants, created_at, updated_at`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (models.Product, error) {
	var (
		p        models.Product
		original decimal.NullDecimal
		variants []byte
	)

	err := row.Scan(&p.ID, &p.Name, &p.SKU, &p.Category, &p.Brand, &p.Description, &p.Image, &p.Price, &original,
		&p.DiscountPercent, &p.Stock, &p.Rating, &p.ReviewCount, &p.IsNew, &p.Featured, &p.Status,
		pq.Array(&p.SkinTypes), pq.Array(&p.Ingredients), &variants, &p.CreatedAt, &p.UpdatedAt)
	if err != nil {
		return p, err
	}

	if original.Valid {
		p.OriginalPrice = &original.Decimal
	}

	if len(variants) > 0 {
		if err := json.Unmarshal(variants, &p.Variants); err != nil {
			return p, fmt.Errorf("failed to unmarshal variants of product %s: %w", p.ID, err)
		}
	}

	return p, nil
}

func variantsJSON(variants []models.Variant) ([]byte, error) {
	if variants == nil {
		variants = []models.Variant{}
	}

	return json.Marshal(variants)
}

func nullDecimal(d *decimal.Decimal) decimal.NullDecimal {
	if d == nil {
		return decimal.NullDecimal{}
	}

	return decimal.NullDecimal{Decimal: *d, Valid: true}
}

func (r *productRepository) ListProducts(ctx context.Context) ([]models.Product, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products ORDER BY created_at, id`

	rows, err := r.DB.QueryContext(dbCtx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	defer rows.Close()

	products := []models.Product{}

	for rows.Next() {
		p, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}

		products = append(products, p)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate products: %w", err)
	}

	return products, nil
}

func (r *productRepository) GetProductByID(ctx context.Context, id string) (*models.Product, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	query := `SELECT ` + productColumns + ` FROM products WHERE id = $1`

	p, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("%w: %s", ErrProductNotFound, id)
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return &p, nil
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	variants, err := variantsJSON(product.Variants)
	if err != nil {
		return fmt.Errorf("failed to marshal variants: %w", err)
	}

	query := `INSERT INTO products (id, name, sku, category, brand, description, image, price, original_price,
			  discount_percent, stock, rating, review_count, is_new, featured, status, skin_types, ingredients, variants)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16, $17, $18, $19)
			  RETURNING created_at, updated_at`

	err = r.DB.QueryRowContext(dbCtx, query, product.ID, product.Name, product.SKU, product.Category, product.Brand,
		product.Description, product.Image, product.Price, nullDecimal(product.OriginalPrice), product.DiscountPercent,
		product.Stock, product.Rating, product.ReviewCount, product.IsNew, product.Featured, product.Status,
		pq.Array(product.SkinTypes), pq.Array(product.Ingredients), variants).Scan(&product.CreatedAt, &product.UpdatedAt)

	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
			return fmt.Errorf("%w: %s", ErrDuplicateSKU, product.SKU)
		}

		return fmt.Errorf("failed to insert product: %w", err)
	}

	return nil
}

// UpdateProducts writes every product in one transaction so a bulk edit
// is applied entirely or not at all.
func (r *productRepository) UpdateProducts(ctx context.Context, products []models.Product) error {
	if len(products) == 0 {
		return nil
	}

	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	query := `UPDATE products SET name = $1, sku = $2, category = $3, brand = $4, description = $5, image = $6,
			  price = $7, original_price = $8, discount_percent = $9, stock = $10, featured = $11, status = $12,
			  skin_types = $13, ingredients = $14, variants = $15, updated_at = $16
			  WHERE id = $17`

	for i := range products {
		p := &products[i]

		variants, err := variantsJSON(p.Variants)
		if err != nil {
			return fmt.Errorf("failed to marshal variants: %w", err)
		}

		res, err := tx.ExecContext(dbCtx, query, p.Name, p.SKU, p.Category, p.Brand, p.Description, p.Image,
			p.Price, nullDecimal(p.OriginalPrice), p.DiscountPercent, p.Stock, p.Featured, p.Status,
			pq.Array(p.SkinTypes), pq.Array(p.Ingredients), variants, p.UpdatedAt, p.ID)
		if err != nil {
			var pqErr *pq.Error
			if errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation {
				return fmt.Errorf("%w: %s", ErrDuplicateSKU, p.SKU)
			}

			return fmt.Errorf("failed to update product %s: %w", p.ID, err)
		}

		if n, err := res.RowsAffected(); err == nil && n == 0 {
			return fmt.Errorf("%w: %s", ErrProductNotFound, p.ID)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit product updates: %w", err)
	}

	return nil
}

func (r *productRepository) DeleteProducts(ctx context.Context, ids []string) (int, error) {
	if len(ids) == 0 {
		return 0, nil
	}

	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	res, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = ANY($1)`, pq.Array(ids))
	if err != nil {
		return 0, fmt.Errorf("failed to delete products: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to read deleted rows: %w", err)
	}

	return int(n), nil
}

func (r *productRepository) ListCategories(ctx context.Context) ([]models.Category, error) {
	dbCtx, cancel := withQueryTimeout(ctx)
	defer cancel()

	rows, err := r.DB.QueryContext(dbCtx, `SELECT id, name, slug, COALESCE(parent_id, '') FROM categories ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}

	defer rows.Close()

	categories := []models.Category{}

	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Slug, &c.ParentID); err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}

		categories = append(categories, c)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate categories: %w", err)
	}

	return categories, nil
}
