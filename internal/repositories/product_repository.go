package repository

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/google/uuid"
	"github.com/solekart/solekart/internal/models"
	"github.com/solekart/solekart/internal/utils"
)

// ErrInsufficientStock is returned by DecreaseStock when the conditional
// update matched the product but the requested amount exceeds the stock.
var ErrInsufficientStock = errors.New("insufficient stock")

type ProductRepository interface {
	CreateProduct(ctx context.Context, product *models.Product) error
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, product *models.Product) error
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, query *models.ProductQuery) ([]*models.Product, int, error)
	FeaturedProducts(ctx context.Context, limit int) ([]*models.Product, error)
	SaleProducts(ctx context.Context, limit int) ([]*models.Product, error)
	ProductsByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]*models.Product, error)
	ProductsByBrand(ctx context.Context, brand string, limit int) ([]*models.Product, error)
	UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error
	IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) error
	DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) error
}

type productRepository struct {
	DB *sql.DB
}

func NewProductRepo(db *sql.DB) ProductRepository {
	return &productRepository{DB: db}
}

const productColumns = `p.id, p.name, p.description, p.price, p.original_price, p.discount_percentage,
	p.image, p.images, p.brand, p.model, p.color, p.sizes, p.stock, p.status, p.sku,
	p.rating, p.review_count, p.is_active, p.is_featured, p.category_id, p.created_at, p.updated_at,
	c.id, c.name, c.description, c.icon, c.is_active`

// sortColumns whitelists the client-facing sort keys against real columns.
var sortColumns = map[string]string{
	"createdAt":          "p.created_at",
	"price":              "p.price",
	"name":               "p.name",
	"brand":              "p.brand",
	"rating":             "p.rating",
	"stock":              "p.stock",
	"discountPercentage": "p.discount_percentage",
}

func (r *productRepository) CreateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	imagesJSON, err := marshalStrings(product.Images)
	if err != nil {
		return err
	}

	sizesJSON, err := marshalStrings(product.Sizes)
	if err != nil {
		return err
	}

	query := `INSERT INTO products (name, description, price, original_price, discount_percentage,
				image, images, brand, model, color, sizes, stock, status, sku, is_featured, category_id)
			  VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15, $16)
			  RETURNING id, is_active, review_count, created_at, updated_at
	`

	return r.DB.QueryRowContext(dbCtx, query,
		product.Name, nullString(product.Description), product.Price, product.OriginalPrice, product.DiscountPercentage,
		nullString(product.Image), imagesJSON, product.Brand, product.Model, nullString(product.Color), sizesJSON,
		product.Stock, product.Status, nullString(product.SKU), product.IsFeatured, product.CategoryID,
	).Scan(&product.ID, &product.IsActive, &product.ReviewCount, &product.CreatedAt, &product.UpdatedAt)
}

func (r *productRepository) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`, productColumns)

	product, err := scanProduct(r.DB.QueryRowContext(dbCtx, query, id))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return product, nil
}

func (r *productRepository) UpdateProduct(ctx context.Context, product *models.Product) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	imagesJSON, err := marshalStrings(product.Images)
	if err != nil {
		return err
	}

	sizesJSON, err := marshalStrings(product.Sizes)
	if err != nil {
		return err
	}

	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, original_price = $4, discount_percentage = $5,
			image = $6, images = $7, brand = $8, model = $9, color = $10, sizes = $11, stock = $12,
			status = $13, sku = $14, is_active = $15, is_featured = $16, category_id = $17, updated_at = NOW()
		WHERE id = $18
		RETURNING updated_at
	`

	err = r.DB.QueryRowContext(dbCtx, query,
		product.Name, nullString(product.Description), product.Price, product.OriginalPrice, product.DiscountPercentage,
		nullString(product.Image), imagesJSON, product.Brand, product.Model, nullString(product.Color), sizesJSON,
		product.Stock, product.Status, nullString(product.SKU), product.IsActive, product.IsFeatured,
		product.CategoryID, product.ID,
	).Scan(&product.UpdatedAt)

	return err
}

func (r *productRepository) DeleteProduct(ctx context.Context, id uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx, `DELETE FROM products WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete product: %w", err)
	}

	deleted, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get deleted rows: %w", err)
	}

	if deleted == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *productRepository) ListProducts(ctx context.Context, query *models.ProductQuery) ([]*models.Product, int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	where := sq.And{sq.Eq{"p.is_active": true}}

	if query.Search != "" {
		pattern := "%" + query.Search + "%"
		where = append(where, sq.Or{
			sq.ILike{"p.name": pattern},
			sq.ILike{"p.description": pattern},
			sq.ILike{"p.brand": pattern},
		})
	}

	if query.CategoryID != nil {
		where = append(where, sq.Eq{"p.category_id": *query.CategoryID})
	}

	if query.Brand != "" {
		where = append(where, sq.Eq{"p.brand": query.Brand})
	}

	if query.Color != "" {
		where = append(where, sq.Eq{"p.color": query.Color})
	}

	if query.MinPrice != nil {
		where = append(where, sq.GtOrEq{"p.price": *query.MinPrice})
	}

	if query.MaxPrice != nil {
		where = append(where, sq.LtOrEq{"p.price": *query.MaxPrice})
	}

	psql := sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

	countSQL, countArgs, err := psql.Select("COUNT(*)").From("products p").Where(where).ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building count query: %w", err)
	}

	var total int

	if err := r.DB.QueryRowContext(dbCtx, countSQL, countArgs...).Scan(&total); err != nil {
		return nil, 0, err
	}

	sortColumn, ok := sortColumns[query.SortBy]
	if !ok {
		sortColumn = "p.created_at"
	}

	sortOrder := "DESC"
	if strings.EqualFold(query.SortOrder, "asc") {
		sortOrder = "ASC"
	}

	offset := (query.Page - 1) * query.Limit

	listSQL, listArgs, err := psql.Select(productColumns).
		From("products p").
		LeftJoin("categories c ON p.category_id = c.id").
		Where(where).
		OrderBy(sortColumn + " " + sortOrder).
		Limit(uint64(query.Limit)).
		Offset(uint64(offset)).
		ToSql()
	if err != nil {
		return nil, 0, fmt.Errorf("building list query: %w", err)
	}

	products, err := r.queryProducts(dbCtx, listSQL, listArgs...)
	if err != nil {
		return nil, 0, err
	}

	return products, total, nil
}

func (r *productRepository) FeaturedProducts(ctx context.Context, limit int) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.is_featured = TRUE AND p.is_active = TRUE
		ORDER BY p.created_at DESC
		LIMIT $1`, productColumns)

	return r.queryProducts(dbCtx, query, limit)
}

// SaleProducts orders by discount depth so the deepest discounts lead.
func (r *productRepository) SaleProducts(ctx context.Context, limit int) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.is_active = TRUE
		ORDER BY p.discount_percentage DESC NULLS LAST
		LIMIT $1`, productColumns)

	return r.queryProducts(dbCtx, query, limit)
}

func (r *productRepository) ProductsByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.category_id = $1 AND p.is_active = TRUE
		ORDER BY p.created_at DESC
		LIMIT $2`, productColumns)

	return r.queryProducts(dbCtx, query, categoryID, limit)
}

func (r *productRepository) ProductsByBrand(ctx context.Context, brand string, limit int) ([]*models.Product, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.brand = $1 AND p.is_active = TRUE
		ORDER BY p.created_at DESC
		LIMIT $2`, productColumns)

	return r.queryProducts(dbCtx, query, brand, limit)
}

func (r *productRepository) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.execStock(dbCtx, `UPDATE products SET stock = $1, updated_at = NOW() WHERE id = $2`, quantity, id)
}

func (r *productRepository) IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	return r.execStock(dbCtx, `UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2`, quantity, id)
}

// DecreaseStock guards the decrement in the statement itself, so two
// concurrent requests cannot drive stock negative.
func (r *productRepository) DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := `UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND stock >= $1`

	result, err := r.DB.ExecContext(dbCtx, query, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to decrease stock: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		// Either the product is gone or the stock is too low.
		var exists bool
		if err := r.DB.QueryRowContext(dbCtx, `SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`, id).Scan(&exists); err != nil {
			return err
		}

		if !exists {
			return sql.ErrNoRows
		}

		return ErrInsufficientStock
	}

	return nil
}

func (r *productRepository) execStock(ctx context.Context, query string, quantity int, id uuid.UUID) error {

	result, err := r.DB.ExecContext(ctx, query, quantity, id)
	if err != nil {
		return fmt.Errorf("failed to update stock: %w", err)
	}

	updated, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get updated rows: %w", err)
	}

	if updated == 0 {
		return sql.ErrNoRows
	}

	return nil
}

func (r *productRepository) queryProducts(ctx context.Context, query string, args ...any) ([]*models.Product, error) {

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var products []*models.Product

	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, err
		}

		products = append(products, product)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return products, nil
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanProduct(row rowScanner) (*models.Product, error) {

	product := &models.Product{}

	var (
		description, image, color, sku sql.NullString
		imagesJSON, sizesJSON          []byte
		categoryID                     uuid.NullUUID
		catID                          uuid.NullUUID
		catName, catDesc, catIcon      sql.NullString
		catActive                      sql.NullBool
	)

	err := row.Scan(
		&product.ID, &product.Name, &description, &product.Price, &product.OriginalPrice, &product.DiscountPercentage,
		&image, &imagesJSON, &product.Brand, &product.Model, &color, &sizesJSON, &product.Stock, &product.Status, &sku,
		&product.Rating, &product.ReviewCount, &product.IsActive, &product.IsFeatured, &categoryID,
		&product.CreatedAt, &product.UpdatedAt,
		&catID, &catName, &catDesc, &catIcon, &catActive,
	)
	if err != nil {
		return nil, err
	}

	product.Description = description.String
	product.Image = image.String
	product.Color = color.String
	product.SKU = sku.String

	if categoryID.Valid {
		id := categoryID.UUID
		product.CategoryID = &id
	}

	if err := unmarshalStrings(imagesJSON, &product.Images); err != nil {
		return nil, err
	}

	if err := unmarshalStrings(sizesJSON, &product.Sizes); err != nil {
		return nil, err
	}

	if catID.Valid {
		product.Category = &models.Category{
			ID:          catID.UUID,
			Name:        catName.String,
			Description: catDesc.String,
			Icon:        catIcon.String,
			IsActive:    catActive.Bool,
		}
	}

	return product, nil
}

func marshalStrings(values []string) ([]byte, error) {
	if values == nil {
		return nil, nil
	}

	data, err := json.Marshal(values)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal string list: %w", err)
	}

	return data, nil
}

func unmarshalStrings(data []byte, dest *[]string) error {
	if len(data) == 0 {
		return nil
	}

	if err := json.Unmarshal(data, dest); err != nil {
		return fmt.Errorf("failed to unmarshal string list: %w", err)
	}

	return nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
