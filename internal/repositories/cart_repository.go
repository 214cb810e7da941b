package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/solekart/solekart/internal/models"
	"github.com/solekart/solekart/internal/utils"
)

// ErrProductUnavailable is returned when the target product is missing or
// no longer active.
var ErrProductUnavailable = errors.New("product not found or inactive")

type CartRepository interface {
	// AddItem inserts a new cart row or accumulates quantity on the row
	// matching (session, product, size, color). The stock check and the
	// write happen in one transaction with the product row locked, so
	// concurrent adds cannot oversell.
	AddItem(ctx context.Context, sessionID string, req *models.AddToCartRequest) (*models.CartItemView, error)
	GetItem(ctx context.Context, sessionID string, itemID uuid.UUID) (*models.CartItemView, error)
	ListBySession(ctx context.Context, sessionID string) ([]*models.CartItemView, error)
	UpdateItem(ctx context.Context, sessionID string, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.CartItemView, error)
	RemoveItem(ctx context.Context, sessionID string, itemID uuid.UUID) error
	ClearCart(ctx context.Context, sessionID string) error
	CountItems(ctx context.Context, sessionID string) (int, error)
}

type cartRepository struct {
	DB *sql.DB
}

func NewCartRepo(db *sql.DB) CartRepository {
	return &cartRepository{DB: db}
}

const cartItemColumns = `ci.id, ci.product_id, p.name, p.image, p.brand, p.model,
	ci.quantity, ci.price, ci.selected_size, ci.selected_color, ci.created_at, ci.updated_at`

func (r *cartRepository) AddItem(ctx context.Context, sessionID string, req *models.AddToCartRequest) (*models.CartItemView, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	// Lock the product row for the duration of the stock check.
	var (
		price    float64
		stock    int
		isActive bool
	)

	err = tx.QueryRowContext(dbCtx,
		`SELECT price, stock, is_active FROM products WHERE id = $1 FOR UPDATE`,
		req.ProductID,
	).Scan(&price, &stock, &isActive)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrProductUnavailable
		}

		return nil, fmt.Errorf("querying product: %w", err)
	}

	if !isActive {
		return nil, ErrProductUnavailable
	}

	if stock < req.Quantity {
		return nil, ErrInsufficientStock
	}

	var (
		itemID           uuid.UUID
		existingQuantity int
	)

	err = tx.QueryRowContext(dbCtx,
		`SELECT id, quantity FROM cart_items
		 WHERE session_id = $1 AND product_id = $2
		   AND COALESCE(selected_size, '') = COALESCE($3, '')
		   AND COALESCE(selected_color, '') = COALESCE($4, '')`,
		sessionID, req.ProductID, req.SelectedSize, req.SelectedColor,
	).Scan(&itemID, &existingQuantity)

	switch {
	case err == nil:
		newQuantity := existingQuantity + req.Quantity
		if stock < newQuantity {
			return nil, ErrInsufficientStock
		}

		_, err = tx.ExecContext(dbCtx,
			`UPDATE cart_items SET quantity = $1, updated_at = NOW() WHERE id = $2`,
			newQuantity, itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to update cart item: %w", err)
		}

	case errors.Is(err, sql.ErrNoRows):
		// New row; snapshot the current product price.
		err = tx.QueryRowContext(dbCtx,
			`INSERT INTO cart_items (session_id, product_id, quantity, selected_size, selected_color, price)
			 VALUES ($1, $2, $3, $4, $5, $6)
			 RETURNING id`,
			sessionID, req.ProductID, req.Quantity, req.SelectedSize, req.SelectedColor, price,
		).Scan(&itemID)
		if err != nil {
			return nil, fmt.Errorf("failed to insert cart item: %w", err)
		}

	default:
		return nil, fmt.Errorf("querying cart item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetItem(ctx, sessionID, itemID)
}

func (r *cartRepository) GetItem(ctx context.Context, sessionID string, itemID uuid.UUID) (*models.CartItemView, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.id = $1 AND ci.session_id = $2`, cartItemColumns)

	item, err := scanCartItemView(r.DB.QueryRowContext(dbCtx, query, itemID, sessionID))
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}

		return nil, fmt.Errorf("querying database: %w", err)
	}

	return item, nil
}

func (r *cartRepository) ListBySession(ctx context.Context, sessionID string) ([]*models.CartItemView, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	query := fmt.Sprintf(`
		SELECT %s
		FROM cart_items ci
		JOIN products p ON ci.product_id = p.id
		WHERE ci.session_id = $1
		ORDER BY ci.created_at`, cartItemColumns)

	rows, err := r.DB.QueryContext(dbCtx, query, sessionID)
	if err != nil {
		return nil, err
	}

	defer rows.Close()

	var items []*models.CartItemView

	for rows.Next() {
		item, err := scanCartItemView(rows)
		if err != nil {
			return nil, err
		}

		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, err
	}

	return items, nil
}

func (r *cartRepository) UpdateItem(ctx context.Context, sessionID string, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.CartItemView, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	tx, err := r.DB.BeginTx(dbCtx, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}

	defer tx.Rollback()

	var (
		productID uuid.UUID
		stock     int
	)

	err = tx.QueryRowContext(dbCtx,
		`SELECT ci.product_id, p.stock
		 FROM cart_items ci
		 JOIN products p ON ci.product_id = p.id
		 WHERE ci.id = $1 AND ci.session_id = $2
		 FOR UPDATE OF p`,
		itemID, sessionID,
	).Scan(&productID, &stock)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, sql.ErrNoRows
		}

		return nil, fmt.Errorf("querying cart item: %w", err)
	}

	if stock < req.Quantity {
		return nil, ErrInsufficientStock
	}

	_, err = tx.ExecContext(dbCtx,
		`UPDATE cart_items
		 SET quantity = $1,
		     selected_size = COALESCE($2, selected_size),
		     selected_color = COALESCE($3, selected_color),
		     updated_at = NOW()
		 WHERE id = $4`,
		req.Quantity, req.SelectedSize, req.SelectedColor, itemID)
	if err != nil {
		return nil, fmt.Errorf("failed to update cart item: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit transaction: %w", err)
	}

	return r.GetItem(ctx, sessionID, itemID)
}

func (r *cartRepository) RemoveItem(ctx context.Context, sessionID string, itemID uuid.UUID) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	result, err := r.DB.ExecContext(dbCtx,
		`DELETE FROM cart_items WHERE id = $1 AND session_id = $2`, itemID, sessionID)
	if err != nil {
		return fmt.Errorf("failed to remove cart item: %w", err)
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

// ClearCart is idempotent: clearing an empty session is not an error.
func (r *cartRepository) ClearCart(ctx context.Context, sessionID string) error {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	_, err := r.DB.ExecContext(dbCtx, `DELETE FROM cart_items WHERE session_id = $1`, sessionID)
	if err != nil {
		return fmt.Errorf("failed to clear cart: %w", err)
	}

	return nil
}

func (r *cartRepository) CountItems(ctx context.Context, sessionID string) (int, error) {
	dbCtx, cancel := utils.WithDBTimeout(ctx)
	defer cancel()

	var count int

	err := r.DB.QueryRowContext(dbCtx,
		`SELECT COALESCE(SUM(quantity), 0) FROM cart_items WHERE session_id = $1`, sessionID,
	).Scan(&count)
	if err != nil {
		return 0, err
	}

	return count, nil
}

func scanCartItemView(row rowScanner) (*models.CartItemView, error) {

	item := &models.CartItemView{}

	var image sql.NullString

	err := row.Scan(
		&item.ID, &item.ProductID, &item.ProductName, &image, &item.ProductBrand, &item.ProductModel,
		&item.Quantity, &item.Price, &item.SelectedSize, &item.SelectedColor, &item.CreatedAt, &item.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	item.ProductImage = image.String
	item.TotalPrice = item.Price * float64(item.Quantity)

	return item, nil
}
