package service

import (
	"context"
	"database/sql"
	"errors"

	"github.com/google/uuid"
	"github.com/solekart/solekart/internal/config"
	appErrors "github.com/solekart/solekart/internal/errors"
	"github.com/solekart/solekart/internal/models"
	repository "github.com/solekart/solekart/internal/repositories"
	"github.com/solekart/solekart/internal/utils"
)

type CartService interface {
	AddToCart(ctx context.Context, sessionID string, req *models.AddToCartRequest) (*models.CartItemView, error)
	GetCart(ctx context.Context, sessionID string) (*models.CartSummary, error)
	UpdateCartItem(ctx context.Context, sessionID string, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.CartItemView, error)
	RemoveFromCart(ctx context.Context, sessionID string, itemID uuid.UUID) error
	ClearCart(ctx context.Context, sessionID string) error
	CartItemCount(ctx context.Context, sessionID string) (int, error)
	CartTotal(ctx context.Context, sessionID string) (float64, error)
	EstimateShipping(ctx context.Context, sessionID string) (float64, error)
	GenerateSessionID() string
}

type cartService struct {
	repo repository.CartRepository
	cfg  *config.Cart
}

func NewCartService(repo repository.CartRepository, cfg *config.Cart) CartService {
	return &cartService{repo: repo, cfg: cfg}
}

func (s *cartService) AddToCart(ctx context.Context, sessionID string, req *models.AddToCartRequest) (*models.CartItemView, error) {

	if req.Quantity <= 0 {
		return nil, appErrors.BadRequestError("Quantity must be greater than zero")
	}

	item, err := s.repo.AddItem(ctx, sessionID, req)
	if err != nil {
		switch {
		case errors.Is(err, repository.ErrProductUnavailable):
			return nil, appErrors.BadRequestError("Product not found or inactive")
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, appErrors.BadRequestError("Insufficient stock for requested quantity")
		default:
			return nil, appErrors.DatabaseError("Failed to add item to cart").WithError(err)
		}
	}

	return item, nil
}

func (s *cartService) GetCart(ctx context.Context, sessionID string) (*models.CartSummary, error) {

	items, err := s.repo.ListBySession(ctx, sessionID)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to retrieve cart").WithError(err)
	}

	return s.summarize(items), nil
}

func (s *cartService) UpdateCartItem(ctx context.Context, sessionID string, itemID uuid.UUID, req *models.UpdateCartItemRequest) (*models.CartItemView, error) {

	if req.Quantity <= 0 {
		return nil, appErrors.BadRequestError("Quantity must be greater than zero")
	}

	item, err := s.repo.UpdateItem(ctx, sessionID, itemID, req)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return nil, appErrors.NotFoundError("Cart item not found")
		case errors.Is(err, repository.ErrInsufficientStock):
			return nil, appErrors.BadRequestError("Insufficient stock for requested quantity")
		default:
			return nil, appErrors.DatabaseError("Failed to update cart item").WithError(err)
		}
	}

	return item, nil
}

func (s *cartService) RemoveFromCart(ctx context.Context, sessionID string, itemID uuid.UUID) error {

	err := s.repo.RemoveItem(ctx, sessionID, itemID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Cart item not found")
		}

		return appErrors.DatabaseError("Failed to remove cart item").WithError(err)
	}

	return nil
}

func (s *cartService) ClearCart(ctx context.Context, sessionID string) error {

	if err := s.repo.ClearCart(ctx, sessionID); err != nil {
		return appErrors.DatabaseError("Failed to clear cart").WithError(err)
	}

	return nil
}

func (s *cartService) CartItemCount(ctx context.Context, sessionID string) (int, error) {

	count, err := s.repo.CountItems(ctx, sessionID)
	if err != nil {
		return 0, appErrors.DatabaseError("Failed to count cart items").WithError(err)
	}

	return count, nil
}

// CartTotal reuses the summary math so it can never disagree with GetCart.
func (s *cartService) CartTotal(ctx context.Context, sessionID string) (float64, error) {

	summary, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	return summary.Total, nil
}

func (s *cartService) EstimateShipping(ctx context.Context, sessionID string) (float64, error) {

	summary, err := s.GetCart(ctx, sessionID)
	if err != nil {
		return 0, err
	}

	return summary.Shipping, nil
}

// GenerateSessionID issues a fresh opaque cart session identifier. No
// persistence happens until the session adds an item.
func (s *cartService) GenerateSessionID() string {
	return uuid.NewString()
}

func (s *cartService) summarize(items []*models.CartItemView) *models.CartSummary {

	var subtotal float64

	totalItems := 0

	for _, item := range items {
		subtotal += item.Price * float64(item.Quantity)
		totalItems += item.Quantity
		item.TotalPrice = utils.RoundCents(item.Price * float64(item.Quantity))
	}

	shipping := s.cfg.FlatShippingFee
	if subtotal > s.cfg.FreeShippingThreshold {
		shipping = 0
	}

	importCharges := subtotal * s.cfg.ImportChargeRate
	total := subtotal + shipping + importCharges

	if items == nil {
		items = []*models.CartItemView{}
	}

	return &models.CartSummary{
		TotalItems:    totalItems,
		Subtotal:      utils.RoundCents(subtotal),
		Shipping:      utils.RoundCents(shipping),
		ImportCharges: utils.RoundCents(importCharges),
		Total:         utils.RoundCents(total),
		Items:         items,
	}
}
