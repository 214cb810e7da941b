package models

import (
	"time"

	"github.com/google/uuid"
)

// CartItem is one row of an anonymous session cart. Price is a snapshot of
// the product price at add time and is never re-read from the product.
type CartItem struct {
	ID            uuid.UUID `json:"id"`
	SessionID     string    `json:"sessionId"`
	ProductID     uuid.UUID `json:"productId"`
	Quantity      int       `json:"quantity"`
	SelectedSize  *string   `json:"selectedSize,omitempty"`
	SelectedColor *string   `json:"selectedColor,omitempty"`
	Price         float64   `json:"price"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

// CartItemView joins a cart item with the product display fields.
type CartItemView struct {
	ID            uuid.UUID `json:"id"`
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	ProductImage  string    `json:"productImage,omitempty"`
	ProductBrand  string    `json:"productBrand"`
	ProductModel  string    `json:"productModel"`
	Quantity      int       `json:"quantity"`
	Price         float64   `json:"price"`
	TotalPrice    float64   `json:"totalPrice"`
	SelectedSize  *string   `json:"selectedSize,omitempty"`
	SelectedColor *string   `json:"selectedColor,omitempty"`
	CreatedAt     time.Time `json:"createdAt"`
	UpdatedAt     time.Time `json:"updatedAt"`
}

type CartSummary struct {
	TotalItems    int             `json:"totalItems"`
	Subtotal      float64         `json:"subtotal"`
	Shipping      float64         `json:"shipping"`
	ImportCharges float64         `json:"importCharges"`
	Total         float64         `json:"total"`
	Items         []*CartItemView `json:"items"`
}

type AddToCartRequest struct {
	ProductID     uuid.UUID `json:"productId" validate:"required"`
	Quantity      int       `json:"quantity" validate:"required,min=1,max=100"`
	SelectedSize  *string   `json:"selectedSize,omitempty" validate:"omitempty,max=50"`
	SelectedColor *string   `json:"selectedColor,omitempty" validate:"omitempty,max=50"`
}

type UpdateCartItemRequest struct {
	Quantity      int     `json:"quantity" validate:"required,min=1,max=100"`
	SelectedSize  *string `json:"selectedSize,omitempty" validate:"omitempty,max=50"`
	SelectedColor *string `json:"selectedColor,omitempty" validate:"omitempty,max=50"`
}
