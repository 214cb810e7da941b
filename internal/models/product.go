package models

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID          uuid.UUID `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Icon        string    `json:"icon,omitempty"`
	IsActive    bool      `json:"isActive"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

type Product struct {
	ID                 uuid.UUID  `json:"id"`
	Name               string     `json:"name"`
	Description        string     `json:"description,omitempty"`
	Price              float64    `json:"price"`
	OriginalPrice      *float64   `json:"originalPrice,omitempty"`
	DiscountPercentage *float64   `json:"discountPercentage,omitempty"`
	Image              string     `json:"image,omitempty"`
	Images             []string   `json:"images,omitempty"`
	Brand              string     `json:"brand"`
	Model              string     `json:"model"`
	Color              string     `json:"color,omitempty"`
	Sizes              []string   `json:"sizes,omitempty"`
	Stock              int        `json:"stock"`
	Status             string     `json:"status"`
	SKU                string     `json:"sku,omitempty"`
	Rating             *float64   `json:"rating,omitempty"`
	ReviewCount        int        `json:"reviewCount"`
	IsActive           bool       `json:"isActive"`
	IsFeatured         bool       `json:"isFeatured"`
	CategoryID         *uuid.UUID `json:"categoryId,omitempty"`
	Category           *Category  `json:"category,omitempty"`
	CreatedAt          time.Time  `json:"createdAt"`
	UpdatedAt          time.Time  `json:"updatedAt"`
}

type CreateProductRequest struct {
	Name          string     `json:"name" validate:"required,min=2,max=255"`
	Description   string     `json:"description,omitempty"`
	Price         float64    `json:"price" validate:"required,gt=0"`
	OriginalPrice *float64   `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Image         string     `json:"image,omitempty"`
	Images        []string   `json:"images,omitempty"`
	Brand         string     `json:"brand" validate:"required,max=50"`
	Model         string     `json:"model" validate:"required,max=100"`
	Color         string     `json:"color,omitempty" validate:"omitempty,max=50"`
	Sizes         []string   `json:"sizes,omitempty"`
	Stock         int        `json:"stock" validate:"gte=0"`
	Status        string     `json:"status,omitempty" validate:"omitempty,oneof=available unavailable discontinued"`
	SKU           string     `json:"sku,omitempty" validate:"omitempty,min=3,max=50"`
	IsFeatured    bool       `json:"isFeatured,omitempty"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
}

type UpdateProductRequest struct {
	Name          *string    `json:"name,omitempty" validate:"omitempty,min=2,max=255"`
	Description   *string    `json:"description,omitempty"`
	Price         *float64   `json:"price,omitempty" validate:"omitempty,gt=0"`
	OriginalPrice *float64   `json:"originalPrice,omitempty" validate:"omitempty,gt=0"`
	Image         *string    `json:"image,omitempty"`
	Images        []string   `json:"images,omitempty"`
	Brand         *string    `json:"brand,omitempty" validate:"omitempty,max=50"`
	Model         *string    `json:"model,omitempty" validate:"omitempty,max=100"`
	Color         *string    `json:"color,omitempty" validate:"omitempty,max=50"`
	Sizes         []string   `json:"sizes,omitempty"`
	Stock         *int       `json:"stock,omitempty" validate:"omitempty,gte=0"`
	Status        *string    `json:"status,omitempty" validate:"omitempty,oneof=available unavailable discontinued"`
	IsActive      *bool      `json:"isActive,omitempty"`
	IsFeatured    *bool      `json:"isFeatured,omitempty"`
	CategoryID    *uuid.UUID `json:"categoryId,omitempty"`
}

// ProductQuery carries the listing filters. Listings only ever return
// active products; the flag is not client-controllable.
type ProductQuery struct {
	Page       int        `json:"page" validate:"omitempty,gte=1"`
	Limit      int        `json:"limit" validate:"omitempty,gte=1,lte=100"`
	Search     string     `json:"search,omitempty"`
	CategoryID *uuid.UUID `json:"categoryId,omitempty"`
	Brand      string     `json:"brand,omitempty"`
	Color      string     `json:"color,omitempty"`
	MinPrice   *float64   `json:"minPrice,omitempty" validate:"omitempty,gte=0"`
	MaxPrice   *float64   `json:"maxPrice,omitempty" validate:"omitempty,gte=0"`
	SortBy     string     `json:"sortBy,omitempty"`
	SortOrder  string     `json:"sortOrder,omitempty" validate:"omitempty,oneof=asc desc ASC DESC"`
}

type ProductList struct {
	Data       []*Product `json:"data"`
	Total      int        `json:"total"`
	Page       int        `json:"page"`
	Limit      int        `json:"limit"`
	TotalPages int        `json:"totalPages"`
}

type StockAction string

const (
	StockIncrease StockAction = "increase"
	StockDecrease StockAction = "decrease"
	StockSet      StockAction = "set"
)

type UpdateStockRequest struct {
	Action   StockAction `json:"action" validate:"required,oneof=increase decrease set"`
	Quantity int         `json:"quantity" validate:"gte=0"`
}

type CreateCategoryRequest struct {
	Name        string `json:"name" validate:"required,min=2,max=100"`
	Description string `json:"description,omitempty"`
	Icon        string `json:"icon,omitempty"`
}

type UpdateCategoryRequest struct {
	Name        *string `json:"name,omitempty" validate:"omitempty,min=2,max=100"`
	Description *string `json:"description,omitempty"`
	Icon        *string `json:"icon,omitempty"`
	IsActive    *bool   `json:"isActive,omitempty"`
}
