package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"log/slog"
	"math"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/solekart/solekart/internal/cache"
	appErrors "github.com/solekart/solekart/internal/errors"
	"github.com/solekart/solekart/internal/models"
	repository "github.com/solekart/solekart/internal/repositories"
	"github.com/solekart/solekart/internal/utils"
)

const (
	defaultPage      = 1
	defaultPageSize  = 10
	defaultListLimit = 10
)

type ProductService interface {
	CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error)
	GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error)
	UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error)
	DeleteProduct(ctx context.Context, id uuid.UUID) error
	ListProducts(ctx context.Context, query *models.ProductQuery) (*models.ProductList, error)
	FeaturedProducts(ctx context.Context, limit int) ([]*models.Product, error)
	SaleProducts(ctx context.Context, limit int) ([]*models.Product, error)
	SearchProducts(ctx context.Context, term string, limit int) ([]*models.Product, error)
	ProductsByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]*models.Product, error)
	ProductsByBrand(ctx context.Context, brand string, limit int) ([]*models.Product, error)
	UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error
	IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) error
	DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) error
}

type productService struct {
	repo  repository.ProductRepository
	cache cache.Cache
}

func NewProductService(repo repository.ProductRepository, productCache cache.Cache) ProductService {
	return &productService{repo: repo, cache: productCache}
}

func (s *productService) CreateProduct(ctx context.Context, req *models.CreateProductRequest) (*models.Product, error) {

	status := req.Status
	if status == "" {
		status = "available"
	}

	sku := req.SKU
	if sku == "" {
		sku = generateSKU(req.Brand, req.Model)
	}

	product := &models.Product{
		Name:          req.Name,
		Description:   req.Description,
		Price:         req.Price,
		OriginalPrice: req.OriginalPrice,
		Image:         req.Image,
		Images:        req.Images,
		Brand:         req.Brand,
		Model:         req.Model,
		Color:         req.Color,
		Sizes:         req.Sizes,
		Stock:         req.Stock,
		Status:        status,
		SKU:           sku,
		IsFeatured:    req.IsFeatured,
		CategoryID:    req.CategoryID,
	}

	if req.OriginalPrice != nil && req.Price > 0 {
		discount := discountPercentage(*req.OriginalPrice, req.Price)
		product.DiscountPercentage = &discount
	}

	if err := s.repo.CreateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to create product").WithError(err)
	}

	return product, nil
}

func (s *productService) GetProductByID(ctx context.Context, id uuid.UUID) (*models.Product, error) {

	cacheKey := cache.Key(cache.ProductKeyPrefix, id.String())

	cached := &models.Product{}

	hit, err := s.cache.Get(ctx, cacheKey, cached)
	if err != nil {
		slog.Warn("Product cache lookup failed", slog.String("error", err.Error()))
	} else if hit {
		return cached, nil
	}

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found")
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	if err := s.cache.Set(ctx, cacheKey, product, 0); err != nil {
		slog.Warn("Product cache write failed", slog.String("error", err.Error()))
	}

	return product, nil
}

func (s *productService) UpdateProduct(ctx context.Context, id uuid.UUID, req *models.UpdateProductRequest) (*models.Product, error) {

	product, err := s.repo.GetProductByID(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, appErrors.NotFoundError("Product not found")
		}

		return nil, appErrors.DatabaseError("Failed to fetch product").WithError(err)
	}

	// Recompute the discount only when the patch touches pricing; the side
	// not supplied falls back to the stored value.
	if req.Price != nil || req.OriginalPrice != nil {
		price := product.Price
		if req.Price != nil {
			price = *req.Price
		}

		originalPrice := product.OriginalPrice
		if req.OriginalPrice != nil {
			originalPrice = req.OriginalPrice
		}

		if originalPrice != nil && price > 0 && *originalPrice > price {
			discount := discountPercentage(*originalPrice, price)
			product.DiscountPercentage = &discount
		}
	}

	if req.Name != nil {
		product.Name = *req.Name
	}

	if req.Description != nil {
		product.Description = *req.Description
	}

	if req.Price != nil {
		product.Price = *req.Price
	}

	if req.OriginalPrice != nil {
		product.OriginalPrice = req.OriginalPrice
	}

	if req.Image != nil {
		product.Image = *req.Image
	}

	if req.Images != nil {
		product.Images = req.Images
	}

	if req.Brand != nil {
		product.Brand = *req.Brand
	}

	if req.Model != nil {
		product.Model = *req.Model
	}

	if req.Color != nil {
		product.Color = *req.Color
	}

	if req.Sizes != nil {
		product.Sizes = req.Sizes
	}

	if req.Stock != nil {
		product.Stock = *req.Stock
	}

	if req.Status != nil {
		product.Status = *req.Status
	}

	if req.IsActive != nil {
		product.IsActive = *req.IsActive
	}

	if req.IsFeatured != nil {
		product.IsFeatured = *req.IsFeatured
	}

	if req.CategoryID != nil {
		product.CategoryID = req.CategoryID
	}

	if err := s.repo.UpdateProduct(ctx, product); err != nil {
		return nil, appErrors.DatabaseError("Failed to update product").WithError(err)
	}

	s.invalidate(ctx, id)

	return product, nil
}

func (s *productService) DeleteProduct(ctx context.Context, id uuid.UUID) error {

	err := s.repo.DeleteProduct(ctx, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Product not found")
		}

		return appErrors.DatabaseError("Failed to delete product").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) ListProducts(ctx context.Context, query *models.ProductQuery) (*models.ProductList, error) {

	if query.Page < 1 {
		query.Page = defaultPage
	}

	if query.Limit < 1 {
		query.Limit = defaultPageSize
	}

	products, total, err := s.repo.ListProducts(ctx, query)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products").WithError(err)
	}

	if products == nil {
		products = []*models.Product{}
	}

	return &models.ProductList{
		Data:       products,
		Total:      total,
		Page:       query.Page,
		Limit:      query.Limit,
		TotalPages: int(math.Ceil(float64(total) / float64(query.Limit))),
	}, nil
}

func (s *productService) FeaturedProducts(ctx context.Context, limit int) ([]*models.Product, error) {

	products, err := s.repo.FeaturedProducts(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch featured products").WithError(err)
	}

	return products, nil
}

func (s *productService) SaleProducts(ctx context.Context, limit int) ([]*models.Product, error) {

	products, err := s.repo.SaleProducts(ctx, normalizeLimit(limit))
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch sale products").WithError(err)
	}

	return products, nil
}

func (s *productService) SearchProducts(ctx context.Context, term string, limit int) ([]*models.Product, error) {

	query := &models.ProductQuery{
		Search: term,
		Page:   defaultPage,
		Limit:  normalizeLimit(limit),
	}

	products, _, err := s.repo.ListProducts(ctx, query)
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to search products").WithError(err)
	}

	return products, nil
}

func (s *productService) ProductsByCategory(ctx context.Context, categoryID uuid.UUID, limit int) ([]*models.Product, error) {

	products, err := s.repo.ProductsByCategory(ctx, categoryID, normalizeLimit(limit))
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products by category").WithError(err)
	}

	return products, nil
}

func (s *productService) ProductsByBrand(ctx context.Context, brand string, limit int) ([]*models.Product, error) {

	products, err := s.repo.ProductsByBrand(ctx, brand, normalizeLimit(limit))
	if err != nil {
		return nil, appErrors.DatabaseError("Failed to fetch products by brand").WithError(err)
	}

	return products, nil
}

func (s *productService) UpdateStock(ctx context.Context, id uuid.UUID, quantity int) error {

	err := s.repo.UpdateStock(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Product not found")
		}

		return appErrors.DatabaseError("Failed to update stock").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) IncreaseStock(ctx context.Context, id uuid.UUID, quantity int) error {

	err := s.repo.IncreaseStock(ctx, id, quantity)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return appErrors.NotFoundError("Product not found")
		}

		return appErrors.DatabaseError("Failed to increase stock").WithError(err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) DecreaseStock(ctx context.Context, id uuid.UUID, quantity int) error {

	err := s.repo.DecreaseStock(ctx, id, quantity)
	if err != nil {
		switch {
		case errors.Is(err, sql.ErrNoRows):
			return appErrors.NotFoundError("Product not found")
		case errors.Is(err, repository.ErrInsufficientStock):
			return appErrors.BadRequestError("Insufficient stock")
		default:
			return appErrors.DatabaseError("Failed to decrease stock").WithError(err)
		}
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *productService) invalidate(ctx context.Context, id uuid.UUID) {
	if err := s.cache.Delete(ctx, cache.Key(cache.ProductKeyPrefix, id.String())); err != nil {
		slog.Warn("Product cache invalidation failed", slog.String("productId", id.String()), slog.String("error", err.Error()))
	}
}

func discountPercentage(originalPrice, price float64) float64 {
	return utils.RoundCents((originalPrice - price) / originalPrice * 100)
}

// generateSKU builds BRA-MOD-123456 from the brand and model prefixes plus
// the trailing six digits of the current unix-millisecond timestamp.
func generateSKU(brand, model string) string {

	brandPrefix := strings.ToUpper(prefix(brand, 3))
	modelPrefix := strings.ReplaceAll(strings.ToUpper(prefix(model, 3)), " ", "")

	timestamp := strconv.FormatInt(time.Now().UnixMilli(), 10)
	if len(timestamp) > 6 {
		timestamp = timestamp[len(timestamp)-6:]
	}

	return fmt.Sprintf("%s-%s-%s", brandPrefix, modelPrefix, timestamp)
}

func prefix(s string, n int) string {
	if len(s) < n {
		return s
	}

	return s[:n]
}

func normalizeLimit(limit int) int {
	if limit < 1 {
		return defaultListLimit
	}

	return limit
}
