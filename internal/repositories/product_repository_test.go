package repository_test

import (
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/solekart/solekart/internal/models"
	repository "github.com/solekart/solekart/internal/repositories"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductRepoTest(t *testing.T) (repository.ProductRepository, sqlmock.Sqlmock) {
	t.Helper()

	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return repository.NewProductRepo(db), mock
}

var productTestColumns = []string{
	"id", "name", "description", "price", "original_price", "discount_percentage",
	"image", "images", "brand", "model", "color", "sizes", "stock", "status", "sku",
	"rating", "review_count", "is_active", "is_featured", "category_id", "created_at", "updated_at",
	"c_id", "c_name", "c_description", "c_icon", "c_is_active",
}

func addProductRow(rows *sqlmock.Rows, productID, categoryID uuid.UUID, now time.Time) *sqlmock.Rows {
	return rows.AddRow(
		productID.String(), "Air Runner", "Daily trainer", 99.99, 129.99, 23.08,
		"air-runner.jpg", []byte(`["air-runner.jpg","air-runner-side.jpg"]`), "Nike", "Air Max 90", "White",
		[]byte(`["8","9","10"]`), 25, "available", "NIK-AIR-123456",
		4.5, 12, true, true, categoryID.String(), now, now,
		categoryID.String(), "Running", nil, nil, true,
	)
}

func TestCreateProduct(t *testing.T) {
	ctx := t.Context()

	originalPrice := 129.99
	discount := 23.08
	categoryID := uuid.New()

	newProduct := func() *models.Product {
		return &models.Product{
			Name:               "Air Runner",
			Description:        "Daily trainer",
			Price:              99.99,
			OriginalPrice:      &originalPrice,
			DiscountPercentage: &discount,
			Image:              "air-runner.jpg",
			Images:             []string{"air-runner.jpg", "air-runner-side.jpg"},
			Brand:              "Nike",
			Model:              "Air Max 90",
			Color:              "White",
			Sizes:              []string{"8", "9", "10"},
			Stock:              25,
			Status:             "available",
			SKU:                "NIK-AIR-123456",
			IsFeatured:         true,
			CategoryID:         &categoryID,
		}
	}

	expectedSQL := regexp.QuoteMeta(`INSERT INTO products (name, description, price, original_price, discount_percentage,
				image, images, brand, model, color, sizes, stock, status, sku, is_featured, category_id)`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		product := newProduct()
		newID := uuid.New()
		now := time.Now()

		mock.ExpectQuery(expectedSQL).
			WithArgs(
				product.Name, product.Description, product.Price, product.OriginalPrice, product.DiscountPercentage,
				product.Image, []byte(`["air-runner.jpg","air-runner-side.jpg"]`), product.Brand, product.Model,
				product.Color, []byte(`["8","9","10"]`), product.Stock, product.Status, product.SKU,
				product.IsFeatured, categoryID,
			).
			WillReturnRows(sqlmock.NewRows([]string{"id", "is_active", "review_count", "created_at", "updated_at"}).
				AddRow(newID.String(), true, 0, now, now))

		// Act
		err := repo.CreateProduct(ctx, product)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, newID, product.ID)
		assert.True(t, product.IsActive)
		assert.Zero(t, product.ReviewCount)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		product := newProduct()

		mock.ExpectQuery(expectedSQL).WillReturnError(errors.New("connection refused"))

		// Act
		err := repo.CreateProduct(ctx, product)

		// Assert
		assert.Error(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestGetProductByID(t *testing.T) {
	ctx := t.Context()
	productID := uuid.New()
	categoryID := uuid.New()

	expectedSQL := regexp.QuoteMeta(`FROM products p
		LEFT JOIN categories c ON p.category_id = c.id
		WHERE p.id = $1`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		now := time.Now()

		mock.ExpectQuery(expectedSQL).
			WithArgs(productID).
			WillReturnRows(addProductRow(sqlmock.NewRows(productTestColumns), productID, categoryID, now))

		// Act
		product, err := repo.GetProductByID(ctx, productID)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, productID, product.ID)
		assert.Equal(t, "Air Runner", product.Name)
		assert.Equal(t, 99.99, product.Price)
		require.NotNil(t, product.OriginalPrice)
		assert.Equal(t, 129.99, *product.OriginalPrice)
		assert.Equal(t, []string{"air-runner.jpg", "air-runner-side.jpg"}, product.Images)
		assert.Equal(t, []string{"8", "9", "10"}, product.Sizes)
		require.NotNil(t, product.Category)
		assert.Equal(t, categoryID, product.Category.ID)
		assert.Equal(t, "Running", product.Category.Name)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectQuery(expectedSQL).WithArgs(productID).WillReturnError(sql.ErrNoRows)

		// Act
		product, err := repo.GetProductByID(ctx, productID)

		// Assert
		assert.Nil(t, product)
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestListProducts(t *testing.T) {
	ctx := t.Context()

	t.Run("Success - Brand Filter With Price Sort", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		productID := uuid.New()
		categoryID := uuid.New()
		now := time.Now()

		query := &models.ProductQuery{
			Page:      1,
			Limit:     10,
			Brand:     "Nike",
			SortBy:    "price",
			SortOrder: "asc",
		}

		countSQL := regexp.QuoteMeta(`SELECT COUNT(*) FROM products p WHERE (p.is_active = $1 AND p.brand = $2)`)
		mock.ExpectQuery(countSQL).
			WithArgs(true, "Nike").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))

		listSQL := regexp.QuoteMeta(`WHERE (p.is_active = $1 AND p.brand = $2) ORDER BY p.price ASC LIMIT 10 OFFSET 0`)
		mock.ExpectQuery(listSQL).
			WithArgs(true, "Nike").
			WillReturnRows(addProductRow(sqlmock.NewRows(productTestColumns), productID, categoryID, now))

		// Act
		products, total, err := repo.ListProducts(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 1, total)
		require.Len(t, products, 1)
		assert.Equal(t, productID, products[0].ID)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Success - Second Page Offset", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		query := &models.ProductQuery{Page: 3, Limit: 20}

		countSQL := regexp.QuoteMeta(`SELECT COUNT(*) FROM products p WHERE (p.is_active = $1)`)
		mock.ExpectQuery(countSQL).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(55))

		listSQL := regexp.QuoteMeta(`ORDER BY p.created_at DESC LIMIT 20 OFFSET 40`)
		mock.ExpectQuery(listSQL).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows(productTestColumns))

		// Act
		products, total, err := repo.ListProducts(ctx, query)

		// Assert
		require.NoError(t, err)
		assert.Equal(t, 55, total)
		assert.Empty(t, products)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestFeaturedProducts(t *testing.T) {
	ctx := t.Context()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)
		productID := uuid.New()
		categoryID := uuid.New()
		now := time.Now()

		expectedSQL := regexp.QuoteMeta(`WHERE p.is_featured = TRUE AND p.is_active = TRUE
		ORDER BY p.created_at DESC
		LIMIT $1`)

		mock.ExpectQuery(expectedSQL).
			WithArgs(10).
			WillReturnRows(addProductRow(sqlmock.NewRows(productTestColumns), productID, categoryID, now))

		// Act
		products, err := repo.FeaturedProducts(ctx, 10)

		// Assert
		require.NoError(t, err)
		require.Len(t, products, 1)
		assert.True(t, products[0].IsFeatured)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDecreaseStock(t *testing.T) {
	ctx := t.Context()
	productID := uuid.New()

	updateSQL := regexp.QuoteMeta(`UPDATE products SET stock = stock - $1, updated_at = NOW() WHERE id = $2 AND stock >= $1`)
	existsSQL := regexp.QuoteMeta(`SELECT EXISTS(SELECT 1 FROM products WHERE id = $1)`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectExec(updateSQL).
			WithArgs(3, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.DecreaseStock(ctx, productID, 3)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectExec(updateSQL).
			WithArgs(500, productID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(existsSQL).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(true))

		// Act
		err := repo.DecreaseStock(ctx, productID, 500)

		// Assert
		assert.ErrorIs(t, err, repository.ErrInsufficientStock)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Product Missing", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectExec(updateSQL).
			WithArgs(3, productID).
			WillReturnResult(sqlmock.NewResult(0, 0))
		mock.ExpectQuery(existsSQL).
			WithArgs(productID).
			WillReturnRows(sqlmock.NewRows([]string{"exists"}).AddRow(false))

		// Act
		err := repo.DecreaseStock(ctx, productID, 3)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestUpdateStock(t *testing.T) {
	ctx := t.Context()
	productID := uuid.New()

	expectedSQL := regexp.QuoteMeta(`UPDATE products SET stock = $1, updated_at = NOW() WHERE id = $2`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectExec(expectedSQL).
			WithArgs(42, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.UpdateStock(ctx, productID, 42)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectExec(expectedSQL).
			WithArgs(42, productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.UpdateStock(ctx, productID, 42)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestIncreaseStock(t *testing.T) {
	ctx := t.Context()
	productID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		expectedSQL := regexp.QuoteMeta(`UPDATE products SET stock = stock + $1, updated_at = NOW() WHERE id = $2`)
		mock.ExpectExec(expectedSQL).
			WithArgs(5, productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.IncreaseStock(ctx, productID, 5)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestDeleteProduct(t *testing.T) {
	ctx := t.Context()
	productID := uuid.New()

	expectedSQL := regexp.QuoteMeta(`DELETE FROM products WHERE id = $1`)

	t.Run("Success", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectExec(expectedSQL).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 1))

		// Act
		err := repo.DeleteProduct(ctx, productID)

		// Assert
		require.NoError(t, err)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		repo, mock := setupProductRepoTest(t)

		mock.ExpectExec(expectedSQL).
			WithArgs(productID).
			WillReturnResult(sqlmock.NewResult(0, 0))

		// Act
		err := repo.DeleteProduct(ctx, productID)

		// Assert
		assert.ErrorIs(t, err, sql.ErrNoRows)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
