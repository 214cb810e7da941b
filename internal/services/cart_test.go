package service_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/solekart/solekart/internal/config"
	appErrors "github.com/solekart/solekart/internal/errors"
	"github.com/solekart/solekart/internal/models"
	repository "github.com/solekart/solekart/internal/repositories"
	"github.com/solekart/solekart/internal/repositories/mocks"
	service "github.com/solekart/solekart/internal/services"
	"github.com/stretchr/testify/assert"
)

func cartConfig() *config.Cart {
	return &config.Cart{
		FlatShippingFee:       40.00,
		FreeShippingThreshold: 500.00,
		ImportChargeRate:      0.10,
	}
}

func TestAddToCart(t *testing.T) {
	mockRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockRepo, cartConfig())
	ctx := context.Background()
	sessionID := uuid.NewString()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		req := &models.AddToCartRequest{ProductID: uuid.New(), Quantity: 2}
		view := &models.CartItemView{
			ID:        uuid.New(),
			ProductID: req.ProductID,
			Quantity:  2,
			Price:     99.99,
		}
		mockRepo.On("AddItem", ctx, sessionID, req).Return(view, nil).Once()

		// Act
		item, err := cartService.AddToCart(ctx, sessionID, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, view, item)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Zero Quantity", func(t *testing.T) {
		// Arrange
		req := &models.AddToCartRequest{ProductID: uuid.New(), Quantity: 0}

		// Act
		item, err := cartService.AddToCart(ctx, sessionID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockRepo.AssertNotCalled(t, "AddItem")
	})

	t.Run("Failure - Product Unavailable", func(t *testing.T) {
		// Arrange
		req := &models.AddToCartRequest{ProductID: uuid.New(), Quantity: 1}
		mockRepo.On("AddItem", ctx, sessionID, req).Return(nil, repository.ErrProductUnavailable).Once()

		// Act
		item, err := cartService.AddToCart(ctx, sessionID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.Equal(t, "Product not found or inactive", appErr.Message)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		// Arrange
		req := &models.AddToCartRequest{ProductID: uuid.New(), Quantity: 50}
		mockRepo.On("AddItem", ctx, sessionID, req).Return(nil, repository.ErrInsufficientStock).Once()

		// Act
		item, err := cartService.AddToCart(ctx, sessionID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		assert.Equal(t, "Insufficient stock for requested quantity", appErr.Message)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		req := &models.AddToCartRequest{ProductID: uuid.New(), Quantity: 1}
		dbError := errors.New("database connection failed")
		mockRepo.On("AddItem", ctx, sessionID, req).Return(nil, dbError).Once()

		// Act
		item, err := cartService.AddToCart(ctx, sessionID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		assert.ErrorIs(t, err, dbError)
		mockRepo.AssertExpectations(t)
	})
}

func TestGetCart(t *testing.T) {
	mockRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockRepo, cartConfig())
	ctx := context.Background()
	sessionID := uuid.NewString()

	t.Run("Success - Totals Below Free Shipping", func(t *testing.T) {
		// Arrange
		items := []*models.CartItemView{
			{ID: uuid.New(), Quantity: 3, Price: 99.99},
			{ID: uuid.New(), Quantity: 2, Price: 149.50},
		}
		mockRepo.On("ListBySession", ctx, sessionID).Return(items, nil).Once()

		// Act
		summary, err := cartService.GetCart(ctx, sessionID)

		// Assert
		assert.NoError(t, err)
		assert.NotNil(t, summary)
		assert.Equal(t, 5, summary.TotalItems)
		assert.InDelta(t, 598.97, summary.Subtotal, 0.001)
		assert.InDelta(t, 0.0, summary.Shipping, 0.001)
		assert.InDelta(t, 59.90, summary.ImportCharges, 0.001)
		assert.InDelta(t, 658.87, summary.Total, 0.001)
		assert.InDelta(t, 299.97, items[0].TotalPrice, 0.001)
		assert.InDelta(t, 299.00, items[1].TotalPrice, 0.001)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Flat Shipping Below Threshold", func(t *testing.T) {
		// Arrange
		items := []*models.CartItemView{
			{ID: uuid.New(), Quantity: 1, Price: 100.00},
		}
		mockRepo.On("ListBySession", ctx, sessionID).Return(items, nil).Once()

		// Act
		summary, err := cartService.GetCart(ctx, sessionID)

		// Assert
		assert.NoError(t, err)
		assert.InDelta(t, 100.00, summary.Subtotal, 0.001)
		assert.InDelta(t, 40.00, summary.Shipping, 0.001)
		assert.InDelta(t, 10.00, summary.ImportCharges, 0.001)
		assert.InDelta(t, 150.00, summary.Total, 0.001)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Success - Empty Cart", func(t *testing.T) {
		// Arrange
		mockRepo.On("ListBySession", ctx, sessionID).Return([]*models.CartItemView{}, nil).Once()

		// Act
		summary, err := cartService.GetCart(ctx, sessionID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 0, summary.TotalItems)
		assert.Zero(t, summary.Subtotal)
		assert.InDelta(t, 40.00, summary.Shipping, 0.001)
		assert.Zero(t, summary.ImportCharges)
		assert.InDelta(t, 40.00, summary.Total, 0.001)
		assert.NotNil(t, summary.Items)
		assert.Empty(t, summary.Items)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Database Error", func(t *testing.T) {
		// Arrange
		dbError := errors.New("database connection failed")
		mockRepo.On("ListBySession", ctx, sessionID).Return(nil, dbError).Once()

		// Act
		summary, err := cartService.GetCart(ctx, sessionID)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, summary)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeDatabaseError, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestUpdateCartItem(t *testing.T) {
	mockRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockRepo, cartConfig())
	ctx := context.Background()
	sessionID := uuid.NewString()
	itemID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		req := &models.UpdateCartItemRequest{Quantity: 4}
		view := &models.CartItemView{ID: itemID, Quantity: 4, Price: 59.99}
		mockRepo.On("UpdateItem", ctx, sessionID, itemID, req).Return(view, nil).Once()

		// Act
		item, err := cartService.UpdateCartItem(ctx, sessionID, itemID, req)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, view, item)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Zero Quantity", func(t *testing.T) {
		// Arrange
		req := &models.UpdateCartItemRequest{Quantity: 0}

		// Act
		item, err := cartService.UpdateCartItem(ctx, sessionID, itemID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockRepo.AssertNotCalled(t, "UpdateItem")
	})

	t.Run("Failure - Item Not Found", func(t *testing.T) {
		// Arrange
		req := &models.UpdateCartItemRequest{Quantity: 2}
		mockRepo.On("UpdateItem", ctx, sessionID, itemID, req).Return(nil, sql.ErrNoRows).Once()

		// Act
		item, err := cartService.UpdateCartItem(ctx, sessionID, itemID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		// Arrange
		req := &models.UpdateCartItemRequest{Quantity: 99}
		mockRepo.On("UpdateItem", ctx, sessionID, itemID, req).Return(nil, repository.ErrInsufficientStock).Once()

		// Act
		item, err := cartService.UpdateCartItem(ctx, sessionID, itemID, req)

		// Assert
		assert.Error(t, err)
		assert.Nil(t, item)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeBadRequest, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestRemoveFromCart(t *testing.T) {
	mockRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockRepo, cartConfig())
	ctx := context.Background()
	sessionID := uuid.NewString()
	itemID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo.On("RemoveItem", ctx, sessionID, itemID).Return(nil).Once()

		// Act
		err := cartService.RemoveFromCart(ctx, sessionID, itemID)

		// Assert
		assert.NoError(t, err)
		mockRepo.AssertExpectations(t)
	})

	t.Run("Failure - Item Not Found", func(t *testing.T) {
		// Arrange
		mockRepo.On("RemoveItem", ctx, sessionID, itemID).Return(sql.ErrNoRows).Once()

		// Act
		err := cartService.RemoveFromCart(ctx, sessionID, itemID)

		// Assert
		assert.Error(t, err)
		appErr, ok := appErrors.IsAppError(err)
		assert.True(t, ok)
		assert.Equal(t, appErrors.ErrCodeNotFound, appErr.Code)
		mockRepo.AssertExpectations(t)
	})
}

func TestClearCart(t *testing.T) {
	mockRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockRepo, cartConfig())
	ctx := context.Background()
	sessionID := uuid.NewString()

	t.Run("Success - Idempotent", func(t *testing.T) {
		// Arrange
		mockRepo.On("ClearCart", ctx, sessionID).Return(nil).Twice()

		// Act
		err1 := cartService.ClearCart(ctx, sessionID)
		err2 := cartService.ClearCart(ctx, sessionID)

		// Assert
		assert.NoError(t, err1)
		assert.NoError(t, err2)
		mockRepo.AssertExpectations(t)
	})
}

func TestCartItemCount(t *testing.T) {
	mockRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockRepo, cartConfig())
	ctx := context.Background()
	sessionID := uuid.NewString()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockRepo.On("CountItems", ctx, sessionID).Return(7, nil).Once()

		// Act
		count, err := cartService.CartItemCount(ctx, sessionID)

		// Assert
		assert.NoError(t, err)
		assert.Equal(t, 7, count)
		mockRepo.AssertExpectations(t)
	})
}

func TestCartTotal(t *testing.T) {
	mockRepo := new(mocks.CartRepository)
	cartService := service.NewCartService(mockRepo, cartConfig())
	ctx := context.Background()
	sessionID := uuid.NewString()

	t.Run("Success - Matches Summary Total", func(t *testing.T) {
		// Arrange
		items := []*models.CartItemView{
			{ID: uuid.New(), Quantity: 1, Price: 100.00},
		}
		mockRepo.On("ListBySession", ctx, sessionID).Return(items, nil).Twice()

		// Act
		total, err := cartService.CartTotal(ctx, sessionID)
		summary, summaryErr := cartService.GetCart(ctx, sessionID)

		// Assert
		assert.NoError(t, err)
		assert.NoError(t, summaryErr)
		assert.InDelta(t, summary.Total, total, 0.001)
		mockRepo.AssertExpectations(t)
	})
}

func TestGenerateSessionID(t *testing.T) {
	cartService := service.NewCartService(new(mocks.CartRepository), cartConfig())

	t.Run("Success - Unique Parseable IDs", func(t *testing.T) {
		// Act
		first := cartService.GenerateSessionID()
		second := cartService.GenerateSessionID()

		// Assert
		assert.NotEqual(t, first, second)

		_, err := uuid.Parse(first)
		assert.NoError(t, err)
	})
}
