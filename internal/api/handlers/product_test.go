package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/solekart/solekart/internal/api/handlers"
	appErrors "github.com/solekart/solekart/internal/errors"
	"github.com/solekart/solekart/internal/models"
	"github.com/solekart/solekart/internal/services/mocks"
	"github.com/solekart/solekart/internal/testutils"
	"github.com/solekart/solekart/internal/utils/response"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func setupProductHandlerTest() (*mocks.ProductService, *handlers.ProductHandler) {
	mockProductService := new(mocks.ProductService)
	productHandler := handlers.NewProductHandler(mockProductService)

	return mockProductService, productHandler
}

func TestCreateProductHandler(t *testing.T) {
	adminID := uuid.New()

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		createReq := models.CreateProductRequest{
			Name:  "Air Runner",
			Price: 99.99,
			Brand: "Nike",
			Model: "Air Max 90",
			Stock: 25,
		}
		body, _ := json.Marshal(createReq)

		created := &models.Product{ID: uuid.New(), Name: createReq.Name, Price: createReq.Price}
		mockProductService.On("CreateProduct", mock.Anything, mock.AnythingOfType("*models.CreateProductRequest")).
			Return(created, nil).Once()

		req := testutils.CreateTestRequestWithContext("POST", "/products", bytes.NewBuffer(body), adminID, models.RoleAdmin, nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.CreateProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusCreated, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.True(t, resp.Success)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Missing Required Fields", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		body, _ := json.Marshal(map[string]any{"name": "X"})

		req := testutils.CreateTestRequestWithContext("POST", "/products", bytes.NewBuffer(body), adminID, models.RoleAdmin, nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.CreateProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockProductService.AssertNotCalled(t, "CreateProduct")
	})
}

func TestGetProductHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		productID := uuid.New()
		stored := &models.Product{ID: productID, Name: "Air Runner"}

		mockProductService.On("GetProductByID", mock.Anything, productID).Return(stored, nil).Once()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products/"+productID.String(), nil,
			map[string]string{"id": productID.String()})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Not Found", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		productID := uuid.New()

		mockProductService.On("GetProductByID", mock.Anything, productID).
			Return(nil, appErrors.NotFoundError("Product not found")).Once()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products/"+productID.String(), nil,
			map[string]string{"id": productID.String()})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusNotFound, recorder.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid ID", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products/abc", nil,
			map[string]string{"id": "abc"})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.GetProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockProductService.AssertNotCalled(t, "GetProductByID")
	})
}

func TestListProductsHandler(t *testing.T) {
	t.Run("Success - Filters Forwarded", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		list := &models.ProductList{
			Data:       []*models.Product{{ID: uuid.New()}},
			Total:      1,
			Page:       1,
			Limit:      10,
			TotalPages: 1,
		}

		mockProductService.On("ListProducts", mock.Anything, mock.MatchedBy(func(q *models.ProductQuery) bool {
			return q.Brand == "Nike" && q.SortBy == "price" && q.SortOrder == "asc" &&
				q.MinPrice != nil && *q.MinPrice == 50
		})).Return(list, nil).Once()

		req := testutils.CreateTestRequestWithoutContext("GET",
			"/products?brand=Nike&sortBy=price&sortOrder=asc&minPrice=50", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)

		var resp response.APIResponse
		assert.NoError(t, json.Unmarshal(recorder.Body.Bytes(), &resp))
		assert.NotNil(t, resp.Meta)
		assert.Equal(t, 1, resp.Meta.Total)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Invalid Category Filter", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products?categoryId=abc", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockProductService.AssertNotCalled(t, "ListProducts")
	})

	t.Run("Failure - Limit Above Cap", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products?limit=500", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.ListProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockProductService.AssertNotCalled(t, "ListProducts")
	})
}

func TestSearchProductsHandler(t *testing.T) {
	t.Run("Failure - Missing Term", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products/search", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.SearchProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockProductService.AssertNotCalled(t, "SearchProducts")
	})

	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		mockProductService.On("SearchProducts", mock.Anything, "air max", 0).
			Return([]*models.Product{}, nil).Once()

		req := testutils.CreateTestRequestWithoutContext("GET", "/products/search?q=air+max", nil, nil)
		recorder := httptest.NewRecorder()

		// Act
		productHandler.SearchProducts()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockProductService.AssertExpectations(t)
	})
}

func TestUpdateStockHandler(t *testing.T) {
	adminID := uuid.New()

	t.Run("Success - Decrease", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		productID := uuid.New()
		body, _ := json.Marshal(models.UpdateStockRequest{Action: models.StockDecrease, Quantity: 3})

		mockProductService.On("DecreaseStock", mock.Anything, productID, 3).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext("PATCH", "/products/"+productID.String()+"/stock",
			bytes.NewBuffer(body), adminID, models.RoleAdmin, map[string]string{"id": productID.String()})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.UpdateStock()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Success - Set", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		productID := uuid.New()
		body, _ := json.Marshal(models.UpdateStockRequest{Action: models.StockSet, Quantity: 42})

		mockProductService.On("UpdateStock", mock.Anything, productID, 42).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext("PATCH", "/products/"+productID.String()+"/stock",
			bytes.NewBuffer(body), adminID, models.RoleAdmin, map[string]string{"id": productID.String()})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.UpdateStock()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockProductService.AssertExpectations(t)
	})

	t.Run("Failure - Unknown Action", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		productID := uuid.New()
		body, _ := json.Marshal(map[string]any{"action": "teleport", "quantity": 1})

		req := testutils.CreateTestRequestWithContext("PATCH", "/products/"+productID.String()+"/stock",
			bytes.NewBuffer(body), adminID, models.RoleAdmin, map[string]string{"id": productID.String()})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.UpdateStock()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockProductService.AssertNotCalled(t, "DecreaseStock")
	})

	t.Run("Failure - Insufficient Stock", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		productID := uuid.New()
		body, _ := json.Marshal(models.UpdateStockRequest{Action: models.StockDecrease, Quantity: 500})

		mockProductService.On("DecreaseStock", mock.Anything, productID, 500).
			Return(appErrors.BadRequestError("Insufficient stock")).Once()

		req := testutils.CreateTestRequestWithContext("PATCH", "/products/"+productID.String()+"/stock",
			bytes.NewBuffer(body), adminID, models.RoleAdmin, map[string]string{"id": productID.String()})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.UpdateStock()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusBadRequest, recorder.Code)
		mockProductService.AssertExpectations(t)
	})
}

func TestDeleteProductHandler(t *testing.T) {
	t.Run("Success", func(t *testing.T) {
		// Arrange
		mockProductService, productHandler := setupProductHandlerTest()
		productID := uuid.New()

		mockProductService.On("DeleteProduct", mock.Anything, productID).Return(nil).Once()

		req := testutils.CreateTestRequestWithContext("DELETE", "/products/"+productID.String(), nil,
			uuid.New(), models.RoleAdmin, map[string]string{"id": productID.String()})
		recorder := httptest.NewRecorder()

		// Act
		productHandler.DeleteProduct()(recorder, req)

		// Assert
		assert.Equal(t, http.StatusOK, recorder.Code)
		mockProductService.AssertExpectations(t)
	})
}
