package handlers

import (
	"net/http"
	"strconv"

	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/solekart/solekart/internal/api/middleware"
	appErrors "github.com/solekart/solekart/internal/errors"
	"github.com/solekart/solekart/internal/models"
	service "github.com/solekart/solekart/internal/services"
	"github.com/solekart/solekart/internal/utils"
	"github.com/solekart/solekart/internal/utils/response"
)

type ProductHandler struct {
	productService service.ProductService
	validator      *validator.Validate
}

func NewProductHandler(productService service.ProductService) *ProductHandler {
	return &ProductHandler{productService: productService, validator: validator.New()}
}

func (h *ProductHandler) CreateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.CreateProductRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.CreateProduct(r.Context(), &req)
		if err != nil {
			logger.Error("Product creation failed", "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Product created", "productId", product.ID.String())
		response.Success(w, http.StatusCreated, "Product created successfully", product)
	}
}

func (h *ProductHandler) GetProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseUUID(w, r.PathValue("id"), "product id")
		if !ok {
			return
		}

		product, err := h.productService.GetProductByID(r.Context(), id)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Product retrieved successfully", product)
	}
}

func (h *ProductHandler) UpdateProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseUUID(w, r.PathValue("id"), "product id")
		if !ok {
			return
		}

		var req models.UpdateProductRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		product, err := h.productService.UpdateProduct(r.Context(), id, &req)
		if err != nil {
			logger.Error("Product update failed", "productId", id.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Product updated", "productId", id.String())
		response.Success(w, http.StatusOK, "Product updated successfully", product)
	}
}

func (h *ProductHandler) DeleteProduct() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseUUID(w, r.PathValue("id"), "product id")
		if !ok {
			return
		}

		if err := h.productService.DeleteProduct(r.Context(), id); err != nil {
			response.Error(w, err)

			return
		}

		logger.Info("Product deleted", "productId", id.String())
		response.Success(w, http.StatusOK, "Product deleted successfully", nil)
	}
}

// ListProducts handles eg. GET /products?page=1&limit=10&brand=Nike&sortBy=price&sortOrder=asc
func (h *ProductHandler) ListProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		query, err := parseProductQuery(r)
		if err != nil {
			response.Error(w, err)

			return
		}

		if err := h.validator.Struct(query); err != nil {
			if validationErrs, ok := err.(validator.ValidationErrors); ok {
				response.ValidationError(w, validationErrs)

				return
			}

			response.Error(w, appErrors.BadRequestError("Invalid query parameters"))

			return
		}

		list, err := h.productService.ListProducts(r.Context(), query)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Paginated(w, http.StatusOK, "Products retrieved successfully", list.Data, &response.Meta{
			Total:      list.Total,
			Page:       list.Page,
			Limit:      list.Limit,
			TotalPages: list.TotalPages,
		})
	}
}

func (h *ProductHandler) FeaturedProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.FeaturedProducts(r.Context(), queryLimit(r))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Featured products retrieved successfully", products)
	}
}

func (h *ProductHandler) SaleProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		products, err := h.productService.SaleProducts(r.Context(), queryLimit(r))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Sale products retrieved successfully", products)
	}
}

func (h *ProductHandler) SearchProducts() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		term := r.URL.Query().Get("q")
		if term == "" {
			response.Error(w, appErrors.BadRequestError("Search term is required"))

			return
		}

		products, err := h.productService.SearchProducts(r.Context(), term, queryLimit(r))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Search results retrieved successfully", products)
	}
}

func (h *ProductHandler) ProductsByCategory() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id, ok := parseUUID(w, r.PathValue("id"), "category id")
		if !ok {
			return
		}

		products, err := h.productService.ProductsByCategory(r.Context(), id, queryLimit(r))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Products retrieved successfully", products)
	}
}

func (h *ProductHandler) ProductsByBrand() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		brand := r.PathValue("brand")
		if brand == "" {
			response.Error(w, appErrors.BadRequestError("Brand is required"))

			return
		}

		products, err := h.productService.ProductsByBrand(r.Context(), brand, queryLimit(r))
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Products retrieved successfully", products)
	}
}

// UpdateStock handles the admin stock endpoint: increase, decrease, or set.
func (h *ProductHandler) UpdateStock() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		id, ok := parseUUID(w, r.PathValue("id"), "product id")
		if !ok {
			return
		}

		var req models.UpdateStockRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		var err error

		switch req.Action {
		case models.StockIncrease:
			err = h.productService.IncreaseStock(r.Context(), id, req.Quantity)
		case models.StockDecrease:
			err = h.productService.DecreaseStock(r.Context(), id, req.Quantity)
		case models.StockSet:
			err = h.productService.UpdateStock(r.Context(), id, req.Quantity)
		}

		if err != nil {
			logger.Warn("Stock update failed", "productId", id.String(), "action", string(req.Action), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Stock updated", "productId", id.String(), "action", string(req.Action))
		response.Success(w, http.StatusOK, "Stock updated successfully", nil)
	}
}

func parseProductQuery(r *http.Request) (*models.ProductQuery, error) {

	values := r.URL.Query()

	query := &models.ProductQuery{
		Search:    values.Get("search"),
		Brand:     values.Get("brand"),
		Color:     values.Get("color"),
		SortBy:    values.Get("sortBy"),
		SortOrder: values.Get("sortOrder"),
	}

	query.Page, _ = strconv.Atoi(values.Get("page"))
	query.Limit, _ = strconv.Atoi(values.Get("limit"))

	if raw := values.Get("categoryId"); raw != "" {
		id, err := uuid.Parse(raw)
		if err != nil {
			return nil, appErrors.BadRequestError("Invalid category id")
		}

		query.CategoryID = &id
	}

	if raw := values.Get("minPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, appErrors.BadRequestError("Invalid minPrice")
		}

		query.MinPrice = &price
	}

	if raw := values.Get("maxPrice"); raw != "" {
		price, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return nil, appErrors.BadRequestError("Invalid maxPrice")
		}

		query.MaxPrice = &price
	}

	return query, nil
}

func queryLimit(r *http.Request) int {
	limit, _ := strconv.Atoi(r.URL.Query().Get("limit"))

	return limit
}

func parseUUID(w http.ResponseWriter, raw, what string) (uuid.UUID, bool) {

	id, err := uuid.Parse(raw)
	if err != nil {
		response.Error(w, appErrors.BadRequestError("Invalid "+what))

		return uuid.Nil, false
	}

	return id, true
}
