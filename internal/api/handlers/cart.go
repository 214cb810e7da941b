package handlers

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/solekart/solekart/internal/api/middleware"
	appErrors "github.com/solekart/solekart/internal/errors"
	"github.com/solekart/solekart/internal/models"
	service "github.com/solekart/solekart/internal/services"
	"github.com/solekart/solekart/internal/utils"
	"github.com/solekart/solekart/internal/utils/response"
)

// SessionHeader carries the opaque cart session id. It is client-supplied
// and not an authenticated identity.
const SessionHeader = "x-session-id"

type CartHandler struct {
	cartService service.CartService
	validator   *validator.Validate
}

func NewCartHandler(cartService service.CartService) *CartHandler {
	return &CartHandler{cartService: cartService, validator: validator.New()}
}

func (h *CartHandler) AddToCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := sessionID(w, r)
		if !ok {
			return
		}

		var req models.AddToCartRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.cartService.AddToCart(r.Context(), sessionID, &req)
		if err != nil {
			logger.Warn("Failed to add item to cart", "productId", req.ProductID.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("Item added to cart", "itemId", item.ID.String())
		response.Success(w, http.StatusCreated, "Item added to cart successfully", item)
	}
}

func (h *CartHandler) GetCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := sessionID(w, r)
		if !ok {
			return
		}

		cart, err := h.cartService.GetCart(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Cart retrieved successfully", cart)
	}
}

func (h *CartHandler) UpdateCartItem() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		sessionID, ok := sessionID(w, r)
		if !ok {
			return
		}

		itemID, ok := parseUUID(w, r.PathValue("itemId"), "cart item id")
		if !ok {
			return
		}

		var req models.UpdateCartItemRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		item, err := h.cartService.UpdateCartItem(r.Context(), sessionID, itemID, &req)
		if err != nil {
			logger.Warn("Failed to update cart item", "itemId", itemID.String(), "error", err.Error())
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Cart item updated successfully", item)
	}
}

func (h *CartHandler) RemoveFromCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := sessionID(w, r)
		if !ok {
			return
		}

		itemID, ok := parseUUID(w, r.PathValue("itemId"), "cart item id")
		if !ok {
			return
		}

		if err := h.cartService.RemoveFromCart(r.Context(), sessionID, itemID); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Item removed from cart successfully", nil)
	}
}

func (h *CartHandler) ClearCart() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := sessionID(w, r)
		if !ok {
			return
		}

		if err := h.cartService.ClearCart(r.Context(), sessionID); err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Cart cleared successfully", nil)
	}
}

func (h *CartHandler) CartItemCount() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := sessionID(w, r)
		if !ok {
			return
		}

		count, err := h.cartService.CartItemCount(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Cart count retrieved successfully", map[string]int{"count": count})
	}
}

func (h *CartHandler) CartTotal() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := sessionID(w, r)
		if !ok {
			return
		}

		total, err := h.cartService.CartTotal(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Cart total retrieved successfully", map[string]float64{"total": total})
	}
}

func (h *CartHandler) EstimateShipping() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		sessionID, ok := sessionID(w, r)
		if !ok {
			return
		}

		shipping, err := h.cartService.EstimateShipping(r.Context(), sessionID)
		if err != nil {
			response.Error(w, err)

			return
		}

		response.Success(w, http.StatusOK, "Shipping estimate retrieved successfully", map[string]float64{"shipping": shipping})
	}
}

// CreateSession issues a fresh session id; no auth, no persistence.
func (h *CartHandler) CreateSession() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		id := h.cartService.GenerateSessionID()

		response.Success(w, http.StatusCreated, "Session created successfully", map[string]string{"sessionId": id})
	}
}

func sessionID(w http.ResponseWriter, r *http.Request) (string, bool) {

	id := r.Header.Get(SessionHeader)
	if id == "" {
		response.Error(w, appErrors.BadRequestError("Session ID is required"))

		return "", false
	}

	return id, true
}
