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

type UserHandler struct {
	userService service.UserService
	validator   *validator.Validate
}

func NewUserHandler(userService service.UserService) *UserHandler {
	return &UserHandler{userService: userService, validator: validator.New()}
}

func (h *UserHandler) Register() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.RegisterRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Register(r.Context(), &req)
		if err != nil {
			logger.Warn("User registration failed", "email", req.Email, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("User registered", "userId", resp.User.ID.String())
		response.Success(w, http.StatusCreated, "User registered successfully", resp)
	}
}

func (h *UserHandler) Login() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		var req models.LoginRequest

		if !utils.ParseAndValidate(r, w, &req, h.validator) {
			return
		}

		resp, err := h.userService.Login(r.Context(), &req)
		if err != nil {
			logger.Warn("Login failed", "email", req.Email, "error", err.Error())
			response.Error(w, err)

			return
		}

		logger.Info("User logged in", "email", req.Email)
		response.Success(w, http.StatusOK, "Login successful", resp)
	}
}

func (h *UserHandler) Profile() http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := middleware.LoggerFromContext(r.Context())

		user, ok := middleware.UserFromContext(r.Context())
		if !ok {
			logger.Warn("Unauthorized profile access attempt")
			response.Error(w, appErrors.UnauthorizedError("Authentication required"))

			return
		}

		response.Success(w, http.StatusOK, "Profile retrieved successfully", user)
	}
}
