package middleware

import (
	"context"
	"log/slog"
	"net/http"
	"slices"
	"strings"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/solekart/solekart/internal/errors"
	"github.com/solekart/solekart/internal/models"
	service "github.com/solekart/solekart/internal/services"
	"github.com/solekart/solekart/internal/utils/response"
)

type userContextKey string

// UserContextKey holds the authenticated identity in the request context.
const UserContextKey = userContextKey("user")

type AuthMiddleware struct {
	jwtKey      []byte
	userService service.UserService
}

func NewAuthMiddleware(jwtKey []byte, userService service.UserService) *AuthMiddleware {
	return &AuthMiddleware{jwtKey: jwtKey, userService: userService}
}

// Authenticate parses the bearer token, then resolves the referenced user
// against the store; a token for a deleted or deactivated user is rejected
// even when the signature is still valid.
func (m *AuthMiddleware) Authenticate(next http.Handler) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		logger := LoggerFromContext(r.Context())

		authHeader := r.Header.Get("Authorization")

		if authHeader == "" {
			logger.Warn("Missing authorization header")
			response.Error(w, errors.UnauthorizedError("Authorization header is required"))

			return
		}

		// Token is of format: "Bearer <token>"
		tokenParts := strings.Split(authHeader, " ")

		if len(tokenParts) != 2 || tokenParts[0] != "Bearer" {
			logger.Warn("Invalid authorization header format")
			response.Error(w, errors.UnauthorizedError("Invalid authorization format"))

			return
		}

		claims := &models.Claims{}

		token, err := jwt.ParseWithClaims(tokenParts[1], claims, func(t *jwt.Token) (any, error) {
			if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
				logger.Error("Unexpected signing method used in JWT", slog.Any("alg", t.Header["alg"]))

				return nil, errors.BadRequestError("unexpected signing method")
			}

			return m.jwtKey, nil
		})

		if err != nil || !token.Valid {
			logger.Warn("JWT validation failed")
			response.Error(w, errors.UnauthorizedError("Invalid or expired token"))

			return
		}

		userID, err := uuid.Parse(claims.Subject)
		if err != nil {
			logger.Warn("Invalid subject in token", slog.String("subject", claims.Subject))
			response.Error(w, errors.UnauthorizedError("Invalid token"))

			return
		}

		user, err := m.userService.GetUserByID(r.Context(), userID)
		if err != nil || !user.IsActive {
			logger.Warn("Token references missing or inactive user", slog.String("userId", userID.String()))
			response.Error(w, errors.UnauthorizedError("Invalid token"))

			return
		}

		ctx := context.WithValue(r.Context(), UserContextKey, user.Public())

		requestScopedLogger := logger.With(slog.String("userId", userID.String()))
		ctx = context.WithValue(ctx, LoggerKey, requestScopedLogger)

		next.ServeHTTP(w, r.WithContext(ctx))
	}
}

// RequireRoles permits the request when no roles are required, denies when
// no identity is present, and otherwise tests role membership.
func RequireRoles(next http.Handler, roles ...models.UserRole) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {

		if len(roles) == 0 {
			next.ServeHTTP(w, r)

			return
		}

		user, ok := UserFromContext(r.Context())
		if !ok {
			response.Error(w, errors.UnauthorizedError("Authentication required"))

			return
		}

		if !slices.Contains(roles, user.Role) {
			LoggerFromContext(r.Context()).Warn("Role check failed",
				slog.String("role", string(user.Role)))
			response.Error(w, errors.ForbiddenError("Insufficient permissions"))

			return
		}

		next.ServeHTTP(w, r)
	}
}

func UserFromContext(ctx context.Context) (*models.PublicUser, bool) {
	user, ok := ctx.Value(UserContextKey).(*models.PublicUser)

	return user, ok
}
