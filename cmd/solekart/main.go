package main

import (
	"context"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/solekart/solekart/internal/api/handlers"
	"github.com/solekart/solekart/internal/api/middleware"
	"github.com/solekart/solekart/internal/cache"
	"github.com/solekart/solekart/internal/config"
	"github.com/solekart/solekart/internal/health"
	"github.com/solekart/solekart/internal/metrics"
	"github.com/solekart/solekart/internal/models"
	repository "github.com/solekart/solekart/internal/repositories"
	redisRepo "github.com/solekart/solekart/internal/repositories/redis"
	service "github.com/solekart/solekart/internal/services"
)

func main() {

	// Logger setup
	logger := slog.New(slog.NewJSONHandler(os.Stdout, nil))
	slog.SetDefault(logger)

	// Load config
	cfg := config.MustLoad()

	// Database setup (runs pending migrations)
	repos, err := repository.New(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the database", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := repos.Close(); err != nil {
			slog.Error("⚠️ Error closing database connection", slog.String("error", err.Error()))
		} else {
			slog.Info("✅ Database connection closed")
		}
	}()

	// Redis setup
	redisClient, err := redisRepo.NewClient(cfg)
	if err != nil {
		slog.Error("❌ Error accessing the redis instance", "error", err.Error())
		os.Exit(1)
	}

	defer func() {
		if err := redisClient.Close(); err != nil {
			slog.Error("⚠️ Error closing redis connection", slog.String("error", err.Error()))
		}
	}()

	jwtKey := []byte(cfg.Security.JWTKey)
	rateLimiter := redisRepo.NewRateLimiter(redisClient, &cfg.RateLimit)
	productCache := cache.NewRedisCache(redisClient, &cfg.Cache)

	userService := service.NewUserService(repos.User, rateLimiter, &cfg.Security)
	userHandler := handlers.NewUserHandler(userService)
	productService := service.NewProductService(repos.Product, productCache)
	productHandler := handlers.NewProductHandler(productService)
	cartService := service.NewCartService(repos.Cart, &cfg.Cart)
	cartHandler := handlers.NewCartHandler(cartService)
	categoryService := service.NewCategoryService(repos.Category)
	categoryHandler := handlers.NewCategoryHandler(categoryService)
	authMiddleware := middleware.NewAuthMiddleware(jwtKey, userService)

	healthHandler, err := health.NewHealthHandler(cfg)
	if err != nil {
		slog.Error("❌ Error setting up health checks", "error", err.Error())
		os.Exit(1)
	}

	slog.Info("storage initialized", slog.String("env", cfg.Env), slog.String("version", "1.0.0"))

	admin := func(next http.Handler) http.HandlerFunc {
		return authMiddleware.Authenticate(middleware.RequireRoles(next, models.RoleAdmin))
	}

	// Setup router
	routerMux := http.NewServeMux()

	// Auth
	routerMux.HandleFunc("POST /auth/register", userHandler.Register())
	routerMux.HandleFunc("POST /auth/login", userHandler.Login())
	routerMux.HandleFunc("GET /auth/profile", authMiddleware.Authenticate(userHandler.Profile()))

	// Products: reads are public, mutations are admin-only.
	routerMux.HandleFunc("GET /products", productHandler.ListProducts())
	routerMux.HandleFunc("GET /products/featured", productHandler.FeaturedProducts())
	routerMux.HandleFunc("GET /products/sale", productHandler.SaleProducts())
	routerMux.HandleFunc("GET /products/search", productHandler.SearchProducts())
	routerMux.HandleFunc("GET /products/category/{id}", productHandler.ProductsByCategory())
	routerMux.HandleFunc("GET /products/brand/{brand}", productHandler.ProductsByBrand())
	routerMux.HandleFunc("GET /products/{id}", productHandler.GetProduct())
	routerMux.HandleFunc("POST /products", admin(productHandler.CreateProduct()))
	routerMux.HandleFunc("PATCH /products/{id}", admin(productHandler.UpdateProduct()))
	routerMux.HandleFunc("DELETE /products/{id}", admin(productHandler.DeleteProduct()))
	routerMux.HandleFunc("PATCH /products/{id}/stock", admin(productHandler.UpdateStock()))

	// Cart (session-keyed, no auth)
	routerMux.HandleFunc("POST /cart/session", cartHandler.CreateSession())
	routerMux.HandleFunc("POST /cart", cartHandler.AddToCart())
	routerMux.HandleFunc("GET /cart", cartHandler.GetCart())
	routerMux.HandleFunc("GET /cart/count", cartHandler.CartItemCount())
	routerMux.HandleFunc("GET /cart/total", cartHandler.CartTotal())
	routerMux.HandleFunc("GET /cart/shipping", cartHandler.EstimateShipping())
	routerMux.HandleFunc("PATCH /cart/{itemId}", cartHandler.UpdateCartItem())
	routerMux.HandleFunc("DELETE /cart/{itemId}", cartHandler.RemoveFromCart())
	routerMux.HandleFunc("DELETE /cart", cartHandler.ClearCart())

	// Categories
	routerMux.HandleFunc("GET /categories", categoryHandler.ListCategories())
	routerMux.HandleFunc("POST /categories", admin(categoryHandler.CreateCategory()))
	routerMux.HandleFunc("PATCH /categories/{id}", admin(categoryHandler.UpdateCategory()))
	routerMux.HandleFunc("DELETE /categories/{id}", admin(categoryHandler.DeleteCategory()))

	// Ops
	routerMux.Handle("GET /healthz", healthHandler.Handler())
	routerMux.Handle("GET /metrics", metrics.Handler())

	// Middleware chaining
	var handler http.Handler = routerMux
	handler = metrics.Middleware(handler)
	handler = middleware.Logging(handler)

	// Setup http server
	server := http.Server{
		Addr:    cfg.Addr,
		Handler: handler,
	}

	slog.Info("🚀 Server is starting...", slog.String("address", cfg.Addr))

	done := make(chan os.Signal, 1)
	signal.Notify(done, os.Interrupt, syscall.SIGINT, syscall.SIGTERM)

	go func() {
		if err := server.ListenAndServe(); err != http.ErrServerClosed {
			slog.Error("❌ Failed to start server", slog.Any("error", err.Error()))
		}
	}()

	<-done

	slog.Warn("🛑 Shutdown signal received. Preparing to stop the server...")

	// Graceful shutdown
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("⚠️ Server shutdown encountered an issue", slog.String("error", err.Error()))
	} else {
		slog.Info("✅ Server shut down gracefully. All connections closed.")
	}

}
