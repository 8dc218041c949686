package httpserver

import (
	"context"
	"net/http"

	"catalog-api/internal/domain"
	productrepo "catalog-api/internal/repository/product"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	limiter "github.com/ulule/limiter/v3"
	mgin "github.com/ulule/limiter/v3/drivers/middleware/gin"
	"github.com/ulule/limiter/v3/drivers/store/memory"
)

// ProductService is the product surface the handlers delegate to.
type ProductService interface {
	List(ctx context.Context, params productrepo.ListParams) (domain.Page[domain.Product], error)
	Get(ctx context.Context, id string) (*domain.Product, error)
	Create(ctx context.Context, params productrepo.CreateParams) (*domain.Product, error)
	Update(ctx context.Context, id string, params productrepo.UpdateParams) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}

// CategoryService is the category surface the handlers delegate to.
type CategoryService interface {
	List(ctx context.Context) ([]domain.Category, error)
	Create(ctx context.Context, name string) (*domain.Category, error)
}

// Deps bundles the services the router wires handlers to.
type Deps struct {
	ProductSvc  ProductService
	CategorySvc CategoryService
}

// buildRouter wires middleware and the /api/v1 routes.
func buildRouter(logger zerolog.Logger, db *pgxpool.Pool, opts Options, deps Deps) (*gin.Engine, error) {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(requestLogger(logger), gin.Recovery())

	if opts.CORSOrigin != "" {
		router.Use(cors.New(cors.Config{
			AllowOrigins:     []string{opts.CORSOrigin},
			AllowMethods:     []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodDelete, http.MethodOptions},
			AllowHeaders:     []string{"Content-Type", "Authorization"},
			AllowCredentials: true,
		}))
	}

	router.GET("/healthz", healthHandler)
	router.GET("/readyz", readyHandler(db))

	registerAdminUI(router)

	// Only API routes count against the quota; probes must stay free.
	api := router.Group("/api/v1")
	if opts.RateLimitMax > 0 {
		rate := limiter.Rate{Period: opts.RateLimitTTL, Limit: int64(opts.RateLimitMax)}
		api.Use(mgin.NewMiddleware(limiter.New(memory.NewStore(), rate)))
	}
	{
		api.GET("/categories", listCategoriesHandler(deps.CategorySvc, logger))
		api.POST("/categories", createCategoryHandler(deps.CategorySvc, logger))

		api.GET("/products", listProductsHandler(deps.ProductSvc, logger))
		api.POST("/products", createProductHandler(deps.ProductSvc, logger))
		api.GET("/products/:id", getProductHandler(deps.ProductSvc, logger))
		api.PUT("/products/:id", updateProductHandler(deps.ProductSvc, logger))
		api.DELETE("/products/:id", deleteProductHandler(deps.ProductSvc, logger))
	}

	return router, nil
}
