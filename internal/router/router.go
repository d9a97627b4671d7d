package router

import (
	"time"

	"github.com/waltinho0807/perfumariaCalegari/internal/config"
	"github.com/waltinho0807/perfumariaCalegari/internal/handler"
	"github.com/waltinho0807/perfumariaCalegari/internal/middleware"
	"github.com/waltinho0807/perfumariaCalegari/internal/repository"
	"github.com/waltinho0807/perfumariaCalegari/internal/service"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// New wires all dependencies and returns a configured Gin engine.
// Dependency graph: Handler ← Service ← Repository ← store.
// db is only used by the health check and is nil for the in-memory store.
func New(cfg *config.Config, repos *repository.Repositories, db *gorm.DB) *gin.Engine {
	if cfg.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()

	// Global middleware chain (order matters)
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger())
	r.Use(middleware.Recovery())
	r.Use(middleware.CORS())
	r.Use(middleware.ErrorHandler())
	r.Use(middleware.RateLimiter(cfg.RateLimitPerMinute, time.Minute))

	// ── Services ─────────────────────────────────────────────────────────────
	productSvc := service.NewProductService(repos.Products)
	leadSvc := service.NewLeadService(repos.Leads)
	viewedSvc := service.NewViewedProductService(repos.Viewed, repos.Products)
	blogSvc := service.NewBlogService(repos.Blog)

	// ── Handlers ─────────────────────────────────────────────────────────────
	productsH := handler.NewProductsHandler(productSvc)
	leadsH := handler.NewLeadsHandler(leadSvc)
	viewedH := handler.NewViewedProductsHandler(viewedSvc)
	blogH := handler.NewBlogHandler(blogSvc, cfg.BlogPageSize)

	// ── Routes ───────────────────────────────────────────────────────────────
	r.GET("/health", handler.Health(db))

	api := r.Group("/api")
	{
		products := api.Group("/products")
		{
			products.GET("", productsH.List)
			products.GET("/:id", productsH.Get)
			products.POST("", productsH.Create)
			products.PATCH("/:id", productsH.Update)
			products.DELETE("/:id", productsH.Delete)
		}

		leads := api.Group("/leads")
		{
			leads.POST("/register", middleware.LeadRateLimiter(), leadsH.Register)
			leads.POST("/login", middleware.LeadRateLimiter(), leadsH.Login)
			leads.GET("", leadsH.List)
			leads.GET("/:id", leadsH.Get)
		}

		viewed := api.Group("/viewed-products")
		{
			viewed.GET("/:leadId", viewedH.ListByLead)
			viewed.POST("", viewedH.Add)
			viewed.DELETE("/:leadId/:productId", viewedH.Remove)
		}

		blog := api.Group("/blog")
		{
			blog.GET("", blogH.List)
			blog.GET("/:id", blogH.Get)
			blog.POST("", blogH.Create)
			blog.DELETE("/:id", blogH.Delete)
		}
	}

	// Swagger UI — only enabled outside production
	if cfg.Env != "production" {
		r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	return r
}
