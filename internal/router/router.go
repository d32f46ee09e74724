package router

import (
	"net/http"
	"strings"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/paperforge/paperforge-backend/internal/config"
	"github.com/paperforge/paperforge-backend/internal/handler"
	"github.com/paperforge/paperforge-backend/internal/middleware"
	"github.com/paperforge/paperforge-backend/internal/response"
)

// Handlers groups all handler instances for route setup.
type Handlers struct {
	Paper *handler.PaperHandler
	Media *handler.MediaHandler
}

// SetupRouter configures all Gin route groups with appropriate middlewares.
func SetupRouter(handlers *Handlers, cfg *config.Config) *gin.Engine {
	gin.SetMode(cfg.GinMode)
	router := gin.Default()

	// ─── CORS ──────────────────────────────────────────────────────────
	// If AllowedOrigins is set in config, restrict to that list;
	// otherwise allow all (*) so dev works without extra config.
	corsConfig := cors.DefaultConfig()
	if len(cfg.AllowedOrigins) > 0 {
		corsConfig.AllowOrigins = cfg.AllowedOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "X-Request-ID"}
	corsConfig.ExposeHeaders = []string{"X-Request-ID", "Content-Disposition"}
	corsConfig.MaxAge = 12 * time.Hour
	router.Use(cors.New(corsConfig))

	// Apply request ID middleware globally so every response includes metadata.
	router.Use(response.RequestIDMiddleware())

	// Compress JSON responses; generated PDFs are already deflated, so
	// the paper routes are skipped.
	brotliCfg := middleware.DefaultBrotliConfig
	brotliCfg.Skipper = func(c *gin.Context) bool {
		return strings.HasPrefix(c.Request.URL.Path, "/api/v1/papers")
	}
	router.Use(middleware.BrotliWithConfig(brotliCfg))

	// Serve uploaded assets statically with aggressive caching (1 year).
	assetsGroup := router.Group("/assets")
	assetsGroup.Use(middleware.CacheControl(31536000))
	{
		assetsGroup.Static("/", cfg.AssetDir)
	}

	// Health check.
	router.GET("/health", func(c *gin.Context) {
		response.Success(c, http.StatusOK, gin.H{"status": "ok"})
	})

	// Rate limiter for generation (30 requests per minute per IP).
	paperLimiter := middleware.NewRateLimiter(30, time.Minute)

	api := router.Group("/api/v1")
	{
		papers := api.Group("/papers")
		papers.Use(paperLimiter.Middleware(), middleware.BodyLimit(cfg.MaxBodyBytes))
		{
			papers.POST("/generate", handlers.Paper.GeneratePaper)
		}

		api.POST("/media/upload", handlers.Media.UploadMedia)
	}

	return router
}
