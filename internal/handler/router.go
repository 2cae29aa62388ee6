package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"offer-engine/internal/handler/api"
	"offer-engine/internal/handler/middleware"
	"offer-engine/internal/pkg/config"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
}

func NewRouter(engine *gin.Engine, cfg config.Config, offerHandler *api.OfferHandler) {
	setupMiddleware(engine, cfg)
	setupRoutes(engine, offerHandler)
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, offerHandler *api.OfferHandler) {
	engine.GET("/", liveness)
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	addRoutes(engine, []route{
		{Method: http.MethodPost, Path: "/offer", Handler: offerHandler.Ingest},
		{Method: http.MethodGet, Path: "/highest-discount", Handler: offerHandler.HighestDiscount},
	})
}

// @Summary Liveness
// @Description Plain-text liveness probe
// @Tags health
// @Produce plain
// @Success 200 {string} string
// @Router / [get]
func liveness(c *gin.Context) {
	c.String(http.StatusOK, "offer-engine is alive")
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(engine *gin.Engine, rs []route) {
	for _, r := range rs {
		switch r.Method {
		case http.MethodGet:
			engine.GET(r.Path, r.Handler)
		case http.MethodPost:
			engine.POST(r.Path, r.Handler)
		default:
			engine.Any(r.Path, r.Handler)
		}
	}
}
