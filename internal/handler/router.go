package handler

import (
	"log"
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"KreyolCollector/internal/config"
	"KreyolCollector/internal/middleware"
)

// NewRouter wires every route, CORS, rate limiting and the JSON fallbacks.
// A request can never leave without a response: unmatched routes, wrong
// verbs and handler panics all produce a JSON error body.
func NewRouter(cfg *config.Config, h *Handler) *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(gin.CustomRecovery(func(c *gin.Context, err any) {
		log.Printf("recovery(): panic in %s %s: %v", c.Request.Method, c.Request.URL.Path, err)
		c.AbortWithStatusJSON(http.StatusInternalServerError, gin.H{
			"ok":    false,
			"error": "internal_error",
		})
	}))

	corsConfig := cors.DefaultConfig()
	if cfg.Env == "production" {
		corsConfig.AllowOrigins = []string{cfg.CORS.ProductionOrigin}
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	// cors.New only answers preflights carrying an Origin header; OPTIONS on
	// any path must get an empty 204 even without one.
	router.Use(func(c *gin.Context) {
		if c.Request.Method == http.MethodOptions {
			c.AbortWithStatus(http.StatusNoContent)
		}
	})

	router.HandleMethodNotAllowed = true
	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{
			"ok":      false,
			"error":   "not_found",
			"message": "no route for " + c.Request.Method + " " + c.Request.URL.Path,
		})
	})
	router.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{
			"ok":    false,
			"error": "method_not_allowed",
		})
	})

	router.GET("/healthz", h.Healthz)
	router.StaticFile("/", "./public/index.html")
	router.Static("/public", "./public")
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api").Use(middleware.RateLimit())
	{
		api.POST("/asr/:lang", h.UploadAudio)
		api.POST("/samples/link", h.LinkPair)
		api.GET("/samples", h.ListSamples)
	}

	return router
}
