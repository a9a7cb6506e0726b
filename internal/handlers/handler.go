package handlers

import (
	"bookmarkhub/internal/config"
	"bookmarkhub/internal/logger"
	"bookmarkhub/internal/service"

	"github.com/gin-gonic/gin"

	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// Handler wires HTTP layer to services, logging and configuration.
type Handler struct {
	services *service.Service
	log      *logger.Logger
	cfg      *config.Config
}

// NewHandler constructs a new HTTP handler with dependencies.
func NewHandler(services *service.Service, log *logger.Logger, cfg *config.Config) *Handler {
	return &Handler{services: services, log: log, cfg: cfg}
}

// InitRoutes builds and returns the Gin router with all routes registered.
func (h *Handler) InitRoutes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())

	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Health endpoint
	router.GET("/health", h.health)

	// Auth endpoints
	h.registerAuthRoutes(router)

	// Versioned API endpoints (protected)
	h.registerAPIRoutes(router)

	// Public listing — no auth
	router.GET("/api/public/bookmarks", h.listPublicBookmarks)

	// Browser-facing pages behind the route gate
	h.registerPageRoutes(router)

	// Public bookmark feed over WebSocket — same port
	router.GET("/ws", h.wsConnect)

	return router
}

func (h *Handler) registerAuthRoutes(r *gin.Engine) {
	auth := r.Group("/api/auth")
	{
		auth.POST("/register", h.register)
		auth.POST("/login", h.login)
		auth.POST("/logout", h.logout)
	}
}

func (h *Handler) registerAPIRoutes(r *gin.Engine) {
	api := r.Group("/api/v1", h.identityMiddleware)
	{
		bookmarks := api.Group("/bookmarks")
		{
			bookmarks.GET("", h.listBookmarks)
			bookmarks.POST("", h.createBookmark)
			bookmarks.GET("/:id", h.getBookmark)
			bookmarks.PUT("/:id", h.updateBookmark)
			bookmarks.DELETE("/:id", h.deleteBookmark)
		}
	}
}

func (h *Handler) registerPageRoutes(r *gin.Engine) {
	pages := r.Group("/", h.routeGate)
	{
		pages.GET("/login", h.loginPage)
		pages.GET("/register", h.registerPage)
		pages.GET("/bookmarks", h.bookmarksPage)
		pages.GET("/public", h.publicPage)
	}
}

// @Summary      Health check
// @Tags         system
// @Produce      json
// @Success      200  {object}  map[string]string
// @Router       /health [get]
func (h *Handler) health(c *gin.Context) {
	c.JSON(200, gin.H{"status": "ok"})
}
