package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/marcos-nsantos/users-api/internal/adapter/handler"
	"github.com/marcos-nsantos/users-api/internal/infrastructure/middleware"
)

type Router struct {
	engine      *gin.Engine
	userHandler *handler.UserHandler
	logger      *zap.Logger
	corsOrigins []string
}

type RouterConfig struct {
	UserHandler *handler.UserHandler
	Logger      *zap.Logger
	Environment string
	CORSOrigins []string
}

func NewRouter(cfg RouterConfig) *Router {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	engine := gin.New()
	engine.HandleMethodNotAllowed = true

	r := &Router{
		engine:      engine,
		userHandler: cfg.UserHandler,
		logger:      cfg.Logger,
		corsOrigins: cfg.CORSOrigins,
	}

	r.setupMiddleware()
	r.setupRoutes()

	return r
}

func (r *Router) setupMiddleware() {
	r.engine.Use(middleware.Recovery(r.logger))
	r.engine.Use(middleware.RequestID())
	r.engine.Use(middleware.Logger(r.logger))
	r.engine.Use(middleware.CORS(r.corsOrigins))
}

func (r *Router) setupRoutes() {
	r.engine.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	users := r.engine.Group("/users")
	{
		users.GET("", r.userHandler.List)
		users.POST("", r.userHandler.Create)
		users.GET("/:id", r.userHandler.Get)
		users.PUT("/:id", r.userHandler.Update)
		users.DELETE("/:id", r.userHandler.Delete)
	}
}

func (r *Router) Engine() *gin.Engine {
	return r.engine
}
