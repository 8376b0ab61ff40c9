package server

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/yungbote/notebook-gallery-backend/internal/handlers"
	"github.com/yungbote/notebook-gallery-backend/internal/middleware"
)

type RouterConfig struct {
	AuthHandler     *handlers.AuthHandler
	AuthMiddleware  *middleware.AuthMiddleware
	NotebookHandler *handlers.NotebookHandler
}

func NewRouter(cfg RouterConfig) *gin.Engine {
	router := gin.Default()

	// Cors
	router.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:80",
			"http://localhost:3000",
			"http://localhost:5173",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "PATCH", "OPTIONS"},
		AllowHeaders:     []string{"Authorization", "Content-Type", "X-Requested-With"},
		AllowCredentials: true,
	}))

	router.Use(middleware.RequestID())

	// Every route is public; identity is optional everywhere.
	router.Use(cfg.AuthMiddleware.OptionalAuth())

	router.GET("/healthcheck", handlers.HealthCheck)

	api := router.Group("/api")
	{
		api.GET("/auth/me", cfg.AuthHandler.Me)

		api.POST("/notebooks/submit", cfg.NotebookHandler.Submit)
		api.GET("/notebooks", cfg.NotebookHandler.List)
		api.GET("/notebooks/search", cfg.NotebookHandler.Search)
		api.POST("/notebooks/report", cfg.NotebookHandler.Report)
	}

	return router
}
