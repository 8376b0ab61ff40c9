package app

import (
	"github.com/gin-gonic/gin"

	"github.com/yungbote/notebook-gallery-backend/internal/server"
)

func wireRouter(handlerset Handlers, middlewareset Middleware) *gin.Engine {
	return server.NewRouter(server.RouterConfig{
		AuthHandler:     handlerset.Auth,
		AuthMiddleware:  middlewareset.Auth,
		NotebookHandler: handlerset.Notebook,
	})
}
