package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware gin.HandlerFunc, cacheMiddleware gin.HandlerFunc) {
	group := g.Group("/offices")

	group.Use(authMiddleware)
	{
		group.GET("", cacheMiddleware, h.List)
		group.GET("/:id", h.Get)
	}
}
