package http

import (
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(g *gin.RouterGroup, h *Handler, authMiddleware, adminMiddleware gin.HandlerFunc, cacheMiddleware gin.HandlerFunc) {
	group := g.Group("/floorplans")

	group.Use(authMiddleware)
	{
		group.GET("", h.List)
		group.GET("/:id", h.Get)
		group.GET("/:id/file", cacheMiddleware, h.Download)
		group.GET("/:id/preview", cacheMiddleware, h.DownloadPreview)
		group.POST("", adminMiddleware, h.Upload)
		group.DELETE("/:id", adminMiddleware, h.Delete)
	}
}
