package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
// Static segments (batch, export, import) are declared alongside the :id
// params; gin resolves static routes first.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.POST("/batch", h.BatchUpdate)
		tasks.GET("/export", h.Export)
		tasks.POST("/import", h.Import)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
	}
}
