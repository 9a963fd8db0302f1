package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.GET("", h.List)
		tasks.POST("", h.Add)
		tasks.PUT("/:id", h.SaveEdit)
		tasks.DELETE("/:id", h.Delete)
		tasks.POST("/:id/edit", h.BeginEdit)
		tasks.DELETE("/:id/edit", h.CancelEdit)
	}

	rg.POST("/suggestions", h.Suggest)
}
