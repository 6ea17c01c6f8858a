package http

import (
	"todo-manager/internal/middleware"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to handler methods under rg/tasks.
// Every route is rate limited per client.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, mw middleware.Middleware) {
	tasks := rg.Group("/tasks", mw.RateLimit())
	{
		tasks.POST("", h.Add)
		tasks.GET("", h.List)
		tasks.GET("/categories", h.Categories)
		tasks.POST("/clear-completed", h.ClearCompleted)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Edit)
		tasks.DELETE("/:id", h.Delete)
		tasks.PATCH("/:id/toggle", h.Toggle)
		tasks.POST("/:id/schedule", h.Schedule)
	}
}
