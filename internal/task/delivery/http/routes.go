package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	tasks := rg.Group("/tasks")
	{
		tasks.POST("/parse", h.Parse)
		tasks.POST("", h.Create)
		tasks.GET("", h.List)
		tasks.GET("/stats", h.Stats)
		tasks.POST("/deadline-suggestions", h.SuggestDeadlines)
		tasks.POST("/breakdown", h.SuggestBreakdown)
		tasks.GET("/:id", h.Detail)
		tasks.PUT("/:id", h.Update)
		tasks.DELETE("/:id", h.Delete)
		tasks.GET("/:id/schedule-suggestions", h.SuggestSchedule)
	}

	rg.GET("/insights", h.Insights)
}
