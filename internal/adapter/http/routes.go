package http

import (
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/handlers"
	"github.com/CxTrack/PostBuild-CRM-sub002/internal/adapter/http/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterRoutes(r *gin.Engine, healthHandler *handlers.HealthHandler, taskHandler *handlers.TaskHandler, eventHandler *handlers.EventHandler) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(), middleware.ScopeMiddleware())
	{
		api.GET("/health", healthHandler.CheckHealth)
		api.GET("/health/report", healthHandler.CheckHealthReport)

		api.GET("/schedule", eventHandler.FetchSchedule)
		api.POST("/events", eventHandler.CreateEvent)
		api.PATCH("/events/:id", eventHandler.UpdateEvent)
		api.DELETE("/events/:id", eventHandler.DeleteEvent)

		api.GET("/tasks", taskHandler.ListTasks)
		api.POST("/tasks", taskHandler.CreateTask)
		api.GET("/tasks/:id", taskHandler.GetTask)
		api.PATCH("/tasks/:id", taskHandler.UpdateTask)
		api.PATCH("/tasks/:id/status", taskHandler.UpdateTaskStatus)
		api.DELETE("/tasks/:id", taskHandler.DeleteTask)
	}
}
