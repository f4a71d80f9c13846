package http

import (
	"github.com/gin-gonic/gin"

	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/handlers"
	"github.com/DEvILSG007/ScholarSyncPlanner/internal/adapter/http/middleware"
)

// Handlers bundles the route handlers wired at boot.
type Handlers struct {
	Health  *handlers.HealthHandler
	Task    *handlers.TaskHandler
	Subject *handlers.SubjectHandler
	Goal    *handlers.GoalHandler
	Session *handlers.SessionHandler
	Planner *handlers.PlannerHandler
	Focus   *handlers.FocusHandler
	Insight *handlers.InsightHandler
}

func RegisterRoutes(r *gin.Engine, h Handlers) {
	api := r.Group("/api")
	api.Use(middleware.LanguageMiddleware(), middleware.ScopeMiddleware())
	{
		api.GET("/health", h.Health.CheckHealth)
		api.GET("/health/report", h.Health.CheckHealthReport)

		api.GET("/tasks", h.Task.ListTasks)
		api.POST("/tasks", h.Task.CreateTask)
		api.PATCH("/tasks/:id", h.Task.UpdateTask)
		api.DELETE("/tasks/:id", h.Task.DeleteTask)

		api.GET("/subjects", h.Subject.ListSubjects)
		api.POST("/subjects", h.Subject.CreateSubject)
		api.DELETE("/subjects/:id", h.Subject.DeleteSubject)

		api.GET("/goals", h.Goal.ListGoals)
		api.POST("/goals", h.Goal.CreateGoal)
		api.PATCH("/goals/:id", h.Goal.UpdateGoal)
		api.DELETE("/goals/:id", h.Goal.DeleteGoal)

		api.GET("/sessions", h.Session.ListSessions)
		api.POST("/sessions", h.Session.LogSession)
		api.DELETE("/sessions/:id", h.Session.DeleteSession)

		api.GET("/planner/week", h.Planner.WeekView)
		api.GET("/planner/export.ics", h.Planner.ExportICS)

		api.POST("/focus/start", h.Focus.Start)
		api.POST("/focus/pause", h.Focus.Pause)
		api.POST("/focus/resume", h.Focus.Resume)
		api.POST("/focus/reset", h.Focus.Reset)
		api.GET("/focus/status", h.Focus.Status)

		api.POST("/insights/analyze", h.Insight.Analyze)
	}
}
