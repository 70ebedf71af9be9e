package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/controllers"
	"fleet_admin/internal/middleware"
)

// MaintenanceRoutes registers the /maintenance endpoints. Everything but
// search requires a bearer token.
func MaintenanceRoutes(r *gin.Engine, ctl *controllers.MaintenanceController, auth *middleware.Auth) {
	records := r.Group("/maintenance")
	records.GET("/search", ctl.Search)

	protected := records.Group("")
	protected.Use(auth.RequireAuth())
	{
		protected.POST("", ctl.Create)
		protected.GET("/:id", ctl.Get)
		protected.PUT("/:id", ctl.Update)
		protected.DELETE("/:id", ctl.Delete)
	}
}
