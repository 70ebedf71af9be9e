package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/controllers"
	"fleet_admin/internal/middleware"
)

// RouteRoutes registers the /routes endpoints. Everything but search
// requires a bearer token.
func RouteRoutes(r *gin.Engine, ctl *controllers.RouteController, auth *middleware.Auth) {
	routes := r.Group("/routes")
	routes.GET("/search", ctl.Search)

	protected := routes.Group("")
	protected.Use(auth.RequireAuth())
	{
		protected.POST("", ctl.Create)
		protected.GET("/:id", ctl.Get)
		protected.PUT("/:id", ctl.Update)
		protected.DELETE("/:id", ctl.Delete)
	}
}
