package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/controllers"
)

func TripLogRoutes(r *gin.Engine, ctl *controllers.TripLogController) {
	trips := r.Group("/trip_logs")
	{
		trips.POST("", ctl.Create)
		trips.GET("/search", ctl.Search)
		trips.GET("/:id", ctl.Get)
		trips.PUT("/:id", ctl.Update)
		trips.DELETE("/:id", ctl.Delete)
	}
}
