package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/controllers"
)

func VehicleRoutes(r *gin.Engine, ctl *controllers.VehicleController) {
	vehicles := r.Group("/vehicles")
	{
		vehicles.POST("", ctl.Create)
		vehicles.GET("/search", ctl.Search)
		vehicles.GET("/:id", ctl.Get)
		vehicles.PUT("/:id", ctl.Update)
		vehicles.DELETE("/:id", ctl.Delete)
	}
}
