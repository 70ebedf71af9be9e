package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/controllers"
)

func DriverRoutes(r *gin.Engine, ctl *controllers.DriverController) {
	drivers := r.Group("/drivers")
	{
		drivers.POST("", ctl.Create)
		drivers.GET("/search", ctl.Search)
		drivers.GET("/:id", ctl.Get)
		drivers.PUT("/:id", ctl.Update)
		drivers.DELETE("/:id", ctl.Delete)
	}
}
