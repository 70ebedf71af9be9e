package routes

import (
	"github.com/gin-gonic/gin"

	"fleet_admin/internal/controllers"
)

func AuthRoutes(r *gin.Engine, ctl *controllers.AuthController) {
	auth := r.Group("/auth")
	{
		auth.POST("/register", ctl.Register)
		auth.POST("/login", ctl.Login)
	}
}
