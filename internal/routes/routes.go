package routes

import (
	ginlog "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"fleet_admin/internal/controllers"
	"fleet_admin/internal/middleware"
)

// SetupRouter builds the gin engine and registers every endpoint group.
// The DB handle and auth are constructed once in main and injected here.
func SetupRouter(db *gorm.DB, auth *middleware.Auth) *gin.Engine {
	r := gin.New()

	// Recovery keeps a panicking request from taking down the process;
	// request logging goes through zerolog via gin-contrib.
	r.Use(gin.Recovery())
	r.Use(ginlog.SetLogger())

	AuthRoutes(r, controllers.NewAuthController(db, auth))
	VehicleRoutes(r, controllers.NewVehicleController(db))
	DriverRoutes(r, controllers.NewDriverController(db))
	RouteRoutes(r, controllers.NewRouteController(db), auth)
	TripLogRoutes(r, controllers.NewTripLogController(db))
	MaintenanceRoutes(r, controllers.NewMaintenanceController(db), auth)

	return r
}
