package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KelvenKs/SGTE/internal/controllers"
	"github.com/KelvenKs/SGTE/internal/models"
)

func DriverRoutes(r *gin.Engine, deps Deps) {
	ctrl := &controllers.DriverController{DB: deps.DB, UploadDir: deps.Cfg.UploadDir}

	driver := r.Group("/motorista")
	driver.Use(deps.Auth.RequireAuth())
	{
		driver.GET("", ctrl.List)
		driver.GET("/:id", ctrl.Get)
	}

	admin := r.Group("/motorista")
	admin.Use(deps.Auth.RequireRole(models.RoleAdmin))
	{
		admin.POST("", ctrl.Create)
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
	}

	link := &controllers.DriverRouteController{DB: deps.DB}

	driverRoute := r.Group("/motorista_rota")
	driverRoute.Use(deps.Auth.RequireAuth())
	{
		driverRoute.GET("", link.List)
	}

	driverRouteAdmin := r.Group("/motorista_rota")
	driverRouteAdmin.Use(deps.Auth.RequireRole(models.RoleAdmin))
	{
		driverRouteAdmin.POST("", link.Create)
		driverRouteAdmin.DELETE("/:id", link.Delete)
	}
}
