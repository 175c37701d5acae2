package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KelvenKs/SGTE/internal/controllers"
	"github.com/KelvenKs/SGTE/internal/models"
)

func VehicleRoutes(r *gin.Engine, deps Deps) {
	ctrl := &controllers.VehicleController{DB: deps.DB, UploadDir: deps.Cfg.UploadDir}

	vehicle := r.Group("/viatura")
	vehicle.Use(deps.Auth.RequireAuth())
	{
		vehicle.GET("", ctrl.List)
		vehicle.GET("/:id", ctrl.Get)
	}

	admin := r.Group("/viatura")
	admin.Use(deps.Auth.RequireRole(models.RoleAdmin))
	{
		admin.POST("", ctrl.Create)
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
	}
}
