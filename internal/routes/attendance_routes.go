package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KelvenKs/SGTE/internal/controllers"
	"github.com/KelvenKs/SGTE/internal/models"
)

func AttendanceRoutes(r *gin.Engine, deps Deps) {
	ctrl := &controllers.AttendanceController{DB: deps.DB}

	attendance := r.Group("/presenca")
	attendance.Use(deps.Auth.RequireAuth())
	{
		attendance.GET("", ctrl.List)
	}

	// Drivers record boardings for their runs; administrators correct them.
	writer := r.Group("/presenca")
	writer.Use(deps.Auth.RequireRole(models.RoleDriver, models.RoleAdmin))
	{
		writer.POST("", ctrl.Create)
		writer.DELETE("/:id", ctrl.Delete)
	}
}
