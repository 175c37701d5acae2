package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KelvenKs/SGTE/internal/controllers"
	"github.com/KelvenKs/SGTE/internal/models"
)

func AssignmentRoutes(r *gin.Engine, deps Deps) {
	ctrl := &controllers.AssignmentController{DB: deps.DB, Engine: deps.Engine}

	selection := r.Group("/selecionar-viatura")
	selection.Use(deps.Auth.RequireRole(models.RoleStudent, models.RoleAdmin))
	{
		selection.POST("", ctrl.SelectVehicle)
		selection.PUT("", ctrl.Reselect)
	}

	assignment := r.Group("/motorista_estudante")
	assignment.Use(deps.Auth.RequireAuth())
	{
		assignment.GET("", ctrl.List)
	}

	release := r.Group("/motorista_estudante")
	release.Use(deps.Auth.RequireRole(models.RoleDriver, models.RoleAdmin, models.RoleStudent))
	{
		release.DELETE("/:id", ctrl.Delete)
	}
}
