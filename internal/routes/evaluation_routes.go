package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KelvenKs/SGTE/internal/controllers"
	"github.com/KelvenKs/SGTE/internal/models"
)

func EvaluationRoutes(r *gin.Engine, deps Deps) {
	ctrl := &controllers.EvaluationController{DB: deps.DB}

	evaluation := r.Group("/avaliacoes")
	evaluation.Use(deps.Auth.RequireAuth())
	{
		evaluation.GET("", ctrl.List)
		evaluation.GET("/:id", ctrl.Get)
	}

	// Students rate their own drivers; administrators moderate.
	author := r.Group("/avaliacoes")
	author.Use(deps.Auth.RequireRole(models.RoleStudent, models.RoleAdmin))
	{
		author.POST("", ctrl.Create)
	}

	admin := r.Group("/avaliacoes")
	admin.Use(deps.Auth.RequireRole(models.RoleAdmin))
	{
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
	}
}
