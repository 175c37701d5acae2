package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KelvenKs/SGTE/internal/controllers"
	"github.com/KelvenKs/SGTE/internal/models"
)

func ReportRoutes(r *gin.Engine, deps Deps) {
	ctrl := &controllers.ReportController{DB: deps.DB}

	report := r.Group("/relatorios")
	report.Use(deps.Auth.RequireAuth())
	{
		report.GET("", ctrl.List)
		report.GET("/:id", ctrl.Get)
	}

	admin := r.Group("/relatorios")
	admin.Use(deps.Auth.RequireRole(models.RoleAdmin))
	{
		admin.POST("", ctrl.Create)
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
	}
}
