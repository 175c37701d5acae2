package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KelvenKs/SGTE/internal/controllers"
	"github.com/KelvenKs/SGTE/internal/models"
)

func RouteRoutes(r *gin.Engine, deps Deps) {
	ctrl := &controllers.RouteController{DB: deps.DB}

	route := r.Group("/rota")
	route.Use(deps.Auth.RequireAuth())
	{
		route.GET("", ctrl.List)
		route.GET("/:id", ctrl.Get)
	}

	admin := r.Group("/rota")
	admin.Use(deps.Auth.RequireRole(models.RoleAdmin))
	{
		admin.POST("", ctrl.Create)
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
	}
}
