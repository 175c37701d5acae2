package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KelvenKs/SGTE/internal/controllers"
	"github.com/KelvenKs/SGTE/internal/models"
)

func UserRoutes(r *gin.Engine, deps Deps) {
	ctrl := &controllers.UserController{DB: deps.DB}

	// Registration is public; everything else is gated.
	r.POST("/usuario", ctrl.Create)

	user := r.Group("/usuario")
	user.Use(deps.Auth.RequireAuth())
	{
		user.GET("", ctrl.List)
		user.GET("/:id", ctrl.Get)
	}

	admin := r.Group("/usuario")
	admin.Use(deps.Auth.RequireRole(models.RoleAdmin))
	{
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
	}
}
