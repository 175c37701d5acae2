package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KelvenKs/SGTE/internal/controllers"
	"github.com/KelvenKs/SGTE/internal/models"
)

func StudentRoutes(r *gin.Engine, deps Deps) {
	ctrl := &controllers.StudentController{DB: deps.DB, UploadDir: deps.Cfg.UploadDir}

	student := r.Group("/estudante")
	student.Use(deps.Auth.RequireAuth())
	{
		student.GET("", ctrl.List)
		student.GET("/:id", ctrl.Get)
	}

	admin := r.Group("/estudante")
	admin.Use(deps.Auth.RequireRole(models.RoleAdmin))
	{
		admin.POST("", ctrl.Create)
		admin.PUT("/:id", ctrl.Update)
		admin.DELETE("/:id", ctrl.Delete)
	}
}
