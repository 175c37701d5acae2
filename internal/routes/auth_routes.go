package routes

import (
	"github.com/gin-gonic/gin"

	"github.com/KelvenKs/SGTE/internal/controllers"
)

func AuthRoutes(r *gin.Engine, deps Deps) {
	ctrl := &controllers.AuthController{DB: deps.DB, Auth: deps.Auth}

	r.POST("/login", ctrl.Login)
}
