package routes

import (
	ginlogger "github.com/gin-contrib/logger"
	"github.com/gin-gonic/gin"
	"github.com/rs/zerolog"
	"gorm.io/gorm"

	"github.com/KelvenKs/SGTE/internal/assignment"
	"github.com/KelvenKs/SGTE/internal/config"
	"github.com/KelvenKs/SGTE/internal/middleware"
)

// Deps carries the shared collaborators every route group wires against.
type Deps struct {
	DB     *gorm.DB
	Auth   *middleware.Auth
	Engine *assignment.Engine
	Cfg    config.Config
}

func SetupRouter(deps Deps) *gin.Engine {
	r := gin.New()
	r.Use(ginlogger.SetLogger(
		ginlogger.WithLogger(func(_ *gin.Context, l zerolog.Logger) zerolog.Logger {
			return l.Output(gin.DefaultWriter).With().Timestamp().Logger()
		}),
	))
	r.Use(gin.Recovery())

	AuthRoutes(r, deps)
	UserRoutes(r, deps)
	DriverRoutes(r, deps)
	StudentRoutes(r, deps)
	VehicleRoutes(r, deps)
	RouteRoutes(r, deps)
	EvaluationRoutes(r, deps)
	ReportRoutes(r, deps)
	AttendanceRoutes(r, deps)
	AssignmentRoutes(r, deps)

	return r
}
