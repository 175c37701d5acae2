package main

import (
	"log"
	"net/http"
	"time"

	"github.com/KelvenKs/SGTE/internal/assignment"
	"github.com/KelvenKs/SGTE/internal/config"
	"github.com/KelvenKs/SGTE/internal/logger"
	"github.com/KelvenKs/SGTE/internal/middleware"
	"github.com/KelvenKs/SGTE/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	cfg := config.Load()

	// Connect to the database
	db := config.InitDB(cfg)

	auth := middleware.NewAuth(cfg.JWTSecret, time.Hour)
	engine := assignment.NewEngine(db)

	r := routes.SetupRouter(routes.Deps{
		DB:     db,
		Auth:   auth,
		Engine: engine,
		Cfg:    cfg,
	})

	// Wrap with CORS
	handler := middleware.EnableCORS(cfg.CORSOrigin, r)

	log.Printf("🚀 Server running at :%s", cfg.Port)
	log.Fatal(http.ListenAndServe("0.0.0.0:"+cfg.Port, handler))
}
