package main

import (
	"log"
	"net/http"

	"fleet_admin/internal/config"
	"fleet_admin/internal/logger"
	"fleet_admin/internal/middleware"
	"fleet_admin/internal/routes"
)

func main() {
	// Initialize structured logging to file
	logger.Setup()

	// Fail fast on missing DATABASE_URL / JWT_SECRET
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("configuration error: %v", err)
	}

	// Connect to the database and migrate the schema
	db, err := config.Connect(cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("database error: %v", err)
	}

	auth := middleware.NewAuth(cfg.JWTSecret)

	// Setup Gin router
	r := routes.SetupRouter(db, auth)

	// Wrap with CORS
	handler := middleware.EnableCORS(r)

	log.Printf("🚀 Server running at %s", cfg.ListenAddr)
	log.Fatal(http.ListenAndServe(cfg.ListenAddr, handler))
}
