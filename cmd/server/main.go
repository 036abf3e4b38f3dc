// cmd/server/main.go
package main

import (
	"fmt"
	"log"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/rs/cors"

	"github.com/tahcohcat/cluequest/config"
	"github.com/tahcohcat/cluequest/internal/api"
	"github.com/tahcohcat/cluequest/internal/auth"
	"github.com/tahcohcat/cluequest/internal/catalog"
	"github.com/tahcohcat/cluequest/internal/database"
	"github.com/tahcohcat/cluequest/internal/game"
	"github.com/tahcohcat/cluequest/internal/logger"
	"github.com/tahcohcat/cluequest/internal/services"
	"github.com/tahcohcat/cluequest/internal/websocket"
)

func main() {
	// Load config from files and environment variables
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Error reading config: %s", err)
	}
	logger.GlobalLogLevel = logger.LogLevel(cfg.Log.Level)
	lg := logger.New()

	// Initialize the verdict ledger
	db, err := database.NewDB(cfg.Database.DSN)
	if err != nil {
		log.Fatalf("Failed to initialize database: %v", err)
	}
	defer db.Close()

	// Load cases, the built-in manor first
	cases, err := catalog.Load(cfg.Game.CasesDir)
	if err != nil {
		log.Fatalf("Failed to load cases: %v", err)
	}
	engine := game.NewEngine(cfg, catalog.WithBuiltin(cases)...)

	auth.Init(cfg.Auth.SessionSecret)

	r := mux.NewRouter()

	// WebSocket routes
	hub := websocket.RegisterRoutes(r)

	// API routes
	apiRouter := r.PathPrefix("/api/v1").Subrouter()
	api.RegisterRoutes(apiRouter, engine, services.NewVerdictService(db), hub)

	// CORS setup for development
	c := cors.New(cors.Options{
		AllowedOrigins:   cfg.Server.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"*"},
		AllowCredentials: true,
	})

	handler := c.Handler(r)

	addr := fmt.Sprintf(":%d", cfg.Server.Port)
	lg.Info(fmt.Sprintf("🔍 Clue Quest server starting on port %d", cfg.Server.Port))
	lg.Info(fmt.Sprintf("📚 %d case(s) loaded", len(engine.Cases())))

	if err := http.ListenAndServe(addr, handler); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
