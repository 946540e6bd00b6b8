package main

import (
	"log"
	"os"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"policypulse/internal/api"
	"policypulse/internal/config"
	"policypulse/internal/storage"
	"policypulse/internal/upload"
)

func main() {
	// .env is optional; real deployments export variables directly.
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	db, err := storage.Open(cfg.DatabaseDriver, cfg.DatabaseDSN)
	if err != nil {
		log.Fatalf("open database: %v", err)
	}
	defer db.Close()

	if err := storage.Migrate(db, cfg.DatabaseDriver); err != nil {
		log.Fatalf("migrate database: %v", err)
	}

	if err := os.MkdirAll(cfg.UploadDir, 0o755); err != nil {
		log.Fatalf("create upload directory: %v", err)
	}

	store := storage.NewStore(db)
	resumes := upload.NewSaver(cfg.UploadDir)
	handler := api.NewHandler(store, resumes, cfg)

	router := gin.Default()
	if err := handler.RegisterRoutes(router); err != nil {
		log.Fatalf("register routes: %v", err)
	}

	log.Printf("policy pulse listening on %s", cfg.ServerAddress)
	if err := router.Run(cfg.ServerAddress); err != nil {
		log.Fatalf("server stopped: %v", err)
	}
}
