package main

import (
	"log"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"cryptonews/internal/config"
	"cryptonews/internal/handler"
	"cryptonews/internal/store"
)

func main() {

	godotenv.Load()

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, nil)))

	cfg := config.Load()

	predictionStore := store.New(cfg.DataDir)
	predictionHandler := handler.NewPredictionHandler(predictionStore)

	r := gin.Default()

	allowedOrigins := []string{"http://localhost:3000"}
	if cfg.FrontendURL != "" {
		allowedOrigins = append(allowedOrigins, cfg.FrontendURL)
	}

	slog.Info("AllowOrigins URL:", "urls", allowedOrigins)

	r.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowMethods: []string{"GET", "OPTIONS"},
		AllowHeaders: []string{"Origin", "Content-Type"},
	}))

	r.GET("/predictions/:symbol", predictionHandler.GetPredictions)
	r.GET("/symbols", predictionHandler.GetSymbols)
	r.GET("/health", predictionHandler.GetHealth)

	// Generated chart images referenced by the records.
	r.Static("/news", filepath.Join(cfg.DataDir, "news"))

	err := r.Run(":8080")
	if err != nil {
		log.Fatalf("error starting server: %v", err)
	}
}
