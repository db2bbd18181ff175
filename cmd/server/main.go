package main

import (
	"os"

	"github.com/fandyandika/hello-saas/internal/config"
	"github.com/fandyandika/hello-saas/internal/database"
	"github.com/fandyandika/hello-saas/internal/router"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
)

func main() {
	_ = godotenv.Load()

	log.SetFormatter(&log.TextFormatter{FullTimestamp: true})
	if os.Getenv("LOG_LEVEL") == "debug" {
		log.SetLevel(log.DebugLevel)
	}

	gin.SetMode(gin.ReleaseMode)

	cfg := config.Load()

	if err := database.Init(cfg.DatabasePath); err != nil {
		log.Fatalf("database init failed: %v", err)
	}
	defer database.Close()

	if cfg.OpenAIAPIKey == "" {
		log.Warn("OPENAI_API_KEY is not set; AI generation requests will be rejected")
	}

	r := router.Setup()

	port := cfg.ServerPort
	if envPort := os.Getenv("PORT"); envPort != "" {
		port = envPort
	}

	log.Infof("server listening on http://0.0.0.0:%s", port)
	if err := r.Run("0.0.0.0:" + port); err != nil {
		log.Fatalf("server failed: %v", err)
	}
}
