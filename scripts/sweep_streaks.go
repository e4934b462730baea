// Manual stale-streak sweep.
//
// The sweep already runs inside the main application as a daily background
// job. This script triggers it by hand, for example after restoring a
// database backup or importing users.
//
// Usage: go run scripts/sweep_streaks.go
package main

import (
	"log"
	"os"
	"time"

	"nihongo_backend/internal/config"
	"nihongo_backend/internal/repository"
	"nihongo_backend/internal/service"
	"nihongo_backend/pkg/database"
	"nihongo_backend/pkg/logger"

	"gopkg.in/yaml.v3"
)

func main() {
	data, err := os.ReadFile("configs/config.yaml")
	if err != nil {
		log.Fatalf("failed to read config file: %v", err)
	}

	var cfg config.Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		log.Fatalf("failed to parse config file: %v", err)
	}

	logger.InitLogger(&cfg)

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("database connection failed: %v", err)
	}

	userRepo := repository.NewUserRepository(db)
	userService := service.NewUserService(userRepo, nil)

	log.Println("Running stale-streak sweep...")
	userService.SweepStaleStreaks(time.Now())
	log.Println("Done.")
}
