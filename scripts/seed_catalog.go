// Seeds the default question and archetype catalog.
//
// Seeding also runs automatically on startup when the tables are empty; this
// script exists for first deploys where the catalog should be installed
// without starting the HTTP server.
//
// Usage: go run scripts/seed_catalog.go

package main

import (
	"log"

	"cinequiz_backend/internal/config"
	"cinequiz_backend/internal/model"
	"cinequiz_backend/pkg/database"
)

func main() {
	cfg, err := config.LoadConfig("configs")
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	db, err := database.InitDB(&cfg.Database)
	if err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	var questions, archetypes int64
	db.Model(&model.QuizQuestion{}).Count(&questions)
	db.Model(&model.Archetype{}).Count(&archetypes)
	log.Printf("catalog ready: %d questions, %d archetypes", questions, archetypes)
}
