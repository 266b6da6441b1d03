// cmd/api/main.go
package main

import (
	"context"
	"log"
	"time"

	"donorlink-api-server/config"
	"donorlink-api-server/internal/api/routes"
	"donorlink-api-server/internal/auth"
	"donorlink-api-server/internal/store/mongostore"

	"github.com/joho/godotenv"
)

func main() {
	// Load .env file if it exists
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	// Connect to MongoDB; unreachable store is unrecoverable at startup.
	db, err := mongostore.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	if err := mongostore.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	expiration, err := time.ParseDuration(cfg.JWT.Expiration)
	if err != nil {
		log.Fatalf("Invalid JWT expiration %q: %v", cfg.JWT.Expiration, err)
	}
	tokens := auth.NewTokenManager(cfg.JWT.Secret, expiration)

	users := mongostore.NewUserStore(db)
	donations := mongostore.NewDonationStore(db)

	router := routes.SetupRouter(cfg, tokens, users, donations)

	log.Printf("Starting API server on port %s", cfg.Server.Port)
	if err := router.Run(":" + cfg.Server.Port); err != nil {
		log.Fatalf("Failed to run server: %v", err)
	}
}
