// cmd/seedadmin/main.go
//
// Offline admin provisioning. Runs against the store directly so no
// credential-generation surface is exposed over HTTP.
package main

import (
	"context"
	"flag"
	"log"
	"strings"

	"donorlink-api-server/config"
	"donorlink-api-server/internal/database"
	"donorlink-api-server/internal/store/mongostore"

	"github.com/google/uuid"
	"github.com/joho/godotenv"
)

func main() {
	email := flag.String("email", "", "admin email (required)")
	name := flag.String("name", "Administrator", "admin full name")
	password := flag.String("password", "", "admin password (random if omitted)")
	flag.Parse()

	if *email == "" {
		log.Fatal("-email is required")
	}

	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using environment variables")
	}

	cfg, err := config.LoadConfig("./config")
	if err != nil {
		log.Fatalf("Could not load config: %v", err)
	}

	db, err := mongostore.Connect(context.Background(), cfg.Mongo.URI, cfg.Mongo.DBName)
	if err != nil {
		log.Fatalf("Failed to connect to MongoDB: %v", err)
	}
	defer db.Client().Disconnect(context.Background())

	if err := mongostore.EnsureIndexes(context.Background(), db); err != nil {
		log.Fatalf("Failed to ensure indexes: %v", err)
	}

	generated := false
	if *password == "" {
		*password = strings.ReplaceAll(uuid.New().String(), "-", "")[:16]
		generated = true
	}

	created, err := database.SeedAdmin(context.Background(), mongostore.NewUserStore(db), *name, *email, *password)
	if err != nil {
		log.Fatalf("Failed to seed admin: %v", err)
	}

	if !created {
		log.Printf("Admin %s already exists. Seeding skipped.", *email)
		return
	}

	log.Printf("Admin %s seeded successfully.", *email)
	if generated {
		// Printed once; it is not stored anywhere in plaintext.
		log.Printf("Generated password: %s", *password)
	}
}
