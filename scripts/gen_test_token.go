package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"codeberg.org/reclaim/server/internal/auth"
	"codeberg.org/reclaim/server/reclaim/users"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/joho/godotenv"
)

func main() {
	// load environment
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	dbConnString := os.Getenv("DATABASE_URL")
	if dbConnString == "" {
		log.Fatal("DATABASE_URL not set")
	}

	ctx := context.Background()

	dbPool, err := pgxpool.New(ctx, dbConnString)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer dbPool.Close()

	testEmail := "test@reclaim.dev"

	user, err := users.NewRepository(dbPool).FindOrCreateByEmail(ctx, "testuser", testEmail, "Test User")
	if err != nil {
		log.Fatalf("Failed to find or create test user: %v", err)
	}

	fmt.Printf("Using test user %s (ID: %s)\n", user.Email, user.ID)

	token, err := auth.GenerateJWT(user.ID, user.Email)
	if err != nil {
		log.Fatalf("Failed to generate JWT: %v", err)
	}

	fmt.Printf("\nTest JWT Token:\n%s\n\n", token)
	fmt.Printf("Export this token for testing:\nexport TEST_TOKEN=\"%s\"\n", token)
}
