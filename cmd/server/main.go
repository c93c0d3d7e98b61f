package main

import (
	"context"
	"log"
	"os"

	"github.com/afh/afh-platform/internal/api"
	"github.com/afh/afh-platform/internal/db"
	"github.com/joho/godotenv"
)

func main() {
	if err := godotenv.Load(); err != nil {
		log.Print("No .env file found, using environment")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	ctx := context.Background()
	pool, err := db.Connect(ctx)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	if pool != nil {
		defer pool.Close()
		log.Print("Database pool connected")
	}

	srv, err := api.NewServer(pool)
	if err != nil {
		log.Fatalf("Failed to initialize server: %v", err)
	}

	log.Printf("Server starting on port %s...", port)
	if err := srv.Start(port); err != nil {
		log.Fatal(err)
	}
}
