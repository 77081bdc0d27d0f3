package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/jackc/pgx/v5"
	"github.com/joho/godotenv"
)

// Seeds the identifiers registry with the IDs given on the command
// line, so idcheck and the API have something to collide with.
func main() {
	// 1. Load Environment
	if err := godotenv.Load(".env.local"); err != nil {
		godotenv.Load()
	}

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	if len(os.Args) < 2 {
		log.Fatalf("Usage: %s <id> [<id> ...]", os.Args[0])
	}

	// 2. Connect to DB
	ctx := context.Background()
	conn, err := pgx.Connect(ctx, dbURL)
	if err != nil {
		log.Fatalf("Unable to connect to database: %v", err)
	}
	defer conn.Close(ctx)

	// 3. Insert IDs
	seeded := 0
	for _, arg := range os.Args[1:] {
		id, err := strconv.ParseUint(arg, 10, 64)
		if err != nil {
			log.Fatalf("Invalid id %q: %v", arg, err)
		}

		tag, err := conn.Exec(ctx,
			"INSERT INTO identifiers (id, source) VALUES ($1, 'seed') ON CONFLICT (id) DO NOTHING",
			int64(id),
		)
		if err != nil {
			log.Fatalf("Insert failed for id %d: %v", id, err)
		}
		if tag.RowsAffected() > 0 {
			fmt.Printf("Seeded ID: %d\n", id)
			seeded++
		} else {
			fmt.Printf("ID already present: %d\n", id)
		}
	}

	fmt.Printf("--- DONE (%d new) ---\n", seeded)
}
