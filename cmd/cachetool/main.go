package main

import (
	"context"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/joho/godotenv"

	"trip-planner/internal/adapters/cache"
	"trip-planner/internal/config"
	"trip-planner/internal/platform/db"
)

// cachetool manages the shared Postgres cache: "init" creates the
// schema, "prune" drops route entries older than the TTL.
func main() {
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found (using environment variables)")
	}

	databaseURL := os.Getenv("DATABASE_URL")
	if strings.TrimSpace(databaseURL) == "" {
		log.Fatal("DATABASE_URL is required")
	}

	command := "init"
	if len(os.Args) > 1 {
		command = os.Args[1]
	}

	ctx := context.Background()
	conn, err := db.Open(ctx, databaseURL)
	if err != nil {
		log.Fatal(err)
	}
	defer conn.Close()

	switch command {
	case "init":
		log.Println("Initializing cache schema...")
		if err := cache.InitSchema(conn); err != nil {
			log.Fatalf("schema initialization failed: %v", err)
		}
		log.Println("Cache schema ready.")

	case "prune":
		ttlMS, err := strconv.Atoi(config.Get("ROUTE_TTL_MS", "600000"))
		if err != nil {
			log.Fatalf("invalid ROUTE_TTL_MS: %v", err)
		}

		cutoff := time.Now().UnixMilli() - int64(ttlMS)
		res, err := conn.ExecContext(ctx, `DELETE FROM route_cache WHERE created_at <= $1;`, cutoff)
		if err != nil {
			log.Fatalf("prune failed: %v", err)
		}

		removed, _ := res.RowsAffected()
		log.Printf("Pruned %d expired route entries.", removed)

	default:
		log.Fatalf("unknown command %q (want init or prune)", command)
	}
}
