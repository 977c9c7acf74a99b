// Command promote sets a user's role to admin by email address.
// It is used to bootstrap the first admin user.
//
// Usage:
//
//	promote --email=user@example.com
//
// Reads the same configuration as the server; DATABASE_DSN is required.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/buildline/crm-backend/internal/adapter/postgres"
	"github.com/buildline/crm-backend/internal/adapter/postgres/user"
	"github.com/buildline/crm-backend/internal/config"
	"github.com/buildline/crm-backend/internal/domain"
)

func main() {
	email := flag.String("email", "", "email of user to promote to admin")
	path := flag.String("config", os.Getenv("CONFIG_PATH"), "path to the YAML config file")
	flag.Parse()

	if *email == "" {
		fmt.Fprintln(os.Stderr, "Usage: promote --email=user@example.com")
		os.Exit(1)
	}

	cfg, err := config.LoadFile(*path)
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))
	pool, err := postgres.NewPool(ctx, cfg.Database, logger)
	if err != nil {
		log.Fatalf("connect to database: %v", err)
	}
	defer pool.Close()

	changed, err := user.New(pool).SetRole(ctx, domain.NormalizeEmail(*email), domain.UserRoleAdmin)
	if err != nil {
		log.Fatalf("update role: %v", err)
	}

	if !changed {
		fmt.Printf("No user found with email %q, or already admin.\n", *email)
		os.Exit(1)
	}

	fmt.Printf("User %q promoted to admin.\n", *email)
}
