// Package testhelper starts a throwaway PostgreSQL for repository and e2e
// tests and seeds rows for them.
package testhelper

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
	_ "github.com/jackc/pgx/v5/stdlib" // pgx driver for database/sql
	"github.com/pressly/goose/v3"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/wait"

	"github.com/buildline/crm-backend/migrations"
)

var (
	once      sync.Once
	serverDSN string // DSN template with a %s placeholder for the database name
	sharedDSN string
	initErr   error
)

// SetupTestDB starts a shared PostgreSQL container (once for the entire test run),
// applies goose migrations, and returns a new pgxpool.Pool connected to it.
// Tests sharing this database must not assume tables are empty.
func SetupTestDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ensureServer(t)
	return connect(t, sharedDSN)
}

// SetupIsolatedDB creates a fresh, migrated database in the shared container
// for tests that need empty tables.
func SetupIsolatedDB(t *testing.T) *pgxpool.Pool {
	t.Helper()
	ensureServer(t)

	name := "t_" + strings.ReplaceAll(uuid.NewString(), "-", "")
	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	admin, err := sql.Open("pgx", fmt.Sprintf(serverDSN, "testdb"))
	if err != nil {
		t.Fatalf("testhelper: open admin connection: %v", err)
	}
	defer admin.Close()

	if _, err := admin.ExecContext(ctx, "CREATE DATABASE "+name); err != nil {
		t.Fatalf("testhelper: create database %s: %v", name, err)
	}

	dsn := fmt.Sprintf(serverDSN, name)
	if err := migrate(ctx, dsn); err != nil {
		t.Fatalf("testhelper: migrate %s: %v", name, err)
	}
	return connect(t, dsn)
}

func ensureServer(t *testing.T) {
	t.Helper()
	once.Do(func() {
		serverDSN, initErr = startContainer()
		if initErr != nil {
			return
		}
		sharedDSN = fmt.Sprintf(serverDSN, "testdb")
		ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
		defer cancel()
		initErr = migrate(ctx, sharedDSN)
	})
	if initErr != nil {
		t.Fatalf("testhelper: failed to setup test DB: %v", initErr)
	}
}

func connect(t *testing.T, dsn string) *pgxpool.Pool {
	t.Helper()

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	pool, err := pgxpool.New(ctx, dsn)
	if err != nil {
		t.Fatalf("testhelper: failed to create pgxpool: %v", err)
	}
	t.Cleanup(pool.Close)

	return pool
}

func startContainer() (string, error) {
	ctx, cancel := context.WithTimeout(context.Background(), 120*time.Second)
	defer cancel()

	req := testcontainers.ContainerRequest{
		Image:        "postgres:17-alpine",
		ExposedPorts: []string{"5432/tcp"},
		Env: map[string]string{
			"POSTGRES_USER":     "testuser",
			"POSTGRES_PASSWORD": "testpass",
			"POSTGRES_DB":       "testdb",
		},
		WaitingFor: wait.ForLog("database system is ready to accept connections").
			WithOccurrence(2).
			WithStartupTimeout(60 * time.Second),
	}

	container, err := testcontainers.GenericContainer(ctx, testcontainers.GenericContainerRequest{
		ContainerRequest: req,
		Started:          true,
	})
	if err != nil {
		return "", fmt.Errorf("start container: %w", err)
	}

	host, err := container.Host(ctx)
	if err != nil {
		return "", fmt.Errorf("get container host: %w", err)
	}

	port, err := container.MappedPort(ctx, "5432")
	if err != nil {
		return "", fmt.Errorf("get mapped port: %w", err)
	}

	return fmt.Sprintf("postgres://testuser:testpass@%s:%s/%%s?sslmode=disable", host, port.Port()), nil
}

// migrate applies goose migrations using database/sql (goose requires *sql.DB).
func migrate(ctx context.Context, dsn string) error {
	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("sql.Open: %w", err)
	}
	defer db.Close()

	if err := db.PingContext(ctx); err != nil {
		return fmt.Errorf("db ping: %w", err)
	}

	provider, err := goose.NewProvider(goose.DialectPostgres, db, migrations.FS)
	if err != nil {
		return fmt.Errorf("goose new provider: %w", err)
	}

	if _, err := provider.Up(ctx); err != nil {
		return fmt.Errorf("goose up: %w", err)
	}

	return nil
}
