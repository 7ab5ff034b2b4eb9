package integration

import (
	"context"
	"fmt"
	"io/fs"
	"net/http/httptest"
	"time"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	"gorm.io/gorm"

	migrations "github.com/sivamani2003/accesshub/db"
	"github.com/sivamani2003/accesshub/pkg/config"
	"github.com/sivamani2003/accesshub/pkg/db"
	"github.com/sivamani2003/accesshub/pkg/server"
	"github.com/sivamani2003/accesshub/pkg/server/endpoints"
	"github.com/sivamani2003/accesshub/pkg/token"
)

// TestContext holds the resources shared by the integration tests: a
// PostgreSQL container with the schema applied and an in-process API server.
type TestContext struct {
	DB          *gorm.DB
	Container   testcontainers.Container
	Server      *server.Server
	HTTPServer  *httptest.Server
	ServerURL   string
	DatabaseURL string
}

// NewTestContext starts a PostgreSQL container, applies all migrations, and
// serves the API in-process.
func NewTestContext(ctx context.Context) (*TestContext, error) {
	pgContainer, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("accesshub_test"),
		tcpostgres.WithUsername("accesshub"),
		tcpostgres.WithPassword("accesshub"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second),
		),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to start postgres container: %w", err)
	}

	host, err := pgContainer.Host(ctx)
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container host: %w", err)
	}
	port, err := pgContainer.MappedPort(ctx, "5432")
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to get container port: %w", err)
	}
	connStr := fmt.Sprintf("postgres://accesshub:accesshub@%s:%s/accesshub_test?sslmode=disable", host, port.Port())

	if err := applyMigrations(connStr); err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, err
	}

	database, err := db.Connect(db.Config{URL: connStr})
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	cfg, err := config.Load()
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	signer, err := token.NewSigner([]byte("integration-test-session-key-0123456789"), cfg.TokenTTL())
	if err != nil {
		_ = pgContainer.Terminate(ctx)
		return nil, fmt.Errorf("failed to create signer: %w", err)
	}

	s := server.NewServer(database, signer, cfg)
	endpoints.RegisterAll(s)

	httpServer := httptest.NewServer(s.Router)

	return &TestContext{
		DB:          database,
		Container:   pgContainer,
		Server:      s,
		HTTPServer:  httpServer,
		ServerURL:   httpServer.URL,
		DatabaseURL: connStr,
	}, nil
}

func applyMigrations(connStr string) error {
	migrationsFS, err := fs.Sub(migrations.Migrations, "migrations")
	if err != nil {
		return fmt.Errorf("failed to get embedded migrations: %w", err)
	}

	d, err := iofs.New(migrationsFS, ".")
	if err != nil {
		return fmt.Errorf("failed to create iofs driver: %w", err)
	}

	m, err := migrate.NewWithSourceInstance("iofs", d, connStr)
	if err != nil {
		return fmt.Errorf("failed to create migrate instance: %w", err)
	}
	defer func() { _, _ = m.Close() }()

	if err := m.Up(); err != nil && err != migrate.ErrNoChange {
		return fmt.Errorf("failed to apply migrations: %w", err)
	}
	return nil
}

// Close tears down the HTTP server and the container.
func (tc *TestContext) Close(ctx context.Context) {
	if tc.HTTPServer != nil {
		tc.HTTPServer.Close()
	}
	if tc.Container != nil {
		_ = tc.Container.Terminate(ctx)
	}
}
