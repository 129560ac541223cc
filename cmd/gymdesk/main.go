package main

import (
	"context"
	"database/sql"
	"log"
	"log/slog"
	"os"
	"time"

	_ "modernc.org/sqlite"

	"gymdesk/internal/adapters/storage"
	membershipStore "gymdesk/internal/adapters/storage/membership"
	userStore "gymdesk/internal/adapters/storage/user"
	"gymdesk/internal/application/orchestrators"
	"gymdesk/internal/config"
)

// version is set at build time via -ldflags "-X main.version=..."
var version = "dev"

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	logLevel := slog.LevelInfo
	if cfg.DBDebug {
		logLevel = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel})))

	db, err := sql.Open("sqlite", cfg.DSN())
	if err != nil {
		log.Fatalf("failed to open database: %v", err)
	}
	defer db.Close()

	// Connection pool settings for WAL mode
	db.SetMaxOpenConns(cfg.MaxOpenConns)
	db.SetMaxIdleConns(cfg.MaxIdleConns)

	if err := db.Ping(); err != nil {
		log.Fatalf("database unreachable: %v", err)
	}
	if err := storage.InitDB(db); err != nil {
		log.Fatalf("failed to initialize database: %v", err)
	}

	timedDB := storage.NewTimedDB(db)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	// Seed the bootstrap admin login if no users exist
	if err := orchestrators.ExecuteSeedAdmin(ctx, orchestrators.SeedAdminInput{
		Username: cfg.AdminUsername,
		Email:    cfg.AdminEmail,
		Password: cfg.AdminPassword,
	}, orchestrators.SeedAdminDeps{
		UserStore: userStore.NewSQLiteStore(timedDB),
		Now:       time.Now,
	}); err != nil {
		log.Fatalf("failed to seed admin: %v", err)
	}
	if !cfg.IsProduction() && cfg.AdminPassword == "change-me-now" {
		slog.Warn("startup", "event", "default_admin_password",
			"hint", "set GYMDESK_ADMIN_PASSWORD before going to production")
	}

	// Seed the default membership plans if none exist
	if err := orchestrators.ExecuteSeedMembershipTypes(ctx, orchestrators.SeedMembershipTypesDeps{
		MembershipStore: membershipStore.NewSQLiteStore(timedDB),
	}); err != nil {
		log.Fatalf("failed to seed membership types: %v", err)
	}

	slog.Info("startup", "event", "ready",
		"version", version, "db_path", cfg.DBPath, "env", cfg.Env)
}
