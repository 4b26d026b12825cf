package config

import (
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

func testLogger(level slog.Level) *slog.Logger {
	return slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level}))
}

func sqliteConfig(path string, pool PoolConfig) *DatabaseConfig {
	return &DatabaseConfig{
		Driver: "sqlite",
		SQLite: SQLiteConfig{Path: path},
		Pool:   pool,
	}
}

func TestSetupDatabase_SQLite(t *testing.T) {
	// A nested path: the data directory must be created on demand.
	dbPath := filepath.Join(t.TempDir(), "data", "tourbase.db")

	cfg := sqliteConfig(dbPath, PoolConfig{
		MaxIdleConns:    10,
		MaxOpenConns:    100,
		ConnMaxLifetime: "1h",
	})

	db, err := SetupDatabase(cfg, testLogger(slog.LevelDebug))
	if err != nil {
		t.Fatalf("SetupDatabase() error = %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB() error = %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if err := sqlDB.Ping(); err != nil {
		t.Fatalf("Ping() error = %v", err)
	}
	if _, err := os.Stat(dbPath); err != nil {
		t.Errorf("expected database file at %s: %v", dbPath, err)
	}
	if stats := sqlDB.Stats(); stats.MaxOpenConnections != 100 {
		t.Errorf("MaxOpenConnections = %d; want 100", stats.MaxOpenConnections)
	}
}

func TestSetupDatabase_TimestampsAreUTC(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tourbase.db")

	db, err := SetupDatabase(sqliteConfig(dbPath, PoolConfig{}), testLogger(slog.LevelInfo))
	if err != nil {
		t.Fatalf("SetupDatabase() error = %v", err)
	}
	if sqlDB, err := db.DB(); err == nil {
		t.Cleanup(func() { sqlDB.Close() })
	}

	if loc := db.Config.NowFunc().Location(); loc != time.UTC {
		t.Errorf("NowFunc location = %v; want UTC", loc)
	}
}

func TestSetupDatabase_PoolDefaults(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "tourbase.db")

	// All-zero pool settings fall back to the documented defaults.
	db, err := SetupDatabase(sqliteConfig(dbPath, PoolConfig{}), testLogger(slog.LevelInfo))
	if err != nil {
		t.Fatalf("SetupDatabase() error = %v", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		t.Fatalf("db.DB() error = %v", err)
	}
	t.Cleanup(func() { sqlDB.Close() })

	if stats := sqlDB.Stats(); stats.MaxOpenConnections != 100 {
		t.Errorf("MaxOpenConnections = %d; want 100 (default)", stats.MaxOpenConnections)
	}
}

func TestSetupDatabase_UnsupportedDriver(t *testing.T) {
	_, err := SetupDatabase(&DatabaseConfig{Driver: "mongodb"}, testLogger(slog.LevelInfo))
	if err == nil {
		t.Fatal("SetupDatabase() expected error for unsupported driver, got nil")
	}
	if !strings.Contains(err.Error(), "mongodb") {
		t.Errorf("error = %q; want it to name the driver", err.Error())
	}
}

func TestSetupDatabase_BadConnMaxLifetime(t *testing.T) {
	tests := []struct {
		name     string
		lifetime string
	}{
		{"unparseable", "soon"},
		{"negative", "-1s"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dbPath := filepath.Join(t.TempDir(), "tourbase.db")
			cfg := sqliteConfig(dbPath, PoolConfig{ConnMaxLifetime: tt.lifetime})

			_, err := SetupDatabase(cfg, testLogger(slog.LevelInfo))
			if err == nil {
				t.Fatal("SetupDatabase() expected error, got nil")
			}
			if !strings.Contains(err.Error(), "conn_max_lifetime") {
				t.Fatalf("error = %v; want it to name conn_max_lifetime", err)
			}
		})
	}
}

func TestSetupDatabase_NilArguments(t *testing.T) {
	if _, err := SetupDatabase(nil, testLogger(slog.LevelInfo)); err == nil {
		t.Error("SetupDatabase(nil config) expected error, got nil")
	}
	if _, err := SetupDatabase(sqliteConfig("x.db", PoolConfig{}), nil); err == nil {
		t.Error("SetupDatabase(nil logger) expected error, got nil")
	}
}

func TestEffectivePoolDefaults(t *testing.T) {
	if got := effectiveMaxIdleConns(0); got != 10 {
		t.Errorf("effectiveMaxIdleConns(0) = %d; want 10", got)
	}
	if got := effectiveMaxIdleConns(3); got != 3 {
		t.Errorf("effectiveMaxIdleConns(3) = %d; want 3", got)
	}
	if got := effectiveMaxOpenConns(0); got != 100 {
		t.Errorf("effectiveMaxOpenConns(0) = %d; want 100", got)
	}
	if got := effectiveConnMaxLifetime(""); got != "1h" {
		t.Errorf("effectiveConnMaxLifetime(empty) = %q; want 1h", got)
	}
	if got := effectiveConnMaxLifetime("   "); got != "1h" {
		t.Errorf("effectiveConnMaxLifetime(blank) = %q; want 1h", got)
	}
	if got := effectiveConnMaxLifetime("45m"); got != "45m" {
		t.Errorf("effectiveConnMaxLifetime(45m) = %q; want 45m", got)
	}
}

func TestBuildPostgresDSN(t *testing.T) {
	dsn := buildPostgresDSN(&PostgresConfig{
		Host:     "db.internal",
		Port:     5432,
		User:     "tourbase",
		Password: "s3cret",
		DBName:   "tourbase",
		SSLMode:  "require",
	})

	for _, part := range []string{"postgres://", "tourbase:s3cret@", "db.internal:5432", "/tourbase", "sslmode=require"} {
		if !strings.Contains(dsn, part) {
			t.Errorf("dsn = %q; want it to contain %q", dsn, part)
		}
	}

	if got := buildPostgresDSN(nil); got != "" {
		t.Errorf("buildPostgresDSN(nil) = %q; want empty", got)
	}
}
