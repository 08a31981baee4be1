package main

import (
	"context"
	"flag"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"jobboard/internal/config"
	"jobboard/internal/database/migration"
	dbpostgres "jobboard/internal/database/postgres"
	"jobboard/internal/pkg/logging"
)

// migrate applies the job schema migrations without starting the server.
func main() {
	os.Exit(run(os.Args[1:], os.Stderr))
}

// run returns the process exit code. Deferred cleanup has finished by the
// time it returns.
func run(args []string, stderr io.Writer) int {
	fs := flag.NewFlagSet("migrate", flag.ContinueOnError)
	fs.SetOutput(stderr)
	dir := fs.String("dir", "", "read migrations from this directory instead of the bundled ones")
	timeout := fs.Duration("timeout", 2*time.Minute, "overall timeout")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load()
	if err != nil {
		log.Printf("failed to load config: %v", err)
		return 1
	}
	if cfg.App.StorageDriver != config.StorageDriverPostgres {
		log.Printf("STORAGE_DRIVER=%s has no schema to migrate", cfg.App.StorageDriver)
		return 1
	}

	logger := logging.New(cfg.App.LogLevel).With("component", "migrate")
	defer func() { _ = logger.Sync() }()

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	db, err := dbpostgres.Connect(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect database", "err", err)
		return 1
	}
	defer func() { _ = db.Close() }()

	r := migration.Runner{}
	if d := strings.TrimSpace(*dir); d != "" {
		r = migration.Runner{FS: os.DirFS(d), Dir: "."}
	}

	start := time.Now()
	if err := r.Run(ctx, db.SQLDB()); err != nil {
		logger.Error("migration failed", "err", err)
		return 1
	}
	logger.Info("migrations up to date", "took", time.Since(start).String())
	return 0
}
