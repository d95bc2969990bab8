// Command import restores a backup file produced by GET /api/data/export.
// Entries are replayed through the journal write path, so vocabulary and
// progress are rebuilt exactly as the server would build them.
//
// Flags:
//
//	--file  path to the backup JSON (required)
//	--mode  merge or replace (default: merge)
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"context"
	"flag"
	"log"
	"log/slog"
	"os"
	"time"

	"github.com/jonboulle/clockwork"

	"github.com/heartmarshall/tagebuch-backend/internal/adapter/kafka"
	"github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagebuch-backend/internal/app"
	"github.com/heartmarshall/tagebuch-backend/internal/config"
	"github.com/heartmarshall/tagebuch-backend/internal/service/backup"
	"github.com/heartmarshall/tagebuch-backend/migrations"
)

func main() {
	file := flag.String("file", "", "path to backup JSON file")
	mode := flag.String("mode", string(backup.ModeMerge), "import mode: merge or replace")
	flag.Parse()

	if *file == "" {
		log.Fatal("--file is required")
	}

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	logger := app.NewLogger(cfg.Log)

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
	defer cancel()

	f, err := os.Open(*file)
	if err != nil {
		logger.Error("open backup", slog.String("file", *file), slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer f.Close()

	doc, err := backup.Decode(f)
	if err != nil {
		logger.Error("decode backup", slog.String("file", *file), slog.String("error", err.Error()))
		os.Exit(1)
	}

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		logger.Error("connect to database", slog.String("error", err.Error()))
		os.Exit(1)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			logger.Error("migrate", slog.String("error", err.Error()))
			os.Exit(1)
		}
	}

	// Imported entries are history, not new writing: no events.
	svc := app.NewServices(cfg, pool, kafka.NopPublisher{}, clockwork.NewRealClock(), logger)

	start := time.Now()
	report, err := svc.Backup.Import(ctx, doc, backup.Mode(*mode))
	if err != nil {
		logger.Error("import failed", slog.String("error", err.Error()))
		os.Exit(1)
	}

	for _, msg := range report.Errors {
		logger.Warn("record skipped", slog.String("reason", msg))
	}
	logger.Info("import completed",
		slog.String("mode", *mode),
		slog.Int("journal_entries", report.Imported.JournalEntries),
		slog.Int("vocabulary", report.Imported.Vocabulary),
		slog.Int("custom_phrases", report.Imported.CustomPhrases),
		slog.Int("notes", report.Imported.Notes),
		slog.Int("progress_days", report.Imported.ProgressStats),
		slog.Int("skipped_entries", report.Skipped.JournalEntries),
		slog.Int("errors", len(report.Errors)),
		slog.Duration("duration", time.Since(start)),
	)
}
