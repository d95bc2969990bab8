package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net"
	"net/http"
	"strconv"

	"github.com/jonboulle/clockwork"
	"golang.org/x/sync/errgroup"

	"github.com/heartmarshall/tagebuch-backend/internal/adapter/kafka"
	"github.com/heartmarshall/tagebuch-backend/internal/adapter/postgres"
	"github.com/heartmarshall/tagebuch-backend/internal/adapter/provider/translate"
	"github.com/heartmarshall/tagebuch-backend/internal/auth"
	"github.com/heartmarshall/tagebuch-backend/internal/config"
	"github.com/heartmarshall/tagebuch-backend/internal/transport/middleware"
	"github.com/heartmarshall/tagebuch-backend/internal/transport/rest"
	"github.com/heartmarshall/tagebuch-backend/migrations"
)

// Run is the application entry point. It loads configuration, connects to
// the database, applies migrations, wires services and serves HTTP until
// ctx is cancelled.
func Run(ctx context.Context) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	logger := NewLogger(cfg.Log)
	logger.Info("starting application",
		slog.String("version", BuildVersion()),
		slog.String("log_level", cfg.Log.Level),
		slog.String("timezone", cfg.Journal.Timezone),
	)

	pool, err := postgres.NewPool(ctx, cfg.Database)
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer pool.Close()

	if cfg.Database.AutoMigrate {
		if err := postgres.Migrate(ctx, pool, migrations.FS, logger); err != nil {
			return fmt.Errorf("migrate: %w", err)
		}
	}

	events, closeEvents := newEventPublisher(cfg.Kafka, logger)
	defer closeEvents()

	svc := NewServices(cfg, pool, events, clockwork.NewRealClock(), logger)

	var tr interface {
		Translate(ctx context.Context, text, target string) (string, error)
	} = translate.NewStub()
	if cfg.Translate.GeminiAPIKey != "" {
		tr = translate.NewGemini(cfg.Translate, logger)
	} else {
		logger.Warn("translation disabled: no gemini api key configured")
	}

	metricsPath := ""
	if cfg.Metrics.Enabled {
		metricsPath = cfg.Metrics.Path
	}

	mux := rest.NewRouter(rest.Handlers{
		Health:     rest.NewHealthHandler(pool, BuildVersion()),
		Journal:    rest.NewJournalHandler(svc.Journal, logger),
		Vocabulary: rest.NewVocabularyHandler(svc.Vocabulary, logger),
		Progress:   rest.NewProgressHandler(svc.Progress, logger),
		Phrases:    rest.NewPhraseHandler(svc.Phrases, logger),
		Notes:      rest.NewNoteHandler(svc.Notes, logger),
		Settings:   rest.NewSettingsHandler(svc.Settings, logger),
		Search:     rest.NewSearchHandler(svc.Search, logger),
		Translate:  rest.NewTranslateHandler(tr, logger),
		Data:       rest.NewDataHandler(svc.Backup, logger),
	}, metricsPath)

	mws := []middleware.Middleware{
		middleware.Recovery(logger),
		middleware.RequestID,
		middleware.Logger(logger),
		middleware.CORS(cfg.CORS),
	}
	if cfg.Auth.Enabled() {
		jwt := auth.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.TokenTTL)
		mws = append(mws, middleware.Auth(jwt, "/live", "/ready", "/health", metricsPath))
	} else {
		logger.Warn("api authentication disabled: no jwt secret configured")
	}
	mws = append(mws, middleware.Metrics)

	srv := &http.Server{
		Addr:         net.JoinHostPort(cfg.Server.Host, strconv.Itoa(cfg.Server.Port)),
		Handler:      middleware.Chain(mws...)(mux),
		ReadTimeout:  cfg.Server.ReadTimeout,
		WriteTimeout: cfg.Server.WriteTimeout,
		IdleTimeout:  cfg.Server.IdleTimeout,
		ErrorLog:     slog.NewLogLogger(logger.Handler(), slog.LevelError),
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("http server listening", slog.String("addr", srv.Addr))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), cfg.Server.ShutdownTimeout)
		defer cancel()

		logger.Info("shutting down http server")
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("http shutdown: %w", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}
	logger.Info("application stopped")
	return nil
}

// newEventPublisher returns a Kafka publisher, or a no-op one when no
// brokers are configured.
func newEventPublisher(cfg config.KafkaConfig, logger *slog.Logger) (EventPublisher, func()) {
	brokers := cfg.KafkaBrokers()
	if len(brokers) == 0 {
		logger.Info("event publishing disabled: no kafka brokers configured")
		return kafka.NopPublisher{}, func() {}
	}

	p := kafka.NewPublisher(brokers, cfg.Topic, logger)
	return p, func() {
		if err := p.Close(); err != nil {
			logger.Error("close kafka publisher", slog.String("error", err.Error()))
		}
	}
}
