package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	sdkmcp "github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/rpggio/scholarships/internal/config"
	"github.com/rpggio/scholarships/internal/domain/activity"
	"github.com/rpggio/scholarships/internal/domain/finder"
	"github.com/rpggio/scholarships/internal/domain/recommend"
	"github.com/rpggio/scholarships/internal/domain/scholarship"
	"github.com/rpggio/scholarships/internal/genai"
	"github.com/rpggio/scholarships/internal/mcp"
	"github.com/rpggio/scholarships/internal/sqlite"
	"github.com/rpggio/scholarships/internal/transport"
	"golang.org/x/sync/errgroup"
)

const version = "0.1.0"

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	// Use stderr for logs in stdio mode to keep stdout clean for JSON-RPC.
	logWriter := io.Writer(os.Stdout)
	if cfg.Transport.Mode == config.TransportStdio {
		logWriter = os.Stderr
	}
	if logPath := os.Getenv("SCHOLARSHIPS_LOG_PATH"); logPath != "" {
		fileWriter, file, err := newLogFileWriter(logPath)
		if err != nil {
			fmt.Fprintf(os.Stderr, "log file error: %v\n", err)
		} else {
			defer file.Close()
			logWriter = fileWriter
		}
	}
	logger := slog.New(slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		Level: parseLogLevel(cfg.Log.Level),
	}))

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, cfg, logger); err != nil {
		logger.Error("server failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, cfg config.Config, logger *slog.Logger) error {
	records, source, err := loadRecords(cfg.Records)
	if err != nil {
		return fmt.Errorf("load records: %w", err)
	}

	if err := ensureDBDir(cfg.DB.Path); err != nil {
		return fmt.Errorf("prepare database path: %w", err)
	}

	db, err := sqlite.New(cfg.DB.Path)
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.RunMigrations(); err != nil {
		return err
	}

	scholarshipRepo := sqlite.NewScholarshipRepository(db)
	searchRepo := sqlite.NewSearchRepository(db)
	activityRepo := sqlite.NewActivityRepository(db)

	if err := scholarshipRepo.ReplaceAll(ctx, records); err != nil {
		return fmt.Errorf("store records: %w", err)
	}

	activitySvc := activity.NewService(activityRepo, logger)
	if err := activitySvc.LogActivity(ctx, &activity.ActivityEntry{
		ActivityType: activity.TypeRecordsLoaded,
		Summary:      fmt.Sprintf("%d scholarships from %s", len(records), source),
	}); err != nil {
		logger.Warn("failed to log record load", "error", err)
	}
	logger.Info("records loaded", "count", len(records), "source", source)

	generator, err := newGenerator(ctx, cfg.Generator)
	if err != nil {
		return err
	}

	finderSvc := finder.NewService(scholarshipRepo, searchRepo, activityRepo, logger)
	recommendSvc := recommend.NewService(generator, activityRepo, cfg.Generator.Timeout, logger)
	services := mcp.Services{
		Finder:      finderSvc,
		Recommender: recommendSvc,
		Activity:    activitySvc,
	}

	mcpServer := mcp.NewServer(mcp.Config{
		Services:      services,
		TransportMode: cfg.Transport.Mode,
		Logger:        logger,
		UpcomingDays:  cfg.Calendar.UpcomingDays,
		Version:       version,
	})

	if cfg.Transport.Mode == config.TransportStdio {
		return runStdioMode(ctx, logger, mcpServer)
	}

	mcpHandler := sdkmcp.NewStreamableHTTPHandler(
		func(r *http.Request) *sdkmcp.Server { return mcpServer },
		&sdkmcp.StreamableHTTPOptions{
			Stateless:      false,
			SessionTimeout: 30 * time.Minute,
		},
	)
	router := transport.NewServer(transport.Config{
		RPC:          mcp.NewHandler(services, nil, cfg.Calendar.UpcomingDays),
		Finder:       finderSvc,
		Recommender:  recommendSvc,
		Activity:     activitySvc,
		MCP:          mcpHandler,
		UpcomingDays: cfg.Calendar.UpcomingDays,
		Logger:       logger,
	})
	return runHTTPMode(ctx, logger, router, cfg.Server.Host, cfg.Server.Port)
}

// loadRecords reads the configured record set and validates every due date.
// It returns the records and a description of where they came from.
func loadRecords(cfg config.RecordsConfig) ([]scholarship.Record, string, error) {
	if cfg.File != "" {
		records, err := scholarship.LoadFile(cfg.File)
		if err != nil {
			return nil, "", err
		}
		return records, cfg.File, nil
	}
	records, err := scholarship.LoadCatalog(cfg.Catalog)
	if err != nil {
		return nil, "", err
	}
	return records, "catalog " + cfg.Catalog, nil
}

// newGenerator returns nil when no provider is configured; recommendations
// then report unavailable.
func newGenerator(ctx context.Context, cfg config.GeneratorConfig) (recommend.Generator, error) {
	switch cfg.Provider {
	case config.ProviderGenAI:
		gen, err := genai.NewGenerator(ctx, cfg.APIKey, cfg.Model, cfg.MaxTokens)
		if err != nil {
			return nil, fmt.Errorf("create generator: %w", err)
		}
		return gen, nil
	default:
		return nil, nil
	}
}

func runStdioMode(ctx context.Context, logger *slog.Logger, mcpServer *sdkmcp.Server) error {
	logger.Info("starting stdio transport")

	// Run blocks until stdin closes or context is canceled
	if err := mcpServer.Run(ctx, &sdkmcp.StdioTransport{}); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("stdio server: %w", err)
	}
	logger.Info("shutting down")
	return nil
}

func runHTTPMode(ctx context.Context, logger *slog.Logger, handler http.Handler, host string, port int) error {
	addr := fmt.Sprintf("%s:%d", host, port)
	httpServer := &http.Server{
		Addr:              addr,
		Handler:           handler,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		logger.Info("server listening", "addr", addr)
		if err := httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		logger.Info("shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		return httpServer.Shutdown(shutdownCtx)
	})
	return g.Wait()
}

func ensureDBDir(path string) error {
	if path == sqlite.MemoryDSN || path == "" {
		return nil
	}
	dir := filepath.Dir(path)
	if dir == "." {
		return nil
	}
	return os.MkdirAll(dir, 0o755)
}

func parseLogLevel(level string) slog.Level {
	switch level {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}
