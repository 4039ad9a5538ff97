package main

import (
	"context"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/joho/godotenv"

	"github.com/me/jobdesk/internal/auth"
	"github.com/me/jobdesk/internal/config"
	"github.com/me/jobdesk/internal/logging"
	"github.com/me/jobdesk/internal/store"
	"github.com/me/jobdesk/internal/ui"
	"github.com/me/jobdesk/pkg/jobportal"
)

func main() {
	// A .env in the working directory feeds the JOBDESK_* variables.
	_ = godotenv.Load()

	configFile := flag.String("config", "", "Path to config file (default ~/.jobdesk/config.yaml)")
	addr := flag.String("addr", "", "Listen address")
	apiURL := flag.String("api", "", "Job portal API URL")
	dbPath := flag.String("db", "", "Database path (default ~/.jobdesk/jobdesk.db)")
	logLevel := flag.String("log-level", "", "Log level (debug, info, warn, error)")
	logFormat := flag.String("log-format", "", "Log format (text, json)")
	debug := flag.Bool("debug", false, "Shorthand for --log-level=debug")
	flag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}

	// Flags win over file and env.
	if *addr != "" {
		cfg.Addr = *addr
	}
	if *apiURL != "" {
		cfg.APIBaseURL = *apiURL
	}
	if *dbPath != "" {
		cfg.DBPath = *dbPath
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	if *logFormat != "" {
		cfg.LogFormat = *logFormat
	}
	if *debug {
		cfg.LogLevel = "debug"
	}

	logger := logging.New(logging.ParseLevel(cfg.LogLevel), cfg.LogFormat)

	resolvedDB, err := cfg.ResolveDBPath()
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	st, err := store.NewSQLiteStore(resolvedDB, logger)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open database: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	if err := st.Migrate(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "migrate database: %v\n", err)
		os.Exit(1)
	}
	logger.Info("database ready", "path", resolvedDB)

	client := jobportal.NewClient(jobportal.DefaultConfig().WithBaseURL(cfg.APIBaseURL), logger)
	sessions := auth.NewManager(client, auth.NewTokenStore(st), logger)

	web := ui.New(sessions, client, logger, ui.Config{GoogleClientID: cfg.GoogleClientID})

	r := chi.NewRouter()
	r.Use(middleware.RealIP)
	r.Use(middleware.Recoverer)
	web.RegisterRoutes(r)

	httpServer := &http.Server{
		Addr:    cfg.Addr,
		Handler: r,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	// Restore the persisted session in the background so the first
	// page load is not blocked on the portal.
	go sessions.Resume(ctx)

	go func() {
		logger.Info("server starting", "addr", cfg.Addr, "portal", cfg.APIBaseURL)
		if err := httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			logger.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	<-ctx.Done()
	logger.Info("shutting down")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := httpServer.Shutdown(shutdownCtx); err != nil {
		fmt.Fprintf(os.Stderr, "shutdown error: %v\n", err)
		os.Exit(1)
	}
	logger.Info("server stopped")
}
