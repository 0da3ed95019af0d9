package main

//go:generate swag init

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/spf13/cobra"
	httpSwagger "github.com/swaggo/http-swagger"

	"github.com/centerdesk/portal/config"
	_ "github.com/centerdesk/portal/docs"
	"github.com/centerdesk/portal/handlers"
	"github.com/centerdesk/portal/upstream"
)

//go:embed static/*
var staticFiles embed.FS

const version = "1.0.0"

// @title           CenterDesk Portal API
// @version         1.0.0
// @description     Staff dashboard API for service-center bookings, invoices, promotions, check reports, pricing, and wallet finances. Every resource is a thin gate in front of the platform REST API.
// @host            localhost:8080
// @BasePath        /api/v1

var configPath string

var rootCmd = &cobra.Command{
	Use:   "portal",
	Short: "CenterDesk service-center staff portal",
	Long: `CenterDesk is the staff-facing dashboard for service centers on the
platform: bookings, invoices, promotions, check reports, pricing, and
wallet finances. All business data lives on the platform API; the portal
validates, computes derived totals, localizes, and forwards.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		return serve()
	},
}

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the portal version",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Println("centerdesk portal", version)
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "portal.toml", "Path to the TOML config file")
	rootCmd.AddCommand(versionCmd)
}

func serve() error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}

	// Configure structured logging
	level := slog.LevelInfo
	if cfg.LogLevel == "debug" {
		level = slog.LevelDebug
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(os.Stdout, &slog.HandlerOptions{Level: level})))

	// Shared platform client for handlers
	handlers.Upstream = upstream.New(cfg.UpstreamBaseURL, cfg.UpstreamTimeout())
	handlers.OperatorRole = cfg.OperatorRole
	handlers.DefaultLanguage = cfg.DefaultLanguage

	// Router setup
	r := chi.NewRouter()
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middleware.Timeout(60 * time.Second))

	r.Get("/healthz", func(w http.ResponseWriter, req *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Mount("/api/v1", handlers.Router())

	if cfg.MetricsEnabled {
		r.Handle("/metrics", promhttp.Handler())
	}

	// Swagger UI
	r.Get("/swagger/*", httpSwagger.WrapHandler)

	// Serve static files (UI shell)
	staticFS, _ := fs.Sub(staticFiles, "static")
	r.Handle("/*", http.FileServer(http.FS(staticFS)))

	server := &http.Server{
		Addr:              cfg.Address(),
		Handler:           r,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       15 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	go func() {
		slog.Info("portal starting", "address", cfg.Address(), "upstream", cfg.UpstreamBaseURL)
		if err := server.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			slog.Error("server failed", "error", err)
			os.Exit(1)
		}
	}()

	sig := make(chan os.Signal, 1)
	signal.Notify(sig, syscall.SIGINT, syscall.SIGTERM)
	<-sig

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 8*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		slog.Error("shutdown error", "error", err)
	}
	slog.Info("portal stopped")
	return nil
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
