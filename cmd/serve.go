package cmd

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/spf13/cobra"

	authService "ecoclean/internal/application/auth"
	deviceService "ecoclean/internal/application/device"
	tipService "ecoclean/internal/application/tip"
	"ecoclean/internal/delivery/http/handler"
	"ecoclean/internal/delivery/http/router"
	"ecoclean/internal/infrastructure/config"
	"ecoclean/internal/infrastructure/database"
	"ecoclean/internal/infrastructure/logger"
	"ecoclean/internal/infrastructure/repository"
)

const (
	shutdownTimeout   = 10 * time.Second
	readHeaderTimeout = 10 * time.Second
	idleTimeout       = 2 * time.Minute
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := config.Load()
		if port, _ := cmd.Flags().GetString("port"); port != "" {
			cfg.Port = port
		}
		return serve(cmd, cfg)
	},
}

func init() {
	serveCmd.Flags().String("port", "", "Listen port (overrides PORT)")
}

func serve(cmd *cobra.Command, cfg *config.Config) error {
	_, logFile, err := logger.Setup(cfg)
	if err != nil {
		return err
	}
	defer logFile.Close()

	// Initialize database
	db, err := database.New(cfg.DatabasePath)
	if err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	defer db.Close()

	if err := db.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	// Initialize repositories
	usageRepo := repository.NewUsageRepository(db)
	tipRepo := repository.NewTipRepository(db)

	// Initialize services
	bridge := newPlatform(cfg, usageRepo)
	deviceSvc := deviceService.NewService(bridge)
	tipSvc := tipService.NewService(newGenerator(cmd.Context(), cfg), tipRepo, tipTimeout(cfg))
	authSvc := authService.NewService(cfg.APITokenHash)
	if !authSvc.Enabled() {
		slog.Warn("API_TOKEN_HASH is not set, the API is unauthenticated")
	}

	// Setup routes
	handlers := router.Handlers{
		Device: handler.NewDeviceHandler(deviceSvc),
		App:    handler.NewAppHandler(deviceSvc, usageRepo),
		Tip:    handler.NewTipHandler(tipSvc),
	}
	mux := router.Setup(handlers, authSvc, cfg.AllowedOrigins)

	// Start server
	addr := fmt.Sprintf(":%s", cfg.Port)
	fmt.Println("=================================")
	fmt.Println("        EcoClean Server")
	fmt.Println("=================================")
	fmt.Printf("Server:    http://localhost%s\n", addr)
	fmt.Printf("Data:      %s\n", cfg.DataPath)
	fmt.Printf("Database:  %s\n", cfg.DatabasePath)
	if authSvc.Enabled() {
		fmt.Println("Auth:      Enabled")
	}
	fmt.Println("=================================")

	srv := newServer(addr, mux)
	go func() {
		<-cmd.Context().Done()
		ctx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(ctx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	slog.Info("Server starting", "addr", addr)
	if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	slog.Info("Server stopped")
	return nil
}

func newServer(addr string, h http.Handler) *http.Server {
	return &http.Server{
		Addr:              addr,
		Handler:           h,
		ReadHeaderTimeout: readHeaderTimeout,
		IdleTimeout:       idleTimeout,
	}
}
