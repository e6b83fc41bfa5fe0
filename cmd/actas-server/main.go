package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/config"
	"github.com/mikepea/actas/pkg/actas/database"
	"github.com/mikepea/actas/pkg/actas/logging"
	"github.com/mikepea/actas/pkg/actas/mail"
	"github.com/mikepea/actas/pkg/actas/metrics"
	"github.com/mikepea/actas/pkg/actas/models"
	"github.com/mikepea/actas/pkg/actas/oidc"
	"github.com/mikepea/actas/pkg/actas/server"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// @title Actas API
// @version 1.0
// @description Meeting minutes, projects and follow-up for construction works.

// @contact.name Actas Support
// @contact.url https://github.com/mikepea/actas

// @license.name MIT
// @license.url https://opensource.org/licenses/MIT

// @host localhost:8080
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT token. Format: "Bearer {token}"

var (
	configPath string
	version    = "dev"
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "actas-server",
	Short: "Meeting minutes server",
	Long: `actas-server serves the Actas API and frontend.

Without a subcommand it runs "serve".`,
	Version:      version,
	SilenceUsage: true,
	RunE:         runServe,
}

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP server",
	RunE:  runServe,
}

var migrateCmd = &cobra.Command{
	Use:   "migrate",
	Short: "Create or update the database schema and exit",
	RunE:  runMigrate,
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "path to a YAML config file")
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(migrateCmd)
	rootCmd.AddCommand(importUsersCmd)
}

// env is what every subcommand starts from
type env struct {
	cfg *config.Config
	log *zap.Logger
	db  *gorm.DB
}

// setup loads the config, builds the logger, opens and migrates the database
func setup() (*env, error) {
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, err
	}

	log, err := logging.New(cfg.Log.Level, cfg.Log.Format)
	if err != nil {
		return nil, err
	}

	db, err := database.Connect(cfg.Database.Path, cfg.Database.LogLevel, log)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if err := models.AutoMigrate(db); err != nil {
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}
	log.Info("database migrations completed", zap.String("path", cfg.Database.Path))

	auth.Configure(cfg.Auth.JWTSecret, cfg.Auth.TokenDuration)
	return &env{cfg: cfg, log: log, db: db}, nil
}

func runMigrate(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.log.Sync()
	return nil
}

func runServe(cmd *cobra.Command, args []string) error {
	e, err := setup()
	if err != nil {
		return err
	}
	defer e.log.Sync()
	cfg := e.cfg

	if err := server.EnsureAdmin(e.db, cfg.Auth.AdminUsername, cfg.Auth.AdminPassword, e.log); err != nil {
		return fmt.Errorf("failed to ensure admin user exists: %w", err)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	deps := server.Deps{
		DB:      e.db,
		Config:  cfg,
		Log:     e.log,
		Metrics: metrics.New(),
		Mail: mail.NewClient(mail.Options{
			TokenURL:      cfg.Mail.TokenURL,
			GraphURL:      cfg.Mail.GraphURL,
			Timeout:       cfg.Mail.Timeout,
			RatePerMinute: cfg.Mail.RatePerMinute,
		}),
	}

	if cfg.OIDC.Enabled {
		opts, err := oidc.Discover(ctx, cfg.OIDC, cfg.Server.BaseURL)
		if err != nil {
			return err
		}
		deps.OIDC = &opts
		e.log.Info("keycloak login enabled", zap.String("issuer", cfg.OIDC.Issuer))
	}

	gin.SetMode(gin.ReleaseMode)
	srv := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Server.Port),
		Handler:           server.NewRouter(deps),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		e.log.Info("starting actas server", zap.String("addr", srv.Addr), zap.String("base_url", cfg.Server.BaseURL))
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	e.log.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	return srv.Shutdown(shutdownCtx)
}
