// Package server assembles the gin engine from the handler packages.
package server

import (
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/admin"
	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/config"
	"github.com/mikepea/actas/pkg/actas/documentos"
	"github.com/mikepea/actas/pkg/actas/etiquetas"
	"github.com/mikepea/actas/pkg/actas/frentes"
	"github.com/mikepea/actas/pkg/actas/grupos"
	"github.com/mikepea/actas/pkg/actas/informes"
	"github.com/mikepea/actas/pkg/actas/logging"
	"github.com/mikepea/actas/pkg/actas/mail"
	"github.com/mikepea/actas/pkg/actas/media"
	"github.com/mikepea/actas/pkg/actas/metrics"
	"github.com/mikepea/actas/pkg/actas/models"
	"github.com/mikepea/actas/pkg/actas/oidc"
	"github.com/mikepea/actas/pkg/actas/proyectos"
	"github.com/mikepea/actas/pkg/actas/reuniones"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"go.uber.org/zap"
	"gorm.io/gorm"

	_ "github.com/mikepea/actas/api/swagger"
)

// Deps holds what the router needs. Only DB and Config are required.
type Deps struct {
	DB      *gorm.DB
	Config  *config.Config
	Log     *zap.Logger
	Metrics *metrics.Metrics
	// Mail is the Graph client; nil disables the test mail and notifications
	Mail *mail.Client
	// OIDC holds the discovered Keycloak endpoints; nil disables SSO
	OIDC *oidc.Options
	Now  func() time.Time
}

// NewRouter builds the HTTP handler for the whole service
func NewRouter(d Deps) *gin.Engine {
	log := d.Log
	if log == nil {
		log = zap.NewNop()
	}
	cfg := d.Config

	r := gin.New()
	r.Use(logging.GinRecovery(log), logging.GinLogger(log))
	if d.Metrics != nil {
		r.Use(d.Metrics.Middleware())
		r.GET("/metrics", gin.WrapH(d.Metrics.Handler()))
	}

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Uploaded files are linked directly from the UI
	r.Static("/media", cfg.Storage.MediaDir)

	var notifier reuniones.Notifier
	if d.Mail != nil && cfg.Mail.NotifyOnIntervention {
		notifier = mail.NewRelay(d.DB, d.Mail, log, d.Metrics)
	}

	api := r.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) {
			c.JSON(http.StatusOK, gin.H{
				"status":  "ok",
				"service": "actas",
			})
		})

		// Auth routes (public)
		auth.NewHandler(d.DB, log).RegisterRoutes(api.Group("/auth"))

		if d.OIDC != nil {
			svc := oidc.NewService(d.DB, log)
			oidc.NewHandler(svc, *d.OIDC, log).RegisterRoutes(api.Group("/oidc"))
		}

		informesHandler := informes.NewHandler(d.DB, informes.Options{
			StaticDir: cfg.Storage.StaticDir,
			Metrics:   d.Metrics,
			Now:       d.Now,
		}, log)
		informesHandler.RegisterPublicRoutes(api)

		protected := api.Group("", auth.AuthMiddleware())

		reuniones.NewHandler(d.DB, reuniones.Options{
			MediaDir: cfg.Storage.MediaDir,
			Notifier: notifier,
			Now:      d.Now,
		}, log).RegisterRoutes(protected)

		proyectos.NewHandler(d.DB, log).RegisterRoutes(protected)
		frentes.NewHandler(d.DB, log).RegisterRoutes(protected)
		etiquetas.NewHandler(d.DB, log).RegisterRoutes(protected)
		grupos.NewHandler(d.DB, log).RegisterRoutes(protected)
		documentos.NewHandler(d.DB, media.NewStore(cfg.Storage.MediaDir), log).RegisterRoutes(protected)
		informesHandler.RegisterRoutes(protected)

		// Admin routes (admin role required)
		adminGroup := api.Group("/admin", auth.AuthMiddleware(), auth.RequireAdmin())
		admin.NewHandler(d.DB, admin.Options{Mail: d.Mail, Metrics: d.Metrics}, log).RegisterRoutes(adminGroup)
	}

	serveFrontend(r, cfg.Server.WebDist, log)
	return r
}

// serveFrontend serves the built SPA when webDist holds an index.html.
// Unknown non-API GETs fall back to index.html for client-side routing.
func serveFrontend(r *gin.Engine, webDist string, log *zap.Logger) {
	notFound := func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "Not found"})
	}

	indexHTML := filepath.Join(webDist, "index.html")
	if webDist == "" {
		r.NoRoute(notFound)
		return
	}
	if _, err := os.Stat(indexHTML); err != nil {
		log.Info("no frontend build found, API only mode", zap.String("web_dist", webDist))
		r.NoRoute(notFound)
		return
	}

	r.Static("/assets", filepath.Join(webDist, "assets"))
	r.StaticFile("/favicon.ico", filepath.Join(webDist, "favicon.ico"))

	r.NoRoute(func(c *gin.Context) {
		p := c.Request.URL.Path
		if c.Request.Method != http.MethodGet || strings.HasPrefix(p, "/api/") {
			notFound(c)
			return
		}
		c.File(indexHTML)
	})
	log.Info("serving frontend", zap.String("web_dist", webDist))
}

// EnsureAdmin creates the configured admin account when no admin exists yet
func EnsureAdmin(db *gorm.DB, username, password string, log *zap.Logger) error {
	var count int64
	if err := db.Model(&models.User{}).Where("system_role = ?", models.SystemRoleAdmin).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hashedPassword, err := auth.HashPassword(password)
	if err != nil {
		return err
	}

	adminUser := models.User{
		Username:     username,
		FirstName:    "Admin",
		PasswordHash: hashedPassword,
		Active:       true,
		SystemRole:   models.SystemRoleAdmin,
	}
	if err := db.Create(&adminUser).Error; err != nil {
		return err
	}

	if log != nil {
		log.Warn("created default admin user, change its password", zap.String("username", username))
	}
	return nil
}
