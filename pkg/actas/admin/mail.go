package admin

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/mail"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// MailConfigRequest creates or updates a Graph mail configuration. On
// update a blank client_secret keeps the stored one.
type MailConfigRequest struct {
	Nombre       string `json:"nombre" binding:"max=100"`
	TenantID     string `json:"tenant_id" binding:"required"`
	ClientID     string `json:"client_id" binding:"required"`
	ClientSecret string `json:"client_secret"`
	Scope        string `json:"scope"`
	GrantType    string `json:"grant_type"`
	EmailSend    string `json:"email_send" binding:"required,email"`
	EmailReceive string `json:"email_receive" binding:"required,email"`
	Activo       bool   `json:"activo"`
}

// MailConfigResponse is a mail configuration without its secret
type MailConfigResponse struct {
	models.GraphMailConfig
	HasClientSecret bool `json:"has_client_secret"`
}

// TestMailRequest selects the configuration and recipient of a test mail.
// Without config_id the active configuration is used; without to, its
// receive mailbox.
type TestMailRequest struct {
	ConfigID *uint  `json:"config_id"`
	To       string `json:"to" binding:"omitempty,email"`
}

func toMailConfigResponse(cfg models.GraphMailConfig) MailConfigResponse {
	return MailConfigResponse{GraphMailConfig: cfg, HasClientSecret: cfg.ClientSecret != ""}
}

// ListMailConfigs returns every mail configuration
// @Summary List mail configurations
// @Tags admin
// @Produce json
// @Success 200 {array} MailConfigResponse
// @Security BearerAuth
// @Router /admin/mail/configs [get]
func (h *Handler) ListMailConfigs(c *gin.Context) {
	var configs []models.GraphMailConfig
	if err := h.db.Order("id ASC").Find(&configs).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mail configurations"})
		return
	}
	out := make([]MailConfigResponse, len(configs))
	for i, cfg := range configs {
		out[i] = toMailConfigResponse(cfg)
	}
	c.JSON(http.StatusOK, out)
}

// GetMailConfig returns one mail configuration
// @Summary Get a mail configuration
// @Tags admin
// @Produce json
// @Param id path int true "Config ID"
// @Success 200 {object} MailConfigResponse
// @Security BearerAuth
// @Router /admin/mail/configs/{id} [get]
func (h *Handler) GetMailConfig(c *gin.Context) {
	cfg, ok := h.findMailConfig(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, toMailConfigResponse(*cfg))
}

// CreateMailConfig stores a new mail configuration
// @Summary Create a mail configuration
// @Tags admin
// @Accept json
// @Produce json
// @Param request body MailConfigRequest true "Configuration"
// @Success 201 {object} MailConfigResponse
// @Security BearerAuth
// @Router /admin/mail/configs [post]
func (h *Handler) CreateMailConfig(c *gin.Context) {
	var req MailConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if strings.TrimSpace(req.ClientSecret) == "" {
		c.JSON(http.StatusBadRequest, gin.H{"errors": gin.H{"client_secret": "This field is required."}})
		return
	}

	var cfg models.GraphMailConfig
	applyMailConfig(&cfg, req)
	if err := h.db.Create(&cfg).Error; err != nil {
		h.log.Error("failed to create mail configuration", zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create mail configuration"})
		return
	}
	h.warnIfSeveralActive()
	h.log.Info("mail configuration created", zap.Uint("id", cfg.ID), zap.Bool("activo", cfg.Activo))
	c.JSON(http.StatusCreated, toMailConfigResponse(cfg))
}

// UpdateMailConfig replaces a mail configuration
// @Summary Update a mail configuration
// @Tags admin
// @Accept json
// @Produce json
// @Param id path int true "Config ID"
// @Param request body MailConfigRequest true "Configuration"
// @Success 200 {object} MailConfigResponse
// @Security BearerAuth
// @Router /admin/mail/configs/{id} [put]
func (h *Handler) UpdateMailConfig(c *gin.Context) {
	cfg, ok := h.findMailConfig(c)
	if !ok {
		return
	}
	var req MailConfigRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	applyMailConfig(cfg, req)
	if err := h.db.Save(cfg).Error; err != nil {
		h.log.Error("failed to update mail configuration", zap.Uint("id", cfg.ID), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update mail configuration"})
		return
	}
	h.warnIfSeveralActive()
	c.JSON(http.StatusOK, toMailConfigResponse(*cfg))
}

// DeleteMailConfig removes a mail configuration
// @Summary Delete a mail configuration
// @Tags admin
// @Param id path int true "Config ID"
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /admin/mail/configs/{id} [delete]
func (h *Handler) DeleteMailConfig(c *gin.Context) {
	cfg, ok := h.findMailConfig(c)
	if !ok {
		return
	}
	if err := h.db.Delete(cfg).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to delete mail configuration"})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Mail configuration deleted"})
}

// TestMail acquires a credential and sends a test message. Graph failures
// are answered with 502 and carry the upstream status and body.
// @Summary Send a test mail
// @Tags admin
// @Accept json
// @Produce json
// @Param request body TestMailRequest false "Config and recipient"
// @Success 200 {object} map[string]interface{}
// @Failure 409 {object} map[string]string "No active configuration"
// @Failure 502 {object} map[string]interface{} "Graph rejected the request"
// @Security BearerAuth
// @Router /admin/mail/test [post]
func (h *Handler) TestMail(c *gin.Context) {
	if h.mail == nil {
		c.JSON(http.StatusServiceUnavailable, gin.H{"error": "Mail relay is not configured"})
		return
	}

	var req TestMailRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
	}

	var cfg *models.GraphMailConfig
	if req.ConfigID != nil {
		var found models.GraphMailConfig
		if err := h.db.First(&found, *req.ConfigID).Error; err != nil {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mail configuration not found"})
			return
		}
		cfg = &found
	} else {
		active, err := mail.ResolveActiveConfig(h.db, h.log)
		if errors.Is(err, mail.ErrNoActiveConfig) {
			c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		if err != nil {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to resolve mail configuration"})
			return
		}
		cfg = active
	}

	msg := mail.Message{
		Subject:     "Correo de prueba",
		Body:        "Este es un correo de prueba enviado desde Actas.",
		ContentType: "Text",
	}
	if req.To != "" {
		msg.To = []string{req.To}
	}

	err := h.sendTest(c, cfg, msg)
	h.metrics.MailSent(err)
	if err != nil {
		h.log.Warn("test mail failed", zap.Uint("config_id", cfg.ID), zap.Error(err))
		var ge *mail.GraphError
		if errors.As(err, &ge) {
			c.JSON(http.StatusBadGateway, gin.H{"error": ge.Error(), "op": ge.Op, "status": ge.Status, "body": ge.Body})
			return
		}
		c.JSON(http.StatusBadGateway, gin.H{"error": err.Error()})
		return
	}

	to := cfg.EmailReceive
	if req.To != "" {
		to = req.To
	}
	h.log.Info("test mail sent", zap.Uint("config_id", cfg.ID), zap.String("to", to))
	c.JSON(http.StatusOK, gin.H{"message": "Test mail sent", "config_id": cfg.ID, "to": to})
}

func (h *Handler) sendTest(c *gin.Context, cfg *models.GraphMailConfig, msg mail.Message) error {
	cred, err := h.mail.AcquireCredential(c.Request.Context(), cfg)
	if err != nil {
		return err
	}
	return h.mail.Send(c.Request.Context(), cred, cfg, msg)
}

func applyMailConfig(cfg *models.GraphMailConfig, req MailConfigRequest) {
	cfg.Nombre = strings.TrimSpace(req.Nombre)
	cfg.TenantID = strings.TrimSpace(req.TenantID)
	cfg.ClientID = strings.TrimSpace(req.ClientID)
	if s := strings.TrimSpace(req.ClientSecret); s != "" {
		cfg.ClientSecret = s
	}
	cfg.Scope = strings.TrimSpace(req.Scope)
	if cfg.Scope == "" {
		cfg.Scope = models.DefaultGraphScope
	}
	cfg.GrantType = strings.TrimSpace(req.GrantType)
	if cfg.GrantType == "" {
		cfg.GrantType = models.DefaultGraphGrantType
	}
	cfg.EmailSend = strings.TrimSpace(req.EmailSend)
	cfg.EmailReceive = strings.TrimSpace(req.EmailReceive)
	cfg.Activo = req.Activo
}

func (h *Handler) warnIfSeveralActive() {
	var n int64
	h.db.Model(&models.GraphMailConfig{}).Where("activo = ?", true).Count(&n)
	if n > 1 {
		h.log.Warn("more than one active mail configuration", zap.Int64("active", n))
	}
}

func (h *Handler) findMailConfig(c *gin.Context) (*models.GraphMailConfig, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid configuration ID"})
		return nil, false
	}
	var cfg models.GraphMailConfig
	if err := h.db.First(&cfg, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "Mail configuration not found"})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch mail configuration"})
		}
		return nil, false
	}
	return &cfg, true
}
