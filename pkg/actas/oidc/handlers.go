package oidc

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/config"
	"go.uber.org/zap"
	"golang.org/x/oauth2"
)

const stateCookie = "actas_oidc_state"

// Handler handles OIDC-related requests
type Handler struct {
	svc                   *Service
	config                oauth2.Config
	verifier              *oidc.IDTokenVerifier
	endSessionURL         string
	postLogoutRedirectURL string
	log                   *zap.Logger
}

// StateData stores OIDC state for validation
type StateData struct {
	ReturnURL string `json:"return_url"`
	Nonce     string `json:"nonce"`
}

// Options wires a Handler without discovery
type Options struct {
	OAuth2                oauth2.Config
	Verifier              *oidc.IDTokenVerifier
	EndSessionURL         string
	PostLogoutRedirectURL string
}

// NewHandler creates a new OIDC handler
func NewHandler(svc *Service, opts Options, log *zap.Logger) *Handler {
	if log == nil {
		log = zap.NewNop()
	}
	return &Handler{
		svc:                   svc,
		config:                opts.OAuth2,
		verifier:              opts.Verifier,
		endSessionURL:         opts.EndSessionURL,
		postLogoutRedirectURL: opts.PostLogoutRedirectURL,
		log:                   log.Named("oidc"),
	}
}

// Discover builds handler options from the issuer's discovery document
func Discover(ctx context.Context, cfg config.OIDCConfig, baseURL string) (Options, error) {
	ctx, cancel := context.WithTimeout(ctx, 10*time.Second)
	defer cancel()

	provider, err := oidc.NewProvider(ctx, cfg.Issuer)
	if err != nil {
		return Options{}, fmt.Errorf("oidc discovery for %s: %w", cfg.Issuer, err)
	}

	var meta struct {
		EndSessionEndpoint string `json:"end_session_endpoint"`
	}
	if err := provider.Claims(&meta); err != nil {
		return Options{}, fmt.Errorf("oidc discovery claims: %w", err)
	}

	scopes := strings.Fields(cfg.Scopes)
	if len(scopes) == 0 {
		scopes = []string{oidc.ScopeOpenID, "profile", "email"}
	}

	return Options{
		OAuth2: oauth2.Config{
			ClientID:     cfg.ClientID,
			ClientSecret: cfg.ClientSecret,
			Endpoint:     provider.Endpoint(),
			RedirectURL:  baseURL + "/api/oidc/callback",
			Scopes:       scopes,
		},
		Verifier:              provider.Verifier(&oidc.Config{ClientID: cfg.ClientID}),
		EndSessionURL:         meta.EndSessionEndpoint,
		PostLogoutRedirectURL: cfg.PostLogoutRedirectURL,
	}, nil
}

// Login redirects to the Keycloak authorization endpoint
// @Summary Start Keycloak login
// @Tags oidc
// @Param return_url query string false "Frontend URL to return to with the token"
// @Success 302
// @Router /oidc/login [get]
func (h *Handler) Login(c *gin.Context) {
	nonce := generateRandomString(32)
	stateJSON, _ := json.Marshal(StateData{ReturnURL: c.Query("return_url"), Nonce: nonce})
	state := base64.URLEncoding.EncodeToString(stateJSON)

	c.SetSameSite(http.SameSiteLaxMode)
	c.SetCookie(stateCookie, state, 600, "/api/oidc", "", c.Request.TLS != nil, true)
	c.Redirect(http.StatusFound, h.config.AuthCodeURL(state, oidc.Nonce(nonce)))
}

// Callback handles the OIDC callback
// @Summary Keycloak login callback
// @Tags oidc
// @Produce json
// @Success 200 {object} auth.AuthResponse
// @Failure 400 {object} map[string]string
// @Router /oidc/callback [get]
func (h *Handler) Callback(c *gin.Context) {
	stateParam := c.Query("state")
	if cookie, err := c.Cookie(stateCookie); err != nil || cookie != stateParam {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid state"})
		return
	}
	c.SetCookie(stateCookie, "", -1, "/api/oidc", "", c.Request.TLS != nil, true)

	stateJSON, err := base64.URLEncoding.DecodeString(stateParam)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid state"})
		return
	}
	var stateData StateData
	if err := json.Unmarshal(stateJSON, &stateData); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid state"})
		return
	}

	code := c.Query("code")
	if code == "" {
		errorDesc := c.Query("error_description")
		if errorDesc == "" {
			errorDesc = c.Query("error")
		}
		c.JSON(http.StatusBadRequest, gin.H{"error": "Authentication failed: " + errorDesc})
		return
	}

	ctx := c.Request.Context()
	oauth2Token, err := h.config.Exchange(ctx, code)
	if err != nil {
		h.log.Error("code exchange failed", zap.Error(err))
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to exchange token"})
		return
	}

	rawIDToken, ok := oauth2Token.Extra("id_token").(string)
	if !ok {
		c.JSON(http.StatusBadGateway, gin.H{"error": "No ID token in response"})
		return
	}

	idToken, err := h.verifier.Verify(ctx, rawIDToken)
	if err != nil {
		h.log.Warn("id token verification failed", zap.Error(err))
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Failed to verify ID token"})
		return
	}
	if idToken.Nonce != stateData.Nonce {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid nonce"})
		return
	}

	var claims Claims
	if err := idToken.Claims(&claims); err != nil {
		c.JSON(http.StatusBadGateway, gin.H{"error": "Failed to parse claims"})
		return
	}

	user, err := h.svc.Authenticate(ctx, claims, Tokens{
		IDToken:      rawIDToken,
		AccessToken:  oauth2Token.AccessToken,
		RefreshToken: oauth2Token.RefreshToken,
	})
	if err != nil {
		h.log.Error("failed to provision user", zap.String("sub", claims.Subject), zap.Error(err))
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to process user"})
		return
	}

	if !user.Active {
		c.JSON(http.StatusForbidden, gin.H{"error": "User account is deactivated"})
		return
	}

	token, err := auth.IssueToken(h.svc.db, user)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to generate token"})
		return
	}

	if localPath(stateData.ReturnURL) {
		c.Redirect(http.StatusFound, stateData.ReturnURL+"?token="+url.QueryEscape(token))
		return
	}

	c.JSON(http.StatusOK, auth.AuthResponse{Token: token, User: auth.NewUserResponse(*user)})
}

// localPath reports whether raw is a path on this host. Browsers treat a
// backslash like a slash, so "/\host" is as foreign as "//host".
func localPath(raw string) bool {
	if !strings.HasPrefix(raw, "/") || strings.HasPrefix(raw, "//") || strings.ContainsRune(raw, '\\') {
		return false
	}
	u, err := url.Parse(raw)
	if err != nil {
		return false
	}
	return u.Scheme == "" && u.Host == ""
}

// Logout returns the Keycloak end-session URL for a global sign-out
// @Summary Keycloak logout URL
// @Tags oidc
// @Produce json
// @Success 200 {object} map[string]string
// @Security BearerAuth
// @Router /oidc/logout [get]
func (h *Handler) Logout(c *gin.Context) {
	userID, ok := auth.GetUserID(c)
	if !ok {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "Authentication required"})
		return
	}
	if h.endSessionURL == "" {
		c.JSON(http.StatusOK, gin.H{"logout_url": ""})
		return
	}

	idToken, err := h.svc.IDTokenFor(userID)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to load profile"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"logout_url": h.LogoutURL(idToken)})
}

// LogoutURL builds the end-session URL carrying idToken as the hint
func (h *Handler) LogoutURL(idToken string) string {
	q := url.Values{}
	q.Set("client_id", h.config.ClientID)
	if idToken != "" {
		q.Set("id_token_hint", idToken)
	}
	if h.postLogoutRedirectURL != "" {
		q.Set("post_logout_redirect_uri", h.postLogoutRedirectURL)
	}
	sep := "?"
	if strings.Contains(h.endSessionURL, "?") {
		sep = "&"
	}
	return h.endSessionURL + sep + q.Encode()
}

// RegisterRoutes registers public OIDC routes
func (h *Handler) RegisterRoutes(rg *gin.RouterGroup) {
	rg.GET("/login", h.Login)
	rg.GET("/callback", h.Callback)
	rg.GET("/logout", auth.AuthMiddleware(), h.Logout)
}

func generateRandomString(length int) string {
	b := make([]byte, length)
	rand.Read(b)
	return base64.URLEncoding.EncodeToString(b)[:length]
}
