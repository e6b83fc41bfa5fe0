package oidc

import (
	"crypto"
	"crypto/rand"
	"crypto/rsa"
	"encoding/base64"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"strings"
	"testing"
	"time"

	"github.com/coreos/go-oidc/v3/oidc"
	"github.com/gin-gonic/gin"
	"github.com/go-jose/go-jose/v4"
	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/oauth2"
	"gorm.io/gorm"
)

const (
	testIssuer   = "https://sso.example.com/realms/actas"
	testClientID = "actas-web"
)

type fakeIssuer struct {
	key    *rsa.PrivateKey
	claims map[string]interface{}
	srv    *httptest.Server
}

func newFakeIssuer(t *testing.T) *fakeIssuer {
	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)
	f := &fakeIssuer{key: key}
	f.srv = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		json.NewEncoder(w).Encode(map[string]interface{}{
			"access_token":  "access-abc",
			"refresh_token": "refresh-abc",
			"token_type":    "Bearer",
			"expires_in":    300,
			"id_token":      f.sign(t),
		})
	}))
	t.Cleanup(f.srv.Close)
	return f
}

func (f *fakeIssuer) sign(t *testing.T) string {
	signer, err := jose.NewSigner(jose.SigningKey{Algorithm: jose.RS256, Key: f.key}, (&jose.SignerOptions{}).WithType("JWT"))
	require.NoError(t, err)
	payload, err := json.Marshal(f.claims)
	require.NoError(t, err)
	obj, err := signer.Sign(payload)
	require.NoError(t, err)
	raw, err := obj.CompactSerialize()
	require.NoError(t, err)
	return raw
}

func setupHandler(t *testing.T, db *gorm.DB, f *fakeIssuer) (*Handler, *gin.Engine) {
	gin.SetMode(gin.TestMode)
	verifier := oidc.NewVerifier(testIssuer,
		&oidc.StaticKeySet{PublicKeys: []crypto.PublicKey{f.key.Public()}},
		&oidc.Config{ClientID: testClientID})

	h := NewHandler(NewService(db, nil), Options{
		OAuth2: oauth2.Config{
			ClientID:    testClientID,
			Endpoint:    oauth2.Endpoint{AuthURL: "https://sso.example.com/auth", TokenURL: f.srv.URL + "/token"},
			RedirectURL: "http://localhost:8080/api/oidc/callback",
			Scopes:      []string{oidc.ScopeOpenID, "email"},
		},
		Verifier:              verifier,
		EndSessionURL:         "https://sso.example.com/logout",
		PostLogoutRedirectURL: "http://localhost:8080/",
	}, nil)

	r := gin.New()
	h.RegisterRoutes(r.Group("/api/oidc"))
	return h, r
}

func encodeState(t *testing.T, s StateData) string {
	b, err := json.Marshal(s)
	require.NoError(t, err)
	return base64.URLEncoding.EncodeToString(b)
}

func TestLoginRedirects(t *testing.T) {
	db := setupTestDB(t)
	_, r := setupHandler(t, db, newFakeIssuer(t))

	req, _ := http.NewRequest("GET", "/api/oidc/login", nil)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	require.Equal(t, http.StatusFound, resp.Code)
	loc, err := url.Parse(resp.Header().Get("Location"))
	require.NoError(t, err)
	assert.Equal(t, testClientID, loc.Query().Get("client_id"))
	assert.NotEmpty(t, loc.Query().Get("nonce"))
	assert.Contains(t, resp.Header().Get("Set-Cookie"), stateCookie+"="+loc.Query().Get("state"))
}

func TestCallbackProvisionsUser(t *testing.T) {
	db := setupTestDB(t)
	f := newFakeIssuer(t)
	_, r := setupHandler(t, db, f)

	f.claims = map[string]interface{}{
		"iss":                testIssuer,
		"aud":                testClientID,
		"sub":                "kc-123",
		"exp":                time.Now().Add(time.Hour).Unix(),
		"iat":                time.Now().Unix(),
		"nonce":              "n-1",
		"email":              "luis@example.com",
		"given_name":         "Luis",
		"family_name":        "Pérez",
		"preferred_username": "lperez",
	}
	state := encodeState(t, StateData{Nonce: "n-1"})

	req, _ := http.NewRequest("GET", "/api/oidc/callback?code=abc&state="+url.QueryEscape(state), nil)
	req.AddCookie(&http.Cookie{Name: stateCookie, Value: state})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var body auth.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.NotEmpty(t, body.Token)
	assert.Equal(t, "lperez", body.User.Username)
	assert.Equal(t, "Luis Pérez", body.User.Name)

	var profile models.KeycloakProfile
	require.NoError(t, db.Where("keycloak_id = ?", "kc-123").First(&profile).Error)
	assert.Equal(t, "access-abc", profile.AccessToken)
	assert.Equal(t, "refresh-abc", profile.RefreshToken)
	assert.True(t, strings.Count(profile.IDToken, ".") == 2)
}

func TestCallbackRejectsStateMismatch(t *testing.T) {
	db := setupTestDB(t)
	_, r := setupHandler(t, db, newFakeIssuer(t))

	state := encodeState(t, StateData{Nonce: "n"})
	req, _ := http.NewRequest("GET", "/api/oidc/callback?code=abc&state="+url.QueryEscape(state), nil)
	req.AddCookie(&http.Cookie{Name: stateCookie, Value: "other"})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestCallbackRejectsNonceMismatch(t *testing.T) {
	db := setupTestDB(t)
	f := newFakeIssuer(t)
	_, r := setupHandler(t, db, f)

	f.claims = map[string]interface{}{
		"iss": testIssuer, "aud": testClientID, "sub": "kc-1",
		"exp": time.Now().Add(time.Hour).Unix(), "nonce": "other",
	}
	state := encodeState(t, StateData{Nonce: "n-1"})
	req, _ := http.NewRequest("GET", "/api/oidc/callback?code=abc&state="+url.QueryEscape(state), nil)
	req.AddCookie(&http.Cookie{Name: stateCookie, Value: state})
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	var n int64
	db.Model(&models.User{}).Count(&n)
	assert.Zero(t, n)
}

func TestLogoutURL(t *testing.T) {
	db := setupTestDB(t)
	_, r := setupHandler(t, db, newFakeIssuer(t))

	user := models.User{Username: "ana"}
	require.NoError(t, db.Create(&user).Error)
	require.NoError(t, db.Create(&models.KeycloakProfile{UserID: user.ID, KeycloakID: "s", IDToken: "the-id-token"}).Error)
	token, err := auth.GenerateToken(user.ID, user.Username, "user")
	require.NoError(t, err)

	req, _ := http.NewRequest("GET", "/api/oidc/logout", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code)

	var body map[string]string
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	u, err := url.Parse(body["logout_url"])
	require.NoError(t, err)
	assert.Equal(t, "sso.example.com", u.Host)
	assert.Equal(t, "the-id-token", u.Query().Get("id_token_hint"))
	assert.Equal(t, "http://localhost:8080/", u.Query().Get("post_logout_redirect_uri"))
}

func TestLocalPath(t *testing.T) {
	for raw, want := range map[string]bool{
		"/reuniones/4":         true,
		"/actas?proyecto=2":    true,
		"":                     false,
		"reuniones":            false,
		"//evil.example":       false,
		"///evil.example":      false,
		`/\evil.example`:       false,
		"/a\\b":                false,
		"https://evil.example": false,
	} {
		assert.Equal(t, want, localPath(raw), raw)
	}
}

func TestCallbackReturnURL(t *testing.T) {
	db := setupTestDB(t)
	f := newFakeIssuer(t)
	_, r := setupHandler(t, db, f)

	f.claims = map[string]interface{}{
		"iss": testIssuer, "aud": testClientID, "sub": "kc-9",
		"exp": time.Now().Add(time.Hour).Unix(), "nonce": "n-1",
		"preferred_username": "marta",
	}
	callback := func(returnURL string) *httptest.ResponseRecorder {
		state := encodeState(t, StateData{Nonce: "n-1", ReturnURL: returnURL})
		req, _ := http.NewRequest("GET", "/api/oidc/callback?code=abc&state="+url.QueryEscape(state), nil)
		req.AddCookie(&http.Cookie{Name: stateCookie, Value: state})
		resp := httptest.NewRecorder()
		r.ServeHTTP(resp, req)
		return resp
	}

	resp := callback("/reuniones")
	require.Equal(t, http.StatusFound, resp.Code)
	assert.True(t, strings.HasPrefix(resp.Header().Get("Location"), "/reuniones?token="))

	resp = callback(`/\evil.example`)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Empty(t, resp.Header().Get("Location"))
}
