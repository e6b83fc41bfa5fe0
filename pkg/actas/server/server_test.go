package server

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"regexp"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/config"
	"github.com/mikepea/actas/pkg/actas/metrics"
	"github.com/mikepea/actas/pkg/actas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	require.NoError(t, models.AutoMigrate(db))
	return db
}

func testConfig(t *testing.T) *config.Config {
	t.Helper()
	cfg := &config.Config{}
	cfg.Storage.MediaDir = t.TempDir()
	cfg.Storage.StaticDir = t.TempDir()
	cfg.Server.WebDist = filepath.Join(t.TempDir(), "missing")
	return cfg
}

func setupTestRouter(t *testing.T, db *gorm.DB, cfg *config.Config) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	return NewRouter(Deps{DB: db, Config: cfg, Metrics: metrics.New()})
}

func do(r *gin.Engine, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestPublicRoutes(t *testing.T) {
	router := setupTestRouter(t, setupTestDB(t), testConfig(t))

	for _, path := range []string{"/health", "/api/health", "/api/construccion"} {
		resp := do(router, "GET", path, "", nil)
		assert.Equal(t, http.StatusOK, resp.Code, path)
	}

	resp := do(router, "GET", "/metrics", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "actas_http_requests_total")

	resp = do(router, "GET", "/api/reuniones", "", nil)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)

	resp = do(router, "GET", "/api/oidc/login", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestLoginAndUseAPI(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db, testConfig(t))
	require.NoError(t, EnsureAdmin(db, "admin", "changeme", nil))

	resp := do(router, "POST", "/api/auth/login", "", auth.LoginRequest{Username: "admin", Password: "changeme"})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())
	var login auth.AuthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &login))
	require.NotEmpty(t, login.Token)

	resp = do(router, "POST", "/api/frentes", login.Token, map[string]string{"nombre": "Obras", "tipo": "actividad"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = do(router, "POST", "/api/reuniones", login.Token, map[string]string{"titulo": "Comité de obra"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	for _, path := range []string{
		"/api/reuniones",
		"/api/reuniones/1",
		"/api/reuniones/informe",
		"/api/reuniones/grafico",
		"/api/reuniones/1/etiquetas",
		"/api/actas",
		"/api/proyectos",
		"/api/etiquetas",
		"/api/grupos",
		"/api/documentos",
		"/api/admin/stats",
		"/api/auth/me",
	} {
		resp = do(router, "GET", path, login.Token, nil)
		assert.Equal(t, http.StatusOK, resp.Code, path)
	}

	resp = do(router, "GET", "/api/acta/1/pdf", login.Token, nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.True(t, strings.HasPrefix(resp.Body.String(), "%PDF-"))
}

func TestAdminRoutesRequireAdmin(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(t, db, testConfig(t))
	user := models.User{Username: "ana", SystemRole: models.SystemRoleUser, Active: true}
	require.NoError(t, db.Create(&user).Error)
	token, err := auth.GenerateToken(user.ID, user.Username, string(user.SystemRole))
	require.NoError(t, err)

	resp := do(router, "GET", "/api/admin/users", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = do(router, "POST", "/api/admin/mail/test", token, nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)
}

func TestMediaAndFrontend(t *testing.T) {
	db := setupTestDB(t)
	cfg := testConfig(t)
	require.NoError(t, os.MkdirAll(filepath.Join(cfg.Storage.MediaDir, "documentos"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(cfg.Storage.MediaDir, "documentos", "a.txt"), []byte("hola"), 0o644))

	webDist := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(webDist, "index.html"), []byte("<html>actas</html>"), 0o644))
	cfg.Server.WebDist = webDist
	router := setupTestRouter(t, db, cfg)

	resp := do(router, "GET", "/media/documentos/a.txt", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Equal(t, "hola", resp.Body.String())

	resp = do(router, "GET", "/reuniones/12", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	assert.Contains(t, resp.Body.String(), "actas")

	resp = do(router, "GET", "/api/nope", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	assert.Contains(t, resp.Body.String(), "Not found")
}

func TestAPIOnlyMode(t *testing.T) {
	router := setupTestRouter(t, setupTestDB(t), testConfig(t))

	resp := do(router, "GET", "/reuniones", "", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestEnsureAdmin(t *testing.T) {
	db := setupTestDB(t)

	require.NoError(t, EnsureAdmin(db, "root", "secreto", nil))
	require.NoError(t, EnsureAdmin(db, "otro", "secreto", nil))

	var admins []models.User
	require.NoError(t, db.Where("system_role = ?", models.SystemRoleAdmin).Find(&admins).Error)
	require.Len(t, admins, 1)
	assert.Equal(t, "root", admins[0].Username)
	assert.True(t, auth.CheckPassword("secreto", admins[0].PasswordHash))
}

func TestSwaggerCoversAPIRoutes(t *testing.T) {
	router := setupTestRouter(t, setupTestDB(t), testConfig(t))

	resp := do(router, "GET", "/swagger/doc.json", "", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var doc struct {
		BasePath string                                `json:"basePath"`
		Paths    map[string]map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &doc))
	assert.Equal(t, "/api", doc.BasePath)

	param := regexp.MustCompile(`:(\w+)`)
	for _, route := range router.Routes() {
		if !strings.HasPrefix(route.Path, "/api/") || route.Path == "/api/health" {
			continue
		}
		path := param.ReplaceAllString(strings.TrimPrefix(route.Path, "/api"), "{$1}")
		_, ok := doc.Paths[path][strings.ToLower(route.Method)]
		assert.True(t, ok, "%s %s is not documented", route.Method, path)
	}
	assert.Contains(t, doc.Paths["/oidc/logout"], "get")
}
