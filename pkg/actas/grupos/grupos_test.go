package grupos

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/auth"
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

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	api := r.Group("/api")
	api.Use(auth.AuthMiddleware())
	NewHandler(db, nil).RegisterRoutes(api)
	return r
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.SystemRole) models.User {
	t.Helper()
	user := models.User{Username: username, Email: username + "@example.com", SystemRole: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func doJSON(r *gin.Engine, user models.User, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	token, _ := auth.GenerateToken(user.ID, user.Username, string(user.SystemRole))
	req.Header.Set("Authorization", "Bearer "+token)
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateRequiresAdmin(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	admin := createUser(t, db, "root", models.SystemRoleAdmin)

	resp := doJSON(router, user, "POST", "/api/grupos", GrupoRequest{Nombre: "Interventoría"})
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = doJSON(router, admin, "POST", "/api/grupos", GrupoRequest{Nombre: "Interventoría"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	var created GrupoResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "Interventoría", created.Nombre)
	assert.Zero(t, created.MemberCount)

	resp = doJSON(router, user, "GET", "/api/grupos", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var list []GrupoResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	assert.Len(t, list, 1)
}

func TestMembers(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	admin := createUser(t, db, "root", models.SystemRoleAdmin)
	ana := createUser(t, db, "ana", models.SystemRoleUser)
	beto := createUser(t, db, "beto", models.SystemRoleUser)
	g := models.GrupoTrabajo{Nombre: "Comité"}
	require.NoError(t, db.Create(&g).Error)

	resp := doJSON(router, admin, "POST", "/api/grupos/1/miembros", AddMemberRequest{Username: "ana"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())
	resp = doJSON(router, admin, "POST", "/api/grupos/1/miembros", AddMemberRequest{UserID: beto.ID})
	require.Equal(t, http.StatusCreated, resp.Code)
	resp = doJSON(router, admin, "POST", "/api/grupos/1/miembros", AddMemberRequest{UserID: ana.ID})
	assert.Equal(t, http.StatusConflict, resp.Code)
	resp = doJSON(router, admin, "POST", "/api/grupos/1/miembros", AddMemberRequest{Username: "nadie"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
	resp = doJSON(router, admin, "POST", "/api/grupos/1/miembros", AddMemberRequest{})
	assert.Equal(t, http.StatusBadRequest, resp.Code)

	resp = doJSON(router, ana, "GET", "/api/grupos/1/miembros", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var members []auth.UserResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &members))
	assert.Len(t, members, 2)

	resp = doJSON(router, ana, "DELETE", "/api/grupos/1/miembros/3", nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)
	resp = doJSON(router, admin, "DELETE", "/api/grupos/1/miembros/3", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = doJSON(router, admin, "DELETE", "/api/grupos/1/miembros/3", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)

	var stored models.GrupoTrabajo
	require.NoError(t, db.Preload("Usuarios").First(&stored, g.ID).Error)
	require.Len(t, stored.Usuarios, 1)
	assert.Equal(t, "ana", stored.Usuarios[0].Username)
}

func TestUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	admin := createUser(t, db, "root", models.SystemRoleAdmin)
	g := models.GrupoTrabajo{Nombre: "Comité", Usuarios: []models.User{admin}}
	require.NoError(t, db.Create(&g).Error)
	reunion := models.Reunion{Titulo: "R", GrupoTrabajoID: &g.ID}
	require.NoError(t, db.Create(&reunion).Error)

	resp := doJSON(router, admin, "PUT", "/api/grupos/1", GrupoRequest{Nombre: "Comité técnico", Descripcion: "Semanal"})
	require.Equal(t, http.StatusOK, resp.Code)
	var updated GrupoResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, "Comité técnico", updated.Nombre)
	assert.Equal(t, 1, updated.MemberCount)
	assert.EqualValues(t, 1, updated.ReunionCount)

	resp = doJSON(router, admin, "DELETE", "/api/grupos/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var links int64
	db.Table("grupo_trabajo_usuarios").Count(&links)
	assert.Zero(t, links)
	var kept models.Reunion
	require.NoError(t, db.First(&kept, reunion.ID).Error)
	assert.Nil(t, kept.GrupoTrabajoID)

	resp = doJSON(router, admin, "GET", "/api/grupos/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
