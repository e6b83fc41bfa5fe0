package etiquetas

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
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
	NewHandler(db, nil).RegisterRoutes(r.Group("/api"))
	return r
}

func doJSON(r *gin.Engine, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestCreateAndList(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	resp := doJSON(router, "POST", "/api/etiquetas", EtiquetaRequest{Nombre: "urgente"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	resp = doJSON(router, "POST", "/api/etiquetas", EtiquetaRequest{Nombre: "urgente"})
	assert.Equal(t, http.StatusConflict, resp.Code)

	reunion := models.Reunion{Titulo: "R"}
	require.NoError(t, db.Create(&reunion).Error)
	var tag models.Etiqueta
	require.NoError(t, db.Where("nombre = ?", "urgente").First(&tag).Error)
	require.NoError(t, db.Model(&reunion).Association("Etiquetas").Append(&tag))
	require.NoError(t, db.Create(&models.Etiqueta{Nombre: "acta"}).Error)

	resp = doJSON(router, "GET", "/api/etiquetas", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var tags []EtiquetaResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tags))
	require.Len(t, tags, 2)
	assert.Equal(t, "acta", tags[0].Nombre)
	assert.Equal(t, 0, tags[0].ReunionCount)
	assert.Equal(t, 1, tags[1].ReunionCount)
}

func TestUpdateAndDelete(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	tag := models.Etiqueta{Nombre: "viejo"}
	require.NoError(t, db.Create(&tag).Error)
	reunion := models.Reunion{Titulo: "R"}
	require.NoError(t, db.Create(&reunion).Error)
	require.NoError(t, db.Model(&reunion).Association("Etiquetas").Append(&tag))

	resp := doJSON(router, "PUT", "/api/etiquetas/1", EtiquetaRequest{Nombre: "nuevo"})
	require.Equal(t, http.StatusOK, resp.Code)
	var updated EtiquetaResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &updated))
	assert.Equal(t, "nuevo", updated.Nombre)

	resp = doJSON(router, "DELETE", "/api/etiquetas/1", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var links int64
	db.Table("reunion_etiquetas").Count(&links)
	assert.Zero(t, links)

	resp = doJSON(router, "DELETE", "/api/etiquetas/1", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	resp = doJSON(router, "PUT", "/api/etiquetas/abc", EtiquetaRequest{Nombre: "x"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestReunionEtiquetas(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	reunion := models.Reunion{Titulo: "R"}
	require.NoError(t, db.Create(&reunion).Error)
	require.NoError(t, db.Create(&models.Etiqueta{Nombre: "existente"}).Error)

	resp := doJSON(router, "PUT", "/api/reuniones/1/etiquetas", SetEtiquetasRequest{
		Etiquetas: []string{"existente", "nueva", "nueva", " "},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var count int64
	db.Model(&models.Etiqueta{}).Count(&count)
	assert.EqualValues(t, 2, count)

	resp = doJSON(router, "POST", "/api/reuniones/1/etiquetas/tercera", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	resp = doJSON(router, "DELETE", "/api/reuniones/1/etiquetas/existente", nil)
	require.Equal(t, http.StatusOK, resp.Code)

	resp = doJSON(router, "GET", "/api/reuniones/1/etiquetas", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var tags []EtiquetaResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &tags))
	require.Len(t, tags, 2)
	assert.Equal(t, "nueva", tags[0].Nombre)
	assert.Equal(t, "tercera", tags[1].Nombre)

	resp = doJSON(router, "GET", "/api/reuniones/99/etiquetas", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}
