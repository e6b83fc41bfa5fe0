package reuniones

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/filtros"
	"github.com/mikepea/actas/pkg/actas/mail"
	"github.com/mikepea/actas/pkg/actas/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

var today = time.Date(2024, 6, 10, 12, 0, 0, 0, time.UTC)

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

func setupTestRouter(db *gorm.DB, opts Options, log *zap.Logger) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	if opts.Now == nil {
		opts.Now = func() time.Time { return today }
	}
	api := r.Group("/api")
	api.Use(auth.AuthMiddleware())
	NewHandler(db, opts, log).RegisterRoutes(api)
	return r
}

func createUser(t *testing.T, db *gorm.DB, username string, role models.SystemRole) models.User {
	t.Helper()
	user := models.User{Username: username, FirstName: "Ana", LastName: username, SystemRole: role}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func createFrente(t *testing.T, db *gorm.DB, nombre string, tipo models.FrenteTipo) models.Frente {
	t.Helper()
	f := models.Frente{Nombre: nombre, Tipo: tipo}
	require.NoError(t, db.Create(&f).Error)
	return f
}

func createReunion(t *testing.T, db *gorm.DB, r models.Reunion) models.Reunion {
	t.Helper()
	require.NoError(t, db.Create(&r).Error)
	return r
}

func authHeader(user models.User) string {
	token, _ := auth.GenerateToken(user.ID, user.Username, string(user.SystemRole))
	return "Bearer " + token
}

func doJSON(r *gin.Engine, user models.User, method, path string, body interface{}) *httptest.ResponseRecorder {
	var buf bytes.Buffer
	if body != nil {
		json.NewEncoder(&buf).Encode(body)
	}
	req, _ := http.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", authHeader(user))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func uintPtr(v uint) *uint { return &v }

type fieldErrors struct {
	Errors map[string]string `json:"errors"`
}

type recordingNotifier struct {
	sent []mail.Message
	err  error
}

func (n *recordingNotifier) Send(ctx context.Context, msg mail.Message) error {
	n.sent = append(n.sent, msg)
	return n.err
}

func postAttachment(t *testing.T, router *gin.Engine, user models.User, reunionID uint, filename string) models.Intervencion {
	t.Helper()
	var body bytes.Buffer
	w := multipart.NewWriter(&body)
	require.NoError(t, w.WriteField("contenido", "Adjunto el acta"))
	part, err := w.CreateFormFile("archivo", filename)
	require.NoError(t, err)
	part.Write([]byte("%PDF-1.4 fake"))
	require.NoError(t, w.Close())

	req, _ := http.NewRequest("POST", fmt.Sprintf("/api/reuniones/%d/intervenciones", reunionID), &body)
	req.Header.Set("Content-Type", w.FormDataContentType())
	req.Header.Set("Authorization", authHeader(user))
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created models.Intervencion
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	return created
}

func TestRequiresAuth(t *testing.T) {
	router := setupTestRouter(setupTestDB(t), Options{}, nil)

	req, _ := http.NewRequest("GET", "/api/reuniones", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)

	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestCreateDefaultsToFirstFrente(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	first := createFrente(t, db, "Zeta", models.FrenteOtro)
	createFrente(t, db, "Alfa", models.FrenteOtro)

	resp := doJSON(router, user, "POST", "/api/reuniones", ReunionRequest{Titulo: "Kickoff"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created models.Reunion
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	require.NotNil(t, created.FrenteID)
	assert.Equal(t, first.ID, *created.FrenteID)
	assert.Equal(t, models.EstadoSinIniciar, created.Estado)
	assert.False(t, created.Fecha.IsZero())
}

func TestCreateValidation(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)

	tests := []struct {
		name  string
		req   ReunionRequest
		field string
	}{
		{"bad estado", ReunionRequest{Titulo: "R", Estado: "archivada"}, "estado"},
		{"missing proyecto", ReunionRequest{Titulo: "R", ProyectoID: uintPtr(42)}, "proyecto"},
		{"end before start", ReunionRequest{
			Titulo:            "R",
			Fecha:             ptrTime(date(2024, 6, 10)),
			FechaFinalizacion: ptrTime(date(2024, 6, 1)),
		}, "fecha_finalizacion"},
		{"unknown tag", ReunionRequest{Titulo: "R", EtiquetaIDs: []uint{7}}, "etiquetas"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resp := doJSON(router, user, "POST", "/api/reuniones", tt.req)
			require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())
			var body fieldErrors
			require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
			assert.Contains(t, body.Errors, tt.field)
		})
	}

	resp := doJSON(router, user, "POST", "/api/reuniones", gin.H{"descripcion": "no title"})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func ptrTime(t time.Time) *time.Time { return &t }

func TestCreateRejectsParentOutsideActivity(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	tarea := createFrente(t, db, "Tareas", models.FrenteTarea)
	parent := createReunion(t, db, models.Reunion{Titulo: "Padre", FrenteID: &tarea.ID})

	resp := doJSON(router, user, "POST", "/api/reuniones", ReunionRequest{
		Titulo:   "Hija",
		FrenteID: &tarea.ID,
		ParentID: &parent.ID,
	})
	require.Equal(t, http.StatusBadRequest, resp.Code, resp.Body.String())

	var body fieldErrors
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "El padre debe pertenecer a un frente de tipo actividad.", body.Errors["parent"])

	var count int64
	db.Model(&models.Reunion{}).Count(&count)
	assert.EqualValues(t, 1, count)
}

func TestCreateUnderActivity(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	actividad := createFrente(t, db, "Obras", models.FrenteActividad)
	tarea := createFrente(t, db, "Tareas", models.FrenteTarea)
	tag := models.Etiqueta{Nombre: "urgente"}
	require.NoError(t, db.Create(&tag).Error)
	parent := createReunion(t, db, models.Reunion{Titulo: "Actividad", FrenteID: &actividad.ID})

	resp := doJSON(router, user, "POST", "/api/reuniones", ReunionRequest{
		Titulo:         "Tarea",
		FrenteID:       &tarea.ID,
		ParentID:       &parent.ID,
		Estado:         models.EstadoEnProceso,
		EtiquetaIDs:    []uint{tag.ID, tag.ID},
		ResponsableIDs: []uint{user.ID},
	})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var stored models.Reunion
	require.NoError(t, db.Preload("Etiquetas").Preload("Responsables").Where("titulo = ?", "Tarea").First(&stored).Error)
	assert.Equal(t, models.EstadoEnProceso, stored.Estado)
	assert.Len(t, stored.Etiquetas, 1)
	require.Len(t, stored.Responsables, 1)
	assert.Equal(t, user.ID, stored.Responsables[0].ID)
}

func TestListGroupsAndPaginates(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	alfa := createFrente(t, db, "Alfa", models.FrenteOtro)

	for i := 0; i < 10; i++ {
		createReunion(t, db, models.Reunion{
			Titulo:   fmt.Sprintf("Alfa %d", i),
			FrenteID: &alfa.ID,
			Fecha:    date(2024, 1, 1+i),
		})
	}
	createReunion(t, db, models.Reunion{Titulo: "Suelta 1", Fecha: date(2024, 3, 1)})
	createReunion(t, db, models.Reunion{Titulo: "Suelta 2", Fecha: date(2024, 3, 2)})

	resp := doJSON(router, user, "GET", "/api/reuniones", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var page1 ListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page1))
	assert.Equal(t, filtros.Pagina{Page: 1, PageSize: 9, Total: 12, Pages: 2}, page1.Pagina)
	require.Len(t, page1.Grupos, 1)
	assert.Equal(t, "Alfa", page1.Grupos[0].Frente)
	assert.Equal(t, 9, page1.Grupos[0].Count)
	assert.Equal(t, "Alfa 9", page1.Grupos[0].Reuniones[0].Titulo)

	resp = doJSON(router, user, "GET", "/api/reuniones?page=99", nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var page2 ListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &page2))
	assert.Equal(t, 2, page2.Pagina.Page)
	require.Len(t, page2.Grupos, 2)
	assert.Equal(t, "Alfa", page2.Grupos[0].Frente)
	assert.Equal(t, 1, page2.Grupos[0].Count)
	assert.Equal(t, filtros.SinFrente, page2.Grupos[1].Frente)
	assert.Equal(t, "Suelta 2", page2.Grupos[1].Reuniones[0].Titulo)
}

func TestListFiltersAndAnnotates(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	other := createUser(t, db, "beto", models.SystemRoleUser)

	vencida := createReunion(t, db, models.Reunion{
		Titulo:            "Vencida",
		Estado:            models.EstadoEnProceso,
		FechaFinalizacion: ptrTime(date(2024, 6, 5)),
	})
	require.NoError(t, db.Model(&vencida).Association("Responsables").Append(&user))
	abierta := createReunion(t, db, models.Reunion{Titulo: "Abierta", Estado: models.EstadoEnProceso})
	require.NoError(t, db.Model(&abierta).Association("Responsables").Append(&other))
	createReunion(t, db, models.Reunion{Titulo: "Cerrada", Estado: models.EstadoCerrada})

	resp := doJSON(router, user, "GET", fmt.Sprintf("/api/reuniones?estado=en_proceso&responsable=%d&frente=abc", user.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)

	var list ListResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list.Grupos, 1)
	require.Len(t, list.Grupos[0].Reuniones, 1)
	got := list.Grupos[0].Reuniones[0]
	assert.Equal(t, "Vencida", got.Titulo)
	assert.True(t, got.Overdue)
	require.NotNil(t, got.DaysRemaining)
	assert.Equal(t, 5, *got.DaysRemaining)
	assert.Nil(t, list.Filtros.FrenteID)
}

func TestGetDetail(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	reunion := createReunion(t, db, models.Reunion{
		Titulo:            "Seguimiento",
		FechaFinalizacion: ptrTime(date(2024, 6, 13)),
	})
	intervencion := models.Intervencion{ReunionID: reunion.ID, AutorID: user.ID, Contenido: "Avance del 50%"}
	require.NoError(t, db.Create(&intervencion).Error)
	require.NoError(t, db.Create(&models.Comentario{IntervencionID: intervencion.ID, AutorID: user.ID, Contenido: "Bien"}).Error)

	resp := doJSON(router, user, "GET", fmt.Sprintf("/api/reuniones/%d", reunion.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var detail filtros.ReunionAnotada
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &detail))
	assert.False(t, detail.Overdue)
	require.NotNil(t, detail.DaysRemaining)
	assert.Equal(t, 3, *detail.DaysRemaining)
	require.Len(t, detail.Intervenciones, 1)
	assert.Equal(t, "ana", detail.Intervenciones[0].Autor.Username)
	require.Len(t, detail.Intervenciones[0].Comentarios, 1)
	assert.Equal(t, "Bien", detail.Intervenciones[0].Comentarios[0].Contenido)

	resp = doJSON(router, user, "GET", "/api/reuniones/999", nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
	resp = doJSON(router, user, "GET", "/api/reuniones/abc", nil)
	assert.Equal(t, http.StatusBadRequest, resp.Code)
}

func TestUpdateReplacesLinks(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	t1 := models.Etiqueta{Nombre: "uno"}
	t2 := models.Etiqueta{Nombre: "dos"}
	require.NoError(t, db.Create(&t1).Error)
	require.NoError(t, db.Create(&t2).Error)
	reunion := createReunion(t, db, models.Reunion{Titulo: "Original", Etiquetas: []models.Etiqueta{t1, t2}})

	resp := doJSON(router, user, "PUT", fmt.Sprintf("/api/reuniones/%d", reunion.ID), ReunionRequest{
		Titulo:         "Renombrada",
		Estado:         models.EstadoCerrada,
		EtiquetaIDs:    []uint{t2.ID},
		ResponsableIDs: []uint{user.ID},
	})
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var stored models.Reunion
	require.NoError(t, db.Preload("Etiquetas").Preload("Responsables").First(&stored, reunion.ID).Error)
	assert.Equal(t, "Renombrada", stored.Titulo)
	assert.Equal(t, models.EstadoCerrada, stored.Estado)
	require.Len(t, stored.Etiquetas, 1)
	assert.Equal(t, "dos", stored.Etiquetas[0].Nombre)
	assert.Len(t, stored.Responsables, 1)

	resp = doJSON(router, user, "PUT", fmt.Sprintf("/api/reuniones/%d", reunion.ID), ReunionRequest{
		Titulo:   "Renombrada",
		ParentID: &reunion.ID,
	})
	require.Equal(t, http.StatusBadRequest, resp.Code)
	var body fieldErrors
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &body))
	assert.Equal(t, "Una reunión no puede ser su propio padre.", body.Errors["parent"])
}

func TestDelete(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	actividad := createFrente(t, db, "Obras", models.FrenteActividad)
	parent := createReunion(t, db, models.Reunion{Titulo: "Actividad", FrenteID: &actividad.ID})
	child := createReunion(t, db, models.Reunion{Titulo: "Tarea", ParentID: &parent.ID})
	require.NoError(t, db.Create(&models.Intervencion{ReunionID: child.ID, AutorID: user.ID, Contenido: "x"}).Error)

	resp := doJSON(router, user, "DELETE", fmt.Sprintf("/api/reuniones/%d", parent.ID), nil)
	assert.Equal(t, http.StatusConflict, resp.Code)

	resp = doJSON(router, user, "DELETE", fmt.Sprintf("/api/reuniones/%d", child.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var count int64
	db.Model(&models.Intervencion{}).Count(&count)
	assert.Zero(t, count)

	resp = doJSON(router, user, "DELETE", fmt.Sprintf("/api/reuniones/%d", parent.ID), nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	resp = doJSON(router, user, "DELETE", fmt.Sprintf("/api/reuniones/%d", parent.ID), nil)
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestDeleteRemovesAttachments(t *testing.T) {
	db := setupTestDB(t)
	media := t.TempDir()
	router := setupTestRouter(db, Options{MediaDir: media}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	reunion := createReunion(t, db, models.Reunion{Titulo: "Comité"})

	created := postAttachment(t, router, user, reunion.ID, "informe.pdf")
	require.Len(t, created.Documentos, 1)
	stored := filepath.Join(media, filepath.FromSlash(created.Documentos[0].Archivo))
	_, err := os.Stat(stored)
	require.NoError(t, err)

	resp := doJSON(router, user, "DELETE", fmt.Sprintf("/api/reuniones/%d", reunion.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	_, err = os.Stat(stored)
	assert.True(t, os.IsNotExist(err))

	var docs int64
	db.Model(&models.IntervencionDocumento{}).Count(&docs)
	assert.Zero(t, docs)
}

func TestCreateIntervencionReloadFailure(t *testing.T) {
	db := setupTestDB(t)
	core, logs := observer.New(zap.ErrorLevel)
	notifier := &recordingNotifier{}
	router := setupTestRouter(db, Options{Notifier: notifier}, zap.New(core))
	user := createUser(t, db, "ana", models.SystemRoleUser)
	reunion := createReunion(t, db, models.Reunion{Titulo: "Comité"})

	require.NoError(t, db.Callback().Query().Before("gorm:query").Register("test:fail_intervenciones", func(tx *gorm.DB) {
		if tx.Statement.Table == "intervenciones" {
			tx.AddError(errors.New("database is locked"))
		}
	}))

	resp := doJSON(router, user, "POST", fmt.Sprintf("/api/reuniones/%d/intervenciones", reunion.ID),
		ContenidoRequest{Contenido: "Hola"})
	assert.Equal(t, http.StatusCreated, resp.Code)
	assert.Empty(t, notifier.sent)
	assert.Equal(t, 1, logs.FilterMessage("failed to reload intervention").Len())
}

func TestCreateIntervencionNotifies(t *testing.T) {
	db := setupTestDB(t)
	notifier := &recordingNotifier{}
	router := setupTestRouter(db, Options{Notifier: notifier}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	reunion := createReunion(t, db, models.Reunion{Titulo: "Comité"})

	resp := doJSON(router, user, "POST", fmt.Sprintf("/api/reuniones/%d/intervenciones", reunion.ID),
		ContenidoRequest{Contenido: "  Propongo revisar el cronograma  "})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created models.Intervencion
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, "Propongo revisar el cronograma", created.Contenido)
	assert.Equal(t, user.ID, created.AutorID)
	assert.Equal(t, "ana", created.Autor.Username)

	require.Len(t, notifier.sent, 1)
	assert.Equal(t, "Nueva intervención en \"Comité\"", notifier.sent[0].Subject)
	assert.Contains(t, notifier.sent[0].Body, "Propongo revisar el cronograma")

	resp = doJSON(router, user, "POST", fmt.Sprintf("/api/reuniones/%d/intervenciones", reunion.ID),
		ContenidoRequest{Contenido: "   "})
	assert.Equal(t, http.StatusBadRequest, resp.Code)
	resp = doJSON(router, user, "POST", "/api/reuniones/999/intervenciones", ContenidoRequest{Contenido: "x"})
	assert.Equal(t, http.StatusNotFound, resp.Code)
}

func TestNotificationFailureIsLogged(t *testing.T) {
	db := setupTestDB(t)
	core, logs := observer.New(zap.WarnLevel)
	notifier := &recordingNotifier{err: errors.New("graph down")}
	router := setupTestRouter(db, Options{Notifier: notifier}, zap.New(core))
	user := createUser(t, db, "ana", models.SystemRoleUser)
	reunion := createReunion(t, db, models.Reunion{Titulo: "Comité"})

	resp := doJSON(router, user, "POST", fmt.Sprintf("/api/reuniones/%d/intervenciones", reunion.ID),
		ContenidoRequest{Contenido: "Hola"})
	require.Equal(t, http.StatusCreated, resp.Code)

	var count int64
	db.Model(&models.Intervencion{}).Count(&count)
	assert.EqualValues(t, 1, count)
	require.Equal(t, 1, logs.FilterMessage("intervention notification failed").Len())
}

func TestCreateIntervencionWithAttachment(t *testing.T) {
	db := setupTestDB(t)
	media := t.TempDir()
	router := setupTestRouter(db, Options{MediaDir: media}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	reunion := createReunion(t, db, models.Reunion{Titulo: "Comité"})

	created := postAttachment(t, router, user, reunion.ID, "Acta Final.PDF")
	require.Len(t, created.Documentos, 1)
	doc := created.Documentos[0]
	assert.Equal(t, "Acta Final.PDF", doc.Nombre)
	assert.Equal(t, "intervenciones/", doc.Archivo[:len("intervenciones/")])
	assert.Equal(t, ".pdf", filepath.Ext(doc.Archivo))

	content, err := os.ReadFile(filepath.Join(media, filepath.FromSlash(doc.Archivo)))
	require.NoError(t, err)
	assert.Equal(t, "%PDF-1.4 fake", string(content))

	// Deleting the intervention removes the stored file too
	resp := doJSON(router, user, "DELETE", fmt.Sprintf("/api/intervenciones/%d", created.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	_, err = os.Stat(filepath.Join(media, filepath.FromSlash(doc.Archivo)))
	assert.True(t, os.IsNotExist(err))
}

func TestDeleteIntervencionAuthorOrAdmin(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	author := createUser(t, db, "ana", models.SystemRoleUser)
	other := createUser(t, db, "beto", models.SystemRoleUser)
	admin := createUser(t, db, "root", models.SystemRoleAdmin)
	reunion := createReunion(t, db, models.Reunion{Titulo: "Comité"})
	first := models.Intervencion{ReunionID: reunion.ID, AutorID: author.ID, Contenido: "uno"}
	second := models.Intervencion{ReunionID: reunion.ID, AutorID: author.ID, Contenido: "dos"}
	require.NoError(t, db.Create(&first).Error)
	require.NoError(t, db.Create(&second).Error)
	require.NoError(t, db.Create(&models.Comentario{IntervencionID: first.ID, AutorID: other.ID, Contenido: "c"}).Error)

	resp := doJSON(router, other, "DELETE", fmt.Sprintf("/api/intervenciones/%d", first.ID), nil)
	assert.Equal(t, http.StatusForbidden, resp.Code)

	resp = doJSON(router, author, "DELETE", fmt.Sprintf("/api/intervenciones/%d", first.ID), nil)
	assert.Equal(t, http.StatusOK, resp.Code)
	var comments int64
	db.Model(&models.Comentario{}).Count(&comments)
	assert.Zero(t, comments)

	resp = doJSON(router, admin, "DELETE", fmt.Sprintf("/api/intervenciones/%d", second.ID), nil)
	assert.Equal(t, http.StatusOK, resp.Code)
}

func TestCreateComentario(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db, Options{}, nil)
	user := createUser(t, db, "ana", models.SystemRoleUser)
	reunion := createReunion(t, db, models.Reunion{Titulo: "Comité"})
	intervencion := models.Intervencion{ReunionID: reunion.ID, AutorID: user.ID, Contenido: "uno"}
	require.NoError(t, db.Create(&intervencion).Error)

	resp := doJSON(router, user, "POST", fmt.Sprintf("/api/intervenciones/%d/comentarios", intervencion.ID),
		ContenidoRequest{Contenido: "De acuerdo"})
	require.Equal(t, http.StatusCreated, resp.Code, resp.Body.String())

	var created models.Comentario
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &created))
	assert.Equal(t, intervencion.ID, created.IntervencionID)
	assert.Equal(t, "ana", created.Autor.Username)

	resp = doJSON(router, user, "POST", "/api/intervenciones/999/comentarios", ContenidoRequest{Contenido: "x"})
	assert.Equal(t, http.StatusNotFound, resp.Code)

	resp = doJSON(router, user, "GET", fmt.Sprintf("/api/reuniones/%d/intervenciones", reunion.ID), nil)
	require.Equal(t, http.StatusOK, resp.Code)
	var list []models.Intervencion
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &list))
	require.Len(t, list, 1)
	assert.Len(t, list[0].Comentarios, 1)
}
