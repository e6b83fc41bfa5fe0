package filtros

import (
	"net/url"
	"testing"
	"time"

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

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func TestParse(t *testing.T) {
	f := Parse(url.Values{
		"proyecto":    {"3"},
		"frente":      {"abc"},
		"responsable": {"-1"},
		"estado":      {"cerrada"},
	})
	require.NotNil(t, f.ProyectoID)
	assert.Equal(t, uint(3), *f.ProyectoID)
	assert.Nil(t, f.FrenteID)
	assert.Nil(t, f.ResponsableID)
	assert.Equal(t, models.EstadoCerrada, f.Estado)

	empty := Parse(url.Values{})
	assert.Equal(t, Filtros{}, empty)
}

func TestAnotar(t *testing.T) {
	today := date(2024, 7, 1)
	ptr := func(t time.Time) *time.Time { return &t }

	tests := []struct {
		name    string
		fin     *time.Time
		days    *int
		overdue bool
	}{
		{"no end date", nil, nil, false},
		{"due today", ptr(date(2024, 7, 1)), intPtr(0), false},
		{"future", ptr(date(2024, 7, 11)), intPtr(10), false},
		{"past", ptr(date(2024, 6, 28)), intPtr(3), true},
		{"past with time of day", ptr(time.Date(2024, 6, 30, 23, 0, 0, 0, time.UTC)), intPtr(1), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a := Anotar(models.Reunion{FechaFinalizacion: tt.fin}, today)
			assert.Equal(t, tt.days, a.DaysRemaining)
			assert.Equal(t, tt.overdue, a.Overdue)
			if a.DaysRemaining != nil {
				assert.GreaterOrEqual(t, *a.DaysRemaining, 0)
			}
		})
	}
}

func intPtr(n int) *int { return &n }

func TestAgruparPorFrente(t *testing.T) {
	alpha := &models.Frente{Nombre: "Alpha"}
	beta := &models.Frente{Nombre: "Beta"}
	rs := []ReunionAnotada{
		{Reunion: models.Reunion{Titulo: "a1", Frente: alpha}},
		{Reunion: models.Reunion{Titulo: "a2", Frente: alpha}},
		{Reunion: models.Reunion{Titulo: "b1", Frente: beta}},
		{Reunion: models.Reunion{Titulo: "n1"}},
	}

	groups := AgruparPorFrente(rs)
	require.Len(t, groups, 3)
	assert.Equal(t, "Alpha", groups[0].Frente)
	assert.Equal(t, 2, groups[0].Count)
	assert.Equal(t, "a2", groups[0].Reuniones[1].Titulo)
	assert.Equal(t, "Beta", groups[1].Frente)
	assert.Equal(t, SinFrente, groups[2].Frente)

	assert.Empty(t, AgruparPorFrente(nil))
}

func TestApplyAndOrder(t *testing.T) {
	db := setupTestDB(t)

	alpha := models.Frente{Nombre: "Alpha", Tipo: models.FrenteActividad}
	beta := models.Frente{Nombre: "Beta", Tipo: models.FrenteActividad}
	require.NoError(t, db.Create(&alpha).Error)
	require.NoError(t, db.Create(&beta).Error)
	p := models.Proyecto{Nombre: "P"}
	require.NoError(t, db.Create(&p).Error)
	user := models.User{Username: "ana"}
	require.NoError(t, db.Create(&user).Error)

	rs := []models.Reunion{
		{Titulo: "beta-old", FrenteID: &beta.ID, Fecha: date(2024, 1, 1)},
		{Titulo: "alpha-old", FrenteID: &alpha.ID, Fecha: date(2024, 1, 1), ProyectoID: &p.ID},
		{Titulo: "alpha-new", FrenteID: &alpha.ID, Fecha: date(2024, 5, 1), Estado: models.EstadoCerrada},
		{Titulo: "sin-frente", Fecha: date(2024, 6, 1)},
	}
	for i := range rs {
		require.NoError(t, db.Create(&rs[i]).Error)
	}
	require.NoError(t, db.Model(&rs[0]).Association("Responsables").Append(&user))

	var all []models.Reunion
	require.NoError(t, OrdenPorFrente(db.Model(&models.Reunion{})).Find(&all).Error)
	var titles []string
	for _, r := range all {
		titles = append(titles, r.Titulo)
	}
	assert.Equal(t, []string{"alpha-new", "alpha-old", "beta-old", "sin-frente"}, titles)

	count := func(f Filtros) int64 {
		var n int64
		require.NoError(t, f.Apply(db.Model(&models.Reunion{})).Count(&n).Error)
		return n
	}
	assert.EqualValues(t, 4, count(Filtros{}))
	assert.EqualValues(t, 2, count(Filtros{FrenteID: &alpha.ID}))
	assert.EqualValues(t, 1, count(Filtros{ProyectoID: &p.ID}))
	assert.EqualValues(t, 1, count(Filtros{Estado: models.EstadoCerrada}))
	assert.EqualValues(t, 1, count(Filtros{ResponsableID: &user.ID}))
	assert.EqualValues(t, 0, count(Filtros{FrenteID: &beta.ID, Estado: models.EstadoCerrada}))
}

func TestPagina(t *testing.T) {
	assert.Equal(t, 1, ParsePage(url.Values{"page": {"x"}}))
	assert.Equal(t, 1, ParsePage(url.Values{"page": {"0"}}))
	assert.Equal(t, 3, ParsePage(url.Values{"page": {"3"}}))

	p := NewPagina(5, 20, PageSize)
	assert.Equal(t, 3, p.Pages)
	assert.Equal(t, 3, p.Page)
	assert.Equal(t, 18, p.Offset())

	empty := NewPagina(1, 0, PageSize)
	assert.Equal(t, 1, empty.Pages)
	assert.Equal(t, 0, empty.Offset())
}
