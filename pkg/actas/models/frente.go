package models

import (
	"regexp"
	"strings"
	"time"
	"unicode"

	"golang.org/x/text/runes"
	"golang.org/x/text/transform"
	"golang.org/x/text/unicode/norm"
	"gorm.io/gorm"
)

// FrenteTipo classifies a front. Meetings under an "actividad" front may own
// child meetings; their children normally sit under "tarea" fronts.
type FrenteTipo string

const (
	FrenteActividad FrenteTipo = "actividad"
	FrenteTarea     FrenteTipo = "tarea"
	FrenteOtro      FrenteTipo = "otro"
)

// Valid reports whether t is one of the known front types
func (t FrenteTipo) Valid() bool {
	switch t {
	case FrenteActividad, FrenteTarea, FrenteOtro:
		return true
	}
	return false
}

// Frente represents a work stream
type Frente struct {
	ID          uint       `gorm:"primarykey" json:"id"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
	Nombre      string     `gorm:"not null;uniqueIndex:idx_frente_tipo_nombre" json:"nombre"`
	Slug        string     `gorm:"index" json:"slug"`
	Descripcion string     `json:"descripcion"`
	Tipo        FrenteTipo `gorm:"type:varchar(20);not null;default:'otro';uniqueIndex:idx_frente_tipo_nombre" json:"tipo"`
}

func (Frente) TableName() string { return "frentes" }

var slugRe = regexp.MustCompile(`[^a-z0-9]+`)

// stripMarks decomposes accented letters and drops the combining marks.
// A transformer is stateful, so each call builds its own chain.
func stripMarks() transform.Transformer {
	return transform.Chain(norm.NFD, runes.Remove(runes.In(unicode.Mn)), norm.NFC)
}

// Slugify strips accents, lowercases name and collapses anything that is
// not an ASCII letter or digit into single hyphens.
func Slugify(name string) string {
	s, _, err := transform.String(stripMarks(), strings.TrimSpace(name))
	if err != nil {
		s = name
	}
	s = strings.ToLower(s)
	s = slugRe.ReplaceAllString(s, "-")
	return strings.Trim(s, "-")
}

// BeforeSave fills the slug from the name when it was left blank
func (f *Frente) BeforeSave(tx *gorm.DB) error {
	if f.Slug == "" {
		f.Slug = Slugify(f.Nombre)
	}
	if f.Tipo == "" {
		f.Tipo = FrenteOtro
	}
	return nil
}

// FirstFrente returns the front with the lowest ID, or nil when none exist.
// New meetings without a front are assigned to it.
func FirstFrente(db *gorm.DB) (*Frente, error) {
	var frentes []Frente
	if err := db.Order("id ASC").Limit(1).Find(&frentes).Error; err != nil {
		return nil, err
	}
	if len(frentes) == 0 {
		return nil, nil
	}
	return &frentes[0], nil
}
