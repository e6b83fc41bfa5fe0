package models

import (
	"strings"
	"time"
)

// SystemRole represents a user's system-wide role
type SystemRole string

const (
	SystemRoleAdmin SystemRole = "admin"
	SystemRoleUser  SystemRole = "user"
)

// UnusablePasswordPrefix marks a password hash that can never match.
// Users created by OIDC or imported without a password carry one.
const UnusablePasswordPrefix = "!"

// User represents a user in the system
type User struct {
	ID           uint       `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time  `json:"created_at"`
	UpdatedAt    time.Time  `json:"updated_at"`
	Username     string     `gorm:"uniqueIndex;not null" json:"username"`
	Email        string     `gorm:"index" json:"email"` // Not unique, matched case-insensitively
	FirstName    string     `json:"first_name"`
	LastName     string     `json:"last_name"`
	PasswordHash string     `json:"-"`
	Active       bool       `gorm:"default:true" json:"active"`
	SystemRole   SystemRole `gorm:"type:varchar(20);default:'user'" json:"system_role"`
	LastLogin    *time.Time `json:"last_login,omitempty"`

	// Relationships
	KeycloakProfile *KeycloakProfile `gorm:"foreignKey:UserID" json:"-"`
	GruposTrabajo   []GrupoTrabajo   `gorm:"many2many:grupo_trabajo_usuarios;" json:"grupos_trabajo,omitempty"`
}

func (User) TableName() string { return "users" }

// FullName returns "first last", falling back to the username when both are blank.
func (u User) FullName() string {
	name := strings.TrimSpace(u.FirstName + " " + u.LastName)
	if name == "" {
		return u.Username
	}
	return name
}

// HasUsablePassword reports whether the user can log in with a password at all.
func (u User) HasUsablePassword() bool {
	return u.PasswordHash != "" && !strings.HasPrefix(u.PasswordHash, UnusablePasswordPrefix)
}
