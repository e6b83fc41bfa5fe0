package models

import "time"

// KeycloakProfile links a local user to its Keycloak subject and keeps the
// tokens from the latest login. The id token is needed for global sign-out.
type KeycloakProfile struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	UserID       uint      `gorm:"uniqueIndex;not null" json:"user_id"`
	KeycloakID   string    `gorm:"uniqueIndex;not null" json:"keycloak_id"` // OIDC subject (sub claim)
	IDToken      string    `json:"-"`
	AccessToken  string    `json:"-"`
	RefreshToken string    `json:"-"`

	// Relationships
	User User `gorm:"foreignKey:UserID" json:"user,omitempty"`
}
