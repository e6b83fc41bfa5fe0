package models

import "time"

const (
	DefaultGraphScope     = "https://graph.microsoft.com/.default"
	DefaultGraphGrantType = "client_credentials"
)

// GraphMailConfig holds the client credentials and mailboxes used to relay
// mail through Microsoft Graph. Only one is expected to be active; nothing
// enforces it, so readers pick the active row with the lowest ID.
type GraphMailConfig struct {
	ID           uint      `gorm:"primarykey" json:"id"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
	Nombre       string    `json:"nombre"`
	TenantID     string    `gorm:"not null" json:"tenant_id"`
	ClientID     string    `gorm:"not null" json:"client_id"`
	ClientSecret string    `gorm:"not null" json:"-"`
	Scope        string    `gorm:"default:'https://graph.microsoft.com/.default'" json:"scope"`
	GrantType    string    `gorm:"default:'client_credentials'" json:"grant_type"`
	EmailSend    string    `gorm:"not null" json:"email_send"`
	EmailReceive string    `gorm:"not null" json:"email_receive"`
	Activo       bool      `gorm:"default:false;index" json:"activo"`
}
