// Package oidc signs users in through Keycloak and keeps their profile
// (subject id and latest tokens) in the database.
package oidc

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/models"
	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// ErrMissingSubject is returned for claims without a sub
var ErrMissingSubject = errors.New("claims have no subject")

// Claims are the ID token claims used to provision users
type Claims struct {
	Subject           string `json:"sub"`
	Email             string `json:"email"`
	GivenName         string `json:"given_name"`
	FamilyName        string `json:"family_name"`
	PreferredUsername string `json:"preferred_username"`
}

// Tokens are persisted on every login; the ID token is the hint for global sign-out
type Tokens struct {
	IDToken      string
	AccessToken  string
	RefreshToken string
}

// Service resolves and provisions local users for Keycloak identities
type Service struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewService creates an identity service
func NewService(db *gorm.DB, log *zap.Logger) *Service {
	if log == nil {
		log = zap.NewNop()
	}
	return &Service{db: db, log: log.Named("oidc")}
}

// ResolveUser finds the local user for claims: by stored subject first, then
// by case-insensitive email. It returns nil without error when neither matches.
func (s *Service) ResolveUser(claims Claims) (*models.User, error) {
	return resolveUser(s.db, claims)
}

func resolveUser(db *gorm.DB, claims Claims) (*models.User, error) {
	if claims.Subject != "" {
		var profile models.KeycloakProfile
		err := db.Preload("User").Where("keycloak_id = ?", claims.Subject).First(&profile).Error
		if err == nil {
			return &profile.User, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	if email := strings.TrimSpace(claims.Email); email != "" {
		var user models.User
		err := db.Where("LOWER(email) = LOWER(?)", email).Order("id ASC").First(&user).Error
		if err == nil {
			return &user, nil
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
	}

	return nil, nil
}

// Authenticate creates or refreshes the user for claims and upserts the
// profile keyed on the subject, storing tokens.
func (s *Service) Authenticate(ctx context.Context, claims Claims, tokens Tokens) (*models.User, error) {
	if claims.Subject == "" {
		return nil, ErrMissingSubject
	}

	var user *models.User
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		found, err := resolveUser(tx, claims)
		if err != nil {
			return err
		}

		if found == nil {
			username, err := uniqueUsername(tx, claims)
			if err != nil {
				return err
			}
			found = &models.User{
				Username:     username,
				Email:        claims.Email,
				FirstName:    claims.GivenName,
				LastName:     claims.FamilyName,
				PasswordHash: auth.UnusablePassword(),
				Active:       true,
				SystemRole:   models.SystemRoleUser,
			}
			if err := tx.Create(found).Error; err != nil {
				return fmt.Errorf("create user: %w", err)
			}
			s.log.Info("created user from keycloak", zap.Uint("user_id", found.ID), zap.String("sub", claims.Subject))
		} else {
			updates := map[string]interface{}{}
			if claims.GivenName != "" {
				updates["first_name"] = claims.GivenName
			}
			if claims.FamilyName != "" {
				updates["last_name"] = claims.FamilyName
			}
			if claims.Email != "" {
				updates["email"] = claims.Email
			}
			if len(updates) > 0 {
				if err := tx.Model(found).Updates(updates).Error; err != nil {
					return fmt.Errorf("update user: %w", err)
				}
			}
		}

		// A user re-linked to a new subject keeps its single profile row.
		if err := tx.Model(&models.KeycloakProfile{}).
			Where("user_id = ? AND keycloak_id <> ?", found.ID, claims.Subject).
			Update("keycloak_id", claims.Subject).Error; err != nil {
			return fmt.Errorf("relink profile: %w", err)
		}

		profile := models.KeycloakProfile{
			UserID:       found.ID,
			KeycloakID:   claims.Subject,
			IDToken:      tokens.IDToken,
			AccessToken:  tokens.AccessToken,
			RefreshToken: tokens.RefreshToken,
		}
		if err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "keycloak_id"}},
			DoUpdates: clause.AssignmentColumns([]string{"id_token", "access_token", "refresh_token", "updated_at"}),
		}).Create(&profile).Error; err != nil {
			return fmt.Errorf("upsert profile: %w", err)
		}

		// The profile row decides the owner if a concurrent login won the insert.
		var stored models.KeycloakProfile
		if err := tx.Preload("User").Where("keycloak_id = ?", claims.Subject).First(&stored).Error; err != nil {
			return err
		}
		user = &stored.User
		return nil
	})
	if err != nil {
		return nil, err
	}
	return user, nil
}

// IDTokenFor returns the stored ID token for the user, or "" without a profile
func (s *Service) IDTokenFor(userID uint) (string, error) {
	var profile models.KeycloakProfile
	err := s.db.Where("user_id = ?", userID).First(&profile).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return profile.IDToken, nil
}

func uniqueUsername(tx *gorm.DB, claims Claims) (string, error) {
	base := strings.TrimSpace(claims.PreferredUsername)
	if base == "" && claims.Email != "" {
		base = strings.SplitN(claims.Email, "@", 2)[0]
	}
	if base == "" {
		base = claims.Subject
	}

	candidate := base
	for i := 1; ; i++ {
		var n int64
		if err := tx.Model(&models.User{}).Where("username = ?", candidate).Count(&n).Error; err != nil {
			return "", err
		}
		if n == 0 {
			return candidate, nil
		}
		candidate = fmt.Sprintf("%s-%d", base, i)
	}
}
