// Package importacion bulk-creates users from a CSV file.
package importacion

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/mikepea/actas/pkg/actas/auth"
	"github.com/mikepea/actas/pkg/actas/models"
	"gorm.io/gorm"
)

// Columns lists the recognised header names
var Columns = []string{"username", "email", "first_name", "last_name", "password"}

// ErrMissingUsernameColumn is returned when the header has no username column
var ErrMissingUsernameColumn = errors.New("csv header has no username column")

// Result represents the result of an import
type Result struct {
	Created int      `json:"created"`
	Skipped int      `json:"skipped"`
	Errors  []string `json:"errors,omitempty"`
}

// ImportUsers creates one user per CSV row. Rows whose username already
// exists, in the database or earlier in the file, are skipped and counted.
// Missing columns read as empty; a blank password gives an unusable one.
func ImportUsers(db *gorm.DB, r io.Reader) (Result, error) {
	var result Result

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err == io.EOF {
		return result, nil
	}
	if err != nil {
		return result, fmt.Errorf("read csv header: %w", err)
	}

	index := map[string]int{}
	for i, name := range header {
		name = strings.ToLower(strings.TrimSpace(strings.TrimPrefix(name, "\ufeff")))
		if _, dup := index[name]; !dup {
			index[name] = i
		}
	}
	if _, ok := index["username"]; !ok {
		return result, ErrMissingUsernameColumn
	}

	field := func(record []string, name string) string {
		i, ok := index[name]
		if !ok || i >= len(record) {
			return ""
		}
		return strings.TrimSpace(record[i])
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return result, fmt.Errorf("read csv line %d: %w", line, err)
		}

		username := field(record, "username")
		if username == "" {
			result.Skipped++
			result.Errors = append(result.Errors, fmt.Sprintf("line %d: empty username", line))
			continue
		}

		var existing int64
		if err := db.Model(&models.User{}).Where("username = ?", username).Count(&existing).Error; err != nil {
			return result, err
		}
		if existing > 0 {
			result.Skipped++
			continue
		}

		hash := auth.UnusablePassword()
		if password := field(record, "password"); password != "" {
			if hash, err = auth.HashPassword(password); err != nil {
				return result, fmt.Errorf("line %d: hash password: %w", line, err)
			}
		}

		user := models.User{
			Username:     username,
			Email:        field(record, "email"),
			FirstName:    field(record, "first_name"),
			LastName:     field(record, "last_name"),
			PasswordHash: hash,
			Active:       true,
			SystemRole:   models.SystemRoleUser,
		}
		if err := db.Create(&user).Error; err != nil {
			return result, fmt.Errorf("line %d: create user %q: %w", line, username, err)
		}
		result.Created++
	}

	return result, nil
}
