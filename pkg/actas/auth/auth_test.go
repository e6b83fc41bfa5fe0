package auth

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

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
	handler := NewHandler(db, nil)
	handler.RegisterRoutes(r.Group("/auth"))
	return r
}

func createUser(t *testing.T, db *gorm.DB, username, password string) models.User {
	t.Helper()
	hash, err := HashPassword(password)
	require.NoError(t, err)
	user := models.User{
		Username:     username,
		Email:        username + "@example.com",
		FirstName:    "Test",
		LastName:     "User",
		PasswordHash: hash,
		SystemRole:   models.SystemRoleUser,
	}
	require.NoError(t, db.Create(&user).Error)
	return user
}

func login(router *gin.Engine, username, password string) *httptest.ResponseRecorder {
	body, _ := json.Marshal(LoginRequest{Username: username, Password: password})
	req, _ := http.NewRequest("POST", "/auth/login", bytes.NewBuffer(body))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	return resp
}

func TestPasswordHashing(t *testing.T) {
	hash, err := HashPassword("testpassword123")
	require.NoError(t, err)

	assert.NotEqual(t, "testpassword123", hash)
	assert.True(t, CheckPassword("testpassword123", hash))
	assert.False(t, CheckPassword("wrongpassword", hash))
}

func TestUnusablePassword(t *testing.T) {
	p := UnusablePassword()
	assert.True(t, strings.HasPrefix(p, models.UnusablePasswordPrefix))
	assert.NotEqual(t, p, UnusablePassword())
	assert.False(t, CheckPassword("", p))
	assert.False(t, CheckPassword(p, p))
	assert.False(t, models.User{PasswordHash: p}.HasUsablePassword())
}

func TestJWTToken(t *testing.T) {
	token, err := GenerateToken(1, "alice", "user")
	require.NoError(t, err)

	claims, err := ValidateToken(token)
	require.NoError(t, err)
	assert.Equal(t, uint(1), claims.UserID)
	assert.Equal(t, "alice", claims.Username)
	assert.Equal(t, "user", claims.SystemRole)
}

func TestInvalidToken(t *testing.T) {
	_, err := ValidateToken("invalid-token")
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestExpiredToken(t *testing.T) {
	Configure("", time.Nanosecond)
	t.Cleanup(func() { Configure("", 24*time.Hour) })

	token, err := GenerateToken(1, "alice", "user")
	require.NoError(t, err)
	time.Sleep(1100 * time.Millisecond)

	_, err = ValidateToken(token)
	assert.ErrorIs(t, err, ErrExpiredToken)
}

func TestLogin(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	createUser(t, db, "alice", "password123")

	resp := login(router, "alice", "password123")
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var response AuthResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &response))
	assert.NotEmpty(t, response.Token)
	assert.Equal(t, "alice", response.User.Username)
	assert.Equal(t, "Test User", response.User.Name)

	var user models.User
	require.NoError(t, db.Where("username = ?", "alice").First(&user).Error)
	assert.NotNil(t, user.LastLogin)
}

func TestLoginWrongPassword(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	createUser(t, db, "alice", "password123")

	resp := login(router, "alice", "wrongpassword")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLoginUnusablePassword(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := models.User{Username: "sso", PasswordHash: UnusablePassword()}
	require.NoError(t, db.Create(&user).Error)

	resp := login(router, "sso", user.PasswordHash)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestLoginInactiveUser(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	user := createUser(t, db, "bob", "password123")
	require.NoError(t, db.Model(&user).Update("active", false).Error)

	resp := login(router, "bob", "password123")
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestMe(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)
	createUser(t, db, "alice", "password123")

	var authResponse AuthResponse
	resp := login(router, "alice", "password123")
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &authResponse))

	req, _ := http.NewRequest("GET", "/auth/me", nil)
	req.Header.Set("Authorization", "Bearer "+authResponse.Token)
	resp = httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	require.Equal(t, http.StatusOK, resp.Code, resp.Body.String())

	var userResponse UserResponse
	require.NoError(t, json.Unmarshal(resp.Body.Bytes(), &userResponse))
	assert.Equal(t, "alice@example.com", userResponse.Email)
}

func TestMeWithoutAuth(t *testing.T) {
	db := setupTestDB(t)
	router := setupTestRouter(db)

	req, _ := http.NewRequest("GET", "/auth/me", nil)
	resp := httptest.NewRecorder()
	router.ServeHTTP(resp, req)
	assert.Equal(t, http.StatusUnauthorized, resp.Code)
}

func TestRequireAdmin(t *testing.T) {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/admin", AuthMiddleware(), RequireAdmin(), func(c *gin.Context) {
		c.Status(http.StatusNoContent)
	})

	tests := []struct {
		role string
		want int
	}{
		{"admin", http.StatusNoContent},
		{"user", http.StatusForbidden},
	}
	for _, tt := range tests {
		t.Run(tt.role, func(t *testing.T) {
			token, err := GenerateToken(7, "someone", tt.role)
			require.NoError(t, err)
			req, _ := http.NewRequest("GET", "/admin", nil)
			req.Header.Set("Authorization", "Bearer "+token)
			resp := httptest.NewRecorder()
			r.ServeHTTP(resp, req)
			assert.Equal(t, tt.want, resp.Code)
		})
	}
}
