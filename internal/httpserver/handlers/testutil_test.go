package handlers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"prodtrack/internal/auth"
	"prodtrack/internal/database"
	"prodtrack/internal/httpserver"
	"prodtrack/internal/models"
)

// newTestEnv stands up an in-memory database and the full router so
// tests exercise the real middleware chain.
func newTestEnv(t *testing.T) (*gorm.DB, http.Handler) {
	t.Helper()
	t.Setenv("JWT_SECRET", "test-secret")
	db, err := database.OpenTest()
	require.NoError(t, err)
	return db, httpserver.NewRouter(db, zap.NewNop().Sugar())
}

func seedUser(t *testing.T, db *gorm.DB, username, password string, isAdmin, isActive bool) models.User {
	t.Helper()
	hash, err := auth.HashPassword(password)
	require.NoError(t, err)
	u := models.User{
		Username:     username,
		PasswordHash: hash,
		Name:         "Test " + username,
		Department:   "Production",
		IsAdmin:      isAdmin,
		IsActive:     isActive,
		CreatedAt:    time.Now(),
		UpdatedAt:    time.Now(),
	}
	require.NoError(t, db.Create(&u).Error)
	return u
}

func seedWorkCenter(t *testing.T, db *gorm.DB, name string, active bool) models.WorkCenter {
	t.Helper()
	wc := models.WorkCenter{Name: name, IsActive: active, CreatedAt: time.Now(), UpdatedAt: time.Now()}
	require.NoError(t, db.Create(&wc).Error)
	return wc
}

func seedOrder(t *testing.T, db *gorm.DB, code string, wcID, userID uint, qty int, orderType string, createdAt time.Time) models.ProductionOrder {
	t.Helper()
	o := models.ProductionOrder{
		ProductionOrder: code,
		WorkCenterID:    wcID,
		Quantity:        qty,
		OrderType:       orderType,
		UserID:          userID,
		CreatedAt:       createdAt,
	}
	require.NoError(t, db.Create(&o).Error)
	return o
}

// doJSON fires a request through the router, optionally authenticated.
func doJSON(t *testing.T, h http.Handler, method, path, token string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, req)
	return rec
}

func login(t *testing.T, h http.Handler, username, password string) string {
	t.Helper()
	rec := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"username": username, "password": password,
	})
	require.Equal(t, http.StatusOK, rec.Code, "login should succeed: %s", rec.Body.String())
	var resp struct {
		Token string `json:"token"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Token)
	return resp.Token
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder, v any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), v))
}
