package handlers_test

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"prodtrack/internal/models"
)

func TestLoginRedirectsByRole(t *testing.T) {
	db, h := newTestEnv(t)
	seedUser(t, db, "boss", "secret", true, true)
	seedUser(t, db, "worker", "secret", false, true)

	rec := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"username": "boss", "password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Token    string `json:"token"`
		Redirect string `json:"redirect"`
	}
	decodeBody(t, rec, &resp)
	assert.NotEmpty(t, resp.Token)
	assert.Equal(t, "/admin/dashboard", resp.Redirect)

	rec = doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
		"username": "worker", "password": "secret",
	})
	require.Equal(t, http.StatusOK, rec.Code)
	decodeBody(t, rec, &resp)
	assert.Equal(t, "/menu", resp.Redirect)

	var sessions int64
	db.Model(&models.Session{}).Count(&sessions)
	assert.EqualValues(t, 2, sessions)
}

func TestLoginFailures(t *testing.T) {
	db, h := newTestEnv(t)
	seedUser(t, db, "worker", "secret", false, true)
	seedUser(t, db, "ghost", "secret", false, false)

	tests := []struct {
		name     string
		username string
		password string
	}{
		{"wrong_password", "worker", "nope"},
		{"inactive_user", "ghost", "secret"},
		{"unknown_user", "nobody", "secret"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := doJSON(t, h, http.MethodPost, "/login", "", map[string]string{
				"username": tt.username, "password": tt.password,
			})
			assert.Equal(t, http.StatusUnauthorized, rec.Code)
			assert.Contains(t, rec.Body.String(), "invalid username or password")
		})
	}
}

func TestLogoutRevokesSession(t *testing.T) {
	db, h := newTestEnv(t)
	seedUser(t, db, "worker", "secret", false, true)
	tok := login(t, h, "worker", "secret")

	rec := doJSON(t, h, http.MethodGet, "/me", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	rec = doJSON(t, h, http.MethodPost, "/logout", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)

	// The token is dead from here on.
	rec = doJSON(t, h, http.MethodGet, "/me", tok, nil)
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestProtectedRoutesRequireAuth(t *testing.T) {
	_, h := newTestEnv(t)
	for _, path := range []string{"/me", "/menu", "/workcenters", "/reports"} {
		rec := doJSON(t, h, http.MethodGet, path, "", nil)
		assert.Equal(t, http.StatusUnauthorized, rec.Code, path)
	}
}

func TestAdminRoutesRejectNonAdmin(t *testing.T) {
	db, h := newTestEnv(t)
	seedUser(t, db, "worker", "secret", false, true)
	tok := login(t, h, "worker", "secret")

	for _, path := range []string{"/admin/dashboard", "/admin/users", "/admin/reports", "/admin/master_data", "/admin/export_excel"} {
		rec := doJSON(t, h, http.MethodGet, path, tok, nil)
		assert.Equal(t, http.StatusForbidden, rec.Code, path)
	}
}

func TestMenuReturnsProfile(t *testing.T) {
	db, h := newTestEnv(t)
	seedUser(t, db, "worker", "secret", false, true)
	tok := login(t, h, "worker", "secret")

	rec := doJSON(t, h, http.MethodGet, "/menu", tok, nil)
	require.Equal(t, http.StatusOK, rec.Code)
	var resp struct {
		Username   string `json:"username"`
		Department string `json:"department"`
		IsAdmin    bool   `json:"is_admin"`
	}
	decodeBody(t, rec, &resp)
	assert.Equal(t, "worker", resp.Username)
	assert.Equal(t, "Production", resp.Department)
	assert.False(t, resp.IsAdmin)
}
