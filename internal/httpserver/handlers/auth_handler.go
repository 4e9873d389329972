package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"prodtrack/internal/auth"
	"prodtrack/internal/models"
)

type loginReq struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// Login authenticates an active user and opens a server-side session.
// The response carries the role-based landing route so the client can
// redirect admins to the dashboard and everyone else to the menu.
func Login(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req loginReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Username = strings.TrimSpace(req.Username)

		var u models.User
		err := db.First(&u, "username = ? AND is_active = ?", req.Username, true).Error
		// Same message for unknown, inactive, and wrong-password cases.
		if err != nil || auth.CheckPassword(u.PasswordHash, req.Password) != nil {
			respondError(w, http.StatusUnauthorized, "invalid username or password")
			return
		}

		jti := uuid.NewString()
		sess := models.Session{
			JTI:       jti,
			UserID:    u.ID,
			ExpiresAt: time.Now().Add(auth.SessionTTL()),
			CreatedAt: time.Now(),
		}
		if err := db.Create(&sess).Error; err != nil {
			lg.Errorw("login: session create failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not open session")
			return
		}
		tok, err := auth.Sign(u.ID, u.Username, u.IsAdmin, jti)
		if err != nil {
			lg.Errorw("login: token sign failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not open session")
			return
		}

		redirect := "/menu"
		if u.IsAdmin {
			redirect = "/admin/dashboard"
		}
		writeAudit(db, u.ID, "LOGIN", map[string]any{"username": u.Username})
		respondJSON(w, map[string]any{
			"token":    tok,
			"redirect": redirect,
			"user": map[string]any{
				"id":       u.ID,
				"username": u.Username,
				"name":     u.Name,
				"is_admin": u.IsAdmin,
			},
		})
	}
}

// Logout revokes the current session. The token stops working immediately.
func Logout(db *gorm.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		c := auth.FromContext(r.Context())
		now := time.Now()
		if err := db.Model(&models.Session{}).Where("jti = ?", c.JWTID).
			Update("revoked_at", &now).Error; err != nil {
			respondError(w, http.StatusInternalServerError, "logout failed")
			return
		}
		writeAudit(db, c.UserID, "LOGOUT", map[string]any{"username": c.Username})
		respondJSON(w, map[string]any{"message": "you have been logged out"})
	}
}

// Me returns the authenticated user's profile. Serves both /me and /menu,
// which is the entry page's data source.
func Me(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := auth.UserID(r.Context())
		var u models.User
		if err := db.First(&u, uid).Error; err != nil {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		respondJSON(w, map[string]any{
			"id":         u.ID,
			"username":   u.Username,
			"name":       u.Name,
			"department": u.Department,
			"is_admin":   u.IsAdmin,
		})
	}
}
