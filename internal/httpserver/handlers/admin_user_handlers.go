package handlers

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"prodtrack/internal/auth"
	"prodtrack/internal/models"
)

func urlID(r *http.Request) (uint, error) {
	id, err := strconv.ParseUint(chi.URLParam(r, "id"), 10, 32)
	return uint(id), err
}

// ListUsers returns every user (active or not) plus the active
// departments offered on the user form.
func ListUsers(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var users []models.User
		if err := db.Order("created_at desc").Find(&users).Error; err != nil {
			lg.Errorw("user list failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not load users")
			return
		}
		var departments []models.Department
		if err := db.Where("is_active = ?", true).Order("name asc").Find(&departments).Error; err != nil {
			lg.Errorw("department list failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not load users")
			return
		}
		respondJSON(w, map[string]any{"users": users, "departments": departments})
	}
}

type userReq struct {
	Username   string `json:"username"`
	Name       string `json:"name"`
	Department string `json:"department"`
	Password   string `json:"password"`
	IsAdmin    bool   `json:"is_admin"`
	IsActive   *bool  `json:"is_active"`
}

func CreateUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req userReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" || req.Password == "" {
			respondError(w, http.StatusBadRequest, "username and password required")
			return
		}

		var count int64
		db.Model(&models.User{}).Where("username = ?", req.Username).Count(&count)
		if count > 0 {
			respondError(w, http.StatusConflict, "username already exists")
			return
		}

		hash, err := auth.HashPassword(req.Password)
		if err != nil {
			lg.Errorw("user create: hash failed", "error", err)
			respondError(w, http.StatusInternalServerError, "error creating user")
			return
		}
		u := models.User{
			Username:     req.Username,
			PasswordHash: hash,
			Name:         req.Name,
			Department:   req.Department,
			IsAdmin:      req.IsAdmin,
			IsActive:     true,
			CreatedAt:    time.Now(),
			UpdatedAt:    time.Now(),
		}
		if err := db.Create(&u).Error; err != nil {
			lg.Errorw("user create failed", "error", err)
			respondWriteError(w, err, "error creating user")
			return
		}
		writeAudit(db, auth.UserID(r.Context()), "USER_CREATE", map[string]any{"username": u.Username, "user_id": u.ID})
		respondJSON(w, map[string]any{"id": u.ID, "message": "user created successfully"})
	}
}

// UpdateUser overwrites the mutable user fields. A blank password keeps
// the stored hash.
func UpdateUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid id")
			return
		}
		var req userReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.Username = strings.TrimSpace(req.Username)
		if req.Username == "" {
			respondError(w, http.StatusBadRequest, "username required")
			return
		}
		var u models.User
		if err := db.First(&u, id).Error; err != nil {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		u.Username = req.Username
		u.Name = req.Name
		u.Department = req.Department
		u.IsAdmin = req.IsAdmin
		if req.IsActive != nil {
			u.IsActive = *req.IsActive
		}
		if req.Password != "" {
			hash, err := auth.HashPassword(req.Password)
			if err != nil {
				lg.Errorw("user update: hash failed", "error", err)
				respondError(w, http.StatusInternalServerError, "error updating user")
				return
			}
			u.PasswordHash = hash
		}
		u.UpdatedAt = time.Now()
		if err := db.Save(&u).Error; err != nil {
			lg.Errorw("user update failed", "error", err, "user_id", id)
			respondWriteError(w, err, "error updating user")
			return
		}
		writeAudit(db, auth.UserID(r.Context()), "USER_UPDATE", map[string]any{"user_id": u.ID})
		respondJSON(w, map[string]any{"message": "user updated successfully"})
	}
}

// DeleteUser soft-deletes a user. Deactivating your own account is
// refused so an admin cannot lock themselves out.
func DeleteUser(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid id")
			return
		}
		var u models.User
		if err := db.First(&u, id).Error; err != nil {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		if u.ID == auth.UserID(r.Context()) {
			respondError(w, http.StatusBadRequest, "cannot delete your own account")
			return
		}
		u.IsActive = false
		u.UpdatedAt = time.Now()
		if err := db.Save(&u).Error; err != nil {
			lg.Errorw("user delete failed", "error", err, "user_id", id)
			respondWriteError(w, err, "error deleting user")
			return
		}
		writeAudit(db, auth.UserID(r.Context()), "USER_DELETE", map[string]any{"user_id": u.ID})
		respondJSON(w, map[string]any{"message": "user deleted successfully"})
	}
}
