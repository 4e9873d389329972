package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"gorm.io/gorm"
)

func respondJSON(w http.ResponseWriter, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
}

func respondError(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(map[string]string{"error": msg})
}

// respondWriteError maps a persistence failure onto the closed error
// taxonomy (validation / conflict / not-found / unknown). Raw driver text
// never reaches the client; the caller logs the real error.
func respondWriteError(w http.ResponseWriter, err error, msg string) {
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		respondError(w, http.StatusNotFound, "not found")
	case errors.Is(err, gorm.ErrDuplicatedKey) || isUniqueViolation(err):
		respondError(w, http.StatusConflict, msg+": already exists")
	default:
		respondError(w, http.StatusInternalServerError, msg)
	}
}

// isUniqueViolation catches constraint errors the drivers report without
// wrapping gorm.ErrDuplicatedKey (sqlite in tests, older pgx paths).
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "unique") || strings.Contains(s, "duplicate key")
}
