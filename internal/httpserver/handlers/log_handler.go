package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"prodtrack/internal/models"
)

// AuditLogs returns the most recent audit trail entries for the admin
// activity page.
func AuditLogs(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var logs []models.AuditLog
		if err := db.Order("created_at desc").Limit(200).Find(&logs).Error; err != nil {
			lg.Errorw("audit log list failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not load logs")
			return
		}
		respondJSON(w, logs)
	}
}
