package handlers

import (
	"encoding/json"

	"gorm.io/gorm"

	"prodtrack/internal/models"
)

// writeAudit records an action against the audit trail. Best effort: a
// failed audit insert never fails the request that triggered it.
func writeAudit(db *gorm.DB, userID uint, action string, metadata map[string]any) {
	md, _ := json.Marshal(metadata)
	var uid *uint
	if userID != 0 {
		uid = &userID
	}
	_ = db.Create(&models.AuditLog{UserID: uid, Action: action, Metadata: models.JSONB(md)}).Error
}
