package handlers

import (
	"net/http"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"prodtrack/internal/models"
)

// Dashboard returns the admin landing page numbers: active master data
// counts, in/out totals, and the ten most recent orders.
func Dashboard(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var totalUsers, totalWorkCenters, totalIn, totalOut int64
		counts := []error{
			db.Model(&models.User{}).Where("is_active = ?", true).Count(&totalUsers).Error,
			db.Model(&models.WorkCenter{}).Where("is_active = ?", true).Count(&totalWorkCenters).Error,
			db.Model(&models.ProductionOrder{}).Where("order_type = ?", models.OrderTypeIn).Count(&totalIn).Error,
			db.Model(&models.ProductionOrder{}).Where("order_type = ?", models.OrderTypeOut).Count(&totalOut).Error,
		}
		for _, err := range counts {
			if err != nil {
				lg.Errorw("dashboard count failed", "error", err)
				respondError(w, http.StatusInternalServerError, "could not load dashboard")
				return
			}
		}

		recent, err := queryOrders(db, "", "created_at", "desc", 10)
		if err != nil {
			lg.Errorw("dashboard recent orders failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not load dashboard")
			return
		}

		respondJSON(w, map[string]any{
			"total_users":       totalUsers,
			"total_workcenters": totalWorkCenters,
			"total_in_orders":   totalIn,
			"total_out_orders":  totalOut,
			"recent_orders":     recent,
		})
	}
}
