package handlers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"prodtrack/internal/auth"
	"prodtrack/internal/models"
)

// ListWorkCenters returns the active work centers offered on the
// in/out order entry forms. Soft-deleted centers are excluded here but
// keep appearing on historical orders.
func ListWorkCenters(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var wcs []models.WorkCenter
		if err := db.Where("is_active = ?", true).Order("name asc").Find(&wcs).Error; err != nil {
			lg.Errorw("workcenter list failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not load work centers")
			return
		}
		respondJSON(w, wcs)
	}
}

var errNegativeQuantity = errors.New("quantity must not be negative")

type orderEntry struct {
	WorkCenterID    uint   `json:"workcenter_id"`
	ProductionOrder string `json:"production_order"`
	Quantity        *int   `json:"quantity"`
}

type saveOrdersReq struct {
	OrderType string       `json:"order_type"`
	Entries   []orderEntry `json:"entries"`
}

// SaveOrders inserts a batch of production orders in one transaction.
// Entries without a work center are skipped, a missing quantity means 0,
// and any failure rolls back the whole batch.
func SaveOrders(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		uid := auth.UserID(r.Context())
		var req saveOrdersReq
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			respondError(w, http.StatusBadRequest, "invalid request body")
			return
		}
		req.OrderType = strings.ToUpper(strings.TrimSpace(req.OrderType))
		if req.OrderType != models.OrderTypeIn && req.OrderType != models.OrderTypeOut {
			respondError(w, http.StatusBadRequest, "order_type must be IN or OUT")
			return
		}

		saved := 0
		err := db.Transaction(func(tx *gorm.DB) error {
			for _, e := range req.Entries {
				if e.WorkCenterID == 0 {
					continue
				}
				qty := 0
				if e.Quantity != nil {
					qty = *e.Quantity
				}
				if qty < 0 {
					return errNegativeQuantity
				}
				o := models.ProductionOrder{
					ProductionOrder: strings.TrimSpace(e.ProductionOrder),
					WorkCenterID:    e.WorkCenterID,
					Quantity:        qty,
					OrderType:       req.OrderType,
					UserID:          uid,
					CreatedAt:       time.Now(),
				}
				if err := tx.Create(&o).Error; err != nil {
					return err
				}
				saved++
			}
			return nil
		})
		if err != nil {
			lg.Errorw("order batch save failed", "error", err, "order_type", req.OrderType)
			if errors.Is(err, errNegativeQuantity) {
				respondError(w, http.StatusBadRequest, err.Error())
				return
			}
			respondError(w, http.StatusInternalServerError, "error saving orders")
			return
		}

		writeAudit(db, uid, "ORDER_SAVE", map[string]any{"order_type": req.OrderType, "count": saved})
		respondJSON(w, map[string]any{
			"message": req.OrderType + " orders saved successfully",
			"saved":   saved,
		})
	}
}
