package handlers

import (
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"prodtrack/internal/models"
)

// orderRow is the flat joined row the report pages and the export render:
// the order plus the work center it was logged against and the user who
// logged it.
type orderRow struct {
	ID              uint      `json:"id"`
	ProductionOrder string    `json:"production_order"`
	WorkCenter      string    `json:"workcenter"`
	Quantity        int       `json:"quantity"`
	OrderType       string    `json:"order_type"`
	UserName        string    `json:"user_name"`
	Department      string    `json:"department"`
	CreatedAt       time.Time `json:"created_at"`
}

var reportSortColumns = map[string]string{
	"created_at":       "created_at",
	"production_order": "production_order",
	"quantity":         "quantity",
}

// queryOrders loads production orders joined with their work center and
// user. search filters on the order code; sortBy outside the whitelist
// falls back to created_at, order defaults to descending.
func queryOrders(db *gorm.DB, search, sortBy, order string, limit int) ([]orderRow, error) {
	col, ok := reportSortColumns[sortBy]
	if !ok {
		col = "created_at"
	}
	dir := "desc"
	if order == "asc" {
		dir = "asc"
	}

	q := db.Model(&models.ProductionOrder{}).
		Preload("WorkCenter").Preload("User").
		Order(col + " " + dir)
	if search != "" {
		q = q.Where("production_order LIKE ?", "%"+search+"%")
	}
	if limit > 0 {
		q = q.Limit(limit)
	}

	var orders []models.ProductionOrder
	if err := q.Find(&orders).Error; err != nil {
		return nil, err
	}

	rows := make([]orderRow, 0, len(orders))
	for _, o := range orders {
		name := o.User.Name
		if name == "" {
			name = o.User.Username
		}
		dept := o.User.Department
		if dept == "" {
			dept = "-"
		}
		rows = append(rows, orderRow{
			ID:              o.ID,
			ProductionOrder: o.ProductionOrder,
			WorkCenter:      o.WorkCenter.Name,
			Quantity:        o.Quantity,
			OrderType:       o.OrderType,
			UserName:        name,
			Department:      dept,
			CreatedAt:       o.CreatedAt,
		})
	}
	return rows, nil
}

// Reports serves the filtered, sorted order listing. The same handler
// backs /reports and /admin/reports; only the route's guard differs.
func Reports(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		search := r.URL.Query().Get("search")
		sortBy := r.URL.Query().Get("sort")
		order := r.URL.Query().Get("order")

		rows, err := queryOrders(db, search, sortBy, order, 0)
		if err != nil {
			lg.Errorw("report query failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not load report")
			return
		}
		respondJSON(w, map[string]any{
			"orders": rows,
			"search": search,
			"sort":   sortBy,
			"order":  order,
		})
	}
}
