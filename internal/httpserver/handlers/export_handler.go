package handlers

import (
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"prodtrack/internal/excel"
)

// ExportExcel streams the full production order report as a workbook.
// Unlike the report pages it never filters: every order, newest first.
func ExportExcel(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		rows, err := queryOrders(db, "", "created_at", "desc", 0)
		if err != nil {
			lg.Errorw("export query failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not load orders")
			return
		}

		xRows := make([]excel.Row, 0, len(rows))
		for _, row := range rows {
			xRows = append(xRows, excel.Row{
				ProductionOrder: row.ProductionOrder,
				WorkCenter:      row.WorkCenter,
				Quantity:        row.Quantity,
				OrderType:       row.OrderType,
				Name:            row.UserName,
				Department:      row.Department,
				CreatedAt:       row.CreatedAt,
			})
		}

		f, err := excel.BuildOrderReport(xRows)
		if err != nil {
			lg.Errorw("export workbook build failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not build export")
			return
		}
		defer f.Close()

		filename := fmt.Sprintf("production_orders_%s.xlsx", time.Now().Format("20060102_150405"))
		w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
		w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
		if err := f.Write(w); err != nil {
			lg.Errorw("export write failed", "error", err)
		}
	}
}
