package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"go.uber.org/zap"
	"gorm.io/gorm"

	"prodtrack/internal/auth"
	"prodtrack/internal/models"
)

// MasterData returns every work center and department, inactive ones
// included, for the management page.
func MasterData(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var wcs []models.WorkCenter
		var depts []models.Department
		if err := db.Order("name asc").Find(&wcs).Error; err != nil {
			lg.Errorw("master data load failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not load master data")
			return
		}
		if err := db.Order("name asc").Find(&depts).Error; err != nil {
			lg.Errorw("master data load failed", "error", err)
			respondError(w, http.StatusInternalServerError, "could not load master data")
			return
		}
		respondJSON(w, map[string]any{"workcenters": wcs, "departments": depts})
	}
}

type nameReq struct {
	Name     string `json:"name"`
	IsActive *bool  `json:"is_active"`
}

func decodeNameReq(w http.ResponseWriter, r *http.Request) (nameReq, bool) {
	var req nameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		respondError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	req.Name = strings.TrimSpace(req.Name)
	return req, true
}

func CreateWorkCenter(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeNameReq(w, r)
		if !ok {
			return
		}
		if req.Name == "" {
			respondError(w, http.StatusBadRequest, "name required")
			return
		}
		wc := models.WorkCenter{Name: req.Name, IsActive: true, CreatedAt: time.Now(), UpdatedAt: time.Now()}
		if err := db.Create(&wc).Error; err != nil {
			lg.Errorw("workcenter create failed", "error", err)
			respondWriteError(w, err, "error creating work center")
			return
		}
		writeAudit(db, auth.UserID(r.Context()), "WORKCENTER_CREATE", map[string]any{"workcenter_id": wc.ID, "name": wc.Name})
		respondJSON(w, map[string]any{"id": wc.ID, "message": "work center created successfully"})
	}
}

func UpdateWorkCenter(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid id")
			return
		}
		req, ok := decodeNameReq(w, r)
		if !ok {
			return
		}
		var wc models.WorkCenter
		if err := db.First(&wc, id).Error; err != nil {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		if req.Name != "" {
			wc.Name = req.Name
		}
		if req.IsActive != nil {
			wc.IsActive = *req.IsActive
		}
		wc.UpdatedAt = time.Now()
		if err := db.Save(&wc).Error; err != nil {
			lg.Errorw("workcenter update failed", "error", err, "workcenter_id", id)
			respondWriteError(w, err, "error updating work center")
			return
		}
		writeAudit(db, auth.UserID(r.Context()), "WORKCENTER_UPDATE", map[string]any{"workcenter_id": wc.ID})
		respondJSON(w, map[string]any{"message": "work center updated successfully"})
	}
}

// DeleteWorkCenter soft-deletes: the center disappears from the order
// entry forms, historical orders keep referencing it.
func DeleteWorkCenter(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid id")
			return
		}
		var wc models.WorkCenter
		if err := db.First(&wc, id).Error; err != nil {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		wc.IsActive = false
		wc.UpdatedAt = time.Now()
		if err := db.Save(&wc).Error; err != nil {
			lg.Errorw("workcenter delete failed", "error", err, "workcenter_id", id)
			respondWriteError(w, err, "error deleting work center")
			return
		}
		writeAudit(db, auth.UserID(r.Context()), "WORKCENTER_DELETE", map[string]any{"workcenter_id": wc.ID})
		respondJSON(w, map[string]any{"message": "work center deleted successfully"})
	}
}

func CreateDepartment(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req, ok := decodeNameReq(w, r)
		if !ok {
			return
		}
		if req.Name == "" {
			respondError(w, http.StatusBadRequest, "name required")
			return
		}
		d := models.Department{Name: req.Name, IsActive: true, CreatedAt: time.Now(), UpdatedAt: time.Now()}
		if err := db.Create(&d).Error; err != nil {
			lg.Errorw("department create failed", "error", err)
			respondWriteError(w, err, "error creating department")
			return
		}
		writeAudit(db, auth.UserID(r.Context()), "DEPARTMENT_CREATE", map[string]any{"department_id": d.ID, "name": d.Name})
		respondJSON(w, map[string]any{"id": d.ID, "message": "department created successfully"})
	}
}

func UpdateDepartment(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid id")
			return
		}
		req, ok := decodeNameReq(w, r)
		if !ok {
			return
		}
		var d models.Department
		if err := db.First(&d, id).Error; err != nil {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		if req.Name != "" {
			d.Name = req.Name
		}
		if req.IsActive != nil {
			d.IsActive = *req.IsActive
		}
		d.UpdatedAt = time.Now()
		if err := db.Save(&d).Error; err != nil {
			lg.Errorw("department update failed", "error", err, "department_id", id)
			respondWriteError(w, err, "error updating department")
			return
		}
		writeAudit(db, auth.UserID(r.Context()), "DEPARTMENT_UPDATE", map[string]any{"department_id": d.ID})
		respondJSON(w, map[string]any{"message": "department updated successfully"})
	}
}

func DeleteDepartment(db *gorm.DB, lg *zap.SugaredLogger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := urlID(r)
		if err != nil {
			respondError(w, http.StatusBadRequest, "invalid id")
			return
		}
		var d models.Department
		if err := db.First(&d, id).Error; err != nil {
			respondError(w, http.StatusNotFound, "not found")
			return
		}
		d.IsActive = false
		d.UpdatedAt = time.Now()
		if err := db.Save(&d).Error; err != nil {
			lg.Errorw("department delete failed", "error", err, "department_id", id)
			respondWriteError(w, err, "error deleting department")
			return
		}
		writeAudit(db, auth.UserID(r.Context()), "DEPARTMENT_DELETE", map[string]any{"department_id": d.ID})
		respondJSON(w, map[string]any{"message": "department deleted successfully"})
	}
}
