package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"github.com/google/uuid"

	"asset-dashboard/internal/model"
	"asset-dashboard/internal/store"
	"asset-dashboard/internal/table"
)

var maintenanceSearchFields = []string{
	"maintenance_id", "asset_id", "description", "performed_by", "status",
}

// ListMaintenance lists the maintenance log
// @Summary List maintenance records
// @Tags maintenance
// @Produce json
// @Param search query string false "Free-text search term"
// @Param sort_by query string false "Sort field"
// @Param order query string false "asc or desc"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{} "Maintenance page"
// @Router /maintenance [get]
func ListMaintenance(w http.ResponseWriter, r *http.Request) {
	records, err := store.ListMaintenance()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch maintenance records")
		return
	}

	page, meta := table.Apply(records, parseTableQuery(r, maintenanceSearchFields))
	writeJSON(w, http.StatusOK, listResponse(page, meta))
}

// CreateMaintenance logs a maintenance event
// @Summary Log maintenance
// @Description Record a maintenance event; the asset transitions to maintenance
// @Tags maintenance
// @Accept json
// @Produce json
// @Param record body model.MaintenanceRecord true "Maintenance record (asset_id required)"
// @Success 201 {object} model.MaintenanceRecord "Created record"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Router /maintenance [post]
func CreateMaintenance(w http.ResponseWriter, r *http.Request) {
	var rec model.MaintenanceRecord
	if err := json.NewDecoder(r.Body).Decode(&rec); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if rec.AssetID == "" {
		writeError(w, http.StatusBadRequest, "asset_id is required")
		return
	}

	if _, err := store.GetAsset(rec.AssetID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Asset not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch asset")
		return
	}

	rec.MaintenanceID = uuid.New().String()
	if rec.MaintenanceDate == "" {
		rec.MaintenanceDate = time.Now().UTC().Format(time.RFC3339)
	}
	if rec.Status == "" {
		rec.Status = "in_progress"
	}

	if err := store.SaveMaintenanceRecord(rec); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save maintenance record")
		return
	}
	if err := store.UpdateAssetStatus(rec.AssetID, model.AssetMaintenance); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update asset status")
		return
	}
	writeJSON(w, http.StatusCreated, rec)
}
