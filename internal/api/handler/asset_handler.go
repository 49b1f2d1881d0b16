package handler

import (
	"database/sql"
	"encoding/json"
	"errors"
	"net/http"
	"time"

	"asset-dashboard/internal/model"
	"asset-dashboard/internal/store"
	"asset-dashboard/internal/table"
)

// assetSearchFields are the columns the free-text search covers by default.
var assetSearchFields = []string{
	"asset_id", "asset_tag", "name", "category", "status", "serial_number", "specifications",
}

// ListAssets lists the asset inventory
// @Summary List assets
// @Description Get the asset inventory, filtered, sorted and paginated by the table query parameters
// @Tags assets
// @Produce json
// @Param search query string false "Free-text search term"
// @Param fields query string false "Comma-separated fields to search"
// @Param sort_by query string false "Sort field"
// @Param order query string false "asc or desc"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{} "Assets page"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /assets [get]
func ListAssets(w http.ResponseWriter, r *http.Request) {
	assets, err := store.ListAssets()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch assets")
		return
	}

	page, meta := table.Apply(assets, parseTableQuery(r, assetSearchFields))
	writeJSON(w, http.StatusOK, listResponse(page, meta))
}

// GetAsset retrieves a single asset
// @Summary Get asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} map[string]interface{} "Asset"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Router /assets/{id} [get]
func GetAsset(w http.ResponseWriter, r *http.Request) {
	id := idFromPath(r.URL.Path, "/api/v1/assets/", "")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Asset ID is required")
		return
	}

	asset, err := store.GetAsset(id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Asset not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch asset")
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// CreateAsset adds an asset to the inventory
// @Summary Create asset
// @Tags assets
// @Accept json
// @Produce json
// @Param asset body model.Asset true "Asset"
// @Success 201 {object} model.Asset "Created asset"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Router /assets [post]
func CreateAsset(w http.ResponseWriter, r *http.Request) {
	var asset model.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if asset.AssetID == "" || asset.Name == "" {
		writeError(w, http.StatusBadRequest, "asset_id and name are required")
		return
	}
	if asset.Status == "" {
		asset.Status = model.AssetAvailable
	}
	asset.CreatedAt = time.Now().UTC()

	if err := store.SaveAsset(asset); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save asset")
		return
	}
	writeJSON(w, http.StatusCreated, asset)
}

// UpdateAsset replaces an asset's details
// @Summary Update asset
// @Tags assets
// @Accept json
// @Produce json
// @Param id path string true "Asset ID"
// @Param asset body model.Asset true "Asset"
// @Success 200 {object} model.Asset "Updated asset"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Router /assets/{id} [put]
func UpdateAsset(w http.ResponseWriter, r *http.Request) {
	id := idFromPath(r.URL.Path, "/api/v1/assets/", "")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Asset ID is required")
		return
	}

	existing, err := store.GetAsset(id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Asset not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch asset")
		return
	}

	var asset model.Asset
	if err := json.NewDecoder(r.Body).Decode(&asset); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	asset.AssetID = id
	if asset.Status == "" {
		asset.Status = model.AssetFromRecord(existing).Status
	}

	if err := store.SaveAsset(asset); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update asset")
		return
	}
	writeJSON(w, http.StatusOK, asset)
}

// RetireAsset soft-deletes an asset by marking it retired
// @Summary Retire asset
// @Tags assets
// @Produce json
// @Param id path string true "Asset ID"
// @Success 200 {object} map[string]interface{} "Retired"
// @Failure 404 {object} map[string]interface{} "Asset not found"
// @Router /assets/{id} [delete]
func RetireAsset(w http.ResponseWriter, r *http.Request) {
	id := idFromPath(r.URL.Path, "/api/v1/assets/", "")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Asset ID is required")
		return
	}

	err := store.UpdateAssetStatus(id, model.AssetRetired)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Asset not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to retire asset")
		return
	}
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"asset_id": id,
		"status":   model.AssetRetired,
	})
}
