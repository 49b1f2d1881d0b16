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

var assignmentSearchFields = []string{
	"assignment_id", "asset_id", "employee_id", "status",
}

// ListAssignments lists asset assignments
// @Summary List assignments
// @Tags assignments
// @Produce json
// @Param search query string false "Free-text search term"
// @Param sort_by query string false "Sort field"
// @Param order query string false "asc or desc"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{} "Assignments page"
// @Router /assignments [get]
func ListAssignments(w http.ResponseWriter, r *http.Request) {
	assignments, err := store.ListAssignments()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch assignments")
		return
	}

	page, meta := table.Apply(assignments, parseTableQuery(r, assignmentSearchFields))
	writeJSON(w, http.StatusOK, listResponse(page, meta))
}

// CreateAssignment hands an available asset to an employee
// @Summary Assign asset
// @Description Assign an available asset to an employee; the asset transitions to assigned
// @Tags assignments
// @Accept json
// @Produce json
// @Param assignment body model.Assignment true "Assignment (asset_id and employee_id required)"
// @Success 201 {object} model.Assignment "Created assignment"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Failure 404 {object} map[string]interface{} "Asset or employee not found"
// @Failure 409 {object} map[string]interface{} "Asset not available"
// @Router /assignments [post]
func CreateAssignment(w http.ResponseWriter, r *http.Request) {
	var req model.Assignment
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.AssetID == "" || req.EmployeeID == "" {
		writeError(w, http.StatusBadRequest, "asset_id and employee_id are required")
		return
	}

	assetRec, err := store.GetAsset(req.AssetID)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Asset not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch asset")
		return
	}
	if _, err := store.GetEmployee(req.EmployeeID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			writeError(w, http.StatusNotFound, "Employee not found")
			return
		}
		writeError(w, http.StatusInternalServerError, "Failed to fetch employee")
		return
	}

	asset := model.AssetFromRecord(assetRec)
	if asset.Status != model.AssetAvailable {
		writeError(w, http.StatusConflict, "Asset is not available for assignment")
		return
	}

	assignment := model.Assignment{
		AssignmentID:   uuid.New().String(),
		AssetID:        req.AssetID,
		EmployeeID:     req.EmployeeID,
		AssignmentDate: req.AssignmentDate,
		Status:         model.AssignmentActive,
	}
	if assignment.AssignmentDate == "" {
		assignment.AssignmentDate = time.Now().UTC().Format(time.RFC3339)
	}

	if err := store.SaveAssignment(assignment); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save assignment")
		return
	}
	if err := store.UpdateAssetStatus(req.AssetID, model.AssetAssigned); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update asset status")
		return
	}
	writeJSON(w, http.StatusCreated, assignment)
}

// ReturnAssignment closes an active assignment
// @Summary Return asset
// @Description Mark an assignment returned; the asset transitions back to available
// @Tags assignments
// @Produce json
// @Param id path string true "Assignment ID"
// @Success 200 {object} model.Assignment "Closed assignment"
// @Failure 404 {object} map[string]interface{} "Assignment not found"
// @Failure 409 {object} map[string]interface{} "Assignment already returned"
// @Router /assignments/{id}/return [post]
func ReturnAssignment(w http.ResponseWriter, r *http.Request) {
	id := idFromPath(r.URL.Path, "/api/v1/assignments/", "/return")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Assignment ID is required")
		return
	}

	assignment, err := store.GetAssignment(id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Assignment not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch assignment")
		return
	}
	if assignment.Status == model.AssignmentReturned {
		writeError(w, http.StatusConflict, "Assignment already returned")
		return
	}

	returnDate := time.Now().UTC().Format(time.RFC3339)
	if err := store.CloseAssignment(id, returnDate); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to close assignment")
		return
	}
	if err := store.UpdateAssetStatus(assignment.AssetID, model.AssetAvailable); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to update asset status")
		return
	}

	assignment.Status = model.AssignmentReturned
	assignment.ReturnDate = returnDate
	writeJSON(w, http.StatusOK, assignment)
}
