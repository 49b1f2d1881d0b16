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

var approvalSearchFields = []string{
	"request_id", "request_type", "asset_id", "employee_id", "reason", "status",
}

// ListApprovals lists approval requests
// @Summary List approval requests
// @Tags approvals
// @Produce json
// @Param search query string false "Free-text search term"
// @Param sort_by query string false "Sort field"
// @Param order query string false "asc or desc"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{} "Approvals page"
// @Router /approvals [get]
func ListApprovals(w http.ResponseWriter, r *http.Request) {
	approvals, err := store.ListApprovals()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch approval requests")
		return
	}

	page, meta := table.Apply(approvals, parseTableQuery(r, approvalSearchFields))
	writeJSON(w, http.StatusOK, listResponse(page, meta))
}

// CreateApproval opens a new approval request
// @Summary Create approval request
// @Tags approvals
// @Accept json
// @Produce json
// @Param request body model.ApprovalRequest true "Approval request (request_type and asset_id required)"
// @Success 201 {object} model.ApprovalRequest "Created request"
// @Failure 400 {object} map[string]interface{} "Invalid payload"
// @Router /approvals [post]
func CreateApproval(w http.ResponseWriter, r *http.Request) {
	var req model.ApprovalRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "Invalid JSON payload")
		return
	}
	if req.RequestType == "" || req.AssetID == "" {
		writeError(w, http.StatusBadRequest, "request_type and asset_id are required")
		return
	}
	switch req.RequestType {
	case model.RequestAssignment, model.RequestReturn, model.RequestMaintenance:
	default:
		writeError(w, http.StatusBadRequest, "Unknown request_type")
		return
	}

	req.RequestID = uuid.New().String()
	req.Status = model.ApprovalPending
	req.RequestedAt = time.Now().UTC().Format(time.RFC3339)
	req.ResolvedAt = ""

	if err := store.SaveApproval(req); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to save approval request")
		return
	}
	writeJSON(w, http.StatusCreated, req)
}

// ApproveRequest approves a pending request
// @Summary Approve request
// @Tags approvals
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} model.ApprovalRequest "Approved request"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Failure 409 {object} map[string]interface{} "Request already resolved"
// @Router /approvals/{id}/approve [post]
func ApproveRequest(w http.ResponseWriter, r *http.Request) {
	resolveApproval(w, r, "/approve", model.ApprovalApproved)
}

// RejectRequest rejects a pending request
// @Summary Reject request
// @Tags approvals
// @Produce json
// @Param id path string true "Request ID"
// @Success 200 {object} model.ApprovalRequest "Rejected request"
// @Failure 404 {object} map[string]interface{} "Request not found"
// @Failure 409 {object} map[string]interface{} "Request already resolved"
// @Router /approvals/{id}/reject [post]
func RejectRequest(w http.ResponseWriter, r *http.Request) {
	resolveApproval(w, r, "/reject", model.ApprovalRejected)
}

func resolveApproval(w http.ResponseWriter, r *http.Request, suffix, status string) {
	id := idFromPath(r.URL.Path, "/api/v1/approvals/", suffix)
	if id == "" {
		writeError(w, http.StatusBadRequest, "Request ID is required")
		return
	}

	existing, err := store.GetApproval(id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Approval request not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch approval request")
		return
	}
	if existing.Status != model.ApprovalPending {
		writeError(w, http.StatusConflict, "Approval request already resolved")
		return
	}

	if err := store.ResolveApproval(id, status); err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to resolve approval request")
		return
	}

	resolved, err := store.GetApproval(id)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch approval request")
		return
	}
	writeJSON(w, http.StatusOK, resolved)
}
