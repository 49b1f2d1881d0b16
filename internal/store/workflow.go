package store

import (
	"database/sql"
	"time"

	"asset-dashboard/internal/model"
)

// SaveAssignment records an asset being handed to an employee.
func SaveAssignment(a model.Assignment) error {
	_, err := db.Exec(`INSERT INTO assignments
		(assignment_id, asset_id, employee_id, assignment_date, return_date, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(assignment_id) DO UPDATE SET
			asset_id = excluded.asset_id,
			employee_id = excluded.employee_id,
			assignment_date = excluded.assignment_date,
			return_date = excluded.return_date,
			status = excluded.status`,
		a.AssignmentID, a.AssetID, a.EmployeeID, a.AssignmentDate, a.ReturnDate, a.Status)
	return err
}

// GetAssignment fetches one assignment by ID.
func GetAssignment(assignmentID string) (model.Assignment, error) {
	var a model.Assignment
	var returnDate sql.NullString
	err := db.QueryRow(`SELECT assignment_id, asset_id, employee_id, assignment_date, return_date, status
		FROM assignments WHERE assignment_id = ?`, assignmentID).
		Scan(&a.AssignmentID, &a.AssetID, &a.EmployeeID, &a.AssignmentDate, &returnDate, &a.Status)
	if err != nil {
		return model.Assignment{}, err
	}
	a.ReturnDate = returnDate.String
	return a, nil
}

// CloseAssignment marks an assignment returned and stamps the return date.
func CloseAssignment(assignmentID, returnDate string) error {
	res, err := db.Exec(`UPDATE assignments SET status = ?, return_date = ? WHERE assignment_id = ?`,
		model.AssignmentReturned, returnDate, assignmentID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// ListAssignments returns all assignments as generic records.
func ListAssignments() ([]model.Record, error) {
	rows, err := db.Query(`SELECT assignment_id, asset_id, employee_id, assignment_date, return_date, status
		FROM assignments ORDER BY assignment_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		var id, assetID, employeeID, assignmentDate, status string
		var returnDate sql.NullString
		if err := rows.Scan(&id, &assetID, &employeeID, &assignmentDate, &returnDate, &status); err != nil {
			return nil, err
		}
		rec := model.Record{
			"assignment_id":   id,
			"asset_id":        assetID,
			"employee_id":     employeeID,
			"assignment_date": assignmentDate,
			"status":          status,
		}
		if returnDate.String != "" {
			rec["return_date"] = returnDate.String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

// SaveMaintenanceRecord logs a maintenance event for an asset.
func SaveMaintenanceRecord(m model.MaintenanceRecord) error {
	_, err := db.Exec(`INSERT INTO maintenance_records
		(maintenance_id, asset_id, description, cost, performed_by, maintenance_date, status)
		VALUES (?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(maintenance_id) DO UPDATE SET
			asset_id = excluded.asset_id,
			description = excluded.description,
			cost = excluded.cost,
			performed_by = excluded.performed_by,
			maintenance_date = excluded.maintenance_date,
			status = excluded.status`,
		m.MaintenanceID, m.AssetID, m.Description, m.Cost, m.PerformedBy, m.MaintenanceDate, m.Status)
	return err
}

// ListMaintenance returns the maintenance log as generic records.
func ListMaintenance() ([]model.Record, error) {
	rows, err := db.Query(`SELECT maintenance_id, asset_id, description, cost, performed_by, maintenance_date, status
		FROM maintenance_records ORDER BY maintenance_date DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		var id, assetID, description, performedBy, maintenanceDate, status string
		var cost float64
		if err := rows.Scan(&id, &assetID, &description, &cost, &performedBy, &maintenanceDate, &status); err != nil {
			return nil, err
		}
		out = append(out, model.Record{
			"maintenance_id":   id,
			"asset_id":         assetID,
			"description":      description,
			"cost":             cost,
			"performed_by":     performedBy,
			"maintenance_date": maintenanceDate,
			"status":           status,
		})
	}
	return out, rows.Err()
}

// SaveApproval stores a new or synced approval request.
func SaveApproval(r model.ApprovalRequest) error {
	_, err := db.Exec(`INSERT INTO approval_requests
		(request_id, request_type, asset_id, employee_id, reason, status, requested_at, resolved_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(request_id) DO UPDATE SET
			request_type = excluded.request_type,
			asset_id = excluded.asset_id,
			employee_id = excluded.employee_id,
			reason = excluded.reason,
			status = excluded.status,
			requested_at = excluded.requested_at,
			resolved_at = excluded.resolved_at`,
		r.RequestID, r.RequestType, r.AssetID, r.EmployeeID, r.Reason, r.Status, r.RequestedAt, r.ResolvedAt)
	return err
}

// GetApproval fetches one approval request by ID.
func GetApproval(requestID string) (model.ApprovalRequest, error) {
	var r model.ApprovalRequest
	var employeeID, resolvedAt sql.NullString
	err := db.QueryRow(`SELECT request_id, request_type, asset_id, employee_id, reason, status, requested_at, resolved_at
		FROM approval_requests WHERE request_id = ?`, requestID).
		Scan(&r.RequestID, &r.RequestType, &r.AssetID, &employeeID, &r.Reason, &r.Status, &r.RequestedAt, &resolvedAt)
	if err != nil {
		return model.ApprovalRequest{}, err
	}
	r.EmployeeID = employeeID.String
	r.ResolvedAt = resolvedAt.String
	return r, nil
}

// ResolveApproval finalizes a pending request as approved or rejected.
// Already-resolved requests are left untouched.
func ResolveApproval(requestID, status string) error {
	res, err := db.Exec(`UPDATE approval_requests SET status = ?, resolved_at = ? WHERE request_id = ? AND status = ?`,
		status, time.Now().UTC().Format(time.RFC3339), requestID, model.ApprovalPending)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// ListApprovals returns all approval requests as generic records.
func ListApprovals() ([]model.Record, error) {
	rows, err := db.Query(`SELECT request_id, request_type, asset_id, employee_id, reason, status, requested_at, resolved_at
		FROM approval_requests ORDER BY requested_at DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []model.Record
	for rows.Next() {
		var id, requestType, assetID, reason, status, requestedAt string
		var employeeID, resolvedAt sql.NullString
		if err := rows.Scan(&id, &requestType, &assetID, &employeeID, &reason, &status, &requestedAt, &resolvedAt); err != nil {
			return nil, err
		}
		rec := model.Record{
			"request_id":   id,
			"request_type": requestType,
			"asset_id":     assetID,
			"reason":       reason,
			"status":       status,
			"requested_at": requestedAt,
		}
		if employeeID.String != "" {
			rec["employee_id"] = employeeID.String
		}
		if resolvedAt.String != "" {
			rec["resolved_at"] = resolvedAt.String
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}
