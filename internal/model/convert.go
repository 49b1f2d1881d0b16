package model

import (
	"time"

	"asset-dashboard/pkg/utils"
)

// AssetFromRecord builds a typed asset from a canonical upstream record.
// Missing fields stay zero-valued; a missing status defaults to available.
func AssetFromRecord(rec Record) Asset {
	a := Asset{
		AssetID:        utils.String(rec["asset_id"]),
		AssetTag:       utils.String(rec["asset_tag"]),
		Name:           utils.String(rec["name"]),
		Category:       utils.String(rec["category"]),
		Status:         utils.String(rec["status"]),
		SerialNumber:   utils.String(rec["serial_number"]),
		PurchaseDate:   utils.String(rec["purchase_date"]),
		WarrantyExpiry: utils.String(rec["warranty_expiry"]),
	}
	if a.Status == "" {
		a.Status = AssetAvailable
	}
	if specs, ok := rec["specifications"].(map[string]interface{}); ok {
		a.Specifications = specs
	}
	if ts, ok := parseTimestamp(rec["created_at"]); ok {
		a.CreatedAt = ts
	}
	if ts, ok := parseTimestamp(rec["updated_at"]); ok {
		a.UpdatedAt = ts
	}
	return a
}

// EmployeeFromRecord builds a typed employee from a canonical record.
func EmployeeFromRecord(rec Record) Employee {
	return Employee{
		EmployeeID:  utils.String(rec["employee_id"]),
		Name:        utils.String(rec["name"]),
		Email:       utils.String(rec["email"]),
		Department:  utils.String(rec["department"]),
		Designation: utils.String(rec["designation"]),
		Status:      utils.String(rec["status"]),
	}
}

// AssignmentFromRecord builds a typed assignment from a canonical record.
func AssignmentFromRecord(rec Record) Assignment {
	a := Assignment{
		AssignmentID:   utils.String(rec["assignment_id"]),
		AssetID:        utils.String(rec["asset_id"]),
		EmployeeID:     utils.String(rec["employee_id"]),
		AssignmentDate: utils.String(rec["assignment_date"]),
		ReturnDate:     utils.String(rec["return_date"]),
		Status:         utils.String(rec["status"]),
	}
	if a.Status == "" {
		a.Status = AssignmentActive
	}
	return a
}

// MaintenanceFromRecord builds a typed maintenance record.
func MaintenanceFromRecord(rec Record) MaintenanceRecord {
	return MaintenanceRecord{
		MaintenanceID:   utils.String(rec["maintenance_id"]),
		AssetID:         utils.String(rec["asset_id"]),
		Description:     utils.String(rec["description"]),
		Cost:            utils.Numeric(rec["cost"]),
		PerformedBy:     utils.String(rec["performed_by"]),
		MaintenanceDate: utils.String(rec["maintenance_date"]),
		Status:          utils.String(rec["status"]),
	}
}

// ApprovalFromRecord builds a typed approval request.
func ApprovalFromRecord(rec Record) ApprovalRequest {
	r := ApprovalRequest{
		RequestID:   utils.String(rec["request_id"]),
		RequestType: utils.String(rec["request_type"]),
		AssetID:     utils.String(rec["asset_id"]),
		EmployeeID:  utils.String(rec["employee_id"]),
		Reason:      utils.String(rec["reason"]),
		Status:      utils.String(rec["status"]),
		RequestedAt: utils.String(rec["requested_at"]),
		ResolvedAt:  utils.String(rec["resolved_at"]),
	}
	if r.Status == "" {
		r.Status = ApprovalPending
	}
	return r
}

func parseTimestamp(v interface{}) (time.Time, bool) {
	switch t := v.(type) {
	case time.Time:
		return t, true
	case string:
		for _, layout := range []string{time.RFC3339Nano, time.RFC3339, "2006-01-02"} {
			if ts, err := time.Parse(layout, t); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}
