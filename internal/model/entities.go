package model

import "time"

// Asset statuses tracked by the dashboard.
const (
	AssetAvailable   = "available"
	AssetAssigned    = "assigned"
	AssetMaintenance = "maintenance"
	AssetRetired     = "retired"
)

// Assignment statuses.
const (
	AssignmentActive   = "active"
	AssignmentReturned = "returned"
)

// Approval request statuses and types.
const (
	ApprovalPending  = "pending"
	ApprovalApproved = "approved"
	ApprovalRejected = "rejected"

	RequestAssignment  = "assignment"
	RequestReturn      = "return"
	RequestMaintenance = "maintenance"
)

// Asset represents one inventory item.
type Asset struct {
	AssetID        string                 `json:"asset_id"`
	AssetTag       string                 `json:"asset_tag"`
	Name           string                 `json:"name"`
	Category       string                 `json:"category"`
	Status         string                 `json:"status"`
	SerialNumber   string                 `json:"serial_number"`
	Specifications map[string]interface{} `json:"specifications,omitempty"`
	PurchaseDate   string                 `json:"purchase_date,omitempty"`
	WarrantyExpiry string                 `json:"warranty_expiry,omitempty"`
	CreatedAt      time.Time              `json:"created_at"`
	UpdatedAt      time.Time              `json:"updated_at"`
}

// Employee represents one staff member who can hold assets.
type Employee struct {
	EmployeeID  string `json:"employee_id"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Department  string `json:"department"`
	Designation string `json:"designation"`
	Status      string `json:"status"`
}

// Assignment links an asset to an employee for a period of time.
type Assignment struct {
	AssignmentID   string `json:"assignment_id"`
	AssetID        string `json:"asset_id"`
	EmployeeID     string `json:"employee_id"`
	AssignmentDate string `json:"assignment_date"`
	ReturnDate     string `json:"return_date,omitempty"`
	Status         string `json:"status"`
}

// MaintenanceRecord logs one maintenance event against an asset.
type MaintenanceRecord struct {
	MaintenanceID   string  `json:"maintenance_id"`
	AssetID         string  `json:"asset_id"`
	Description     string  `json:"description"`
	Cost            float64 `json:"cost"`
	PerformedBy     string  `json:"performed_by"`
	MaintenanceDate string  `json:"maintenance_date"`
	Status          string  `json:"status"`
}

// ApprovalRequest is a pending workflow action awaiting a decision.
type ApprovalRequest struct {
	RequestID   string `json:"request_id"`
	RequestType string `json:"request_type"`
	AssetID     string `json:"asset_id"`
	EmployeeID  string `json:"employee_id,omitempty"`
	Reason      string `json:"reason"`
	Status      string `json:"status"`
	RequestedAt string `json:"requested_at"`
	ResolvedAt  string `json:"resolved_at,omitempty"`
}
