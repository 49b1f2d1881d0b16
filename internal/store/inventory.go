package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"asset-dashboard/internal/model"
)

// SaveAsset inserts or updates an asset keyed by its natural ID, so repeated
// sync passes converge instead of duplicating rows.
func SaveAsset(a model.Asset) error {
	specs, err := marshalSpecs(a.Specifications)
	if err != nil {
		return fmt.Errorf("encode specifications for %s: %w", a.AssetID, err)
	}

	now := time.Now().UTC()
	createdAt := a.CreatedAt
	if createdAt.IsZero() {
		createdAt = now
	}

	_, err = db.Exec(`INSERT INTO assets
		(asset_id, asset_tag, name, category, status, serial_number, specifications, purchase_date, warranty_expiry, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(asset_id) DO UPDATE SET
			asset_tag = excluded.asset_tag,
			name = excluded.name,
			category = excluded.category,
			status = excluded.status,
			serial_number = excluded.serial_number,
			specifications = excluded.specifications,
			purchase_date = excluded.purchase_date,
			warranty_expiry = excluded.warranty_expiry,
			updated_at = excluded.updated_at`,
		a.AssetID, a.AssetTag, a.Name, a.Category, a.Status, a.SerialNumber,
		specs, a.PurchaseDate, a.WarrantyExpiry, createdAt, now)
	return err
}

// ListAssets returns every cached asset as a generic record ready for the
// table pipeline.
func ListAssets() ([]model.Record, error) {
	rows, err := db.Query(`SELECT asset_id, asset_tag, name, category, status, serial_number, specifications, purchase_date, warranty_expiry, created_at, updated_at
		FROM assets ORDER BY created_at ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var assets []model.Record
	for rows.Next() {
		rec, err := scanAsset(rows)
		if err != nil {
			return nil, err
		}
		assets = append(assets, rec)
	}
	return assets, rows.Err()
}

// GetAsset fetches one asset by ID. Returns sql.ErrNoRows when absent.
func GetAsset(assetID string) (model.Record, error) {
	row := db.QueryRow(`SELECT asset_id, asset_tag, name, category, status, serial_number, specifications, purchase_date, warranty_expiry, created_at, updated_at
		FROM assets WHERE asset_id = ?`, assetID)
	return scanAsset(row)
}

// UpdateAssetStatus transitions an asset between lifecycle states
// (available, assigned, maintenance, retired).
func UpdateAssetStatus(assetID, status string) error {
	res, err := db.Exec(`UPDATE assets SET status = ?, updated_at = ? WHERE asset_id = ?`,
		status, time.Now().UTC(), assetID)
	if err != nil {
		return err
	}
	n, err := res.RowsAffected()
	if err == nil && n == 0 {
		return sql.ErrNoRows
	}
	return err
}

// SaveEmployee inserts or updates one employee record.
func SaveEmployee(e model.Employee) error {
	_, err := db.Exec(`INSERT INTO employees
		(employee_id, name, email, department, designation, status)
		VALUES (?, ?, ?, ?, ?, ?)
		ON CONFLICT(employee_id) DO UPDATE SET
			name = excluded.name,
			email = excluded.email,
			department = excluded.department,
			designation = excluded.designation,
			status = excluded.status`,
		e.EmployeeID, e.Name, e.Email, e.Department, e.Designation, e.Status)
	return err
}

// ListEmployees returns the cached employee directory.
func ListEmployees() ([]model.Record, error) {
	rows, err := db.Query(`SELECT employee_id, name, email, department, designation, status
		FROM employees ORDER BY employee_id ASC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var employees []model.Record
	for rows.Next() {
		var id, name, email, department, designation, status string
		if err := rows.Scan(&id, &name, &email, &department, &designation, &status); err != nil {
			return nil, err
		}
		employees = append(employees, model.Record{
			"employee_id": id,
			"name":        name,
			"email":       email,
			"department":  department,
			"designation": designation,
			"status":      status,
		})
	}
	return employees, rows.Err()
}

// GetEmployee fetches one employee by ID.
func GetEmployee(employeeID string) (model.Record, error) {
	var id, name, email, department, designation, status string
	err := db.QueryRow(`SELECT employee_id, name, email, department, designation, status
		FROM employees WHERE employee_id = ?`, employeeID).
		Scan(&id, &name, &email, &department, &designation, &status)
	if err != nil {
		return nil, err
	}
	return model.Record{
		"employee_id": id,
		"name":        name,
		"email":       email,
		"department":  department,
		"designation": designation,
		"status":      status,
	}, nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanAsset(row rowScanner) (model.Record, error) {
	var assetID, assetTag, name, category, status, serialNumber string
	var specs, purchaseDate, warrantyExpiry sql.NullString
	var createdAt, updatedAt time.Time

	err := row.Scan(&assetID, &assetTag, &name, &category, &status, &serialNumber,
		&specs, &purchaseDate, &warrantyExpiry, &createdAt, &updatedAt)
	if err != nil {
		return nil, err
	}

	rec := model.Record{
		"asset_id":      assetID,
		"asset_tag":     assetTag,
		"name":          name,
		"category":      category,
		"status":        status,
		"serial_number": serialNumber,
		"created_at":    createdAt,
		"updated_at":    updatedAt,
	}
	if purchaseDate.String != "" {
		rec["purchase_date"] = purchaseDate.String
	}
	if warrantyExpiry.String != "" {
		rec["warranty_expiry"] = warrantyExpiry.String
	}
	if specs.String != "" {
		var m map[string]interface{}
		if err := json.Unmarshal([]byte(specs.String), &m); err == nil {
			rec["specifications"] = m
		}
	}
	return rec, nil
}

func marshalSpecs(specs map[string]interface{}) (string, error) {
	if len(specs) == 0 {
		return "", nil
	}
	b, err := json.Marshal(specs)
	if err != nil {
		return "", err
	}
	return string(b), nil
}
