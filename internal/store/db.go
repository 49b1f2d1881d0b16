package store

import (
	"database/sql"

	_ "github.com/mattn/go-sqlite3"
)

var db *sql.DB

// InitDB opens the sqlite cache and creates tables if they do not exist.
func InitDB(dbPath string) error {
	var err error
	db, err = sql.Open("sqlite3", dbPath)
	if err != nil {
		return err
	}

	tables := []string{
		`CREATE TABLE IF NOT EXISTS assets (
			asset_id TEXT PRIMARY KEY,
			asset_tag TEXT,
			name TEXT,
			category TEXT,
			status TEXT,
			serial_number TEXT,
			specifications TEXT,
			purchase_date TEXT,
			warranty_expiry TEXT,
			created_at DATETIME,
			updated_at DATETIME
		);`,
		`CREATE TABLE IF NOT EXISTS employees (
			employee_id TEXT PRIMARY KEY,
			name TEXT,
			email TEXT,
			department TEXT,
			designation TEXT,
			status TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS assignments (
			assignment_id TEXT PRIMARY KEY,
			asset_id TEXT,
			employee_id TEXT,
			assignment_date TEXT,
			return_date TEXT,
			status TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS maintenance_records (
			maintenance_id TEXT PRIMARY KEY,
			asset_id TEXT,
			description TEXT,
			cost REAL,
			performed_by TEXT,
			maintenance_date TEXT,
			status TEXT
		);`,
		`CREATE TABLE IF NOT EXISTS approval_requests (
			request_id TEXT PRIMARY KEY,
			request_type TEXT,
			asset_id TEXT,
			employee_id TEXT,
			reason TEXT,
			status TEXT,
			requested_at TEXT,
			resolved_at TEXT
		);`,
	}

	for _, stmt := range tables {
		if _, err := db.Exec(stmt); err != nil {
			return err
		}
	}
	return nil
}
