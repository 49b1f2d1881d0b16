package handler

import (
	"database/sql"
	"errors"
	"net/http"

	"asset-dashboard/internal/store"
	"asset-dashboard/internal/table"
)

var employeeSearchFields = []string{
	"employee_id", "name", "email", "department", "designation", "status",
}

// ListEmployees lists the employee directory
// @Summary List employees
// @Description Get the employee directory, filtered, sorted and paginated by the table query parameters
// @Tags employees
// @Produce json
// @Param search query string false "Free-text search term"
// @Param fields query string false "Comma-separated fields to search"
// @Param sort_by query string false "Sort field"
// @Param order query string false "asc or desc"
// @Param page query int false "1-based page number"
// @Param limit query int false "Page size"
// @Success 200 {object} map[string]interface{} "Employees page"
// @Failure 500 {object} map[string]interface{} "Internal server error"
// @Router /employees [get]
func ListEmployees(w http.ResponseWriter, r *http.Request) {
	employees, err := store.ListEmployees()
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch employees")
		return
	}

	page, meta := table.Apply(employees, parseTableQuery(r, employeeSearchFields))
	writeJSON(w, http.StatusOK, listResponse(page, meta))
}

// GetEmployee retrieves a single employee
// @Summary Get employee
// @Tags employees
// @Produce json
// @Param id path string true "Employee ID"
// @Success 200 {object} map[string]interface{} "Employee"
// @Failure 404 {object} map[string]interface{} "Employee not found"
// @Router /employees/{id} [get]
func GetEmployee(w http.ResponseWriter, r *http.Request) {
	id := idFromPath(r.URL.Path, "/api/v1/employees/", "")
	if id == "" {
		writeError(w, http.StatusBadRequest, "Employee ID is required")
		return
	}

	employee, err := store.GetEmployee(id)
	if errors.Is(err, sql.ErrNoRows) {
		writeError(w, http.StatusNotFound, "Employee not found")
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to fetch employee")
		return
	}
	writeJSON(w, http.StatusOK, employee)
}
