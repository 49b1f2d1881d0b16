package handler

import (
	"encoding/json"
	"net/http"
	"strconv"
	"strings"

	"asset-dashboard/internal/model"
)

func writeJSON(w http.ResponseWriter, status int, payload interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(payload)
}

func writeError(w http.ResponseWriter, status int, msg string) {
	writeJSON(w, status, map[string]interface{}{"error": msg})
}

// listResponse is the envelope every list endpoint answers with.
func listResponse(data []model.Record, meta model.Pagination) map[string]interface{} {
	if data == nil {
		data = []model.Record{}
	}
	return map[string]interface{}{
		"data":       data,
		"pagination": meta,
	}
}

// parseTableQuery builds the filter/sort/page state for one request from its
// query parameters. Absent parameters fall back to sensible table defaults:
// page 1, 10 rows, no sort, searching the entity's default field set.
func parseTableQuery(r *http.Request, defaultFields []string) model.TableQuery {
	q := r.URL.Query()

	fields := defaultFields
	if raw := strings.TrimSpace(q.Get("fields")); raw != "" {
		fields = nil
		for _, f := range strings.Split(raw, ",") {
			if f = strings.TrimSpace(f); f != "" {
				fields = append(fields, f)
			}
		}
	}

	direction := model.Ascending
	if strings.EqualFold(q.Get("order"), "desc") {
		direction = model.Descending
	}

	page := 1
	if p, err := strconv.Atoi(q.Get("page")); err == nil && p >= 1 {
		page = p
	}
	size := 10
	if s, err := strconv.Atoi(q.Get("limit")); err == nil && s >= 1 {
		size = s
	}

	return model.TableQuery{
		Search: model.SearchSpec{Term: q.Get("search"), Fields: fields},
		Sort:   model.SortSpec{Field: q.Get("sort_by"), Direction: direction},
		Page:   model.PageSpec{Page: page, Size: size},
	}
}

// idFromPath pulls the wildcard segment out of a matched route, e.g. the
// assignment ID from /api/v1/assignments/{id}/return.
func idFromPath(path, prefix, suffix string) string {
	id := strings.TrimPrefix(path, prefix)
	if suffix != "" {
		id = strings.TrimSuffix(id, suffix)
	}
	return strings.Trim(id, "/")
}
