// Package table derives the visible page of a dashboard table from a full
// in-memory record set. Callers compose the three steps in a fixed order:
// Filter -> Sort -> Paginate (sorting after pagination would be wrong).
//
// Every operation degrades instead of failing: nil input yields an empty
// result, unparsable dates sort as epoch zero, and malformed numeric ids
// fall back to lexicographic order. The UI always gets something to render.
package table

import (
	"sort"
	"strings"

	"asset-dashboard/internal/model"
)

// Filter returns every record where at least one of the search fields
// contains the term, case-insensitively. An empty term is the identity.
func Filter(records []model.Record, spec model.SearchSpec) []model.Record {
	if strings.TrimSpace(spec.Term) == "" {
		if records == nil {
			return []model.Record{}
		}
		return records
	}

	term := strings.ToLower(spec.Term)
	out := make([]model.Record, 0, len(records))
	for _, rec := range records {
		if rec == nil {
			continue
		}
		for _, field := range spec.Fields {
			val, ok := rec[field]
			if !ok || val == nil {
				// Missing and null values never match.
				continue
			}
			if strings.Contains(strings.ToLower(searchText(field, val)), term) {
				out = append(out, rec)
				break
			}
		}
	}
	return out
}

// Sort returns a new slice ordered by the sort field. The sort is stable:
// records with equal keys keep their input order, so repeated header clicks
// behave consistently.
func Sort(records []model.Record, spec model.SortSpec) []model.Record {
	out := make([]model.Record, len(records))
	copy(out, records)
	if spec.Field == "" {
		return out
	}

	sort.SliceStable(out, func(i, j int) bool {
		cmp := compareField(out[i], out[j], spec.Field)
		if spec.Direction == model.Descending {
			return cmp > 0
		}
		return cmp < 0
	})
	return out
}

// Paginate returns the slice for a 1-based page request. Out-of-range pages
// return an empty slice; clamping to the last page is a caller decision.
func Paginate(records []model.Record, spec model.PageSpec) []model.Record {
	if spec.Page < 1 || spec.Size < 1 {
		return []model.Record{}
	}

	start := (spec.Page - 1) * spec.Size
	if start >= len(records) {
		return []model.Record{}
	}
	end := start + spec.Size
	if end > len(records) {
		end = len(records)
	}
	return records[start:end]
}

// Apply runs the full filter -> sort -> paginate pipeline and reports the
// post-filter total so handlers can build pagination metadata.
func Apply(records []model.Record, query model.TableQuery) ([]model.Record, model.Pagination) {
	filtered := Filter(records, query.Search)
	sorted := Sort(filtered, query.Sort)
	page := Paginate(sorted, query.Page)

	meta := model.Pagination{
		Page:     query.Page.Page,
		PageSize: query.Page.Size,
		Total:    len(filtered),
	}
	if query.Page.Size > 0 {
		meta.TotalPages = (len(filtered) + query.Page.Size - 1) / query.Page.Size
	}
	return page, meta
}
