package table

import (
	"fmt"
	"regexp"
	"sort"
	"strconv"
	"strings"
	"time"

	"asset-dashboard/internal/model"
)

// displayDateFormat matches the locale formatting the dashboard shows in
// table cells ("Jan 5, 2024"), so searching "jan 5" finds the row even
// though the stored value is an ISO string.
const displayDateFormat = "Jan 2, 2006"

// dateFields is the fixed set of fields compared as timestamps when sorting.
var dateFields = map[string]bool{
	"assignment_date":       true,
	"return_date":           true,
	"purchase_date":         true,
	"warranty_expiry":       true,
	"maintenance_date":      true,
	"last_maintenance_date": true,
	"requested_at":          true,
	"resolved_at":           true,
	"created_at":            true,
	"updated_at":            true,
}

var dateLayouts = []string{
	time.RFC3339Nano,
	time.RFC3339,
	"2006-01-02 15:04:05",
	"2006-01-02",
}

var trailingDigits = regexp.MustCompile(`(\d+)\s*$`)

// searchText stringifies a field value for substring matching.
func searchText(field string, val interface{}) string {
	// Date-named fields are matched against their display form.
	if strings.Contains(strings.ToLower(field), "date") {
		if ts, ok := parseTime(val); ok {
			return ts.Format(displayDateFormat)
		}
	}

	switch v := val.(type) {
	case string:
		return v
	case map[string]interface{}:
		// Nested maps (e.g. specifications) flatten to "key: value" pairs
		// searched as one string.
		keys := make([]string, 0, len(v))
		for k := range v {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, k := range keys {
			parts = append(parts, fmt.Sprintf("%s: %v", k, v[k]))
		}
		return strings.Join(parts, ", ")
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64)
	default:
		return fmt.Sprintf("%v", v)
	}
}

// compareField orders two records by one field. Comparison rules, in
// priority order: nulls as empty string, date fields by timestamp, numeric
// values numerically, id fields by trailing number, everything else
// case-insensitive lexicographic.
func compareField(a, b model.Record, field string) int {
	av, bv := a[field], b[field]
	if av == nil && bv == nil {
		return 0
	}

	if dateFields[field] {
		return compareInt64(epochMillis(av), epochMillis(bv))
	}

	an, aOK := numeric(av)
	bn, bOK := numeric(bv)
	if aOK && bOK {
		switch {
		case an < bn:
			return -1
		case an > bn:
			return 1
		default:
			return 0
		}
	}

	as := sortText(av)
	bs := sortText(bv)

	if strings.Contains(strings.ToLower(field), "id") {
		if ai, aOK := trailingNumber(as); aOK {
			if bi, bOK := trailingNumber(bs); bOK {
				if c := compareInt64(ai, bi); c != 0 {
					return c
				}
			}
		}
	}

	return strings.Compare(strings.ToLower(as), strings.ToLower(bs))
}

func compareInt64(a, b int64) int {
	switch {
	case a < b:
		return -1
	case a > b:
		return 1
	default:
		return 0
	}
}

// sortText coerces a value to its string form for comparison; nulls become
// the empty string and sort lowest.
func sortText(val interface{}) string {
	if val == nil {
		return ""
	}
	if s, ok := val.(string); ok {
		return s
	}
	return fmt.Sprintf("%v", val)
}

// epochMillis parses a date-like value to epoch milliseconds; unparsable
// values collapse to zero rather than failing the sort.
func epochMillis(val interface{}) int64 {
	ts, ok := parseTime(val)
	if !ok {
		return 0
	}
	return ts.UnixMilli()
}

func parseTime(val interface{}) (time.Time, bool) {
	switch v := val.(type) {
	case time.Time:
		return v, true
	case string:
		for _, layout := range dateLayouts {
			if ts, err := time.Parse(layout, v); err == nil {
				return ts, true
			}
		}
	}
	return time.Time{}, false
}

// numeric reports a value as float64 when it is a number or a fully numeric
// string.
func numeric(val interface{}) (float64, bool) {
	switch v := val.(type) {
	case float64:
		return v, true
	case float32:
		return float64(v), true
	case int:
		return float64(v), true
	case int64:
		return float64(v), true
	case string:
		if f, err := strconv.ParseFloat(strings.TrimSpace(v), 64); err == nil {
			return f, true
		}
	}
	return 0, false
}

// trailingNumber extracts the numeric suffix from an identifier like
// "AST-10".
func trailingNumber(s string) (int64, bool) {
	m := trailingDigits.FindStringSubmatch(s)
	if m == nil {
		return 0, false
	}
	n, err := strconv.ParseInt(m[1], 10, 64)
	if err != nil {
		return 0, false
	}
	return n, true
}
