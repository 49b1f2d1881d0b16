package model

import (
	"strings"
	"unicode"
)

// Record is a schema-agnostic map for any entity the dashboard displays
// (asset, employee, assignment, maintenance record, approval request).
type Record map[string]interface{}

// Canonicalize returns a copy of the record with every key folded to the
// canonical snake_case form. The upstream API is inconsistent about naming
// (some payloads carry assetId, others asset_id); everything past this
// boundary sees exactly one convention.
func Canonicalize(rec Record) Record {
	if rec == nil {
		return Record{}
	}

	out := make(Record, len(rec))
	for key, val := range rec {
		if nested, ok := val.(map[string]interface{}); ok {
			val = map[string]interface{}(Canonicalize(nested))
		}
		out[SnakeCase(key)] = val
	}
	return out
}

// CanonicalizeAll canonicalizes a slice of records in one pass.
func CanonicalizeAll(recs []Record) []Record {
	out := make([]Record, 0, len(recs))
	for _, rec := range recs {
		out = append(out, Canonicalize(rec))
	}
	return out
}

// SnakeCase converts a camelCase or PascalCase key to snake_case.
// Keys already in snake_case pass through unchanged.
func SnakeCase(key string) string {
	if !strings.ContainsFunc(key, unicode.IsUpper) {
		return key
	}

	var b strings.Builder
	b.Grow(len(key) + 4)
	runes := []rune(key)
	for i, r := range runes {
		if unicode.IsUpper(r) {
			// Underscore only at the start of an uppercase run, so
			// "assetId" -> "asset_id" and "assetID" -> "asset_id".
			if i > 0 && runes[i-1] != '_' && !unicode.IsUpper(runes[i-1]) {
				b.WriteByte('_')
			}
			b.WriteRune(unicode.ToLower(r))
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}
