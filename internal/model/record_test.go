package model_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"asset-dashboard/internal/model"
)

func TestSnakeCase(t *testing.T) {
	cases := map[string]string{
		"assetId":       "asset_id",
		"assetID":       "asset_id",
		"AssetTag":      "asset_tag",
		"asset_id":      "asset_id",
		"name":          "name",
		"warrantyEnd":   "warranty_end",
		"employeeEmail": "employee_email",
	}
	for in, want := range cases {
		assert.Equal(t, want, model.SnakeCase(in), "SnakeCase(%q)", in)
	}
}

func TestCanonicalize_FoldsMixedKeys(t *testing.T) {
	rec := model.Record{
		"assetId":   "AST-1",
		"asset_tag": "LT001",
		"Name":      "Dell XPS",
	}

	got := model.Canonicalize(rec)
	assert.Equal(t, model.Record{
		"asset_id":  "AST-1",
		"asset_tag": "LT001",
		"name":      "Dell XPS",
	}, got)
}

func TestCanonicalize_NestedMaps(t *testing.T) {
	rec := model.Record{
		"assetId": "AST-1",
		"specifications": map[string]interface{}{
			"ramSize": "16GB",
			"cpu":     "i7",
		},
	}

	got := model.Canonicalize(rec)
	specs, ok := got["specifications"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "16GB", specs["ram_size"])
	assert.Equal(t, "i7", specs["cpu"])
}

func TestCanonicalize_NilRecord(t *testing.T) {
	got := model.Canonicalize(nil)
	assert.NotNil(t, got)
	assert.Empty(t, got)
}

func TestAssetFromRecord_Defaults(t *testing.T) {
	asset := model.AssetFromRecord(model.Record{
		"asset_id": "AST-1",
		"name":     "Dell XPS",
	})

	assert.Equal(t, "AST-1", asset.AssetID)
	assert.Equal(t, model.AssetAvailable, asset.Status)
}

func TestMaintenanceFromRecord_NumericCost(t *testing.T) {
	rec := model.MaintenanceFromRecord(model.Record{
		"maintenance_id": "m1",
		"asset_id":       "AST-1",
		"cost":           149.5,
	})
	assert.Equal(t, 149.5, rec.Cost)

	// Upstream sometimes sends cost as a string.
	rec = model.MaintenanceFromRecord(model.Record{
		"maintenance_id": "m2",
		"asset_id":       "AST-1",
		"cost":           "99.9",
	})
	assert.Equal(t, 99.9, rec.Cost)
}
