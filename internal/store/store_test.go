package store_test

import (
	"database/sql"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-dashboard/internal/model"
	"asset-dashboard/internal/store"
)

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "store-test")
	if err != nil {
		panic(err)
	}
	if err := store.InitDB(filepath.Join(dir, "test.db")); err != nil {
		panic(err)
	}
	code := m.Run()
	os.RemoveAll(dir)
	os.Exit(code)
}

func TestSaveAsset_UpsertConverges(t *testing.T) {
	asset := model.Asset{
		AssetID:  "AST-1",
		AssetTag: "LT001",
		Name:     "Dell XPS",
		Category: "laptop",
		Status:   model.AssetAvailable,
		Specifications: map[string]interface{}{
			"ram": "16GB",
		},
	}
	require.NoError(t, store.SaveAsset(asset))

	// Saving the same natural ID again updates instead of duplicating.
	asset.Name = "Dell XPS 15"
	require.NoError(t, store.SaveAsset(asset))

	rec, err := store.GetAsset("AST-1")
	require.NoError(t, err)
	assert.Equal(t, "Dell XPS 15", rec["name"])

	specs, ok := rec["specifications"].(map[string]interface{})
	require.True(t, ok)
	assert.Equal(t, "16GB", specs["ram"])

	assets, err := store.ListAssets()
	require.NoError(t, err)
	count := 0
	for _, a := range assets {
		if a["asset_id"] == "AST-1" {
			count++
		}
	}
	assert.Equal(t, 1, count)
}

func TestUpdateAssetStatus(t *testing.T) {
	require.NoError(t, store.SaveAsset(model.Asset{AssetID: "AST-2", Name: "Monitor", Status: model.AssetAvailable}))

	require.NoError(t, store.UpdateAssetStatus("AST-2", model.AssetRetired))
	rec, err := store.GetAsset("AST-2")
	require.NoError(t, err)
	assert.Equal(t, model.AssetRetired, rec["status"])

	err = store.UpdateAssetStatus("no-such-asset", model.AssetRetired)
	assert.ErrorIs(t, err, sql.ErrNoRows)
}

func TestAssignmentLifecycle(t *testing.T) {
	assignment := model.Assignment{
		AssignmentID:   "as-1",
		AssetID:        "AST-1",
		EmployeeID:     "EMP-1",
		AssignmentDate: "2024-01-05",
		Status:         model.AssignmentActive,
	}
	require.NoError(t, store.SaveAssignment(assignment))

	got, err := store.GetAssignment("as-1")
	require.NoError(t, err)
	assert.Equal(t, model.AssignmentActive, got.Status)
	assert.Empty(t, got.ReturnDate)

	require.NoError(t, store.CloseAssignment("as-1", "2024-02-01"))
	got, err = store.GetAssignment("as-1")
	require.NoError(t, err)
	assert.Equal(t, model.AssignmentReturned, got.Status)
	assert.Equal(t, "2024-02-01", got.ReturnDate)

	assert.ErrorIs(t, store.CloseAssignment("no-such-assignment", "2024-02-01"), sql.ErrNoRows)
}

func TestApprovalResolvesOnce(t *testing.T) {
	req := model.ApprovalRequest{
		RequestID:   "req-1",
		RequestType: model.RequestAssignment,
		AssetID:     "AST-1",
		Reason:      "new hire",
		Status:      model.ApprovalPending,
		RequestedAt: "2024-01-05T10:00:00Z",
	}
	require.NoError(t, store.SaveApproval(req))

	require.NoError(t, store.ResolveApproval("req-1", model.ApprovalApproved))

	got, err := store.GetApproval("req-1")
	require.NoError(t, err)
	assert.Equal(t, model.ApprovalApproved, got.Status)
	assert.NotEmpty(t, got.ResolvedAt)

	// A second resolution attempt finds no pending row.
	assert.ErrorIs(t, store.ResolveApproval("req-1", model.ApprovalRejected), sql.ErrNoRows)
}

func TestListEmployees(t *testing.T) {
	require.NoError(t, store.SaveEmployee(model.Employee{
		EmployeeID: "EMP-1",
		Name:       "Alex Rivera",
		Email:      "alex@example.com",
		Department: "Engineering",
		Status:     "active",
	}))

	employees, err := store.ListEmployees()
	require.NoError(t, err)
	require.NotEmpty(t, employees)

	found := false
	for _, e := range employees {
		if e["employee_id"] == "EMP-1" {
			found = true
			assert.Equal(t, "Alex Rivera", e["name"])
		}
	}
	assert.True(t, found)
}
