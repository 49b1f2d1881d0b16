package handler_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-dashboard/internal/api"
	"asset-dashboard/internal/api/handler"
	"asset-dashboard/internal/apiclient"
	"asset-dashboard/internal/model"
	"asset-dashboard/internal/store"
	"asset-dashboard/pkg/router"
)

var server *httptest.Server

func TestMain(m *testing.M) {
	dir, err := os.MkdirTemp("", "handler-test")
	if err != nil {
		panic(err)
	}
	if err := store.InitDB(filepath.Join(dir, "test.db")); err != nil {
		panic(err)
	}

	r := router.New()
	api.RegisterRoutes(r)
	server = httptest.NewServer(r.Handler())

	code := m.Run()
	server.Close()
	os.RemoveAll(dir)
	os.Exit(code)
}

func seedAssets(t *testing.T, n int) {
	t.Helper()
	for i := 1; i <= n; i++ {
		require.NoError(t, store.SaveAsset(model.Asset{
			AssetID:  fmt.Sprintf("AST-%d", i),
			AssetTag: fmt.Sprintf("LT%03d", i),
			Name:     fmt.Sprintf("Laptop %d", i),
			Category: "laptop",
			Status:   model.AssetAvailable,
		}))
	}
}

func getJSON(t *testing.T, path string, out interface{}) *http.Response {
	t.Helper()
	resp, err := http.Get(server.URL + path)
	require.NoError(t, err)
	defer resp.Body.Close()
	require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	return resp
}

func postJSON(t *testing.T, path string, payload interface{}, out interface{}) *http.Response {
	t.Helper()
	body, err := json.Marshal(payload)
	require.NoError(t, err)
	resp, err := http.Post(server.URL+path, "application/json", bytes.NewReader(body))
	require.NoError(t, err)
	defer resp.Body.Close()
	if out != nil {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(out))
	}
	return resp
}

func TestListAssets_SearchSortPaginate(t *testing.T) {
	seedAssets(t, 15)

	var result struct {
		Data       []model.Record   `json:"data"`
		Pagination model.Pagination `json:"pagination"`
	}
	resp := getJSON(t, "/api/v1/assets?search=laptop&sort_by=asset_id&order=asc&page=2&limit=5", &result)
	assert.Equal(t, http.StatusOK, resp.StatusCode)

	require.Len(t, result.Data, 5)
	// Numeric-suffix sort: page 2 starts at AST-6.
	assert.Equal(t, "AST-6", result.Data[0]["asset_id"])
	assert.GreaterOrEqual(t, result.Pagination.Total, 15)
	assert.Equal(t, 2, result.Pagination.Page)
	assert.Equal(t, 5, result.Pagination.PageSize)
}

func TestListAssets_OutOfRangePageIsEmptyNotError(t *testing.T) {
	seedAssets(t, 3)

	var result struct {
		Data       []model.Record   `json:"data"`
		Pagination model.Pagination `json:"pagination"`
	}
	resp := getJSON(t, "/api/v1/assets?page=999&limit=50", &result)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Empty(t, result.Data)
	assert.Equal(t, 999, result.Pagination.Page)
}

func TestCreateAndGetAsset(t *testing.T) {
	var created model.Asset
	resp := postJSON(t, "/api/v1/assets", model.Asset{
		AssetID: "AST-CREATE-1",
		Name:    "MacBook Pro",
	}, &created)
	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, model.AssetAvailable, created.Status)

	var got model.Record
	resp = getJSON(t, "/api/v1/assets/AST-CREATE-1", &got)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "MacBook Pro", got["name"])

	var missing map[string]interface{}
	resp = getJSON(t, "/api/v1/assets/no-such-asset", &missing)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestAssignmentWorkflow(t *testing.T) {
	require.NoError(t, store.SaveAsset(model.Asset{
		AssetID: "AST-FLOW-1", Name: "ThinkPad", Status: model.AssetAvailable,
	}))
	require.NoError(t, store.SaveEmployee(model.Employee{
		EmployeeID: "EMP-FLOW-1", Name: "Sam Lee", Status: "active",
	}))

	var assignment model.Assignment
	resp := postJSON(t, "/api/v1/assignments", map[string]string{
		"asset_id":    "AST-FLOW-1",
		"employee_id": "EMP-FLOW-1",
	}, &assignment)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, model.AssignmentActive, assignment.Status)
	assert.NotEmpty(t, assignment.AssignmentID)

	// The asset is now assigned, so a second assignment conflicts.
	resp = postJSON(t, "/api/v1/assignments", map[string]string{
		"asset_id":    "AST-FLOW-1",
		"employee_id": "EMP-FLOW-1",
	}, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	var returned model.Assignment
	resp = postJSON(t, "/api/v1/assignments/"+assignment.AssignmentID+"/return", nil, &returned)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.AssignmentReturned, returned.Status)
	assert.NotEmpty(t, returned.ReturnDate)

	// Returning again conflicts.
	resp = postJSON(t, "/api/v1/assignments/"+assignment.AssignmentID+"/return", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)

	rec, err := store.GetAsset("AST-FLOW-1")
	require.NoError(t, err)
	assert.Equal(t, model.AssetAvailable, rec["status"])
}

func TestApprovalWorkflow(t *testing.T) {
	require.NoError(t, store.SaveAsset(model.Asset{
		AssetID: "AST-APPR-1", Name: "Dock", Status: model.AssetAvailable,
	}))

	var created model.ApprovalRequest
	resp := postJSON(t, "/api/v1/approvals", map[string]string{
		"request_type": "assignment",
		"asset_id":     "AST-APPR-1",
		"reason":       "new hire",
	}, &created)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, model.ApprovalPending, created.Status)

	var approved model.ApprovalRequest
	resp = postJSON(t, "/api/v1/approvals/"+created.RequestID+"/approve", nil, &approved)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, model.ApprovalApproved, approved.Status)
	assert.NotEmpty(t, approved.ResolvedAt)

	// Already resolved.
	resp = postJSON(t, "/api/v1/approvals/"+created.RequestID+"/reject", nil, nil)
	assert.Equal(t, http.StatusConflict, resp.StatusCode)
}

func TestCreateMaintenance_TransitionsAsset(t *testing.T) {
	require.NoError(t, store.SaveAsset(model.Asset{
		AssetID: "AST-MAINT-1", Name: "Printer", Status: model.AssetAvailable,
	}))

	var rec model.MaintenanceRecord
	resp := postJSON(t, "/api/v1/maintenance", map[string]interface{}{
		"asset_id":    "AST-MAINT-1",
		"description": "fuser replacement",
		"cost":        149.5,
	}, &rec)
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.NotEmpty(t, rec.MaintenanceID)

	asset, err := store.GetAsset("AST-MAINT-1")
	require.NoError(t, err)
	assert.Equal(t, model.AssetMaintenance, asset["status"])
}

func TestTriggerSync(t *testing.T) {
	upstream := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Path {
		case "/assets":
			w.Write([]byte(`[{"assetId": "AST-SYNC-1", "name": "Synced Laptop"}]`))
		default:
			w.Write([]byte(`[]`))
		}
	}))
	defer upstream.Close()

	handler.SetUpstream(apiclient.New(upstream.URL))

	var result struct {
		Counts map[string]int `json:"counts"`
	}
	resp := postJSON(t, "/api/v1/sync", nil, &result)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, 1, result.Counts["assets"])

	rec, err := store.GetAsset("AST-SYNC-1")
	require.NoError(t, err)
	assert.Equal(t, "Synced Laptop", rec["name"])
}

func TestHealthz(t *testing.T) {
	var health map[string]interface{}
	resp := getJSON(t, "/healthz", &health)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", health["status"])
}
