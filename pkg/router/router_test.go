package router_test

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"asset-dashboard/pkg/router"
)

func doRequest(t *testing.T, r *router.Router, method, path string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(method, path, nil)
	rec := httptest.NewRecorder()
	r.Handler().ServeHTTP(rec, req)
	return rec
}

func TestExactRoute(t *testing.T) {
	r := router.New()
	r.GET("/api/v1/assets", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("list"))
	})

	rec := doRequest(t, r, http.MethodGet, "/api/v1/assets")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "list", rec.Body.String())
}

func TestWildcardRoute(t *testing.T) {
	r := router.New()
	r.GET("/api/v1/assets/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("detail"))
	})

	rec := doRequest(t, r, http.MethodGet, "/api/v1/assets/AST-1")
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "detail", rec.Body.String())

	// A trailing wildcard swallows multiple segments.
	rec = doRequest(t, r, http.MethodGet, "/api/v1/assets/AST-1/extra")
	assert.Equal(t, http.StatusOK, rec.Code)

	// But not the bare collection path.
	rec = doRequest(t, r, http.MethodGet, "/api/v1/assets")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestMoreSpecificRouteWins(t *testing.T) {
	r := router.New()
	r.POST("/api/v1/assignments/*", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("generic"))
	})
	r.POST("/api/v1/assignments/*/return", func(w http.ResponseWriter, req *http.Request) {
		w.Write([]byte("return"))
	})

	rec := doRequest(t, r, http.MethodPost, "/api/v1/assignments/as-1/return")
	assert.Equal(t, "return", rec.Body.String())

	rec = doRequest(t, r, http.MethodPost, "/api/v1/assignments/as-1")
	assert.Equal(t, "generic", rec.Body.String())
}

func TestMethodNotAllowed(t *testing.T) {
	r := router.New()
	r.GET("/api/v1/assets", func(w http.ResponseWriter, req *http.Request) {})

	rec := doRequest(t, r, http.MethodDelete, "/api/v1/assets")
	assert.Equal(t, http.StatusMethodNotAllowed, rec.Code)
}

func TestNotFound(t *testing.T) {
	r := router.New()
	r.GET("/api/v1/assets", func(w http.ResponseWriter, req *http.Request) {})

	rec := doRequest(t, r, http.MethodGet, "/api/v1/nothing")
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
