package handler

import (
	"net/http"
	"time"

	"asset-dashboard/internal/apiclient"
	"asset-dashboard/internal/ingest"
)

var upstream *apiclient.Client

// SetUpstream wires the upstream inventory client used by TriggerSync.
func SetUpstream(c *apiclient.Client) {
	upstream = c
}

// TriggerSync runs a sync pass against the upstream API
// @Summary Sync from upstream
// @Description Pull assets, employees, assignments, maintenance and approvals from the upstream API into the local cache
// @Tags sync
// @Produce json
// @Success 200 {object} ingest.Result "Sync result"
// @Failure 503 {object} map[string]interface{} "No upstream configured"
// @Router /sync [post]
func TriggerSync(w http.ResponseWriter, r *http.Request) {
	if upstream == nil {
		writeError(w, http.StatusServiceUnavailable, "No upstream API configured")
		return
	}

	result := ingest.Run(r.Context(), upstream)
	writeJSON(w, http.StatusOK, result)
}

// Healthz reports service liveness
// @Summary Health check
// @Tags health
// @Produce json
// @Success 200 {object} map[string]interface{} "OK"
// @Router /healthz [get]
func Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"time":   time.Now().UTC(),
	})
}
