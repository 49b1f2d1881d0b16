// Package apiclient talks to the upstream inventory REST API. Every call
// goes through the retrying executor, and every payload is canonicalized to
// snake_case before anything downstream sees it.
package apiclient

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"asset-dashboard/internal/model"
	"asset-dashboard/internal/retry"
)

// Client fetches dashboard entities from the upstream API.
type Client struct {
	BaseURL    string
	HTTPClient *http.Client
	Policy     retry.Policy

	// OnRetry, when set, observes failed attempts (used for progress logs).
	OnRetry retry.OnRetry
}

// New returns a client for the given base URL with the default retry policy.
func New(baseURL string) *Client {
	return &Client{
		BaseURL:    strings.TrimRight(baseURL, "/"),
		HTTPClient: &http.Client{Timeout: 30 * time.Second},
		Policy:     retry.DefaultPolicy(),
	}
}

// FetchAssets retrieves the full asset inventory.
func (c *Client) FetchAssets(ctx context.Context) ([]model.Record, error) {
	return c.fetchList(ctx, "/assets")
}

// FetchEmployees retrieves the employee directory.
func (c *Client) FetchEmployees(ctx context.Context) ([]model.Record, error) {
	return c.fetchList(ctx, "/employees")
}

// FetchAssignments retrieves asset assignments.
func (c *Client) FetchAssignments(ctx context.Context) ([]model.Record, error) {
	return c.fetchList(ctx, "/assignments")
}

// FetchMaintenance retrieves maintenance history.
func (c *Client) FetchMaintenance(ctx context.Context) ([]model.Record, error) {
	return c.fetchList(ctx, "/maintenance")
}

// FetchApprovals retrieves approval requests.
func (c *Client) FetchApprovals(ctx context.Context) ([]model.Record, error) {
	return c.fetchList(ctx, "/approvals")
}

// fetchList GETs a collection endpoint with retries and returns canonical
// records. The upstream is inconsistent about envelopes: some endpoints
// answer a bare array, others {"data": [...]}.
func (c *Client) fetchList(ctx context.Context, path string) ([]model.Record, error) {
	var records []model.Record

	err := retry.Do(ctx, c.Policy, func(ctx context.Context) error {
		req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.BaseURL+path, nil)
		if err != nil {
			return fmt.Errorf("build request for %s: %w", path, err)
		}
		req.Header.Set("Accept", "application/json")

		resp, err := c.HTTPClient.Do(req)
		if err != nil {
			return fmt.Errorf("GET %s: %w", path, err)
		}
		defer resp.Body.Close()

		body, err := io.ReadAll(resp.Body)
		if err != nil {
			return fmt.Errorf("read %s response: %w", path, err)
		}
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("GET %s: upstream returned %d: %s", path, resp.StatusCode, truncate(body, 200))
		}

		records, err = decodeList(body)
		if err != nil {
			return fmt.Errorf("decode %s response: %w", path, err)
		}
		return nil
	}, c.OnRetry)
	if err != nil {
		return nil, err
	}

	return model.CanonicalizeAll(records), nil
}

func decodeList(body []byte) ([]model.Record, error) {
	var raw interface{}
	if err := json.Unmarshal(body, &raw); err != nil {
		return nil, err
	}

	items, ok := raw.([]interface{})
	if !ok {
		envelope, ok := raw.(map[string]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected JSON structure")
		}
		items, ok = envelope["data"].([]interface{})
		if !ok {
			return nil, fmt.Errorf("unexpected JSON structure")
		}
	}

	records := make([]model.Record, 0, len(items))
	for _, item := range items {
		if m, ok := item.(map[string]interface{}); ok {
			records = append(records, model.Record(m))
		}
	}
	return records, nil
}

func truncate(b []byte, n int) string {
	s := strings.TrimSpace(string(b))
	if len(s) > n {
		return s[:n] + "..."
	}
	return s
}
