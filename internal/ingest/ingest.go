// Package ingest pulls the full inventory from the upstream API into the
// local sqlite cache. One Run is one sync pass; resources are fetched in
// parallel and upserted by natural ID so repeated passes converge.
package ingest

import (
	"context"
	"fmt"
	"sync"

	"asset-dashboard/internal/apiclient"
	"asset-dashboard/internal/model"
	"asset-dashboard/internal/store"
)

// Result summarizes one sync pass.
type Result struct {
	Counts map[string]int `json:"counts"`
	Errors []string       `json:"errors,omitempty"`
}

// Run syncs all resources from the upstream API. Partial failure is not
// fatal: every resource is attempted and the errors are collected into the
// result.
func Run(ctx context.Context, client *apiclient.Client) Result {
	type resource struct {
		name  string
		fetch func(context.Context) ([]model.Record, error)
		save  func(model.Record) error
	}

	resources := []resource{
		{"assets", client.FetchAssets, func(rec model.Record) error {
			return store.SaveAsset(model.AssetFromRecord(rec))
		}},
		{"employees", client.FetchEmployees, func(rec model.Record) error {
			return store.SaveEmployee(model.EmployeeFromRecord(rec))
		}},
		{"assignments", client.FetchAssignments, func(rec model.Record) error {
			return store.SaveAssignment(model.AssignmentFromRecord(rec))
		}},
		{"maintenance", client.FetchMaintenance, func(rec model.Record) error {
			return store.SaveMaintenanceRecord(model.MaintenanceFromRecord(rec))
		}},
		{"approvals", client.FetchApprovals, func(rec model.Record) error {
			return store.SaveApproval(model.ApprovalFromRecord(rec))
		}},
	}

	result := Result{Counts: make(map[string]int, len(resources))}
	var mu sync.Mutex
	var wg sync.WaitGroup

	for _, res := range resources {
		wg.Add(1)
		go func(res resource) {
			defer wg.Done()

			fmt.Printf("➡️ Syncing %s from upstream\n", res.name)
			records, err := res.fetch(ctx)
			if err != nil {
				mu.Lock()
				result.Errors = append(result.Errors, fmt.Sprintf("fetch %s: %v", res.name, err))
				mu.Unlock()
				return
			}

			saved := 0
			for _, rec := range records {
				select {
				case <-ctx.Done():
					mu.Lock()
					result.Errors = append(result.Errors, fmt.Sprintf("sync %s: %v", res.name, ctx.Err()))
					mu.Unlock()
					return
				default:
				}
				if err := res.save(rec); err != nil {
					mu.Lock()
					result.Errors = append(result.Errors, fmt.Sprintf("save %s record: %v", res.name, err))
					mu.Unlock()
					continue
				}
				saved++
			}

			mu.Lock()
			result.Counts[res.name] = saved
			mu.Unlock()
			fmt.Printf("✅ Synced %d %s records\n", saved, res.name)
		}(res)
	}

	wg.Wait()
	return result
}
