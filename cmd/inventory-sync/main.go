package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"asset-dashboard/internal/apiclient"
	"asset-dashboard/internal/config"
	"asset-dashboard/internal/ingest"
	"asset-dashboard/internal/store"
)

// inventory-sync runs one sync pass against the upstream API and exits
// non-zero if any resource failed, so it can run from cron.
func main() {
	configPath := flag.String("config", "config.yaml", "path to config file")
	timeout := flag.Duration("timeout", 5*time.Minute, "overall sync timeout")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatal(err)
	}
	if cfg.UpstreamURL == "" {
		log.Fatal("upstream_url is required for inventory-sync")
	}

	if err := store.InitDB(cfg.DBPath); err != nil {
		log.Fatal(err)
	}

	client := apiclient.New(cfg.UpstreamURL)
	client.Policy = cfg.RetryPolicy()
	client.OnRetry = func(attempt int, delay time.Duration, err error) {
		log.Printf("🔄 Upstream attempt %d failed: %v (retrying in %v)", attempt, err, delay)
	}

	ctx, cancel := context.WithTimeout(context.Background(), *timeout)
	defer cancel()

	result := ingest.Run(ctx, client)
	for name, count := range result.Counts {
		fmt.Printf("📦 %s: %d records\n", name, count)
	}
	if len(result.Errors) > 0 {
		for _, e := range result.Errors {
			log.Printf("❌ %s", e)
		}
		os.Exit(1)
	}
}
