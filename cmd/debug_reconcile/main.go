package main

import (
	"fmt"
	"log"
	"os"

	"reading-tracker/core/config"
	"reading-tracker/core/reconcile"
	"reading-tracker/feature/record"

	json "github.com/goccy/go-json"
)

// strategyResult is what a single strategy would have produced on its own.
type strategyResult struct {
	Name     string              `json:"name"`
	Days     int                 `json:"days"`
	First    string              `json:"first,omitempty"`
	Last     string              `json:"last,omitempty"`
	Warnings []reconcile.Warning `json:"warnings"`
}

func main() {
	cfg, err := config.LoadConfig(".")
	if err != nil {
		log.Fatal(err)
	}

	payload, err := record.NewStore(cfg.Data, nil).LoadRaw()
	if err != nil {
		log.Fatal(err)
	}

	fmt.Println("=== Payload fields ===")
	for key := range payload {
		fmt.Printf("  %s\n", key)
	}

	// Run every strategy in isolation, ignoring priority.
	fmt.Println("\n=== Strategies ===")
	var results []strategyResult
	for _, s := range reconcile.DefaultStrategies() {
		rep := &reconcile.Report{}
		days := s.Extract(payload, rep)
		res := strategyResult{Name: s.Name, Days: len(days), Warnings: rep.Warnings}
		if keys := days.Keys(); len(keys) > 0 {
			res.First, res.Last = keys[0], keys[len(keys)-1]
		}
		fmt.Printf("%-22s days=%-5d warnings=%-3d range=%s..%s\n", s.Name, res.Days, len(res.Warnings), res.First, res.Last)
		results = append(results, res)
	}

	_, rep := reconcile.New(nil).Reconcile(payload)
	fmt.Printf("\nWinning strategy: %q (%d days)\n", rep.Source, rep.Days)

	output := map[string]interface{}{
		"strategies": results,
		"source":     rep.Source,
		"days":       rep.Days,
	}
	data, _ := json.MarshalIndent(output, "", "  ")
	os.WriteFile("debug_reconcile.json", data, 0644)

	fmt.Println("\nDebug complete. Check debug_reconcile.json for details.")
}
