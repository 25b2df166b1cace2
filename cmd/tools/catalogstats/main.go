// Prints catalog health counters for the embedded catalog, or for the
// database catalog when DATABASE_URL is set.
package main

import (
	"context"
	"log"
	"os"
	"sort"

	"github.com/david/farm-grant-matcher/internal/catalog"
	"github.com/david/farm-grant-matcher/internal/engine"
	"github.com/david/farm-grant-matcher/internal/models"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	ctx := context.Background()

	var snap *catalog.Snapshot
	var err error
	if os.Getenv("DATABASE_URL") != "" {
		pool, cerr := catalog.Connect(ctx)
		if cerr != nil {
			log.Fatal(cerr)
		}
		defer pool.Close()
		snap, err = catalog.LoadFromDB(ctx, pool)
	} else {
		snap, err = catalog.LoadEmbedded(ctx)
	}
	if err != nil {
		log.Fatalf("Failed to load catalog: %v", err)
	}

	health := engine.New(catalog.NewStatic(snap)).Health()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Counter", "Value"})
	t.AppendRows([]table.Row{
		{"Catalog size", health.CatalogSize},
		{"Small-operator eligible", health.EligibleCount},
		{"Institution-only", health.InstitutionOnlyCount},
		{"High confidence", health.ConfidenceCounts[models.ConfidenceHigh]},
		{"Medium confidence", health.ConfidenceCounts[models.ConfidenceMedium]},
		{"Low confidence", health.ConfidenceCounts[models.ConfidenceLow]},
		{"Purpose tags in use", len(health.PurposeTagsInUse)},
	})
	t.Render()

	type stateCount struct {
		state string
		count int
	}
	coverage := make([]stateCount, 0, len(health.StateCoverage))
	for s, n := range health.StateCoverage {
		coverage = append(coverage, stateCount{s, n})
	}
	sort.Slice(coverage, func(i, j int) bool {
		if coverage[i].count != coverage[j].count {
			return coverage[i].count > coverage[j].count
		}
		return coverage[i].state < coverage[j].state
	})

	ct := table.NewWriter()
	ct.SetOutputMirror(os.Stdout)
	ct.AppendHeader(table.Row{"State", "Programs"})
	for i, sc := range coverage {
		if i == 10 {
			break
		}
		ct.AppendRow(table.Row{sc.state, sc.count})
	}
	ct.Render()
}
