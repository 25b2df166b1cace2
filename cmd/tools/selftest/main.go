// Standalone self-test harness: loads the embedded catalog, runs the
// scripted regression scenarios, and prints the results. Exits non-zero on
// any failure so it can gate deploys.
package main

import (
	"context"
	"log"
	"os"
	"strconv"

	"github.com/david/farm-grant-matcher/internal/catalog"
	"github.com/david/farm-grant-matcher/internal/engine"
	"github.com/jedib0t/go-pretty/v6/table"
)

func main() {
	ctx := context.Background()

	snap, err := catalog.LoadEmbedded(ctx)
	if err != nil {
		log.Fatalf("Failed to load embedded catalog: %v", err)
	}

	eng := engine.New(catalog.NewStatic(snap))
	report := eng.RunSelfTests()

	t := table.NewWriter()
	t.SetOutputMirror(os.Stdout)
	t.AppendHeader(table.Row{"Scenario", "Matches", "Check", "Result"})

	for _, p := range report.Profiles {
		for i, c := range p.Checks {
			name, count := "", ""
			if i == 0 {
				name = p.Name
				count = strconv.Itoa(p.MatchCount)
			}
			result := "PASS"
			if !c.Passed {
				result = "FAIL: " + c.Detail
			}
			t.AppendRow(table.Row{name, count, c.Name, result})
		}
		t.AppendSeparator()
	}
	t.Render()

	if !report.Passed {
		log.Printf("Self tests FAILED (run %s)", report.RunID)
		os.Exit(1)
	}
	log.Printf("Self tests passed (run %s)", report.RunID)
}
