package engine

import (
	"sort"

	"github.com/david/farm-grant-matcher/internal/models"
)

// CatalogHealth is the set of catalog counters exposed for diagnostics.
type CatalogHealth struct {
	CatalogSize          int                       `json:"catalog_size"`
	EligibleCount        int                       `json:"eligible_count"`
	InstitutionOnlyCount int                       `json:"institution_only_count"`
	ConfidenceCounts     map[models.Confidence]int `json:"confidence_counts"`
	PurposeTagsInUse     []models.PurposeTag       `json:"purpose_tags_in_use"`
	StateCoverage        map[string]int            `json:"state_coverage"`
}

// Health computes catalog counters from the current snapshot. National-scope
// records (and records with an empty state list, which means nationwide
// reach) count toward every state.
func (e *Engine) Health() CatalogHealth {
	snap := e.catalog.Snapshot()

	h := CatalogHealth{
		CatalogSize:      snap.Len(),
		EligibleCount:    len(snap.Eligible()),
		ConfidenceCounts: make(map[models.Confidence]int),
		StateCoverage:    make(map[string]int),
	}

	purposes := make(map[models.PurposeTag]bool)
	for _, g := range snap.Grants() {
		if g.InstitutionOnly {
			h.InstitutionOnlyCount++
		}
		h.ConfidenceCounts[g.Confidence]++
		for _, p := range g.Purposes {
			purposes[p] = true
		}

		if g.Scope == models.ScopeNational || len(g.States) == 0 {
			for _, s := range models.USStateCodes {
				h.StateCoverage[s]++
			}
		} else {
			for _, s := range g.States {
				h.StateCoverage[s]++
			}
		}
	}

	for p := range purposes {
		h.PurposeTagsInUse = append(h.PurposeTagsInUse, p)
	}
	sort.Slice(h.PurposeTagsInUse, func(i, j int) bool {
		return h.PurposeTagsInUse[i] < h.PurposeTagsInUse[j]
	})

	return h
}
