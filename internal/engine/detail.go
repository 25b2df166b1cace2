package engine

import "github.com/david/farm-grant-matcher/internal/models"

// Detail pairs one record with its match evaluation for one profile.
type Detail struct {
	Grant models.Grant `json:"grant"`
	Match Match        `json:"match"`
}

// GetByID looks a record up by its stable id. Unknown ids are not an error.
func (e *Engine) GetByID(id string) (models.Grant, bool) {
	return e.catalog.Snapshot().ByID(id)
}

// DetailForProfile recomputes gate, filters and score for exactly one
// record. An ineligible or filtered-out record gets a zero score, no
// reasons, and a single warning carrying the rejection reason; the gate
// reason takes priority over any filter reason.
func (e *Engine) DetailForProfile(id string, profile models.FarmProfile) (Detail, bool) {
	g, ok := e.catalog.Snapshot().ByID(id)
	if !ok {
		return Detail{}, false
	}
	now := e.now()

	if eligible, reason := CheckEligibility(g); !eligible {
		return Detail{Grant: g, Match: Match{Grant: g, Warnings: []string{reason}}}, true
	}
	if passed, _, reason := runFilters(g, profile, now); !passed {
		return Detail{Grant: g, Match: Match{Grant: g, Warnings: []string{reason}}}, true
	}

	score, reasons := Score(g, profile, e.cfg)
	if g.Confidence == models.ConfidenceLow {
		score -= e.cfg.LowConfPenalty
		if score < 0 {
			score = 0
		}
	}
	return Detail{
		Grant: g,
		Match: Match{
			Grant:    g,
			Score:    score,
			Reasons:  reasons,
			Warnings: Warnings(g, now),
		},
	}, true
}
