// Package engine is the matching/eligibility core: eligibility gating, hard
// filtering, scoring, ranking and warning annotation for grant records
// against a farm profile. Everything here is a pure synchronous computation
// over an immutable catalog snapshot; failure is expressed as data
// (rejection reasons), never as errors or panics.
package engine

import "github.com/david/farm-grant-matcher/internal/models"

const (
	reasonInstitutionOnly   = "institution-only program"
	reasonNotSmallOperators = "not accessible to small operators"
)

// CheckEligibility is the binary admission gate. The institution-only check
// is unconditional and comes first: a record flagged institution-only is
// never eligible regardless of any other field. The gate runs at catalog
// load and again per record in the orchestrator, in case a snapshot was
// built from a drifted catalog.
func CheckEligibility(g models.Grant) (bool, string) {
	if g.InstitutionOnly {
		return false, reasonInstitutionOnly
	}
	if !g.SmallFarmFriendly {
		return false, reasonNotSmallOperators
	}
	return true, ""
}
