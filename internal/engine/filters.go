package engine

import (
	"fmt"
	"time"

	"github.com/david/farm-grant-matcher/internal/models"
)

// hardFilter is one pass/fail predicate in the chain. Filters are ordered
// cheapest and most discriminating first; the chain short-circuits on the
// first failure and reports that filter's name and reason.
type hardFilter struct {
	name  string
	check func(g models.Grant, p models.FarmProfile, now time.Time) (bool, string)
}

var hardFilters = []hardFilter{
	{name: "geography", check: filterGeography},
	{name: "deadline", check: filterDeadline},
	{name: "headcount", check: filterHeadcount},
	{name: "purpose", check: filterPurpose},
	{name: "applicant_type", check: filterApplicantType},
}

// runFilters evaluates the chain for one (record, profile) pair. On failure
// it returns the failing filter's name and a human-readable reason.
func runFilters(g models.Grant, p models.FarmProfile, now time.Time) (passed bool, filterName, reason string) {
	for _, f := range hardFilters {
		if ok, why := f.check(g, p, now); !ok {
			return false, f.name, why
		}
	}
	return true, "", ""
}

func filterGeography(g models.Grant, p models.FarmProfile, _ time.Time) (bool, string) {
	if g.Scope == models.ScopeNational {
		return true, ""
	}
	// An empty state list on a non-national record is missing data, not a
	// known restriction; we pass rather than reject. Flagged for product
	// review: this fallback may surface opportunities the applicant does
	// not actually qualify for.
	if len(g.States) == 0 {
		return true, ""
	}
	for _, s := range g.States {
		if s == p.State {
			return true, ""
		}
	}
	return false, fmt.Sprintf("not available in %s", p.State)
}

func filterDeadline(g models.Grant, _ models.FarmProfile, now time.Time) (bool, string) {
	if g.DeadlineType == models.DeadlineRolling || g.Deadline == nil {
		return true, ""
	}
	if startOfDay(*g.Deadline).Before(startOfDay(now)) {
		return false, "application deadline has passed"
	}
	return true, ""
}

func filterHeadcount(g models.Grant, p models.FarmProfile, _ time.Time) (bool, string) {
	if g.MaxHeadcount == 0 || p.Headcount <= g.MaxHeadcount {
		return true, ""
	}
	return false, fmt.Sprintf("operation exceeds the program's size limit (%d max)", g.MaxHeadcount)
}

func filterPurpose(g models.Grant, p models.FarmProfile, _ time.Time) (bool, string) {
	// Binary overlap only; degree of overlap is the scorer's business.
	for _, goal := range p.Goals {
		if g.HasPurpose(goal) {
			return true, ""
		}
	}
	return false, "no overlap with your declared goals"
}

func filterApplicantType(g models.Grant, p models.FarmProfile, _ time.Time) (bool, string) {
	for _, tag := range p.ImpliedApplicantTags() {
		if g.AcceptsApplicant(tag) {
			return true, ""
		}
	}
	return false, "applicant type not accepted by this program"
}

// startOfDay truncates to day resolution; deadline comparisons are
// calendar-day comparisons, not instant comparisons.
func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
