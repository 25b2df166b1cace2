package engine

import (
	"fmt"
	"time"

	"github.com/david/farm-grant-matcher/internal/models"
	"github.com/google/uuid"
)

// scriptedProfile is one realistic small-operator archetype run through the
// orchestrator as a regression check.
type scriptedProfile struct {
	Name       string
	Profile    models.FarmProfile
	MinMatches int
}

// scriptedProfiles is the fixed scenario set. Changing the embedded catalog
// must keep every scenario above its minimum match count.
var scriptedProfiles = []scriptedProfile{
	{
		Name: "california cattle ranch",
		Profile: models.FarmProfile{
			State:         "CA",
			OperationType: models.OperationCattle,
			LegalForm:     models.LegalIndividual,
			Headcount:     3,
			Goals:         []models.PurposeTag{models.PurposeCattle, models.PurposeIrrigation, models.PurposeConservation},
		},
		MinMatches: 10,
	},
	{
		Name: "iowa row crop farm",
		Profile: models.FarmProfile{
			State:         "IA",
			OperationType: models.OperationCrop,
			LegalForm:     models.LegalBusiness,
			Headcount:     4,
			Goals:         []models.PurposeTag{models.PurposeCropProduction, models.PurposeEquipment, models.PurposeConservation},
		},
		MinMatches: 8,
	},
	{
		Name: "vermont specialty organic farm",
		Profile: models.FarmProfile{
			State:         "VT",
			OperationType: models.OperationSpecialty,
			LegalForm:     models.LegalIndividual,
			Headcount:     2,
			Goals:         []models.PurposeTag{models.PurposeOrganic, models.PurposeMarketing, models.PurposeInfrastructure},
		},
		MinMatches: 5,
	},
	{
		Name: "texas mixed operation",
		Profile: models.FarmProfile{
			State:         "TX",
			OperationType: models.OperationMixed,
			LegalForm:     models.LegalBusiness,
			Headcount:     6,
			Goals:         []models.PurposeTag{models.PurposeCattle, models.PurposeCropProduction, models.PurposeEnergy},
		},
		MinMatches: 5,
	},
}

// SelfTestCheck is one assertion inside a scenario.
type SelfTestCheck struct {
	Name   string `json:"name"`
	Passed bool   `json:"passed"`
	Detail string `json:"detail,omitempty"`
}

// ProfileResult is the outcome of one scripted scenario.
type ProfileResult struct {
	Name       string          `json:"name"`
	MatchCount int             `json:"match_count"`
	Passed     bool            `json:"passed"`
	Checks     []SelfTestCheck `json:"checks"`
}

// SelfTestReport is the harness output.
type SelfTestReport struct {
	RunID    uuid.UUID       `json:"run_id"`
	RanAt    time.Time       `json:"ran_at"`
	Passed   bool            `json:"passed"`
	Profiles []ProfileResult `json:"profiles"`
}

// RunSelfTests runs the scripted scenarios through the orchestrator and
// asserts the engine invariants: no institution-only leakage, every result
// small-farm-friendly, and a minimum match count per scenario. It needs no
// network or database, only the engine's catalog provider.
func (e *Engine) RunSelfTests() SelfTestReport {
	report := SelfTestReport{
		RunID:  uuid.New(),
		RanAt:  e.now().UTC(),
		Passed: true,
	}

	for _, sc := range scriptedProfiles {
		result := ProfileResult{Name: sc.Name, Passed: true}
		res := e.FindMatches(sc.Profile, QueryOptions{})
		result.MatchCount = res.TotalMatched

		leaked := 0
		unfriendly := 0
		for _, m := range res.Matches {
			if m.Grant.InstitutionOnly {
				leaked++
			}
			if !m.Grant.SmallFarmFriendly {
				unfriendly++
			}
		}

		result.Checks = append(result.Checks,
			check("no institution-only results", leaked == 0,
				fmt.Sprintf("%d institution-only records leaked", leaked)),
			check("all results small-farm friendly", unfriendly == 0,
				fmt.Sprintf("%d non-small-farm records returned", unfriendly)),
			check(fmt.Sprintf("at least %d matches", sc.MinMatches), res.TotalMatched >= sc.MinMatches,
				fmt.Sprintf("got %d", res.TotalMatched)),
		)

		for _, c := range result.Checks {
			if !c.Passed {
				result.Passed = false
				report.Passed = false
			}
		}
		report.Profiles = append(report.Profiles, result)
	}

	return report
}

func check(name string, passed bool, failDetail string) SelfTestCheck {
	c := SelfTestCheck{Name: name, Passed: passed}
	if !passed {
		c.Detail = failDetail
	}
	return c
}
