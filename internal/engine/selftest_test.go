package engine

import (
	"testing"

	"github.com/david/farm-grant-matcher/internal/catalog"
	"github.com/david/farm-grant-matcher/internal/models"
)

func TestRunSelfTests_PassesOnEmbeddedCatalog(t *testing.T) {
	eng := embeddedEngine(t)

	report := eng.RunSelfTests()
	if !report.Passed {
		for _, p := range report.Profiles {
			for _, c := range p.Checks {
				if !c.Passed {
					t.Errorf("%s: %s (%s)", p.Name, c.Name, c.Detail)
				}
			}
		}
		t.Fatal("self tests must pass on the embedded catalog")
	}
	if len(report.Profiles) != len(scriptedProfiles) {
		t.Fatalf("expected %d scenario results, got %d", len(scriptedProfiles), len(report.Profiles))
	}
	if report.RunID.String() == "00000000-0000-0000-0000-000000000000" {
		t.Fatal("expected a run id")
	}
}

func TestRunSelfTests_FailsOnDriftedCatalog(t *testing.T) {
	// A catalog consisting only of a record that claims both
	// institution_only and small_farm_friendly never reaches a match:
	// the load-time gate keeps it out of the eligible subset, so every
	// scenario falls below its minimum match count and the harness fails.
	leaky := scorableGrant()
	leaky.ID = "leaky"
	leaky.InstitutionOnly = true
	leaky.SmallFarmFriendly = true
	leaky.Purposes = []models.PurposeTag{
		models.PurposeCattle, models.PurposeIrrigation, models.PurposeConservation,
		models.PurposeCropProduction, models.PurposeEquipment, models.PurposeOrganic,
		models.PurposeMarketing, models.PurposeInfrastructure, models.PurposeEnergy,
	}
	leaky.Applicants = []models.ApplicantTag{
		models.ApplicantFarm, models.ApplicantRanch, models.ApplicantIndividual, models.ApplicantBusiness,
	}

	eng := New(catalog.NewStatic(catalog.NewSnapshot([]models.Grant{leaky})), WithClock(fixedClock()))
	report := eng.RunSelfTests()

	if report.Passed {
		t.Fatal("harness must fail on a drifted catalog")
	}
}
