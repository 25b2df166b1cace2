package catalog

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/david/farm-grant-matcher/internal/models"
)

func validGrant() models.Grant {
	return models.Grant{
		ID:                "fixture",
		Title:             "Fixture Grant",
		Org:               "Fixture Org",
		URL:               "https://example.com/grant",
		Scope:             models.ScopeNational,
		Purposes:          []models.PurposeTag{models.PurposeConservation},
		Applicants:        []models.ApplicantTag{models.ApplicantFarm},
		SmallFarmFriendly: true,
		TypicalApplicant:  models.TypicalSmallOperator,
		Confidence:        models.ConfidenceHigh,
		DeadlineType:      models.DeadlineRolling,
		QualityScore:      80,
		Source:            "manual",
		VerifiedAt:        time.Date(2026, 8, 1, 0, 0, 0, 0, time.UTC),
	}
}

func TestLoadEmbedded(t *testing.T) {
	snap, err := LoadEmbedded(context.Background())
	if err != nil {
		t.Fatalf("embedded catalog must load cleanly: %v", err)
	}
	if snap.Len() < 20 {
		t.Fatalf("embedded catalog suspiciously small: %d records", snap.Len())
	}
	if len(snap.Eligible()) == 0 || len(snap.Eligible()) >= snap.Len() {
		t.Fatalf("expected a proper eligible subset, got %d of %d", len(snap.Eligible()), snap.Len())
	}

	for _, g := range snap.Eligible() {
		if g.InstitutionOnly {
			t.Fatalf("institution-only record %q in eligible subset", g.ID)
		}
		if !g.SmallFarmFriendly {
			t.Fatalf("non-small-farm record %q in eligible subset", g.ID)
		}
	}
}

func TestSnapshotByID(t *testing.T) {
	snap := NewSnapshot([]models.Grant{validGrant()})

	if _, ok := snap.ByID("fixture"); !ok {
		t.Fatal("expected lookup to succeed")
	}
	if _, ok := snap.ByID("missing"); ok {
		t.Fatal("expected lookup to fail for unknown id")
	}
}

func TestValidateGrants_RejectsInstitutionConflict(t *testing.T) {
	g := validGrant()
	g.InstitutionOnly = true // still small_farm_friendly: illegal

	err := ValidateGrants(context.Background(), []models.Grant{g})
	if err == nil {
		t.Fatal("expected validation failure")
	}
	if !strings.Contains(err.Error(), "fixture") {
		t.Fatalf("error must name the record, got %v", err)
	}
}

func TestValidateGrants_RejectsRollingWithDate(t *testing.T) {
	g := validGrant()
	deadline := time.Date(2027, 1, 1, 0, 0, 0, 0, time.UTC)
	g.Deadline = &deadline // deadline_type is rolling

	if err := ValidateGrants(context.Background(), []models.Grant{g}); err == nil {
		t.Fatal("rolling record with a date must be rejected")
	}
}

func TestValidateGrants_RejectsFixedWithoutDate(t *testing.T) {
	g := validGrant()
	g.DeadlineType = models.DeadlineFixed

	if err := ValidateGrants(context.Background(), []models.Grant{g}); err == nil {
		t.Fatal("fixed record without a date must be rejected")
	}
}

func TestValidateGrants_RejectsDuplicateIDs(t *testing.T) {
	if err := ValidateGrants(context.Background(), []models.Grant{validGrant(), validGrant()}); err == nil {
		t.Fatal("duplicate ids must be rejected")
	}
}

func TestValidateGrants_RejectsUnknownEnum(t *testing.T) {
	g := validGrant()
	g.Confidence = "certain"

	if err := ValidateGrants(context.Background(), []models.Grant{g}); err == nil {
		t.Fatal("unknown confidence value must be rejected")
	}
}

func TestValidateGrants_RejectsUnknownStateCode(t *testing.T) {
	g := validGrant()
	g.Scope = models.ScopeState
	g.States = []string{"ZZ"}

	if err := ValidateGrants(context.Background(), []models.Grant{g}); err == nil {
		t.Fatal("unknown state code must be rejected")
	}
}

func TestSwappable_PublishSwapsAtomically(t *testing.T) {
	first := NewSnapshot([]models.Grant{validGrant()})
	p := NewSwappable(first)

	held := p.Snapshot()

	second := validGrant()
	second.ID = "second"
	p.Publish(NewSnapshot([]models.Grant{second}))

	// The previously-obtained snapshot is untouched; new calls see the
	// published one.
	if _, ok := held.ByID("fixture"); !ok {
		t.Fatal("in-flight snapshot must keep its view")
	}
	if _, ok := p.Snapshot().ByID("second"); !ok {
		t.Fatal("new snapshot must be visible after publish")
	}
	if _, ok := p.Snapshot().ByID("fixture"); ok {
		t.Fatal("old records must not bleed into the new snapshot")
	}
}
