package engine

import (
	"strings"
	"testing"

	"github.com/david/farm-grant-matcher/internal/models"
)

func scorableGrant() models.Grant {
	return models.Grant{
		ID:                "fixture",
		Scope:             models.ScopeNational,
		Purposes:          []models.PurposeTag{models.PurposeCattle, models.PurposeIrrigation, models.PurposeConservation, models.PurposeEquipment},
		Applicants:        []models.ApplicantTag{models.ApplicantRanch, models.ApplicantIndividual},
		SmallFarmFriendly: true,
		TypicalApplicant:  models.TypicalSmallOperator,
		Confidence:        models.ConfidenceHigh,
		QualityScore:      90,
		DeadlineType:      models.DeadlineRolling,
	}
}

func TestScore_AdditiveComponents(t *testing.T) {
	p := caCattleProfile() // three overlapping goals

	score, reasons := Score(scorableGrant(), p, DefaultScoreConfig())

	// 60 purpose (capped) + 5 national + 8 small-operator + 7 high conf
	// + 9 quality (round(90/100*10)).
	if score != 89 {
		t.Fatalf("expected 89, got %d", score)
	}
	if len(reasons) == 0 {
		t.Fatal("expected match reasons")
	}
}

func TestScore_PurposeCapAtSixty(t *testing.T) {
	g := scorableGrant()
	p := caCattleProfile()
	p.Goals = append(p.Goals, models.PurposeEquipment) // four overlaps

	withFour, _ := Score(g, p, DefaultScoreConfig())
	withThree, _ := Score(g, caCattleProfile(), DefaultScoreConfig())
	if withFour != withThree {
		t.Fatalf("purpose component must saturate at the cap: %d vs %d", withFour, withThree)
	}
}

func TestScore_MonotonicInOverlappingGoals(t *testing.T) {
	g := scorableGrant()
	goals := []models.PurposeTag{models.PurposeCattle, models.PurposeIrrigation, models.PurposeConservation, models.PurposeEquipment}

	prev := -1
	for i := 1; i <= len(goals); i++ {
		p := caCattleProfile()
		p.Goals = goals[:i]
		score, _ := Score(g, p, DefaultScoreConfig())
		if score < prev {
			t.Fatalf("adding an overlapping goal decreased the score: %d -> %d", prev, score)
		}
		prev = score
	}
}

func TestScore_GeographyBonuses(t *testing.T) {
	p := caCattleProfile()
	cfg := DefaultScoreConfig()

	state := scorableGrant()
	state.Scope = models.ScopeState
	state.States = []string{"CA"}
	stateScore, stateReasons := Score(state, p, cfg)

	national := scorableGrant()
	nationalScore, _ := Score(national, p, cfg)

	if stateScore-nationalScore != cfg.StateBonus-cfg.NationalBonus {
		t.Fatalf("state bonus delta wrong: %d vs %d", stateScore, nationalScore)
	}

	found := false
	for _, r := range stateReasons {
		if strings.Contains(r, "offered specifically in CA") {
			found = true
		}
	}
	if !found {
		t.Fatalf("expected a locational reason for state scope, got %v", stateReasons)
	}
}

func TestScore_NationalScopeEmitsNoLocationReason(t *testing.T) {
	_, reasons := Score(scorableGrant(), caCattleProfile(), DefaultScoreConfig())
	for _, r := range reasons {
		if strings.Contains(r, "region") || strings.Contains(r, "specifically") {
			t.Fatalf("national scope must not emit a locational reason, got %q", r)
		}
	}
}

func TestScore_ConfidenceBonuses(t *testing.T) {
	p := caCattleProfile()
	cfg := DefaultScoreConfig()

	high := scorableGrant()
	medium := scorableGrant()
	medium.Confidence = models.ConfidenceMedium
	low := scorableGrant()
	low.Confidence = models.ConfidenceLow

	hs, _ := Score(high, p, cfg)
	ms, _ := Score(medium, p, cfg)
	ls, _ := Score(low, p, cfg)

	if hs-ms != cfg.HighConfBonus-cfg.MediumConfBonus {
		t.Fatalf("high/medium delta wrong: %d vs %d", hs, ms)
	}
	// The scorer itself gives low confidence no bonus and no penalty; the
	// 20-point deprioritization is the orchestrator's job.
	if ms-ls != cfg.MediumConfBonus {
		t.Fatalf("low confidence must only lose the bonus here: %d vs %d", ms, ls)
	}
}

func TestScore_QualityBonusRounds(t *testing.T) {
	p := caCattleProfile()
	g := scorableGrant()
	g.QualityScore = 95 // round(9.5) = 10

	score, _ := Score(g, p, DefaultScoreConfig())
	if score != 90 {
		t.Fatalf("expected 90 with quality 95, got %d", score)
	}
}

func TestScore_ClampedToHundred(t *testing.T) {
	cfg := DefaultScoreConfig()
	cfg.PurposeCap = 200
	cfg.PurposePoints = 50

	g := scorableGrant()
	score, _ := Score(g, caCattleProfile(), cfg)
	if score != 100 {
		t.Fatalf("expected clamp to 100, got %d", score)
	}
}

func TestPurposeReason_NamesAtMostTwo(t *testing.T) {
	reason := purposeReason([]models.PurposeTag{models.PurposeCropProduction, models.PurposeIrrigation, models.PurposeCattle})
	if reason != "supports your crop production and irrigation goals" {
		t.Fatalf("unexpected reason %q", reason)
	}

	single := purposeReason([]models.PurposeTag{models.PurposeCattle})
	if single != "supports your cattle goal" {
		t.Fatalf("unexpected reason %q", single)
	}
}
