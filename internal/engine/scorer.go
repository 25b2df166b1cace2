package engine

import (
	"fmt"
	"math"
	"strings"

	"github.com/david/farm-grant-matcher/internal/models"
)

// ScoreConfig holds every tunable of the ranking behavior. Changing a
// weight must never require touching control flow.
type ScoreConfig struct {
	PurposePoints      int `yaml:"purpose_points"`
	PurposeCap         int `yaml:"purpose_cap"`
	StateBonus         int `yaml:"state_bonus"`
	RegionalBonus      int `yaml:"regional_bonus"`
	NationalBonus      int `yaml:"national_bonus"`
	SmallOperatorBonus int `yaml:"small_operator_bonus"`
	HighConfBonus      int `yaml:"high_conf_bonus"`
	MediumConfBonus    int `yaml:"medium_conf_bonus"`
	QualityBonusMax    int `yaml:"quality_bonus_max"`
	LowConfPenalty     int `yaml:"low_conf_penalty"`
	MinScore           int `yaml:"min_score"`
	MaxResults         int `yaml:"max_results"`
}

// DefaultScoreConfig returns the production weights.
func DefaultScoreConfig() ScoreConfig {
	return ScoreConfig{
		PurposePoints:      20,
		PurposeCap:         60,
		StateBonus:         15,
		RegionalBonus:      10,
		NationalBonus:      5,
		SmallOperatorBonus: 8,
		HighConfBonus:      7,
		MediumConfBonus:    3,
		QualityBonusMax:    10,
		LowConfPenalty:     20,
		MinScore:           25,
		MaxResults:         20,
	}
}

// Score computes the additive 0-100 relevance score and its human-readable
// reasons for a record that already passed the gate and the filter chain.
// The low-confidence penalty is deliberately NOT applied here; the
// orchestrator subtracts it after clamping so scoring semantics and
// confidence deprioritization stay independently testable.
func Score(g models.Grant, p models.FarmProfile, cfg ScoreConfig) (int, []string) {
	score := 0
	var reasons []string

	var matched []models.PurposeTag
	for _, goal := range p.Goals {
		if g.HasPurpose(goal) {
			matched = append(matched, goal)
		}
	}
	purposePoints := len(matched) * cfg.PurposePoints
	if purposePoints > cfg.PurposeCap {
		purposePoints = cfg.PurposeCap
	}
	score += purposePoints
	if len(matched) > 0 {
		reasons = append(reasons, purposeReason(matched))
	}

	inState := g.CoversState(p.State)
	switch {
	case g.Scope == models.ScopeState && inState:
		score += cfg.StateBonus
		reasons = append(reasons, fmt.Sprintf("offered specifically in %s", p.State))
	case g.Scope == models.ScopeRegional && inState:
		score += cfg.RegionalBonus
		reasons = append(reasons, "covers your region")
	case g.Scope == models.ScopeNational:
		score += cfg.NationalBonus
	}

	if g.TypicalApplicant == models.TypicalSmallOperator {
		score += cfg.SmallOperatorBonus
		reasons = append(reasons, "designed for small farms")
	}

	switch g.Confidence {
	case models.ConfidenceHigh:
		score += cfg.HighConfBonus
	case models.ConfidenceMedium:
		score += cfg.MediumConfBonus
	}

	score += int(math.Round(float64(g.QualityScore) / 100.0 * float64(cfg.QualityBonusMax)))

	if score > 100 {
		score = 100
	}
	if score < 0 {
		score = 0
	}
	return score, reasons
}

// purposeReason names up to two matched purposes in natural language.
func purposeReason(matched []models.PurposeTag) string {
	names := make([]string, 0, 2)
	for _, tag := range matched {
		names = append(names, strings.ReplaceAll(string(tag), "_", " "))
		if len(names) == 2 {
			break
		}
	}
	if len(names) == 1 {
		return fmt.Sprintf("supports your %s goal", names[0])
	}
	return fmt.Sprintf("supports your %s and %s goals", names[0], names[1])
}
