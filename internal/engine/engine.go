package engine

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/david/farm-grant-matcher/internal/catalog"
	"github.com/david/farm-grant-matcher/internal/models"
)

// Engine composes the gate, filter chain, scorer and warning annotator over
// a catalog provider. It holds no mutable state of its own, so one Engine
// serves concurrent queries without locking.
type Engine struct {
	catalog catalog.Provider
	cfg     ScoreConfig
	now     func() time.Time
}

type Option func(*Engine)

// WithScoreConfig overrides the default ranking weights.
func WithScoreConfig(cfg ScoreConfig) Option {
	return func(e *Engine) { e.cfg = cfg }
}

// WithClock fixes the engine's clock, used by tests and replayable queries.
func WithClock(now func() time.Time) Option {
	return func(e *Engine) { e.now = now }
}

func New(provider catalog.Provider, opts ...Option) *Engine {
	e := &Engine{
		catalog: provider,
		cfg:     DefaultScoreConfig(),
		now:     time.Now,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Config returns the active score configuration.
func (e *Engine) Config() ScoreConfig { return e.cfg }

// QueryOptions tune one FindMatches call. Zero values mean defaults
// (limit 20, min score 25).
type QueryOptions struct {
	Limit    int `json:"limit"`
	MinScore int `json:"min_score"`
}

// Match is one surviving record with its explainable score.
type Match struct {
	Grant    models.Grant `json:"grant"`
	Score    int          `json:"score"`
	Reasons  []string     `json:"reasons"`
	Warnings []string     `json:"warnings,omitempty"`
}

// Diagnostics reports what the filtering did, for observability. The
// per-reason exclusion counts are not part of the match payload contract
// but ride along for debugging and the self-test harness.
type Diagnostics struct {
	CandidateCount   int            `json:"candidate_count"`
	PassedCount      int            `json:"passed_count"`
	FiltersApplied   []string       `json:"filters_applied"`
	ExcludedByReason map[string]int `json:"excluded_by_reason"`
}

// ProfileSummary echoes the profile a result was computed for.
type ProfileSummary struct {
	State         string               `json:"state"`
	OperationType models.OperationType `json:"operation_type"`
	Headcount     int                  `json:"headcount"`
	Goals         []models.PurposeTag  `json:"goals"`
}

// QueryResult is the ranked, annotated, bounded result of one query.
// Results are computed fresh per call and never cached.
type QueryResult struct {
	Matches      []Match        `json:"matches"`
	TotalMatched int            `json:"total_matched"`
	Profile      ProfileSummary `json:"profile"`
	Diagnostics  Diagnostics    `json:"diagnostics"`
}

// FindMatches runs the full pipeline for one profile: gate re-check, filter
// chain, score, low-confidence penalty, minimum-score cutoff, stable sort by
// score descending (ties keep catalog order) and truncation to at most
// min(limit, MaxResults) entries.
func (e *Engine) FindMatches(profile models.FarmProfile, opts QueryOptions) QueryResult {
	snap := e.catalog.Snapshot()
	now := e.now()

	limit := opts.Limit
	if limit <= 0 || limit > e.cfg.MaxResults {
		limit = e.cfg.MaxResults
	}
	minScore := opts.MinScore
	if minScore <= 0 {
		minScore = e.cfg.MinScore
	}

	candidates := snap.Eligible()
	excluded := make(map[string]int)

	var survivors []Match
	for _, g := range candidates {
		// Defense in depth: the eligible subset is precomputed at load,
		// but the gate verdict is cheap and catalog drift is not.
		if ok, reason := CheckEligibility(g); !ok {
			excluded[reason]++
			continue
		}

		if ok, name, _ := runFilters(g, profile, now); !ok {
			excluded[name]++
			continue
		}

		score, reasons := Score(g, profile, e.cfg)
		if g.Confidence == models.ConfidenceLow {
			score -= e.cfg.LowConfPenalty
			if score < 0 {
				score = 0
			}
		}
		if score < minScore {
			excluded["below_min_score"]++
			continue
		}

		survivors = append(survivors, Match{
			Grant:    g,
			Score:    score,
			Reasons:  reasons,
			Warnings: Warnings(g, now),
		})
	}

	sort.SliceStable(survivors, func(i, j int) bool {
		return survivors[i].Score > survivors[j].Score
	})

	total := len(survivors)
	if len(survivors) > limit {
		survivors = survivors[:limit]
	}

	return QueryResult{
		Matches:      survivors,
		TotalMatched: total,
		Profile: ProfileSummary{
			State:         profile.State,
			OperationType: profile.OperationType,
			Headcount:     profile.Headcount,
			Goals:         profile.Goals,
		},
		Diagnostics: Diagnostics{
			CandidateCount:   len(candidates),
			PassedCount:      total,
			FiltersApplied:   appliedFilters(profile),
			ExcludedByReason: excluded,
		},
	}
}

func appliedFilters(p models.FarmProfile) []string {
	goals := make([]string, len(p.Goals))
	for i, g := range p.Goals {
		goals[i] = string(g)
	}
	return []string{
		fmt.Sprintf("state: %s", p.State),
		fmt.Sprintf("operation type: %s", p.OperationType),
		fmt.Sprintf("goals: %s", strings.Join(goals, ", ")),
		"small-operator programs only",
	}
}
