package models

import (
	"time"

	"github.com/google/uuid"
)

// Grant is one funding program in the catalog. Records are created by the
// ingestion pipeline and treated as immutable snapshots during matching.
type Grant struct {
	ID     string    `json:"id" yaml:"id"`
	RowID  uuid.UUID `json:"row_id,omitempty" yaml:"-"`
	Title  string    `json:"title" yaml:"title"`
	Org    string    `json:"org" yaml:"org"`
	URL    string    `json:"url" yaml:"url"`

	Scope  GeoScope `json:"scope" yaml:"scope"`
	States []string `json:"states,omitempty" yaml:"states,omitempty"` // empty = nationwide reach

	Purposes     []PurposeTag   `json:"purposes" yaml:"purposes"`
	Applicants   []ApplicantTag `json:"applicants" yaml:"applicants"`
	MaxHeadcount int            `json:"max_headcount" yaml:"max_headcount"` // 0 = unlimited

	SmallFarmFriendly bool             `json:"small_farm_friendly" yaml:"small_farm_friendly"`
	InstitutionOnly   bool             `json:"institution_only" yaml:"institution_only"`
	TypicalApplicant  TypicalApplicant `json:"typical_applicant" yaml:"typical_applicant"`
	Confidence        Confidence       `json:"confidence" yaml:"confidence"`

	AmountMin     *float64 `json:"amount_min,omitempty" yaml:"amount_min,omitempty"`
	AmountMax     *float64 `json:"amount_max,omitempty" yaml:"amount_max,omitempty"`
	AmountDisplay string   `json:"amount_display" yaml:"amount_display"`

	DeadlineType DeadlineType `json:"deadline_type" yaml:"deadline_type"`
	Deadline     *time.Time   `json:"deadline,omitempty" yaml:"deadline,omitempty"` // nil for rolling

	Requirements []string  `json:"requirements,omitempty" yaml:"requirements,omitempty"`
	QualityScore int       `json:"quality_score" yaml:"quality_score"` // 0-100
	Source       string    `json:"source" yaml:"source"`
	VerifiedAt   time.Time `json:"verified_at" yaml:"verified_at"`
}

// HasPurpose reports whether the grant carries the given purpose tag.
func (g Grant) HasPurpose(tag PurposeTag) bool {
	for _, p := range g.Purposes {
		if p == tag {
			return true
		}
	}
	return false
}

// AcceptsApplicant reports whether the grant's applicant tags include tag.
func (g Grant) AcceptsApplicant(tag ApplicantTag) bool {
	for _, a := range g.Applicants {
		if a == tag {
			return true
		}
	}
	return false
}

// CoversState reports whether the grant reaches the given state code.
// National scope and an empty state list both mean nationwide reach.
func (g Grant) CoversState(state string) bool {
	if g.Scope == ScopeNational || len(g.States) == 0 {
		return true
	}
	for _, s := range g.States {
		if s == state {
			return true
		}
	}
	return false
}
