// Package catalog supplies immutable snapshots of the grant catalog to the
// matching engine. Records arrive already normalized: the embedded catalog
// and the Postgres loader both validate at load time and fail fast rather
// than coerce bad data during matching.
package catalog

import (
	"sync/atomic"
	"time"

	"github.com/david/farm-grant-matcher/internal/models"
)

// Provider hands out the current catalog snapshot. Implementations must
// return fully-built immutable snapshots so concurrent queries never observe
// a partially-updated catalog.
type Provider interface {
	Snapshot() *Snapshot
}

// Snapshot is an immutable view of the catalog: the full record list in
// catalog order, a by-id index, and the precomputed small-operator-eligible
// subset. Build one with NewSnapshot and never mutate it afterwards.
type Snapshot struct {
	grants   []models.Grant
	byID     map[string]int
	eligible []models.Grant
	loadedAt time.Time
}

// NewSnapshot indexes the given records. The caller is expected to have run
// ValidateGrants first; NewSnapshot only precomputes derived views.
func NewSnapshot(grants []models.Grant) *Snapshot {
	s := &Snapshot{
		grants:   grants,
		byID:     make(map[string]int, len(grants)),
		loadedAt: time.Now().UTC(),
	}
	for i, g := range grants {
		s.byID[g.ID] = i
		if gateEligible(g) {
			s.eligible = append(s.eligible, g)
		}
	}
	return s
}

// gateEligible mirrors the engine's eligibility gate for the load-time
// precomputation. The engine re-checks per record as defense against
// catalog drift.
func gateEligible(g models.Grant) bool {
	return !g.InstitutionOnly && g.SmallFarmFriendly
}

// Grants returns all records in catalog order.
func (s *Snapshot) Grants() []models.Grant { return s.grants }

// Eligible returns the precomputed small-operator-eligible subset, in
// catalog order.
func (s *Snapshot) Eligible() []models.Grant { return s.eligible }

// ByID looks up a record by its stable slug id.
func (s *Snapshot) ByID(id string) (models.Grant, bool) {
	i, ok := s.byID[id]
	if !ok {
		return models.Grant{}, false
	}
	return s.grants[i], true
}

// Len returns the total catalog size.
func (s *Snapshot) Len() int { return len(s.grants) }

// LoadedAt reports when this snapshot was built.
func (s *Snapshot) LoadedAt() time.Time { return s.loadedAt }

// Static serves a single snapshot forever. Used by tests and the standalone
// self-test harness.
type Static struct {
	snap *Snapshot
}

func NewStatic(snap *Snapshot) *Static { return &Static{snap: snap} }

func (p *Static) Snapshot() *Snapshot { return p.snap }

// Swappable serves the most recently published snapshot. Refreshes publish
// a whole new snapshot atomically; in-flight queries keep the view they
// started with.
type Swappable struct {
	cur atomic.Pointer[Snapshot]
}

func NewSwappable(initial *Snapshot) *Swappable {
	p := &Swappable{}
	p.cur.Store(initial)
	return p
}

func (p *Swappable) Snapshot() *Snapshot { return p.cur.Load() }

// Publish atomically replaces the current snapshot.
func (p *Swappable) Publish(snap *Snapshot) { p.cur.Store(snap) }
