// Package rules implements the rule store (spec.md §3.3) and the
// rule-step successor generator (component F, spec.md §4.6).
package rules

import (
	"sync"

	"github.com/meagtan/theorem-prover/pkg/expr"
)

// Store is the process-wide (or per-ProofContext), append-only ordered
// sequence of rules spec.md §3.3 describes. Every rule is itself an
// expression, interpreted by Successors according to its shape; no rule
// is ever removed. A Store is safe for concurrent use — the only
// mutation is Append, guarded by a mutex, matching the
// sync.RWMutex-around-shared-state idiom gokando's Model/ConstraintStore
// types use.
type Store struct {
	mu    sync.RWMutex
	rules []expr.Expr
}

// NewStore creates a rule store seeded with initial rules, in order.
func NewStore(initial ...expr.Expr) *Store {
	s := &Store{rules: append([]expr.Expr(nil), initial...)}
	return s
}

// Append adds rule to the end of the store. It is the only mutating
// operation on a Store, called by the search driver only after a proof
// succeeds (spec.md §4.8 step 2) or by the environment loader while
// building the initial axiom set.
func (s *Store) Append(rule expr.Expr) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.rules = append(s.rules, rule)
}

// Snapshot returns a copy of the rules currently in the store, in store
// order. Successors takes its own snapshot at the start of each call so
// that a rule appended mid-search (from a nested Prove, in a
// multi-threaded caller) never mutates a generator already in flight.
func (s *Store) Snapshot() []expr.Expr {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]expr.Expr, len(s.rules))
	copy(out, s.rules)
	return out
}

// Len reports the number of rules currently in the store.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.rules)
}
