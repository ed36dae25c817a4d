// Package search implements component H of spec.md: the A* / weighted-A*
// proof search driver, its per-call search state, and the cross-call
// heuristic landmark cache.
package search

import (
	"sync"

	"github.com/meagtan/theorem-prover/pkg/distance"
	"github.com/meagtan/theorem-prover/pkg/expr"
	"github.com/meagtan/theorem-prover/pkg/rules"
	"github.com/meagtan/theorem-prover/pkg/signature"
)

// ProofContext bundles the state spec.md §3.2-§3.3 and §4.8 hold process-
// wide or across prove calls: the signature and constructor tables (set
// once by the environment loader and treated as read-only afterward),
// the append-only rule store, the memoized edit-distance function, and
// hCache, the landmark heuristic lower bound that only ever tightens
// upward across calls. Library callers may share one ProofContext across
// goroutines; the mutation points (Store.Append, hCache updates and, when
// reached through Prove, the distance memo) are guarded. Calling
// Distance's methods directly bypasses that guard.
type ProofContext struct {
	Sig      *signature.Signature
	Store    *rules.Store
	Distance *distance.Memo

	mu     sync.Mutex
	hCache map[string]int
}

// NewProofContext builds a ProofContext over a fixed signature, seeded
// with the given initial rules.
func NewProofContext(sig *signature.Signature, initialRules ...expr.Expr) *ProofContext {
	return &ProofContext{
		Sig:      sig,
		Store:    rules.NewStore(initialRules...),
		Distance: distance.NewMemo(),
		hCache:   map[string]int{},
	}
}

// heuristic returns the cached lower-bound estimate for e, computing and
// caching EstimateCost(e) the first time e is seen.
func (pc *ProofContext) heuristic(e expr.Expr) int {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	key := e.Key()
	if h, ok := pc.hCache[key]; ok {
		return h
	}
	h := pc.Distance.EstimateCost(e)
	pc.hCache[key] = h
	return h
}

// tighten applies the landmark triangle-inequality update (spec.md
// §4.8 step 2) to every node whose heuristic value is currently cached
// lower than the newly discovered bound.
func (pc *ProofContext) tighten(key string, bound int) {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	if cur, ok := pc.hCache[key]; !ok || bound > cur {
		pc.hCache[key] = bound
	}
}
