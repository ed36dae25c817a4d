package search

import (
	"container/heap"
	"context"

	"github.com/meagtan/theorem-prover/pkg/expr"
	"github.com/meagtan/theorem-prover/pkg/rules"
	"github.com/meagtan/theorem-prover/pkg/signature"
)

// Outcome classifies how a Prove call ended.
type Outcome int

const (
	// Proved means the search reached true; Proof holds the witness path.
	Proved Outcome = iota
	// Exhausted means the open set emptied before reaching true — an
	// ordinary, non-exceptional failure result (spec.md §7, "Search
	// exhaustion").
	Exhausted
	// Aborted means the caller's context was cancelled between two pops.
	// The rule store is left exactly as it was; the heuristic cache keeps
	// the estimates added for nodes first seen before the cancellation.
	Aborted
)

func (o Outcome) String() string {
	switch o {
	case Proved:
		return "proved"
	case Exhausted:
		return "exhausted"
	case Aborted:
		return "aborted"
	default:
		return "unknown"
	}
}

// ProofStep is one (applied-rule, resulting-expression) pair in a
// reconstructed proof (spec.md §3.4).
type ProofStep struct {
	Applied rules.Applied
	Result  expr.Expr
}

// Proof is the full predecessor-chain reconstruction, in order from the
// statement's first rewrite down to true.
type Proof []ProofStep

type predEntry struct {
	applied rules.Applied
	prevKey string
}

// Prove runs weighted A* search (spec.md §4.8) from stmt toward true,
// using pc's signature, rule store, distance function and landmark
// cache. epsilon is the weight-inflation parameter; epsilon == 1 is
// plain A* (optimal among discovered paths), epsilon > 1 trades
// optimality for speed. Prove does not itself reject epsilon < 1 — see
// cmd/prover for the CLI-level usage check.
//
// On success the original stmt is appended to the rule store and every
// node's landmark heuristic bound is tightened by the triangle
// inequality, benefiting later Prove calls sharing this ProofContext.
// On exhaustion or abort, the store is left exactly as Prove found it
// and no cached heuristic value is changed; the cache does keep the
// EstimateCost entries added for nodes first seen while expanding,
// which per spec.md §5 is safe to keep even on an aborted or exhausted
// call — they are lower bounds, never a false claim about true.
func Prove(ctx context.Context, pc *ProofContext, stmt expr.Expr, epsilon float64) (Proof, Outcome, error) {
	stmtKey := stmt.Key()

	gScore := map[string]int{stmtKey: 0}
	nodes := map[string]expr.Expr{stmtKey: stmt}
	pred := map[string]predEntry{}
	closed := map[string]bool{}

	var pq pqueue
	seq := 0
	push := func(n expr.Expr, priority float64) {
		heap.Push(&pq, pqItem{priority: priority, seq: seq, node: n})
		seq++
	}
	push(stmt, epsilon*float64(pc.heuristic(stmt)))

	for pq.Len() > 0 {
		if err := ctx.Err(); err != nil {
			return nil, Aborted, err
		}

		current := heap.Pop(&pq).(pqItem).node
		key := current.Key()

		if closed[key] {
			continue
		}
		if current.Equal(expr.Lit("false")) {
			continue
		}
		if current.Equal(expr.Lit("true")) {
			pc.Store.Append(stmt)
			finalG := gScore[key]
			for n, g := range gScore {
				pc.tighten(n, finalG-g)
			}
			return reconstruct(pred, nodes, key, stmtKey), Proved, nil
		}
		closed[key] = true

		typ := nodeType(pc.Sig, current)
		for _, step := range rules.Successors(pc.Sig, pc.Store, current, typ) {
			next := step.Next
			if next.Equal(current) {
				continue
			}
			nextKey := next.Key()
			pc.mu.Lock()
			d := pc.Distance.Distance(current, next)
			pc.mu.Unlock()
			candidate := gScore[key] + d
			if g, seen := gScore[nextKey]; seen && candidate >= g {
				continue
			}
			gScore[nextKey] = candidate
			nodes[nextKey] = next
			pred[nextKey] = predEntry{applied: step.Applied, prevKey: key}
			h := pc.heuristic(next)
			push(next, float64(candidate)+epsilon*float64(h))
		}
	}

	return nil, Exhausted, nil
}

// nodeType reports the type a node's own rewriting should be
// constrained to: its own declared type if registered, otherwise the
// wildcard (an unregistered-type node, such as a bare free variable,
// imposes no constraint on its successors).
func nodeType(sig *signature.Signature, e expr.Expr) string {
	if t, ok := sig.TypeOf(e); ok {
		return t
	}
	return signature.Wildcard
}

// reconstruct walks pred from finalKey back to rootKey and reverses the
// resulting sequence, yielding the proof in forward (root-to-true)
// order.
func reconstruct(pred map[string]predEntry, nodes map[string]expr.Expr, finalKey, rootKey string) Proof {
	var steps Proof
	for key := finalKey; key != rootKey; {
		pe, ok := pred[key]
		if !ok {
			break
		}
		steps = append(steps, ProofStep{Applied: pe.applied, Result: nodes[key]})
		key = pe.prevKey
	}
	for i, j := 0, len(steps)-1; i < j; i, j = i+1, j-1 {
		steps[i], steps[j] = steps[j], steps[i]
	}
	return steps
}
