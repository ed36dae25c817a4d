package search

import "github.com/meagtan/theorem-prover/pkg/expr"

// pqItem is one entry in the open priority queue: a candidate node
// ordered by f = g + ε·h, with seq breaking ties in insertion order
// (spec.md §3.5: "breaking ties by insertion order").
type pqItem struct {
	priority float64
	seq      int
	node     expr.Expr
}

// pqueue is a container/heap min-heap of pqItem.
type pqueue []pqItem

func (q pqueue) Len() int { return len(q) }

func (q pqueue) Less(i, j int) bool {
	if q[i].priority != q[j].priority {
		return q[i].priority < q[j].priority
	}
	return q[i].seq < q[j].seq
}

func (q pqueue) Swap(i, j int) { q[i], q[j] = q[j], q[i] }

func (q *pqueue) Push(x any) {
	*q = append(*q, x.(pqItem))
}

func (q *pqueue) Pop() any {
	old := *q
	n := len(old)
	item := old[n-1]
	*q = old[:n-1]
	return item
}
