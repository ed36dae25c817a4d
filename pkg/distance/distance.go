// Package distance implements component G of spec.md: a generalized
// tree edit distance over expressions (Distance) and the admissible
// heuristic cost estimate the search driver uses as its h-value
// (EstimateCost).
package distance

import (
	"github.com/meagtan/theorem-prover/pkg/expr"
)

// Memo memoizes Distance across calls, since the search driver
// repeatedly asks for the distance between the current node and many
// candidate successors, and successors frequently recur across
// different nodes (spec.md §4.7: "the function memoizes on
// (e1, e2); it is symmetric and non-negative").
type Memo struct {
	cache map[[2]string]int
}

// NewMemo returns an empty distance memo.
func NewMemo() *Memo {
	return &Memo{cache: map[[2]string]int{}}
}

// Distance measures the generalized tree edit distance between a and b.
// It is symmetric and non-negative, and Distance(e, e) == 0 for every e.
func (m *Memo) Distance(a, b expr.Expr) int {
	ka, kb := a.Key(), b.Key()
	key := [2]string{ka, kb}
	if ka > kb {
		key = [2]string{kb, ka}
	}
	if d, ok := m.cache[key]; ok {
		return d
	}
	d := m.distance(a, b)
	m.cache[key] = d
	return d
}

func (m *Memo) distance(a, b expr.Expr) int {
	if a.Equal(b) {
		return 0
	}

	aApp, bApp := a.IsApp(), b.IsApp()

	switch {
	case aApp && headIs(a, "and"):
		if bApp && headIs(b, "and") {
			// both sides and: cheap position-wise approximation
			// (spec.md §9 Open Question 3 resolves this as a valid,
			// if weaker, lower bound rather than a true minimum-weight
			// assignment).
			aArgs, bArgs := a.Args(), b.Args()
			return m.Distance(aArgs[0], bArgs[0]) + m.Distance(aArgs[1], bArgs[1])
		}
		sum := 0
		for _, x := range a.Args() {
			sum += m.Distance(x, b)
		}
		return sum
	case bApp && headIs(b, "and"):
		sum := 0
		for _, y := range b.Args() {
			sum += m.Distance(a, y)
		}
		return sum
	case aApp && headIs(a, "or"):
		return minDistance(m, a.Args(), b)
	case bApp && headIs(b, "or"):
		return minDistance(m, b.Args(), a)
	case aApp && headIs(a, "implies"):
		return m.Distance(a.Args()[1], b) // only the consequent is scored
	case bApp && headIs(b, "implies"):
		return m.Distance(a, b.Args()[1])
	case aApp && bApp:
		return m.listDistance(a, b)
	case aApp:
		return atomVsApp(b, a)
	case bApp:
		return atomVsApp(a, b)
	default:
		return 1 // two distinct atoms
	}
}

func headIs(e expr.Expr, head string) bool {
	return e.IsApp() && e.Head() == head && e.Arity() == 2
}

func minDistance(m *Memo, xs []expr.Expr, y expr.Expr) int {
	best := 0
	for i, x := range xs {
		d := m.Distance(x, y)
		if i == 0 || d < best {
			best = d
		}
	}
	return best
}

// atomVsApp returns the distance between a non-application atom and an
// application other: the deep length of other, minus one if atom occurs
// somewhere in other's flattening.
func atomVsApp(atom, other expr.Expr) int {
	cost := expr.DeepLength(other)
	if expr.Contains(other, atom) {
		cost--
	}
	return cost
}

// listDistance runs the Wagner-Fischer generalized tree edit distance
// over the (head, arg1, ..., argk) sequences of two applications: the
// cost of deleting or inserting a subtree t is DeepLength(t), and the
// cost of substituting b for a is Distance(a, b) recursively.
func (m *Memo) listDistance(a, b expr.Expr) int {
	as := sequenceOf(a)
	bs := sequenceOf(b)
	n, k := len(as), len(bs)

	// d[i][j] = cost of transforming as[:i] into bs[:j].
	d := make([][]int, n+1)
	for i := range d {
		d[i] = make([]int, k+1)
	}
	for i := 1; i <= n; i++ {
		d[i][0] = d[i-1][0] + expr.DeepLength(as[i-1])
	}
	for j := 1; j <= k; j++ {
		d[0][j] = d[0][j-1] + expr.DeepLength(bs[j-1])
	}
	for i := 1; i <= n; i++ {
		for j := 1; j <= k; j++ {
			if as[i-1].Equal(bs[j-1]) {
				d[i][j] = d[i-1][j-1]
				continue
			}
			del := d[i-1][j] + expr.DeepLength(as[i-1])
			ins := d[i][j-1] + expr.DeepLength(bs[j-1])
			sub := d[i-1][j-1] + m.Distance(as[i-1], bs[j-1])
			d[i][j] = min3(del, ins, sub)
		}
	}
	return d[n][k]
}

func sequenceOf(e expr.Expr) []expr.Expr {
	seq := make([]expr.Expr, 0, e.Arity()+1)
	seq = append(seq, expr.Lit(e.Head()))
	seq = append(seq, e.Args()...)
	return seq
}

func min3(a, b, c int) int {
	m := a
	if b < m {
		m = b
	}
	if c < m {
		m = c
	}
	return m
}

// EstimateCost returns an admissible lower bound on the number of
// rewriting steps needed to reach true from e (spec.md §4.7): every
// rewriting step reduces complexity by at most one atom on this
// measure, and EstimateCost(true) == 0.
func (m *Memo) EstimateCost(e expr.Expr) int {
	if e.IsApp() && e.Arity() == 2 {
		switch e.Head() {
		case "and":
			args := e.Args()
			return m.EstimateCost(args[0]) + m.EstimateCost(args[1])
		case "or":
			args := e.Args()
			a, b := m.EstimateCost(args[0]), m.EstimateCost(args[1])
			if a < b {
				return a
			}
			return b
		case "implies":
			return m.EstimateCost(e.Args()[1])
		case "=":
			args := e.Args()
			return m.Distance(args[0], args[1])
		}
	}
	n := expr.DeepLength(e) - 1
	if n < 0 {
		return 0
	}
	return n
}
