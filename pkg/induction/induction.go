// Package induction implements the structural induction operator of
// spec.md §4.4: given a typed free variable of a statement, it expands
// the statement into the conjunction of one base/step conjunct per
// constructor of the variable's type.
package induction

import (
	"fmt"

	"github.com/meagtan/theorem-prover/pkg/expr"
	"github.com/meagtan/theorem-prover/pkg/signature"
)

// Induct converts stmt into a conjunction by inducting on variable v of
// type typ. It returns (zero, false) if typ has no registered
// constructors (induction is then impossible, per spec.md §4.4).
//
// For a nullary constructor c, the base conjunct is stmt with v replaced
// by c. For a schema constructor (c, τ1, ..., τk), every argument whose
// declared type is NOT typ gets a fresh variable; an argument whose
// declared type IS typ reuses v itself rather than a fresh variable —
// this is what makes the step conjunct's antecedent exactly stmt
// unchanged and its consequent exactly stmt with v replaced by
// (c, ..., v, ...), matching the Peano worked example in spec.md §4.4
// ((and, stmt[v↦0], (implies, stmt, stmt[v↦(s, v)]))) and the
// commented-out reference implementation in the original source this
// spec was distilled from. A constructor schema with more than one
// recursive-typed argument (which never arises for the Bool/Nat seed
// signature) still produces a well-formed, if weaker, conjunct this way
// — every recursive position shares the single hypothesis "stmt holds
// for v" rather than an independent hypothesis per position.
func Induct(sig *signature.Signature, stmt expr.Expr, v, typ string) (expr.Expr, bool) {
	ctors, ok := sig.ConstructorsOf(typ)
	if !ok || len(ctors) == 0 {
		return expr.Expr{}, false
	}

	used := usedNames(sig, stmt)
	freshCounter := 0
	fresh := func(base string) expr.Expr {
		for {
			name := fmt.Sprintf("%s%d", base, freshCounter)
			freshCounter++
			if !used[name] {
				used[name] = true
				return expr.Var(name)
			}
		}
	}

	conjuncts := make([]expr.Expr, 0, len(ctors))
	for _, c := range ctors {
		if c.IsNullary() {
			conjuncts = append(conjuncts, expr.Evaluate(stmt, expr.Bindings{v: expr.Lit(c.Symbol)}))
			continue
		}

		args := make([]expr.Expr, len(c.ArgTypes))
		hasRecursive := false
		for i, at := range c.ArgTypes {
			if at == typ {
				args[i] = expr.Var(v)
				hasRecursive = true
			} else {
				args[i] = fresh(v)
			}
		}
		consApp := expr.App(c.Symbol, args...)
		consequent := expr.Evaluate(stmt, expr.Bindings{v: consApp})

		if hasRecursive {
			conjuncts = append(conjuncts, expr.App("implies", stmt, consequent))
		} else {
			conjuncts = append(conjuncts, consequent)
		}
	}

	return foldAnd(conjuncts), true
}

// foldAnd combines conjuncts with right-associative binary "and"
// applications, since the signature's "and" literal is declared with
// arity 2 (spec.md's "(and, conjunct1, ..., conjunctn)" notation is
// informal n-ary sugar over this). A single-constructor type yields its
// lone conjunct directly, with no wrapping "and" at all, per spec.md
// §4.4.
func foldAnd(conjuncts []expr.Expr) expr.Expr {
	if len(conjuncts) == 1 {
		return conjuncts[0]
	}
	result := conjuncts[len(conjuncts)-1]
	for i := len(conjuncts) - 2; i >= 0; i-- {
		result = expr.App("and", conjuncts[i], result)
	}
	return result
}

func usedNames(sig *signature.Signature, stmt expr.Expr) map[string]bool {
	used := map[string]bool{}
	for _, vb := range sig.Variables(stmt) {
		used[vb.Name] = true
	}
	return used
}
