package rules

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meagtan/theorem-prover/pkg/expr"
	"github.com/meagtan/theorem-prover/pkg/signature"
)

func peano() *signature.Signature {
	return signature.New(map[string]signature.LiteralSig{
		"true":    {ReturnType: "Bool"},
		"false":   {ReturnType: "Bool"},
		"and":     {ReturnType: "Bool", ArgTypes: []string{"Bool", "Bool"}},
		"implies": {ReturnType: "Bool", ArgTypes: []string{"Bool", "Bool"}},
		"=":       {ReturnType: "Bool", ArgTypes: []string{signature.Wildcard, signature.Wildcard}},
		"eq":      {ReturnType: "Bool", ArgTypes: []string{"Nat", "Nat"}},
		"0":       {ReturnType: "Nat"},
		"s":       {ReturnType: "Nat", ArgTypes: []string{"Nat"}},
		"+":       {ReturnType: "Nat", ArgTypes: []string{"Nat", "Nat"}},
	}, map[string][]signature.Constructor{
		"Bool": {{Symbol: "true"}, {Symbol: "false"}},
		"Nat":  {{Symbol: "0"}, {Symbol: "s", ArgTypes: []string{"Nat"}}},
	})
}

func TestSuccessorsDirectSubsumptionShortCircuits(t *testing.T) {
	sig := peano()
	axiom := expr.App("=", expr.App("+", expr.Lit("0"), expr.Var("N")), expr.Var("N"))
	store := NewStore(axiom)

	goal := expr.App("=", expr.App("+", expr.Lit("0"), expr.Lit("0")), expr.Lit("0"))
	steps := Successors(sig, store, goal, "Bool")

	require.Len(t, steps, 1)
	assert.True(t, steps[0].Next.Equal(expr.Lit("true")))
	assert.Equal(t, RuleApplication, steps[0].Applied.Kind)
}

func TestSuccessorsEquationalRewriteBothDirections(t *testing.T) {
	sig := peano()
	axiom := expr.App("=", expr.App("+", expr.Lit("0"), expr.Var("N")), expr.Var("N"))
	store := NewStore(axiom)

	lhs := expr.App("+", expr.Lit("0"), expr.App("s", expr.Lit("0")))
	steps := Successors(sig, store, lhs, "Nat")
	require.NotEmpty(t, steps)
	found, foundReverse := false, false
	for _, st := range steps {
		if st.Next.Equal(expr.App("s", expr.Lit("0"))) {
			found = true
		}
		if st.Next.Equal(expr.App("+", expr.Lit("0"), lhs)) {
			foundReverse = true
		}
	}
	assert.True(t, found, "expected rewrite of (+ 0 (s 0)) to (s 0)")
	assert.True(t, foundReverse, "expected right-to-left rewrite of (+ 0 (s 0)) to (+ 0 (+ 0 (s 0)))")
}

func TestSuccessorsImplicationBackChaining(t *testing.T) {
	sig := peano()
	antecedent := expr.App("eq", expr.Var("X"), expr.Var("Y"))
	consequent := expr.App("=", expr.Var("X"), expr.Var("Y"))
	rule := expr.App("implies", antecedent, consequent)
	store := NewStore(rule)

	goal := expr.App("=", expr.Lit("0"), expr.Lit("0"))
	steps := Successors(sig, store, goal, "Bool")

	found := false
	for _, st := range steps {
		if st.Next.Equal(expr.App("eq", expr.Lit("0"), expr.Lit("0"))) {
			found = true
		}
	}
	assert.True(t, found, "expected back-chaining to (eq 0 0)")
}

func TestSuccessorsNeverYieldsStatementItself(t *testing.T) {
	sig := peano()
	axiom := expr.App("=", expr.Var("X"), expr.Var("X"))
	store := NewStore(axiom)

	goal := expr.App("+", expr.Lit("0"), expr.Lit("0"))
	for _, st := range Successors(sig, store, goal, "Nat") {
		assert.False(t, st.Next.Equal(goal))
	}
}

func TestSuccessorsSubTermRewritingExcludesImplies(t *testing.T) {
	sig := peano()
	axiom := expr.App("=", expr.App("+", expr.Lit("0"), expr.Var("N")), expr.Var("N"))
	store := NewStore(axiom)

	goal := expr.App("implies", expr.App("+", expr.Lit("0"), expr.Lit("0")), expr.Lit("true"))
	steps := Successors(sig, store, goal, "Bool")
	// no successor should rewrite inside the antecedent of this implies
	for _, st := range steps {
		if st.Next.IsApp() && st.Next.Head() == "implies" {
			t.Fatalf("sub-term rewriting must not recurse into implies, got %s", st.Next.String())
		}
	}
}

func TestSuccessorsStructuralInductionOnPredicate(t *testing.T) {
	sig := peano()
	stmt := expr.App("=", expr.App("+", expr.Var("N"), expr.Lit("0")), expr.Var("N"))
	store := NewStore() // no axioms, so induction is the only stage that fires

	steps := Successors(sig, store, stmt, "Bool")
	require.NotEmpty(t, steps)
	found := false
	for _, st := range steps {
		if st.Applied.Kind == InductionStep && st.Applied.Variable == "N" {
			found = true
			require.True(t, st.Next.IsApp())
			assert.Equal(t, "and", st.Next.Head())
		}
	}
	assert.True(t, found, "expected an induction step on N")
}

func TestSuccessorsEmptyStoreAndNonPredicateHasNoSteps(t *testing.T) {
	sig := peano()
	store := NewStore()
	goal := expr.App("+", expr.Lit("0"), expr.Lit("0"))
	assert.Empty(t, Successors(sig, store, goal, "Nat"))
}
