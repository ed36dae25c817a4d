package signature

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meagtan/theorem-prover/pkg/expr"
)

func peano() *Signature {
	return New(map[string]LiteralSig{
		"true":    {ReturnType: "Bool"},
		"false":   {ReturnType: "Bool"},
		"and":     {ReturnType: "Bool", ArgTypes: []string{"Bool", "Bool"}},
		"or":      {ReturnType: "Bool", ArgTypes: []string{"Bool", "Bool"}},
		"implies": {ReturnType: "Bool", ArgTypes: []string{"Bool", "Bool"}},
		"=":       {ReturnType: "Bool", ArgTypes: []string{Wildcard, Wildcard}},
		"0":       {ReturnType: "Nat"},
		"s":       {ReturnType: "Nat", ArgTypes: []string{"Nat"}},
		"+":       {ReturnType: "Nat", ArgTypes: []string{"Nat", "Nat"}},
		"*":       {ReturnType: "Nat", ArgTypes: []string{"Nat", "Nat"}},
	}, map[string][]Constructor{
		"Bool": {{Symbol: "true"}, {Symbol: "false"}},
		"Nat":  {{Symbol: "0"}, {Symbol: "s", ArgTypes: []string{"Nat"}}},
	})
}

func TestTypeOf(t *testing.T) {
	s := peano()
	typ, ok := s.TypeOf(expr.Lit("0"))
	require.True(t, ok)
	assert.Equal(t, "Nat", typ)

	typ, ok = s.TypeOf(expr.App("+", expr.Lit("0"), expr.Var("N")))
	require.True(t, ok)
	assert.Equal(t, "Nat", typ)

	_, ok = s.TypeOf(expr.Lit("bogus"))
	assert.False(t, ok)

	_, ok = s.TypeOf(expr.Var("X"))
	assert.False(t, ok)
}

func TestSubsumes(t *testing.T) {
	assert.True(t, Subsumes(Wildcard, "Nat"))
	assert.True(t, Subsumes("Nat", "Nat"))
	assert.False(t, Subsumes("Nat", "Bool"))
	assert.False(t, Subsumes("Bool", Wildcard))
}

func TestPredicates(t *testing.T) {
	s := peano()
	preds := s.Predicates()
	assert.Contains(t, preds, "and")
	assert.Contains(t, preds, "=")
	assert.NotContains(t, preds, "+")
}

func TestConstructorsOf(t *testing.T) {
	s := peano()
	ctors, ok := s.ConstructorsOf("Nat")
	require.True(t, ok)
	require.Len(t, ctors, 2)
	assert.True(t, ctors[0].IsNullary())
	assert.Equal(t, "0", ctors[0].Symbol)
	assert.Equal(t, []string{"Nat"}, ctors[1].ArgTypes)

	_, ok = s.ConstructorsOf("Unit")
	assert.False(t, ok)
}

func TestValidateDetectsUnknownTypes(t *testing.T) {
	s := New(map[string]LiteralSig{
		"0": {ReturnType: "Nat"},
		"s": {ReturnType: "Nat", ArgTypes: []string{"Nat"}},
		"f": {ReturnType: "Frobnicate"},
	}, map[string][]Constructor{
		"Nat": {{Symbol: "0"}, {Symbol: "s", ArgTypes: []string{"Nat"}}},
		"Pair": {{Symbol: "pair", ArgTypes: []string{"Nat", "Undeclared"}}},
	})
	errs := s.Validate()
	// f's return type Frobnicate is itself a literal's ReturnType and so
	// counts as registered; only pair's Undeclared argument is reported.
	assert.Len(t, errs, 1)
}

func TestValidateAcceptsWellFormedSignature(t *testing.T) {
	assert.Empty(t, peano().Validate())
}

func TestVariablesAssignsLeftmostType(t *testing.T) {
	s := peano()
	stmt := expr.App("=", expr.App("+", expr.Lit("0"), expr.Var("N")), expr.Var("N"))
	vars := s.Variables(stmt)
	require.Len(t, vars, 1)
	assert.Equal(t, "N", vars[0].Name)
	assert.Equal(t, "Nat", vars[0].Type)
}

func TestVariablesOrderAndDedup(t *testing.T) {
	s := peano()
	stmt := expr.App("=", expr.Var("M"), expr.App("+", expr.Var("N"), expr.Var("M")))
	vars := s.Variables(stmt)
	require.Len(t, vars, 2)
	assert.Equal(t, "M", vars[0].Name)
	assert.Equal(t, "N", vars[1].Name)
	// M's first occurrence is the = argument, constrained only to the
	// wildcard equality slot.
	assert.Equal(t, Wildcard, vars[0].Type)
}
