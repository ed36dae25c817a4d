package search

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/meagtan/theorem-prover/pkg/expr"
	"github.com/meagtan/theorem-prover/pkg/signature"
)

func peanoSig() *signature.Signature {
	return signature.New(map[string]signature.LiteralSig{
		"true":    {ReturnType: "Bool"},
		"false":   {ReturnType: "Bool"},
		"and":     {ReturnType: "Bool", ArgTypes: []string{"Bool", "Bool"}},
		"implies": {ReturnType: "Bool", ArgTypes: []string{"Bool", "Bool"}},
		"=":       {ReturnType: "Bool", ArgTypes: []string{signature.Wildcard, signature.Wildcard}},
		"0":       {ReturnType: "Nat"},
		"s":       {ReturnType: "Nat", ArgTypes: []string{"Nat"}},
		"+":       {ReturnType: "Nat", ArgTypes: []string{"Nat", "Nat"}},
	}, map[string][]signature.Constructor{
		"Bool": {{Symbol: "true"}, {Symbol: "false"}},
		"Nat":  {{Symbol: "0"}, {Symbol: "s", ArgTypes: []string{"Nat"}}},
	})
}

func eq(a, b expr.Expr) expr.Expr { return expr.App("=", a, b) }

func TestProveDirectAxiomMatchIsOneStep(t *testing.T) {
	sig := peanoSig()
	leftIdentity := eq(expr.App("+", expr.Lit("0"), expr.Var("N")), expr.Var("N"))
	pc := NewProofContext(sig, leftIdentity)

	goal := eq(expr.App("+", expr.Lit("0"), expr.Lit("0")), expr.Lit("0"))
	proof, outcome, err := Prove(context.Background(), pc, goal, 1)
	require.NoError(t, err)
	assert.Equal(t, Proved, outcome)
	require.Len(t, proof, 1)
	assert.True(t, proof[0].Result.Equal(expr.Lit("true")))
}

func TestProveReflexivityIsOneStep(t *testing.T) {
	sig := peanoSig()
	refl := eq(expr.Var("X"), expr.Var("X"))
	pc := NewProofContext(sig, refl)

	goal := eq(expr.Lit("0"), expr.Lit("0"))
	proof, outcome, err := Prove(context.Background(), pc, goal, 1)
	require.NoError(t, err)
	assert.Equal(t, Proved, outcome)
	assert.Len(t, proof, 1)
}

func TestProveAppendsProvedStatementToStoreAsLemma(t *testing.T) {
	sig := peanoSig()
	leftIdentity := eq(expr.App("+", expr.Lit("0"), expr.Var("N")), expr.Var("N"))
	pc := NewProofContext(sig, leftIdentity)

	goal := eq(expr.App("+", expr.Lit("0"), expr.Lit("0")), expr.Lit("0"))
	before := pc.Store.Len()
	_, outcome, err := Prove(context.Background(), pc, goal, 1)
	require.NoError(t, err)
	require.Equal(t, Proved, outcome)
	assert.Equal(t, before+1, pc.Store.Len())

	// Re-proving the exact same statement is now a direct subsumption
	// match against the lemma just appended — still one step.
	proof, outcome, err := Prove(context.Background(), pc, goal, 1)
	require.NoError(t, err)
	assert.Equal(t, Proved, outcome)
	assert.Len(t, proof, 1)
}

func TestProveExhaustsWhenNoRuleApplies(t *testing.T) {
	sig := peanoSig()
	pc := NewProofContext(sig) // empty rule store: nothing to rewrite with

	goal := eq(expr.Lit("0"), expr.App("s", expr.Lit("0")))
	proof, outcome, err := Prove(context.Background(), pc, goal, 1)
	require.NoError(t, err)
	assert.Equal(t, Exhausted, outcome)
	assert.Nil(t, proof)
	assert.Equal(t, 0, pc.Store.Len())
}

func TestProveAbortsOnCancelledContext(t *testing.T) {
	sig := peanoSig()
	pc := NewProofContext(sig)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	goal := eq(expr.Lit("0"), expr.App("s", expr.Lit("0")))
	proof, outcome, err := Prove(ctx, pc, goal, 1)
	assert.Error(t, err)
	assert.Equal(t, Aborted, outcome)
	assert.Nil(t, proof)
}

func TestProveLandmarkCacheOnlyTightensUpward(t *testing.T) {
	sig := peanoSig()
	leftIdentity := eq(expr.App("+", expr.Lit("0"), expr.Var("N")), expr.Var("N"))
	pc := NewProofContext(sig, leftIdentity)

	goal := eq(expr.App("+", expr.Lit("0"), expr.Lit("0")), expr.Lit("0"))
	before := pc.heuristic(goal)
	_, outcome, err := Prove(context.Background(), pc, goal, 1)
	require.NoError(t, err)
	require.Equal(t, Proved, outcome)
	after := pc.heuristic(goal)
	assert.GreaterOrEqual(t, after, before)
}

func TestProveRespectsShortTimeout(t *testing.T) {
	sig := peanoSig()
	pc := NewProofContext(sig)

	ctx, cancel := context.WithTimeout(context.Background(), time.Nanosecond)
	defer cancel()
	time.Sleep(time.Millisecond)

	goal := eq(expr.Lit("0"), expr.App("s", expr.Lit("0")))
	_, outcome, err := Prove(ctx, pc, goal, 1)
	assert.Error(t, err)
	assert.Equal(t, Aborted, outcome)
}
