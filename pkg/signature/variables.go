package signature

import "github.com/meagtan/theorem-prover/pkg/expr"

// VarBinding pairs a free variable with the most specific type it is
// constrained to by its position in the expression Variables walked.
type VarBinding struct {
	Name string
	Type string
}

// Variables returns the free variables of e, each paired with the type
// its leftmost occurrence is constrained to by the signature of its
// enclosing heads (spec.md §4.1). Duplicates are deduplicated keeping
// the first, leftmost occurrence's type — a variable used at one
// position with type Nat and reused elsewhere as an argument typed
// Wildcard still reports Nat, since that is the tighter, first-seen
// constraint.
func (s *Signature) Variables(e expr.Expr) []VarBinding {
	seen := map[string]bool{}
	var out []VarBinding
	s.collectVariables(e, Wildcard, seen, &out)
	return out
}

func (s *Signature) collectVariables(e expr.Expr, typ string, seen map[string]bool, out *[]VarBinding) {
	switch e.Kind() {
	case expr.KindVariable:
		if !seen[e.Name()] {
			seen[e.Name()] = true
			*out = append(*out, VarBinding{Name: e.Name(), Type: typ})
		}
	case expr.KindApp:
		l, ok := s.literals[e.Head()]
		for i, arg := range e.Args() {
			argTyp := Wildcard
			if ok && i < len(l.ArgTypes) {
				argTyp = l.ArgTypes[i]
			}
			s.collectVariables(arg, argTyp, seen, out)
		}
	}
}
