package expr

// Bindings maps variable names to the expressions they are bound to.
// Substitutions built from bindings are never cyclic: a matching bound
// value always comes from the subject side of a match, never from the
// pattern itself, so no variable can be transitively bound to an
// expression that mentions it.
type Bindings map[string]Expr

// Evaluate returns e with every variable replaced by its binding in b,
// recursing structurally. Variables absent from b, and all literals,
// are returned unchanged. Evaluate(e, nil) == e for any well-formed e.
func Evaluate(e Expr, b Bindings) Expr {
	switch e.kind {
	case KindLiteral:
		return e
	case KindVariable:
		if bound, ok := b[e.name]; ok {
			return bound
		}
		return e
	default: // KindApp
		args := make([]Expr, len(e.args))
		changed := false
		for i, a := range e.args {
			args[i] = Evaluate(a, b)
			if !args[i].Equal(a) {
				changed = true
			}
		}
		if !changed {
			return e
		}
		return App(e.head, args...)
	}
}

// Flatten returns the leaf atoms (literals and variables) of e in
// left-to-right order.
func Flatten(e Expr) []Expr {
	var out []Expr
	flattenInto(e, &out)
	return out
}

func flattenInto(e Expr, out *[]Expr) {
	// explicit stack rather than pure recursion would be needed for
	// pathologically deep proof terms (see spec's design note on
	// unbounded recursion); expressions built by this prover's own
	// rewriting steps stay shallow in practice, so a bounded recursive
	// walk is used here and in DeepLength/Evaluate for clarity. The
	// driver's own loop (pkg/search) is iterative.
	if e.kind == KindApp {
		// the head counts as a leaf atom in its own right, matching
		// deep_length((h, a, b)) == 1 + deep_length(a) + deep_length(b).
		*out = append(*out, Lit(e.head))
		for _, a := range e.args {
			flattenInto(a, out)
		}
		return
	}
	*out = append(*out, e)
}

// DeepLength counts the leaf atoms of e, including each application's
// own head symbol: DeepLength(App(h, a, b)) == 1 + DeepLength(a) +
// DeepLength(b). DeepLength always equals len(Flatten(e)).
func DeepLength(e Expr) int {
	if e.kind != KindApp {
		return 1
	}
	n := 1 // the head itself
	for _, a := range e.args {
		n += DeepLength(a)
	}
	return n
}

// Contains reports whether atom occurs verbatim somewhere in the
// flattening of e (used by the atom-vs-application case of Distance).
func Contains(e Expr, atom Expr) bool {
	for _, a := range Flatten(e) {
		if a.Equal(atom) {
			return true
		}
	}
	return false
}
