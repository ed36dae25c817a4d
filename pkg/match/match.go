// Package match implements pattern matching by subsumption (spec.md
// §4.3): given a pattern and a subject expression, it determines
// whether some binding of the pattern's variables turns the pattern
// into the subject, subject to type constraints accumulated along the
// way. This is one-sided unification — bindings always flow from
// subject to pattern variable, never the reverse.
package match

import (
	"github.com/meagtan/theorem-prover/pkg/expr"
	"github.com/meagtan/theorem-prover/pkg/signature"
)

// work is one pending obligation on the matcher's worklist: pattern p
// must match subject s while being constrained to type typ.
type work struct {
	pattern expr.Expr
	subject expr.Expr
	typ     string
}

// Match reports whether pattern subsumes subject under the initial type
// constraint typ (pass signature.Wildcard for an unconstrained top-level
// match). On success it returns the binding that witnesses
// evaluate(pattern, binding) == subject; the binding may legitimately be
// empty, so callers must check the boolean, not len(bindings) == 0.
//
// A worklist, rather than recursion, drives the traversal — matching can
// be invoked once per candidate rule per node popped off the search
// queue, and keeping it iterative avoids adding stack depth proportional
// to both rule size and search depth.
func Match(sig *signature.Signature, pattern, subject expr.Expr, typ string) (expr.Bindings, bool) {
	bindings := expr.Bindings{}
	vartypes := map[string]string{}
	stack := []work{{pattern: pattern, subject: subject, typ: typ}}

	for len(stack) > 0 {
		w := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		p, s, t := w.pattern, w.subject, w.typ

		switch p.Kind() {
		case expr.KindLiteral:
			if !s.IsLiteral() || s.Name() != p.Name() {
				return nil, false
			}
			declared, ok := sig.TypeOf(p)
			if !ok || !signature.Subsumes(t, declared) {
				return nil, false
			}

		case expr.KindVariable:
			name := p.Name()
			if prior, ok := vartypes[name]; ok {
				switch {
				case signature.Subsumes(prior, t):
					vartypes[name] = t
				case signature.Subsumes(t, prior):
					// prior is already the tighter constraint; keep it.
				default:
					return nil, false
				}
			} else {
				vartypes[name] = t
			}

			if !s.IsVariable() {
				subjectType, ok := sig.TypeOf(s)
				if !ok || !signature.Subsumes(vartypes[name], subjectType) {
					return nil, false
				}
			}

			if s.IsVariable() && s.Name() == name {
				// pattern variable matching itself needs no binding.
				break
			}
			if existing, bound := bindings[name]; bound {
				if !existing.Equal(s) {
					return nil, false
				}
			} else {
				bindings[name] = s
			}

		case expr.KindApp:
			if !s.IsApp() || s.Head() != p.Head() || s.Arity() != p.Arity() {
				return nil, false
			}
			lsig, ok := sig.LiteralSig(p.Head())
			if !ok || lsig.Arity() != p.Arity() {
				return nil, false
			}
			args, sargs := p.Args(), s.Args()
			for i := len(args) - 1; i >= 0; i-- {
				stack = append(stack, work{pattern: args[i], subject: sargs[i], typ: lsig.ArgTypes[i]})
			}
		}
	}

	return bindings, true
}
