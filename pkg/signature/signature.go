// Package signature implements the type lattice of spec.md §3.2/§4.5: a
// registry mapping each literal symbol to its declared type (or, for a
// function literal, its return type and argument types), a wildcard
// subsumption relation, and the type-constructor table induction
// consults.
package signature

import (
	"fmt"
	"sort"

	"github.com/meagtan/theorem-prover/pkg/expr"
)

// Wildcard is the argument-type slot "⊤" meaning "any type". It
// subsumes every type, including itself.
const Wildcard = "⊤"

// Unknown is the sentinel TypeOf returns when a head is not registered
// in the signature. It is never a legal type name to register.
const Unknown = ""

// LiteralSig describes one signature entry. For a value literal (arity
// 0), ArgTypes is empty and ReturnType is the literal's own type (e.g.
// "Nat" for 0, "Bool" for true). For a function literal of arity k,
// ReturnType is its return type and ArgTypes has exactly k entries, any
// of which may be Wildcard.
type LiteralSig struct {
	ReturnType string
	ArgTypes   []string
}

// Arity reports the declared arity of the literal.
func (l LiteralSig) Arity() int { return len(l.ArgTypes) }

// Constructor describes one constructor schema of a type, as recorded
// in the type-constructor table (§3.2). A nullary constructor (e.g. 0)
// has an empty ArgTypes; a schema constructor (e.g. (s, Nat)) lists the
// type of each argument, any of which may equal the constructed type
// itself (the recursive case induction cares about).
type Constructor struct {
	Symbol   string
	ArgTypes []string
}

// IsNullary reports whether this constructor takes no arguments.
func (c Constructor) IsNullary() bool { return len(c.ArgTypes) == 0 }

// Signature is a process-wide (or per-ProofContext) registry of literal
// types and type constructors. It is built once by the environment
// loader (pkg/env) and treated as read-only afterward by every other
// component, per spec.md §5's "mutated only at startup" invariant.
type Signature struct {
	literals     map[string]LiteralSig
	constructors map[string][]Constructor
}

// New builds a Signature from explicit literal and constructor tables.
// The maps are copied; later mutation of the arguments does not affect
// the returned Signature.
func New(literals map[string]LiteralSig, constructors map[string][]Constructor) *Signature {
	s := &Signature{
		literals:     make(map[string]LiteralSig, len(literals)),
		constructors: make(map[string][]Constructor, len(constructors)),
	}
	for k, v := range literals {
		s.literals[k] = v
	}
	for k, v := range constructors {
		cp := make([]Constructor, len(v))
		copy(cp, v)
		s.constructors[k] = cp
	}
	return s
}

// LiteralSig returns the registered descriptor for symbol, if any.
func (s *Signature) LiteralSig(symbol string) (LiteralSig, bool) {
	l, ok := s.literals[symbol]
	return l, ok
}

// Arity returns the declared arity of a registered function literal, or
// -1 if symbol is unregistered.
func (s *Signature) Arity(symbol string) int {
	if l, ok := s.literals[symbol]; ok {
		return l.Arity()
	}
	return -1
}

// TypeOf returns the type of e: for a literal, its declared type; for
// an application, the return type of its head; failure (Unknown, false)
// if the head is not registered. TypeOf does not resolve a bare
// variable's context-dependent type — use Variables, or the matcher's
// own per-call binding, for that (spec.md §3.2 scopes a variable's type
// to "the current matching context").
func (s *Signature) TypeOf(e expr.Expr) (string, bool) {
	var symbol string
	switch e.Kind() {
	case expr.KindLiteral:
		symbol = e.Name()
	case expr.KindApp:
		symbol = e.Head()
	default: // KindVariable
		return Unknown, false
	}
	l, ok := s.literals[symbol]
	if !ok {
		return Unknown, false
	}
	return l.ReturnType, true
}

// Subsumes reports whether t1 subsumes t2: t1 is the wildcard, or t1
// equals t2.
func Subsumes(t1, t2 string) bool {
	return t1 == Wildcard || t1 == t2
}

// Predicates enumerates, in a stable (symbol-sorted) order, every
// registered literal whose return type is "Bool".
func (s *Signature) Predicates() []string {
	var out []string
	for symbol, l := range s.literals {
		if l.ReturnType == "Bool" {
			out = append(out, symbol)
		}
	}
	sort.Strings(out)
	return out
}

// IsPredicateHead reports whether symbol is registered with return type
// "Bool".
func (s *Signature) IsPredicateHead(symbol string) bool {
	l, ok := s.literals[symbol]
	return ok && l.ReturnType == "Bool"
}

// ConstructorsOf returns the ordered constructor schemas of typ, or
// (nil, false) if typ has no registered constructors (in which case
// induction on a variable of that type is impossible, per spec.md
// §4.4).
func (s *Signature) ConstructorsOf(typ string) ([]Constructor, bool) {
	c, ok := s.constructors[typ]
	return c, ok
}

// Validate checks the structural well-formedness invariants spec.md §3.3
// asks every rule to satisfy at the signature level: every constructor's
// argument types, and every literal's non-wildcard argument types, must
// themselves be registered types (i.e. either appear as some literal's
// ReturnType, some constructor table key, or be the type itself for a
// constructor's recursive case). Since every literal's ReturnType counts
// as registered, a return type is never reported on its own. It returns
// every problem found, not just the first, so a broken static
// configuration can be fixed in one pass.
func (s *Signature) Validate() []error {
	var errs []error
	known := s.knownTypes()
	for typ, ctors := range s.constructors {
		for _, c := range ctors {
			for _, at := range c.ArgTypes {
				if at == typ {
					continue // recursive argument, always well-formed
				}
				if !known[at] {
					errs = append(errs, fmt.Errorf("constructor %s of type %s references unknown type %q", c.Symbol, typ, at))
				}
			}
		}
	}
	for symbol, l := range s.literals {
		if !known[l.ReturnType] {
			errs = append(errs, fmt.Errorf("literal %s has unknown return type %q", symbol, l.ReturnType))
		}
		for i, at := range l.ArgTypes {
			if at != Wildcard && !known[at] {
				errs = append(errs, fmt.Errorf("literal %s argument %d has unknown type %q", symbol, i, at))
			}
		}
	}
	return errs
}

func (s *Signature) knownTypes() map[string]bool {
	known := map[string]bool{}
	for _, l := range s.literals {
		known[l.ReturnType] = true
	}
	for typ := range s.constructors {
		known[typ] = true
	}
	return known
}
