// Package expr defines the term representation the prover searches over:
// literals, universally quantified variables, and function applications.
//
// Expressions are immutable once built and compare by deep structural
// equality. There is no empty expression, and applications always carry
// a literal head — a variable can never be applied to arguments.
package expr

import "strings"

// Kind distinguishes the three expression shapes.
type Kind int

const (
	// KindLiteral marks an opaque signature atom such as true, 0 or s.
	KindLiteral Kind = iota
	// KindVariable marks a universally quantified placeholder.
	KindVariable
	// KindApp marks a function application (head, arg1, ..., argk).
	KindApp
)

// Expr is an immutable, structurally comparable term. Build one with
// Lit, Var or App; inspect it with Kind, Head and Args.
type Expr struct {
	kind Kind
	name string  // literal symbol or variable name
	head string  // application head, set only for KindApp (name stays empty)
	args []Expr  // application arguments, nil otherwise
}

// Lit constructs a literal atom from a signature symbol.
func Lit(symbol string) Expr {
	return Expr{kind: KindLiteral, name: symbol}
}

// Var constructs a universally quantified variable. By convention, and
// per IsVariableName, a variable's name begins with an uppercase letter.
func Var(name string) Expr {
	return Expr{kind: KindVariable, name: name}
}

// App constructs a function application. head must be a literal symbol,
// never a variable name; args may be empty for a nullary head (in which
// case callers should usually prefer Lit, but App(h) is still well
// formed and distinct in representation from Lit(h) — arity is decided
// by the signature, not by this constructor).
func App(head string, args ...Expr) Expr {
	cp := make([]Expr, len(args))
	copy(cp, args)
	return Expr{kind: KindApp, head: head, args: cp}
}

// IsVariableName reports whether name would be treated as a variable
// name by the term model: it must begin with an uppercase letter, and
// callers are responsible for additionally checking name is not a
// registered literal or type name (this function knows nothing about
// any particular signature).
func IsVariableName(name string) bool {
	if name == "" {
		return false
	}
	r := name[0]
	return r >= 'A' && r <= 'Z'
}

// Kind reports which of the three shapes e is.
func (e Expr) Kind() Kind { return e.kind }

// IsLiteral reports whether e is a literal atom.
func (e Expr) IsLiteral() bool { return e.kind == KindLiteral }

// IsVariable reports whether e is a variable.
func (e Expr) IsVariable() bool { return e.kind == KindVariable }

// IsApp reports whether e is a function application.
func (e Expr) IsApp() bool { return e.kind == KindApp }

// Name returns the literal symbol or variable name. It panics if e is an
// application; use Head for that case.
func (e Expr) Name() string {
	if e.kind == KindApp {
		panic("expr: Name called on an application, use Head")
	}
	return e.name
}

// Head returns the application head. It panics if e is not an
// application.
func (e Expr) Head() string {
	if e.kind != KindApp {
		panic("expr: Head called on a non-application")
	}
	return e.head
}

// Args returns the application's arguments in order. It returns nil for
// literals and variables. The returned slice must not be mutated.
func (e Expr) Args() []Expr {
	if e.kind != KindApp {
		return nil
	}
	return e.args
}

// Arity returns len(e.Args()).
func (e Expr) Arity() int {
	return len(e.args)
}

// Equal reports whether e and other are deeply, structurally identical.
func (e Expr) Equal(other Expr) bool {
	if e.kind != other.kind {
		return false
	}
	switch e.kind {
	case KindLiteral, KindVariable:
		return e.name == other.name
	default: // KindApp
		if e.head != other.head || len(e.args) != len(other.args) {
			return false
		}
		for i := range e.args {
			if !e.args[i].Equal(other.args[i]) {
				return false
			}
		}
		return true
	}
}

// String renders e in a debug-oriented S-expression form; it is not the
// surface syntax the parser/printer pair produces (see pkg/printer for
// that).
func (e Expr) String() string {
	switch e.kind {
	case KindLiteral, KindVariable:
		return e.name
	default:
		var b strings.Builder
		b.WriteByte('(')
		b.WriteString(e.head)
		for _, a := range e.args {
			b.WriteByte(' ')
			b.WriteString(a.String())
		}
		b.WriteByte(')')
		return b.String()
	}
}

// Key returns a value suitable for use as a Go map key representing e,
// since Expr itself contains a slice and is not comparable with ==.
// Equal expressions always produce equal keys and vice versa.
func (e Expr) Key() string {
	// String() already establishes a canonical, injective rendering for
	// any well-formed expression (literal/variable names never contain
	// the '(' ')' ' ' delimiters used by the application case).
	return e.String()
}
