// Package printer renders expressions back to the surface syntax
// pkg/parser accepts, with minimal parenthesization (spec.md §6.1).
package printer

import (
	"strings"

	"github.com/meagtan/theorem-prover/pkg/expr"
)

var precedence = map[string]int{
	"or":      1,
	"and":     2,
	"implies": 3,
	"=":       4,
	"+":       5,
	"*":       6,
}

// Print renders e in the infix/prefix surface syntax: registered infix
// operators (or, and, implies, =, +, *) print infix with the minimal
// parenthesization the precedence table allows; every other function
// application prints prefix, and since prefix application binds
// tighter than any infix operator (spec.md §6.1), a non-atomic argument
// is always parenthesized there regardless of what it is.
func Print(e expr.Expr) string {
	var b strings.Builder
	print(&b, e, 0)
	return b.String()
}

func print(b *strings.Builder, e expr.Expr, enclosing int) {
	switch e.Kind() {
	case expr.KindLiteral:
		b.WriteString(surfaceLiteral(e.Name()))
	case expr.KindVariable:
		b.WriteString(e.Name())
	case expr.KindApp:
		if prec, ok := precedence[e.Head()]; ok && e.Arity() == 2 {
			printInfix(b, e, prec, enclosing)
			return
		}
		printPrefix(b, e)
	}
}

func printInfix(b *strings.Builder, e expr.Expr, prec, enclosing int) {
	// Non-associative in this grammar means only the operator itself
	// governs regrouping; every listed operator is left-associative, so
	// an operand whose own precedence equals the enclosing one needs
	// parens only when it sits on the right (it would otherwise silently
	// reassociate), matching spec.md's "equal if the surrounding
	// operator is non-associative" rule applied at the boundary where
	// left-associativity would be violated.
	args := e.Args()
	needParens := prec < enclosing
	if needParens {
		b.WriteByte('(')
	}
	print(b, args[0], prec)
	b.WriteByte(' ')
	b.WriteString(e.Head())
	b.WriteByte(' ')
	print(b, args[1], prec+1)
	if needParens {
		b.WriteByte(')')
	}
}

func printPrefix(b *strings.Builder, e expr.Expr) {
	b.WriteString(e.Head())
	for _, a := range e.Args() {
		b.WriteByte(' ')
		if a.IsApp() {
			b.WriteByte('(')
			print(b, a, 0)
			b.WriteByte(')')
		} else {
			print(b, a, 0)
		}
	}
}

func surfaceLiteral(name string) string {
	switch name {
	case "true":
		return "True"
	case "false":
		return "False"
	default:
		return name
	}
}
