// Package parser implements the surface-syntax parser of spec.md §6.1:
// a tokenizer built on participle's stateful lexer, feeding a
// hand-written shunting-yard parser that turns infix/prefix expression
// text into a pkg/expr tree, checked against a pkg/signature.Signature
// along the way.
package parser

import (
	"fmt"

	"github.com/meagtan/theorem-prover/pkg/expr"
	"github.com/meagtan/theorem-prover/pkg/signature"
)

// SyntaxError reports a parse failure: a malformed token stream, an
// unmatched parenthesis, or a function head applied to the wrong number
// of operands (spec.md §7 kind 1). It never wraps a panic — Parse
// always returns one of these rather than letting the parser crash on
// malformed input.
type SyntaxError struct {
	Message string
}

func (e *SyntaxError) Error() string { return "parse error: " + e.Message }

// infixPrecedence gives each surface infix operator its precedence,
// strictly increasing per spec.md §6.1's fixed order: or, and, implies,
// =, +, *. All are left-associative.
var infixPrecedence = map[string]int{
	"or":      1,
	"and":     2,
	"implies": 3,
	"=":       4,
	"+":       5,
	"*":       6,
}

func isInfixToken(text string) bool {
	_, ok := infixPrecedence[text]
	return ok
}

// Parse parses src as a single expression against sig, which supplies
// every registered literal's arity (used to decide how many operands a
// prefix function head consumes) and is otherwise not consulted for
// type-checking — argument types are only checked later, by pkg/match
// while matching. pkg/env's loader does not type-check the axioms it
// parses.
func Parse(sig *signature.Signature, src string) (expr.Expr, error) {
	toks, err := tokenize(src)
	if err != nil {
		return expr.Expr{}, err
	}
	if len(toks) == 0 {
		return expr.Expr{}, &SyntaxError{Message: "empty expression"}
	}
	p := &parser{sig: sig, toks: toks}
	result, err := p.parseExpr()
	if err != nil {
		return expr.Expr{}, err
	}
	if p.pos != len(p.toks) {
		return expr.Expr{}, &SyntaxError{Message: fmt.Sprintf("unexpected trailing token %q", p.toks[p.pos].text)}
	}
	return result, nil
}

type parser struct {
	sig  *signature.Signature
	toks []token
	pos  int
}

func (p *parser) peek() (token, bool) {
	if p.pos >= len(p.toks) {
		return token{}, false
	}
	return p.toks[p.pos], true
}

func (p *parser) next() (token, bool) {
	t, ok := p.peek()
	if ok {
		p.pos++
	}
	return t, ok
}

// parseExpr runs the classical shunting-yard over a flat sequence of
// primaries separated by the fixed infix operators, each primary
// already fully resolved (parenthesized sub-expressions and prefix
// function applications bind tighter than any infix operator, per
// spec.md §6.1's "function heads are treated as prefix operators of
// highest precedence").
func (p *parser) parseExpr() (expr.Expr, error) {
	var values []expr.Expr
	var ops []string

	popOp := func() error {
		if len(values) < 2 || len(ops) == 0 {
			return &SyntaxError{Message: "malformed infix expression"}
		}
		op := ops[len(ops)-1]
		ops = ops[:len(ops)-1]
		rhs := values[len(values)-1]
		lhs := values[len(values)-2]
		values = values[:len(values)-2]
		values = append(values, expr.App(op, lhs, rhs))
		return nil
	}

	first, err := p.parsePrimary()
	if err != nil {
		return expr.Expr{}, err
	}
	values = append(values, first)

	for {
		tok, ok := p.peek()
		if !ok || !isInfixToken(tok.text) {
			break
		}
		p.pos++
		prec := infixPrecedence[tok.text]
		for len(ops) > 0 && infixPrecedence[ops[len(ops)-1]] >= prec {
			if err := popOp(); err != nil {
				return expr.Expr{}, err
			}
		}
		ops = append(ops, tok.text)

		rhs, err := p.parsePrimary()
		if err != nil {
			return expr.Expr{}, err
		}
		values = append(values, rhs)
	}

	for len(ops) > 0 {
		if err := popOp(); err != nil {
			return expr.Expr{}, err
		}
	}
	if len(values) != 1 {
		return expr.Expr{}, &SyntaxError{Message: "malformed expression"}
	}
	return values[0], nil
}

// parsePrimary parses one atom, one parenthesized sub-expression, or
// one prefix function application consuming exactly arity(head)
// further primaries.
func (p *parser) parsePrimary() (expr.Expr, error) {
	tok, ok := p.next()
	if !ok {
		return expr.Expr{}, &SyntaxError{Message: "unexpected end of input"}
	}

	if tok.kind == "Punct" && tok.text == "(" {
		inner, err := p.parseExpr()
		if err != nil {
			return expr.Expr{}, err
		}
		closing, ok := p.next()
		if !ok || closing.text != ")" {
			return expr.Expr{}, &SyntaxError{Message: "unmatched parenthesis"}
		}
		return inner, nil
	}

	if tok.kind != "Ident" && tok.kind != "Number" {
		return expr.Expr{}, &SyntaxError{Message: fmt.Sprintf("unexpected token %q", tok.text)}
	}
	if tok.kind == "Ident" && isInfixToken(tok.text) {
		return expr.Expr{}, &SyntaxError{Message: fmt.Sprintf("unexpected operator %q", tok.text)}
	}

	switch tok.text {
	case "True":
		return expr.Lit("true"), nil
	case "False":
		return expr.Lit("false"), nil
	}

	if lsig, ok := p.sig.LiteralSig(tok.text); ok {
		if lsig.Arity() == 0 {
			return expr.Lit(tok.text), nil
		}
		args := make([]expr.Expr, lsig.Arity())
		for i := range args {
			arg, err := p.parsePrimary()
			if err != nil {
				if se, ok := err.(*SyntaxError); ok {
					return expr.Expr{}, &SyntaxError{Message: fmt.Sprintf("argument %d of %s: %s", i, tok.text, se.Message)}
				}
				return expr.Expr{}, err
			}
			args[i] = arg
		}
		return expr.App(tok.text, args...), nil
	}

	if tok.kind == "Ident" && expr.IsVariableName(tok.text) {
		return expr.Var(tok.text), nil
	}
	return expr.Expr{}, &SyntaxError{Message: fmt.Sprintf("unknown literal %q", tok.text)}
}
