package parser

import "github.com/alecthomas/participle/v2/lexer"

// exprLexer tokenizes the surface syntax of spec.md §6.1: identifiers
// (literal symbols, variable names, and the or/and/implies keywords),
// digit-only numeric literals, the single-character infix operators
// = + *, parentheses, and whitespace. Ident excludes digits so a run
// like "s0" lexes as two tokens at the alphabetic/digit boundary
// rather than one, per §6.1's tokenization rule — letting a prefix
// function head bind to an adjacent digit literal with no separator.
// Built on participle's stateful regex-rule lexer (grounded on
// kanso-lang-kanso/grammar/lexer.go) rather than its struct-tag
// grammar parser — the grammar itself is driven by the hand-written
// shunting-yard in parser.go.
var exprLexer = lexer.MustStateful(lexer.Rules{
	"Root": {
		{Name: "Ident", Pattern: `[A-Za-z_]+`},
		{Name: "Number", Pattern: `[0-9]+`},
		{Name: "Punct", Pattern: `[=+*()]`},
		{Name: "Whitespace", Pattern: `[ \t\r\n]+`},
		{Name: "Other", Pattern: `.`},
	},
})

// token is one lexed unit with its source text, independent of
// participle's own Token type so the shunting-yard code in parser.go
// doesn't need to import the lexer package directly.
type token struct {
	kind string
	text string
}

// tokenize splits src into a sequence of non-whitespace tokens. It
// returns a *SyntaxError, never a bare error, so callers can type-assert
// for structured reporting.
func tokenize(src string) ([]token, error) {
	l, err := exprLexer.LexString("", src)
	if err != nil {
		return nil, &SyntaxError{Message: err.Error()}
	}
	symbols := exprLexer.Symbols()
	names := make(map[rune]string, len(symbols))
	for name, id := range symbols {
		names[id] = name
	}

	var tokens []token
	for {
		tok, err := l.Next()
		if err != nil {
			return nil, &SyntaxError{Message: err.Error()}
		}
		if tok.EOF() {
			break
		}
		name := names[tok.Type]
		if name == "Whitespace" {
			continue
		}
		if name == "Other" {
			return nil, &SyntaxError{Message: "unrecognized character " + tok.Value}
		}
		tokens = append(tokens, token{kind: name, text: tok.Value})
	}
	return tokens, nil
}
