/*
File    : sol25/parser/parser.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package parser implements a recursive-descent parser for the SOL25
programming language.

The parser converts the token stream from the lexer into an Abstract
Syntax Tree (AST) and, as a side effect, populates a class symbol table
for the semantic analyzer. It handles:
  - Class definitions with single inheritance
  - Method definitions with unary and keyword selectors
  - Block literals with colon-marked parameters
  - Statements (assignments terminated by '.')
  - Expressions: literals, variables, blocks, parenthesized
    expressions, unary sends, and right-greedy keyword sends

A few semantic checks run inline during parsing because they need
parse-time context: class redefinition, method-selector redefinition
within a class, reserved words used as method names, and the agreement
between a method selector's arity and its block's parameter count.

The parser fails fast: the first violation aborts the parse with a
*status.Error carrying the exit code. Internally the recursive descent
unwinds through a panic bailout that the exported Parse method
recovers; no panic escapes the package.
*/
package parser

import (
	"github.com/akashmaji946/sol25/lexer"
	"github.com/akashmaji946/sol25/status"
)

// Parser represents the parser state. It owns the token slice produced
// by the lexer, a cursor into it, and the symbol table being built.
type Parser struct {
	Tokens   []lexer.Token // Full token stream, EOF-terminated
	Position int           // Index of the current token
	Symbols  *SymbolTable  // Class table built during parsing
}

// bailout carries a *status.Error up the recursive descent; it is
// created by fail() and caught only by Parse.
type bailout struct {
	err *status.Error
}

// NewParser creates a parser for the given token stream. The stream
// must be EOF-terminated, which lexer.Tokenize guarantees.
func NewParser(tokens []lexer.Token) *Parser {
	return &Parser{
		Tokens:  tokens,
		Symbols: NewSymbolTable(),
	}
}

// Parse converts the token stream into a ProgramNode and fills the
// symbol table.
//
// Returns:
//   - *ProgramNode: The parsed program, nil on failure
//   - error: A *status.Error with ERR_SYNTAX, ERR_OTHER, or ERR_ARITY
func (par *Parser) Parse() (program *ProgramNode, err error) {
	defer func() {
		if recovered := recover(); recovered != nil {
			if b, ok := recovered.(bailout); ok {
				program, err = nil, b.err
				return
			}
			panic(recovered)
		}
	}()

	program = par.parseProgram()
	return program, nil
}

// fail aborts the parse with the given exit code and message.
func (par *Parser) fail(code int, format string, a ...interface{}) {
	panic(bailout{err: status.Newf(code, format, a...)})
}

// failSyntax aborts the parse with a syntax error at the current token.
func (par *Parser) failSyntax(what string) {
	tok := par.currentToken()
	par.fail(status.ERR_SYNTAX, "[%d:%d] PARSER ERROR: %s, got %s",
		tok.Line, tok.Column, what, tok.Type)
}

// currentToken returns the token under the cursor without consuming it.
func (par *Parser) currentToken() lexer.Token {
	return par.Tokens[par.Position]
}

// peekToken returns the token after the current one. The EOF token is
// returned when there is nothing further.
func (par *Parser) peekToken() lexer.Token {
	if par.Position+1 >= len(par.Tokens) {
		return par.Tokens[len(par.Tokens)-1]
	}
	return par.Tokens[par.Position+1]
}

// advance consumes the current token and returns it.
func (par *Parser) advance() lexer.Token {
	tok := par.Tokens[par.Position]
	if par.Position < len(par.Tokens)-1 {
		par.Position++
	}
	return tok
}

// expect consumes and returns the current token if it has the expected
// type, and aborts with a syntax error otherwise.
func (par *Parser) expect(expected lexer.TokenType) lexer.Token {
	if par.currentToken().Type != expected {
		par.failSyntax("expected " + string(expected))
	}
	return par.advance()
}
