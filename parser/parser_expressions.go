/*
File    : sol25/parser/parser_expressions.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/sol25/lexer"
)

// parseBlock parses  Block := '[' (':' IDENTIFIER)* '|' Statement* ']'
func (par *Parser) parseBlock() *BlockNode {
	par.expect(lexer.LEFT_BRACKET)

	parameters := make([]*ParameterNode, 0)
	for par.currentToken().Type == lexer.COLON_DELIM {
		parameters = append(parameters, par.parseParameter())
	}

	par.expect(lexer.PIPE_DELIM)

	statements := make([]*AssignNode, 0)
	for par.currentToken().Type != lexer.RIGHT_BRACKET {
		statements = append(statements, par.parseStatement())
	}

	par.expect(lexer.RIGHT_BRACKET)

	return &BlockNode{
		Parameters: parameters,
		Statements: statements,
		Arity:      len(parameters),
	}
}

// parseParameter parses one block parameter  ':' IDENTIFIER  and
// enforces that the identifier starts directly after its colon, on the
// same line.
func (par *Parser) parseParameter() *ParameterNode {
	colon := par.expect(lexer.COLON_DELIM)

	ident := par.currentToken()
	if ident.Type != lexer.IDENTIFIER_ID {
		par.failSyntax("expected parameter name after colon")
	}
	if ident.Line != colon.Line || ident.Column != colon.Column+1 {
		par.failSyntax("whitespace between colon and parameter name")
	}

	par.advance() // Consume the identifier
	return &ParameterNode{Name: ident.Literal}
}

// parseStatement parses  Statement := IDENTIFIER ':=' Expr '.'
func (par *Parser) parseStatement() *AssignNode {
	varName := par.expect(lexer.IDENTIFIER_ID).Literal
	par.expect(lexer.ASSIGN_OP)
	expr := par.parseExpr()
	par.expect(lexer.DOT_DELIM)

	return &AssignNode{
		Var:  varName,
		Expr: expr,
	}
}

// parseExpr parses  Expr := ExprBase (UnaryTail | KeywordTail)?
//
// A following identifier is a unary send; a following selector part
// starts a keyword send. Anything else ends the expression.
func (par *Parser) parseExpr() ExpressionNode {
	base := par.parseExprBase()

	switch par.currentToken().Type {
	case lexer.IDENTIFIER_ID, lexer.SELECTOR_PART:
		return par.parseExprTail(base)
	}
	return base
}

// parseExprBase parses the primary expressions: literals, variables,
// class references, block literals, and parenthesized expressions.
func (par *Parser) parseExprBase() ExpressionNode {
	switch par.currentToken().Type {
	case lexer.INT_LIT:
		return &LiteralNode{Class: "Integer", Value: par.advance().Literal}

	case lexer.STRING_LIT:
		return &LiteralNode{Class: "String", Value: par.advance().Literal}

	case lexer.NIL_KEY:
		par.advance()
		return &LiteralNode{Class: "Nil", Value: "nil"}

	case lexer.TRUE_KEY:
		par.advance()
		return &LiteralNode{Class: "True", Value: "true"}

	case lexer.FALSE_KEY:
		par.advance()
		return &LiteralNode{Class: "False", Value: "false"}

	case lexer.SELF_KEY, lexer.SUPER_KEY, lexer.IDENTIFIER_ID:
		return &VarNode{Name: par.advance().Literal}

	case lexer.CLASS_ID:
		// Class reference: a literal of class "class"
		return &LiteralNode{Class: "class", Value: par.advance().Literal}

	case lexer.LEFT_BRACKET:
		return par.parseBlock()

	case lexer.LEFT_PAREN:
		par.advance()
		expr := par.parseExpr()
		par.expect(lexer.RIGHT_PAREN)
		return expr
	}

	par.failSyntax("expected expression")
	return nil // Unreachable; failSyntax panics
}

// parseExprTail parses the message send following a base expression.
//
// A unary send is a single identifier and is not chained further. A
// keyword send consumes one or more selector parts, each followed by a
// full expression argument; because the argument parse is itself
// right-greedy, a source like  a foo: x bar: y  nests as
// foo:(x bar: y) rather than producing a two-part selector here.
func (par *Parser) parseExprTail(receiver ExpressionNode) ExpressionNode {
	if par.currentToken().Type == lexer.IDENTIFIER_ID {
		return &SendNode{
			Selector:  par.advance().Literal,
			Receiver:  receiver,
			Arguments: make([]ExpressionNode, 0),
		}
	}

	parts := make([]string, 0, 2)
	arguments := make([]ExpressionNode, 0, 2)

	for par.currentToken().Type == lexer.SELECTOR_PART {
		parts = append(parts, par.advance().Literal)
		arguments = append(arguments, par.parseExpr())
	}

	return &SendNode{
		Selector:  strings.Join(parts, ""),
		Receiver:  receiver,
		Arguments: arguments,
	}
}
