/*
File    : sol25/parser/parser_class.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"strings"

	"github.com/akashmaji946/sol25/lexer"
	"github.com/akashmaji946/sol25/status"
)

// reservedMethodNames are words that can never name a method. The
// violation is reported as a syntax error, not a semantic one.
var reservedMethodNames = map[string]bool{
	"self":  true,
	"super": true,
	"nil":   true,
	"true":  true,
	"false": true,
	"class": true,
}

// selectorInfo is the result of parsing a method selector header.
type selectorInfo struct {
	Name     string // Selector with colons stripped
	Selector string // Original colon-bearing selector
	Arity    int    // Number of colon-suffixed parts
}

// parseProgram parses  Program := Class*  and rejects a class name
// defined twice.
func (par *Parser) parseProgram() *ProgramNode {
	program := &ProgramNode{Classes: make([]*ClassNode, 0)}
	defined := make(map[string]bool)

	for par.currentToken().Type != lexer.EOF_TYPE {
		if par.currentToken().Type != lexer.CLASS_KEY {
			par.failSyntax("expected class definition")
		}
		class := par.parseClass()

		// Redefinition is checked after the body parsed, so a
		// malformed duplicate still reports its own error first
		if defined[class.Name] {
			par.fail(status.ERR_OTHER, "class %s is already defined", class.Name)
		}
		defined[class.Name] = true
		program.Classes = append(program.Classes, class)
	}

	return program
}

// parseClass parses  Class := 'class' CLASS_ID ':' CLASS_ID '{' Method* '}'
// and registers the class in the symbol table.
func (par *Parser) parseClass() *ClassNode {
	par.expect(lexer.CLASS_KEY)
	className := par.expect(lexer.CLASS_ID).Literal

	par.expect(lexer.COLON_DELIM)
	parentName := par.expect(lexer.CLASS_ID).Literal

	par.expect(lexer.LEFT_BRACE)

	methods := make([]*MethodNode, 0)
	selectors := make(map[string]bool) // Full selectors already defined in this class

	for par.currentToken().Type != lexer.RIGHT_BRACE {
		// Trial-parse the selector to detect a redefinition before
		// committing to the method, then rewind and parse for real
		mark := par.Position
		info := par.parseSelector()
		par.Position = mark

		if selectors[info.Selector] {
			par.fail(status.ERR_OTHER,
				"method %s is already defined in class %s", info.Selector, className)
		}

		method := par.parseMethod()
		selectors[method.Selector] = true
		methods = append(methods, method)
	}

	par.expect(lexer.RIGHT_BRACE)

	// Record the entry point when this is class Main
	if className == "Main" {
		par.Symbols.HasMain = true
		for _, method := range methods {
			if method.Name == "run" && method.Arity == 0 {
				par.Symbols.HasMainRun = true
				break
			}
		}
	}

	// Register the class and its methods for semantic analysis
	classInfo := par.Symbols.Define(className, parentName)
	for _, method := range methods {
		classInfo.AddMethod(method.Name, &MethodInfo{
			Selector:   method.Selector,
			Parameters: method.Block.Parameters,
			Statements: method.Block.Statements,
			Arity:      method.Arity,
		})
	}

	return &ClassNode{
		Name:    className,
		Parent:  parentName,
		Methods: methods,
	}
}

// parseMethod parses  Method := Selector Block  with the block
// directly following the selector, and checks the inline rules: a
// reserved word cannot name a method, and the selector's arity must
// match the block's parameter count.
func (par *Parser) parseMethod() *MethodNode {
	info := par.parseSelector()

	if par.currentToken().Type != lexer.LEFT_BRACKET {
		par.failSyntax("expected block after method selector")
	}
	if reservedMethodNames[info.Name] {
		par.failSyntax("reserved word " + info.Name + " used as method name")
	}

	block := par.parseBlock()

	if info.Arity != block.Arity {
		par.fail(status.ERR_ARITY,
			"method %s declares %d selector parts but its block has %d parameters",
			info.Selector, info.Arity, block.Arity)
	}

	return &MethodNode{
		Name:     info.Name,
		Selector: info.Selector,
		Arity:    info.Arity,
		Block:    block,
	}
}

// parseSelector parses a method selector header: either a single
// identifier-shaped word (arity 0) or a chain of selector parts
// (arity = number of parts). The header ends at the opening bracket of
// the method's block.
//
// The reserved pseudo-variables (self, super, nil, true, false) are
// accepted as a first part here so that parseMethod can reject them by
// name with a precise diagnostic.
func (par *Parser) parseSelector() selectorInfo {
	parts := make([]string, 0, 2)
	arity := 0

	switch par.currentToken().Type {
	case lexer.IDENTIFIER_ID, lexer.SELF_KEY, lexer.SUPER_KEY,
		lexer.NIL_KEY, lexer.TRUE_KEY, lexer.FALSE_KEY:
		word := par.advance()
		parts = append(parts, word.Literal)

		if par.currentToken().Type != lexer.COLON_DELIM {
			// Simple unary selector
			return selectorInfo{
				Name:     word.Literal,
				Selector: word.Literal,
				Arity:    0,
			}
		}

		// A colon token after a plain word means the two were
		// separated in the source: the lexer fuses adjacent ones into
		// a SELECTOR_PART. The start-position check keeps the rule
		// explicit.
		colon := par.currentToken()
		if colon.Line != word.Line || colon.Column != word.EndColumn() {
			par.failSyntax("whitespace between selector part and colon")
		}

		par.advance() // Consume the colon
		parts = append(parts, ":")
		arity++

	case lexer.SELECTOR_PART:
		parts = append(parts, par.advance().Literal)
		arity++

	default:
		par.failSyntax("expected method selector")
	}

	// Remaining parts of a chained selector
	for {
		if par.currentToken().Type == lexer.LEFT_BRACKET {
			break
		}

		if par.currentToken().Type == lexer.SELECTOR_PART {
			parts = append(parts, par.advance().Literal)
			arity++
			continue
		}

		// An identifier followed by a colon was separated by
		// whitespace in the source - reject it here
		if par.currentToken().Type == lexer.IDENTIFIER_ID &&
			par.peekToken().Type == lexer.COLON_DELIM {
			par.failSyntax("whitespace between selector part and colon")
		}

		break
	}

	selector := strings.Join(parts, "")
	return selectorInfo{
		Name:     strings.ReplaceAll(selector, ":", ""),
		Selector: selector,
		Arity:    arity,
	}
}
