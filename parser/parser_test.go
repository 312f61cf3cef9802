/*
File    : sol25/parser/parser_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/sol25/lexer"
	"github.com/akashmaji946/sol25/status"
)

// parseSource runs lexer and parser over one source text
func parseSource(t *testing.T, src string) (*ProgramNode, *Parser, error) {
	t.Helper()
	lex := lexer.NewLexer(src)
	tokens, err := lex.Tokenize()
	assert.NoError(t, err)

	par := NewParser(tokens)
	program, err := par.Parse()
	return program, par, err
}

// codeOf extracts the exit code of a pipeline error
func codeOf(t *testing.T, err error) int {
	t.Helper()
	var serr *status.Error
	assert.True(t, errors.As(err, &serr), "error: %v", err)
	return serr.Code
}

func TestParser_Parse_MinimalProgram(t *testing.T) {

	src := `class Main : Object { run [|]}`
	program, par, err := parseSource(t, src)
	assert.NoError(t, err)
	assert.NotNil(t, program)

	// must: program has 1 class
	assert.Equal(t, 1, len(program.Classes))

	class := program.Classes[0]
	assert.Equal(t, "Main", class.Name)
	assert.Equal(t, "Object", class.Parent)
	assert.Equal(t, 1, len(class.Methods))

	method := class.Methods[0]
	assert.Equal(t, "run", method.Name)
	assert.Equal(t, "run", method.Selector)
	assert.Equal(t, 0, method.Arity)
	assert.Equal(t, 0, method.Block.Arity)
	assert.Equal(t, 0, len(method.Block.Statements))

	// the symbol table saw the entry point
	assert.True(t, par.Symbols.HasMain)
	assert.True(t, par.Symbols.HasMainRun)
}

func TestParser_Parse_KeywordMethodSelector(t *testing.T) {

	src := `class Main : Object {
		run [|]
		foo:bar: [:a :b | ]
	}`
	program, par, err := parseSource(t, src)
	assert.NoError(t, err)

	method := program.Classes[0].Methods[1]
	assert.Equal(t, "foobar", method.Name)
	assert.Equal(t, "foo:bar:", method.Selector)
	assert.Equal(t, 2, method.Arity)

	// parameters in source order
	assert.Equal(t, 2, len(method.Block.Parameters))
	assert.Equal(t, "a", method.Block.Parameters[0].Name)
	assert.Equal(t, "b", method.Block.Parameters[1].Name)

	// the symbol table keys methods by the colon-stripped name
	info := par.Symbols.Classes["Main"]
	assert.Equal(t, "foo:bar:", info.Methods["foobar"].Selector)
	assert.Equal(t, []string{"run", "foobar"}, info.MethodOrder)
}

// TestParser_Parse_SelectorRoundTrip checks that concatenating the
// parsed selector parts reproduces the original selector string
func TestParser_Parse_SelectorRoundTrip(t *testing.T) {
	src := `class Main : Object {
		run [|]
		between:and: [:lo :hi | ]
		value:value:value: [:a :b :c | ]
	}`
	program, _, err := parseSource(t, src)
	assert.NoError(t, err)

	methods := program.Classes[0].Methods
	assert.Equal(t, "between:and:", methods[1].Selector)
	assert.Equal(t, 2, methods[1].Arity)
	assert.Equal(t, "value:value:value:", methods[2].Selector)
	assert.Equal(t, 3, methods[2].Arity)
}

func TestParser_Parse_Statements(t *testing.T) {

	src := `class Main : Object { run [|
		x := 42 .
		s := 'hi' .
		n := nil .
		y := x plus: 1 .
	]}`
	program, _, err := parseSource(t, src)
	assert.NoError(t, err)

	stmts := program.Classes[0].Methods[0].Block.Statements
	assert.Equal(t, 4, len(stmts))

	// x := 42 .
	assert.Equal(t, "x", stmts[0].Var)
	lit, can := stmts[0].Expr.(*LiteralNode)
	assert.True(t, can)
	assert.Equal(t, "Integer", lit.Class)
	assert.Equal(t, "42", lit.Value)

	// s := 'hi' .
	lit, can = stmts[1].Expr.(*LiteralNode)
	assert.True(t, can)
	assert.Equal(t, "String", lit.Class)
	assert.Equal(t, "hi", lit.Value)

	// n := nil .
	lit, can = stmts[2].Expr.(*LiteralNode)
	assert.True(t, can)
	assert.Equal(t, "Nil", lit.Class)
	assert.Equal(t, "nil", lit.Value)

	// y := x plus: 1 .
	send, can := stmts[3].Expr.(*SendNode)
	assert.True(t, can)
	assert.Equal(t, "plus:", send.Selector)
	receiver, can := send.Receiver.(*VarNode)
	assert.True(t, can)
	assert.Equal(t, "x", receiver.Name)
	assert.Equal(t, 1, len(send.Arguments))
}

func TestParser_Parse_UnarySend(t *testing.T) {

	src := `class Main : Object { run [| x := 'abc' length . ]}`
	program, _, err := parseSource(t, src)
	assert.NoError(t, err)

	send, can := program.Classes[0].Methods[0].Block.Statements[0].Expr.(*SendNode)
	assert.True(t, can)
	assert.Equal(t, "length", send.Selector)
	assert.Equal(t, 0, len(send.Arguments))
}

// TestParser_Parse_KeywordTailNests checks the right-greedy argument
// parse: a second selector part binds to the argument, not the outer
// send
func TestParser_Parse_KeywordTailNests(t *testing.T) {

	src := `class Main : Object { run [|
		x := true ifTrue: [|] ifFalse: [|] .
	]}`
	program, _, err := parseSource(t, src)
	assert.NoError(t, err)

	outer, can := program.Classes[0].Methods[0].Block.Statements[0].Expr.(*SendNode)
	assert.True(t, can)
	assert.Equal(t, "ifTrue:", outer.Selector)
	assert.Equal(t, 1, len(outer.Arguments))

	inner, can := outer.Arguments[0].(*SendNode)
	assert.True(t, can)
	assert.Equal(t, "ifFalse:", inner.Selector)
	assert.Equal(t, 1, len(inner.Arguments))

	_, can = inner.Receiver.(*BlockNode)
	assert.True(t, can)
	_, can = inner.Arguments[0].(*BlockNode)
	assert.True(t, can)
}

func TestParser_Parse_ParenthesizedReceiver(t *testing.T) {

	src := `class Main : Object { run [| x := (Integer from: 3) plus: 4 . ]}`
	program, _, err := parseSource(t, src)
	assert.NoError(t, err)

	outer, can := program.Classes[0].Methods[0].Block.Statements[0].Expr.(*SendNode)
	assert.True(t, can)
	assert.Equal(t, "plus:", outer.Selector)

	inner, can := outer.Receiver.(*SendNode)
	assert.True(t, can)
	assert.Equal(t, "from:", inner.Selector)

	classRef, can := inner.Receiver.(*LiteralNode)
	assert.True(t, can)
	assert.Equal(t, "class", classRef.Class)
	assert.Equal(t, "Integer", classRef.Value)
}

// represents a test case for a parse failure
type TestParseError struct {
	Src  string
	Code int
}

// TestParser_Parse_Errors tests the inline checks and grammar errors
func TestParser_Parse_Errors(t *testing.T) {

	tests := []TestParseError{
		// duplicate class name
		{Src: `class X : Object {} class X : Object {}`, Code: status.ERR_OTHER},
		// duplicate method selector within a class
		{Src: `class Main : Object { run [|] run [|]}`, Code: status.ERR_OTHER},
		// reserved words cannot name methods (reported as syntax)
		{Src: `class Main : Object { self [|]}`, Code: status.ERR_SYNTAX},
		{Src: `class Main : Object { class: [:x | ]}`, Code: status.ERR_SYNTAX},
		// selector parts and block parameters must agree
		{Src: `class Main : Object { foo:bar: [:a | ]}`, Code: status.ERR_ARITY},
		{Src: `class Main : Object { run [:a | ]}`, Code: status.ERR_ARITY},
		// whitespace between selector word and colon
		{Src: `class Main : Object { foo : [:x | ]}`, Code: status.ERR_SYNTAX},
		// whitespace between colon and parameter name
		{Src: `class Main : Object { foo: [: x | ]}`, Code: status.ERR_SYNTAX},
		// whitespace before a colon inside a keyword message
		{Src: `class Main : Object { run [| x := y foo : 1 . ]}`, Code: status.ERR_SYNTAX},
		// statements end with a dot
		{Src: `class Main : Object { run [| x := 1 ]}`, Code: status.ERR_SYNTAX},
		// block needs its pipe
		{Src: `class Main : Object { run []}`, Code: status.ERR_SYNTAX},
		// top level allows only class definitions
		{Src: `run [|]`, Code: status.ERR_SYNTAX},
		// parent name is a class identifier
		{Src: `class Main : object {}`, Code: status.ERR_SYNTAX},
	}

	for _, test := range tests {
		program, _, err := parseSource(t, test.Src)
		assert.Error(t, err, "src: %s", test.Src)
		assert.Nil(t, program, "src: %s", test.Src)
		assert.Equal(t, test.Code, codeOf(t, err), "src: %s", test.Src)
	}
}

// TestParser_Parse_SymbolTable tests the table handed to semantic
// analysis
func TestParser_Parse_SymbolTable(t *testing.T) {

	src := `class A : Object { helper [|]} class Main : A { run [|]}`
	_, par, err := parseSource(t, src)
	assert.NoError(t, err)

	assert.Equal(t, []string{"A", "Main"}, par.Symbols.Order)
	assert.Equal(t, "Object", par.Symbols.Classes["A"].Parent)
	assert.Equal(t, "A", par.Symbols.Classes["Main"].Parent)

	helper := par.Symbols.Classes["A"].Methods["helper"]
	assert.NotNil(t, helper)
	assert.Equal(t, 0, helper.Arity)
	assert.Equal(t, 0, len(helper.Parameters))
}

// TestParser_Parse_EmptyProgram tests that no classes parse cleanly;
// the missing entry point is the analyzer's concern
func TestParser_Parse_EmptyProgram(t *testing.T) {
	program, par, err := parseSource(t, "  \"just a comment\"  ")
	assert.NoError(t, err)
	assert.Equal(t, 0, len(program.Classes))
	assert.False(t, par.Symbols.HasMain)
}
