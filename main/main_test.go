/*
File    : sol25/main/main_test.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package main

import (
	"errors"
	"os"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"

	"github.com/akashmaji946/sol25/status"
)

// osArgsForTest swaps os.Args and returns the previous value
func osArgsForTest(args []string) []string {
	old := os.Args
	os.Args = args
	return old
}

// exitCodeOf extracts the exit code a pipeline error would terminate
// the process with
func exitCodeOf(t *testing.T, err error) int {
	t.Helper()
	var serr *status.Error
	assert.True(t, errors.As(err, &serr), "error: %v", err)
	return serr.Code
}

// TestMain_CompileSource_Minimal exercises the full pipeline over the
// smallest accepted program
func TestMain_CompileSource_Minimal(t *testing.T) {

	document, err := compileSource(`class Main : Object { run [|]}`)
	assert.NoError(t, err)

	want := `<?xml version="1.0" ?>
<program language="SOL25">
  <class name="Main" parent="Object">
    <method selector="run">
      <block arity="0"/>
    </method>
  </class>
</program>
`
	if diff := cmp.Diff(want, document); diff != "" {
		t.Errorf("document mismatch (-want +got):\n%s", diff)
	}
}

// TestMain_CompileSource_LeadingComment checks that the first comment
// of the source becomes the description attribute
func TestMain_CompileSource_LeadingComment(t *testing.T) {

	src := `"greets the world" class Main : Object { run [| x := 'hi' print . ]}`
	document, err := compileSource(src)
	assert.NoError(t, err)

	assert.True(t, strings.HasPrefix(document,
		`<?xml version="1.0" ?>`+"\n"+`<program language="SOL25" description="greets the world">`))
}

// represents one end-to-end failure scenario
type TestPipelineExit struct {
	Src  string
	Code int
}

// TestMain_CompileSource_ExitCodes runs the pipeline over inputs that
// must terminate with each specific exit code
func TestMain_CompileSource_ExitCodes(t *testing.T) {

	tests := []TestPipelineExit{
		// lexical: unterminated string across a newline
		{Src: "class Main : Object { run [| x := 'oops\n' . ]}", Code: status.ERR_LEXICAL},
		// syntax: reserved word as method name
		{Src: `class Main : Object { class: [:x | ]}`, Code: status.ERR_SYNTAX},
		// syntax: whitespace between identifier and colon in a message
		{Src: `class Main : Object { run [| x := self foo : 1 . ]}`, Code: status.ERR_SYNTAX},
		// missing entry point: empty program
		{Src: ``, Code: status.ERR_MISSING_MAIN},
		// undefined parent fires before the missing entry point
		{Src: `class A : B {}`, Code: status.ERR_UNDEFINED},
		// undefined variable
		{Src: `class Main : Object { run [ | x := y . ]}`, Code: status.ERR_UNDEFINED},
		// arity: two selector parts, one parameter
		{Src: `class Main : Object { foo:bar: [:a | ]}`, Code: status.ERR_ARITY},
		// collision: assignment to a parameter
		{Src: `class Main : Object { run [|] foo: [:x | x := 1 . ]}`, Code: status.ERR_COLLISION},
		// other: two classes named X
		{Src: `class X : Object {} class X : Object {} class Main : Object { run [|]}`, Code: status.ERR_OTHER},
		// other: inheritance cycle
		{Src: `class A : B {} class B : A {} class Main : Object { run [|]}`, Code: status.ERR_OTHER},
	}

	for _, test := range tests {
		_, err := compileSource(test.Src)
		assert.Error(t, err, "src: %s", test.Src)
		assert.Equal(t, test.Code, exitCodeOf(t, err), "src: %s", test.Src)
	}
}

// TestMain_ExtractDescription tests the first-comment capture over the
// raw source text
func TestMain_ExtractDescription(t *testing.T) {

	// first comment wins
	assert.Equal(t, "one", extractDescription(`"one" class A : Object {} "two"`))
	// comments may span lines
	assert.Equal(t, "spans\nlines", extractDescription("\"spans\nlines\" class A : Object {}"))
	// no comment, no description
	assert.Equal(t, "", extractDescription(`class A : Object {}`))
	// an empty comment yields no description
	assert.Equal(t, "", extractDescription(`"" class A : Object {}`))
}

// TestMain_HelpFlag tests the argument scan used by the entry point
func TestMain_HelpFlag(t *testing.T) {
	// direct sanity checks over the help-detection helper are done by
	// swapping os.Args around hasHelpFlag's scan
	withArgs := func(args []string, want bool) {
		old := osArgsForTest(args)
		defer osArgsForTest(old)
		assert.Equal(t, want, hasHelpFlag())
	}

	withArgs([]string{"sol25", "--help"}, true)
	withArgs([]string{"sol25", "-h"}, true)
	withArgs([]string{"sol25", "extra", "--help"}, true)
	withArgs([]string{"sol25"}, false)
	withArgs([]string{"sol25", "input.sol"}, false)
}
