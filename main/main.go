/*
File    : sol25/main/main.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package main is the entry point for the SOL25 parser.
It provides two modes of operation:
1. Filter Mode (default): read a SOL25 program from standard input and
   write its XML representation to standard output
2. Interactive Mode: when standard input is a terminal, a small REPL
   that parses entered programs and shows their XML or diagnostics

The parser uses a lexer-parser-analyzer-serializer pipeline and
terminates with a specific exit code on the first violation.
*/
package main

import (
	"errors"
	"fmt"
	"io"
	"os"
	"regexp"

	"github.com/akashmaji946/sol25/lexer"
	"github.com/akashmaji946/sol25/parser"
	"github.com/akashmaji946/sol25/repl"
	"github.com/akashmaji946/sol25/sema"
	"github.com/akashmaji946/sol25/status"
	"github.com/akashmaji946/sol25/xmlgen"
	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// VERSION represents the current version of the SOL25 parser
var VERSION = "v1.0.0"

// AUTHOR contains the contact information of the parser's author
var AUTHOR = "akashmaji(@iisc.ac.in)"

// LICENCE specifies the software license (MIT License)
var LICENCE = "MIT"

// PROMPT is the command prompt displayed in interactive mode
var PROMPT = "SOL25 >>> "

// BANNER is the ASCII art logo displayed when starting interactive mode
var BANNER = `
  ▄▄▄▄    ▄▄▄▄   ▄▄      ▄▄▄▄   ▄▄▄▄▄
 █▀   ▀  █▀  ▀█  ██     ▀  ▄█▀  ██▄
 ▀█▄▄▄   ██  ██  ██      ▄█▀    ▀▀▀█▄
     ▀█  ██  ██  ██     ▄█▀     ▄  ▄█
 ▀▄▄▄█▀  ▀█▄▄█▀  ██▄▄▄  █▄▄▄▄   ▀██▀
`

// LINE is a separator line used for visual formatting
var LINE = "----------------------------------------------------------------"

// Color definitions for diagnostics:
// - redColor: Error messages written to standard error
// - yellowColor: Highlighted usage lines
// - cyanColor: Informational messages
var (
	redColor    = color.New(color.FgRed)
	yellowColor = color.New(color.FgYellow)
	cyanColor   = color.New(color.FgCyan)
)

// commentPattern captures the first double-quoted comment of the raw
// source; its body becomes the description attribute of the XML root.
var commentPattern = regexp.MustCompile(`"([^"]*)"`)

// main is the entry point of the SOL25 parser.
//
// Usage:
//
//	sol25              - Read a program from stdin, write XML to stdout
//	sol25 --help       - Display help information
//
// The argument surface is deliberately strict: --help (or -h) must be
// the only argument, and any other argument is a parameter error.
func main() {
	if len(os.Args) > 1 {
		if hasHelpFlag() {
			if len(os.Args) > 2 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] --help cannot be combined with other parameters\n")
				os.Exit(status.ERR_PARAM)
			}
			showHelp()
			os.Exit(status.OK)
		}

		redColor.Fprintf(os.Stderr, "[USAGE ERROR] Invalid parameters. Use --help for usage.\n")
		os.Exit(status.ERR_PARAM)
	}

	// A terminal on stdin means a human without a program to pipe;
	// give them the interactive mode instead of a silent read-to-EOF
	if isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd()) {
		repler := repl.NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
		return
	}

	runStdin()
}

// hasHelpFlag reports whether --help or -h appears anywhere in the
// arguments.
func hasHelpFlag() bool {
	for _, arg := range os.Args[1:] {
		if arg == "--help" || arg == "-h" {
			return true
		}
	}
	return false
}

// showHelp displays the help information for the SOL25 parser
func showHelp() {
	cyanColor.Println("SOL25 Parser")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	yellowColor.Println("  sol25                     Read SOL25 code from stdin, write XML to stdout")
	yellowColor.Println("  sol25 --help              Display this help message")
	cyanColor.Println("")
	cyanColor.Println("EXIT CODES:")
	yellowColor.Println("  0   success")
	yellowColor.Println("  10  invalid parameters")
	yellowColor.Println("  11  input error        12  output error")
	yellowColor.Println("  21  lexical error      22  syntax error")
	yellowColor.Println("  31  missing Main/run   32  undefined class/variable/method")
	yellowColor.Println("  33  arity mismatch     34  assignment to parameter")
	yellowColor.Println("  35  other semantic error")
}

// runStdin reads the whole program from standard input, runs the
// pipeline, and writes the XML document to standard output.
func runStdin() {
	source, err := io.ReadAll(os.Stdin)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[INPUT ERROR] Could not read standard input: %v\n", err)
		os.Exit(status.ERR_INPUT_FILE)
	}

	document, cerr := compileSource(string(source))
	if cerr != nil {
		exitWith(cerr)
	}

	if _, err := fmt.Fprint(os.Stdout, document); err != nil {
		redColor.Fprintf(os.Stderr, "[OUTPUT ERROR] Could not write standard output: %v\n", err)
		os.Exit(status.ERR_OUTPUT_FILE)
	}
}

// compileSource runs the full pipeline over one source text and
// returns the XML document, or the first stage error.
func compileSource(source string) (string, error) {
	lex := lexer.NewLexer(source)
	tokens, err := lex.Tokenize()
	if err != nil {
		return "", err
	}

	par := parser.NewParser(tokens)
	program, err := par.Parse()
	if err != nil {
		return "", err
	}

	analyzer := sema.NewAnalyzer(par.Symbols)
	if err := analyzer.Validate(); err != nil {
		return "", err
	}

	generator := xmlgen.NewGenerator(extractDescription(source))
	return generator.Generate(program), nil
}

// extractDescription returns the body of the first double-quoted
// comment in the raw source, or "" when there is none.
func extractDescription(source string) string {
	if match := commentPattern.FindStringSubmatch(source); match != nil {
		return match[1]
	}
	return ""
}

// exitWith prints the diagnostic of a pipeline error and terminates
// with its exit code.
func exitWith(err error) {
	var serr *status.Error
	if errors.As(err, &serr) {
		redColor.Fprintf(os.Stderr, "%s\n", serr.Message)
		os.Exit(serr.Code)
	}
	redColor.Fprintf(os.Stderr, "%v\n", err)
	os.Exit(status.ERR_OTHER)
}
