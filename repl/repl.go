/*
File    : sol25/repl/repl.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)

Package repl implements the interactive mode of the SOL25 parser.
It provides an environment where users can:
- Enter a SOL25 program line by line, ended by a blank line
- See the XML representation of the program immediately
- See diagnostics without losing the session
- Navigate input history using arrow keys

The mode uses the readline library for line editing and runs the same
lexer-parser-analyzer-serializer pipeline as filter mode, except that a
violation prints its diagnostic and returns to the prompt instead of
terminating the process.
*/
package repl

import (
	"io"
	"regexp"
	"strings"

	"github.com/akashmaji946/sol25/lexer"
	"github.com/akashmaji946/sol25/parser"
	"github.com/akashmaji946/sol25/sema"
	"github.com/akashmaji946/sol25/xmlgen"
	"github.com/chzyer/readline"
	"github.com/fatih/color"
)

// Color definitions for interactive output:
// - blueColor: Decorative lines and separators
// - yellowColor: Version info
// - redColor: Error messages
// - greenColor: Banner
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// commentPattern captures the first double-quoted comment of the
// entered program for the description attribute.
var commentPattern = regexp.MustCompile(`"([^"]*)"`)

// Repl represents one interactive session's configuration.
type Repl struct {
	Banner  string // ASCII art banner displayed at startup
	Version string // Version string of the parser
	Author  string // Author contact information
	Line    string // Separator line for visual formatting
	License string // Software license information
	Prompt  string // Command prompt shown to the user
}

// NewRepl creates and initializes a new interactive session.
func NewRepl(banner string, version string, author string, line string, license string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | Lincense: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to SOL25!")
	cyanColor.Fprintf(writer, "%s\n", "Type a program and end it with a blank line to see its XML")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate input history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the interactive main loop. Lines accumulate into one
// program; a blank line submits it, runs the pipeline, and prints the
// XML document or the diagnostic. The loop continues until '.exit' or
// EOF (Ctrl+D).
func (r *Repl) Start(reader io.Reader, writer io.Writer) {

	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close() // Ensure readline is properly closed on exit

	var program strings.Builder

	for {
		line, err := rl.Readline()
		if err != nil {
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		trimmed := strings.Trim(line, " \n\t\r")

		if trimmed == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// A blank line submits the accumulated program
		if trimmed == "" {
			source := program.String()
			program.Reset()
			if strings.TrimSpace(source) != "" {
				r.process(writer, source)
			}
			continue
		}

		rl.SaveHistory(line)
		program.WriteString(line)
		program.WriteString("\n")
	}
}

// process runs the pipeline over one entered program. Diagnostics are
// printed in red and the session continues.
func (r *Repl) process(writer io.Writer, source string) {
	lex := lexer.NewLexer(source)
	tokens, err := lex.Tokenize()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	par := parser.NewParser(tokens)
	prog, err := par.Parse()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	analyzer := sema.NewAnalyzer(par.Symbols)
	if err := analyzer.Validate(); err != nil {
		redColor.Fprintf(writer, "%s\n", err)
		return
	}

	description := ""
	if match := commentPattern.FindStringSubmatch(source); match != nil {
		description = match[1]
	}

	generator := xmlgen.NewGenerator(description)
	io.WriteString(writer, generator.Generate(prog))
}
