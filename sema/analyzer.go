/*
File    : sol25/sema/analyzer.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

/*
Package sema implements the post-parse semantic analysis of SOL25
programs. It validates the class symbol table the parser built:

 1. every parent class resolves to a user class or a built-in
 2. the inheritance graph is acyclic (built-ins terminate the walk)
 3. per method: parameters are unique, parameters are never assigned,
    every used variable is defined before use, and selectors sent to
    known receivers exist in the built-in method catalogs
 4. the program has an entry point: class Main with a run method of
    arity 0

The checks run in exactly this order, class by class in source order,
and the first violation aborts the analysis with a *status.Error
carrying the exit code.
*/
package sema

import (
	"github.com/akashmaji946/sol25/parser"
	"github.com/akashmaji946/sol25/status"
)

// Analyzer validates a parsed program's symbol table. It holds no
// state beyond the table; Validate may be called once per table.
type Analyzer struct {
	Symbols *parser.SymbolTable
}

// NewAnalyzer creates an analyzer over the given symbol table.
func NewAnalyzer(symbols *parser.SymbolTable) *Analyzer {
	return &Analyzer{Symbols: symbols}
}

// Validate runs all semantic checks and returns nil on success or the
// first violation's *status.Error.
func (a *Analyzer) Validate() error {
	// 1. Every parent must be a user class or a built-in
	for _, name := range a.Symbols.Order {
		parentName := a.Symbols.Classes[name].Parent
		if !a.Symbols.Has(parentName) && !BUILTIN_CLASSES[parentName] {
			return status.Newf(status.ERR_UNDEFINED,
				"class %s inherits from undefined class %s", name, parentName)
		}
	}

	// 2. The inheritance graph must be acyclic
	if err := a.checkInheritanceCycles(); err != nil {
		return err
	}

	// 3. Per-method analysis, in source order
	for _, className := range a.Symbols.Order {
		info := a.Symbols.Classes[className]
		for _, methodName := range info.MethodOrder {
			if err := a.checkMethod(className, methodName, info.Methods[methodName]); err != nil {
				return err
			}
		}
	}

	// 4. The entry point must exist
	if !a.Symbols.HasMain || !a.Symbols.HasMainRun {
		return status.New(status.ERR_MISSING_MAIN,
			"missing class Main or its parameterless run method")
	}

	return nil
}

// checkInheritanceCycles walks the parent chain of every class. The
// walk stops at a built-in or an unknown name (reported elsewhere);
// revisiting a class already on the path is a cycle.
func (a *Analyzer) checkInheritanceCycles() error {
	for _, name := range a.Symbols.Order {
		visited := make(map[string]bool)
		current := name

		for !visited[current] {
			if BUILTIN_CLASSES[current] {
				break
			}
			info, ok := a.Symbols.Classes[current]
			if !ok {
				break
			}
			visited[current] = true
			current = info.Parent
		}

		if visited[current] {
			return status.Newf(status.ERR_OTHER,
				"inheritance cycle through class %s", current)
		}
	}
	return nil
}

// checkMethod validates one method body: parameter uniqueness,
// parameter immutability, and variable/selector resolution statement
// by statement.
func (a *Analyzer) checkMethod(className, methodName string, method *parser.MethodInfo) error {
	defined := make(map[string]bool)
	for _, name := range PREDEFINED_VARIABLES {
		defined[name] = true
	}

	params := make(map[string]bool)
	for _, param := range method.Parameters {
		if params[param.Name] {
			return status.Newf(status.ERR_OTHER,
				"duplicate parameter %s in %s.%s", param.Name, className, methodName)
		}
		params[param.Name] = true
		defined[param.Name] = true
	}

	for _, stmt := range method.Statements {
		// Parameters are immutable
		if params[stmt.Var] {
			return status.Newf(status.ERR_COLLISION,
				"assignment to parameter %s in %s.%s", stmt.Var, className, methodName)
		}

		if err := a.checkExpr(stmt.Expr, defined); err != nil {
			return err
		}

		// The target is defined only for the statements that follow
		defined[stmt.Var] = true
	}

	return nil
}

// checkExpr walks an expression and validates variable references,
// class references, and selectors sent to receivers whose class is
// known. Block literals are opaque at this level: their bodies run in
// their own scope at call time.
func (a *Analyzer) checkExpr(expr parser.ExpressionNode, defined map[string]bool) error {
	switch node := expr.(type) {
	case *parser.VarNode:
		// Only lowercase-initial names are variable references
		if node.Name[0] >= 'a' && node.Name[0] <= 'z' && !defined[node.Name] {
			return status.Newf(status.ERR_UNDEFINED, "undefined variable %s", node.Name)
		}

	case *parser.LiteralNode:
		if node.Class == "class" && !a.Symbols.Has(node.Value) && !BUILTIN_CLASSES[node.Value] {
			return status.Newf(status.ERR_UNDEFINED, "undefined class %s", node.Value)
		}

	case *parser.SendNode:
		if err := a.checkExpr(node.Receiver, defined); err != nil {
			return err
		}
		if err := a.checkSelector(node); err != nil {
			return err
		}
		for _, arg := range node.Arguments {
			if err := a.checkExpr(arg, defined); err != nil {
				return err
			}
		}
	}

	return nil
}

// checkSelector resolves the selector of a send against the built-in
// catalogs when the receiver's class is known:
//
//   - class-literal receiver: class-side catalog
//   - send receiver: instance-side catalog, when the inner send's
//     result class can be inferred
//   - concrete literal receiver: instance-side catalog of its class
//   - variable receivers (self and super included) are not checked
func (a *Analyzer) checkSelector(send *parser.SendNode) error {
	switch receiver := send.Receiver.(type) {
	case *parser.LiteralNode:
		if receiver.Class == "class" {
			if !a.validClassMethod(receiver.Value, send.Selector) {
				return status.Newf(status.ERR_UNDEFINED,
					"class %s does not understand %s", receiver.Value, send.Selector)
			}
		} else if !validInstanceMethod(receiver.Class, send.Selector) {
			return status.Newf(status.ERR_UNDEFINED,
				"%s does not understand %s", receiver.Class, send.Selector)
		}

	case *parser.SendNode:
		if result := inferResultClass(receiver); result != "" {
			if !validInstanceMethod(result, send.Selector) {
				return status.Newf(status.ERR_UNDEFINED,
					"%s does not understand %s", result, send.Selector)
			}
		}
	}

	return nil
}

// validClassMethod reports whether the class-side selector exists for
// the given class: new and from: universally, read on String and its
// descendants.
func (a *Analyzer) validClassMethod(className, selector string) bool {
	if UNIVERSAL_CLASS_SELECTORS[selector] {
		return true
	}
	if selector == "read" {
		return a.descendsFrom(className, "String")
	}
	return false
}

// validInstanceMethod reports whether the instance-side selector
// exists for the given class.
func validInstanceMethod(className, selector string) bool {
	if UNIVERSAL_INSTANCE_SELECTORS[selector] {
		return true
	}
	return INSTANCE_SELECTORS[className][selector]
}

// descendsFrom reports whether className is ancestor or inherits from
// it through user-defined classes.
func (a *Analyzer) descendsFrom(className, ancestor string) bool {
	current := className
	for {
		if current == ancestor {
			return true
		}
		info, ok := a.Symbols.Classes[current]
		if !ok {
			return false
		}
		current = info.Parent
	}
}

// inferResultClass infers the class of a send's result for the narrow
// cases needed to validate chained sends:
//
//	Integer from: ...  ->  Integer
//	String from: ...   ->  String
//	String read        ->  String
//
// Anything else is unknown and returns "" (no check performed).
func inferResultClass(send *parser.SendNode) string {
	receiver, ok := send.Receiver.(*parser.LiteralNode)
	if !ok || receiver.Class != "class" {
		return ""
	}

	switch receiver.Value {
	case "Integer":
		if send.Selector == "from:" {
			return "Integer"
		}
	case "String":
		if send.Selector == "from:" || send.Selector == "read" {
			return "String"
		}
	}
	return ""
}
