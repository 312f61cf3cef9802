/*
File    : sol25/xmlgen/generator.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/

// Package xmlgen serializes a validated SOL25 AST into the
// pretty-printed XML representation consumed by the later interpreter
// stages. One element is emitted per AST node, except for the two
// chained keyword-message shapes that flatten into compound selectors.
package xmlgen

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/akashmaji946/sol25/parser"
)

const INDENT_SIZE = 2 // Number of spaces per indentation level

// attrEscaper rewrites the characters that may not appear raw inside a
// double-quoted XML attribute value. Everything else (tabs, preserved
// backslash escapes, ...) passes through verbatim.
var attrEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// Generator is a visitor that renders the AST into an XML document.
// It accumulates output in a buffer while tracking the indentation
// level, one level per nested element.
type Generator struct {
	Indent      int          // Current indentation level (in spaces)
	Buf         bytes.Buffer // Buffer to accumulate the document
	Description string       // Leading documentation comment, "" when absent

	order int // 1-indexed position of the child currently being visited
}

// NewGenerator creates a generator. A non-empty description is written
// as the description attribute of the root element.
func NewGenerator(description string) *Generator {
	return &Generator{Description: description}
}

// Generate renders the program and returns the complete document,
// including the XML declaration and a trailing newline.
func (g *Generator) Generate(program *parser.ProgramNode) string {
	g.Buf.Reset()
	g.Buf.WriteString("<?xml version=\"1.0\" ?>\n")
	program.Accept(g)
	return g.Buf.String()
}

// indent writes the current indentation to the buffer.
func (g *Generator) indent() {
	for i := 0; i < g.Indent; i++ {
		g.Buf.WriteString(" ")
	}
}

// openTag writes an indented opening tag with the given attributes and
// increases the indentation. Attributes are written in the order given
// as name, value pairs.
func (g *Generator) openTag(name string, attrs ...string) {
	g.indent()
	g.Buf.WriteString("<" + name)
	for i := 0; i+1 < len(attrs); i += 2 {
		g.Buf.WriteString(" " + attrs[i] + "=\"" + attrEscaper.Replace(attrs[i+1]) + "\"")
	}
	g.Buf.WriteString(">\n")
	g.Indent += INDENT_SIZE
}

// closeTag decreases the indentation and writes the closing tag.
func (g *Generator) closeTag(name string) {
	g.Indent -= INDENT_SIZE
	g.indent()
	g.Buf.WriteString("</" + name + ">\n")
}

// selfCloseTag writes an indented childless element.
func (g *Generator) selfCloseTag(name string, attrs ...string) {
	g.indent()
	g.Buf.WriteString("<" + name)
	for i := 0; i+1 < len(attrs); i += 2 {
		g.Buf.WriteString(" " + attrs[i] + "=\"" + attrEscaper.Replace(attrs[i+1]) + "\"")
	}
	g.Buf.WriteString("/>\n")
}

// writeExpr wraps an expression in its <expr> element.
func (g *Generator) writeExpr(expr parser.ExpressionNode) {
	g.openTag("expr")
	expr.Accept(g)
	g.closeTag("expr")
}

// VisitProgramNode emits the root element with the language tag and
// the optional leading-comment description.
func (g *Generator) VisitProgramNode(node *parser.ProgramNode) {
	attrs := []string{"language", "SOL25"}
	if g.Description != "" {
		attrs = append(attrs, "description", g.Description)
	}

	if len(node.Classes) == 0 {
		g.selfCloseTag("program", attrs...)
		return
	}

	g.openTag("program", attrs...)
	for _, class := range node.Classes {
		class.Accept(g)
	}
	g.closeTag("program")
}

// VisitClassNode emits one class element with its methods.
func (g *Generator) VisitClassNode(node *parser.ClassNode) {
	if len(node.Methods) == 0 {
		g.selfCloseTag("class", "name", node.Name, "parent", node.Parent)
		return
	}

	g.openTag("class", "name", node.Name, "parent", node.Parent)
	for _, method := range node.Methods {
		method.Accept(g)
	}
	g.closeTag("class")
}

// VisitMethodNode emits one method element; the body block is always
// present.
func (g *Generator) VisitMethodNode(node *parser.MethodNode) {
	g.openTag("method", "selector", node.Selector)
	node.Block.Accept(g)
	g.closeTag("method")
}

// VisitBlockNode emits a block element with its parameters and
// statements, both carrying dense 1-indexed order attributes.
func (g *Generator) VisitBlockNode(node *parser.BlockNode) {
	arity := fmt.Sprintf("%d", node.Arity)

	if len(node.Parameters) == 0 && len(node.Statements) == 0 {
		g.selfCloseTag("block", "arity", arity)
		return
	}

	g.openTag("block", "arity", arity)
	for i, param := range node.Parameters {
		g.order = i + 1
		param.Accept(g)
	}
	for i, stmt := range node.Statements {
		g.order = i + 1
		stmt.Accept(g)
	}
	g.closeTag("block")
}

// VisitParameterNode emits one parameter with its sibling order.
func (g *Generator) VisitParameterNode(node *parser.ParameterNode) {
	g.selfCloseTag("parameter", "name", node.Name, "order", fmt.Sprintf("%d", g.order))
}

// VisitAssignNode emits one assign element holding the target variable
// and the right-hand side expression.
func (g *Generator) VisitAssignNode(node *parser.AssignNode) {
	g.openTag("assign", "order", fmt.Sprintf("%d", g.order))
	g.selfCloseTag("var", "name", node.Var)
	g.writeExpr(node.Expr)
	g.closeTag("assign")
}

// VisitLiteralNode emits one literal element.
func (g *Generator) VisitLiteralNode(node *parser.LiteralNode) {
	g.selfCloseTag("literal", "class", node.Class, "value", node.Value)
}

// VisitVarNode emits one var element.
func (g *Generator) VisitVarNode(node *parser.VarNode) {
	g.selfCloseTag("var", "name", node.Name)
}

// VisitSendNode emits a send element. Two nested chain shapes flatten
// into a single compound-selector send; the flattening consumes the
// whole chain, so a second pass over the emitted structure would find
// nothing further to rewrite.
func (g *Generator) VisitSendNode(node *parser.SendNode) {
	// compute: x and: y and: z  parses as three nested sends and is
	// emitted as one compute:and:and: with three arguments
	if outer, middle, ok := matchComputeChain(node); ok {
		g.emitSend("compute:and:and:", node.Receiver,
			outer.Receiver, middle.Receiver, middle.Arguments[0])
		return
	}

	// cond ifTrue: t ifFalse: f  parses as ifFalse: nested inside
	// ifTrue: and is emitted as one ifTrue:ifFalse: with two arguments
	if inner, ok := matchIfTrueIfFalseChain(node); ok {
		g.emitSend("ifTrue:ifFalse:", node.Receiver,
			inner.Receiver, inner.Arguments[0])
		return
	}

	g.emitSend(node.Selector, node.Receiver, node.Arguments...)
}

// emitSend writes one send element with its receiver and ordered
// arguments.
func (g *Generator) emitSend(selector string, receiver parser.ExpressionNode, args ...parser.ExpressionNode) {
	g.openTag("send", "selector", selector)
	g.writeExpr(receiver)
	for i, arg := range args {
		g.openTag("arg", "order", fmt.Sprintf("%d", i+1))
		g.writeExpr(arg)
		g.closeTag("arg")
	}
	g.closeTag("send")
}

// matchComputeChain recognizes
//
//	Send{compute:, [Send{and:, [Send{and:, [x]}]}]}
//
// and returns the outer and innermost and: sends.
func matchComputeChain(node *parser.SendNode) (outer, inner *parser.SendNode, ok bool) {
	if node.Selector != "compute:" || len(node.Arguments) != 1 {
		return nil, nil, false
	}
	outer, isSend := node.Arguments[0].(*parser.SendNode)
	if !isSend || outer.Selector != "and:" || len(outer.Arguments) != 1 {
		return nil, nil, false
	}
	inner, isSend = outer.Arguments[0].(*parser.SendNode)
	if !isSend || inner.Selector != "and:" || len(inner.Arguments) != 1 {
		return nil, nil, false
	}
	return outer, inner, true
}

// matchIfTrueIfFalseChain recognizes
//
//	Send{ifTrue:, [Send{ifFalse:, [y]}]}
//
// and returns the inner ifFalse: send.
func matchIfTrueIfFalseChain(node *parser.SendNode) (*parser.SendNode, bool) {
	if node.Selector != "ifTrue:" || len(node.Arguments) != 1 {
		return nil, false
	}
	inner, isSend := node.Arguments[0].(*parser.SendNode)
	if !isSend || inner.Selector != "ifFalse:" || len(inner.Arguments) != 1 {
		return nil, false
	}
	return inner, true
}
