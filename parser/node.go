/*
File    : sol25/parser/node.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

// NodeVisitor: implements the Visitor design pattern for traversing the
// Abstract Syntax Tree (AST). Each Visit method processes a specific
// node type, enabling operations like serialization or analysis without
// switching on node types at every call site.
type NodeVisitor interface {
	VisitProgramNode(node *ProgramNode) // Entry point for visiting the entire program
	VisitClassNode(node *ClassNode)     // Class definitions: class Main : Object { ... }
	VisitMethodNode(node *MethodNode)   // Method definitions: selector + block
	VisitBlockNode(node *BlockNode)     // Block literals: [ :x | ... ]
	VisitParameterNode(node *ParameterNode)
	VisitAssignNode(node *AssignNode) // Statements: var := expr .

	// Expression visitors
	VisitLiteralNode(node *LiteralNode) // Integer/String/Nil/True/False/class literals
	VisitVarNode(node *VarNode)         // Variable references: self, super, identifiers
	VisitSendNode(node *SendNode)       // Message sends: receiver selector arguments
}

// Node: base interface for all nodes of the AST
// Accept(): accepts a visitor
type Node interface {
	Accept(visitor NodeVisitor)
}

// ExpressionNode: base interface for all expression nodes.
// The concrete expressions are LiteralNode, VarNode, BlockNode, and
// SendNode.
type ExpressionNode interface {
	Node
	Expression()
}

// ProgramNode: represents the root of the AST.
// Classes: the class definitions in source order.
type ProgramNode struct {
	Classes []*ClassNode
}

// ProgramNode.Accept(): accepts a visitor (eg the XML generator)
func (node *ProgramNode) Accept(visitor NodeVisitor) {
	visitor.VisitProgramNode(node)
}

// ClassNode: represents one class definition.
// Example: class Main : Object { ... }
type ClassNode struct {
	Name    string        // Class name (starts uppercase)
	Parent  string        // Parent class name
	Methods []*MethodNode // Methods in source order
}

func (node *ClassNode) Accept(visitor NodeVisitor) {
	visitor.VisitClassNode(node)
}

// MethodNode: represents one method definition.
// Name is the selector with all colons stripped; Selector is the
// original colon-bearing string; Arity equals the number of
// colon-suffixed selector parts and always matches Block.Arity.
type MethodNode struct {
	Name     string     // Selector without colons: "betweenand"
	Selector string     // Full selector: "between:and:"
	Arity    int        // Number of argument positions
	Block    *BlockNode // Method body
}

func (node *MethodNode) Accept(visitor NodeVisitor) {
	visitor.VisitMethodNode(node)
}

// BlockNode: represents a block literal [ :p1 :p2 | statements ].
// A block is a first-class expression; its arity is its parameter
// count.
type BlockNode struct {
	Parameters []*ParameterNode // Declared parameters in source order
	Statements []*AssignNode    // Body statements in source order
	Arity      int              // len(Parameters)
}

func (node *BlockNode) Accept(visitor NodeVisitor) {
	visitor.VisitBlockNode(node)
}

// BlockNode.Expression(): a block literal is an expression
func (node *BlockNode) Expression() {

}

// ParameterNode: one declared block parameter (the identifier after a
// colon).
type ParameterNode struct {
	Name string
}

func (node *ParameterNode) Accept(visitor NodeVisitor) {
	visitor.VisitParameterNode(node)
}

// AssignNode: one statement of the form  var := expr .
type AssignNode struct {
	Var  string         // Assignment target
	Expr ExpressionNode // Right-hand side
}

func (node *AssignNode) Accept(visitor NodeVisitor) {
	visitor.VisitAssignNode(node)
}

// LiteralNode: a literal expression. Class is one of "Integer",
// "String", "Nil", "True", "False", or "class" - the last denotes a
// class reference whose Value is the class name (e.g. Integer used as
// a receiver).
type LiteralNode struct {
	Class string // Literal class tag
	Value string // Source value (escapes preserved for strings)
}

func (node *LiteralNode) Accept(visitor NodeVisitor) {
	visitor.VisitLiteralNode(node)
}

func (node *LiteralNode) Expression() {

}

// VarNode: a variable reference - self, super, or a user identifier.
type VarNode struct {
	Name string
}

func (node *VarNode) Accept(visitor NodeVisitor) {
	visitor.VisitVarNode(node)
}

func (node *VarNode) Expression() {

}

// SendNode: a message send. The number of arguments always equals the
// number of colons in the selector; a unary send has no colon and no
// arguments.
type SendNode struct {
	Selector  string           // Full selector: "print", "from:", "between:and:"
	Receiver  ExpressionNode   // Receiver expression
	Arguments []ExpressionNode // One argument per selector part
}

func (node *SendNode) Accept(visitor NodeVisitor) {
	visitor.VisitSendNode(node)
}

func (node *SendNode) Expression() {

}
