/*
File    : sol25/parser/symbols.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package parser

// MethodInfo holds the per-method facts the semantic analyzer needs:
// the full selector, the declared parameters, the body statements, and
// the arity derived from the selector.
type MethodInfo struct {
	Selector   string
	Parameters []*ParameterNode
	Statements []*AssignNode
	Arity      int
}

// ClassInfo holds the per-class facts the semantic analyzer needs.
// Methods is keyed by the colon-stripped method name; duplicate
// detection happens on full selectors during parsing, so two selectors
// that strip to the same name may coexist in a class - like a map
// update, the later definition replaces the body while the original
// keeps its position in MethodOrder.
type ClassInfo struct {
	Parent      string
	Methods     map[string]*MethodInfo
	MethodOrder []string // Method names in first-definition order
}

// SymbolTable is the class table built as a side effect of parsing and
// consumed read-only by the semantic analyzer. Go maps do not iterate
// in insertion order, so the table keeps explicit order slices: the
// analyzer's fail-fast diagnostics must be deterministic and follow
// source order.
type SymbolTable struct {
	Classes map[string]*ClassInfo
	Order   []string // Class names in definition order

	// Entry-point facts recorded while parsing class bodies
	HasMain    bool // A class named Main was defined
	HasMainRun bool // Main defines a method named run with arity 0
}

// NewSymbolTable creates an empty symbol table.
func NewSymbolTable() *SymbolTable {
	return &SymbolTable{
		Classes: make(map[string]*ClassInfo),
		Order:   make([]string, 0),
	}
}

// Define registers a class and returns its ClassInfo for method
// registration. The parser has already rejected duplicate class names.
func (st *SymbolTable) Define(name string, parent string) *ClassInfo {
	info := &ClassInfo{
		Parent:      parent,
		Methods:     make(map[string]*MethodInfo),
		MethodOrder: make([]string, 0),
	}
	st.Classes[name] = info
	st.Order = append(st.Order, name)
	return info
}

// Has reports whether a class with the given name was defined.
func (st *SymbolTable) Has(name string) bool {
	_, ok := st.Classes[name]
	return ok
}

// AddMethod registers a method under its colon-stripped name.
func (info *ClassInfo) AddMethod(name string, method *MethodInfo) {
	if _, ok := info.Methods[name]; !ok {
		info.MethodOrder = append(info.MethodOrder, name)
	}
	info.Methods[name] = method
}
