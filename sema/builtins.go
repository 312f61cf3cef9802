/*
File    : sol25/sema/builtins.go
Author  : Akash Maji
Contact : akashmaji(@iisc.ac.in)
*/
package sema

// BUILTIN_CLASSES lists the classes every program may refer to without
// defining them. They act as roots of the inheritance graph: a parent
// walk stops when it reaches one of them.
var BUILTIN_CLASSES = map[string]bool{
	"Object":  true,
	"Integer": true,
	"String":  true,
	"Nil":     true,
	"True":    true,
	"False":   true,
	"Block":   true,
}

// UNIVERSAL_CLASS_SELECTORS are the class-side selectors every class
// understands (inherited from Object's metaclass side).
var UNIVERSAL_CLASS_SELECTORS = map[string]bool{
	"new":   true,
	"from:": true,
}

// UNIVERSAL_INSTANCE_SELECTORS are the instance-side selectors every
// object understands.
var UNIVERSAL_INSTANCE_SELECTORS = map[string]bool{
	"class":  true,
	"print":  true,
	"isNil":  true,
	"notNil": true,
}

// INSTANCE_SELECTORS maps each built-in class to its own instance-side
// selectors, beyond the universal ones.
var INSTANCE_SELECTORS = map[string]map[string]bool{
	"Integer": {
		"plus:":        true,
		"minus:":       true,
		"times:":       true,
		"divide:":      true,
		"modulo:":      true,
		"equals:":      true,
		"lessThan:":    true,
		"greaterThan:": true,
		"to:":          true,
		"do:":          true,
		"between:and:": true,
		"asString":     true,
		"and:":         true,
	},
	"String": {
		"at:":       true,
		"equals:":   true,
		"concat:":   true,
		"length":    true,
		"asInteger": true,
	},
	"Block": {
		"value":              true,
		"value:":             true,
		"value:value:":       true,
		"value:value:value:": true,
	},
	"True": {
		"ifTrue:":         true,
		"ifFalse:":        true,
		"ifTrue:ifFalse:": true,
		"ifFalse:ifTrue:": true,
	},
	"False": {
		"ifTrue:":         true,
		"ifFalse:":        true,
		"ifTrue:ifFalse:": true,
		"ifFalse:ifTrue:": true,
	},
	// Nil understands nothing beyond isNil/notNil, which the universal
	// set already covers; the empty entry keeps the class listed.
	"Nil": {},
}

// PREDEFINED_VARIABLES are in scope in every method body before any
// parameter or assignment.
var PREDEFINED_VARIABLES = []string{"self", "super", "true", "false", "nil"}
