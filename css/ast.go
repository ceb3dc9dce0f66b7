package css

// Node represents a node in the CSS3 abstract syntax tree.
type Node interface {
	node()
}

func (_ *StyleSheet) node()    {}
func (_ Rules) node()          {}
func (_ *AtRule) node()        {}
func (_ *QualifiedRule) node() {}
func (_ Declarations) node()   {}
func (_ *Declaration) node()   {}
func (_ ComponentValues) node() {}
func (_ *SimpleBlock) node()   {}
func (_ *Function) node()      {}
func (_ *Token) node()         {}

// StyleSheet represents a top-level CSS3 stylesheet.
type StyleSheet struct {
	Rules Rules
}

// Rules represents a list of rules.
type Rules []Rule

// Rule represents a qualified rule or at-rule.
type Rule interface {
	Node
	rule()
}

func (_ *AtRule) rule()        {}
func (_ *QualifiedRule) rule() {}

// AtRule represents a rule starting with an "@" symbol.
type AtRule struct {
	Name    string
	Prelude ComponentValues
	Block   *SimpleBlock
	Pos     Pos
}

// QualifiedRule represents an unnamed rule that includes a prelude and block.
type QualifiedRule struct {
	Prelude ComponentValues
	Block   *SimpleBlock
	Pos     Pos
}

// Declarations represents a list of declarations or at-rules.
type Declarations []Node

// Declaration represents a name/value pair.
type Declaration struct {
	Name      string
	Values    ComponentValues
	Important bool
	Pos       Pos
}

// ComponentValues represents a list of component values.
type ComponentValues []ComponentValue

// ComponentValue represents a component value.
type ComponentValue interface {
	Node
	componentValue()
}

func (_ *SimpleBlock) componentValue() {}
func (_ *Function) componentValue()    {}
func (_ *Token) componentValue()       {}

// SimpleBlock represents a {-block, [-block, or (-block.
type SimpleBlock struct {
	Token  *Token
	Values ComponentValues
	Pos    Pos
}

// Function represents a function call with a list of arguments.
type Function struct {
	Name   string
	Values ComponentValues
	Pos    Pos
}

// Position returns the position of the first code point of a node.
// Container nodes report the position of their first positioned child.
// A zero position is returned for empty containers.
func Position(n Node) Pos {
	switch n := n.(type) {
	case *StyleSheet:
		return Position(n.Rules)
	case Rules:
		if len(n) > 0 {
			return Position(n[0])
		}
	case *AtRule:
		return n.Pos
	case *QualifiedRule:
		return n.Pos
	case Declarations:
		if len(n) > 0 {
			return Position(n[0])
		}
	case *Declaration:
		return n.Pos
	case ComponentValues:
		if len(n) > 0 {
			return Position(n[0])
		}
	case *SimpleBlock:
		return n.Pos
	case *Function:
		return n.Pos
	case *Token:
		return n.Pos
	}
	return Pos{}
}
