package block

// Style is implemented by every style node a block exposes: the scope,
// classes, and attribute values on either.
type Style interface {
	// Source returns the node's source representation, e.g. ".foo" or
	// ":scope[state|large]".
	Source() string

	// Index returns the node's interface index.
	Index() int

	// SetIndex assigns the node's interface index and marks it as set.
	SetIndex(i int)

	// IndexWasSet returns true if SetIndex has been called since the last
	// call to ResetIndexMarks on the owning block.
	IndexWasSet() bool

	// CompiledClass returns the output class name committed for the node,
	// if one has been recorded.
	CompiledClass() string
}

// styleNode carries the index state shared by all style kinds.
type styleNode struct {
	index         int
	indexSet      bool
	compiledClass string
}

func (s *styleNode) Index() int            { return s.index }
func (s *styleNode) IndexWasSet() bool     { return s.indexSet }
func (s *styleNode) CompiledClass() string { return s.compiledClass }

func (s *styleNode) SetIndex(i int) {
	s.index = i
	s.indexSet = true
}

func (s *styleNode) setCompiledClass(name string) { s.compiledClass = name }

func (s *styleNode) clearIndexMark() { s.indexSet = false }

// Class represents a class style node. The block scope is modeled as a
// class with root set; it prints as ":scope".
type Class struct {
	styleNode

	name     string
	root     bool
	implicit bool
	block    *Block

	attrs    map[string]*Attr
	attrList []*Attr
}

// Name returns the class name. The scope has no name.
func (c *Class) Name() string { return c.name }

// IsRoot returns true if the class is the block's scope.
func (c *Class) IsRoot() bool { return c.root }

// Implicit returns true if the node was never mentioned by a rule selector
// and exists only as an implied parent.
func (c *Class) Implicit() bool { return c.implicit }

// Source returns the class selector in source form.
func (c *Class) Source() string {
	if c.root {
		return ":scope"
	}
	return "." + c.name
}

// Attr returns the attribute node with the given namespace, name and value,
// or nil if none exists.
func (c *Class) Attr(namespace, name, value string) *Attr {
	return c.attrs[attrKey(namespace, name, value)]
}

// EnsureAttr returns the attribute node with the given namespace, name and
// value, creating it if needed.
func (c *Class) EnsureAttr(namespace, name, value string) *Attr {
	key := attrKey(namespace, name, value)
	if a := c.attrs[key]; a != nil {
		return a
	}
	a := &Attr{namespace: namespace, name: name, value: value, class: c}
	c.attrs[key] = a
	c.attrList = append(c.attrList, a)
	return a
}

// Attrs returns the class's attribute nodes in creation order.
func (c *Class) Attrs() []*Attr { return c.attrList }

// Attr represents an attribute style node scoped to a class, e.g. the
// [state|on] in ".foo[state|on]".
type Attr struct {
	styleNode

	namespace string
	name      string
	value     string
	class     *Class
}

// Namespace returns the attribute namespace, e.g. "state".
func (a *Attr) Namespace() string { return a.namespace }

// Name returns the attribute name.
func (a *Attr) Name() string { return a.name }

// Value returns the attribute value, if the selector declared one.
func (a *Attr) Value() string { return a.value }

// Class returns the class the attribute is scoped to.
func (a *Attr) Class() *Class { return a.class }

// Source returns the attribute selector in source form, prefixed by its
// class unless that class is the scope.
func (a *Attr) Source() string {
	s := "["
	if a.namespace != "" {
		s += a.namespace + "|"
	}
	s += a.name
	if a.value != "" {
		s += `="` + a.value + `"`
	}
	s += "]"
	if a.class.root {
		return s
	}
	return a.class.Source() + s
}

func attrKey(namespace, name, value string) string {
	return namespace + "|" + name + "=" + value
}
