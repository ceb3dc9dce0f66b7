// Package block models css-blocks style blocks: the scope, class and
// attribute style nodes a stylesheet exposes, the selectors that mention
// them, and the validation state accumulated while processing source and
// definition files.
package block

import (
	"github.com/svssdeva/css-blocks/css"
	"github.com/svssdeva/css-blocks/selector"
)

// Block represents a single css-blocks block: a named set of style nodes
// built from one stylesheet.
type Block struct {
	name string
	root *Class

	classes   map[string]*Class
	classList []*Class

	rules map[*css.QualifiedRule][]*selector.Sel

	diags DiagnosticList
}

// New returns an empty block with the given name. The scope node exists
// from the start but stays implicit until a rule mentions it.
func New(name string) *Block {
	b := &Block{
		name:    name,
		classes: make(map[string]*Class),
		rules:   make(map[*css.QualifiedRule][]*selector.Sel),
	}
	b.root = &Class{root: true, implicit: true, block: b, attrs: make(map[string]*Attr)}
	return b
}

// Name returns the block name.
func (b *Block) Name() string { return b.name }

// SetName renames the block.
func (b *Block) SetName(name string) { b.name = name }

// Root returns the block's scope node.
func (b *Block) Root() *Class { return b.root }

// Class returns the named class node, or nil if no rule mentions it.
func (b *Block) Class(name string) *Class { return b.classes[name] }

// EnsureClass returns the named class node, creating it if needed.
func (b *Block) EnsureClass(name string) *Class {
	if c := b.classes[name]; c != nil {
		c.implicit = false
		return c
	}
	c := &Class{name: name, block: b, attrs: make(map[string]*Attr)}
	b.classes[name] = c
	b.classList = append(b.classList, c)
	return c
}

// Classes returns the block's class nodes in creation order, not including
// the scope.
func (b *Block) Classes() []*Class { return b.classList }

// Styles returns every style node the block exposes, scope first, each
// class followed by its attribute nodes. When includeImplicit is false,
// nodes that no rule selector mentions are skipped.
func (b *Block) Styles(includeImplicit bool) []Style {
	var styles []Style
	appendClass := func(c *Class) {
		if includeImplicit || !c.implicit {
			styles = append(styles, c)
		}
		for _, a := range c.attrList {
			styles = append(styles, a)
		}
	}
	appendClass(b.root)
	for _, c := range b.classList {
		appendClass(c)
	}
	return styles
}

// AddRuleSelectors records the parsed selectors for a rule so they can be
// retrieved later by rule identity.
func (b *Block) AddRuleSelectors(rule *css.QualifiedRule, sels []*selector.Sel) {
	b.rules[rule] = append(b.rules[rule], sels...)
}

// RuleSelectors returns the selectors recorded for a rule, or nil if the
// rule was not built into this block.
func (b *Block) RuleSelectors(rule *css.QualifiedRule) []*selector.Sel {
	return b.rules[rule]
}

// ResolvedTarget holds the style nodes a selector's key part resolves to.
type ResolvedTarget struct {
	Attrs   []*Attr
	Classes []*Class
}

// Resolve looks up the style nodes named by a selector's key part. Only
// nodes that already exist on the block are returned; nothing is created.
func (b *Block) Resolve(sel *selector.Sel) ResolvedTarget {
	var target ResolvedTarget
	key := sel.Key()

	var owner *Class
	if key.Scope {
		owner = b.root
		target.Classes = append(target.Classes, b.root)
	}
	for _, name := range key.Classes {
		c := b.classes[name]
		if c == nil {
			continue
		}
		if owner == nil {
			owner = c
		}
		target.Classes = append(target.Classes, c)
	}

	if owner == nil && len(key.Attrs) > 0 {
		// Bare attribute keys like "[state|on]" resolve against the scope.
		owner = b.root
	}
	if owner != nil {
		for _, ka := range key.Attrs {
			if a := owner.Attr(ka.Namespace, ka.Name, ka.Value); a != nil {
				target.Attrs = append(target.Attrs, a)
			}
		}
	}
	return target
}

// AddError records a diagnostic at a source position within file.
func (b *Block) AddError(message, file string, pos css.Pos) {
	b.diags = append(b.diags, Diagnostic{
		Message: message,
		File:    file,
		Line:    pos.Line + 1,
		Col:     pos.Char,
	})
}

// AddFileError records a diagnostic that applies to a whole file.
func (b *Block) AddFileError(message, file string) {
	b.diags = append(b.diags, Diagnostic{Message: message, File: file})
}

// Diagnostics returns the diagnostics recorded so far.
func (b *Block) Diagnostics() DiagnosticList { return b.diags }

// ResetIndexMarks clears the index-was-set marks on every style node so a
// definition file can be re-applied, as happens when watching for changes.
// Assigned index values are kept.
func (b *Block) ResetIndexMarks() {
	clearClass := func(c *Class) {
		c.clearIndexMark()
		for _, a := range c.attrList {
			a.clearIndexMark()
		}
	}
	clearClass(b.root)
	for _, c := range b.classList {
		clearClass(c)
	}
}
