package block

import (
	"io"
	"path/filepath"
	"strings"

	"github.com/svssdeva/css-blocks/config"
	"github.com/svssdeva/css-blocks/css"
	"github.com/svssdeva/css-blocks/selector"
)

// Factory builds blocks from parsed stylesheets.
type Factory struct {
	opts *config.Options
}

// NewFactory returns a factory using the given options. A nil opts falls
// back to the defaults.
func NewFactory(opts *config.Options) *Factory {
	if opts == nil {
		opts = config.Default()
	}
	return &Factory{opts: opts}
}

// Parse reads and parses CSS source from r and builds a block from it.
// Syntax errors from the parser become diagnostics on the block.
func (f *Factory) Parse(r io.Reader, name, file string) (*Block, *css.StyleSheet) {
	var p css.Parser
	doc := p.ParseStyleSheet(css.NewScanner(r))
	blk := f.Build(doc, name, file)
	for _, e := range p.Errors {
		blk.AddError(e.Message, f.opts.RelPath(file), e.Pos)
	}
	return blk, doc
}

// Build walks a parsed stylesheet and creates a style node for every
// scope, class and attribute its rule selectors mention. The selectors of
// each rule are recorded on the block for later resolution.
func (f *Factory) Build(doc *css.StyleSheet, name, file string) *Block {
	blk := New(name)
	for _, rule := range doc.Rules {
		r, ok := rule.(*css.QualifiedRule)
		if !ok {
			continue
		}
		sels, errs := selector.Parse(r.Prelude)
		for _, e := range errs {
			blk.AddError(e.Message, f.opts.RelPath(file), e.Pos)
		}
		for _, sel := range sels {
			for i := range sel.Parts {
				f.buildPart(blk, &sel.Parts[i])
			}
		}
		blk.AddRuleSelectors(r, sels)
	}
	return blk
}

// buildPart creates the style nodes one compound selector part mentions.
// Attributes attach to the part's class, or to the scope for parts like
// ":scope[state|large]" and bare "[state|on]".
func (f *Factory) buildPart(blk *Block, part *selector.Part) {
	var owner *Class
	if part.Scope {
		owner = blk.Root()
		owner.implicit = false
	}
	for _, name := range part.Classes {
		c := blk.EnsureClass(name)
		if owner == nil {
			owner = c
		}
	}
	if owner == nil {
		if len(part.Attrs) == 0 {
			return
		}
		// A bare attribute selector like "[state|on]" belongs to the
		// scope, without making the scope explicit.
		owner = blk.Root()
	}
	for _, a := range part.Attrs {
		owner.EnsureAttr(a.Namespace, a.Name, a.Value)
	}
}

// NameFromPath derives a default block name from a file path, stripping
// the directory and the ".block.css" or ".css" suffix.
func NameFromPath(path string) string {
	name := filepath.Base(path)
	name = strings.TrimSuffix(name, ".css")
	name = strings.TrimSuffix(name, ".block")
	return name
}
