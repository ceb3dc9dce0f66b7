package block_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svssdeva/css-blocks/block"
	"github.com/svssdeva/css-blocks/css"
	"github.com/svssdeva/css-blocks/selector"
)

// build parses src and constructs a block from it with default options.
func build(t *testing.T, src string) (*block.Block, *css.StyleSheet) {
	t.Helper()
	f := block.NewFactory(nil)
	blk, doc := f.Parse(strings.NewReader(src), "test", "test.block.css")
	return blk, doc
}

// parseSels parses a selector prelude from raw text.
func parseSels(t *testing.T, in string) []*selector.Sel {
	t.Helper()
	var p css.Parser
	sels, errs := selector.Parse(p.ParseComponentValues(css.NewScanner(strings.NewReader(in))))
	require.Empty(t, errs)
	return sels
}

func TestBlock_Sources(t *testing.T) {
	blk := block.New("test")
	assert.Equal(t, ":scope", blk.Root().Source())

	foo := blk.EnsureClass("foo")
	assert.Equal(t, ".foo", foo.Source())

	on := foo.EnsureAttr("state", "on", "")
	assert.Equal(t, ".foo[state|on]", on.Source())

	size := foo.EnsureAttr("state", "size", "big")
	assert.Equal(t, `.foo[state|size="big"]`, size.Source())

	large := blk.Root().EnsureAttr("state", "large", "")
	assert.Equal(t, "[state|large]", large.Source())
}

func TestBlock_Styles(t *testing.T) {
	blk, _ := build(t, `.foo { color: red; } .foo[state|on] { color: blue; } .bar { color: green; }`)

	var sources []string
	for _, st := range blk.Styles(true) {
		sources = append(sources, st.Source())
	}
	assert.Equal(t, []string{":scope", ".foo", ".foo[state|on]", ".bar"}, sources)
}

func TestBlock_Styles_SkipImplicit(t *testing.T) {
	blk, _ := build(t, `.foo { color: red; }`)

	var sources []string
	for _, st := range blk.Styles(false) {
		sources = append(sources, st.Source())
	}
	assert.Equal(t, []string{".foo"}, sources)

	// Mentioning :scope makes it explicit.
	blk, _ = build(t, `:scope { color: red; } .foo { color: red; }`)
	sources = sources[:0]
	for _, st := range blk.Styles(false) {
		sources = append(sources, st.Source())
	}
	assert.Equal(t, []string{":scope", ".foo"}, sources)
}

func TestBlock_Resolve(t *testing.T) {
	blk, _ := build(t, `:scope[state|large] { color: red; } .foo[state|on] { color: blue; }`)

	sels := parseSels(t, `.foo[state|on]`)
	target := blk.Resolve(sels[0])
	require.Len(t, target.Attrs, 1)
	assert.Equal(t, ".foo[state|on]", target.Attrs[0].Source())
	require.Len(t, target.Classes, 1)
	assert.Equal(t, ".foo", target.Classes[0].Source())

	sels = parseSels(t, `:scope[state|large]`)
	target = blk.Resolve(sels[0])
	require.Len(t, target.Attrs, 1)
	assert.Equal(t, "[state|large]", target.Attrs[0].Source())
	require.Len(t, target.Classes, 1)
	assert.True(t, target.Classes[0].IsRoot())

	// A bare attribute key resolves against the scope.
	sels = parseSels(t, `[state|large]`)
	target = blk.Resolve(sels[0])
	require.Len(t, target.Attrs, 1)
	assert.Equal(t, "[state|large]", target.Attrs[0].Source())
	assert.Empty(t, target.Classes)

	// Unknown names resolve to nothing.
	sels = parseSels(t, `.ghost`)
	target = blk.Resolve(sels[0])
	assert.Empty(t, target.Attrs)
	assert.Empty(t, target.Classes)
}

func TestBlock_ResetIndexMarks(t *testing.T) {
	blk, _ := build(t, `.foo { color: red; }`)
	foo := blk.Class("foo")
	require.NotNil(t, foo)

	foo.SetIndex(7)
	require.True(t, foo.IndexWasSet())

	blk.ResetIndexMarks()
	assert.False(t, foo.IndexWasSet())
	assert.Equal(t, 7, foo.Index())
}

func TestDiagnosticList_Error(t *testing.T) {
	var l block.DiagnosticList
	assert.Equal(t, "no errors", l.Error())

	l = append(l, block.Diagnostic{Message: "bad", File: "a.css", Line: 2, Col: 3})
	assert.Equal(t, "a.css:2:3: bad", l.Error())

	l = append(l, block.Diagnostic{Message: "worse", File: "a.css"})
	assert.Equal(t, "a.css:2:3: bad (and 1 more errors)", l.Error())
}