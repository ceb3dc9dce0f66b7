package block_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svssdeva/css-blocks/block"
	"github.com/svssdeva/css-blocks/css"
)

func TestFactory_Build(t *testing.T) {
	blk, doc := build(t, `:scope { color: red; } .foo[state|on] { color: blue; }`)
	require.Empty(t, blk.Diagnostics())

	assert.False(t, blk.Root().Implicit())
	foo := blk.Class("foo")
	require.NotNil(t, foo)
	require.Len(t, foo.Attrs(), 1)
	assert.Equal(t, "on", foo.Attrs()[0].Name())

	// Each qualified rule's selectors are recorded by rule identity.
	for _, rule := range doc.Rules {
		r, ok := rule.(*css.QualifiedRule)
		require.True(t, ok)
		assert.Len(t, blk.RuleSelectors(r), 1)
	}
}

func TestFactory_Build_BareAttr(t *testing.T) {
	blk, _ := build(t, `[state|on] { color: red; }`)
	require.Empty(t, blk.Diagnostics())

	on := blk.Root().Attr("state", "on", "")
	require.NotNil(t, on)
	assert.Equal(t, "[state|on]", on.Source())
	// The attribute hangs off the scope without making it explicit.
	assert.True(t, blk.Root().Implicit())
}

func TestFactory_Build_SelectorGroup(t *testing.T) {
	blk, doc := build(t, `.foo, .bar { color: red; }`)
	require.Empty(t, blk.Diagnostics())
	assert.NotNil(t, blk.Class("foo"))
	assert.NotNil(t, blk.Class("bar"))

	r := doc.Rules[0].(*css.QualifiedRule)
	assert.Len(t, blk.RuleSelectors(r), 2)
}

func TestFactory_Build_SelectorError(t *testing.T) {
	blk, _ := build(t, `. { color: red; }`)
	diags := blk.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "expected identifier after .", diags[0].Message)
	assert.Equal(t, "test.block.css", diags[0].File)
	assert.Equal(t, 1, diags[0].Line)
	assert.Equal(t, 1, diags[0].Col)
}

func TestNameFromPath(t *testing.T) {
	assert.Equal(t, "nav", block.NameFromPath("src/blocks/nav.block.css"))
	assert.Equal(t, "nav", block.NameFromPath("nav.css"))
	assert.Equal(t, "nav", block.NameFromPath("nav"))
}

func TestFactory_Parse_SyntaxError(t *testing.T) {
	f := block.NewFactory(nil)
	blk, _ := f.Parse(strings.NewReader(`.foo`), "test", "test.block.css")
	diags := blk.Diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, "unexpected EOF", diags[0].Message)
}