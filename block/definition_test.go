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

// assign builds a block from the definition source itself and re-applies
// its committed indexes.
func assign(t *testing.T, src string) *block.Block {
	t.Helper()
	blk, doc := build(t, src)
	require.NoError(t, block.AssignInterfaceIndexes(nil, doc, blk, "test.block.css"))
	return blk
}

func TestAssignInterfaceIndexes(t *testing.T) {
	blk := assign(t, `
:scope { block-interface-index: 0; }
.foo { block-interface-index: 1; }
.foo[state|on] { block-interface-index: 2; }
`)
	require.Empty(t, blk.Diagnostics())

	assert.Equal(t, 0, blk.Root().Index())
	foo := blk.Class("foo")
	assert.Equal(t, 1, foo.Index())
	assert.Equal(t, 2, foo.Attr("state", "on", "").Index())
	for _, st := range blk.Styles(true) {
		assert.True(t, st.IndexWasSet(), st.Source())
	}
}

func TestAssignInterfaceIndexes_BareAttr(t *testing.T) {
	blk := assign(t, `
:scope { block-interface-index: 0; }
.foo { block-interface-index: 1; }
[state|on] { block-interface-index: 2; }
`)
	require.Empty(t, blk.Diagnostics())

	assert.Equal(t, 1, blk.Class("foo").Index())
	on := blk.Root().Attr("state", "on", "")
	require.NotNil(t, on)
	assert.Equal(t, "[state|on]", on.Source())
	assert.Equal(t, 2, on.Index())
}

func TestAssignInterfaceIndexes_QuotedValue(t *testing.T) {
	blk := assign(t, `
:scope { block-interface-index: 0; }
.foo { block-interface-index: "2"; }
`)
	require.Empty(t, blk.Diagnostics())
	assert.Equal(t, 2, blk.Class("foo").Index())
}

func TestAssignInterfaceIndexes_AttrWinsOverClass(t *testing.T) {
	blk := assign(t, `
:scope { block-interface-index: 0; }
.foo { block-interface-index: 1; }
.foo[state|on] { block-interface-index: 2; }
`)
	require.Empty(t, blk.Diagnostics())
	assert.Equal(t, 1, blk.Class("foo").Index())
	assert.Equal(t, 2, blk.Class("foo").Attr("state", "on", "").Index())
}

func TestAssignInterfaceIndexes_NonNumeric(t *testing.T) {
	blk := assign(t, `
:scope { block-interface-index: 0; }
.foo { block-interface-index: abc; }
`)

	diags := blk.Diagnostics()
	require.Len(t, diags, 2)
	assert.Equal(t, "block-interface-index must be a number", diags[0].Message)
	assert.Equal(t, 3, diags[0].Line)
	assert.Equal(t, 8, diags[0].Col)
	assert.False(t, blk.Class("foo").IndexWasSet())
	assert.Contains(t, diags[1].Message, "doesn't have a preset interface index")
}

func TestAssignInterfaceIndexes_Duplicate(t *testing.T) {
	blk := assign(t, `
:scope { block-interface-index: 0; }
.foo { block-interface-index: 1; }
.bar { block-interface-index: 1; }
`)

	diags := blk.Diagnostics()
	require.NotEmpty(t, diags)
	assert.Equal(t, "Each block-interface-index in a definition file must be unique", diags[0].Message)

	// First declaration wins; the duplicate leaves its node untouched.
	assert.Equal(t, 1, blk.Class("foo").Index())
	assert.True(t, blk.Class("foo").IndexWasSet())
	assert.False(t, blk.Class("bar").IndexWasSet())
}

func TestAssignInterfaceIndexes_MissingNode(t *testing.T) {
	blk, doc := build(t, `
:scope { block-interface-index: 0; }
.foo { block-interface-index: 1; }
`)
	blk.EnsureClass("bar")
	require.NoError(t, block.AssignInterfaceIndexes(nil, doc, blk, "test.block.css"))

	diags := blk.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "Style node .bar doesn't have a preset interface index after parsing definition file. You may need to declare this style node in the definition file.", diags[0].Message)
	assert.Equal(t, "test.block.css", diags[0].File)
	assert.Zero(t, diags[0].Line)
	assert.Zero(t, diags[0].Col)
}

func TestAssignInterfaceIndexes_UnknownSelector(t *testing.T) {
	var p css.Parser
	doc := p.ParseStyleSheet(css.NewScanner(strings.NewReader(`.ghost { block-interface-index: 0; }`)))
	require.Empty(t, p.Errors)

	// A block that records the rule's selectors but holds no matching
	// style node is inconsistent with the definition file.
	blk := block.New("test")
	r := doc.Rules[0].(*css.QualifiedRule)
	sels, errs := selector.Parse(r.Prelude)
	require.Empty(t, errs)
	blk.AddRuleSelectors(r, sels)

	err := block.AssignInterfaceIndexes(nil, doc, blk, "test.block.css")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `selector ".ghost"`)
}

func TestAssignInterfaceIndexes_Reapply(t *testing.T) {
	blk, doc := build(t, `
:scope { block-interface-index: 0; }
.foo { block-interface-index: 1; }
`)
	require.NoError(t, block.AssignInterfaceIndexes(nil, doc, blk, "test.block.css"))
	require.Empty(t, blk.Diagnostics())

	blk.ResetIndexMarks()
	require.NoError(t, block.AssignInterfaceIndexes(nil, doc, blk, "test.block.css"))
	assert.Empty(t, blk.Diagnostics())
	assert.Equal(t, 0, blk.Root().Index())
	assert.Equal(t, 1, blk.Class("foo").Index())
}

func TestProcessDefinition(t *testing.T) {
	blk, doc := build(t, `
@block-syntax-version 1;
:scope { block-name: nav; block-class: nav-a1b2c3; block-interface-index: 0; }
.entry { block-class: nav__entry; block-interface-index: 1; }
`)
	require.NoError(t, block.ProcessDefinition(nil, doc, blk, "nav.block.css"))

	require.Empty(t, blk.Diagnostics())
	assert.Equal(t, "nav", blk.Name())
	assert.Equal(t, "nav-a1b2c3", blk.Root().CompiledClass())
	assert.Equal(t, "nav__entry", blk.Class("entry").CompiledClass())
	assert.Equal(t, 0, blk.Root().Index())
	assert.Equal(t, 1, blk.Class("entry").Index())
}

func TestProcessDefinition_MissingSyntaxVersion(t *testing.T) {
	blk, doc := build(t, `:scope { block-interface-index: 0; }`)
	require.NoError(t, block.ProcessDefinition(nil, doc, blk, "nav.block.css"))

	diags := blk.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "Definition file is missing block-syntax-version declaration", diags[0].Message)
}

func TestProcessDefinition_SyntaxVersion(t *testing.T) {
	for _, tt := range []struct {
		src string
		msg string
	}{
		{
			src: `@block-syntax-version two; :scope { block-interface-index: 0; }`,
			msg: "block-syntax-version must be a number",
		},
		{
			src: `@block-syntax-version 2; :scope { block-interface-index: 0; }`,
			msg: "Unsupported block-syntax-version 2; highest supported version is 1",
		},
	} {
		blk, doc := build(t, tt.src)
		require.NoError(t, block.ProcessDefinition(nil, doc, blk, "nav.block.css"))
		diags := blk.Diagnostics()
		require.NotEmpty(t, diags, tt.src)
		assert.Equal(t, tt.msg, diags[0].Message, tt.src)
	}
}

func TestProcessDefinition_IllegalBlockName(t *testing.T) {
	blk, doc := build(t, `
@block-syntax-version 1;
:scope { block-name: "1nav"; block-interface-index: 0; }
`)
	require.NoError(t, block.ProcessDefinition(nil, doc, blk, "nav.block.css"))

	diags := blk.Diagnostics()
	require.Len(t, diags, 1)
	assert.Equal(t, "Illegal block name. '1nav' is not a legal CSS identifier.", diags[0].Message)
	assert.Equal(t, "test", blk.Name())
}