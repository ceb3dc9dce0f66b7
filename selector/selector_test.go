package selector_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svssdeva/css-blocks/css"
	"github.com/svssdeva/css-blocks/selector"
)

// parse scans and parses a selector prelude from source text.
func parse(t *testing.T, in string) ([]*selector.Sel, css.ErrorList) {
	t.Helper()
	var p css.Parser
	values := p.ParseComponentValues(css.NewScanner(strings.NewReader(in)))
	require.Empty(t, p.Errors)
	return selector.Parse(values)
}

func TestParse_Class(t *testing.T) {
	sels, errs := parse(t, `.foo`)
	require.Empty(t, errs)
	require.Len(t, sels, 1)
	require.Len(t, sels[0].Parts, 1)
	assert.Equal(t, []string{"foo"}, sels[0].Parts[0].Classes)
	assert.Equal(t, ".foo", sels[0].String())
}

func TestParse_Scope(t *testing.T) {
	sels, errs := parse(t, `:scope`)
	require.Empty(t, errs)
	require.Len(t, sels, 1)
	assert.True(t, sels[0].Key().Scope)
	assert.Equal(t, ":scope", sels[0].String())
}

func TestParse_ScopeAttr(t *testing.T) {
	sels, errs := parse(t, `:scope[state|large]`)
	require.Empty(t, errs)
	require.Len(t, sels, 1)
	key := sels[0].Key()
	assert.True(t, key.Scope)
	require.Len(t, key.Attrs, 1)
	assert.Equal(t, "state", key.Attrs[0].Namespace)
	assert.Equal(t, "large", key.Attrs[0].Name)
	assert.Equal(t, ":scope[state|large]", sels[0].String())
}

func TestParse_ClassAttrValue(t *testing.T) {
	sels, errs := parse(t, `.foo[state|size="big"]`)
	require.Empty(t, errs)
	require.Len(t, sels, 1)
	key := sels[0].Key()
	assert.Equal(t, []string{"foo"}, key.Classes)
	require.Len(t, key.Attrs, 1)
	assert.Equal(t, selector.Attr{Namespace: "state", Name: "size", Op: "=", Value: "big"}, key.Attrs[0])
	assert.Equal(t, `.foo[state|size="big"]`, sels[0].String())
}

func TestParse_Combinators(t *testing.T) {
	sels, errs := parse(t, `:scope > .foo .bar`)
	require.Empty(t, errs)
	require.Len(t, sels, 1)
	sel := sels[0]
	require.Len(t, sel.Parts, 3)
	assert.Equal(t, []selector.Combinator{selector.Child, selector.Descendant}, sel.Combinators)
	assert.Equal(t, []string{"bar"}, sel.Key().Classes)
	assert.Equal(t, ":scope > .foo .bar", sel.String())
}

func TestParse_Group(t *testing.T) {
	sels, errs := parse(t, `.foo, .bar[state|on]`)
	require.Empty(t, errs)
	require.Len(t, sels, 2)
	assert.Equal(t, ".foo", sels[0].String())
	assert.Equal(t, ".bar[state|on]", sels[1].String())
}

func TestParse_TagIDPseudo(t *testing.T) {
	sels, errs := parse(t, `div#main.foo:hover::before`)
	require.Empty(t, errs)
	require.Len(t, sels, 1)
	key := sels[0].Key()
	assert.Equal(t, "div", key.Tag)
	assert.Equal(t, "main", key.ID)
	assert.Equal(t, []string{"foo"}, key.Classes)
	assert.Equal(t, []string{":hover", "::before"}, key.Pseudos)
	assert.Equal(t, "div#main.foo:hover::before", sels[0].String())
}

func TestParse_Pos(t *testing.T) {
	sels, errs := parse(t, `  .foo`)
	require.Empty(t, errs)
	require.Len(t, sels, 1)
	assert.Equal(t, css.Pos{Char: 3, Line: 0}, sels[0].Pos)
}

func TestParse_Errors(t *testing.T) {
	for _, tt := range []struct {
		in  string
		err string
	}{
		{in: `.`, err: "expected identifier after ."},
		{in: `:scope[state|]`, err: "malformed attribute selector"},
		{in: `[state|on=]`, err: "malformed attribute selector"},
		{in: `:`, err: "expected identifier after :"},
		{in: `> .foo`, err: `unexpected combinator ">"`},
	} {
		var p css.Parser
		values := p.ParseComponentValues(css.NewScanner(strings.NewReader(tt.in)))
		_, errs := selector.Parse(values)
		require.NotEmpty(t, errs, tt.in)
		assert.Equal(t, tt.err, errs[0].Message, tt.in)
	}
}

func TestParse_Empty(t *testing.T) {
	sels, errs := parse(t, `   `)
	assert.Empty(t, errs)
	assert.Empty(t, sels)
}
