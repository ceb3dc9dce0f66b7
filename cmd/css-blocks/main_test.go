package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/svssdeva/css-blocks/config"
)

const validDefinition = `@block-syntax-version 1;
:scope { block-interface-index: 0; }
.entry { block-interface-index: 1; }
.entry[state|active] { block-interface-index: 2; }
`

func writeDefinition(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "nav.block.css")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestCheckFile(t *testing.T) {
	path := writeDefinition(t, validDefinition)
	diags, err := checkFile(config.Default(), path)
	require.NoError(t, err)
	assert.Empty(t, diags)
}

func TestCheckFile_Problems(t *testing.T) {
	path := writeDefinition(t, `@block-syntax-version 1;
:scope { block-interface-index: zero; }
`)
	diags, err := checkFile(config.Default(), path)
	require.NoError(t, err)
	require.Len(t, diags, 2)
	assert.Equal(t, "block-interface-index must be a number", diags[0].Message)
}

func TestCheckCmd(t *testing.T) {
	path := writeDefinition(t, validDefinition)

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"check", path})
	require.NoError(t, cmd.Execute())
	assert.Empty(t, stderr.String())
}

func TestCheckCmd_Problems(t *testing.T) {
	path := writeDefinition(t, `:scope { block-interface-index: 0; }`)

	cmd := newRootCmd()
	var stdout, stderr bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stderr)
	cmd.SetArgs([]string{"check", path})

	err := cmd.Execute()
	require.Error(t, err)
	assert.Contains(t, err.Error(), "1 problem(s) found")
	assert.Contains(t, stderr.String(), "missing block-syntax-version")
}

func TestFmtCmd(t *testing.T) {
	path := writeDefinition(t, `.entry   {  color :red ; }`)

	cmd := newRootCmd()
	var stdout bytes.Buffer
	cmd.SetOut(&stdout)
	cmd.SetErr(&stdout)
	cmd.SetArgs([]string{"fmt", path})
	require.NoError(t, cmd.Execute())
	assert.Contains(t, stdout.String(), ".entry")
}