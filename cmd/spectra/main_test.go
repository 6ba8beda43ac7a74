package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeSource(t *testing.T, src string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "main.spectra")
	require.NoError(t, os.WriteFile(path, []byte(src), 0o644))
	return path
}

func TestRunParseText(t *testing.T) {
	path := writeSource(t, "var x = 1 + 2;\n")

	var out bytes.Buffer
	parseCmd.SetOut(&out)
	require.NoError(t, runParse(parseCmd, []string{path}))

	assert.Contains(t, out.String(), "Module")
	assert.Contains(t, out.String(), "VarStmt")
	assert.Contains(t, out.String(), "BinaryExpr")
}

func TestRunParseJSON(t *testing.T) {
	path := writeSource(t, "a();\n")

	old := parseFormat
	parseFormat = "json"
	defer func() { parseFormat = old }()

	var out bytes.Buffer
	parseCmd.SetOut(&out)
	require.NoError(t, runParse(parseCmd, []string{path}))

	assert.Contains(t, out.String(), `"type": "CallExpr"`)
}

func TestRunParseUnknownFormat(t *testing.T) {
	path := writeSource(t, "a;\n")

	old := parseFormat
	parseFormat = "xml"
	defer func() { parseFormat = old }()

	err := runParse(parseCmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown output format")
}

func TestRunParseDiagnostic(t *testing.T) {
	path := writeSource(t, "var x 5;\n")

	var out, errOut bytes.Buffer
	parseCmd.SetOut(&out)
	parseCmd.SetErr(&errOut)

	err := runParse(parseCmd, []string{path})
	require.Error(t, err)
	assert.Contains(t, errOut.String(), path+":1:7:")
	assert.Contains(t, errOut.String(), "expected `=`, got 5")
}

func TestRunParseMissingFile(t *testing.T) {
	err := runParse(parseCmd, []string{filepath.Join(t.TempDir(), "nope.spectra")})
	require.Error(t, err)
}

func TestRunTokens(t *testing.T) {
	path := writeSource(t, "var x = a ++;\n")

	var out bytes.Buffer
	tokensCmd.SetOut(&out)
	require.NoError(t, runTokens(tokensCmd, []string{path}))

	assert.Contains(t, out.String(), "`var`")
	assert.Contains(t, out.String(), "identifier `x`")
	assert.Contains(t, out.String(), "`++`")
	assert.Contains(t, out.String(), "[0,3)")
}

func TestRunVersion(t *testing.T) {
	var out bytes.Buffer
	versionCmd.SetOut(&out)
	require.NoError(t, runVersion(versionCmd, nil))
	assert.Contains(t, out.String(), "spectra v")
}
