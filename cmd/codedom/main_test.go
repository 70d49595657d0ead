package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

const simpleJSON = `{"types": [{"kind": "class", "name": "C", "members": [
	{"kind": "field", "name": "x", "access": "public", "type": "System.Int32"}
]}]}`

const badEnumJSON = `{"types": [{"kind": "enum", "name": "Color", "values": ["Red"], "members": [
	{"kind": "method", "name": "Paint", "access": "public"}
]}]}`

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	root := newRootCmd()
	root.SetOut(&stdout)
	root.SetErr(&stderr)
	root.SetArgs(append([]string{"--lang", "en"}, args...))
	err := root.Execute()
	return stdout.String(), stderr.String(), err
}

func TestRenderCommand(t *testing.T) {
	path := writeFile(t, "unit.json", simpleJSON)

	out, _, err := execute(t, "render", path)
	require.NoError(t, err)
	require.Equal(t, "class C {\n    public int x;\n}\n", out)

	out, _, err = execute(t, "render", "-p", "VB", "--indent", "\t", path)
	require.NoError(t, err)
	require.Equal(t, "Option Strict Off\nOption Explicit On\n\nClass C\n\tPublic x As Integer\nEnd Class\n", out)
}

func TestRenderToFile(t *testing.T) {
	path := writeFile(t, "unit.json", simpleJSON)
	target := filepath.Join(t.TempDir(), "C.cs")

	out, _, err := execute(t, "render", "-o", target, path)
	require.NoError(t, err)
	require.Empty(t, out)

	data, err := os.ReadFile(target)
	require.NoError(t, err)
	require.Equal(t, "class C {\n    public int x;\n}\n", string(data))
}

func TestUnknownProfileReported(t *testing.T) {
	path := writeFile(t, "unit.json", simpleJSON)

	_, stderr, err := execute(t, "render", "-p", "cobol", path)
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stderr, "error[G0204]")
	require.Contains(t, stderr, "codedom profiles")
}

func TestStrictFlag(t *testing.T) {
	path := writeFile(t, "unit.json", badEnumJSON)

	_, _, err := execute(t, "render", path)
	require.NoError(t, err)

	_, stderr, err := execute(t, "render", "--strict", path)
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stderr, "error[G0101]")
}

func TestCheckCommand(t *testing.T) {
	good := writeFile(t, "good.json", simpleJSON)
	out, _, err := execute(t, "check", good)
	require.NoError(t, err)
	require.Equal(t, good+": ok\n", out)

	bad := writeFile(t, "bad.json", badEnumJSON)
	_, stderr, err := execute(t, "check", bad)
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stderr, "error[G0101]")
	require.Contains(t, stderr, "error: found 1 error")
}

func TestDumpCommand(t *testing.T) {
	path := writeFile(t, "unit.json", simpleJSON)

	out, _, err := execute(t, "dump", path)
	require.NoError(t, err)
	require.Contains(t, out, "ast.CompileUnit")
	require.Contains(t, out, `"x"`)
}

func TestProfilesCommand(t *testing.T) {
	out, _, err := execute(t, "profiles")
	require.NoError(t, err)
	require.Equal(t, "csharp (default)\nvb\n", out)
}

func TestInitCommand(t *testing.T) {
	config := filepath.Join(t.TempDir(), "codedom.toml")

	out, _, err := execute(t, "init", "-c", config)
	require.NoError(t, err)
	require.Equal(t, "created "+config+"\n", out)

	_, _, err = execute(t, "init", "-c", config)
	require.EqualError(t, err, config+" already exists")

	_, _, err = execute(t, "init", "-c", config, "-f", "--strict")
	require.NoError(t, err)

	path := writeFile(t, "unit.json", badEnumJSON)
	_, stderr, err := execute(t, "render", "-c", config, path)
	require.ErrorIs(t, err, errReported)
	require.Contains(t, stderr, "error[G0101]")
}

func TestMissingInput(t *testing.T) {
	_, _, err := execute(t, "render", filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	require.NotErrorIs(t, err, errReported)
}
