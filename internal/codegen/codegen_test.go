package codegen

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/tangzhangming/codedom/internal/ast"
	"github.com/tangzhangming/codedom/internal/errors"
	"github.com/tangzhangming/codedom/internal/render"
)

func simpleUnit() *ast.CompileUnit {
	return ast.NewUnit("", ast.NewClass("C",
		ast.NewField("x", ast.TypeNamed(ast.TypeInt32), ast.AccessPublic)))
}

func TestSimpleFieldBothProfiles(t *testing.T) {
	tests := []struct {
		id   ProfileID
		want string
	}{
		{CSharp, "class C {\n    public int x;\n}\n"},
		{VB, "Option Strict Off\nOption Explicit On\n\nClass C\n    Public x As Integer\nEnd Class\n"},
	}
	for _, tt := range tests {
		got, err := RenderString(simpleUnit(), tt.id, nil)
		require.NoError(t, err)
		require.Equal(t, tt.want, got, "profile %s", tt.id)
	}
}

func TestUnknownProfile(t *testing.T) {
	_, err := RenderString(simpleUnit(), ProfileID("cobol"), nil)
	require.Error(t, err)
	require.Equal(t, errors.G0204, errors.CodeOf(err))

	_, err = ParseProfileID("cobol")
	require.Equal(t, errors.G0204, errors.CodeOf(err))
}

func TestParseProfileID(t *testing.T) {
	for name, want := range map[string]ProfileID{
		"csharp":      CSharp,
		"CSharp":      CSharp,
		"c#":          CSharp,
		" vb ":        VB,
		"VisualBasic": VB,
		"vb.net":      VB,
	} {
		id, err := ParseProfileID(name)
		require.NoError(t, err, name)
		require.Equal(t, want, id, name)
	}
}

func TestProfiles(t *testing.T) {
	require.Equal(t, []ProfileID{CSharp, VB}, Profiles())
}

func TestRenderTo(t *testing.T) {
	var buf bytes.Buffer
	opts := render.DefaultOptions()
	opts.IndentUnit = "\t"
	require.NoError(t, New(nil).RenderTo(&buf, simpleUnit(), CSharp, opts))
	require.Equal(t, "class C {\n\tpublic int x;\n}\n", buf.String())
}

func TestStrictPropagates(t *testing.T) {
	enum := ast.NewEnum("Color", "Red")
	enum.Members = append(enum.Members, ast.NewMethod("Paint", nil, ast.AccessPublic))
	unit := ast.NewUnit("", enum)

	opts := render.DefaultOptions()
	opts.Strict = true
	for _, id := range Profiles() {
		_, err := RenderString(unit, id, opts)
		require.True(t, errors.IsConsistency(err), "profile %s: %v", id, err)
	}
}
