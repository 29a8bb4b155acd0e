package main

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/ajroetker/go-shade/shade"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := &bytes.Buffer{}
	cmd := NewRootCommand()
	cmd.SetOut(buf)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return buf.String(), err
}

func TestSwizzlesYAML(t *testing.T) {
	out, err := execute(t, "swizzles", "--width", "2")
	require.NoError(t, err)

	var table SwizzleTable
	require.NoError(t, yaml.Unmarshal([]byte(out), &table))
	assert.Equal(t, 2, table.Width)
	assert.Equal(t, shade.TableSize(2), table.Count)
	require.Len(t, table.Accessors, shade.TableSize(2))
	assert.Equal(t, SwizzleRow{Name: "x", Alphabet: "positional", Indices: []int{0}, Mutable: true}, table.Accessors[0])
}

func TestSwizzlesFilters(t *testing.T) {
	out, err := execute(t, "swizzles", "--width", "2", "--alphabet", "color", "--mutable", "--format", "json")
	require.NoError(t, err)

	var table SwizzleTable
	require.NoError(t, json.Unmarshal([]byte(out), &table))
	// r, g, rg, gr
	require.Equal(t, 4, table.Count)
	names := make([]string, 0, table.Count)
	for _, row := range table.Accessors {
		assert.Equal(t, "color", row.Alphabet)
		assert.True(t, row.Mutable)
		names = append(names, row.Name)
	}
	assert.Equal(t, []string{"r", "g", "rg", "gr"}, names)
}

func TestSwizzlesInvalidFlags(t *testing.T) {
	_, err := execute(t, "swizzles", "--width", "5")
	assert.ErrorContains(t, err, "invalid width 5")

	_, err = execute(t, "swizzles", "--alphabet", "hsv")
	assert.ErrorContains(t, err, `invalid alphabet "hsv"`)
}

func TestMatMul(t *testing.T) {
	out, err := execute(t, "matmul", "--left", "Vec3", "--format", "json")
	require.NoError(t, err)

	var shapes []shade.MatMulShape
	require.NoError(t, json.Unmarshal([]byte(out), &shapes))
	require.Len(t, shapes, 4)
	for _, s := range shapes {
		assert.Equal(t, "Vec3", s.Left)
		assert.Equal(t, 3, s.Inner)
	}
	assert.Equal(t, shade.MatMulShape{
		Left: "Vec3", Right: "Mat3x3", Method: "MulMat3x3", Result: "Vec3", Rows: 1, Inner: 3, Cols: 3,
	}, shapes[2])
}

func TestMatMulUnknownPairIsEmpty(t *testing.T) {
	out, err := execute(t, "matmul", "--left", "Vec3", "--right", "Mat4x4", "--format", "json")
	require.NoError(t, err)

	var shapes []shade.MatMulShape
	require.NoError(t, json.Unmarshal([]byte(out), &shapes))
	assert.Empty(t, shapes)
}

func TestMembers(t *testing.T) {
	out, err := execute(t, "members", "--category", "quad")
	require.NoError(t, err)

	var rows []MemberRow
	require.NoError(t, yaml.Unmarshal([]byte(out), &rows))
	require.Len(t, rows, 3)
	for _, r := range rows {
		assert.Equal(t, "quad", r.Category)
		assert.Equal(t, "kernel-only", r.Validity)
	}
	assert.Equal(t, "intrinsics.QuadReadAcrossDiagonal", rows[0].Name)
}

func TestHost(t *testing.T) {
	t.Setenv("SHADE_HOST_SCALAR", "")
	out, err := execute(t, "host", "--format", "json")
	require.NoError(t, err)

	var info HostInfo
	require.NoError(t, json.Unmarshal([]byte(out), &info))
	assert.Equal(t, "host", info.Context)
	assert.NotEmpty(t, info.Arch)
	assert.NotEmpty(t, info.Target)
	assert.False(t, info.ScalarEnv)
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "host", "--format", "xml")
	assert.ErrorContains(t, err, `invalid format "xml"`)
}
