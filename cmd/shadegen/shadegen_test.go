package main

import (
	"go/ast"
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
)

// declNames returns "Recv.Name", "Name" or "type Name" for every top-level
// declaration of src.
func declNames(t *testing.T, name string, src []byte) []string {
	t.Helper()
	f, err := parser.ParseFile(token.NewFileSet(), name, src, parser.SkipObjectResolution)
	if err != nil {
		t.Fatalf("parse %s: %v", name, err)
	}
	var names []string
	for _, decl := range f.Decls {
		switch d := decl.(type) {
		case *ast.FuncDecl:
			if d.Recv != nil {
				names = append(names, recvName(d.Recv.List[0].Type)+"."+d.Name.Name)
			} else {
				names = append(names, d.Name.Name)
			}
		case *ast.GenDecl:
			for _, spec := range d.Specs {
				switch s := spec.(type) {
				case *ast.TypeSpec:
					names = append(names, "type "+s.Name.Name)
				case *ast.ValueSpec:
					for _, n := range s.Names {
						names = append(names, "var "+n.Name)
					}
				}
			}
		}
	}
	sort.Strings(names)
	return names
}

func recvName(expr ast.Expr) string {
	switch e := expr.(type) {
	case *ast.StarExpr:
		return recvName(e.X)
	case *ast.IndexExpr:
		return recvName(e.X)
	case *ast.Ident:
		return e.Name
	}
	return "?"
}

func TestGeneratedFilesUpToDate(t *testing.T) {
	g := &Generator{Package: "shade"}
	for _, name := range FileNames() {
		t.Run(name, func(t *testing.T) {
			want, err := g.Generate(name)
			if err != nil {
				t.Fatalf("Generate(%q): %v", name, err)
			}
			got, err := os.ReadFile(filepath.Join("..", "..", "shade", name))
			if err != nil {
				t.Fatalf("read checked-in file: %v", err)
			}
			if diff := cmp.Diff(declNames(t, name, want), declNames(t, name, got)); diff != "" {
				t.Errorf("%s is stale, run go generate ./shade (-generated +checked-in):\n%s", name, diff)
			}
		})
	}
}

func TestGenerateUnknownFile(t *testing.T) {
	g := &Generator{Package: "shade"}
	if _, err := g.Generate("nope.go"); err == nil || !strings.Contains(err.Error(), "unknown file") {
		t.Errorf("Generate(nope.go) error = %v, want unknown file", err)
	}
}

func TestGeneratedSurface(t *testing.T) {
	g := &Generator{Package: "shade"}

	tests := []struct {
		file    string
		present []string
		absent  []string
	}{
		{
			file:    "vec_gen.go",
			present: []string{"New4", "Splat3", "Vec4.View3", "Vec1.Scalar", "Vec2.SetSwizzle2", "Vec3.Swizzle4", "Vec1.Swizzle4", "Promote2", "IfThenElse4"},
			absent:  []string{"Vec2.SetSwizzle3", "Vec1.View1", "Vec2.Scalar"},
		},
		{
			file:    "bool_gen.go",
			present: []string{"NewBool3", "type Bool4x4", "Bool2.And", "Bool3x3.All", "Bool1x4.Vec", "Bool4x1.Col"},
			absent:  []string{"Bool2.Add", "Bool2.LessThan", "Bool2x2.Vec"},
		},
		{
			file:    "mat_gen.go",
			present: []string{"type Mat2x3", "NewMat4x4", "Mat3x2.Transpose", "Mat2x2.GreaterEqual", "Identity3", "ConvertMat1x4"},
			absent:  []string{"Identity2x3"},
		},
		{
			file:    "matmul_gen.go",
			present: []string{"Mat2x3.MulMat3x4", "Vec3.MulMat3x3", "Mat4x2.MulVec", "var matMulShapes"},
			absent:  []string{"Vec3.MulMat4x4", "Mat2x3.MulMat2x3"},
		},
	}
	for _, tt := range tests {
		t.Run(tt.file, func(t *testing.T) {
			src, err := g.Generate(tt.file)
			if err != nil {
				t.Fatal(err)
			}
			names := make(map[string]bool)
			for _, n := range declNames(t, tt.file, src) {
				names[n] = true
			}
			for _, n := range tt.present {
				if !names[n] {
					t.Errorf("missing %s", n)
				}
			}
			for _, n := range tt.absent {
				if names[n] {
					t.Errorf("unexpected %s", n)
				}
			}
		})
	}
}

func TestProductKind(t *testing.T) {
	tests := []struct {
		a, b int
		want string
	}{
		{1, 1, "scalar"},
		{1, 3, "Vec3"},
		{4, 1, "Vec4"},
		{2, 3, "Mat2x3"},
	}
	for _, tt := range tests {
		if got := productKind(tt.a, tt.b); got != tt.want {
			t.Errorf("productKind(%d, %d) = %q, want %q", tt.a, tt.b, got, tt.want)
		}
	}
	if got := productType(1, 1); got != "T" {
		t.Errorf("productType(1, 1) = %q, want T", got)
	}
}

func TestParseFiles(t *testing.T) {
	if diff := cmp.Diff(FileNames(), parseFiles("all")); diff != "" {
		t.Errorf("parseFiles(all) mismatch:\n%s", diff)
	}
	if diff := cmp.Diff([]string{"mat_gen.go", "matmul_gen.go"}, parseFiles(" mat_gen.go, matmul_gen.go ,")); diff != "" {
		t.Errorf("parseFiles mismatch:\n%s", diff)
	}
}
