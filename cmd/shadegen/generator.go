// Copyright 2025 go-shade Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
	"golang.org/x/tools/imports"
)

// Generator writes the generated files of package shade.
type Generator struct {
	OutputDir string
	Package   string
	Files     []string // subset of FileNames()
}

// genFile describes one generated file.
type genFile struct {
	name    string
	imports []string
	emit    func(w *writer)
}

var genFiles = []genFile{
	{name: "vec_gen.go", imports: []string{"unsafe"}, emit: emitVectors},
	{name: "bool_gen.go", imports: []string{"unsafe"}, emit: emitBools},
	{name: "mat_gen.go", emit: emitMatrices},
	{name: "matmul_gen.go", emit: emitMatMul},
}

// FileNames returns the names of all files the generator can produce.
func FileNames() []string {
	names := make([]string, len(genFiles))
	for i, f := range genFiles {
		names[i] = f.name
	}
	return names
}

// Run generates every requested file into OutputDir.
func (g *Generator) Run() error {
	if err := os.MkdirAll(g.OutputDir, 0o755); err != nil {
		return fmt.Errorf("create output dir: %w", err)
	}
	for _, name := range g.Files {
		src, err := g.Generate(name)
		if err != nil {
			return err
		}
		path := filepath.Join(g.OutputDir, name)
		if err := os.WriteFile(path, src, 0644); err != nil {
			return fmt.Errorf("write %s: %w", name, err)
		}
	}
	return nil
}

// Generate returns the formatted source of one generated file.
func (g *Generator) Generate(name string) ([]byte, error) {
	var f *genFile
	for i := range genFiles {
		if genFiles[i].name == name {
			f = &genFiles[i]
		}
	}
	if f == nil {
		return nil, fmt.Errorf("unknown file %q (available: %v)", name, FileNames())
	}

	w := &writer{}
	w.printf("// Code generated by shadegen. DO NOT EDIT.\n\n")
	w.printf("package %s\n\n", g.Package)
	if len(f.imports) > 0 {
		w.printf("import (\n")
		for _, imp := range f.imports {
			w.printf("\t%q\n", imp)
		}
		w.printf(")\n\n")
	}
	f.emit(w)

	formatted, err := imports.Process(name, w.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("format %s: %w", name, err)
	}
	return formatted, nil
}

type writer struct {
	bytes.Buffer
}

func (w *writer) printf(format string, args ...any) {
	fmt.Fprintf(&w.Buffer, format, args...)
}

// title turns a component letter into its accessor name ("x" -> "X").
var title = cases.Title(language.Und)

// alphabets are the component naming schemes; both share index space.
var alphabets = []struct {
	name    string
	letters string
}{
	{"positional", "xyzw"},
	{"color", "rgba"},
}

func vecName(n int) string        { return fmt.Sprintf("Vec%d", n) }
func boolName(n int) string       { return fmt.Sprintf("Bool%d", n) }
func matName(r, c int) string     { return fmt.Sprintf("Mat%dx%d", r, c) }
func boolMatName(r, c int) string { return fmt.Sprintf("Bool%dx%d", r, c) }

// productKind returns the collapsed result of an (a x b) product: a scalar
// when both are 1, a vector when either is 1, a matrix otherwise.
func productKind(a, b int) string {
	switch {
	case a == 1 && b == 1:
		return "scalar"
	case a == 1:
		return vecName(b)
	case b == 1:
		return vecName(a)
	default:
		return matName(a, b)
	}
}

// productType is productKind as a Go type expression.
func productType(a, b int) string {
	if k := productKind(a, b); k != "scalar" {
		return k + "[T]"
	}
	return "T"
}

// params returns "x, y, z" style parameter names for n components.
func params(n int) string {
	var b bytes.Buffer
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		b.WriteByte("xyzw"[i])
	}
	return b.String()
}

// rowParams returns "r0, r1" style parameter names for n rows.
func rowParams(n int) string {
	var b bytes.Buffer
	for i := 0; i < n; i++ {
		if i > 0 {
			b.WriteString(", ")
		}
		fmt.Fprintf(&b, "r%d", i)
	}
	return b.String()
}
