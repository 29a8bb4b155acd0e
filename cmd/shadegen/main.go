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

// Command shadegen generates the per-width and per-shape surface of package
// shade from the generic kernels in shade/ops.go and shade/swizzle.go.
//
// Usage:
//
//	shadegen -output ./shade
//	shadegen -output ./shade -files mat_gen.go,matmul_gen.go
//
// Or via go:generate (see shade/generate.go):
//
//	//go:generate go run ../cmd/shadegen -output .
//
// The generator produces:
//  1. vec_gen.go: Vec1..Vec4 constructors, named and swizzle accessors,
//     views, component-wise operators and conversions
//  2. bool_gen.go: the same for Bool1..Bool4 plus boolean matrices
//  3. mat_gen.go: Mat1x1..Mat4x4 types, constructors and component-wise operators
//  4. matmul_gen.go: one product method per (rows, inner, cols) shape
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	outputDir  = flag.String("output", ".", "Output directory (default: current directory)")
	packageOut = flag.String("pkg", "shade", "Output package name")
	fileList   = flag.String("files", "all", "Comma-separated files ("+strings.Join(FileNames(), ",")+") or 'all'")
)

func main() {
	flag.Parse()

	names := parseFiles(*fileList)
	if len(names) == 0 {
		fmt.Fprintf(os.Stderr, "Error: no files specified\n")
		os.Exit(1)
	}

	gen := &Generator{
		OutputDir: *outputDir,
		Package:   *packageOut,
		Files:     names,
	}

	if err := gen.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("Successfully generated: %s\n", strings.Join(names, ", "))
}

func parseFiles(s string) []string {
	parts := strings.Split(s, ",")
	var result []string
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	if len(result) == 1 && result[0] == "all" {
		return FileNames()
	}
	return result
}
