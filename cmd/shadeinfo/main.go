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

// Command shadeinfo prints the tables a kernel compiler needs to recognize
// the shade surface: the swizzle accessor table, the matrix product shapes,
// the kernel-only member registry and the host target.
//
// Usage:
//
//	shadeinfo swizzles --width 3 --mutable
//	shadeinfo matmul --left Mat2x3
//	shadeinfo members --category wave --format json
//	shadeinfo host
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := NewRootCommand().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
