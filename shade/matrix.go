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

package shade

import "slices"

// MatMulShape describes one generated product method: Left.Method(Right)
// returns Result. Rows, Inner and Cols are the (A, K, B) of an
// (A x K) by (K x B) product. Result is "scalar" when A and B are both 1.
type MatMulShape struct {
	Left   string `json:"left" yaml:"left"`
	Right  string `json:"right" yaml:"right"`
	Method string `json:"method" yaml:"method"`
	Result string `json:"result" yaml:"result"`
	Rows   int    `json:"rows" yaml:"rows"`
	Inner  int    `json:"inner" yaml:"inner"`
	Cols   int    `json:"cols" yaml:"cols"`
}

// MatMulShapes returns every product method that exists, matrix by matrix
// first, then row vector by matrix, then matrix by column vector. A pair of
// operands absent from the table has no product.
func MatMulShapes() []MatMulShape {
	return slices.Clone(matMulShapes)
}
