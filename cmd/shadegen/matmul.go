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

// emitMatMul writes one product method per (rows, inner, cols) shape and
// the table describing them. The receiver fixes rows and inner, the method
// name fixes inner and cols, so an operand with the wrong inner dimension
// has no method to call.
func emitMatMul(w *writer) {
	var table []shapeEntry

	for a := 1; a <= 4; a++ {
		for k := 1; k <= 4; k++ {
			left := matName(a, k)
			for b := 1; b <= 4; b++ {
				right := matName(k, b)
				method := "Mul" + right
				w.printf("// %s returns the matrix product m × n.\n", method)
				w.printf("func (m %s[T]) %s(n %s[T]) (out %s) {\n", left, method, right, productType(a, b))
				w.printf("\tmatMul(flat[T](&out), flat[T](&m), flat[T](&n), %d, %d, %d)\n", a, k, b)
				w.printf("\treturn\n")
				w.printf("}\n\n")
				table = append(table, shapeEntry{left, right, method, productKind(a, b), a, k, b})
			}

			w.printf("// MulVec returns the product m × v with v as a column vector.\n")
			w.printf("func (m %s[T]) MulVec(v %s[T]) (out %s) {\n", left, vecName(k), productType(a, 1))
			w.printf("\tmatMul(flat[T](&out), flat[T](&m), v[:], %d, %d, 1)\n", a, k)
			w.printf("\treturn\n")
			w.printf("}\n\n")
		}
	}

	for k := 1; k <= 4; k++ {
		left := vecName(k)
		for b := 1; b <= 4; b++ {
			right := matName(k, b)
			method := "Mul" + right
			w.printf("// %s returns the product v × n with v as a row vector.\n", method)
			w.printf("func (v %s[T]) %s(n %s[T]) (out %s) {\n", left, method, right, productType(1, b))
			w.printf("\tmatMul(flat[T](&out), v[:], flat[T](&n), 1, %d, %d)\n", k, b)
			w.printf("\treturn\n")
			w.printf("}\n\n")
			table = append(table, shapeEntry{left, right, method, productKind(1, b), 1, k, b})
		}
	}

	for a := 1; a <= 4; a++ {
		for k := 1; k <= 4; k++ {
			table = append(table, shapeEntry{matName(a, k), vecName(k), "MulVec", productKind(a, 1), a, k, 1})
		}
	}

	w.printf("var matMulShapes = []MatMulShape{\n")
	for _, e := range table {
		w.printf("\t{Left: %q, Right: %q, Method: %q, Result: %q, Rows: %d, Inner: %d, Cols: %d},\n",
			e.left, e.right, e.method, e.result, e.rows, e.inner, e.cols)
	}
	w.printf("}\n")
}

type shapeEntry struct {
	left, right, method, result string
	rows, inner, cols           int
}
