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

func emitMatrices(w *writer) {
	for r := 1; r <= 4; r++ {
		for c := 1; c <= 4; c++ {
			emitMatrix(w, r, c)
		}
	}
	for n := 1; n <= 4; n++ {
		w.printf("// Identity%d returns the %dx%d identity matrix.\n", n, n, n)
		w.printf("func Identity%d[T Number]() (m %s[T]) {\n", n, matName(n, n))
		w.printf("\tfor i := range m {\n")
		w.printf("\t\tm[i][i] = 1\n")
		w.printf("\t}\n")
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}
}

func emitMatrix(w *writer, r, c int) {
	name := matName(r, c)
	typ := name + "[T]"
	row := vecName(c) + "[T]"
	flatOut := "flat[T](&out)"

	w.printf("// %s is a %dx%d matrix stored row-major as %d rows of %s.\n", name, r, c, r, vecName(c))
	w.printf("type %s[T Number] [%d]%s\n\n", name, r, row)

	w.printf("// New%s returns the matrix with rows %s.\n", name, rowParams(r))
	w.printf("func New%s[T Number](%s %s) %s {\n", name, rowParams(r), row, typ)
	w.printf("\treturn %s{%s}\n", typ, rowParams(r))
	w.printf("}\n\n")

	w.printf("// Splat%s returns a %s with every component set to s.\n", name, name)
	w.printf("func Splat%s[T Number](s T) (m %s) {\n", name, typ)
	w.printf("\tsplat(flat[T](&m), s)\n")
	w.printf("\treturn\n")
	w.printf("}\n\n")

	w.printf("// Shape returns (%d, %d).\n", r, c)
	w.printf("func (m %s) Shape() (rows, cols int) { return %d, %d }\n\n", typ, r, c)

	w.printf("// At returns component (row, col), or an error matching ErrIndexOutOfRange.\n")
	w.printf("func (m %s) At(row, col int) (T, error) { return atRC(flat[T](&m), %d, row, col) }\n\n", typ, c)
	w.printf("// SetAt sets component (row, col), or returns an error matching ErrIndexOutOfRange.\n")
	w.printf("func (m *%s) SetAt(row, col int, x T) error { return setAtRC(flat[T](m), %d, row, col, x) }\n\n", typ, c)

	if r == 1 {
		w.printf("// Vec returns the single row of m.\n")
		w.printf("func (m %s) Vec() %s { return m[0] }\n\n", typ, row)
	}
	if c == 1 {
		w.printf("// Col returns the single column of m.\n")
		w.printf("func (m %s) Col() (v %s[T]) {\n", typ, vecName(r))
		w.printf("\tcopy(v[:], flat[T](&m))\n")
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}

	w.printf("// Transpose returns the %dx%d transpose of m.\n", c, r)
	w.printf("func (m %s) Transpose() (out %s[T]) {\n", typ, matName(c, r))
	w.printf("\ttranspose(%s, flat[T](&m), %d, %d)\n", flatOut, r, c)
	w.printf("\treturn\n")
	w.printf("}\n\n")

	for _, op := range arithmeticOps {
		w.printf("// %s returns %s component-wise.\n", op.name, op.doc)
		w.printf("func (a %s) %s(b %s) (out %s) {\n", typ, op.name, typ, typ)
		w.printf("\t%s(%s, flat[T](&a), flat[T](&b))\n", op.kernel, flatOut)
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}
	for _, op := range unaryOps {
		w.printf("// %s returns %s component-wise.\n", op.name, op.doc)
		w.printf("func (a %s) %s() (out %s) {\n", typ, op.name, typ)
		w.printf("\t%s(%s, flat[T](&a))\n", op.kernel, flatOut)
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}
	for _, op := range scalarOps {
		w.printf("// %s returns %s with s broadcast to every component.\n", op.name, op.doc)
		w.printf("func (a %s) %s(s T) (out %s) {\n", typ, op.name, typ)
		w.printf("\t%s(%s, flat[T](&a), s)\n", op.kernel, flatOut)
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}
	for _, op := range comparisonOps {
		w.printf("// %s returns %s component-wise.\n", op.name, op.doc)
		w.printf("func (a %s) %s(b %s) (out %s) {\n", typ, op.name, typ, boolMatName(r, c))
		w.printf("\t%s(flat[bool](&out), flat[T](&a), flat[T](&b))\n", op.kernel)
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}

	w.printf("// Convert%s converts each component of m to To. Float to integer truncates toward zero.\n", name)
	w.printf("func Convert%s[To, From Number](m %s[From]) (out %s[To]) {\n", name, name, name)
	w.printf("\tconvert(flat[To](&out), flat[From](&m))\n")
	w.printf("\treturn\n")
	w.printf("}\n\n")

	w.printf("// FromBool%s converts true to 1 and false to 0.\n", name)
	w.printf("func FromBool%s[T Number](b %s) (out %s) {\n", name, boolMatName(r, c), typ)
	w.printf("\tfromBool(%s, flat[bool](&b))\n", flatOut)
	w.printf("\treturn\n")
	w.printf("}\n\n")
}
