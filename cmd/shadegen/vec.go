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

import "fmt"

// family is a vector element domain: the numeric vectors Vec1..4[T] or the
// boolean vectors Bool1..4.
type family struct {
	vec    func(n int) string    // type expression of a width-n vector
	mat    func(r, c int) string // type expression of an r x c matrix
	elem   string                // element type expression
	tparam string                // type parameter list of package functions
	ctor   string                // constructor prefix
	splat  string                // broadcast constructor prefix
}

var numeric = family{
	vec:    func(n int) string { return vecName(n) + "[T]" },
	mat:    func(r, c int) string { return matName(r, c) + "[T]" },
	elem:   "T",
	tparam: "[T Number]",
	ctor:   "New",
	splat:  "Splat",
}

var boolean = family{
	vec:    boolName,
	mat:    boolMatName,
	elem:   "bool",
	tparam: "",
	ctor:   "NewBool",
	splat:  "SplatBool",
}

// binaryOp is a component-wise operator method backed by a kernel in ops.go.
type binaryOp struct {
	name, kernel, doc string
}

var arithmeticOps = []binaryOp{
	{"Add", "add", "a + b"},
	{"Sub", "sub", "a - b"},
	{"Mul", "mul", "a * b"},
	{"Div", "div", "a / b"},
	{"Mod", "mod", "a % b"},
	{"Min", "minOf", "min(a, b)"},
	{"Max", "maxOf", "max(a, b)"},
}

var unaryOps = []binaryOp{
	{"Neg", "neg", "-a"},
	{"Abs", "abs", "|a|"},
}

var scalarOps = []binaryOp{
	{"AddScalar", "addScalar", "a + s"},
	{"SubScalar", "subScalar", "a - s"},
	{"MulScalar", "mulScalar", "a * s"},
	{"DivScalar", "divScalar", "a / s"},
	{"ModScalar", "modScalar", "a % s"},
}

var comparisonOps = []binaryOp{
	{"Equal", "equal", "a == b"},
	{"NotEqual", "notEqual", "a != b"},
	{"LessThan", "lessThan", "a < b"},
	{"LessEqual", "lessEqual", "a <= b"},
	{"GreaterThan", "greaterThan", "a > b"},
	{"GreaterEqual", "greaterEqual", "a >= b"},
}

var logicOps = []binaryOp{
	{"And", "and", "a && b"},
	{"Or", "or", "a || b"},
	{"Xor", "xor", "a != b"},
	{"Equal", "equal", "a == b"},
	{"NotEqual", "notEqual", "a != b"},
}

func emitVectors(w *writer) {
	for n := 1; n <= 4; n++ {
		emitVecStorage(w, numeric, n)
		emitVecAccessors(w, numeric, n)
		emitVecOps(w, n)
		emitVecConversions(w, n)
	}
}

// emitVecStorage writes constructors, Shape, and the reinterpretations.
func emitVecStorage(w *writer, f family, n int) {
	typ := f.vec(n)
	w.printf("// %s%d returns the vector (%s).\n", f.ctor, n, params(n))
	w.printf("func %s%d%s(%s %s) %s {\n", f.ctor, n, f.tparam, params(n), f.elem, typ)
	w.printf("\treturn %s{%s}\n", typ, params(n))
	w.printf("}\n\n")

	w.printf("// %s%d returns a vector with every component set to s.\n", f.splat, n)
	w.printf("func %s%d%s(s %s) (v %s) {\n", f.splat, n, f.tparam, f.elem, typ)
	w.printf("\tsplat(v[:], s)\n")
	w.printf("\treturn\n")
	w.printf("}\n\n")

	w.printf("// Shape returns (1, %d): a vector is a single row.\n", n)
	w.printf("func (v %s) Shape() (rows, cols int) { return 1, %d }\n\n", typ, n)

	if n == 1 {
		w.printf("// Scalar returns the only component.\n")
		w.printf("func (v %s) Scalar() %s { return v[0] }\n\n", typ, f.elem)
	}

	w.printf("// Mat returns v as a 1x%d matrix.\n", n)
	w.printf("func (v %s) Mat() %s { return %s{v} }\n\n", typ, f.mat(1, n), f.mat(1, n))

	w.printf("// Column returns v as a %dx1 matrix.\n", n)
	w.printf("func (v %s) Column() (m %s) {\n", typ, f.mat(n, 1))
	w.printf("\tcopy(flat[%s](&m), v[:])\n", f.elem)
	w.printf("\treturn\n")
	w.printf("}\n\n")

	for k := 1; k < n; k++ {
		w.printf("// View%d returns the leading %d components of v as a %s aliasing v.\n", k, k, f.vec(k))
		w.printf("func (v *%s) View%d() *%s { return (*%s)(unsafe.Pointer(v)) }\n\n", typ, k, f.vec(k), f.vec(k))

		w.printf("// Truncate%d returns a copy of the leading %d components of v.\n", k, k)
		w.printf("func (v %s) Truncate%d() (out %s) {\n", typ, k, f.vec(k))
		w.printf("\tcopy(out[:], v[:])\n")
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}
}

// emitVecAccessors writes named component accessors, indexed access and
// the swizzle accessors.
func emitVecAccessors(w *writer, f family, n int) {
	typ := f.vec(n)
	for _, a := range alphabets {
		for i := 0; i < n; i++ {
			letter := a.letters[i : i+1]
			name := title.String(letter)
			w.printf("// %s returns component %d.\n", name, i)
			w.printf("func (v %s) %s() %s { return v[%d] }\n\n", typ, name, f.elem, i)
			w.printf("// Set%s sets component %d.\n", name, i)
			w.printf("func (v *%s) Set%s(%s %s) { v[%d] = %s }\n\n", typ, name, letter, f.elem, i, letter)
		}
	}

	w.printf("// At returns component i, or an error matching ErrIndexOutOfRange.\n")
	w.printf("func (v %s) At(i int) (%s, error) { return at(v[:], i) }\n\n", typ, f.elem)
	w.printf("// SetAt sets component i, or returns an error matching ErrIndexOutOfRange.\n")
	w.printf("func (v *%s) SetAt(i int, x %s) error { return setAt(v[:], i, x) }\n\n", typ, f.elem)

	for l := 1; l <= 4; l++ {
		if l == 1 {
			w.printf("// Swizzle1 returns the component selected by p.\n")
			w.printf("func (v %s) Swizzle1(p Pattern[W%d, W1]) (out %s) {\n", typ, n, f.elem)
			w.printf("\tgather(flat[%s](&out), v[:], p.sw)\n", f.elem)
		} else {
			w.printf("// Swizzle%d returns the components selected by p, in order.\n", l)
			w.printf("func (v %s) Swizzle%d(p Pattern[W%d, W%d]) (out %s) {\n", typ, l, n, l, f.vec(l))
			w.printf("\tgather(out[:], v[:], p.sw)\n")
		}
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}

	// A writable pattern never selects more components than the source has.
	for l := 1; l <= n; l++ {
		if l == 1 {
			w.printf("// SetSwizzle1 stores x into the component selected by p.\n")
			w.printf("func (v *%s) SetSwizzle1(p WritablePattern[W%d, W1], x %s) {\n", typ, n, f.elem)
			w.printf("\tscatter(v[:], flat[%s](&x), p.p.sw)\n", f.elem)
		} else {
			w.printf("// SetSwizzle%d stores x[k] into the k-th component selected by p.\n", l)
			w.printf("func (v *%s) SetSwizzle%d(p WritablePattern[W%d, W%d], x %s) {\n", typ, l, n, l, f.vec(l))
			w.printf("\tscatter(v[:], x[:], p.p.sw)\n")
		}
		w.printf("}\n\n")
	}
}

// emitVecOps writes the numeric operator methods of VecN[T].
func emitVecOps(w *writer, n int) {
	typ := numeric.vec(n)
	for _, op := range arithmeticOps {
		w.printf("// %s returns %s component-wise.\n", op.name, op.doc)
		w.printf("func (a %s) %s(b %s) (out %s) {\n", typ, op.name, typ, typ)
		w.printf("\t%s(out[:], a[:], b[:])\n", op.kernel)
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}
	for _, op := range unaryOps {
		w.printf("// %s returns %s component-wise.\n", op.name, op.doc)
		w.printf("func (a %s) %s() (out %s) {\n", typ, op.name, typ)
		w.printf("\t%s(out[:], a[:])\n", op.kernel)
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}
	for _, op := range scalarOps {
		w.printf("// %s returns %s with s broadcast to every component.\n", op.name, op.doc)
		w.printf("func (a %s) %s(s T) (out %s) {\n", typ, op.name, typ)
		w.printf("\t%s(out[:], a[:], s)\n", op.kernel)
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}
	for _, op := range comparisonOps {
		w.printf("// %s returns %s component-wise.\n", op.name, op.doc)
		w.printf("func (a %s) %s(b %s) (out %s) {\n", typ, op.name, typ, boolName(n))
		w.printf("\t%s(out[:], a[:], b[:])\n", op.kernel)
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}

	w.printf("// NotZero reports per component whether a is non-zero.\n")
	w.printf("func (a %s) NotZero() (out %s) {\n", typ, boolName(n))
	w.printf("\tnotZero(out[:], a[:])\n")
	w.printf("\treturn\n")
	w.printf("}\n\n")

	w.printf("// Dot returns the dot product of a and b.\n")
	w.printf("func (a %s) Dot(b %s) T { return dot(a[:], b[:]) }\n\n", typ, typ)

	w.printf("// ReduceSum returns the sum of the components of a.\n")
	w.printf("func (a %s) ReduceSum() T { return reduceSum(a[:]) }\n\n", typ)
}

// emitVecConversions writes the element-type conversions and select.
func emitVecConversions(w *writer, n int) {
	v := vecName(n)
	w.printf("// Convert%d converts each component of v to To. Float to integer truncates toward zero.\n", n)
	w.printf("func Convert%d[To, From Number](v %s[From]) (out %s[To]) {\n", n, v, v)
	w.printf("\tconvert(out[:], v[:])\n")
	w.printf("\treturn\n")
	w.printf("}\n\n")

	w.printf("// Promote%d converts each component of v to float64, which is exact for every element type.\n", n)
	w.printf("func Promote%d[T Number](v %s[T]) (out %s[float64]) {\n", n, v, v)
	w.printf("\tconvert(out[:], v[:])\n")
	w.printf("\treturn\n")
	w.printf("}\n\n")

	w.printf("// Demote%d rounds each component of v to float32.\n", n)
	w.printf("func Demote%d(v %s[float64]) (out %s[float32]) {\n", n, v, v)
	w.printf("\tconvert(out[:], v[:])\n")
	w.printf("\treturn\n")
	w.printf("}\n\n")

	w.printf("// FromBool%d converts true to 1 and false to 0.\n", n)
	w.printf("func FromBool%d[T Number](b %s) (out %s[T]) {\n", n, boolName(n), v)
	w.printf("\tfromBool(out[:], b[:])\n")
	w.printf("\treturn\n")
	w.printf("}\n\n")

	w.printf("// IfThenElse%d returns yes where mask is true and no elsewhere.\n", n)
	w.printf("func IfThenElse%d[T Number](mask %s, yes, no %s[T]) (out %s[T]) {\n", n, boolName(n), v, v)
	w.printf("\tifThenElse(out[:], mask[:], yes[:], no[:])\n")
	w.printf("\treturn\n")
	w.printf("}\n\n")
}

func emitBools(w *writer) {
	for n := 1; n <= 4; n++ {
		emitVecStorage(w, boolean, n)
		emitVecAccessors(w, boolean, n)
		emitBoolOps(w, boolName(n), "out[:]", func(v string) string { return v + "[:]" })
	}
	for r := 1; r <= 4; r++ {
		for c := 1; c <= 4; c++ {
			emitBoolMatrix(w, r, c)
		}
	}
}

// emitBoolOps writes the logic methods shared by boolean vectors and
// matrices. dst and src render the flat component slices.
func emitBoolOps(w *writer, typ, dst string, src func(v string) string) {
	for _, op := range logicOps {
		w.printf("// %s returns %s component-wise.\n", op.name, op.doc)
		w.printf("func (a %s) %s(b %s) (out %s) {\n", typ, op.name, typ, typ)
		w.printf("\t%s(%s, %s, %s)\n", op.kernel, dst, src("a"), src("b"))
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}

	w.printf("// Not returns !a component-wise.\n")
	w.printf("func (a %s) Not() (out %s) {\n", typ, typ)
	w.printf("\tnot(%s, %s)\n", dst, src("a"))
	w.printf("\treturn\n")
	w.printf("}\n\n")

	w.printf("// All reports whether every component is true.\n")
	w.printf("func (a %s) All() bool { return allTrue(%s) }\n\n", typ, src("a"))

	w.printf("// Any reports whether at least one component is true.\n")
	w.printf("func (a %s) Any() bool { return anyTrue(%s) }\n\n", typ, src("a"))

	w.printf("// CountTrue returns the number of true components.\n")
	w.printf("func (a %s) CountTrue() int { return countTrue(%s) }\n\n", typ, src("a"))
}

func emitBoolMatrix(w *writer, r, c int) {
	typ := boolMatName(r, c)
	w.printf("// %s is a %dx%d boolean matrix stored as %d rows of %s.\n", typ, r, c, r, boolName(c))
	w.printf("type %s [%d]%s\n\n", typ, r, boolName(c))

	w.printf("// Shape returns (%d, %d).\n", r, c)
	w.printf("func (m %s) Shape() (rows, cols int) { return %d, %d }\n\n", typ, r, c)

	if r == 1 {
		w.printf("// Vec returns the single row of m.\n")
		w.printf("func (m %s) Vec() %s { return m[0] }\n\n", typ, boolName(c))
	}
	if c == 1 {
		w.printf("// Col returns the single column of m.\n")
		w.printf("func (m %s) Col() (v %s) {\n", typ, boolName(r))
		w.printf("\tcopy(v[:], flat[bool](&m))\n")
		w.printf("\treturn\n")
		w.printf("}\n\n")
	}

	emitBoolOps(w, typ, "flat[bool](&out)", func(v string) string {
		return fmt.Sprintf("flat[bool](&%s)", v)
	})
}
