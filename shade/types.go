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

// Package shade provides fixed-size vector and matrix primitives modeled on
// shading-language algebra (HLSL/GLSL).
//
// Vectors have 1 to 4 components of a scalar element type and matrices are
// 1 to 4 rows of such vectors. Components are addressed by position
// (x, y, z, w) or by color alias (r, g, b, a), and by swizzles: arbitrary
// reordered or repeated selections such as "zyx", "xx" or "bgra".
//
// Basic usage:
//
//	import "github.com/ajroetker/go-shade/shade"
//
//	v := shade.New4[float32](1, 2, 3, 4)
//	wx := shade.MustParse[shade.W4, shade.W2]("wx")
//
//	// Read a swizzle (a snapshot copy).
//	fmt.Println(v.Swizzle2(wx)) // [4 1]
//
//	// Write through a swizzle with distinct components.
//	if w, ok := wx.Writable(); ok {
//		v.SetSwizzle2(w, shade.New2[float32](9, 8)) // v == [8 2 3 9]
//	}
//
// Comparisons are component-wise and return boolean vectors, never a single
// bool. Matrix products are methods named after the right operand's shape
// (m.MulMat3x4(n)), so mismatched inner dimensions do not compile.
//
// Everything here runs on the host. Members that only have meaning inside a
// compute kernel live in package intrinsics and fail with
// ErrInvalidExecutionContext when called on the host.
package shade

// Floats is a constraint for floating-point element types.
type Floats interface {
	~float32 | ~float64
}

// SignedInts is a constraint for signed integer element types.
type SignedInts interface {
	~int32
}

// UnsignedInts is a constraint for unsigned integer element types.
type UnsignedInts interface {
	~uint32
}

// Integers is a constraint for all integer element types.
type Integers interface {
	SignedInts | UnsignedInts
}

// Number is a constraint for element types that support arithmetic.
type Number interface {
	Floats | Integers
}

// Scalar is a constraint for every element type that can be stored in a
// vector component, including bool.
type Scalar interface {
	Number | ~bool
}

// Vec1 is a 1-component vector. Component i is stored at offset i*sizeof(T).
type Vec1[T Number] [1]T

// Vec2 is a 2-component vector. Component i is stored at offset i*sizeof(T).
type Vec2[T Number] [2]T

// Vec3 is a 3-component vector. Component i is stored at offset i*sizeof(T).
type Vec3[T Number] [3]T

// Vec4 is a 4-component vector. Component i is stored at offset i*sizeof(T).
type Vec4[T Number] [4]T

// Bool1 is a 1-component boolean vector.
type Bool1 [1]bool

// Bool2 is a 2-component boolean vector.
type Bool2 [2]bool

// Bool3 is a 3-component boolean vector.
type Bool3 [3]bool

// Bool4 is a 4-component boolean vector.
type Bool4 [4]bool
