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

import "unsafe"

// Layout rules:
//
//   - VecN[T] is [N]T. Component i lives at byte offset i*sizeof(T) and the
//     total size is N*sizeof(T). There is no padding.
//   - MatRxC[T] is [R]VecC[T], stored row-major, so component (r, c) lives
//     at offset (r*C+c)*sizeof(T).
//   - The first K components of any VecN[T] (K <= N) are layout-identical to
//     VecK[T], which is what the ViewK methods rely on.
//   - Mat1xC[T] is layout-identical to VecC[T], and MatRx1[T] to VecR[T].

// Shaped is the set of vector and matrix types with element type T.
type Shaped[T Number] interface {
	Vec1[T] | Vec2[T] | Vec3[T] | Vec4[T] |
		Mat1x1[T] | Mat1x2[T] | Mat1x3[T] | Mat1x4[T] |
		Mat2x1[T] | Mat2x2[T] | Mat2x3[T] | Mat2x4[T] |
		Mat3x1[T] | Mat3x2[T] | Mat3x3[T] | Mat3x4[T] |
		Mat4x1[T] | Mat4x2[T] | Mat4x3[T] | Mat4x4[T]

	// Shape returns (rows, columns). Vectors are single rows.
	Shape() (rows, cols int)
}

// Flat returns the components of *m as a slice in storage order, aliasing
// m. Writes through the slice modify m.
//
//	m := shade.Identity3[float32]()
//	f := shade.Flat[float32](&m) // len(f) == 9
func Flat[T Number, M Shaped[T]](m *M) []T {
	return flat[T](m)
}

// flat reinterprets *m as a slice of T. M must be T, a vector or matrix of
// T, or a boolean vector or matrix when T is bool.
func flat[T Scalar, M any](m *M) []T {
	var zero T
	n := int(unsafe.Sizeof(*m) / unsafe.Sizeof(zero))
	return unsafe.Slice((*T)(unsafe.Pointer(m)), n)
}

// Offset returns the byte offset of component i in a vector of T.
func Offset[T Scalar](i int) uintptr {
	var zero T
	return uintptr(i) * unsafe.Sizeof(zero)
}

// SizeOf returns the size in bytes of a vector or matrix value.
func SizeOf[T Number, M Shaped[T]](m M) uintptr {
	return unsafe.Sizeof(m)
}

func at[T Scalar](v []T, i int) (T, error) {
	if i < 0 || i >= len(v) {
		var zero T
		return zero, &IndexError{Index: i, Width: len(v)}
	}
	return v[i], nil
}

func setAt[T Scalar](v []T, i int, x T) error {
	if i < 0 || i >= len(v) {
		return &IndexError{Index: i, Width: len(v)}
	}
	v[i] = x
	return nil
}

// atRC indexes a row-major component slice with cols columns.
func atRC[T Number](v []T, cols, row, col int) (T, error) {
	rows := len(v) / cols
	if row < 0 || row >= rows {
		var zero T
		return zero, &IndexError{Index: row, Width: rows}
	}
	if col < 0 || col >= cols {
		var zero T
		return zero, &IndexError{Index: col, Width: cols}
	}
	return v[row*cols+col], nil
}

func setAtRC[T Number](v []T, cols, row, col int, x T) error {
	rows := len(v) / cols
	if row < 0 || row >= rows {
		return &IndexError{Index: row, Width: rows}
	}
	if col < 0 || col >= cols {
		return &IndexError{Index: col, Width: cols}
	}
	v[row*cols+col] = x
	return nil
}
