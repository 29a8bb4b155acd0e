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

// Package interop converts shade vectors and matrices to and from the
// types of other Go math libraries.
//
// The float32 types of golang.org/x/image/math/f32 share the shade layout
// (row-major, no padding), so those conversions are plain copies. The
// float64 conversions target gonum's dense matrices and vectors.
package interop

import (
	"errors"
	"fmt"

	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-shade/shade"
)

// ErrShape is matched by errors returned when a source matrix or vector
// does not have the dimensions of the requested shade type.
var ErrShape = errors.New("interop: shape mismatch")

// F32Vec2 returns v as an f32.Vec2.
func F32Vec2(v shade.Vec2[float32]) f32.Vec2 { return f32.Vec2(v) }

// F32Vec3 returns v as an f32.Vec3.
func F32Vec3(v shade.Vec3[float32]) f32.Vec3 { return f32.Vec3(v) }

// F32Vec4 returns v as an f32.Vec4.
func F32Vec4(v shade.Vec4[float32]) f32.Vec4 { return f32.Vec4(v) }

// FromF32Vec2 returns v as a shade.Vec2.
func FromF32Vec2(v f32.Vec2) shade.Vec2[float32] { return shade.Vec2[float32](v) }

// FromF32Vec3 returns v as a shade.Vec3.
func FromF32Vec3(v f32.Vec3) shade.Vec3[float32] { return shade.Vec3[float32](v) }

// FromF32Vec4 returns v as a shade.Vec4.
func FromF32Vec4(v f32.Vec4) shade.Vec4[float32] { return shade.Vec4[float32](v) }

// F32Mat3 returns m as an f32.Mat3. Both are row-major.
func F32Mat3(m shade.Mat3x3[float32]) (out f32.Mat3) {
	copy(out[:], shade.Flat[float32](&m))
	return
}

// F32Mat4 returns m as an f32.Mat4. Both are row-major.
func F32Mat4(m shade.Mat4x4[float32]) (out f32.Mat4) {
	copy(out[:], shade.Flat[float32](&m))
	return
}

// FromF32Mat3 returns m as a shade.Mat3x3.
func FromF32Mat3(m f32.Mat3) (out shade.Mat3x3[float32]) {
	copy(shade.Flat[float32](&out), m[:])
	return
}

// FromF32Mat4 returns m as a shade.Mat4x4.
func FromF32Mat4(m f32.Mat4) (out shade.Mat4x4[float32]) {
	copy(shade.Flat[float32](&out), m[:])
	return
}

// Dense returns a new gonum matrix with the shape and components of m.
// Vectors become single-row matrices.
func Dense[M shade.Shaped[float64]](m M) *mat.Dense {
	rows, cols := m.Shape()
	data := make([]float64, rows*cols)
	copy(data, shade.Flat[float64](&m))
	return mat.NewDense(rows, cols, data)
}

// FromDense copies a gonum matrix into M. The dimensions of d must equal
// M's shape.
func FromDense[M shade.Shaped[float64]](d mat.Matrix) (M, error) {
	var m M
	rows, cols := m.Shape()
	if r, c := d.Dims(); r != rows || c != cols {
		return m, fmt.Errorf("%w: have %dx%d, want %dx%d", ErrShape, r, c, rows, cols)
	}
	flat := shade.Flat[float64](&m)
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			flat[i*cols+j] = d.At(i, j)
		}
	}
	return m, nil
}

// VecDense returns the components of v, in storage order, as a gonum
// column vector.
func VecDense[M shade.Shaped[float64]](v M) *mat.VecDense {
	src := shade.Flat[float64](&v)
	data := make([]float64, len(src))
	copy(data, src)
	return mat.NewVecDense(len(data), data)
}

// FromVector copies a gonum vector into M in storage order. The vector
// length must equal the number of components of M.
func FromVector[M shade.Shaped[float64]](v mat.Vector) (M, error) {
	var m M
	flat := shade.Flat[float64](&m)
	if v.Len() != len(flat) {
		return m, fmt.Errorf("%w: have %d components, want %d", ErrShape, v.Len(), len(flat))
	}
	for i := range flat {
		flat[i] = v.AtVec(i)
	}
	return m, nil
}
