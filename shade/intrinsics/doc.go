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

// Package intrinsics declares the members of the shading surface that only
// have meaning inside a compute kernel: screen-space derivatives, wave and
// quad cross-lane operations, memory barriers and dispatch thread ids.
//
// A kernel compiler recognizes calls to these functions by name (see
// Members) and lowers them to device instructions. The Go bodies run only on
// the host, where there is no neighboring lane or pixel quad to consult, so
// every one of them panics with a *shade.InvalidExecutionContextError naming
// the member:
//
//	defer func() {
//		if err, ok := recover().(error); ok && errors.Is(err, shade.ErrInvalidExecutionContext) {
//			// err names "intrinsics.Ddx"
//		}
//	}()
//	intrinsics.Ddx(float32(1))
//
// The panic happens before any argument is inspected and has no side
// effects, so it repeats identically on every call.
package intrinsics

import "github.com/ajroetker/go-shade/shade"

// Float is a floating-point scalar or vector operand.
type Float interface {
	~float32 | ~float64 |
		shade.Vec1[float32] | shade.Vec2[float32] | shade.Vec3[float32] | shade.Vec4[float32] |
		shade.Vec1[float64] | shade.Vec2[float64] | shade.Vec3[float64] | shade.Vec4[float64]
}

// Numeric is any numeric scalar or vector operand.
type Numeric interface {
	Float | ~int32 | ~uint32 |
		shade.Vec1[int32] | shade.Vec2[int32] | shade.Vec3[int32] | shade.Vec4[int32] |
		shade.Vec1[uint32] | shade.Vec2[uint32] | shade.Vec3[uint32] | shade.Vec4[uint32]
}

// Value is any operand a lane can hold, boolean included.
type Value interface {
	Numeric | ~bool | shade.Bool1 | shade.Bool2 | shade.Bool3 | shade.Bool4
}

func kernelOnly(name string) {
	panic(shade.InvalidContext("intrinsics." + name))
}
