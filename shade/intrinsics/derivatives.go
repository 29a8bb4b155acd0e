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

package intrinsics

// Derivatives are evaluated across a 2x2 pixel quad.

// Ddx returns the partial derivative of v with respect to screen x.
func Ddx[T Float](v T) T {
	kernelOnly("Ddx")
	return v
}

// Ddy returns the partial derivative of v with respect to screen y.
func Ddy[T Float](v T) T {
	kernelOnly("Ddy")
	return v
}

// DdxCoarse is Ddx computed once per quad.
func DdxCoarse[T Float](v T) T {
	kernelOnly("DdxCoarse")
	return v
}

// DdxFine is Ddx computed per pixel row.
func DdxFine[T Float](v T) T {
	kernelOnly("DdxFine")
	return v
}

// DdyCoarse is Ddy computed once per quad.
func DdyCoarse[T Float](v T) T {
	kernelOnly("DdyCoarse")
	return v
}

// DdyFine is Ddy computed per pixel column.
func DdyFine[T Float](v T) T {
	kernelOnly("DdyFine")
	return v
}

// Fwidth returns |Ddx(v)| + |Ddy(v)|.
func Fwidth[T Float](v T) T {
	kernelOnly("Fwidth")
	return v
}
