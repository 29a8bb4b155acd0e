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

import "math"

// This file provides the component-wise kernels behind every generated
// operator method. Kernels work on flat component slices, so one
// implementation serves all vector widths and matrix shapes. Operands are
// value copies, so dst may alias an input.

func splat[T Scalar](dst []T, s T) {
	for i := range dst {
		dst[i] = s
	}
}

func add[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] + b[i]
	}
}

func sub[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] - b[i]
	}
}

func mul[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] * b[i]
	}
}

// div follows Go semantics: integer division by zero panics and float
// division by zero yields ±Inf or NaN.
func div[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = a[i] / b[i]
	}
}

func mod[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = modHelper(a[i], b[i])
	}
}

// modHelper is % for integers and math.Mod (truncated, sign of the
// dividend) for floats, matching fmod.
func modHelper[T Number](a, b T) T {
	switch av := any(a).(type) {
	case float32:
		return T(math.Mod(float64(av), float64(any(b).(float32))))
	case float64:
		return T(math.Mod(av, any(b).(float64)))
	case int32:
		return T(av % any(b).(int32))
	case uint32:
		return T(av % any(b).(uint32))
	default:
		// Named types with a numeric underlying type.
		if isFloat[T]() {
			return T(math.Mod(float64(a), float64(b)))
		}
		return T(int64(a) % int64(b))
	}
}

func isFloat[T Number]() bool {
	var one T = 1
	return one/2 != 0
}

func neg[T Number](dst, a []T) {
	for i := range dst {
		dst[i] = -a[i]
	}
}

func abs[T Number](dst, a []T) {
	for i := range dst {
		if a[i] < 0 {
			dst[i] = -a[i]
		} else {
			dst[i] = a[i]
		}
	}
}

func minOf[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = min(a[i], b[i])
	}
}

func maxOf[T Number](dst, a, b []T) {
	for i := range dst {
		dst[i] = max(a[i], b[i])
	}
}

func addScalar[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] + s
	}
}

func subScalar[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] - s
	}
}

func mulScalar[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] * s
	}
}

func divScalar[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = a[i] / s
	}
}

func modScalar[T Number](dst, a []T, s T) {
	for i := range dst {
		dst[i] = modHelper(a[i], s)
	}
}

func dot[T Number](a, b []T) T {
	var sum T
	for i := range a {
		sum += a[i] * b[i]
	}
	return sum
}

func reduceSum[T Number](a []T) T {
	var sum T
	for _, x := range a {
		sum += x
	}
	return sum
}

func equal[T Scalar](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] == b[i]
	}
}

func notEqual[T Scalar](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] != b[i]
	}
}

func lessThan[T Number](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] < b[i]
	}
}

func lessEqual[T Number](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] <= b[i]
	}
}

func greaterThan[T Number](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] > b[i]
	}
}

func greaterEqual[T Number](dst []bool, a, b []T) {
	for i := range dst {
		dst[i] = a[i] >= b[i]
	}
}

func and(dst, a, b []bool) {
	for i := range dst {
		dst[i] = a[i] && b[i]
	}
}

func or(dst, a, b []bool) {
	for i := range dst {
		dst[i] = a[i] || b[i]
	}
}

func xor(dst, a, b []bool) {
	for i := range dst {
		dst[i] = a[i] != b[i]
	}
}

func not(dst, a []bool) {
	for i := range dst {
		dst[i] = !a[i]
	}
}

func allTrue(a []bool) bool {
	for _, b := range a {
		if !b {
			return false
		}
	}
	return true
}

func anyTrue(a []bool) bool {
	for _, b := range a {
		if b {
			return true
		}
	}
	return false
}

func countTrue(a []bool) int {
	count := 0
	for _, b := range a {
		if b {
			count++
		}
	}
	return count
}

func ifThenElse[T Number](dst []T, mask []bool, yes, no []T) {
	for i := range dst {
		if mask[i] {
			dst[i] = yes[i]
		} else {
			dst[i] = no[i]
		}
	}
}

func notZero[T Number](dst []bool, a []T) {
	for i := range dst {
		dst[i] = a[i] != 0
	}
}

func fromBool[T Number](dst []T, a []bool) {
	for i := range dst {
		if a[i] {
			dst[i] = 1
		} else {
			dst[i] = 0
		}
	}
}

// convert applies Go's numeric conversion per component. Float to integer
// truncates toward zero; out-of-range values are implementation-defined.
func convert[To, From Number](dst []To, src []From) {
	for i := range dst {
		dst[i] = To(src[i])
	}
}

// matMul computes the (rows x cols) product of a (rows x inner) and
// b (inner x cols), all row-major.
func matMul[T Number](dst, a, b []T, rows, inner, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			var sum T
			for k := 0; k < inner; k++ {
				sum += a[i*inner+k] * b[k*cols+j]
			}
			dst[i*cols+j] = sum
		}
	}
}

func transpose[T Number](dst, a []T, rows, cols int) {
	for i := 0; i < rows; i++ {
		for j := 0; j < cols; j++ {
			dst[j*rows+i] = a[i*cols+j]
		}
	}
}
