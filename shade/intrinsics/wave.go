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

// WaveGetLaneIndex returns the index of the calling lane within its wave.
func WaveGetLaneIndex() uint32 {
	kernelOnly("WaveGetLaneIndex")
	return 0
}

// WaveGetLaneCount returns the number of lanes in a wave.
func WaveGetLaneCount() uint32 {
	kernelOnly("WaveGetLaneCount")
	return 0
}

// WaveIsFirstLane reports whether the caller is the lowest active lane.
func WaveIsFirstLane() bool {
	kernelOnly("WaveIsFirstLane")
	return false
}

// WaveActiveSum returns the sum of v over the active lanes.
func WaveActiveSum[T Numeric](v T) T {
	kernelOnly("WaveActiveSum")
	return v
}

// WaveActiveProduct returns the product of v over the active lanes.
func WaveActiveProduct[T Numeric](v T) T {
	kernelOnly("WaveActiveProduct")
	return v
}

// WaveActiveMin returns the component-wise minimum of v over the active lanes.
func WaveActiveMin[T Numeric](v T) T {
	kernelOnly("WaveActiveMin")
	return v
}

// WaveActiveMax returns the component-wise maximum of v over the active lanes.
func WaveActiveMax[T Numeric](v T) T {
	kernelOnly("WaveActiveMax")
	return v
}

// WaveReadLaneAt returns v as held by the given lane.
func WaveReadLaneAt[T Value](v T, lane uint32) T {
	kernelOnly("WaveReadLaneAt")
	return v
}

// WaveReadLaneFirst returns v as held by the lowest active lane.
func WaveReadLaneFirst[T Value](v T) T {
	kernelOnly("WaveReadLaneFirst")
	return v
}

// WaveActiveAllTrue reports whether b is true on every active lane.
func WaveActiveAllTrue(b bool) bool {
	kernelOnly("WaveActiveAllTrue")
	return b
}

// WaveActiveAnyTrue reports whether b is true on any active lane.
func WaveActiveAnyTrue(b bool) bool {
	kernelOnly("WaveActiveAnyTrue")
	return b
}

// WaveActiveCountBits returns the number of active lanes where b is true.
func WaveActiveCountBits(b bool) uint32 {
	kernelOnly("WaveActiveCountBits")
	return 0
}

// QuadReadAcrossX returns v from the horizontally adjacent lane of the quad.
func QuadReadAcrossX[T Value](v T) T {
	kernelOnly("QuadReadAcrossX")
	return v
}

// QuadReadAcrossY returns v from the vertically adjacent lane of the quad.
func QuadReadAcrossY[T Value](v T) T {
	kernelOnly("QuadReadAcrossY")
	return v
}

// QuadReadAcrossDiagonal returns v from the diagonally opposite lane of the quad.
func QuadReadAcrossDiagonal[T Value](v T) T {
	kernelOnly("QuadReadAcrossDiagonal")
	return v
}
