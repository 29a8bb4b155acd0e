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

// Concatenation constructors. CatXYZ builds a vector from parts of widths
// X, Y, Z in order, so the sum of the digits is the result width. Width 1
// parts are plain scalars; pass a Vec1 with v.Scalar() and a 1-row matrix
// with m.Vec().

// Cat11 returns (x, y).
func Cat11[T Number](x, y T) Vec2[T] {
	return Vec2[T]{x, y}
}

// Cat12 returns (x, yz.x, yz.y).
func Cat12[T Number](x T, yz Vec2[T]) Vec3[T] {
	return Vec3[T]{x, yz[0], yz[1]}
}

// Cat21 returns (xy.x, xy.y, z).
func Cat21[T Number](xy Vec2[T], z T) Vec3[T] {
	return Vec3[T]{xy[0], xy[1], z}
}

// Cat13 returns (x, yzw.x, yzw.y, yzw.z).
func Cat13[T Number](x T, yzw Vec3[T]) Vec4[T] {
	return Vec4[T]{x, yzw[0], yzw[1], yzw[2]}
}

// Cat31 returns (xyz.x, xyz.y, xyz.z, w).
func Cat31[T Number](xyz Vec3[T], w T) Vec4[T] {
	return Vec4[T]{xyz[0], xyz[1], xyz[2], w}
}

// Cat22 returns (xy.x, xy.y, zw.x, zw.y).
func Cat22[T Number](xy, zw Vec2[T]) Vec4[T] {
	return Vec4[T]{xy[0], xy[1], zw[0], zw[1]}
}

// Cat112 returns (x, y, zw.x, zw.y).
func Cat112[T Number](x, y T, zw Vec2[T]) Vec4[T] {
	return Vec4[T]{x, y, zw[0], zw[1]}
}

// Cat121 returns (x, yz.x, yz.y, w).
func Cat121[T Number](x T, yz Vec2[T], w T) Vec4[T] {
	return Vec4[T]{x, yz[0], yz[1], w}
}

// Cat211 returns (xy.x, xy.y, z, w).
func Cat211[T Number](xy Vec2[T], z, w T) Vec4[T] {
	return Vec4[T]{xy[0], xy[1], z, w}
}

// Cross returns the cross product a × b.
func (a Vec3[T]) Cross(b Vec3[T]) Vec3[T] {
	return Vec3[T]{
		a[1]*b[2] - a[2]*b[1],
		a[2]*b[0] - a[0]*b[2],
		a[0]*b[1] - a[1]*b[0],
	}
}
