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

import "github.com/ajroetker/go-shade/shade"

// GroupMemoryBarrier orders group-shared memory accesses.
func GroupMemoryBarrier() {
	kernelOnly("GroupMemoryBarrier")
}

// GroupMemoryBarrierWithGroupSync orders group-shared memory accesses and
// waits for every thread of the group to reach it.
func GroupMemoryBarrierWithGroupSync() {
	kernelOnly("GroupMemoryBarrierWithGroupSync")
}

// DeviceMemoryBarrier orders device memory accesses.
func DeviceMemoryBarrier() {
	kernelOnly("DeviceMemoryBarrier")
}

// AllMemoryBarrier orders all memory accesses.
func AllMemoryBarrier() {
	kernelOnly("AllMemoryBarrier")
}

// DispatchThreadID returns the calling thread's id within the whole dispatch.
func DispatchThreadID() shade.Vec3[uint32] {
	kernelOnly("DispatchThreadID")
	return shade.Vec3[uint32]{}
}

// GroupThreadID returns the calling thread's id within its group.
func GroupThreadID() shade.Vec3[uint32] {
	kernelOnly("GroupThreadID")
	return shade.Vec3[uint32]{}
}

// GroupID returns the id of the calling thread's group.
func GroupID() shade.Vec3[uint32] {
	kernelOnly("GroupID")
	return shade.Vec3[uint32]{}
}

// GroupIndex returns GroupThreadID flattened to one dimension.
func GroupIndex() uint32 {
	kernelOnly("GroupIndex")
	return 0
}
