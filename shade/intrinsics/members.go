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

import (
	"cmp"
	"slices"

	"github.com/samber/lo"

	"github.com/ajroetker/go-shade/shade"
)

// Member categories.
const (
	CategoryDerivative = "derivative"
	CategoryWave       = "wave"
	CategoryQuad       = "quad"
	CategoryBarrier    = "barrier"
	CategoryThreadID   = "thread-id"
)

var members = buildMembers(map[string][]string{
	CategoryDerivative: {"Ddx", "Ddy", "DdxCoarse", "DdxFine", "DdyCoarse", "DdyFine", "Fwidth"},
	CategoryWave: {
		"WaveGetLaneIndex", "WaveGetLaneCount", "WaveIsFirstLane",
		"WaveActiveSum", "WaveActiveProduct", "WaveActiveMin", "WaveActiveMax",
		"WaveReadLaneAt", "WaveReadLaneFirst",
		"WaveActiveAllTrue", "WaveActiveAnyTrue", "WaveActiveCountBits",
	},
	CategoryQuad:     {"QuadReadAcrossX", "QuadReadAcrossY", "QuadReadAcrossDiagonal"},
	CategoryBarrier:  {"GroupMemoryBarrier", "GroupMemoryBarrierWithGroupSync", "DeviceMemoryBarrier", "AllMemoryBarrier"},
	CategoryThreadID: {"DispatchThreadID", "GroupThreadID", "GroupID", "GroupIndex"},
})

func buildMembers(byCategory map[string][]string) []shade.Member {
	var out []shade.Member
	for category, names := range byCategory {
		for _, name := range names {
			out = append(out, shade.Member{
				Name:     "intrinsics." + name,
				Category: category,
				Validity: shade.KernelOnly,
			})
		}
	}
	slices.SortFunc(out, func(a, b shade.Member) int {
		if c := cmp.Compare(a.Category, b.Category); c != 0 {
			return c
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return out
}

// Members returns every kernel-only member of the package, sorted by
// category and then name.
func Members() []shade.Member {
	return slices.Clone(members)
}

// Lookup returns the member with the given qualified name
// ("intrinsics.Ddx").
func Lookup(name string) (shade.Member, bool) {
	return lo.Find(members, func(m shade.Member) bool { return m.Name == name })
}
