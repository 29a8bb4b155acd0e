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

// Package cpuinfo describes the host CPU for execution-context diagnostics.
package cpuinfo

import (
	"os"
	"runtime"
	"strconv"
	"sync"

	"golang.org/x/sys/cpu"
)

var (
	once   sync.Once
	target string
)

// Target returns the best SIMD target the host supports: "avx512", "avx2",
// "sse2", "sve", "neon" or "scalar". Setting SHADE_HOST_SCALAR forces
// "scalar".
func Target() string {
	once.Do(func() {
		target = detect(runtime.GOARCH)
	})
	return target
}

func detect(arch string) string {
	if ScalarEnv() {
		return "scalar"
	}
	switch arch {
	case "amd64":
		switch {
		case cpu.X86.HasAVX512F && cpu.X86.HasAVX512BW && cpu.X86.HasAVX512VL:
			return "avx512"
		case cpu.X86.HasAVX2 && cpu.X86.HasFMA:
			return "avx2"
		case cpu.X86.HasSSE2:
			return "sse2"
		}
	case "arm64":
		switch {
		case cpu.ARM64.HasSVE:
			return "sve"
		case cpu.ARM64.HasASIMD:
			return "neon"
		}
	}
	return "scalar"
}

// ScalarEnv reports whether SHADE_HOST_SCALAR asks for the scalar host target.
func ScalarEnv() bool {
	val := os.Getenv("SHADE_HOST_SCALAR")
	if val == "" {
		return false
	}
	// "0" and "false" opt out; words like "yes" opt in.
	if b, err := strconv.ParseBool(val); err == nil {
		return b
	}
	return true
}

// Feature is a named CPU capability flag.
type Feature struct {
	Name    string `json:"name" yaml:"name"`
	Present bool   `json:"present" yaml:"present"`
}

// Features lists the capability flags relevant to Target for the host
// architecture. It is empty on architectures without SIMD detection.
func Features() []Feature {
	switch runtime.GOARCH {
	case "amd64":
		return []Feature{
			{"sse2", cpu.X86.HasSSE2},
			{"sse41", cpu.X86.HasSSE41},
			{"sse42", cpu.X86.HasSSE42},
			{"avx", cpu.X86.HasAVX},
			{"avx2", cpu.X86.HasAVX2},
			{"fma", cpu.X86.HasFMA},
			{"avx512f", cpu.X86.HasAVX512F},
			{"avx512bw", cpu.X86.HasAVX512BW},
			{"avx512vl", cpu.X86.HasAVX512VL},
		}
	case "arm64":
		return []Feature{
			{"asimd", cpu.ARM64.HasASIMD},
			{"fp", cpu.ARM64.HasFP},
			{"asimdhp", cpu.ARM64.HasASIMDHP},
			{"sve", cpu.ARM64.HasSVE},
			{"sve2", cpu.ARM64.HasSVE2},
		}
	}
	return nil
}
