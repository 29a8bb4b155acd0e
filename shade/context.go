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

import "github.com/ajroetker/go-shade/internal/cpuinfo"

// Context is the execution context an operation runs in.
type Context int

const (
	// Host is ordinary CPU execution. It is the only context this package
	// ever executes in.
	Host Context = iota

	// Kernel is code selected by an external compute-kernel compiler for
	// lowering to device instructions. Entering it is the compiler's job.
	Kernel
)

// String returns a human-readable name for the context.
func (c Context) String() string {
	switch c {
	case Host:
		return "host"
	case Kernel:
		return "kernel"
	default:
		return "unknown"
	}
}

// CurrentContext returns the context the caller is executing in. Any code
// that actually runs through this package runs on the host.
func CurrentContext() Context {
	return Host
}

// Validity tags where a member may be executed.
type Validity int

const (
	// Anywhere members compute the same value on the host and in a kernel.
	Anywhere Validity = iota

	// KernelOnly members depend on hardware semantics the host cannot
	// replicate. Their host bodies panic with InvalidExecutionContextError.
	KernelOnly
)

// String returns a human-readable name for the validity tag.
func (v Validity) String() string {
	switch v {
	case Anywhere:
		return "anywhere"
	case KernelOnly:
		return "kernel-only"
	default:
		return "unknown"
	}
}

// ValidIn reports whether a member tagged v may execute in context c.
func (v Validity) ValidIn(c Context) bool {
	return v == Anywhere || c == Kernel
}

// Member describes one entry of the API surface a kernel compiler inspects.
type Member struct {
	// Name is the package-qualified name, e.g. "intrinsics.WaveActiveSum".
	Name     string
	Category string
	Validity Validity
}

// InvalidContext returns the error a kernel-only member panics with when
// invoked in the current context. It has no side effects.
func InvalidContext(member string) *InvalidExecutionContextError {
	return &InvalidExecutionContextError{
		Member:  member,
		Context: CurrentContext(),
		Host:    cpuinfo.Target(),
	}
}
