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

import (
	"errors"
	"fmt"
)

var (
	// ErrIndexOutOfRange is matched by errors returned from At and SetAt
	// when the index is outside [0, width).
	ErrIndexOutOfRange = errors.New("shade: index out of range")

	// ErrBadSwizzle is matched by errors returned when a swizzle name is
	// malformed, mixes alphabets, or selects a component the source lacks.
	ErrBadSwizzle = errors.New("shade: invalid swizzle")

	// ErrInvalidExecutionContext is matched by the value a kernel-only member
	// panics with when it is invoked on the host.
	ErrInvalidExecutionContext = errors.New("shade: invalid execution context")
)

// IndexError reports an out-of-range component index.
type IndexError struct {
	Index int
	Width int
}

func (e *IndexError) Error() string {
	return fmt.Sprintf("shade: index %d out of range [0,%d)", e.Index, e.Width)
}

// Is reports whether target is ErrIndexOutOfRange.
func (e *IndexError) Is(target error) bool {
	return target == ErrIndexOutOfRange
}

// InvalidExecutionContextError is the panic value of a kernel-only member
// invoked outside a kernel. Member is the qualified name of the offending
// member, e.g. "intrinsics.Ddx".
type InvalidExecutionContextError struct {
	Member  string
	Context Context
	// Host is the host target name ("avx2", "neon", "scalar", ...).
	Host string
}

func (e *InvalidExecutionContextError) Error() string {
	return fmt.Sprintf("shade: %s is only valid inside a kernel (context: %s, host: %s)",
		e.Member, e.Context, e.Host)
}

// Is reports whether target is ErrInvalidExecutionContext.
func (e *InvalidExecutionContextError) Is(target error) bool {
	return target == ErrInvalidExecutionContext
}
