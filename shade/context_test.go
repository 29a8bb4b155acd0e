package shade

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-shade/internal/cpuinfo"
)

func TestCurrentContextIsHost(t *testing.T) {
	assert.Equal(t, Host, CurrentContext())
	assert.Equal(t, "host", Host.String())
	assert.Equal(t, "kernel", Kernel.String())
	assert.Equal(t, "unknown", Context(7).String())
}

func TestValidity(t *testing.T) {
	assert.True(t, Anywhere.ValidIn(Host))
	assert.True(t, Anywhere.ValidIn(Kernel))
	assert.False(t, KernelOnly.ValidIn(Host))
	assert.True(t, KernelOnly.ValidIn(Kernel))
	assert.Equal(t, "kernel-only", KernelOnly.String())
	assert.Equal(t, "anywhere", Anywhere.String())
}

func TestInvalidContext(t *testing.T) {
	err := InvalidContext("intrinsics.Ddx")
	require.True(t, errors.Is(err, ErrInvalidExecutionContext))
	assert.False(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Equal(t, "intrinsics.Ddx", err.Member)
	assert.Equal(t, Host, err.Context)
	assert.Equal(t, cpuinfo.Target(), err.Host)
	assert.Equal(t,
		"shade: intrinsics.Ddx is only valid inside a kernel (context: host, host: "+cpuinfo.Target()+")",
		err.Error())

	// Wrapped errors still match.
	wrapped := errors.Join(errors.New("lowering failed"), err)
	assert.True(t, errors.Is(wrapped, ErrInvalidExecutionContext))
}
