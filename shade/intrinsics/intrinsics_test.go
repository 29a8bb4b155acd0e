package intrinsics

import (
	"errors"
	"sort"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ajroetker/go-shade/shade"
)

// calls invokes every kernel-only function once, keyed by qualified name.
var calls = map[string]func(){
	"intrinsics.Ddx":       func() { Ddx(float32(1)) },
	"intrinsics.Ddy":       func() { Ddy(shade.New2[float32](1, 2)) },
	"intrinsics.DdxCoarse": func() { DdxCoarse(1.0) },
	"intrinsics.DdxFine":   func() { DdxFine(shade.New3(1.0, 2, 3)) },
	"intrinsics.DdyCoarse": func() { DdyCoarse(float32(1)) },
	"intrinsics.DdyFine":   func() { DdyFine(float32(1)) },
	"intrinsics.Fwidth":    func() { Fwidth(shade.New4[float32](1, 2, 3, 4)) },

	"intrinsics.WaveGetLaneIndex":    func() { WaveGetLaneIndex() },
	"intrinsics.WaveGetLaneCount":    func() { WaveGetLaneCount() },
	"intrinsics.WaveIsFirstLane":     func() { WaveIsFirstLane() },
	"intrinsics.WaveActiveSum":       func() { WaveActiveSum(int32(1)) },
	"intrinsics.WaveActiveProduct":   func() { WaveActiveProduct(shade.New2[uint32](1, 2)) },
	"intrinsics.WaveActiveMin":       func() { WaveActiveMin(float32(1)) },
	"intrinsics.WaveActiveMax":       func() { WaveActiveMax(uint32(1)) },
	"intrinsics.WaveReadLaneAt":      func() { WaveReadLaneAt(true, 3) },
	"intrinsics.WaveReadLaneFirst":   func() { WaveReadLaneFirst(shade.NewBool2(true, false)) },
	"intrinsics.WaveActiveAllTrue":   func() { WaveActiveAllTrue(true) },
	"intrinsics.WaveActiveAnyTrue":   func() { WaveActiveAnyTrue(false) },
	"intrinsics.WaveActiveCountBits": func() { WaveActiveCountBits(true) },

	"intrinsics.QuadReadAcrossX":        func() { QuadReadAcrossX(float32(1)) },
	"intrinsics.QuadReadAcrossY":        func() { QuadReadAcrossY(int32(1)) },
	"intrinsics.QuadReadAcrossDiagonal": func() { QuadReadAcrossDiagonal(shade.New4[int32](1, 2, 3, 4)) },

	"intrinsics.GroupMemoryBarrier":              func() { GroupMemoryBarrier() },
	"intrinsics.GroupMemoryBarrierWithGroupSync": func() { GroupMemoryBarrierWithGroupSync() },
	"intrinsics.DeviceMemoryBarrier":             func() { DeviceMemoryBarrier() },
	"intrinsics.AllMemoryBarrier":                func() { AllMemoryBarrier() },

	"intrinsics.DispatchThreadID": func() { DispatchThreadID() },
	"intrinsics.GroupThreadID":    func() { GroupThreadID() },
	"intrinsics.GroupID":          func() { GroupID() },
	"intrinsics.GroupIndex":       func() { GroupIndex() },
}

// recoverErr runs f and returns the error it panicked with.
func recoverErr(t *testing.T, f func()) (err error) {
	t.Helper()
	defer func() {
		r := recover()
		require.NotNil(t, r, "expected a panic")
		e, ok := r.(error)
		require.True(t, ok, "panic value %T is not an error", r)
		err = e
	}()
	f()
	return nil
}

func TestKernelOnlyMembersPanicOnHost(t *testing.T) {
	for name, call := range calls {
		t.Run(name, func(t *testing.T) {
			err := recoverErr(t, call)
			require.True(t, errors.Is(err, shade.ErrInvalidExecutionContext), "got %v", err)

			var ctxErr *shade.InvalidExecutionContextError
			require.True(t, errors.As(err, &ctxErr))
			assert.Equal(t, name, ctxErr.Member)
			assert.Equal(t, shade.Host, ctxErr.Context)
			assert.NotEmpty(t, ctxErr.Host)
			assert.Contains(t, err.Error(), name)
		})
	}
}

func TestKernelOnlyPanicIsRepeatable(t *testing.T) {
	first := recoverErr(t, func() { Ddx(float32(1)) })
	second := recoverErr(t, func() { Ddx(float32(1)) })
	assert.Equal(t, first.Error(), second.Error())
}

func TestMembersMatchFunctions(t *testing.T) {
	var want []string
	for name := range calls {
		want = append(want, name)
	}
	sort.Strings(want)

	var got []string
	for _, m := range Members() {
		assert.Equal(t, shade.KernelOnly, m.Validity, m.Name)
		assert.False(t, m.Validity.ValidIn(shade.Host), m.Name)
		assert.True(t, m.Validity.ValidIn(shade.Kernel), m.Name)
		got = append(got, m.Name)
	}
	sort.Strings(got)

	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("Members() mismatch (-functions +registry):\n%s", diff)
	}
}

func TestMembersSorted(t *testing.T) {
	ms := Members()
	for i := 1; i < len(ms); i++ {
		prev, cur := ms[i-1], ms[i]
		if prev.Category > cur.Category || (prev.Category == cur.Category && prev.Name >= cur.Name) {
			t.Errorf("members out of order at %d: %v before %v", i, prev, cur)
		}
	}
}

func TestMembersReturnsCopy(t *testing.T) {
	ms := Members()
	ms[0].Name = "changed"
	assert.NotEqual(t, "changed", Members()[0].Name)
}

func TestLookup(t *testing.T) {
	m, ok := Lookup("intrinsics.WaveActiveSum")
	require.True(t, ok)
	assert.Equal(t, CategoryWave, m.Category)

	m, ok = Lookup("intrinsics.GroupIndex")
	require.True(t, ok)
	assert.Equal(t, CategoryThreadID, m.Category)

	_, ok = Lookup("WaveActiveSum")
	assert.False(t, ok)
}
