package shade

import (
	"errors"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableSize(t *testing.T) {
	want := map[int]int{1: 8, 2: 60, 3: 240, 4: 680}
	for width, size := range want {
		if got := TableSize(width); got != size {
			t.Errorf("TableSize(%d) = %d, want %d", width, got, size)
		}
		if got := len(Table(width)); got != size {
			t.Errorf("len(Table(%d)) = %d, want %d", width, got, size)
		}
	}
	if Table(0) != nil || Table(5) != nil {
		t.Error("Table outside 1..4 should be nil")
	}
}

func TestTableIsExhaustive(t *testing.T) {
	for width := 1; width <= MaxWidth; width++ {
		seen := make(map[string]bool)
		for _, s := range Table(width) {
			name := s.Name()
			if seen[name] {
				t.Fatalf("width %d: duplicate accessor %q", width, name)
			}
			seen[name] = true

			parsed, err := ParseSwizzle(width, name)
			require.NoError(t, err, "width %d: %q", width, name)
			if parsed != s {
				t.Errorf("width %d: ParseSwizzle(%q) = %#v, want %#v", width, name, parsed, s)
			}
			if s.Source() != width {
				t.Errorf("%q: Source() = %d, want %d", name, s.Source(), width)
			}

			distinct := true
			idx := s.Indices()
			for i := range idx {
				for j := i + 1; j < len(idx); j++ {
					if idx[i] == idx[j] {
						distinct = false
					}
				}
			}
			if s.Mutable() != distinct {
				t.Errorf("%q: Mutable() = %v, want %v", name, s.Mutable(), distinct)
			}
		}
	}
}

func TestTableIncludesRepeatedSingleComponent(t *testing.T) {
	var names []string
	for _, s := range Table(1) {
		names = append(names, s.Name())
	}
	want := []string{"x", "xx", "xxx", "xxxx", "r", "rr", "rrr", "rrrr"}
	if diff := cmp.Diff(want, names); diff != "" {
		t.Errorf("Table(1) mismatch (-want +got):\n%s", diff)
	}
}

func TestParseSwizzle(t *testing.T) {
	s, err := ParseSwizzle(4, "bgra")
	require.NoError(t, err)
	assert.Equal(t, []int{2, 1, 0, 3}, s.Indices())
	assert.Equal(t, Color, s.Alphabet())
	assert.Equal(t, 4, s.Len())
	assert.Equal(t, "bgra", s.String())

	tests := []struct {
		width int
		name  string
		msg   string
	}{
		{4, "xr", "mixes positional and color"},
		{4, "rx", "mixes color and positional"},
		{4, "xq", "unknown component"},
		{2, "z", "outside width 2"},
		{3, "rgba", "outside width 3"},
		{4, "", "has 0 components"},
		{4, "xxxxx", "has 5 components"},
		{0, "x", "source width 0"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseSwizzle(tt.width, tt.name)
			require.Error(t, err)
			assert.True(t, errors.Is(err, ErrBadSwizzle))
			assert.Contains(t, err.Error(), tt.msg)

			_, ok := Lookup(tt.width, tt.name)
			assert.False(t, ok)
		})
	}
}

func TestPatternWidthMismatch(t *testing.T) {
	_, err := Parse[W4, W2]("xyz")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrBadSwizzle))

	assert.Panics(t, func() { MustParse[W2, W1]("z") })
}

func TestSwizzleRead(t *testing.T) {
	v := New4[float32](1, 2, 3, 4)

	if got := v.Swizzle2(MustParse[W4, W2]("xx")); got != New2[float32](1, 1) {
		t.Errorf(".xx = %v, want [1 1]", got)
	}
	if got := v.Swizzle4(MustParse[W4, W4]("bgra")); got != New4[float32](3, 2, 1, 4) {
		t.Errorf(".bgra = %v, want [3 2 1 4]", got)
	}
	if got := v.Swizzle1(MustParse[W4, W1]("w")); got != 4 {
		t.Errorf(".w = %v, want 4", got)
	}
	if got := v.Swizzle3(MustParse[W4, W3]("zyx")); got != New3[float32](3, 2, 1) {
		t.Errorf(".zyx = %v, want [3 2 1]", got)
	}

	// A narrow vector can widen through repetition.
	s := New1[int32](7)
	if got := s.Swizzle4(MustParse[W1, W4]("xxxx")); got != Splat4[int32](7) {
		t.Errorf(".xxxx = %v, want [7 7 7 7]", got)
	}
}

func TestSwizzleReadIsSnapshot(t *testing.T) {
	v := New3[float32](1, 2, 3)
	snap := v.Swizzle2(MustParse[W3, W2]("zx"))
	v.SetX(100)
	v.SetZ(300)
	if snap != New2[float32](3, 1) {
		t.Errorf("snapshot changed: %v", snap)
	}
}

func TestZeroPatternReadsZero(t *testing.T) {
	var p Pattern[W3, W2]
	if got := New3[float32](1, 2, 3).Swizzle2(p); got != (Vec2[float32]{}) {
		t.Errorf("zero pattern read %v, want zero vector", got)
	}
	if _, ok := p.Writable(); ok {
		t.Error("zero pattern must not be writable")
	}
}

func TestSwizzleWrite(t *testing.T) {
	t.Run("wx", func(t *testing.T) {
		v := New4[float32](1, 2, 3, 4)
		v.SetSwizzle2(MustParseWritable[W4, W2]("wx"), New2[float32](9, 8))
		if want := New4[float32](8, 2, 3, 9); v != want {
			t.Errorf("got %v, want %v", v, want)
		}
	})

	t.Run("color alias", func(t *testing.T) {
		v := New4[int32](1, 2, 3, 4)
		v.SetSwizzle3(MustParseWritable[W4, W3]("bgr"), New3[int32](10, 20, 30))
		if want := New4[int32](30, 20, 10, 4); v != want {
			t.Errorf("got %v, want %v", v, want)
		}
	})

	t.Run("single", func(t *testing.T) {
		v := New2[uint32](1, 2)
		v.SetSwizzle1(MustParseWritable[W2, W1]("y"), 5)
		if want := New2[uint32](1, 5); v != want {
			t.Errorf("got %v, want %v", v, want)
		}
	})

	t.Run("full permutation", func(t *testing.T) {
		v := New4[float64](1, 2, 3, 4)
		v.SetSwizzle4(MustParseWritable[W4, W4]("wzyx"), v)
		if want := New4[float64](4, 3, 2, 1); v != want {
			t.Errorf("got %v, want %v", v, want)
		}
	})

	t.Run("bool", func(t *testing.T) {
		b := NewBool3(false, false, false)
		b.SetSwizzle2(MustParseWritable[W3, W2]("zx"), NewBool2(true, false))
		if want := NewBool3(false, false, true); b != want {
			t.Errorf("got %v, want %v", b, want)
		}
	})
}

func TestRepeatedPatternIsNotWritable(t *testing.T) {
	for _, name := range []string{"xx", "rgr", "wxyw"} {
		s, err := ParseSwizzle(4, name)
		require.NoError(t, err)
		assert.False(t, s.Mutable(), name)
	}
	if _, ok := MustParse[W4, W2]("xx").Writable(); ok {
		t.Error(".xx must not be writable")
	}
	assert.PanicsWithError(t, `shade: invalid swizzle: "xx" repeats a component and cannot be written`, func() {
		MustParseWritable[W4, W2]("xx")
	})

	w, ok := MustParse[W4, W2]("yx").Writable()
	require.True(t, ok)
	assert.Equal(t, "yx", w.Name())
	assert.Equal(t, "yx", w.Pattern().Swizzle().Name())
}

func TestNamedAccessors(t *testing.T) {
	v := New4[float32](1, 2, 3, 4)
	if v.X() != v.R() || v.Y() != v.G() || v.Z() != v.B() || v.W() != v.A() {
		t.Errorf("positional and color accessors disagree on %v", v)
	}
	v.SetG(20)
	v.SetW(40)
	if want := New4[float32](1, 20, 3, 40); v != want {
		t.Errorf("got %v, want %v", v, want)
	}
}

func TestPatternRejectsMixedAlphabets(t *testing.T) {
	for _, name := range []string{"ay", "xg", "wr", "bx"} {
		_, err := Parse[W4, W2](name)
		require.Error(t, err, name)
		assert.True(t, errors.Is(err, ErrBadSwizzle), name)
		assert.Contains(t, err.Error(), "mixes", name)
		assert.Panics(t, func() { MustParse[W4, W2](name) }, name)
		assert.Panics(t, func() { MustParseWritable[W4, W2](name) }, name)
	}
	_, err := Parse[W3, W3]("rgz")
	assert.ErrorIs(t, err, ErrBadSwizzle)
}

func TestSwizzleWriteRoundTripsEveryTableEntry(t *testing.T) {
	for width := 1; width <= MaxWidth; width++ {
		for _, s := range Table(width) {
			switch width*10 + s.Len() {
			case 11:
				roundTrip(t, s, (*Vec1[int32]).SetSwizzle1, Vec1[int32].Swizzle1)
			case 12:
				notWritable[W1, W2](t, s)
			case 13:
				notWritable[W1, W3](t, s)
			case 14:
				notWritable[W1, W4](t, s)
			case 21:
				roundTrip(t, s, (*Vec2[int32]).SetSwizzle1, Vec2[int32].Swizzle1)
			case 22:
				roundTrip(t, s, (*Vec2[int32]).SetSwizzle2, Vec2[int32].Swizzle2)
			case 23:
				notWritable[W2, W3](t, s)
			case 24:
				notWritable[W2, W4](t, s)
			case 31:
				roundTrip(t, s, (*Vec3[int32]).SetSwizzle1, Vec3[int32].Swizzle1)
			case 32:
				roundTrip(t, s, (*Vec3[int32]).SetSwizzle2, Vec3[int32].Swizzle2)
			case 33:
				roundTrip(t, s, (*Vec3[int32]).SetSwizzle3, Vec3[int32].Swizzle3)
			case 34:
				notWritable[W3, W4](t, s)
			case 41:
				roundTrip(t, s, (*Vec4[int32]).SetSwizzle1, Vec4[int32].Swizzle1)
			case 42:
				roundTrip(t, s, (*Vec4[int32]).SetSwizzle2, Vec4[int32].Swizzle2)
			case 43:
				roundTrip(t, s, (*Vec4[int32]).SetSwizzle3, Vec4[int32].Swizzle3)
			case 44:
				roundTrip(t, s, (*Vec4[int32]).SetSwizzle4, Vec4[int32].Swizzle4)
			default:
				t.Fatalf("unexpected table entry %q for width %d", s.Name(), width)
			}
		}
	}
}

// roundTrip reads s from (1, 2, ...) and, when s is writable, writes distinct
// values through it and reads them back. Components s does not name must keep
// their values.
func roundTrip[S, L Width, V, R any](t *testing.T, s Swizzle, set func(*V, WritablePattern[S, L], R), get func(V, Pattern[S, L]) R) {
	t.Helper()
	p, err := Parse[S, L](s.Name())
	require.NoError(t, err, s.Name())
	w, ok := p.Writable()
	if ok != s.Mutable() {
		t.Errorf("%q: Writable() = %v, Mutable() = %v", s.Name(), ok, s.Mutable())
		return
	}

	var v V
	src := flat[int32](&v)
	for i := range src {
		src[i] = int32(i + 1)
	}
	read := get(v, p)
	for k, c := range flat[int32](&read) {
		if want := int32(s.Index(k) + 1); c != want {
			t.Errorf("%q: component %d reads %d, want %d", s.Name(), k, c, want)
		}
	}
	if !ok {
		return
	}

	var x R
	xs := flat[int32](&x)
	for k := range xs {
		xs[k] = int32(10 * (k + 1))
	}
	set(&v, w, x)
	back := get(v, p)
	if diff := cmp.Diff(xs, flat[int32](&back)); diff != "" {
		t.Errorf("%q: read after write mismatch (-want +got):\n%s", s.Name(), diff)
	}
	written := make(map[int]bool)
	for _, i := range s.Indices() {
		written[i] = true
	}
	for i, c := range flat[int32](&v) {
		if !written[i] && c != int32(i+1) {
			t.Errorf("%q: untouched component %d changed to %d", s.Name(), i, c)
		}
	}
}

func notWritable[S, L Width](t *testing.T, s Swizzle) {
	t.Helper()
	if _, ok := MustParse[S, L](s.Name()).Writable(); ok || s.Mutable() {
		t.Errorf("%q: longer than its source but writable", s.Name())
	}
}
