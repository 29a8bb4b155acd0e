package shade

import (
	"errors"
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSplat(t *testing.T) {
	if got, want := Splat3[float32](5), New3[float32](5, 5, 5); got != want {
		t.Errorf("Splat3(5) = %v, want %v", got, want)
	}
	if got := SplatBool4(true); !got.All() {
		t.Errorf("SplatBool4(true) = %v", got)
	}
	if got := SplatMat2x3[int32](7); got != NewMat2x3(Splat3[int32](7), Splat3[int32](7)) {
		t.Errorf("SplatMat2x3(7) = %v", got)
	}
}

func TestConcatenation(t *testing.T) {
	xy := New2[float32](1, 2)
	zw := New2[float32](3, 4)
	want := New4[float32](1, 2, 3, 4)

	tests := []struct {
		name string
		got  Vec4[float32]
	}{
		{"13", Cat13(1, New3[float32](2, 3, 4))},
		{"31", Cat31(New3[float32](1, 2, 3), 4)},
		{"22", Cat22(xy, zw)},
		{"112", Cat112(1, 2, zw)},
		{"121", Cat121(1, New2[float32](2, 3), 4)},
		{"211", Cat211(xy, 3, 4)},
	}
	for _, tt := range tests {
		if tt.got != want {
			t.Errorf("Cat%s = %v, want %v", tt.name, tt.got, want)
		}
	}

	if got := Cat12(1, New2[int32](2, 3)); got != New3[int32](1, 2, 3) {
		t.Errorf("Cat12 = %v", got)
	}
	if got := Cat21(New2[int32](1, 2), 3); got != New3[int32](1, 2, 3) {
		t.Errorf("Cat21 = %v", got)
	}
	if got := Cat11[uint32](1, 2); got != New2[uint32](1, 2) {
		t.Errorf("Cat11 = %v", got)
	}

	// Width 1 parts from a Vec1 and a 1-row matrix.
	one := New1[float32](1)
	row := NewMat1x3(New3[float32](2, 3, 4))
	if got := Cat13(one.Scalar(), row.Vec()); got != want {
		t.Errorf("Cat13 from Vec1 and Mat1x3 = %v", got)
	}
}

func TestArithmetic(t *testing.T) {
	a := New3[float32](1, 2, 3)
	b := New3[float32](4, 5, 6)

	tests := []struct {
		name string
		got  Vec3[float32]
		want Vec3[float32]
	}{
		{"Add", a.Add(b), New3[float32](5, 7, 9)},
		{"Sub", a.Sub(b), New3[float32](-3, -3, -3)},
		{"Mul", a.Mul(b), New3[float32](4, 10, 18)},
		{"Div", b.Div(New3[float32](2, 5, 4)), New3[float32](2, 1, 1.5)},
		{"Neg", a.Neg(), New3[float32](-1, -2, -3)},
		{"Abs", New3[float32](-1, 2, -3).Abs(), a},
		{"Min", New3[float32](1, 5, 3).Min(New3[float32](2, 4, 3)), New3[float32](1, 4, 3)},
		{"Max", New3[float32](1, 5, 3).Max(New3[float32](2, 4, 3)), New3[float32](2, 5, 3)},
		{"AddScalar", a.AddScalar(1), New3[float32](2, 3, 4)},
		{"SubScalar", a.SubScalar(1), New3[float32](0, 1, 2)},
		{"MulScalar", a.MulScalar(2), New3[float32](2, 4, 6)},
		{"DivScalar", a.DivScalar(2), New3[float32](0.5, 1, 1.5)},
		{"ScalarLeft", Splat3[float32](10).Sub(a), New3[float32](9, 8, 7)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got != tt.want {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}

	if got := a.Dot(b); got != 32 {
		t.Errorf("Dot = %v, want 32", got)
	}
	if got := b.ReduceSum(); got != 15 {
		t.Errorf("ReduceSum = %v, want 15", got)
	}
}

func TestIntegerArithmetic(t *testing.T) {
	a := New4[int32](7, -7, 8, 0)
	if got, want := a.ModScalar(3), New4[int32](1, -1, 2, 0); got != want {
		t.Errorf("ModScalar = %v, want %v", got, want)
	}
	if got, want := a.DivScalar(2), New4[int32](3, -3, 4, 0); got != want {
		t.Errorf("DivScalar = %v, want %v", got, want)
	}
	if got, want := a.Abs(), New4[int32](7, 7, 8, 0); got != want {
		t.Errorf("Abs = %v, want %v", got, want)
	}

	u := New2[uint32](10, 3)
	if got, want := u.Mod(New2[uint32](4, 2)), New2[uint32](2, 1); got != want {
		t.Errorf("uint Mod = %v, want %v", got, want)
	}
	if got, want := u.Sub(New2[uint32](11, 0)), New2[uint32](math.MaxUint32, 3); got != want {
		t.Errorf("uint Sub wraps: got %v, want %v", got, want)
	}

	assert.Panics(t, func() { a.Div(New4[int32](1, 1, 1, 0)) }, "integer division by zero")
}

func TestFloatMod(t *testing.T) {
	got := New2[float32](5.5, -5.5).Mod(Splat2[float32](2))
	if want := New2[float32](1.5, -1.5); got != want {
		t.Errorf("Mod = %v, want %v", got, want)
	}
	d := New1(7.0).ModScalar(-2)
	if d.X() != 1 {
		t.Errorf("ModScalar(-2) = %v, want 1", d)
	}
	inf := New1[float32](1).DivScalar(0)
	if !math.IsInf(float64(inf.X()), 1) {
		t.Errorf("1/0 = %v, want +Inf", inf)
	}
}

func TestComparisons(t *testing.T) {
	a := New3[float32](1, 2, 3)
	b := New3[float32](0, 5, 1)

	tests := []struct {
		name string
		got  Bool3
		want Bool3
	}{
		{"GreaterThan", a.GreaterThan(b), NewBool3(true, false, true)},
		{"GreaterEqual", a.GreaterEqual(New3[float32](1, 5, 3)), NewBool3(true, false, true)},
		{"LessThan", a.LessThan(b), NewBool3(false, true, false)},
		{"LessEqual", a.LessEqual(New3[float32](1, 1, 4)), NewBool3(true, false, true)},
		{"Equal", a.Equal(New3[float32](1, 0, 3)), NewBool3(true, false, true)},
		{"NotEqual", a.NotEqual(New3[float32](1, 0, 3)), NewBool3(false, true, false)},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s = %v, want %v", tt.name, tt.got, tt.want)
		}
	}

	nan := float32(math.NaN())
	n := New2(nan, 1)
	if got := n.Equal(n); got != NewBool2(false, true) {
		t.Errorf("NaN Equal = %v, want [false true]", got)
	}
}

func TestBoolOps(t *testing.T) {
	a := NewBool4(true, true, false, false)
	b := NewBool4(true, false, true, false)

	assert.Equal(t, NewBool4(true, false, false, false), a.And(b))
	assert.Equal(t, NewBool4(true, true, true, false), a.Or(b))
	assert.Equal(t, NewBool4(false, true, true, false), a.Xor(b))
	assert.Equal(t, NewBool4(false, false, true, true), a.Not())
	assert.Equal(t, NewBool4(true, false, false, true), a.Equal(b))
	assert.Equal(t, a.Xor(b), a.NotEqual(b))

	assert.False(t, a.All())
	assert.True(t, a.Any())
	assert.Equal(t, 2, a.CountTrue())
	assert.False(t, SplatBool3(false).Any())
	assert.True(t, NewBool1(true).All())

	// Boolean vectors share the swizzle table.
	got := NewBool3(true, false, false).Swizzle2(MustParse[W3, W2]("zx"))
	assert.Equal(t, NewBool2(false, true), got)
}

func TestConversions(t *testing.T) {
	t.Run("Convert truncates", func(t *testing.T) {
		got := Convert3[int32](New3[float32](1.9, -1.9, 2.5))
		assert.Equal(t, New3[int32](1, -1, 2), got)
	})

	t.Run("Promote is exact", func(t *testing.T) {
		assert.Equal(t, New3[float64](1, 2, math.MaxUint32), Promote3(New3[uint32](1, 2, math.MaxUint32)))
		assert.Equal(t, New2[float64](math.MinInt32, 0.5), Promote2(New2[float32](math.MinInt32, 0.5)))
	})

	t.Run("Demote", func(t *testing.T) {
		assert.Equal(t, New2[float32](1.5, 2.25), Demote2(New2(1.5, 2.25)))
	})

	t.Run("FromBool", func(t *testing.T) {
		assert.Equal(t, New3[float32](1, 0, 1), FromBool3[float32](NewBool3(true, false, true)))
		assert.Equal(t, New2[uint32](0, 1), FromBool2[uint32](NewBool2(false, true)))
	})

	t.Run("NotZero", func(t *testing.T) {
		assert.Equal(t, NewBool4(false, true, true, false), New4[int32](0, -1, 2, 0).NotZero())
	})

	t.Run("IfThenElse", func(t *testing.T) {
		mask := New3[float32](1, 5, 3).GreaterThan(Splat3[float32](2))
		got := IfThenElse3(mask, Splat3[float32](1), Splat3[float32](0))
		assert.Equal(t, New3[float32](0, 1, 1), got)
	})
}

func TestCross(t *testing.T) {
	x := New3[float32](1, 0, 0)
	y := New3[float32](0, 1, 0)
	if got := x.Cross(y); got != New3[float32](0, 0, 1) {
		t.Errorf("x × y = %v, want [0 0 1]", got)
	}
	if got := y.Cross(x); got != New3[float32](0, 0, -1) {
		t.Errorf("y × x = %v, want [0 0 -1]", got)
	}
	a := New3[int32](2, 3, 4)
	if got := a.Cross(a); got != (Vec3[int32]{}) {
		t.Errorf("a × a = %v, want zero", got)
	}
}

func TestAt(t *testing.T) {
	v := New4[float32](1, 2, 3, 4)
	x, err := v.At(3)
	require.NoError(t, err)
	assert.Equal(t, float32(4), x)

	_, err = v.At(4)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	var ie *IndexError
	require.True(t, errors.As(err, &ie))
	assert.Equal(t, IndexError{Index: 4, Width: 4}, *ie)

	err = v.SetAt(-1, 9)
	assert.True(t, errors.Is(err, ErrIndexOutOfRange))
	assert.Equal(t, New4[float32](1, 2, 3, 4), v, "failed SetAt must not modify")

	require.NoError(t, v.SetAt(2, 9))
	assert.Equal(t, New4[float32](1, 2, 9, 4), v)

	b := NewBool2(true, false)
	_, err = b.At(2)
	assert.EqualError(t, err, "shade: index 2 out of range [0,2)")
}

// testFamily runs the same checks for one numeric element type.
func testFamily[T Number](t *testing.T) {
	t.Helper()
	v := New4[T](1, 2, 3, 4)
	if got := v.Add(Splat4[T](1)); got != New4[T](2, 3, 4, 5) {
		t.Errorf("Add = %v", got)
	}
	if got := v.Swizzle2(MustParse[W4, W2]("wy")); got != New2[T](4, 2) {
		t.Errorf(".wy = %v", got)
	}
	if got := v.GreaterThan(Splat4[T](2)); got != NewBool4(false, false, true, true) {
		t.Errorf("GreaterThan = %v", got)
	}
	m := Identity2[T]()
	if got := m.MulVec(New2[T](5, 6)); got != New2[T](5, 6) {
		t.Errorf("Identity2 × v = %v", got)
	}
}

func TestEveryElementType(t *testing.T) {
	t.Run("float32", testFamily[float32])
	t.Run("float64", testFamily[float64])
	t.Run("int32", testFamily[int32])
	t.Run("uint32", testFamily[uint32])
}
