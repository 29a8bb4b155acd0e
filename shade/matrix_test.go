package shade

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// shapeTypes maps every vector and matrix name to its float32 instantiation.
var shapeTypes = func() map[string]reflect.Type {
	types := map[string]reflect.Type{
		"Vec1": reflect.TypeOf(Vec1[float32]{}),
		"Vec2": reflect.TypeOf(Vec2[float32]{}),
		"Vec3": reflect.TypeOf(Vec3[float32]{}),
		"Vec4": reflect.TypeOf(Vec4[float32]{}),
	}
	for _, m := range []any{
		Mat1x1[float32]{}, Mat1x2[float32]{}, Mat1x3[float32]{}, Mat1x4[float32]{},
		Mat2x1[float32]{}, Mat2x2[float32]{}, Mat2x3[float32]{}, Mat2x4[float32]{},
		Mat3x1[float32]{}, Mat3x2[float32]{}, Mat3x3[float32]{}, Mat3x4[float32]{},
		Mat4x1[float32]{}, Mat4x2[float32]{}, Mat4x3[float32]{}, Mat4x4[float32]{},
	} {
		typ := reflect.TypeOf(m)
		types[strings.TrimSuffix(typ.Name(), "[float32]")] = typ
	}
	return types
}()

func isProductMethod(name string) bool {
	return strings.HasPrefix(name, "MulMat") || name == "MulVec"
}

func TestMatMulShapesMatchMethods(t *testing.T) {
	shapes := MatMulShapes()
	require.Len(t, shapes, 96)

	for _, s := range shapes {
		left, ok := shapeTypes[s.Left]
		require.True(t, ok, s.Left)
		method, ok := left.MethodByName(s.Method)
		if !ok {
			t.Errorf("%s has no method %s", s.Left, s.Method)
			continue
		}
		mt := method.Type // receiver is In(0)
		if got := mt.In(1); got != shapeTypes[s.Right] {
			t.Errorf("%s.%s takes %v, want %s", s.Left, s.Method, got, s.Right)
		}
		want := reflect.TypeOf(float32(0))
		if s.Result != "scalar" {
			want = shapeTypes[s.Result]
		}
		if got := mt.Out(0); got != want {
			t.Errorf("%s.%s returns %v, want %v", s.Left, s.Method, got, want)
		}
		if s.Rows < 1 || s.Rows > 4 || s.Inner < 1 || s.Inner > 4 || s.Cols < 1 || s.Cols > 4 {
			t.Errorf("%+v: dimensions outside 1..4", s)
		}
	}
}

func TestMatMulShapesAreExhaustive(t *testing.T) {
	var want []string
	for _, s := range MatMulShapes() {
		want = append(want, s.Left+"."+s.Method)
	}

	var got []string
	for name, typ := range shapeTypes {
		for i := 0; i < typ.NumMethod(); i++ {
			if m := typ.Method(i); isProductMethod(m.Name) {
				got = append(got, name+"."+m.Name)
			}
		}
	}

	sortStrings := cmp.Transformer("sort", func(in []string) []string {
		out := append([]string(nil), in...)
		for i := 1; i < len(out); i++ {
			for j := i; j > 0 && out[j] < out[j-1]; j-- {
				out[j], out[j-1] = out[j-1], out[j]
			}
		}
		return out
	})
	if diff := cmp.Diff(want, got, sortStrings); diff != "" {
		t.Errorf("product methods differ from MatMulShapes (-table +methods):\n%s", diff)
	}
}

func TestMismatchedInnerDimensionHasNoMethod(t *testing.T) {
	tests := []struct {
		left, method string
	}{
		{"Vec3", "MulMat4x4"},
		{"Vec3", "MulMat2x3"},
		{"Mat2x3", "MulMat2x2"},
		{"Mat4x1", "MulMat4x1"},
		{"Mat1x4", "MulMat1x4"},
	}
	for _, tt := range tests {
		if _, ok := shapeTypes[tt.left].MethodByName(tt.method); ok {
			t.Errorf("%s.%s exists, want compile-time rejection", tt.left, tt.method)
		}
	}
}

func TestMatMulResultShapes(t *testing.T) {
	t.Run("vector times matrix", func(t *testing.T) {
		v := New3[float32](1, 2, 3)
		var got Vec3[float32] = v.MulMat3x3(Identity3[float32]())
		assert.Equal(t, v, got)

		m := NewMat3x2(New2[float32](1, 2), New2[float32](3, 4), New2[float32](5, 6))
		var got2 Vec2[float32] = v.MulMat3x2(m)
		assert.Equal(t, New2[float32](22, 28), got2)
	})

	t.Run("outer product", func(t *testing.T) {
		col := New3[int32](1, 2, 3).Column()
		row := NewMat1x3(New3[int32](4, 5, 6))
		var got Mat3x3[int32] = col.MulMat1x3(row)
		want := NewMat3x3(
			New3[int32](4, 5, 6),
			New3[int32](8, 10, 12),
			New3[int32](12, 15, 18),
		)
		assert.Equal(t, want, got)
	})

	t.Run("inner product collapses to scalar", func(t *testing.T) {
		row := NewMat1x3(New3[float64](1, 2, 3))
		col := New3[float64](4, 5, 6).Column()
		var got float64 = row.MulMat3x1(col)
		assert.Equal(t, 32.0, got)
		assert.Equal(t, New3[float64](1, 2, 3).Dot(New3[float64](4, 5, 6)), got)
	})

	t.Run("matrix times matrix", func(t *testing.T) {
		a := NewMat2x3(New3[float32](1, 2, 3), New3[float32](4, 5, 6))
		b := NewMat3x2(New2[float32](7, 8), New2[float32](9, 10), New2[float32](11, 12))
		var got Mat2x2[float32] = a.MulMat3x2(b)
		assert.Equal(t, NewMat2x2(New2[float32](58, 64), New2[float32](139, 154)), got)
	})

	t.Run("matrix times column vector", func(t *testing.T) {
		a := NewMat2x3(New3[float32](1, 2, 3), New3[float32](4, 5, 6))
		var got Vec2[float32] = a.MulVec(New3[float32](1, 0, -1))
		assert.Equal(t, New2[float32](-2, -2), got)
	})

	t.Run("identity", func(t *testing.T) {
		m := NewMat4x4(
			New4[float64](1, 2, 3, 4),
			New4[float64](5, 6, 7, 8),
			New4[float64](9, 10, 11, 12),
			New4[float64](13, 14, 15, 16),
		)
		assert.Equal(t, m, m.MulMat4x4(Identity4[float64]()))
		assert.Equal(t, m, Identity4[float64]().MulMat4x4(m))
	})
}

func TestMatMulShapesReturnsCopy(t *testing.T) {
	s := MatMulShapes()
	s[0].Method = "changed"
	assert.NotEqual(t, "changed", MatMulShapes()[0].Method)
}

func TestTranspose(t *testing.T) {
	m := NewMat2x3(New3[int32](1, 2, 3), New3[int32](4, 5, 6))
	want := NewMat3x2(New2[int32](1, 4), New2[int32](2, 5), New2[int32](3, 6))
	if got := m.Transpose(); got != want {
		t.Errorf("Transpose = %v, want %v", got, want)
	}
	if got := m.Transpose().Transpose(); got != m {
		t.Errorf("double Transpose = %v, want %v", got, m)
	}
}

func TestMatrixComponentWise(t *testing.T) {
	a := NewMat2x2(New2[float32](1, 2), New2[float32](3, 4))
	b := SplatMat2x2[float32](2)

	assert.Equal(t, NewMat2x2(New2[float32](3, 4), New2[float32](5, 6)), a.Add(b))
	assert.Equal(t, NewMat2x2(New2[float32](2, 4), New2[float32](6, 8)), a.Mul(b), "Mul is component-wise")
	assert.Equal(t, NewMat2x2(New2[float32](1, 0), New2[float32](1, 0)), a.Mod(b))
	assert.Equal(t, a.MulScalar(-1), a.Neg())

	gt := a.GreaterThan(b)
	assert.Equal(t, Bool2x2{NewBool2(false, false), NewBool2(true, true)}, gt)
	assert.Equal(t, 2, gt.CountTrue())
	assert.True(t, gt.Any())
	assert.False(t, gt.All())
	assert.Equal(t, Bool2x2{NewBool2(true, true), NewBool2(false, false)}, gt.Not())

	assert.Equal(t, a, FromBoolMat2x2[float32](trueBool2x2()).Mul(a))
}

func trueBool2x2() Bool2x2 {
	return Bool2x2{SplatBool2(true), SplatBool2(true)}
}

func TestMatrixConvert(t *testing.T) {
	m := NewMat2x2(New2[float32](1.5, -2.5), New2[float32](3, 4))
	got := ConvertMat2x2[int32](m)
	assert.Equal(t, NewMat2x2(New2[int32](1, -2), New2[int32](3, 4)), got)
}

func TestMatrixAt(t *testing.T) {
	m := NewMat2x3(New3[float32](1, 2, 3), New3[float32](4, 5, 6))
	x, err := m.At(1, 2)
	require.NoError(t, err)
	assert.Equal(t, float32(6), x)

	tests := []struct {
		row, col int
		want     IndexError
	}{
		{2, 0, IndexError{Index: 2, Width: 2}},
		{-1, 0, IndexError{Index: -1, Width: 2}},
		{0, 3, IndexError{Index: 3, Width: 3}},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%d,%d", tt.row, tt.col), func(t *testing.T) {
			_, err := m.At(tt.row, tt.col)
			var ie *IndexError
			require.True(t, errors.As(err, &ie), "got %v", err)
			assert.Equal(t, tt.want, *ie)
			assert.True(t, errors.Is(m.SetAt(tt.row, tt.col, 0), ErrIndexOutOfRange))
		})
	}

	require.NoError(t, m.SetAt(0, 1, 20))
	assert.Equal(t, float32(20), m[0][1])
}
