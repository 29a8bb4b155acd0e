package interop

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/math/f32"
	"gonum.org/v1/gonum/mat"

	"github.com/ajroetker/go-shade/shade"
)

func TestF32Vectors(t *testing.T) {
	v := shade.New3[float32](1, 2, 3)
	assert.Equal(t, f32.Vec3{1, 2, 3}, F32Vec3(v))
	assert.Equal(t, v, FromF32Vec3(F32Vec3(v)))

	assert.Equal(t, f32.Vec2{5, 6}, F32Vec2(shade.New2[float32](5, 6)))
	assert.Equal(t, shade.New4[float32](1, 2, 3, 4), FromF32Vec4(f32.Vec4{1, 2, 3, 4}))
	assert.Equal(t, shade.New2[float32](7, 8), FromF32Vec2(f32.Vec2{7, 8}))
	assert.Equal(t, f32.Vec4{4, 3, 2, 1}, F32Vec4(shade.New4[float32](4, 3, 2, 1)))
}

func TestF32MatricesAreRowMajor(t *testing.T) {
	m := shade.NewMat3x3(
		shade.New3[float32](1, 2, 3),
		shade.New3[float32](4, 5, 6),
		shade.New3[float32](7, 8, 9),
	)
	got := F32Mat3(m)
	assert.Equal(t, f32.Mat3{1, 2, 3, 4, 5, 6, 7, 8, 9}, got)
	assert.Equal(t, m, FromF32Mat3(got))

	id := F32Mat4(shade.Identity4[float32]())
	assert.Equal(t, f32.Mat4{1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1, 0, 0, 0, 0, 1}, id)
	assert.Equal(t, shade.Identity4[float32](), FromF32Mat4(id))
}

func TestDense(t *testing.T) {
	m := shade.NewMat2x3(
		shade.New3[float64](1, 2, 3),
		shade.New3[float64](4, 5, 6),
	)
	d := Dense(m)
	r, c := d.Dims()
	require.Equal(t, 2, r)
	require.Equal(t, 3, c)
	assert.Equal(t, 6.0, d.At(1, 2))
	assert.Equal(t, 2.0, d.At(0, 1))

	// The dense matrix owns its data.
	d.Set(0, 0, 100)
	assert.Equal(t, 1.0, m[0][0])

	back, err := FromDense[shade.Mat2x3[float64]](d)
	require.NoError(t, err)
	assert.Equal(t, 100.0, back[0][0])
	assert.Equal(t, m[1], back[1])
}

func TestDenseProductMatchesMulMat(t *testing.T) {
	a := shade.NewMat2x3(
		shade.New3[float64](1, 2, 3),
		shade.New3[float64](4, 5, 6),
	)
	b := shade.NewMat3x2(
		shade.New2[float64](7, 8),
		shade.New2[float64](9, 10),
		shade.New2[float64](11, 12),
	)
	var want mat.Dense
	want.Mul(Dense(a), Dense(b))

	got := a.MulMat3x2(b)
	assert.True(t, mat.Equal(&want, Dense(got)), "got %v want %v", got, mat.Formatted(&want))
}

func TestFromDenseShapeMismatch(t *testing.T) {
	d := mat.NewDense(3, 3, nil)
	_, err := FromDense[shade.Mat2x3[float64]](d)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrShape))
	assert.Contains(t, err.Error(), "have 3x3, want 2x3")
}

func TestVecDense(t *testing.T) {
	v := shade.New4[float64](1, 2, 3, 4)
	vd := VecDense(v)
	require.Equal(t, 4, vd.Len())
	assert.Equal(t, 3.0, vd.AtVec(2))

	back, err := FromVector[shade.Vec4[float64]](vd)
	require.NoError(t, err)
	assert.Equal(t, v, back)

	_, err = FromVector[shade.Vec3[float64]](vd)
	assert.True(t, errors.Is(err, ErrShape))

	// A vector round-trips through a row-shaped dense matrix too.
	row := Dense(v)
	r, c := row.Dims()
	assert.Equal(t, [2]int{1, 4}, [2]int{r, c})
}
