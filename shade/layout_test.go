package shade

import (
	"testing"
	"unsafe"
)

func TestOffset(t *testing.T) {
	v := New4[float32](1, 2, 3, 4)
	base := uintptr(unsafe.Pointer(&v))
	for i := range v {
		got := uintptr(unsafe.Pointer(&v[i])) - base
		if want := Offset[float32](i); got != want {
			t.Errorf("component %d at offset %d, want %d", i, got, want)
		}
	}
	if got := Offset[float64](3); got != 24 {
		t.Errorf("Offset[float64](3) = %d, want 24", got)
	}
	if got := Offset[bool](2); got != 2 {
		t.Errorf("Offset[bool](2) = %d, want 2", got)
	}
}

func TestSizeOf(t *testing.T) {
	tests := []struct {
		name string
		got  uintptr
		want uintptr
	}{
		{"Vec1[float32]", SizeOf[float32](Vec1[float32]{}), 4},
		{"Vec3[float32]", SizeOf[float32](Vec3[float32]{}), 12},
		{"Vec4[float64]", SizeOf[float64](Vec4[float64]{}), 32},
		{"Mat3x2[int32]", SizeOf[int32](Mat3x2[int32]{}), 24},
		{"Mat4x4[float64]", SizeOf[float64](Mat4x4[float64]{}), 128},
		{"Mat1x3[uint32]", SizeOf[uint32](Mat1x3[uint32]{}), 12},
		{"Bool3", unsafe.Sizeof(Bool3{}), 3},
		{"Bool2x4", unsafe.Sizeof(Bool2x4{}), 8},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("size of %s = %d, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestFlatAliases(t *testing.T) {
	m := Identity3[float32]()
	f := Flat[float32](&m)
	if len(f) != 9 {
		t.Fatalf("len(Flat) = %d, want 9", len(f))
	}
	want := []float32{1, 0, 0, 0, 1, 0, 0, 0, 1}
	for i := range want {
		if f[i] != want[i] {
			t.Errorf("flat[%d] = %v, want %v (row-major)", i, f[i], want[i])
		}
	}
	f[1] = 5
	if m[0][1] != 5 {
		t.Errorf("write through Flat not visible: m[0][1] = %v", m[0][1])
	}
}

func TestViews(t *testing.T) {
	v := New4[float32](1, 2, 3, 4)

	p := v.View3()
	if *p != New3[float32](1, 2, 3) {
		t.Errorf("View3 = %v, want [1 2 3]", *p)
	}
	p.SetX(10)
	if v[0] != 10 {
		t.Errorf("write through view not visible: %v", v)
	}
	v[2] = 7
	if p[2] != 7 {
		t.Errorf("view does not alias: %v", *p)
	}

	// Views compose.
	q := p.View2().View1()
	q.SetR(-1)
	if v[0] != -1 {
		t.Errorf("nested view does not alias: %v", v)
	}

	c := v.Truncate2()
	c.SetY(100)
	if v[1] != 2 {
		t.Errorf("Truncate2 must copy: %v", v)
	}

	b := NewBool4(true, false, true, false)
	b.View2().SetY(true)
	if b != NewBool4(true, true, true, false) {
		t.Errorf("bool view: %v", b)
	}
}

func TestShapeReinterpretation(t *testing.T) {
	v := New3[int32](1, 2, 3)
	row := v.Mat()
	if rows, cols := row.Shape(); rows != 1 || cols != 3 {
		t.Errorf("Mat shape = %dx%d, want 1x3", rows, cols)
	}
	if row.Vec() != v {
		t.Errorf("Mat().Vec() = %v, want %v", row.Vec(), v)
	}

	col := v.Column()
	if rows, cols := col.Shape(); rows != 3 || cols != 1 {
		t.Errorf("Column shape = %dx%d, want 3x1", rows, cols)
	}
	if col.Col() != v {
		t.Errorf("Column().Col() = %v, want %v", col.Col(), v)
	}
	if col.Transpose() != row {
		t.Errorf("Column().Transpose() = %v, want %v", col.Transpose(), row)
	}

	if got := New1[float64](2.5).Scalar(); got != 2.5 {
		t.Errorf("Scalar() = %v", got)
	}
	if rows, cols := v.Shape(); rows != 1 || cols != 3 {
		t.Errorf("Vec3 shape = %dx%d, want 1x3", rows, cols)
	}
	if unsafe.Sizeof(row) != unsafe.Sizeof(v) || unsafe.Sizeof(col) != unsafe.Sizeof(v) {
		t.Error("row and column matrices must be layout-identical to the vector")
	}

	bc := NewBool2(true, false).Column()
	if bc.Col() != NewBool2(true, false) {
		t.Errorf("bool Column().Col() = %v", bc.Col())
	}
}
