package shade_test

import (
	"fmt"
	"strings"

	"github.com/ajroetker/go-shade/shade"
)

func Example() {
	v := shade.New4[float32](1, 2, 3, 4)
	wx := shade.MustParse[shade.W4, shade.W2]("wx")
	fmt.Println(v.Swizzle2(wx))

	if w, ok := wx.Writable(); ok {
		v.SetSwizzle2(w, shade.New2[float32](9, 8))
	}
	fmt.Println(v)

	_, ok := shade.MustParse[shade.W4, shade.W2]("xx").Writable()
	fmt.Println(ok)
	// Output:
	// [4 1]
	// [8 2 3 9]
	// false
}

func ExampleVec3_GreaterThan() {
	a := shade.New3[float32](1, 2, 3)
	b := shade.New3[float32](0, 5, 1)
	fmt.Println(a.GreaterThan(b))
	// Output: [true false true]
}

func ExampleMat3x1_MulMat1x3() {
	col := shade.New3[int32](1, 2, 3).Column()
	row := shade.NewMat1x3(shade.New3[int32](1, 10, 100))
	fmt.Println(col.MulMat1x3(row))
	// Output: [[1 10 100] [2 20 200] [3 30 300]]
}

func ExampleTable() {
	fmt.Println(shade.TableSize(4), len(shade.Table(4)))
	var names []string
	for _, s := range shade.Table(2)[:6] {
		names = append(names, s.Name())
	}
	fmt.Println(strings.Join(names, " "))
	// Output:
	// 680 680
	// x y xx xy yx yy
}
