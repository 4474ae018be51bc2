package filter_test

import (
	"fmt"

	"github.com/gogpu/carve"
	"github.com/gogpu/carve/filter"
)

func ExampleBlur() {
	img, _ := carve.NewGray(5, 5)
	img.Set(2, 2, 255)

	out, err := filter.Blur{Size: 3}.Apply(img)
	if err != nil {
		fmt.Println(err)
		return
	}
	for y := range out.Height() {
		fmt.Println(out.Pix()[y*5 : (y+1)*5])
	}
	// Output:
	// [0 0 0 0 0]
	// [0 28 28 28 0]
	// [0 28 28 28 0]
	// [0 28 28 28 0]
	// [0 0 0 0 0]
}

func ExampleCascade() {
	img, _ := carve.NewGrayFromPix(3, 1, []float64{0, 100, 255})
	f := filter.Cascade{filter.Invert{}, filter.Invert{}}
	out, _ := f.Apply(img)
	fmt.Println(out.Pix())
	// Output: [0 100 255]
}
