// Command carve applies correlation filters and seam carving to image files.
//
// Usage:
//
//	carve blur --size 5 --in photo.png --out soft.png
//	carve edges --in photo.png --out edges.png
//	carve carve --cols 40 --in photo.png --out narrow.png
//
// Filters read the input as greyscale unless --color is given, in which
// case each channel is filtered on its own.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "carve:", err)
		os.Exit(1)
	}
}
