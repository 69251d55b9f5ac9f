// Command qmandel renders the Mandelbrot set in exact rational arithmetic
// and writes it as a 24-bit BMP.
package main

import (
	"fmt"
	"os"

	"github.com/gogpu/qmandel/cmd/qmandel/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
