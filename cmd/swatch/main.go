// Swatch - dominant colours, hover states and harmonies from the terminal
//
// Swatch extracts dominant colour palettes from images and derives
// hover-state variants and colour-theory relations from a base colour.
package main

import "github.com/jmylchreest/swatch/internal/cli"

func main() {
	cli.Execute()
}
