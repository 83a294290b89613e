package tlplot

import (
	"fmt"
	"image/color"
)

// the "tab10" cycle, so C0..C9 look the way analysts expect
var cycle = []color.RGBA{
	{31, 119, 180, 255},
	{255, 127, 14, 255},
	{44, 160, 44, 255},
	{214, 39, 40, 255},
	{148, 103, 189, 255},
	{140, 86, 75, 255},
	{227, 119, 194, 255},
	{127, 127, 127, 255},
	{188, 189, 34, 255},
	{23, 190, 207, 255},
}

// CycleColorID names the i-th color of the cycle ("C0", "C1", ...).
func CycleColorID(i int) string {
	return fmt.Sprintf("C%d", i)
}

// CycleColor returns the color for CycleColorID(i); the cycle wraps after ten.
func CycleColor(i int) color.RGBA {
	if i < 0 {
		panic("negative color index")
	}
	return cycle[i%len(cycle)]
}
