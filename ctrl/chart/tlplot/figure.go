package tlplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
)

// Figure is a single plot with an optional Legend drawn directly above it.
type Figure struct {
	Plot   *plot.Plot
	Legend *Legend
	Width  vg.Length
	Height vg.Length
}

func NewFigure(width, height vg.Length, legendColumns int) *Figure {
	return &Figure{
		Plot:   plot.New(),
		Legend: NewLegend(legendColumns),
		Width:  width,
		Height: height,
	}
}

func (f *Figure) SetSize(width, height vg.Length) {
	f.Width = width
	f.Height = height
}

// HideY removes the Y axis ticks, tick labels and title.
func (f *Figure) HideY() {
	f.Plot.Y.Label.Text = ""
	f.Plot.Y.Tick.Marker = plot.ConstantTicks(nil)
	f.Plot.Y.Tick.Length = 0
}

func (f *Figure) Draw(c draw.Canvas) {
	legendHeight := f.Legend.Height()
	if legendHeight > 0 {
		f.Legend.Draw(draw.Crop(c, 0, 0, c.Max.Y-c.Min.Y-legendHeight, 0))
		c = draw.Crop(c, 0, 0, 0, -legendHeight)
	}
	f.Plot.Draw(c)
}
