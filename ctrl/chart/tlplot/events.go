package tlplot

import (
	"errors"
	"golang.org/x/exp/slices"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"image/color"
)

// DefaultEventLineWidth is the stroke width of raster ticks.
var DefaultEventLineWidth = vg.Points(1.5)

// EventRow is one horizontal row of an event raster: a vertical tick of
// height Length (in Y data units) is drawn at every position, centered on
// Offset.
type EventRow struct {
	Positions []float64
	Offset    float64
	Length    float64
	LineStyle draw.LineStyle
}

var _ plot.Thumbnailer = &EventRow{}

// Thumbnail draws a horizontal stroke in the row's style, for legends.
func (r *EventRow) Thumbnail(c *draw.Canvas) {
	y := c.Center().Y
	c.StrokeLine2(r.LineStyle, c.Min.X, y, c.Max.X, y)
}

func NewEventRow(positions []float64, offset float64, length float64, clr color.Color) EventRow {
	style := plotter.DefaultLineStyle
	style.Color = clr
	style.Width = DefaultEventLineWidth
	return EventRow{
		Positions: slices.Clone(positions),
		Offset:    offset,
		Length:    length,
		LineStyle: style,
	}
}

// EventRaster draws several EventRows on shared axes.
type EventRaster struct {
	Rows []EventRow
}

var _ plot.Plotter = &EventRaster{}
var _ plot.DataRanger = &EventRaster{}

// NewEventRaster builds one row per position sequence; row i sits at offset i.
// colors and lengths must match positions one to one.
func NewEventRaster(positions [][]float64, colors []color.Color, lengths []float64) (*EventRaster, error) {
	if len(colors) != len(positions) || len(lengths) != len(positions) {
		return nil, errors.New("event raster: positions, colors and lengths differ in length")
	}
	raster := &EventRaster{
		Rows: make([]EventRow, len(positions)),
	}
	for i := range positions {
		raster.Rows[i] = NewEventRow(positions[i], float64(i), lengths[i], colors[i])
	}
	return raster, nil
}

func (e *EventRaster) Plot(c draw.Canvas, plt *plot.Plot) {
	trX, trY := plt.Transforms(&c)
	for _, row := range e.Rows {
		yLow, yHigh := trY(row.Offset-row.Length/2), trY(row.Offset+row.Length/2)
		for _, position := range row.Positions {
			x := trX(position)
			if !c.ContainsX(x) {
				continue
			}
			c.StrokeLine2(row.LineStyle, x, yLow, x, yHigh)
		}
	}
}

// each event contributes its bottom and top endpoint
type rasterconv EventRaster

func (e *rasterconv) Len() (n int) {
	for _, row := range e.Rows {
		n += len(row.Positions) * 2
	}
	return n
}

func (e *rasterconv) XY(i int) (x, y float64) {
	for _, row := range e.Rows {
		if i < len(row.Positions)*2 {
			if i%2 == 0 {
				return row.Positions[i/2], row.Offset - row.Length/2
			}
			return row.Positions[i/2], row.Offset + row.Length/2
		}
		i -= len(row.Positions) * 2
	}
	panic("invalid index")
}

func (e *EventRaster) DataRange() (xmin, xmax, ymin, ymax float64) {
	return plotter.XYRange((*rasterconv)(e))
}
