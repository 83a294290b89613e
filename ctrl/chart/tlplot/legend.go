package tlplot

import (
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/font"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/text"
	"gonum.org/v1/plot/vg"
	"gonum.org/v1/plot/vg/draw"
	"image/color"
	"math"
)

type LegendEntry struct {
	Label     string
	Thumbnail plot.Thumbnailer
}

// Legend lays its entries out in Columns columns of equal width across the
// whole canvas it is drawn on. Entries fill columns top to bottom; when the
// entries do not divide evenly the leftmost columns hold one extra entry.
type Legend struct {
	Entries        []LegendEntry
	Columns        int
	TextStyle      draw.TextStyle
	ThumbnailWidth vg.Length
	Padding        vg.Length
	FrameStyle     draw.LineStyle
}

func NewLegend(columns int) *Legend {
	return &Legend{
		Columns: columns,
		TextStyle: text.Style{
			Color:    color.Black,
			Font:     font.From(plotter.DefaultFont, plotter.DefaultFontSize),
			Rotation: 0,
			XAlign:   draw.XLeft,
			YAlign:   draw.YCenter,
			Handler:  plot.DefaultTextHandler,
		},
		ThumbnailWidth: vg.Points(20),
		Padding:        vg.Points(5),
		FrameStyle: draw.LineStyle{
			Color: color.Gray{Y: 204},
			Width: vg.Points(0.8),
		},
	}
}

func (l *Legend) Add(label string, thumbnail plot.Thumbnailer) {
	l.Entries = append(l.Entries, LegendEntry{
		Label:     label,
		Thumbnail: thumbnail,
	})
}

func (l *Legend) columns() int {
	if l.Columns < 1 {
		return 1
	}
	return l.Columns
}

// Rows is the number of rows the tallest column needs.
func (l *Legend) Rows() int {
	cols := l.columns()
	return (len(l.Entries) + cols - 1) / cols
}

// Cell returns the column and row that entry i is drawn in.
func (l *Legend) Cell(i int) (column, row int) {
	cols := l.columns()
	perColumn, extra := len(l.Entries)/cols, len(l.Entries)%cols
	// the first `extra` columns hold perColumn+1 entries each
	if i < extra*(perColumn+1) {
		return i / (perColumn + 1), i % (perColumn + 1)
	}
	i -= extra * (perColumn + 1)
	return extra + i/perColumn, i % perColumn
}

func (l *Legend) rowHeight() (height vg.Length) {
	for _, entry := range l.Entries {
		height = vg.Length(math.Max(float64(height), float64(l.TextStyle.Height(entry.Label))))
	}
	return height + l.Padding
}

// Height is the vertical space Draw needs; zero when there are no entries.
func (l *Legend) Height() vg.Length {
	if len(l.Entries) == 0 {
		return 0
	}
	return vg.Length(l.Rows())*l.rowHeight() + l.Padding
}

func (l *Legend) Draw(c draw.Canvas) {
	if len(l.Entries) == 0 {
		return
	}
	frame := []vg.Point{
		{X: c.Min.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Min.Y},
		{X: c.Max.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Max.Y},
		{X: c.Min.X, Y: c.Min.Y},
	}
	c.StrokeLines(l.FrameStyle, frame)

	columnWidth := (c.Max.X - c.Min.X) / vg.Length(l.columns())
	rowHeight := l.rowHeight()
	top := c.Max.Y - l.Padding/2
	for i, entry := range l.Entries {
		column, row := l.Cell(i)
		x := c.Min.X + vg.Length(column)*columnWidth + l.Padding
		yMid := top - vg.Length(row)*rowHeight - rowHeight/2

		thumb := draw.Canvas{
			Canvas: c.Canvas,
			Rectangle: vg.Rectangle{
				Min: vg.Point{X: x, Y: yMid - rowHeight/4},
				Max: vg.Point{X: x + l.ThumbnailWidth, Y: yMid + rowHeight/4},
			},
		}
		entry.Thumbnail.Thumbnail(&thumb)

		c.FillText(l.TextStyle, vg.Point{
			X: x + l.ThumbnailWidth + l.Padding,
			Y: yMid,
		}, entry.Label)
	}
}
