package tlplot

import (
	"github.com/hashicorp/go-multierror"
	"gonum.org/v1/plot/vg/draw"
	_ "gonum.org/v1/plot/vg/vgpdf" // pdf format
	"io"
	"os"
)

func WriteFigure(f *Figure, output io.Writer, format string) error {
	c, err := draw.NewFormattedCanvas(f.Width, f.Height, format)
	if err != nil {
		return err
	}
	f.Draw(draw.New(c))
	_, err = c.WriteTo(output)
	return err
}

func combineErrors(errors ...error) (err error) {
	for _, e := range errors {
		switch {
		case e == nil:
			// ignore
		case err == nil:
			err = e
		default:
			err = multierror.Append(err, e)
		}
	}
	return err
}

func WriteCloseFigure(f *Figure, output io.WriteCloser, format string) (err error) {
	defer func() {
		e := output.Close()
		err = combineErrors(err, e)
	}()
	return WriteFigure(f, output, format)
}

// SaveFigure creates (or truncates) path and writes the figure to it. The
// parent directory must already exist.
func SaveFigure(f *Figure, path string, format string) error {
	output, err := os.Create(path)
	if err != nil {
		return err
	}
	return WriteCloseFigure(f, output, format)
}
