// Package chart turns a gaze event log into an AOI sequence chart.
package chart

import (
	"errors"
	"fmt"
	"github.com/aoiview/seqchart/ctrl/chart/scans"
	"github.com/aoiview/seqchart/ctrl/chart/tlplot"
	"github.com/sirupsen/logrus"
	"gonum.org/v1/plot/vg"
)

const (
	FigureWidth   = 22 * vg.Inch
	FigureHeight  = 11 * vg.Inch
	LineLength    = 0.8
	LegendColumns = 3
	MaxTimeTicks  = 20
	TimeLabel     = "Time in s"

	OutputName   = "test.pdf"
	OutputFormat = "pdf"
)

// ErrIO marks failures to write the chart.
var ErrIO = errors.New("i/o error")

var logger = logrus.WithField("tag", "chart")

// GenerateFigure draws one raster row per line, row i at y=i, with a legend
// entry per line in the same order.
func GenerateFigure(lines []scans.ScannedLine) *tlplot.Figure {
	fig := tlplot.NewFigure(FigureWidth, FigureHeight, LegendColumns)
	p := fig.Plot

	raster := &tlplot.EventRaster{
		Rows: make([]tlplot.EventRow, len(lines)),
	}
	for i, line := range lines {
		raster.Rows[i] = line.BuildRow(float64(i), LineLength, tlplot.CycleColor(i))
		logger.WithFields(logrus.Fields{
			"aoi":   line.Label(),
			"color": tlplot.CycleColorID(i),
			"last":  line.LastTime(),
		}).Debug("added row")
	}
	p.Add(raster)
	for i, line := range lines {
		fig.Legend.Add(line.Label(), &raster.Rows[i])
	}

	fig.HideY()
	p.X.Label.Text = TimeLabel
	p.X.Tick.Marker = tlplot.MaxNTicks{N: MaxTimeTicks}

	fig.SetSize(FigureWidth, FigureHeight)
	return fig
}

// OutputPath is where Generate writes the chart for a given save directory.
func OutputPath(saveDir string) string {
	return saveDir + "/" + OutputName
}

// Generate reads the event log at dataPath and writes its sequence chart to
// OutputPath(saveDir). saveDir must already exist.
func Generate(dataPath, saveDir string) error {
	table, err := scans.ScanEventLog(dataPath)
	if err != nil {
		return err
	}
	if err := table.NormalizeTimestamps(); err != nil {
		return err
	}
	series := scans.SplitByAOI(table)
	fig := GenerateFigure(scans.Lines(series))

	outPath := OutputPath(saveDir)
	if err := tlplot.SaveFigure(fig, outPath, OutputFormat); err != nil {
		return fmt.Errorf("%w: writing %s: %w", ErrIO, outPath, err)
	}
	logger.WithFields(logrus.Fields{
		"path":   outPath,
		"events": len(table.Events),
		"aois":   len(series),
	}).Info("wrote sequence chart")
	return nil
}
