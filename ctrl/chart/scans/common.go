package scans

import (
	"errors"
	"github.com/aoiview/seqchart/ctrl/chart/tlplot"
	"github.com/sirupsen/logrus"
	"image/color"
)

// ErrData marks every failure caused by the input file rather than by the
// environment.
var ErrData = errors.New("data error")

var logger = logrus.WithField("tag", "scans")

type ScannedLine interface {
	Label() string
	LastTime() float64
	BuildRow(location float64, length float64, clr color.Color) tlplot.EventRow
}
