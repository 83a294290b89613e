package scans

import (
	"github.com/aoiview/seqchart/ctrl/chart/tlplot"
	"image/color"
	"math"
)

// Series is every event of one AOI, in log order. Rows holds the index of
// each event in the table it was split from.
type Series struct {
	AOI        string
	Timestamps []float64
	Rows       []int
}

var _ ScannedLine = &Series{}

func (s *Series) Label() string {
	return s.AOI
}

func (s *Series) LastTime() float64 {
	latest := math.Inf(-1)
	for _, timestamp := range s.Timestamps {
		latest = math.Max(latest, timestamp)
	}
	return latest
}

func (s *Series) BuildRow(location float64, length float64, clr color.Color) tlplot.EventRow {
	return tlplot.NewEventRow(s.Timestamps, location, length, clr)
}

// SplitByAOI partitions the table by AOI. Series appear in the order their
// AOI first occurs in the table.
func SplitByAOI(t *EventTable) []*Series {
	var out []*Series
	index := map[string]*Series{}
	for i, event := range t.Events {
		series := index[event.AOI]
		if series == nil {
			series = &Series{AOI: event.AOI}
			index[event.AOI] = series
			out = append(out, series)
		}
		series.Timestamps = append(series.Timestamps, event.Timestamp)
		series.Rows = append(series.Rows, i)
	}
	for _, series := range out {
		logger.WithField("aoi", series.AOI).Debugf("%d events", len(series.Timestamps))
	}
	return out
}

// Lines adapts series to the ScannedLine interface.
func Lines(series []*Series) []ScannedLine {
	lines := make([]ScannedLine, len(series))
	for i, s := range series {
		lines[i] = s
	}
	return lines
}
