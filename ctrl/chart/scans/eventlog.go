package scans

import (
	"encoding/csv"
	"fmt"
	"github.com/hashicorp/go-multierror"
	"github.com/sirupsen/logrus"
	"golang.org/x/exp/slices"
	"io"
	"math"
	"os"
	"strconv"
	"strings"
)

const (
	ColumnTimestamp = "Timestamp"
	ColumnAOI       = "AOI"
)

type Event struct {
	Timestamp float64
	AOI       string
}

// EventTable is a gaze event log reduced to the columns the chart needs.
type EventTable struct {
	Columns    []string
	Events     []Event
	normalized bool
}

type ParseError struct {
	Line   int
	Column string
	Value  string
	Err    error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("line %d: column %s: invalid value %q: %v", e.Line, e.Column, e.Value, e.Err)
}

func (e *ParseError) Unwrap() error {
	return e.Err
}

func (e *ParseError) Is(target error) bool {
	return target == ErrData
}

func locateColumns(header []string) (timestampIdx, aoiIdx int, err error) {
	var result *multierror.Error
	timestampIdx = slices.Index(header, ColumnTimestamp)
	if timestampIdx < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: missing column %q", ErrData, ColumnTimestamp))
	}
	aoiIdx = slices.Index(header, ColumnAOI)
	if aoiIdx < 0 {
		result = multierror.Append(result, fmt.Errorf("%w: missing column %q", ErrData, ColumnAOI))
	}
	return timestampIdx, aoiIdx, result.ErrorOrNil()
}

func ReadEventLog(r io.Reader) (*EventTable, error) {
	cr := csv.NewReader(r)

	header, err := cr.Read()
	if err != nil {
		if err == io.EOF {
			err = io.ErrUnexpectedEOF
		}
		return nil, fmt.Errorf("%w: reading header: %w", ErrData, err)
	}
	if len(header) > 0 {
		header[0] = strings.TrimPrefix(header[0], "\ufeff")
	}
	for i := range header {
		header[i] = strings.TrimSpace(header[i])
	}
	timestampIdx, aoiIdx, err := locateColumns(header)
	if err != nil {
		return nil, err
	}

	table := &EventTable{
		Columns: slices.Clone(header),
	}
	for {
		row, err := cr.Read()
		if err == io.EOF {
			return table, nil
		} else if err != nil {
			return nil, fmt.Errorf("%w: %w", ErrData, err)
		}
		raw := strings.TrimSpace(row[timestampIdx])
		timestamp, err := strconv.ParseFloat(raw, 64)
		if err == nil && (math.IsNaN(timestamp) || math.IsInf(timestamp, 0)) {
			err = fmt.Errorf("not a finite number")
		}
		if err != nil {
			line, _ := cr.FieldPos(timestampIdx)
			return nil, &ParseError{
				Line:   line,
				Column: ColumnTimestamp,
				Value:  raw,
				Err:    err,
			}
		}
		table.Events = append(table.Events, Event{
			Timestamp: timestamp,
			AOI:       row[aoiIdx],
		})
	}
}

// ScanEventLog loads a CSV event log with a header row naming at least the
// Timestamp and AOI columns. Other columns are ignored.
func ScanEventLog(path string) (*EventTable, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrData, err)
	}
	defer func() {
		_ = f.Close()
	}()
	table, err := ReadEventLog(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	logger.WithFields(logrus.Fields{
		"path":    path,
		"columns": len(table.Columns),
		"events":  len(table.Events),
	}).Debug("loaded event log")
	return table, nil
}
