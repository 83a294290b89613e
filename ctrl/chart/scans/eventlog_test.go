package scans

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestReadEventLog(t *testing.T) {
	table, err := ReadEventLog(strings.NewReader("Timestamp,AOI\n1000,A\n2000,A\n3000,B\n"))
	if err != nil {
		t.Fatal(err)
	}
	expected := []Event{{1000, "A"}, {2000, "A"}, {3000, "B"}}
	if len(table.Events) != len(expected) {
		t.Fatalf("expected %d events, got %d", len(expected), len(table.Events))
	}
	for i, event := range table.Events {
		if event != expected[i] {
			t.Errorf("event %d: expected %v, got %v", i, expected[i], event)
		}
	}
}

func TestReadEventLogCaptureFormat(t *testing.T) {
	data := "Timestamp,VideoFrame,GazeDirection_x,GazeDirection_y,GazeDirection_z,delta_angle,velocity_deg/s,AOI,CombinedValidity\n" +
		"0,12,0.1,0.2,0.97,0,0,null,True\n" +
		"8,12,0.1,0.2,0.97,0.01,1.25,Door,True\n"
	table, err := ReadEventLog(strings.NewReader(data))
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Columns) != 9 {
		t.Errorf("expected 9 columns, got %v", table.Columns)
	}
	if table.Events[0].AOI != "null" || table.Events[1].AOI != "Door" || table.Events[1].Timestamp != 8 {
		t.Errorf("unexpected events: %v", table.Events)
	}
}

func TestReadEventLogHeaderOnly(t *testing.T) {
	table, err := ReadEventLog(strings.NewReader("Timestamp,AOI\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Events) != 0 {
		t.Errorf("expected no events, got %v", table.Events)
	}
}

func TestReadEventLogByteOrderMark(t *testing.T) {
	table, err := ReadEventLog(strings.NewReader("\ufeffTimestamp,AOI\n5,A\n"))
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Events) != 1 || table.Events[0].Timestamp != 5 {
		t.Errorf("unexpected events: %v", table.Events)
	}
}

func TestReadEventLogEmpty(t *testing.T) {
	_, err := ReadEventLog(strings.NewReader(""))
	if !errors.Is(err, ErrData) || !errors.Is(err, io.ErrUnexpectedEOF) {
		t.Errorf("expected data error for empty input, got %v", err)
	}
}

func TestReadEventLogMissingColumns(t *testing.T) {
	_, err := ReadEventLog(strings.NewReader("Time,Area\n1,A\n"))
	if !errors.Is(err, ErrData) {
		t.Fatalf("expected data error, got %v", err)
	}
	for _, column := range []string{ColumnTimestamp, ColumnAOI} {
		if !strings.Contains(err.Error(), column) {
			t.Errorf("error %q does not name column %s", err, column)
		}
	}

	_, err = ReadEventLog(strings.NewReader("Timestamp,Area\n1,A\n"))
	if err == nil || strings.Contains(err.Error(), `"Timestamp"`) || !strings.Contains(err.Error(), ColumnAOI) {
		t.Errorf("expected only AOI to be reported missing, got %v", err)
	}
}

func TestReadEventLogBadTimestamp(t *testing.T) {
	_, err := ReadEventLog(strings.NewReader("Timestamp,AOI\n1000,A\nsoon,B\n"))
	var parseErr *ParseError
	if !errors.As(err, &parseErr) {
		t.Fatalf("expected parse error, got %v", err)
	}
	if parseErr.Line != 3 || parseErr.Value != "soon" || parseErr.Column != ColumnTimestamp {
		t.Errorf("unexpected parse error details: %+v", parseErr)
	}
	if !errors.Is(err, ErrData) {
		t.Error("parse error is not a data error")
	}

	_, err = ReadEventLog(strings.NewReader("Timestamp,AOI\nNaN,A\n"))
	if !errors.As(err, &parseErr) {
		t.Errorf("expected NaN to be rejected, got %v", err)
	}
}

func TestReadEventLogRaggedRow(t *testing.T) {
	_, err := ReadEventLog(strings.NewReader("Timestamp,AOI\n1000,A,extra\n"))
	if !errors.Is(err, ErrData) {
		t.Errorf("expected data error, got %v", err)
	}
}

func TestScanEventLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "samples.csv")
	if err := os.WriteFile(path, []byte("Timestamp,AOI\n1,A\n"), 0666); err != nil {
		t.Fatal(err)
	}
	table, err := ScanEventLog(path)
	if err != nil {
		t.Fatal(err)
	}
	if len(table.Events) != 1 {
		t.Errorf("unexpected events: %v", table.Events)
	}
}

func TestScanEventLogMissingFile(t *testing.T) {
	_, err := ScanEventLog(filepath.Join(t.TempDir(), "absent.csv"))
	if !errors.Is(err, ErrData) || !errors.Is(err, os.ErrNotExist) {
		t.Errorf("expected data error wrapping not-exist, got %v", err)
	}
}
