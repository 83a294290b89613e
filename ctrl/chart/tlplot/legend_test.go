package tlplot

import (
	"testing"
)

func legendWith(columns, entries int) *Legend {
	l := NewLegend(columns)
	for i := 0; i < entries; i++ {
		l.Add(CycleColorID(i), &EventRow{})
	}
	return l
}

func TestLegendCells(t *testing.T) {
	cases := []struct {
		entries int
		cells   [][2]int
	}{
		{1, [][2]int{{0, 0}}},
		{3, [][2]int{{0, 0}, {1, 0}, {2, 0}}},
		{4, [][2]int{{0, 0}, {0, 1}, {1, 0}, {2, 0}}},
		{5, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}}},
		{6, [][2]int{{0, 0}, {0, 1}, {1, 0}, {1, 1}, {2, 0}, {2, 1}}},
	}
	for _, c := range cases {
		l := legendWith(3, c.entries)
		for i, want := range c.cells {
			column, row := l.Cell(i)
			if column != want[0] || row != want[1] {
				t.Errorf("%d entries, entry %d: got (%d, %d), want (%d, %d)",
					c.entries, i, column, row, want[0], want[1])
			}
		}
	}
}

func TestLegendCellsUnique(t *testing.T) {
	for n := 1; n < 40; n++ {
		l := legendWith(3, n)
		seen := map[[2]int]bool{}
		for i := 0; i < n; i++ {
			column, row := l.Cell(i)
			if column < 0 || column >= 3 || row < 0 || row >= l.Rows() {
				t.Fatalf("%d entries: entry %d at (%d, %d) outside grid", n, i, column, row)
			}
			if seen[[2]int{column, row}] {
				t.Fatalf("%d entries: cell (%d, %d) used twice", n, column, row)
			}
			seen[[2]int{column, row}] = true
		}
	}
}

func TestLegendHeight(t *testing.T) {
	if h := legendWith(3, 0).Height(); h != 0 {
		t.Errorf("empty legend has height %v", h)
	}
	one, four := legendWith(3, 3).Height(), legendWith(3, 4).Height()
	if one <= 0 || four <= one {
		t.Errorf("unexpected heights: one row %v, two rows %v", one, four)
	}
}
