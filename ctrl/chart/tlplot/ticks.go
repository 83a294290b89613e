package tlplot

import (
	"gonum.org/v1/plot"
	"math"
	"strconv"
)

// multiples of a power of ten that tick steps may use
var niceSteps = []float64{1, 2, 2.5, 5, 10}

// MaxNTicks places at most N evenly spaced major ticks on round values,
// choosing the smallest step that keeps the count within N. N below 2 is
// treated as 2.
type MaxNTicks struct {
	N int
}

var _ plot.Ticker = MaxNTicks{}

func (m MaxNTicks) Ticks(min, max float64) []plot.Tick {
	if math.IsNaN(min) || math.IsNaN(max) || math.IsInf(min, 0) || math.IsInf(max, 0) {
		return nil
	}
	if min > max {
		min, max = max, min
	}
	if min == max {
		return []plot.Tick{{Value: min, Label: formatTick(min, 0)}}
	}
	n := m.N
	if n < 2 {
		n = 2
	}

	raw := (max - min) / float64(n-1)
	magnitude := math.Pow(10, math.Floor(math.Log10(raw)))
	for {
		for _, s := range niceSteps {
			step := s * magnitude
			if step < raw {
				continue
			}
			first := math.Ceil(min/step - 1e-9)
			last := math.Floor(max/step + 1e-9)
			if int(last-first)+1 > n {
				continue
			}
			decimals := stepDecimals(step)
			var ticks []plot.Tick
			for k := first; k <= last; k++ {
				value := roundTo(k*step, decimals)
				ticks = append(ticks, plot.Tick{Value: value, Label: formatTick(value, decimals)})
			}
			return ticks
		}
		magnitude *= 10
	}
}

// number of decimal places needed to print multiples of step exactly
func stepDecimals(step float64) int {
	d := int(math.Ceil(-math.Log10(step))) + 1
	if d < 0 {
		return 0
	}
	return d
}

func roundTo(value float64, decimals int) float64 {
	scale := math.Pow(10, float64(decimals))
	value = math.Round(value*scale) / scale
	if value == 0 {
		// no "-0" labels
		return 0
	}
	return value
}

func formatTick(value float64, decimals int) string {
	return strconv.FormatFloat(roundTo(value, decimals), 'f', -1, 64)
}
