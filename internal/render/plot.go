package render

import (
	"math"
	"strings"

	"github.com/cwbudde/algo-am/dsp/core"
)

var barChars = []rune(" ▁▂▃▄▅▆▇█")

// Bars draws non-negative values as vertical bars, height rows tall.
// Values are reduced to at most width columns by taking the column maximum.
func Bars(values []float64, width, height int) string {
	cols := reduce(values, width, func(lo, hi float64) float64 { return math.Max(math.Abs(lo), math.Abs(hi)) })
	if len(cols) == 0 || height < 1 {
		return ""
	}

	maxVal := 0.0
	for _, c := range cols {
		maxVal = math.Max(maxVal, c.max)
	}
	if maxVal == 0 {
		maxVal = 1
	}

	rows := make([]string, height)
	for row := range height {
		var line strings.Builder
		rowFromBottom := float64(height - 1 - row)
		for _, c := range cols {
			level := core.Clamp(c.max/maxVal, 0, 1) * float64(height)
			idx := 0
			if level >= rowFromBottom+1 {
				idx = len(barChars) - 1
			} else if level > rowFromBottom {
				idx = int((level - rowFromBottom) * float64(len(barChars)-1))
			}
			line.WriteRune(barChars[idx])
		}
		rows[row] = line.String()
	}
	return strings.Join(rows, "\n")
}

// Trace draws a signed waveform. Each column spans the minimum and maximum
// of the samples it covers; a column holding a single level is drawn as a dot.
func Trace(values []float64, width, height int) string {
	cols := reduce(values, width, nil)
	if len(cols) == 0 || height < 1 {
		return ""
	}

	amp := 0.0
	for _, c := range cols {
		amp = math.Max(amp, math.Max(math.Abs(c.min), math.Abs(c.max)))
	}
	if amp == 0 {
		amp = 1
	}
	toRow := func(v float64) int {
		pos := (1 - (v+amp)/(2*amp)) * float64(height-1)
		return int(core.Clamp(math.Round(pos), 0, float64(height-1)))
	}

	grid := make([][]rune, height)
	for r := range grid {
		grid[r] = []rune(strings.Repeat(" ", len(cols)))
	}
	for x, c := range cols {
		top, bottom := toRow(c.max), toRow(c.min)
		if top == bottom {
			grid[top][x] = '•'
			continue
		}
		for r := top; r <= bottom; r++ {
			grid[r][x] = '│'
		}
	}

	rows := make([]string, height)
	for r := range grid {
		rows[r] = string(grid[r])
	}
	return strings.Join(rows, "\n")
}

type column struct {
	min, max float64
}

// reduce splits values into at most width equal columns. When fold is set
// the column max is replaced by fold(min, max).
func reduce(values []float64, width int, fold func(lo, hi float64) float64) []column {
	n := len(values)
	if n == 0 || width < 1 {
		return nil
	}
	cols := min(width, n)

	out := make([]column, cols)
	for c := range cols {
		lo := c * n / cols
		hi := (c + 1) * n / cols
		col := column{min: values[lo], max: values[lo]}
		for _, v := range values[lo+1 : hi] {
			col.min = math.Min(col.min, v)
			col.max = math.Max(col.max, v)
		}
		if fold != nil {
			col.max = fold(col.min, col.max)
		}
		out[c] = col
	}
	return out
}
