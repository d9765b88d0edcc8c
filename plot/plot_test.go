package plot_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/katalvlaran/lvkit/bfs"
	"github.com/katalvlaran/lvkit/plot"
)

func TestBars(t *testing.T) {
	out := plot.Bars("Kevin Bacon", map[int]int{0: 1, 1: 4, 2: 8, bfs.Unreachable: 2}, plot.DistanceLabel, 8)

	assert.Contains(t, out, "Kevin Bacon")
	assert.Contains(t, out, "inf")
	assert.Contains(t, out, strings.Repeat("█", 8)+" 8")
	assert.Contains(t, out, strings.Repeat("█", 4)+" 4")
	assert.Contains(t, out, "█ 1", "small counts still get a cell")

	// Rows follow ascending keys, so "inf" comes last.
	assert.Less(t, strings.Index(out, "█ 1"), strings.Index(out, "inf"))
}

func TestBars_Defaults(t *testing.T) {
	out := plot.Bars("empty", map[int]int{}, nil, 0)
	assert.Contains(t, out, "empty")

	out = plot.Bars("zero", map[int]int{3: 0}, nil, 0)
	assert.Contains(t, out, "3")
	assert.NotContains(t, out, "█")
}

func TestLabels(t *testing.T) {
	assert.Equal(t, "inf", plot.DistanceLabel(bfs.Unreachable))
	assert.Equal(t, "3", plot.DistanceLabel(3))
	assert.Equal(t, "< -1%", plot.BinLabel(0))
	assert.Equal(t, ">= 1%", plot.BinLabel(3))
	assert.Equal(t, "bin 7", plot.BinLabel(7))
}

func TestSparkline(t *testing.T) {
	out := plot.Sparkline("FSLR", []float64{-2, 0, 2})
	assert.Contains(t, out, "▁")
	assert.Contains(t, out, "█")
	assert.Contains(t, out, "min -2.00  max 2.00")

	flat := plot.Sparkline("flat", []float64{1, 1})
	assert.Contains(t, flat, "▁▁")

	assert.Contains(t, plot.Sparkline("none", nil), "none")
}
