// SPDX-License-Identifier: MIT

// Package plot renders small terminal charts: horizontal bar histograms for
// BFS distances and stock bins, and sparklines for daily changes.
package plot

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/katalvlaran/lvkit/bfs"
)

// DefaultWidth is the length of the longest bar in cells.
const DefaultWidth = 40

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#FF00FF"))

	labelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FFFF")).
			Align(lipgloss.Right)

	barStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#00FF00"))

	countStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	boxStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#FFFF00")).
			Padding(0, 1)
)

// Bars renders counts as a horizontal bar chart, one row per key in
// ascending key order. label formats keys; nil uses strconv.Itoa. Non-zero
// counts always get at least one cell. width < 1 uses DefaultWidth.
func Bars(title string, counts map[int]int, label func(int) string, width int) string {
	if label == nil {
		label = strconv.Itoa
	}
	if width < 1 {
		width = DefaultWidth
	}

	keys := make([]int, 0, len(counts))
	maxCount, labelWidth := 0, 0
	for k, c := range counts {
		keys = append(keys, k)
		if c > maxCount {
			maxCount = c
		}
		if w := lipgloss.Width(label(k)); w > labelWidth {
			labelWidth = w
		}
	}
	sort.Ints(keys)

	rows := make([]string, 0, len(keys)+1)
	rows = append(rows, titleStyle.Render(title))
	for _, k := range keys {
		c := counts[k]
		n := 0
		if maxCount > 0 {
			n = c * width / maxCount
		}
		if c > 0 && n == 0 {
			n = 1
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top,
			labelStyle.Width(labelWidth).Render(label(k)),
			" ",
			barStyle.Render(strings.Repeat("█", n)),
			" ",
			countStyle.Render(strconv.Itoa(c)),
		))
	}
	return boxStyle.Render(lipgloss.JoinVertical(lipgloss.Left, rows...))
}

// DistanceLabel prints hop distances with "inf" for bfs.Unreachable.
func DistanceLabel(d int) string {
	if d == bfs.Unreachable {
		return "inf"
	}
	return strconv.Itoa(d)
}

// BinLabel names the four daily-change bins.
func BinLabel(b int) string {
	switch b {
	case 0:
		return "< -1%"
	case 1:
		return "-1%..0%"
	case 2:
		return "0%..1%"
	case 3:
		return ">= 1%"
	default:
		return fmt.Sprintf("bin %d", b)
	}
}

var sparks = []rune("▁▂▃▄▅▆▇█")

// Sparkline renders values as one row of block characters scaled between
// their minimum and maximum. Empty input renders the title only.
func Sparkline(title string, values []float64) string {
	if len(values) == 0 {
		return titleStyle.Render(title)
	}
	lo, hi := math.Inf(1), math.Inf(-1)
	for _, v := range values {
		lo = math.Min(lo, v)
		hi = math.Max(hi, v)
	}
	var sb strings.Builder
	for _, v := range values {
		i := 0
		if hi > lo {
			i = int((v - lo) / (hi - lo) * float64(len(sparks)-1))
		}
		sb.WriteRune(sparks[i])
	}
	caption := countStyle.Render(fmt.Sprintf("min %.2f  max %.2f", lo, hi))
	return lipgloss.JoinVertical(lipgloss.Left, titleStyle.Render(title), barStyle.Render(sb.String()), caption)
}
