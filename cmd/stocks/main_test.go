package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Synthetic(t *testing.T) {
	t.Setenv("LVKIT_LOG_LEVEL", "error")
	t.Setenv("LVKIT_STOCKS_SYMBOLS", "AAA,BBB")
	t.Setenv("LVKIT_STOCKS_TRIALS", "20")

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-plot", "-metrics"}, &out))
	text := out.String()

	assert.Contains(t, text, "AAA\n====\nActual: [")
	assert.Contains(t, text, "BBB\n====\n")
	for _, o := range []int{1, 3, 5, 7, 9} {
		assert.Contains(t, text, "Order "+strconv.Itoa(o)+" : ")
	}
	assert.Contains(t, text, "Best order: ")
	assert.Contains(t, text, "AAA daily change %")
	assert.Contains(t, text, "< -1%")
	assert.Contains(t, text, `lvkit_markov_trials_total{order="1"} 40`)

	var again bytes.Buffer
	require.NoError(t, run(context.Background(), nil, &again))
	assert.Contains(t, text, strings.SplitN(again.String(), "\n\n", 2)[0], "same seed, same report")
}

func TestRun_DataDir(t *testing.T) {
	t.Setenv("LVKIT_LOG_LEVEL", "error")
	t.Setenv("LVKIT_STOCKS_ORDERS", "1,2")
	t.Setenv("LVKIT_STOCKS_TRIALS", "5")
	dir := t.TempDir()

	write := func(name string, n int) {
		var sb strings.Builder
		sb.WriteString("date,close\n")
		p := 100.0
		for i := 0; i < n; i++ {
			// Alternate up 2% and down 2%.
			if i%2 == 0 {
				p *= 1.02
			} else {
				p /= 1.02
			}
			sb.WriteString("d" + strconv.Itoa(i) + "," + strconv.FormatFloat(p, 'f', 6, 64) + "\n")
		}
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), []byte(sb.String()), 0o600))
	}
	write("ZIG.csv", 40)
	write("ZIG_test.csv", 20)

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-data", dir}, &out))
	assert.Contains(t, out.String(), "ZIG\n====\n")
	// A strictly alternating series is predicted exactly at order 1.
	assert.Contains(t, out.String(), "Order 1 : 0.0000")
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("LVKIT_LOG_LEVEL", "error")
	var out bytes.Buffer
	assert.Error(t, run(context.Background(), []string{"-data", filepath.Join(t.TempDir(), "none")}, &out))
}
