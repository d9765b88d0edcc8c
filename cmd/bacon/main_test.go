package main

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_Synthetic(t *testing.T) {
	t.Setenv("LVKIT_LOG_LEVEL", "error")
	dir := t.TempDir()
	save := filepath.Join(dir, "cast.tsv.sz")
	// A dense cast keeps every named actor connected.
	cfgPath := filepath.Join(dir, "lvkit.yaml")
	yml := "bacon:\n  synthetic:\n    movies: 200\n    cast_size: 6\n    actors: 40\n    seed: 3\n"
	require.NoError(t, os.WriteFile(cfgPath, []byte(yml), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfgPath, "-save", save, "-metrics"}, &out))

	text := out.String()
	assert.Contains(t, text, "Amy Adams (")
	assert.Contains(t, text, "Tina Fey (")
	assert.Contains(t, text, "lvkit_bfs_runs_total")
	assert.Contains(t, text, "Stephanie Fratus")

	var replay bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-config", cfgPath, "-file", save}, &replay))
	firstLines := func(s string) string { return strings.Join(strings.Split(s, "\n")[:12], "\n") }
	assert.Equal(t, firstLines(text), firstLines(replay.String()), "saved cast replays the same game")
}

func TestRun_File(t *testing.T) {
	t.Setenv("LVKIT_LOG_LEVEL", "error")
	t.Setenv("LVKIT_BACON_TARGETS", "Helen Hunt,Nobody")
	path := filepath.Join(t.TempDir(), "cast.tsv")
	cast := "Apollo 13\tKevin Bacon\tTom Hanks\nCast Away\tTom Hanks\tHelen Hunt\n"
	require.NoError(t, os.WriteFile(path, []byte(cast), 0o600))

	var out bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"-file", path}, &out))
	assert.Contains(t, out.String(), "Helen Hunt (2): Kevin Bacon -[Apollo 13]- Tom Hanks -[Cast Away]- Helen Hunt")
	assert.Contains(t, out.String(), "Nobody (inf): no path")
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("LVKIT_LOG_LEVEL", "error")
	var out bytes.Buffer
	assert.Error(t, run(context.Background(), []string{"-file", "/does/not/exist.tsv"}, &out))
	assert.Error(t, run(context.Background(), []string{"-bogus"}, &out))
}
