package main

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRun_HelloWorldCodewords(t *testing.T) {
	t.Setenv("LVKIT_LOG_LEVEL", "error")
	var out bytes.Buffer
	args := []string{"-data", "32,91,11,120,209,114,220,77,67,64,236,17,236,17,236,17", "-k", "10", "-metrics"}
	require.NoError(t, run(args, &out))

	assert.Contains(t, out.String(), "Correction: [196 35 39 119 235 215 231 226 93 23]")
	assert.Contains(t, out.String(), "Remainder:  Polynomial: ")
	assert.Contains(t, out.String(), "lvkit_rs_codewords_total 10")
}

func TestRun_Message(t *testing.T) {
	t.Setenv("LVKIT_LOG_LEVEL", "error")
	var out bytes.Buffer
	require.NoError(t, run([]string{"-message", "A", "-k", "4"}, &out))
	assert.Contains(t, out.String(), "Data:       [64 20 16 236 17 236 17 236 17 236 17 236 17 236 17 236]")
}

func TestRun_Errors(t *testing.T) {
	t.Setenv("LVKIT_LOG_LEVEL", "error")
	var out bytes.Buffer
	assert.Error(t, run([]string{"-data", "1,300"}, &out))
	assert.Error(t, run([]string{"-message", "this message is far too long for version one"}, &out))
}
