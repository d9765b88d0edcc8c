// SPDX-License-Identifier: MIT

package stocks

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"strings"
)

const testSuffix = "_test.csv"

// LoadPrices reads closing prices from a CSV whose header names a "close"
// column (case-insensitive), e.g. "date,close". Rows keep file order.
func LoadPrices(r io.Reader) ([]float64, error) {
	cr := csv.NewReader(r)
	cr.TrimLeadingSpace = true

	header, err := cr.Read()
	if err != nil {
		return nil, fmt.Errorf("LoadPrices: header: %w", ErrBadCSV)
	}
	col := -1
	for i, name := range header {
		if strings.EqualFold(strings.TrimSpace(name), "close") {
			col = i
			break
		}
	}
	if col < 0 {
		return nil, fmt.Errorf("LoadPrices: no close column in %v: %w", header, ErrBadCSV)
	}

	var prices []float64
	for line := 2; ; line++ {
		rec, err := cr.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("LoadPrices: line %d: %v: %w", line, err, ErrBadCSV)
		}
		if col >= len(rec) {
			return nil, fmt.Errorf("LoadPrices: line %d: short record: %w", line, ErrBadCSV)
		}
		p, err := strconv.ParseFloat(strings.TrimSpace(rec[col]), 64)
		if err != nil || p <= 0 {
			return nil, fmt.Errorf("LoadPrices: line %d: close %q: %w", line, rec[col], ErrBadCSV)
		}
		prices = append(prices, p)
	}
	return prices, nil
}

// LoadFile opens path and reads it with LoadPrices.
func LoadFile(path string) ([]float64, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadFile: %w", err)
	}
	defer f.Close()

	prices, err := LoadPrices(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return prices, nil
}

// LoadDir loads every SYMBOL.csv in dir together with SYMBOL_test.csv.
// A training file without a test file fails with ErrMissingTest; a
// directory with no training file fails with ErrNoData.
func LoadDir(dir string) (map[string]Series, error) {
	matches, err := filepath.Glob(filepath.Join(dir, "*.csv"))
	if err != nil {
		return nil, fmt.Errorf("LoadDir: %w", err)
	}
	sort.Strings(matches)

	out := make(map[string]Series)
	for _, path := range matches {
		base := filepath.Base(path)
		if strings.HasSuffix(base, testSuffix) {
			continue
		}
		symbol := strings.TrimSuffix(base, ".csv")

		train, err := LoadFile(path)
		if err != nil {
			return nil, fmt.Errorf("LoadDir: %w", err)
		}
		testPath := filepath.Join(dir, symbol+testSuffix)
		if _, err := os.Stat(testPath); err != nil {
			return nil, fmt.Errorf("LoadDir: %s: %w", symbol, ErrMissingTest)
		}
		test, err := LoadFile(testPath)
		if err != nil {
			return nil, fmt.Errorf("LoadDir: %w", err)
		}
		out[symbol] = Series{Train: train, Test: test}
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("LoadDir: %s: %w", dir, ErrNoData)
	}
	return out, nil
}
