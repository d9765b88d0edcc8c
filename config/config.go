// SPDX-License-Identifier: MIT

// Package config loads command settings: defaults first, then an optional
// YAML file, then LVKIT_* environment overrides. The result is validated
// with struct tags before use.
package config

import (
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/lvkit/reedsolomon"
)

// EnvPrefix prefixes every environment override, e.g. LVKIT_LOG_LEVEL.
const EnvPrefix = "LVKIT_"

// ErrInvalid wraps every validation failure.
var ErrInvalid = errors.New("config: invalid")

// Config holds the settings of all three commands.
type Config struct {
	Log     LogConfig     `yaml:"log"`
	Bacon   BaconConfig   `yaml:"bacon"`
	QR      QRConfig      `yaml:"qr"`
	Stocks  StocksConfig  `yaml:"stocks"`
	Metrics MetricsConfig `yaml:"metrics"`
}

// LogConfig selects the zap logger.
type LogConfig struct {
	Level string `yaml:"level" validate:"oneof=debug info warn error"`
	Env   string `yaml:"env" validate:"oneof=development production"`
}

// BaconConfig drives cmd/bacon. An empty File plays on a synthetic cast.
type BaconConfig struct {
	File       string        `yaml:"file"`
	Start      string        `yaml:"start" validate:"required"`
	Targets    []string      `yaml:"targets" validate:"dive,required"`
	Histograms []string      `yaml:"histograms" validate:"dive,required"`
	Synthetic  SyntheticCast `yaml:"synthetic"`
}

// SyntheticCast sizes the generated co-star network.
type SyntheticCast struct {
	Movies   int   `yaml:"movies" validate:"min=1"`
	CastSize int   `yaml:"cast_size" validate:"min=2,ltefield=Actors"`
	Actors   int   `yaml:"actors" validate:"min=2"`
	Seed     int64 `yaml:"seed"`
}

// QRConfig drives cmd/qrcode.
type QRConfig struct {
	Message         string `yaml:"message"`
	DataCodewords   int    `yaml:"data_codewords" validate:"min=1,max=255"`
	CorrectionBytes int    `yaml:"correction_bytes" validate:"min=0,max=255"`
}

// StocksConfig drives cmd/stocks. An empty DataDir uses synthetic prices
// for Symbols.
type StocksConfig struct {
	DataDir     string   `yaml:"data_dir"`
	Symbols     []string `yaml:"symbols" validate:"required_without=DataDir,dive,required"`
	Days        int      `yaml:"days" validate:"min=2"`
	Orders      []int    `yaml:"orders" validate:"min=1,dive,min=1"`
	Trials      int      `yaml:"trials" validate:"min=1"`
	Horizon     int      `yaml:"horizon" validate:"min=1"`
	Seed        int64    `yaml:"seed"`
	Parallelism int      `yaml:"parallelism" validate:"min=1"`
}

// MetricsConfig toggles the text dump of the metrics registry on exit.
type MetricsConfig struct {
	Dump bool `yaml:"dump"`
}

// Default returns the settings of the classic exercises.
func Default() Config {
	return Config{
		Log: LogConfig{Level: "info", Env: "development"},
		Bacon: BaconConfig{
			Start: "Kevin Bacon",
			Targets: []string{
				"Amy Adams", "Andrew Garfield", "Anne Hathaway", "Barack Obama",
				"Benedict Cumberbatch", "Chris Pine", "Daniel Radcliffe",
				"Jennifer Aniston", "Joseph Gordon-Levitt", "Morgan Freeman",
				"Sandra Bullock", "Tina Fey",
			},
			Histograms: []string{"Kevin Bacon", "Stephanie Fratus"},
			Synthetic:  SyntheticCast{Movies: 400, CastSize: 6, Actors: 1000, Seed: 1},
		},
		QR: QRConfig{
			Message:         "HELLO WORLD",
			DataCodewords:   reedsolomon.Version1M,
			CorrectionBytes: 10,
		},
		Stocks: StocksConfig{
			Symbols:     []string{"FSLR", "GOOG", "MSFT", "NFLX", "XOM"},
			Days:        500,
			Orders:      []int{1, 3, 5, 7, 9},
			Trials:      500,
			Horizon:     5,
			Seed:        1,
			Parallelism: 4,
		},
	}
}

// Load returns Default overlaid with the YAML file at path (skipped when
// path is empty) and the environment, then validates the result.
func Load(path string) (*Config, error) {
	cfg := Default()
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("config: read %s: %w", path, err)
		}
		if err := yaml.Unmarshal(raw, &cfg); err != nil {
			return nil, fmt.Errorf("config: parse %s: %w", path, err)
		}
	}
	if err := cfg.applyEnv(os.LookupEnv); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

var validate = validator.New()

// Validate checks the struct tags and reports every failing field.
func (c *Config) Validate() error {
	err := validate.Struct(c)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return fmt.Errorf("%w: %v", ErrInvalid, err)
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%s failed %q", fe.Namespace(), fe.Tag()))
	}
	return fmt.Errorf("%w: %s", ErrInvalid, strings.Join(msgs, "; "))
}

// applyEnv overrides fields from LVKIT_* variables. Lists are comma-separated.
func (c *Config) applyEnv(lookup func(string) (string, bool)) error {
	str := func(key string, dst *string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = v
		}
	}
	list := func(key string, dst *[]string) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			*dst = splitList(v)
		}
	}
	var firstErr error
	integer := func(key string, dst *int) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			n, err := strconv.Atoi(v)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, v, err)
				}
				return
			}
			*dst = n
		}
	}
	seed := func(key string, dst *int64) {
		if v, ok := lookup(EnvPrefix + key); ok && v != "" {
			n, err := strconv.ParseInt(v, 10, 64)
			if err != nil {
				if firstErr == nil {
					firstErr = fmt.Errorf("%w: %s%s=%q: %v", ErrInvalid, EnvPrefix, key, v, err)
				}
				return
			}
			*dst = n
		}
	}

	str("LOG_LEVEL", &c.Log.Level)
	str("LOG_ENV", &c.Log.Env)
	str("BACON_FILE", &c.Bacon.File)
	str("BACON_START", &c.Bacon.Start)
	list("BACON_TARGETS", &c.Bacon.Targets)
	integer("BACON_MOVIES", &c.Bacon.Synthetic.Movies)
	integer("BACON_CAST_SIZE", &c.Bacon.Synthetic.CastSize)
	integer("BACON_ACTORS", &c.Bacon.Synthetic.Actors)
	seed("BACON_SEED", &c.Bacon.Synthetic.Seed)
	str("QR_MESSAGE", &c.QR.Message)
	integer("QR_DATA_CODEWORDS", &c.QR.DataCodewords)
	integer("QR_CORRECTION_BYTES", &c.QR.CorrectionBytes)
	str("STOCKS_DATA_DIR", &c.Stocks.DataDir)
	list("STOCKS_SYMBOLS", &c.Stocks.Symbols)
	integer("STOCKS_DAYS", &c.Stocks.Days)
	integer("STOCKS_TRIALS", &c.Stocks.Trials)
	integer("STOCKS_HORIZON", &c.Stocks.Horizon)
	integer("STOCKS_PARALLELISM", &c.Stocks.Parallelism)
	seed("STOCKS_SEED", &c.Stocks.Seed)

	if v, ok := lookup(EnvPrefix + "STOCKS_ORDERS"); ok && v != "" {
		orders := make([]int, 0)
		for _, s := range splitList(v) {
			n, err := strconv.Atoi(s)
			if err != nil {
				return fmt.Errorf("%w: %sSTOCKS_ORDERS=%q: %v", ErrInvalid, EnvPrefix, v, err)
			}
			orders = append(orders, n)
		}
		c.Stocks.Orders = orders
	}
	if v, ok := lookup(EnvPrefix + "METRICS_DUMP"); ok && v != "" {
		c.Metrics.Dump = v == "true" || v == "1" || v == "yes"
	}
	return firstErr
}

func splitList(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
