// SPDX-License-Identifier: MIT

package bacon

import (
	"context"
	"fmt"
	"strings"

	"github.com/katalvlaran/lvkit/bfs"
	"github.com/katalvlaran/lvkit/core"
	"github.com/katalvlaran/lvkit/metrics"
)

// Outcome is the game result for one target actor.
type Outcome struct {
	Target   string
	Path     []bfs.Step // empty when unreachable
	Distance int        // hops, or bfs.Unreachable
}

// Found reports whether a path to the target exists.
func (o Outcome) Found() bool { return len(o.Path) > 0 }

// Option configures Play.
type Option func(*playConfig)

type playConfig struct {
	metrics *metrics.Registry
}

// WithMetrics records the search and every path into r.
func WithMetrics(r *metrics.Registry) Option {
	return func(c *playConfig) { c.metrics = r }
}

// Play finds a shortest path from start to each target, in target order.
// Targets missing from g are reported unreachable. A start missing from g
// fails with bfs.ErrStartVertexNotFound.
func Play(ctx context.Context, g *core.Graph, start string, targets []string, opts ...Option) ([]Outcome, error) {
	var cfg playConfig
	for _, opt := range opts {
		opt(&cfg)
	}

	res, err := bfs.BFS(g, start, bfs.WithContext(ctx))
	if err != nil {
		return nil, fmt.Errorf("Play: %w", err)
	}
	cfg.metrics.RecordBFS(len(res.Order))

	out := make([]Outcome, 0, len(targets))
	for _, target := range targets {
		o := Outcome{Target: target, Path: []bfs.Step{}, Distance: bfs.Unreachable}
		if res.Reached(target) {
			path, err := bfs.FindPath(g, start, target, res.Parent)
			if err != nil {
				return nil, fmt.Errorf("Play: %s: %w", target, err)
			}
			o.Path = path
			o.Distance = res.Dist[target]
		}
		cfg.metrics.RecordPath(o.Distance, o.Found())
		out = append(out, o)
	}
	return out, nil
}

// FormatPath renders a path as
//
//	Kevin Bacon -[Movie A, Movie B]- Amy Adams -[Movie C]- Tina Fey
//
// and an empty path as "no path".
func FormatPath(path []bfs.Step) string {
	if len(path) == 0 {
		return "no path"
	}
	var sb strings.Builder
	for i, s := range path {
		sb.WriteString(s.Vertex)
		if i < len(path)-1 {
			sb.WriteString(" -[")
			sb.WriteString(strings.Join(s.Attrs, ", "))
			sb.WriteString("]- ")
		}
	}
	return sb.String()
}
