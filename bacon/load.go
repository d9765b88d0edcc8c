// SPDX-License-Identifier: MIT

package bacon

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/golang/snappy"

	"github.com/katalvlaran/lvkit/core"
)

// SnappyExt marks cast files stored as a snappy stream.
const SnappyExt = ".sz"

// maxLine bounds one cast line; large ensembles exceed bufio's 64 KiB default.
const maxLine = 1 << 20

// ErrBadLine indicates a cast line without a movie title or without actors.
var ErrBadLine = errors.New("bacon: malformed cast line")

// LoadGraph reads a cast file and links every pair of actors in each movie.
func LoadGraph(r io.Reader) (*core.Graph, error) {
	g := core.NewGraph()
	sc := bufio.NewScanner(r)
	sc.Buffer(make([]byte, 0, 64*1024), maxLine)

	for line := 1; sc.Scan(); line++ {
		text := strings.TrimRight(sc.Text(), "\r")
		if strings.TrimSpace(text) == "" || strings.HasPrefix(text, "#") {
			continue
		}
		fields := strings.Split(text, "\t")
		movie := strings.TrimSpace(fields[0])
		cast := make([]string, 0, len(fields)-1)
		for _, f := range fields[1:] {
			if a := strings.TrimSpace(f); a != "" {
				cast = append(cast, a)
			}
		}
		if movie == "" || len(cast) == 0 {
			return nil, fmt.Errorf("LoadGraph: line %d: %w", line, ErrBadLine)
		}
		if err := addMovie(g, movie, cast); err != nil {
			return nil, fmt.Errorf("LoadGraph: line %d: %w", line, err)
		}
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("LoadGraph: %w", err)
	}
	return g, nil
}

func addMovie(g *core.Graph, movie string, cast []string) error {
	for _, a := range cast {
		if err := g.AddVertex(a); err != nil {
			return err
		}
	}
	for i := 0; i < len(cast); i++ {
		for j := i + 1; j < len(cast); j++ {
			if cast[i] == cast[j] {
				continue
			}
			if err := g.AddEdge(cast[i], cast[j], movie); err != nil {
				return err
			}
		}
	}
	return nil
}

// LoadGraphFile opens path and loads it, decompressing ".sz" files.
func LoadGraphFile(path string) (*core.Graph, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("LoadGraphFile: %w", err)
	}
	defer f.Close()

	var r io.Reader = f
	if filepath.Ext(path) == SnappyExt {
		r = snappy.NewReader(f)
	}
	g, err := LoadGraph(r)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
	}
	return g, nil
}

// WriteGraph writes g in cast format so that LoadGraph rebuilds exactly the
// same edges and movie sets. Each line is a group of actors pairwise linked
// by that movie, so separate casts sharing a title stay separate lines.
// Movies, lines and actors are sorted. Isolated actors have no movie and
// self-loops have no second actor; neither is written.
func WriteGraph(w io.Writer, g *core.Graph) error {
	// movie -> actor -> co-stars in that movie
	casts := make(map[string]map[string]map[string]struct{})
	link := func(movie, a, b string) {
		if casts[movie] == nil {
			casts[movie] = make(map[string]map[string]struct{})
		}
		if casts[movie][a] == nil {
			casts[movie][a] = make(map[string]struct{})
		}
		casts[movie][a][b] = struct{}{}
	}
	for _, e := range g.Edges() {
		if e.From == e.To {
			continue
		}
		for movie := range e.Attrs {
			link(movie, e.From, e.To)
			link(movie, e.To, e.From)
		}
	}

	bw := bufio.NewWriter(w)
	for _, m := range sortedKeys(casts) {
		for _, group := range castGroups(casts[m]) {
			if _, err := fmt.Fprintf(bw, "%s\t%s\n", m, strings.Join(group, "\t")); err != nil {
				return fmt.Errorf("WriteGraph: %w", err)
			}
		}
	}
	if err := bw.Flush(); err != nil {
		return fmt.Errorf("WriteGraph: %w", err)
	}
	return nil
}

// castGroups covers every co-star pair of one movie with greedily grown
// cliques. Each group is pairwise adjacent, so reloading it adds no pair
// that adj lacks.
func castGroups(adj map[string]map[string]struct{}) [][]string {
	actors := sortedKeys(adj)
	covered := make(map[[2]string]bool)
	var groups [][]string
	for _, a := range actors {
		for _, b := range sortedKeys(adj[a]) {
			if b <= a || covered[[2]string{a, b}] {
				continue
			}
			group := []string{a, b}
			for _, c := range actors {
				if c == a || c == b || !linkedToAll(adj[c], group) {
					continue
				}
				group = append(group, c)
			}
			sort.Strings(group)
			for i := range group {
				for j := i + 1; j < len(group); j++ {
					covered[[2]string{group[i], group[j]}] = true
				}
			}
			groups = append(groups, group)
		}
	}
	return groups
}

func linkedToAll(nbrs map[string]struct{}, group []string) bool {
	for _, m := range group {
		if _, ok := nbrs[m]; !ok {
			return false
		}
	}
	return true
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// WriteGraphFile writes g to path, compressing ".sz" files.
func WriteGraphFile(path string, g *core.Graph) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("WriteGraphFile: %w", err)
	}
	defer func() {
		if cerr := f.Close(); err == nil && cerr != nil {
			err = fmt.Errorf("WriteGraphFile: %w", cerr)
		}
	}()

	if filepath.Ext(path) != SnappyExt {
		return WriteGraph(f, g)
	}
	sw := snappy.NewBufferedWriter(f)
	if err := WriteGraph(sw, g); err != nil {
		return err
	}
	if err := sw.Close(); err != nil {
		return fmt.Errorf("WriteGraphFile: %w", err)
	}
	return nil
}
