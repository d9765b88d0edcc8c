package core_test

import (
	"errors"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/core"
)

// TestAddVertex covers idempotency and empty IDs.
func TestAddVertex(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddVertex("A"))
	require.NoError(t, g.AddVertex("A"))
	assert.Equal(t, 1, g.VertexCount())
	assert.True(t, g.HasVertex("A"))
	assert.False(t, g.HasVertex(""))
	assert.ErrorIs(t, g.AddVertex(""), core.ErrEmptyVertexID)
}

// TestAddEdgeMergesAttrs checks that repeated pairs share one edge.
func TestAddEdgeMergesAttrs(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("Kevin Bacon", "Tom Hanks", "Apollo 13"))
	require.NoError(t, g.AddEdge("Tom Hanks", "Kevin Bacon", "Beyond All Boundaries", ""))

	assert.Equal(t, 1, g.EdgeCount())
	assert.True(t, g.HasEdge("Kevin Bacon", "Tom Hanks"))
	assert.True(t, g.HasEdge("Tom Hanks", "Kevin Bacon"))

	attrs, err := g.Attrs("Tom Hanks", "Kevin Bacon")
	require.NoError(t, err)
	assert.Equal(t, []string{"Apollo 13", "Beyond All Boundaries"}, attrs)

	// returned slice is a copy
	attrs[0] = "mutated"
	again, _ := g.Attrs("Kevin Bacon", "Tom Hanks")
	assert.Equal(t, "Apollo 13", again[0])
}

// TestAddEdgeErrors covers the validation sentinels.
func TestAddEdgeErrors(t *testing.T) {
	g := core.NewGraph()
	assert.ErrorIs(t, g.AddEdge("", "B"), core.ErrEmptyVertexID)
	assert.ErrorIs(t, g.AddEdge("A", "A"), core.ErrLoopNotAllowed)

	_, err := g.Attrs("A", "B")
	assert.True(t, errors.Is(err, core.ErrEdgeNotFound))
	_, err = g.Attrs("", "B")
	assert.True(t, errors.Is(err, core.ErrEmptyVertexID))

	gl := core.NewGraph(core.WithLoops())
	require.NoError(t, gl.AddEdge("A", "A", "solo"))
	nbrs, err := gl.NeighborIDs("A")
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, nbrs)
}

// TestNeighborIDsSorted checks deterministic neighbor order.
func TestNeighborIDsSorted(t *testing.T) {
	g := core.NewGraph()
	for _, v := range []string{"D", "B", "C", "A"} {
		require.NoError(t, g.AddEdge("X", v))
	}
	nbrs, err := g.NeighborIDs("X")
	require.NoError(t, err)
	assert.Equal(t, []string{"A", "B", "C", "D"}, nbrs)

	_, err = g.NeighborIDs("nope")
	assert.ErrorIs(t, err, core.ErrVertexNotFound)
	_, err = g.NeighborIDs("")
	assert.ErrorIs(t, err, core.ErrEmptyVertexID)

	d, err := g.Degree("X")
	require.NoError(t, err)
	assert.Equal(t, 4, d)
}

// TestRemove covers edge and vertex removal.
func TestRemove(t *testing.T) {
	g := core.NewGraph()
	require.NoError(t, g.AddEdge("A", "B", "m1"))
	require.NoError(t, g.AddEdge("B", "C", "m2"))
	require.NoError(t, g.AddEdge("A", "C", "m3"))

	require.NoError(t, g.RemoveEdge("C", "A"))
	assert.False(t, g.HasEdge("A", "C"))
	assert.ErrorIs(t, g.RemoveEdge("A", "C"), core.ErrEdgeNotFound)

	require.NoError(t, g.RemoveVertex("B"))
	assert.Equal(t, []string{"A", "C"}, g.Vertices())
	assert.Equal(t, 0, g.EdgeCount())
	assert.ErrorIs(t, g.RemoveVertex("B"), core.ErrVertexNotFound)
	assert.ErrorIs(t, g.RemoveVertex(""), core.ErrEmptyVertexID)
}

// TestEdgesOrderAndStats checks Edges() ordering past e9 and the Stats snapshot.
func TestEdgesOrderAndStats(t *testing.T) {
	g := core.NewGraph()
	for i := 0; i < 12; i++ {
		require.NoError(t, g.AddEdge("hub", fmt.Sprintf("v%02d", i), "shared", fmt.Sprintf("m%d", i%3)))
	}
	require.NoError(t, g.AddVertex("loner"))

	edges := g.Edges()
	require.Len(t, edges, 12)
	for i, e := range edges {
		assert.Equal(t, fmt.Sprintf("e%d", i+1), e.ID)
	}

	st := g.Stats()
	assert.Equal(t, 14, st.VertexCount)
	assert.Equal(t, 12, st.EdgeCount)
	assert.Equal(t, 4, st.AttrCount)
	assert.Equal(t, 1, st.IsolatedCount)
	assert.False(t, st.AllowsLoops)
}

// TestConcurrentAddEdge stresses the lock discipline with parallel writers.
func TestConcurrentAddEdge(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	const workers, perWorker = 8, 50
	for w := 0; w < workers; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < perWorker; i++ {
				_ = g.AddEdge(fmt.Sprintf("w%d", w), fmt.Sprintf("n%d", i), fmt.Sprintf("movie%d", w))
				_, _ = g.NeighborIDs(fmt.Sprintf("w%d", w))
			}
		}(w)
	}
	wg.Wait()

	assert.Equal(t, workers*perWorker, g.EdgeCount())
	assert.Equal(t, workers+perWorker, g.VertexCount())
}

// TestConcurrentAddEdgeRemoveVertex races edge insertion against removal of
// an endpoint; the graph must stay consistent and never panic.
func TestConcurrentAddEdgeRemoveVertex(t *testing.T) {
	g := core.NewGraph()
	var wg sync.WaitGroup
	const removers, adders, rounds = 4, 4, 2000
	for w := 0; w < removers; w++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				_ = g.RemoveVertex("hub")
			}
		}()
	}
	for w := 0; w < adders; w++ {
		wg.Add(1)
		go func(w int) {
			defer wg.Done()
			for i := 0; i < rounds; i++ {
				assert.NoError(t, g.AddEdge("hub", fmt.Sprintf("leaf%d", w), "m"))
			}
		}(w)
	}
	wg.Wait()

	for _, e := range g.Edges() {
		assert.True(t, g.HasVertex(e.From), e.ID)
		assert.True(t, g.HasVertex(e.To), e.ID)
	}
	require.NoError(t, g.AddEdge("hub", "leaf0", "m"))
	nbrs, err := g.NeighborIDs("hub")
	require.NoError(t, err)
	assert.Contains(t, nbrs, "leaf0")
}
