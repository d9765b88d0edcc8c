package metrics_test

import (
	"bytes"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/lvkit/metrics"
)

func TestNewRegistry(t *testing.T) {
	r := metrics.NewRegistry()
	require.NotNil(t, r.BFSRunsTotal)
	require.NotNil(t, r.ExperimentMSE)

	// Two registries must not share state.
	other := metrics.NewRegistry()
	r.RecordBFS(3)
	assert.Equal(t, 1.0, testutil.ToFloat64(r.BFSRunsTotal))
	assert.Equal(t, 0.0, testutil.ToFloat64(other.BFSRunsTotal))
}

func TestRecorders(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordBFS(10)
	r.RecordBFS(20)
	r.RecordPath(3, true)
	r.RecordPath(0, false)
	r.RecordPath(0, false)
	r.RecordExperiment(3, 500, 1.25)
	r.RecordExperiment(3, 500, 0.75)
	r.RecordCodewords(10)

	assert.Equal(t, 2.0, testutil.ToFloat64(r.BFSRunsTotal))
	assert.Equal(t, 2.0, testutil.ToFloat64(r.UnreachableHits))
	assert.Equal(t, 1000.0, testutil.ToFloat64(r.ExperimentTrialsTotal.WithLabelValues("3")))
	assert.Equal(t, 10.0, testutil.ToFloat64(r.CodewordsTotal))
	assert.Equal(t, 1, testutil.CollectAndCount(r.PathLength))
	assert.Equal(t, 1, testutil.CollectAndCount(r.ExperimentMSE))
}

func TestNilRegistryIsNoop(t *testing.T) {
	var r *metrics.Registry
	assert.NotPanics(t, func() {
		r.RecordBFS(1)
		r.RecordPath(1, true)
		r.RecordExperiment(1, 1, 0)
		r.RecordCodewords(1)
	})
}

func TestWriteText(t *testing.T) {
	r := metrics.NewRegistry()
	r.RecordCodewords(7)

	var buf bytes.Buffer
	require.NoError(t, r.WriteText(&buf))
	assert.Contains(t, buf.String(), "# TYPE lvkit_rs_codewords_total counter")
	assert.Contains(t, buf.String(), "lvkit_rs_codewords_total 7")
}
