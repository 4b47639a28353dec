// SPDX-License-Identifier: MIT
package metrics_test

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/eigengame/eigengame"
	"github.com/katalvlaran/eigengame/metrics"
)

func TestObserveSolve(t *testing.T) {
	t.Parallel()
	r := metrics.NewRecorder()

	r.ObserveSolve("a", &eigengame.Result{Epochs: 100, Eigenvalues: []float64{6, 3}}, time.Millisecond, nil)
	r.ObserveSolve("b", &eigengame.Result{Epochs: 7, Converged: true, Eigenvalues: []float64{9}}, time.Millisecond, nil)
	r.ObserveSolve("c", nil, time.Millisecond, errors.New("boom"))
	r.ObserveSolve("d", nil, time.Millisecond, context.Canceled)

	require.Equal(t, 1.0, testutil.ToFloat64(r.Solves.WithLabelValues(metrics.ResultOK)))
	require.Equal(t, 1.0, testutil.ToFloat64(r.Solves.WithLabelValues(metrics.ResultConverged)))
	require.Equal(t, 1.0, testutil.ToFloat64(r.Solves.WithLabelValues(metrics.ResultError)))
	require.Equal(t, 1.0, testutil.ToFloat64(r.Solves.WithLabelValues(metrics.ResultCancelled)))
	require.Equal(t, 3.0, testutil.ToFloat64(r.Eigenvalue.WithLabelValues("a", "1")))
	require.Equal(t, 3, testutil.CollectAndCount(r.Eigenvalue))
}

func TestWriteTextfile(t *testing.T) {
	t.Parallel()
	r := metrics.NewRecorder()
	r.ObserveSolve("a", &eigengame.Result{Epochs: 10, Eigenvalues: []float64{2}}, time.Second, nil)

	path := filepath.Join(t.TempDir(), "eigengame.prom")
	require.NoError(t, r.WriteTextfile(path))
	b, err := os.ReadFile(path)
	require.NoError(t, err)
	text := string(b)
	require.True(t, strings.Contains(text, `eigengame_solves_total{result="ok"} 1`), text)
	require.Contains(t, text, `eigengame_eigenvalue{component="0",dataset="a"} 2`)

	require.Error(t, r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}
