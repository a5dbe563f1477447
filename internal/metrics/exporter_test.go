package metrics

import (
	"io"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/san-kum/sortviz/internal/driver"
	"github.com/san-kum/sortviz/internal/sorting"
)

func TestExporter_RunLifecycle(t *testing.T) {
	e := NewExporter(prometheus.NewRegistry())

	e.OnRunStart(sorting.Merge, []int{2, 1})
	assert.Equal(t, 1.0, testutil.ToFloat64(e.RunActive))
	assert.Equal(t, 2.0, testutil.ToFloat64(e.ArraySize))

	steps, err := sorting.Trace(sorting.Merge, []int{2, 1})
	require.NoError(t, err)
	for _, s := range steps {
		e.OnStep(sorting.Merge, s)
	}
	e.OnRunEnd(sorting.Merge, driver.Completed)

	assert.Equal(t, 1.0, testutil.ToFloat64(e.StepsTotal.WithLabelValues("merge", "divide")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.StepsTotal.WithLabelValues("merge", "compare")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.StepsTotal.WithLabelValues("merge", "done")))
	assert.Equal(t, 0.0, testutil.ToFloat64(e.Inversions.WithLabelValues("merge")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.RunsStarted.WithLabelValues("merge")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.RunsEnded.WithLabelValues("merge", "completed")))
	assert.Equal(t, 0.0, testutil.ToFloat64(e.RunActive))
}

func TestExporter_StoppedRun(t *testing.T) {
	e := NewExporter(nil)
	d, err := driver.New(driver.Options{Size: 10})
	require.NoError(t, err)
	d.AddObserver(e)

	require.NoError(t, d.Start())
	d.Tick()
	d.StopRun()

	assert.Equal(t, 1.0, testutil.ToFloat64(e.RunsEnded.WithLabelValues("bubble", "stopped")))
	assert.Equal(t, 1.0, testutil.ToFloat64(e.StepsTotal.WithLabelValues("bubble", "compare")))
}

func TestExporter_Handler(t *testing.T) {
	e := NewExporter(nil)
	e.OnRunStart(sorting.Quick, []int{1, 2, 3})

	rec := httptest.NewRecorder()
	e.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	body, err := io.ReadAll(rec.Result().Body)
	require.NoError(t, err)
	assert.True(t, strings.Contains(string(body), "sortviz_runs_started_total"))
	assert.True(t, strings.Contains(string(body), "sortviz_array_size 3"))
}
