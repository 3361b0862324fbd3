package storage

import (
	"bytes"
	"strings"
	"testing"

	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleResult() *dynamo.Result {
	return &dynamo.Result{
		States: []dynamo.State{
			{291.4, 5441.7, 1604.2, 5015.6},
			{286.7, 5437.0, 1608.9, 5020.3},
		},
		Masses:  []float64{0, 10},
		Metrics: map[string]float64{"conversion": 0.016},
	}
}

func TestSaveLoadRoundTrip(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runID, err := st.Save(RunMetadata{
		Reactor:    "lts",
		WMax:       3000,
		Points:     2,
		Integrator: "rk45",
		Temp:       497.15,
		Pressure:   2.05e6,
	}, sampleResult())
	require.NoError(t, err)
	require.NotEmpty(t, runID)

	meta, err := st.Load(runID)
	require.NoError(t, err)
	assert.Equal(t, "lts", meta.Reactor)
	assert.Equal(t, "rk45", meta.Integrator)
	assert.InDelta(t, 0.016, meta.Metrics["conversion"], 1e-12)

	states, masses, err := st.LoadProfile(runID)
	require.NoError(t, err)
	require.Len(t, states, 2)
	assert.Equal(t, []float64{0, 10}, masses)
	assert.InDelta(t, 291.4, states[0][0], 1e-9)
	assert.InDelta(t, 5020.3, states[1][3], 1e-9)
}

func TestList(t *testing.T) {
	st := New(t.TempDir())
	require.NoError(t, st.Init())

	runs, err := st.List()
	require.NoError(t, err)
	assert.Empty(t, runs)

	_, err = st.Save(RunMetadata{Reactor: "lts"}, sampleResult())
	require.NoError(t, err)

	runs, err = st.List()
	require.NoError(t, err)
	require.Len(t, runs, 1)
	assert.Equal(t, "lts", runs[0].Reactor)
}

func TestExportCSV(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult()

	require.NoError(t, ExportCSV(&buf, result.States, result.Masses))

	lines := strings.Split(strings.TrimSpace(buf.String()), "\n")
	require.Len(t, lines, 3, "header plus two rows")
	assert.Equal(t, "w,f_co,f_h2o,f_co2,f_h2", lines[0])
	assert.Contains(t, lines[1], "291.4")
}

func TestExportJSON(t *testing.T) {
	var buf bytes.Buffer
	result := sampleResult()

	meta := &RunMetadata{ID: "lts_1", Reactor: "lts", Integrator: "rk45"}
	require.NoError(t, ExportJSON(&buf, meta, result.States, result.Masses))

	out := buf.String()
	assert.Contains(t, out, `"reactor": "lts"`)
	assert.Contains(t, out, `"masses"`)
}
