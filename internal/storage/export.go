package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/gocarina/gocsv"
	"github.com/shift-lab/shiftsim/internal/dynamo"
)

// ExportData is the full-run JSON export shape.
type ExportData struct {
	ID         string             `json:"id"`
	Reactor    string             `json:"reactor"`
	Integrator string             `json:"integrator"`
	WMax       float64            `json:"w_max"`
	Points     int                `json:"points"`
	Masses     []float64          `json:"masses"`
	States     [][]float64        `json:"states"`
	Metrics    map[string]float64 `json:"metrics"`
}

func exportData(meta *RunMetadata, states []dynamo.State, masses []float64) ExportData {
	data := ExportData{
		ID:         meta.ID,
		Reactor:    meta.Reactor,
		Integrator: meta.Integrator,
		WMax:       meta.WMax,
		Points:     meta.Points,
		Masses:     masses,
		States:     make([][]float64, len(states)),
		Metrics:    meta.Metrics,
	}
	for i, s := range states {
		data.States[i] = s
	}
	return data
}

// ExportJSON writes a stored run as indented JSON.
func ExportJSON(w io.Writer, meta *RunMetadata, states []dynamo.State, masses []float64) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(exportData(meta, states, masses))
}

// ExportCSV writes a stored profile as CSV to w.
func ExportCSV(w io.Writer, states []dynamo.State, masses []float64) error {
	result := &dynamo.Result{States: states, Masses: masses}
	rows := profileRows(result)
	return gocsv.Marshal(&rows, w)
}

// ExportJSONStdout is a convenience wrapper for the CLI.
func ExportJSONStdout(meta *RunMetadata, states []dynamo.State, masses []float64) error {
	return ExportJSON(os.Stdout, meta, states, masses)
}
