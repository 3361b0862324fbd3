package chart

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/shift-lab/shiftsim/internal/dynamo"
)

func TestFlowsWritesPNG(t *testing.T) {
	masses := []float64{0, 10, 20}
	states := []dynamo.State{
		{291.4, 5441.7, 1604.2, 5015.6},
		{286.7, 5437.0, 1608.9, 5020.3},
		{282.1, 5432.4, 1613.5, 5024.9},
	}

	path := filepath.Join(t.TempDir(), "flows.png")
	if err := Flows(masses, states, Options{}, path); err != nil {
		t.Fatalf("Flows failed: %v", err)
	}

	info, err := os.Stat(path)
	if err != nil {
		t.Fatalf("chart not written: %v", err)
	}
	if info.Size() == 0 {
		t.Error("chart file is empty")
	}
}

func TestFlowsRejectsEmptyProfile(t *testing.T) {
	if err := Flows(nil, nil, Options{}, "unused.png"); err == nil {
		t.Error("expected error for empty profile")
	}

	err := Flows([]float64{0}, []dynamo.State{{1, 2, 3, 4}, {5, 6, 7, 8}}, Options{}, "unused.png")
	if err == nil {
		t.Error("expected error for misaligned profile")
	}
}
