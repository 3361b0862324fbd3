package storage

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"time"

	"github.com/gocarina/gocsv"
	"github.com/shift-lab/shiftsim/internal/dynamo"
	"github.com/shift-lab/shiftsim/internal/reactor"
)

// Store persists completed runs, one directory per run holding
// metadata.json and profile.csv.
type Store struct {
	baseDir string
}

func New(baseDir string) *Store {
	return &Store{baseDir: baseDir}
}

func (s *Store) Init() error {
	return os.MkdirAll(s.baseDir, 0755)
}

type RunMetadata struct {
	ID         string             `json:"id"`
	Reactor    string             `json:"reactor"`
	Timestamp  time.Time          `json:"timestamp"`
	WMax       float64            `json:"w_max"`
	Points     int                `json:"points"`
	Integrator string             `json:"integrator"`
	Temp       float64            `json:"temperature"`
	Pressure   float64            `json:"pressure"`
	Metrics    map[string]float64 `json:"metrics"`
}

// ProfileRow is one grid point of the flow profile.
type ProfileRow struct {
	W   float64 `csv:"w"`
	CO  float64 `csv:"f_co"`
	H2O float64 `csv:"f_h2o"`
	CO2 float64 `csv:"f_co2"`
	H2  float64 `csv:"f_h2"`
}

// Save writes one run to disk and returns its generated ID.
func (s *Store) Save(meta RunMetadata, result *dynamo.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", meta.Reactor, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta.ID = runID
	meta.Timestamp = time.Now()
	meta.Metrics = result.Metrics

	metaFile, err := os.Create(filepath.Join(runDir, "metadata.json"))
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	rows := profileRows(result)

	csvFile, err := os.Create(filepath.Join(runDir, "profile.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	if err := gocsv.MarshalFile(&rows, csvFile); err != nil {
		return "", err
	}

	return runID, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, "metadata.json"))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}
	return &meta, nil
}

// LoadProfile reads a stored flow profile back into states and masses.
func (s *Store) LoadProfile(runID string) ([]dynamo.State, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "profile.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	var rows []*ProfileRow
	if err := gocsv.UnmarshalFile(file, &rows); err != nil {
		return nil, nil, err
	}

	states := make([]dynamo.State, len(rows))
	masses := make([]float64, len(rows))
	for i, row := range rows {
		states[i] = dynamo.State{row.CO, row.H2O, row.CO2, row.H2}
		masses[i] = row.W
	}
	return states, masses, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue // skip torn or foreign directories
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool {
		return runs[i].Timestamp.Before(runs[j].Timestamp)
	})
	return runs, nil
}

func profileRows(result *dynamo.Result) []*ProfileRow {
	rows := make([]*ProfileRow, 0, len(result.States))
	for i, x := range result.States {
		if len(x) < reactor.NumSpecies {
			continue
		}
		rows = append(rows, &ProfileRow{
			W:   result.Masses[i],
			CO:  x[reactor.CO],
			H2O: x[reactor.H2O],
			CO2: x[reactor.CO2],
			H2:  x[reactor.H2],
		})
	}
	return rows
}
