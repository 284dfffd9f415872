// Package storage persists sweep runs as per-run directories holding
// metadata.json and sweep.csv.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/floqsim/internal/qubit"
	"github.com/san-kum/floqsim/internal/sweep"
)

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
	ID            string             `json:"id"`
	Variant       string             `json:"variant"`
	Coupling      string             `json:"coupling"`
	Timestamp     time.Time          `json:"timestamp"`
	Frequency     float64            `json:"frequency_ghz"`
	Freq01        float64            `json:"freq01_ghz"`
	Anharmonicity float64            `json:"anharmonicity_ghz"`
	Points        int                `json:"points"`
	Levels        int                `json:"levels"`
	Metrics       map[string]float64 `json:"metrics"`
}

func (s *Store) Save(variant, coupling string, spec qubit.Spectrum, res *sweep.Result, metricVals map[string]float64) (string, error) {
	// Nanosecond precision keeps back-to-back saves from colliding.
	runID := fmt.Sprintf("%s_%d", variant, time.Now().UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	levels := 0
	if len(res.Energies) > 0 {
		levels = len(res.Energies[0])
	}

	meta := RunMetadata{
		ID:            runID,
		Variant:       variant,
		Coupling:      coupling,
		Timestamp:     time.Now(),
		Frequency:     res.Frequency,
		Freq01:        spec.Freq01,
		Anharmonicity: spec.Anharmonicity,
		Points:        len(res.Amplitudes),
		Levels:        levels,
		Metrics:       metricVals,
	}

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

	csvFile, err := os.Create(filepath.Join(runDir, "sweep.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := []string{"amplitude"}
	for i := 0; i < levels; i++ {
		header = append(header, fmt.Sprintf("e%d", i))
	}
	header = append(header, "qubit_freq", "anharmonicity")
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i := range res.Amplitudes {
		row := []string{strconv.FormatFloat(res.Amplitudes[i], 'f', 9, 64)}
		for _, e := range res.Energies[i] {
			row = append(row, strconv.FormatFloat(e, 'f', 9, 64))
		}
		row = append(row,
			strconv.FormatFloat(res.QubitFreq[i], 'f', 9, 64),
			strconv.FormatFloat(res.Anharmonicity[i], 'f', 9, 64))
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func (s *Store) List() ([]RunMetadata, error) {
	entries, err := os.ReadDir(s.baseDir)
	if err != nil {
		if os.IsNotExist(err) {
			return []RunMetadata{}, nil
		}
		return nil, err
	}

	runs := make([]RunMetadata, 0)
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}

		data, err := os.ReadFile(filepath.Join(s.baseDir, entry.Name(), "metadata.json"))
		if err != nil {
			continue
		}

		var meta RunMetadata
		if err := json.Unmarshal(data, &meta); err != nil {
			continue
		}
		runs = append(runs, meta)
	}

	return runs, nil
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

// LoadCurves reconstructs the sweep result from a stored run.
func (s *Store) LoadCurves(runID string) (*sweep.Result, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, err
	}

	f, err := os.Open(filepath.Join(s.baseDir, runID, "sweep.csv"))
	if err != nil {
		return nil, err
	}
	defer f.Close()

	rows, err := csv.NewReader(f).ReadAll()
	if err != nil {
		return nil, err
	}
	if len(rows) < 1 {
		return nil, fmt.Errorf("storage: empty sweep file for %s", runID)
	}

	res := &sweep.Result{Frequency: meta.Frequency}
	for _, row := range rows[1:] {
		if len(row) != meta.Levels+3 {
			return nil, fmt.Errorf("storage: malformed sweep row in %s", runID)
		}

		vals := make([]float64, len(row))
		for i, cell := range row {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, err
			}
			vals[i] = v
		}

		res.Amplitudes = append(res.Amplitudes, vals[0])
		res.Energies = append(res.Energies, vals[1:1+meta.Levels])
		res.QubitFreq = append(res.QubitFreq, vals[1+meta.Levels])
		res.Anharmonicity = append(res.Anharmonicity, vals[2+meta.Levels])
	}

	return res, nil
}
