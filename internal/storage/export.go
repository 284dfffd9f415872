package storage

import (
	"encoding/json"
	"io"
	"os"

	"github.com/san-kum/floqsim/internal/sweep"
)

type ExportData struct {
	ID            string             `json:"id"`
	Variant       string             `json:"variant"`
	Coupling      string             `json:"coupling"`
	Frequency     float64            `json:"frequency_ghz"`
	Amplitudes    []float64          `json:"amplitudes"`
	Energies      [][]float64        `json:"energies"`
	QubitFreq     []float64          `json:"qubit_freq"`
	Anharmonicity []float64          `json:"anharmonicity"`
	Metrics       map[string]float64 `json:"metrics"`
}

func ExportJSON(w io.Writer, meta *RunMetadata, res *sweep.Result) error {
	data := ExportData{
		ID:            meta.ID,
		Variant:       meta.Variant,
		Coupling:      meta.Coupling,
		Frequency:     res.Frequency,
		Amplitudes:    res.Amplitudes,
		Energies:      res.Energies,
		QubitFreq:     res.QubitFreq,
		Anharmonicity: res.Anharmonicity,
		Metrics:       meta.Metrics,
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(data)
}

func ExportJSONStdout(meta *RunMetadata, res *sweep.Result) error {
	return ExportJSON(os.Stdout, meta, res)
}
