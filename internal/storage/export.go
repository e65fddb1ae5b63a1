package storage

import (
	"encoding/csv"
	"encoding/json"
	"io"
	"strconv"

	"github.com/san-kum/brakesim/internal/physics"
)

// ExportJSON writes a run's metadata and trajectory as a single JSON
// document.
func ExportJSON(w io.Writer, meta *RunMetadata, samples []physics.Sample) error {
	type sample struct {
		DistanceM float64 `json:"distance_m"`
		SpeedKmh  float64 `json:"speed_kmh"`
	}
	doc := struct {
		*RunMetadata
		Profile []sample `json:"profile,omitempty"`
	}{RunMetadata: meta}

	for _, s := range samples {
		doc.Profile = append(doc.Profile, sample{DistanceM: s.Distance, SpeedKmh: s.SpeedKmh})
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}

// ExportCSV writes a run's trajectory as CSV.
func ExportCSV(w io.Writer, samples []physics.Sample) error {
	cw := csv.NewWriter(w)
	defer cw.Flush()

	if err := cw.Write([]string{"distance_m", "speed_kmh"}); err != nil {
		return err
	}
	for _, s := range samples {
		row := []string{
			strconv.FormatFloat(s.Distance, 'f', 6, 64),
			strconv.FormatFloat(s.SpeedKmh, 'f', 6, 64),
		}
		if err := cw.Write(row); err != nil {
			return err
		}
	}
	return cw.Error()
}
