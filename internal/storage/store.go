// Package storage persists evaluated braking runs: a metadata.json with
// the inputs and scalar results, and a profile.csv with the sampled
// speed-distance trajectory.
package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/san-kum/brakesim/internal/physics"
	"github.com/san-kum/brakesim/internal/scenario"
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
	ID           string             `json:"id"`
	Timestamp    time.Time          `json:"timestamp"`
	Model        string             `json:"model"`
	SpeedKmh     float64            `json:"speed_kmh"`
	ReactionTime float64            `json:"reaction_time"`
	Weather      string             `json:"weather"`
	Tyres        string             `json:"tyres"`
	ABS          bool               `json:"abs"`
	SlopePercent float64            `json:"slope_percent"`
	Car          string             `json:"car,omitempty"`
	Dt           float64            `json:"dt"`
	Results      map[string]float64 `json:"results"`
	Stoppable    bool               `json:"stoppable"`
	Converged    bool               `json:"converged"`
}

// Save writes one evaluated run and returns its ID.
func (s *Store) Save(sc scenario.Scenario, car string, out scenario.Outcome, samples []physics.Sample) (string, error) {
	slug := car
	if slug == "" {
		slug = out.Model
	}
	slug = strings.ReplaceAll(strings.ToLower(slug), " ", "-")

	runID := fmt.Sprintf("%s_%d", slug, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:           runID,
		Timestamp:    time.Now(),
		Model:        out.Model,
		SpeedKmh:     sc.SpeedKmh,
		ReactionTime: sc.ReactionTime,
		Weather:      sc.Weather.String(),
		Tyres:        sc.Tyres.String(),
		ABS:          sc.ABS,
		SlopePercent: sc.SlopePercent,
		Car:          car,
		Dt:           sc.Dt,
		Stoppable:    out.Stoppable,
		Converged:    out.Converged,
		Results:      map[string]float64{},
	}

	// Infinite distances (the unstoppable sentinel) cannot be encoded as
	// JSON numbers; the Stoppable flag carries that outcome instead.
	putFinite(meta.Results, "mu", out.Mu)
	putFinite(meta.Results, "reaction_distance", out.ReactionDistance)
	putFinite(meta.Results, "braking_distance", out.BrakingDistance)
	putFinite(meta.Results, "total_distance", out.TotalDistance)
	putFinite(meta.Results, "total_time", out.TotalTime)
	putFinite(meta.Results, "final_velocity", out.FinalVelocity)

	metaPath := filepath.Join(runDir, "metadata.json")
	metaFile, err := os.Create(metaPath)
	if err != nil {
		return "", err
	}
	defer metaFile.Close()

	enc := json.NewEncoder(metaFile)
	enc.SetIndent("", "  ")
	if err := enc.Encode(meta); err != nil {
		return "", err
	}

	if len(samples) == 0 {
		return runID, nil
	}

	csvPath := filepath.Join(runDir, "profile.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"distance_m", "speed_kmh"}); err != nil {
		return "", err
	}
	for _, sm := range samples {
		row := []string{
			strconv.FormatFloat(sm.Distance, 'f', 6, 64),
			strconv.FormatFloat(sm.SpeedKmh, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func putFinite(m map[string]float64, key string, v float64) {
	if math.IsInf(v, 0) || math.IsNaN(v) {
		return
	}
	m[key] = v
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

		metaPath := filepath.Join(s.baseDir, entry.Name(), "metadata.json")
		data, err := os.ReadFile(metaPath)
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
	metaPath := filepath.Join(s.baseDir, runID, "metadata.json")
	data, err := os.ReadFile(metaPath)
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, err
	}

	return &meta, nil
}

// LoadProfile reads back the sampled trajectory of a run. Runs evaluated
// with the closed-form model may have none.
func (s *Store) LoadProfile(runID string) ([]physics.Sample, error) {
	csvPath := filepath.Join(s.baseDir, runID, "profile.csv")
	file, err := os.Open(csvPath)
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	records, err := r.ReadAll()
	if err != nil {
		return nil, err
	}

	if len(records) < 2 {
		return []physics.Sample{}, nil
	}

	samples := make([]physics.Sample, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 2 {
			continue
		}

		dist, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		speed, err := strconv.ParseFloat(record[1], 64)
		if err != nil {
			continue
		}
		samples = append(samples, physics.Sample{Distance: dist, SpeedKmh: speed})
	}

	return samples, nil
}
