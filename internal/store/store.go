package store

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/gravnet/internal/body"
	"github.com/san-kum/gravnet/internal/config"
	"github.com/san-kum/gravnet/internal/sim"
)

// Store persists completed runs under a base directory, one
// subdirectory per run: metadata.json for the parameters and
// history.csv for the acceleration history.
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
	ID          string    `json:"id"`
	Timestamp   time.Time `json:"timestamp"`
	Seed        int64     `json:"seed"`
	TimePeriod  float64   `json:"time_period"`
	Dt          float64   `json:"dt"`
	Bodies      int       `json:"bodies"`
	InitialMass float64   `json:"initial_mass"`
	Softening   float64   `json:"softening"`
	VelScale    float64   `json:"vel_scale"`
	Workers     int       `json:"workers"`
	Iterations  int       `json:"iterations"`
	EnergyDrift float64   `json:"energy_drift"`
}

func (s *Store) Save(cfg *config.Config, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("nbody_%d", time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:          runID,
		Timestamp:   time.Now(),
		Seed:        cfg.Seed,
		TimePeriod:  cfg.TimePeriod,
		Dt:          cfg.Dt,
		Bodies:      cfg.Bodies,
		InitialMass: cfg.InitialMass,
		Softening:   cfg.Softening,
		VelScale:    cfg.VelScale,
		Workers:     cfg.Workers,
		Iterations:  result.Iterations,
		EnergyDrift: result.EnergyDrift,
	}

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

	csvPath := filepath.Join(runDir, "history.csv")
	csvFile, err := os.Create(csvPath)
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	if err := w.Write([]string{"iteration", "body", "ax", "ay"}); err != nil {
		return "", err
	}

	for i, a := range result.History {
		row := []string{
			strconv.Itoa(i / cfg.Bodies),
			strconv.Itoa(i % cfg.Bodies),
			strconv.FormatFloat(a.AX, 'f', 6, 64),
			strconv.FormatFloat(a.AY, 'f', 6, 64),
		}
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

// LoadHistory reads back a run's acceleration history in its original
// iteration-major, body-index-minor order.
func (s *Store) LoadHistory(runID string) ([]body.Accel, error) {
	csvPath := filepath.Join(s.baseDir, runID, "history.csv")
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
		return []body.Accel{}, nil
	}

	history := make([]body.Accel, 0, len(records)-1)
	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) < 4 {
			continue
		}
		ax, err := strconv.ParseFloat(record[2], 64)
		if err != nil {
			continue
		}
		ay, err := strconv.ParseFloat(record[3], 64)
		if err != nil {
			continue
		}
		history = append(history, body.Accel{AX: ax, AY: ay})
	}

	return history, nil
}
