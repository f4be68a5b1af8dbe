package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strconv"
	"time"

	"github.com/san-kum/chaoswatch/internal/config"
	"github.com/san-kum/chaoswatch/internal/dynamo"
)

const (
	metadataFile = "metadata.json"
	statesFile   = "states.csv"
	framesFile   = "frames.gif"
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
	ID        string         `json:"id"`
	Preset    string         `json:"preset,omitempty"`
	Timestamp time.Time      `json:"timestamp"`
	Frames    int            `json:"frames"`
	Final     [3]float64     `json:"final"`
	Config    *config.Config `json:"config"`
	HasGIF    bool           `json:"has_gif"`
}

// Sample is the current position and view angle after one frame.
type Sample struct {
	Frame int
	Angle float64
	X     float64
	Y     float64
	Z     float64
}

// Recorder collects one Sample per rendered frame. It satisfies
// sim.Observer.
type Recorder struct {
	Samples []Sample
}

func (r *Recorder) OnFrame(frame int, x dynamo.State, angle float64) {
	r.Samples = append(r.Samples, Sample{Frame: frame, Angle: angle, X: x[0], Y: x[1], Z: x[2]})
}

// Encoder writes an animation; *anim.Assembler satisfies it.
type Encoder interface {
	Encode(w io.Writer) error
	Len() int
}

// Save writes a run directory and returns its ID. frames may be nil.
func (s *Store) Save(preset string, cfg *config.Config, rec *Recorder, frames Encoder) (string, error) {
	now := time.Now()
	runID := fmt.Sprintf("lorenz_%d", now.UnixNano())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Preset:    preset,
		Timestamp: now,
		Frames:    len(rec.Samples),
		Config:    cfg,
		HasGIF:    frames != nil && frames.Len() > 0,
	}
	if n := len(rec.Samples); n > 0 {
		last := rec.Samples[n-1]
		meta.Final = [3]float64{last.X, last.Y, last.Z}
	}

	if err := writeFile(filepath.Join(runDir, metadataFile), func(w io.Writer) error {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(meta)
	}); err != nil {
		return "", err
	}

	if err := writeFile(filepath.Join(runDir, statesFile), func(w io.Writer) error {
		return writeSamples(w, rec.Samples)
	}); err != nil {
		return "", err
	}

	if meta.HasGIF {
		if err := writeFile(filepath.Join(runDir, framesFile), frames.Encode); err != nil {
			return "", err
		}
	}

	return runID, nil
}

func writeFile(path string, fn func(io.Writer) error) (err error) {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := f.Close(); err == nil {
			err = cerr
		}
	}()
	return fn(f)
}

func writeSamples(out io.Writer, samples []Sample) error {
	w := csv.NewWriter(out)
	if err := w.Write([]string{"frame", "angle", "x", "y", "z"}); err != nil {
		return err
	}
	for _, smp := range samples {
		row := []string{
			strconv.Itoa(smp.Frame),
			strconv.FormatFloat(smp.Angle, 'f', 6, 64),
			strconv.FormatFloat(smp.X, 'f', 6, 64),
			strconv.FormatFloat(smp.Y, 'f', 6, 64),
			strconv.FormatFloat(smp.Z, 'f', 6, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}
	w.Flush()
	return w.Error()
}

// List returns stored runs, oldest first. Directories without readable
// metadata are skipped.
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
		meta, err := s.Load(entry.Name())
		if err != nil {
			continue
		}
		runs = append(runs, *meta)
	}

	sort.Slice(runs, func(i, j int) bool { return runs[i].Timestamp.Before(runs[j].Timestamp) })
	return runs, nil
}

func (s *Store) Load(runID string) (*RunMetadata, error) {
	data, err := os.ReadFile(filepath.Join(s.baseDir, runID, metadataFile))
	if err != nil {
		return nil, err
	}

	var meta RunMetadata
	if err := json.Unmarshal(data, &meta); err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	return &meta, nil
}

// GIFPath returns where the run's animation is stored.
func (s *Store) GIFPath(runID string) string {
	return filepath.Join(s.baseDir, runID, framesFile)
}

func (s *Store) LoadStates(runID string) ([]Sample, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, statesFile))
	if err != nil {
		return nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = 5

	records, err := r.ReadAll()
	if err != nil {
		return nil, fmt.Errorf("run %s: %w", runID, err)
	}
	if len(records) < 2 {
		return []Sample{}, nil
	}

	samples := make([]Sample, 0, len(records)-1)
	for i, record := range records[1:] {
		frame, err := strconv.Atoi(record[0])
		if err != nil {
			return nil, fmt.Errorf("run %s: row %d: %w", runID, i+1, err)
		}
		var vals [4]float64
		for j := range vals {
			vals[j], err = strconv.ParseFloat(record[j+1], 64)
			if err != nil {
				return nil, fmt.Errorf("run %s: row %d: %w", runID, i+1, err)
			}
		}
		samples = append(samples, Sample{Frame: frame, Angle: vals[0], X: vals[1], Y: vals[2], Z: vals[3]})
	}
	return samples, nil
}
