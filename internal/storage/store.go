package storage

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/san-kum/springbox/internal/geom"
	"github.com/san-kum/springbox/internal/sim"
	"github.com/san-kum/springbox/internal/world"
)

// Store persists run recordings under a data directory, one subdirectory
// per run holding metadata.json and frames.csv. Recordings are output
// artifacts for plotting and export; they are never loaded back as live
// simulation state.
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
	ID        string             `json:"id"`
	Scenario  string             `json:"scenario"`
	Timestamp time.Time          `json:"timestamp"`
	Frames    int                `json:"frames"`
	Wall      float64            `json:"wall"`
	Radius    float64            `json:"radius"`
	Metrics   map[string]float64 `json:"metrics"`
}

// FrameColumns is the frames.csv header after the time column.
var FrameColumns = []string{
	"x", "y", "vx", "vy", "ax", "ay",
	"room_w", "room_h", "hand_x", "hand_y", "grab",
}

func (s *Store) Save(scenario string, result *sim.Result) (string, error) {
	runID := fmt.Sprintf("%s_%d", scenario, time.Now().Unix())
	runDir := filepath.Join(s.baseDir, runID)

	if err := os.MkdirAll(runDir, 0755); err != nil {
		return "", err
	}

	meta := RunMetadata{
		ID:        runID,
		Scenario:  scenario,
		Timestamp: time.Now(),
		Frames:    result.FramesRun,
		Metrics:   result.Metrics,
	}
	if len(result.Frames) > 0 {
		meta.Wall = result.Frames[0].Room.Wall
		meta.Radius = result.Frames[0].Ball.Radius
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

	csvFile, err := os.Create(filepath.Join(runDir, "frames.csv"))
	if err != nil {
		return "", err
	}
	defer csvFile.Close()

	w := csv.NewWriter(csvFile)
	defer w.Flush()

	header := append([]string{"time"}, FrameColumns...)
	if err := w.Write(header); err != nil {
		return "", err
	}

	for i, fr := range result.Frames {
		grab := "0"
		if fr.Hand.Grabbing {
			grab = "1"
		}
		row := []string{
			strconv.FormatFloat(result.Times[i], 'f', 6, 64),
			strconv.FormatFloat(fr.Ball.Pos.X, 'f', 6, 64),
			strconv.FormatFloat(fr.Ball.Pos.Y, 'f', 6, 64),
			strconv.FormatFloat(fr.Ball.Vel.X, 'f', 6, 64),
			strconv.FormatFloat(fr.Ball.Vel.Y, 'f', 6, 64),
			strconv.FormatFloat(fr.Ball.Acc.X, 'f', 6, 64),
			strconv.FormatFloat(fr.Ball.Acc.Y, 'f', 6, 64),
			strconv.FormatFloat(fr.Room.W, 'f', 6, 64),
			strconv.FormatFloat(fr.Room.H, 'f', 6, 64),
			strconv.FormatFloat(fr.Hand.Pos.X, 'f', 6, 64),
			strconv.FormatFloat(fr.Hand.Pos.Y, 'f', 6, 64),
			grab,
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

// LoadRun rebuilds world states from a recording, enough for re-rendering
// and SVG export. Tuning constants that never made it into the CSV stay
// zero; a rebuilt state is a picture, not a resumable simulation.
func (s *Store) LoadRun(runID string) ([]world.State, []float64, error) {
	meta, err := s.Load(runID)
	if err != nil {
		return nil, nil, err
	}
	rows, times, err := s.LoadFrames(runID)
	if err != nil {
		return nil, nil, err
	}

	states := make([]world.State, 0, len(rows))
	for _, row := range rows {
		if len(row) < len(FrameColumns) {
			continue
		}
		states = append(states, world.State{
			Ball: world.Ball{
				Radius: meta.Radius,
				Pos:    geom.Vec{X: row[0], Y: row[1]},
				Vel:    geom.Vec{X: row[2], Y: row[3]},
				Acc:    geom.Vec{X: row[4], Y: row[5]},
			},
			Room: world.Room{W: row[6], H: row[7], Wall: meta.Wall},
			Hand: world.Hand{
				Pos:      geom.Vec{X: row[8], Y: row[9]},
				Grabbing: row[10] != 0,
			},
		})
	}

	return states, times, nil
}

// LoadFrames returns the recorded frame rows (in FrameColumns order) and
// their timestamps.
func (s *Store) LoadFrames(runID string) ([][]float64, []float64, error) {
	file, err := os.Open(filepath.Join(s.baseDir, runID, "frames.csv"))
	if err != nil {
		return nil, nil, err
	}
	defer file.Close()

	r := csv.NewReader(file)
	r.FieldsPerRecord = -1

	records, err := r.ReadAll()
	if err != nil {
		return nil, nil, err
	}

	if len(records) < 2 {
		return [][]float64{}, []float64{}, nil
	}

	times := make([]float64, 0, len(records)-1)
	frames := make([][]float64, 0, len(records)-1)

	for i := 1; i < len(records); i++ {
		record := records[i]
		if len(record) == 0 {
			continue
		}

		t, err := strconv.ParseFloat(record[0], 64)
		if err != nil {
			continue
		}
		times = append(times, t)

		row := make([]float64, 0, len(record)-1)
		for j := 1; j < len(record); j++ {
			val, err := strconv.ParseFloat(record[j], 64)
			if err != nil {
				continue
			}
			row = append(row, val)
		}
		frames = append(frames, row)
	}

	return frames, times, nil
}
