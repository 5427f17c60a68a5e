package main

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"os"
	"path/filepath"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/audit"
	"github.com/katalvlaran/labyrinth/internal/config"
	"github.com/katalvlaran/labyrinth/internal/preview"
	"github.com/katalvlaran/labyrinth/maze"
)

// Manifest indexes every generated maze.
type Manifest struct {
	Total   int             `json:"total"`
	Failing int             `json:"failing"`
	Issues  map[string]int  `json:"issues,omitempty"`
	Mazes   []ManifestEntry `json:"labyrinths"`
}

// ManifestEntry describes one generated maze.
type ManifestEntry struct {
	ID         string        `json:"id"`
	Label      string        `json:"label"`
	Batch      string        `json:"batch"`
	Age        int           `json:"age"`
	Difficulty string        `json:"difficulty"`
	MazeType   string        `json:"maze_type"`
	Shape      string        `json:"shape,omitempty"`
	QualityMet bool          `json:"quality_met"`
	Issues     []audit.Issue `json:"issues,omitempty"`
}

// generateAll runs every batch of cfg with one RNG stream and writes the
// documents, previews and manifest to cfg.OutDir.
func generateAll(cfg *config.Config, log logrus.FieldLogger) (*Manifest, error) {
	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create output dir: %w", err)
	}

	rng := rand.New(rand.NewSource(cfg.Seed))
	opts := []maze.Option{maze.WithRand(rng), maze.WithLogger(log)}
	if cfg.Strict {
		opts = append(opts, maze.WithStrict())
	}

	summary := audit.NewSummary()
	m := &Manifest{}
	for _, b := range cfg.Batches {
		log.WithFields(logrus.Fields{
			"batch":      b.Name,
			"count":      b.Count,
			"difficulty": b.Difficulty,
			"age":        b.Age,
		}).Info("generating batch")

		for i := 0; i < b.Count; i++ {
			p := b.Params(cfg, i)
			var (
				r   *maze.Result
				err error
			)
			if b.Organic {
				r, err = maze.Organic(p, opts...)
			} else {
				r, err = maze.Generate(p, opts...)
			}
			if err != nil {
				return nil, fmt.Errorf("batch %s maze %d: %w", b.Name, i+1, err)
			}

			issues := audit.Check(r)
			summary.Add(r, issues)
			for _, is := range issues {
				log.WithFields(logrus.Fields{"id": r.ID, "kind": is.Kind}).Warn(is.Detail)
			}

			if err := writeMaze(cfg.OutDir, r, b.Background); err != nil {
				return nil, err
			}
			entry := ManifestEntry{
				ID:         r.ID,
				Label:      fmt.Sprintf("%s_%03d", b.Name, i+1),
				Batch:      b.Name,
				Age:        p.Age,
				Difficulty: r.Complexity,
				MazeType:   r.MazeType,
				Shape:      r.Shape,
				QualityMet: r.QualityMet,
				Issues:     issues,
			}
			m.Mazes = append(m.Mazes, entry)
			log.WithFields(logrus.Fields{"id": r.ID, "label": entry.Label, "maze_type": r.MazeType}).Info("generated")
		}
	}

	m.Total = summary.Checked
	m.Failing = summary.Failing
	if len(summary.ByKind) > 0 {
		m.Issues = make(map[string]int, len(summary.ByKind))
		for _, k := range summary.Kinds() {
			m.Issues[string(k)] = summary.ByKind[k]
		}
	}
	if err := writeJSON(filepath.Join(cfg.OutDir, "manifest.json"), m); err != nil {
		return nil, err
	}
	return m, nil
}

func writeMaze(dir string, r *maze.Result, bg string) error {
	if err := writeJSON(filepath.Join(dir, r.ID+".json"), r); err != nil {
		return err
	}
	svg := preview.SVG(r, bg)
	if err := os.WriteFile(filepath.Join(dir, r.ID+".svg"), []byte(svg), 0o644); err != nil {
		return fmt.Errorf("failed to write preview: %w", err)
	}
	return nil
}

func writeJSON(path string, v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to encode %s: %w", filepath.Base(path), err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("failed to write %s: %w", filepath.Base(path), err)
	}
	return nil
}
