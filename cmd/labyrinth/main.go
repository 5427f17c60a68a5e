// Command labyrinth generates maze documents and SVG previews.
//
// Usage:
//
//	labyrinth [-config batches.yaml] [-out dir] [-seed n] [-env .env] [maze flags]
//
// With -config every batch of the YAML file is generated. Without it a
// single maze is built from the maze flags. Each maze is written as
// <id>.json and <id>.svg under the output directory, together with a
// manifest.json listing every maze and its audit findings.
package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/sirupsen/logrus"

	"github.com/katalvlaran/labyrinth/internal/config"
)

func main() {
	if err := run(os.Args[1:], os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, "labyrinth:", err)
		os.Exit(1)
	}
}

func run(args []string, stderr io.Writer) error {
	fs := flag.NewFlagSet("labyrinth", flag.ContinueOnError)
	fs.SetOutput(stderr)

	var (
		configPath = fs.String("config", "", "YAML batch configuration file")
		outDir     = fs.String("out", "", "output directory (overrides config)")
		seed       = fs.Int64("seed", 0, "RNG seed (overrides config)")
		envFile    = fs.String("env", ".env", "dotenv file with LABYRINTH_* overrides")
		logLevel   = fs.String("log-level", "", "log level (overrides config)")
		strict     = fs.Bool("strict", false, "reject disconnected shapes and unreachable ends")

		difficulty = fs.String("difficulty", "easy", "easy, medium or hard")
		age        = fs.Int("age", 4, "player age")
		shape      = fs.String("shape", "rect", "rect, triangle, tree, mountain, diamond or circle")
		style      = fs.String("style", "walls", "walls or corridor")
		organic    = fs.Bool("organic", false, "generate a curved path instead of a maze")
		rows       = fs.Int("rows", 0, "grid rows (with -cols, overrides difficulty)")
		cols       = fs.Int("cols", 0, "grid cols (with -rows, overrides difficulty)")
		itemRule   = fs.String("item-rule", "", "collect or avoid")
		itemCount  = fs.Int("item-count", 0, "number of items")
		itemMarker = fs.String("item-marker", "", "item marker, e.g. an emoji")
		startPos   = fs.String("start", "", "start position name")
		endPos     = fs.String("end", "", "end position name")
		count      = fs.Int("count", 1, "number of mazes without -config")
	)
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg := config.Default()
	if *configPath != "" {
		loaded, err := config.Load(*configPath)
		if err != nil {
			return err
		}
		cfg = loaded
	} else {
		single := config.Batch{
			Name:          "maze",
			Count:         *count,
			Age:           *age,
			Difficulty:    *difficulty,
			Shapes:        []string{*shape},
			Style:         *style,
			Organic:       *organic,
			Rows:          *rows,
			Cols:          *cols,
			StartPosition: *startPos,
			EndPosition:   *endPos,
			Background:    cfg.Background,
		}
		if *itemRule != "" {
			single.Items = &config.ItemSpec{Rule: *itemRule, Count: *itemCount, Marker: *itemMarker}
		}
		cfg.Batches = []config.Batch{single}
	}
	if err := config.ApplyEnv(cfg, *envFile); err != nil {
		return err
	}

	// Explicit flags win over file and environment.
	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "out":
			cfg.OutDir = *outDir
		case "seed":
			cfg.Seed = *seed
		case "log-level":
			cfg.LogLevel = *logLevel
		case "strict":
			cfg.Strict = *strict
		}
	})

	log, err := newLogger(cfg, stderr)
	if err != nil {
		return err
	}

	m, err := generateAll(cfg, log)
	if err != nil {
		return err
	}
	log.WithFields(logrus.Fields{
		"total":   m.Total,
		"failing": m.Failing,
		"out_dir": cfg.OutDir,
	}).Info("done")

	return nil
}

func newLogger(cfg *config.Config, out io.Writer) (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid log level: %w", err)
	}
	log := logrus.New()
	log.SetOutput(out)
	log.SetLevel(level)
	if cfg.LogJSON {
		log.SetFormatter(&logrus.JSONFormatter{})
	} else {
		log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	}
	return log, nil
}
