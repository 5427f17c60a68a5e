// Package config loads the batch settings of the labyrinth CLI from a YAML
// file, a .env file and the process environment, in that order of precedence
// (later wins).
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/labyrinth/maze"
)

// Environment variables read by ApplyEnv.
const (
	EnvSeed     = "LABYRINTH_SEED"
	EnvOutDir   = "LABYRINTH_OUT_DIR"
	EnvLogLevel = "LABYRINTH_LOG_LEVEL"
)

const (
	defaultOutDir     = "output"
	defaultLogLevel   = "info"
	defaultBackground = "#4A90E2"
	defaultSeed       = 1
)

// Config holds all CLI configuration.
type Config struct {
	OutDir       string  `yaml:"out_dir"`
	Seed         int64   `yaml:"seed"`
	LogLevel     string  `yaml:"log_level"`
	LogJSON      bool    `yaml:"log_json"`
	CanvasWidth  int     `yaml:"canvas_width"`
	CanvasHeight int     `yaml:"canvas_height"`
	Background   string  `yaml:"background_color"`
	Strict       bool    `yaml:"strict"`
	Batches      []Batch `yaml:"batches"`
}

// Batch describes a run of similar mazes.
type Batch struct {
	Name          string    `yaml:"name"`
	Count         int       `yaml:"count"`
	Age           int       `yaml:"age"`
	Difficulty    string    `yaml:"difficulty"`
	Shapes        []string  `yaml:"shapes"` // cycled per maze
	Style         string    `yaml:"style"`
	Organic       bool      `yaml:"organic"`
	Turns         int       `yaml:"turns"`
	Rows          int       `yaml:"rows"`
	Cols          int       `yaml:"cols"`
	StartPosition string    `yaml:"start_position"`
	EndPosition   string    `yaml:"end_position"`
	Background    string    `yaml:"background_color"`
	Items         *ItemSpec `yaml:"items"`
}

// ItemSpec holds item placement settings
type ItemSpec struct {
	Rule   string `yaml:"rule"`
	Count  int    `yaml:"count"`
	Marker string `yaml:"marker"`
}

// Default returns the built-in configuration: thirty mazes in three
// batches of rising difficulty.
func Default() *Config {
	cfg := &Config{
		Batches: []Batch{
			{Name: "easy", Count: 10, Age: 3, Difficulty: "easy", Shapes: []string{"rect"}},
			{Name: "medium", Count: 10, Age: 5, Difficulty: "medium", Shapes: []string{"rect", "triangle", "tree"}},
			{Name: "hard", Count: 10, Age: 6, Difficulty: "hard",
				Shapes: []string{"rect", "triangle", "tree", "mountain", "diamond", "circle"}},
		},
	}
	cfg.setDefaults()
	return cfg
}

// Load reads configuration from a YAML file
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config file: %w", err)
	}
	if len(cfg.Batches) == 0 {
		cfg.Batches = Default().Batches
	}
	cfg.setDefaults()

	return &cfg, nil
}

// setDefaults fills zero values.
func (c *Config) setDefaults() {
	if c.OutDir == "" {
		c.OutDir = defaultOutDir
	}
	if c.Seed == 0 {
		c.Seed = defaultSeed
	}
	if c.LogLevel == "" {
		c.LogLevel = defaultLogLevel
	}
	if c.CanvasWidth == 0 {
		c.CanvasWidth = maze.DefaultParams().CanvasWidth
	}
	if c.CanvasHeight == 0 {
		c.CanvasHeight = maze.DefaultParams().CanvasHeight
	}
	if c.Background == "" {
		c.Background = defaultBackground
	}
	for i := range c.Batches {
		b := &c.Batches[i]
		if b.Name == "" {
			b.Name = fmt.Sprintf("batch%d", i+1)
		}
		if len(b.Shapes) == 0 {
			b.Shapes = []string{"rect"}
		}
		if b.Background == "" {
			b.Background = c.Background
		}
	}
}

// ApplyEnv loads envFile (if it exists) into the environment and applies
// the LABYRINTH_* overrides. An empty envFile means ".env".
func ApplyEnv(c *Config, envFile string) error {
	if envFile == "" {
		envFile = ".env"
	}
	if err := godotenv.Load(envFile); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("failed to load env file %s: %w", envFile, err)
	}

	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("invalid %s %q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	c.OutDir = getEnvWithDefault(EnvOutDir, c.OutDir)
	c.LogLevel = getEnvWithDefault(EnvLogLevel, c.LogLevel)

	return nil
}

// getEnvWithDefault retrieves the value of an environment variable or returns a default value if not set.
func getEnvWithDefault(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists && value != "" {
		return value
	}
	return defaultValue
}

// Params returns the maze parameters for the i-th maze of b.
func (b Batch) Params(c *Config, i int) maze.Params {
	p := maze.Params{
		Difficulty:    b.Difficulty,
		Age:           b.Age,
		Shape:         b.Shapes[i%len(b.Shapes)],
		CanvasWidth:   c.CanvasWidth,
		CanvasHeight:  c.CanvasHeight,
		Rows:          b.Rows,
		Cols:          b.Cols,
		Style:         b.Style,
		StartPosition: b.StartPosition,
		EndPosition:   b.EndPosition,
		Turns:         b.Turns,
	}
	if b.Items != nil {
		p.ItemRule = b.Items.Rule
		p.ItemCount = b.Items.Count
		p.ItemMarker = b.Items.Marker
	}
	return p
}
