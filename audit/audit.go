package audit

import (
	"fmt"
	"sort"
	"strings"

	"github.com/katalvlaran/labyrinth/items"
	"github.com/katalvlaran/labyrinth/maze"
)

// Kind classifies an Issue.
type Kind string

const (
	ShortSolution   Kind = "SHORT_SOLUTION"
	CloseStartEnd   Kind = "CLOSE_START_END"
	StartAtTop      Kind = "START_AT_TOP"
	LowItemCount    Kind = "LOW_ITEM_COUNT"
	SimpleMaze      Kind = "SIMPLE_MAZE"
	ItemOutOfBounds Kind = "ITEM_OUT_OF_BOUNDS"
)

// Thresholds.
const (
	MinStartEndDist = 150.0
	MaxStartYTop    = 100.0
	EdgeMargin      = 10.0

	fallbackMinSegments   = 10
	fallbackCollectTarget = 3
)

// MinSegments is the minimum solution segment count per difficulty.
var MinSegments = map[maze.Difficulty]int{
	maze.Easy:   6,
	maze.Medium: 12,
	maze.Hard:   20,
}

// CollectTargets is the intended collect-item count per difficulty.
var CollectTargets = map[maze.Difficulty]int{
	maze.Easy:   3,
	maze.Medium: 4,
	maze.Hard:   5,
}

// Issue is one finding.
type Issue struct {
	Kind   Kind   `json:"kind"`
	Detail string `json:"detail"`
}

func (i Issue) String() string {
	return fmt.Sprintf("[%s] %s", i.Kind, i.Detail)
}

// Check audits r.
func Check(r *maze.Result) []Issue {
	var out []Issue
	add := func(k Kind, format string, args ...any) {
		out = append(out, Issue{Kind: k, Detail: fmt.Sprintf(format, args...)})
	}

	d := r.Difficulty()
	minSegs, ok := MinSegments[d]
	if !ok {
		minSegs = fallbackMinSegments
	}

	if n := len(r.Segments); n < minSegs {
		add(ShortSolution, "solution has %d segments (min %d for %s)", n, minSegs, d)
	}

	if dist := r.StartPoint.Dist(r.EndPoint); dist < MinStartEndDist {
		add(CloseStartEnd, "start-end distance %.0fpx (min %.0f)", dist, MinStartEndDist)
	}

	if r.StartPoint.Y <= MaxStartYTop {
		add(StartAtTop, "start y=%.0f is at the top (max %.0f)", r.StartPoint.Y, MaxStartYTop)
	}

	if items.Rule(r.ItemRule) == items.Collect {
		target, ok := CollectTargets[d]
		if !ok {
			target = fallbackCollectTarget
		}
		floor := max(1, target/2)
		if len(r.Items) < floor {
			add(LowItemCount, "collect: %d items (target %d, min %d)", len(r.Items), target, floor)
		}
	}

	if strings.HasPrefix(r.MazeType, "corridor") {
		strokes := strings.Count(r.SVGPath, "M ")
		if want := 2 * minSegs; strokes < want {
			add(SimpleMaze, "corridor maze has %d strokes (min %d for %s)", strokes, want, d)
		}
	}

	w, h := float64(r.CanvasWidth), float64(r.CanvasHeight)
	for i, it := range r.Items {
		if it.X < EdgeMargin || it.X > w-EdgeMargin {
			add(ItemOutOfBounds, "item %d x=%.0f out of canvas", i, it.X)
		}
		if it.Y < EdgeMargin || it.Y > h-EdgeMargin {
			add(ItemOutOfBounds, "item %d y=%.0f out of canvas", i, it.Y)
		}
	}

	return out
}

// Summary aggregates Check results over many mazes.
type Summary struct {
	Checked      int
	Failing      int
	ByKind       map[Kind]int
	ByDifficulty map[maze.Difficulty]map[Kind]int
}

// NewSummary returns an empty Summary.
func NewSummary() *Summary {
	return &Summary{
		ByKind:       make(map[Kind]int),
		ByDifficulty: make(map[maze.Difficulty]map[Kind]int),
	}
}

// Add records the issues found for r.
func (s *Summary) Add(r *maze.Result, issues []Issue) {
	s.Checked++
	if len(issues) == 0 {
		return
	}
	s.Failing++
	d := r.Difficulty()
	if s.ByDifficulty[d] == nil {
		s.ByDifficulty[d] = make(map[Kind]int)
	}
	for _, is := range issues {
		s.ByKind[is.Kind]++
		s.ByDifficulty[d][is.Kind]++
	}
}

// Kinds returns the recorded kinds, most frequent first (ties by name).
func (s *Summary) Kinds() []Kind {
	out := make([]Kind, 0, len(s.ByKind))
	for k := range s.ByKind {
		out = append(out, k)
	}
	sort.Slice(out, func(i, j int) bool {
		if s.ByKind[out[i]] != s.ByKind[out[j]] {
			return s.ByKind[out[i]] > s.ByKind[out[j]]
		}
		return out[i] < out[j]
	})
	return out
}
