// Package regression checks solvers against a YAML battery of known
// answers, so a refactor that changes an answer is caught.
package regression

import (
	"context"
	"fmt"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"advent/internal/puzzle"
	"advent/internal/runner"
)

// Battery is a collection of expected answers.
type Battery struct {
	Version int    `yaml:"version"`
	Tasks   []Task `yaml:"tasks"`
}

// Task is one expected answer.
type Task struct {
	ID     string `yaml:"id,omitempty"`
	Day    int    `yaml:"day"`
	Part   int    `yaml:"part"`
	Source string `yaml:"source,omitempty"` // "input" (default) or "example"
	Want   string `yaml:"want"`
}

// Name returns ID, or a name derived from the day, part and source.
func (t Task) Name() string {
	if t.ID != "" {
		return t.ID
	}
	return fmt.Sprintf("day%02d-part%d-%s", t.Day, t.Part, t.source())
}

func (t Task) source() runner.Source {
	if t.Source == string(runner.SourceExample) {
		return runner.SourceExample
	}
	return runner.SourceInput
}

// Result captures the outcome for a task.
type Result struct {
	TaskID     string
	Success    bool
	Want       string
	Got        string
	Error      string
	DurationMs int64
}

// Solver runs puzzle parts. *runner.Runner implements it.
type Solver interface {
	Solve(ctx context.Context, day int, parts []puzzle.Part, source runner.Source) ([]runner.Result, error)
}

// LoadBattery reads a YAML battery file from disk.
func LoadBattery(path string) (*Battery, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	var b Battery
	if err := yaml.Unmarshal(data, &b); err != nil {
		return nil, fmt.Errorf("failed to parse battery YAML: %w", err)
	}
	if err := b.Validate(); err != nil {
		return nil, err
	}
	return &b, nil
}

// Validate rejects tasks that name an impossible day, part or source.
func (b *Battery) Validate() error {
	for i, t := range b.Tasks {
		switch {
		case t.Day < 1 || t.Day > 25:
			return fmt.Errorf("task %d (%s): day %d out of range 1-25", i+1, t.Name(), t.Day)
		case t.Part != 1 && t.Part != 2:
			return fmt.Errorf("task %d (%s): part must be 1 or 2, got %d", i+1, t.Name(), t.Part)
		case t.Source != "" && t.Source != string(runner.SourceInput) && t.Source != string(runner.SourceExample):
			return fmt.Errorf("task %d (%s): unknown source %q", i+1, t.Name(), t.Source)
		}
	}
	return nil
}

// RunBattery checks every task in order. Unlike a failed answer, a
// cancelled context stops the run.
func RunBattery(ctx context.Context, b *Battery, s Solver) ([]Result, error) {
	if b == nil || len(b.Tasks) == 0 {
		return nil, nil
	}

	results := make([]Result, 0, len(b.Tasks))
	for _, task := range b.Tasks {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		start := time.Now()
		res := Result{TaskID: task.Name(), Want: task.Want}

		out, err := s.Solve(ctx, task.Day, []puzzle.Part{puzzle.Part(task.Part)}, task.source())
		switch {
		case err != nil:
			res.Error = err.Error()
		case len(out) != 1:
			res.Error = fmt.Sprintf("expected one result, got %d", len(out))
		case out[0].Err != nil:
			res.Error = out[0].Err.Error()
		default:
			res.Got = out[0].Answer
			res.Success = res.Got == task.Want
			if !res.Success {
				res.Error = fmt.Sprintf("answer changed: want %q, got %q", task.Want, res.Got)
			}
		}

		res.DurationMs = time.Since(start).Milliseconds()
		results = append(results, res)
	}
	return results, nil
}

// Passed reports whether every result succeeded.
func Passed(results []Result) bool {
	for _, r := range results {
		if !r.Success {
			return false
		}
	}
	return true
}

// DefaultBatteryPath is where `advent check` looks for expected answers.
const DefaultBatteryPath = "answers.yaml"
