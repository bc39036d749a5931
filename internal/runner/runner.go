// Package runner loads puzzle inputs, runs solvers, and records answers.
package runner

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"advent/internal/logging"
	"advent/internal/puzzle"
	"advent/internal/store"
)

// Source selects which input directory a run reads from.
type Source string

const (
	SourceInput   Source = "input"
	SourceExample Source = "example"
)

// SlowThreshold is the solve time above which a run is logged as slow.
const SlowThreshold = time.Second

// Result is the outcome of running one part of one day.
type Result struct {
	RunID   string
	Day     int
	Part    puzzle.Part
	Title   string
	Answer  string
	Err     error
	Elapsed time.Duration
	Source  Source
}

// Recorder persists results. *store.Store implements it.
type Recorder interface {
	Record(ctx context.Context, e store.Entry) error
}

// Runner runs solvers from a registry.
type Runner struct {
	registry    *puzzle.Registry
	inputsDir   string
	examplesDir string
	logger      *zap.Logger
	recorder    Recorder
	workers     int
	timeout     time.Duration
}

// Option configures a Runner.
type Option func(*Runner)

// WithInputs sets the directories holding real and example inputs.
func WithInputs(inputsDir, examplesDir string) Option {
	return func(r *Runner) {
		r.inputsDir = inputsDir
		r.examplesDir = examplesDir
	}
}

// WithLogger sets the logger.
func WithLogger(l *zap.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.logger = l
		}
	}
}

// WithRecorder records every result to rec.
func WithRecorder(rec Recorder) Option {
	return func(r *Runner) { r.recorder = rec }
}

// WithWorkers bounds how many days SolveAll runs at once.
func WithWorkers(n int) Option {
	return func(r *Runner) {
		if n > 0 {
			r.workers = n
		}
	}
}

// WithTimeout bounds each part. Zero disables the limit.
func WithTimeout(d time.Duration) Option {
	return func(r *Runner) { r.timeout = d }
}

// New returns a Runner over reg.
func New(reg *puzzle.Registry, opts ...Option) *Runner {
	r := &Runner{
		registry:    reg,
		inputsDir:   "inputs",
		examplesDir: "examples",
		logger:      zap.NewNop(),
		workers:     1,
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

func (r *Runner) dir(source Source) string {
	if source == SourceExample {
		return r.examplesDir
	}
	return r.inputsDir
}

// Solve runs the given parts of day. An unknown day or unreadable input is
// returned as an error; a failing part is reported in its Result.
func (r *Runner) Solve(ctx context.Context, day int, parts []puzzle.Part, source Source) ([]Result, error) {
	solver, ok := r.registry.Lookup(day)
	if !ok {
		return nil, fmt.Errorf("day %d is not solved yet", day)
	}
	input, err := puzzle.ReadInput(r.dir(source), day)
	if err != nil {
		return nil, err
	}

	results := make([]Result, 0, len(parts))
	for _, part := range parts {
		if err := ctx.Err(); err != nil {
			return results, err
		}
		res := r.solvePart(ctx, solver, part, input)
		res.Source = source
		r.record(ctx, res)
		results = append(results, res)
	}
	return results, nil
}

func (r *Runner) solvePart(ctx context.Context, solver puzzle.Solver, part puzzle.Part, input string) Result {
	res := Result{
		RunID: uuid.NewString(),
		Day:   solver.Day(),
		Part:  part,
		Title: solver.Title(),
	}
	log := r.logger.With(zap.Int("day", res.Day), zap.Int("part", int(part)), zap.String("run_id", res.RunID))

	if r.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, r.timeout)
		defer cancel()
	}

	type outcome struct {
		answer string
		err    error
	}
	done := make(chan outcome, 1)
	timer := logging.StartTimer(log, "solve")
	go func() {
		defer func() {
			if p := recover(); p != nil {
				log.Error("PANIC RECOVERED in solver", zap.Any("panic", p))
				done <- outcome{err: fmt.Errorf("day %d part %d panicked: %v", res.Day, part, p)}
			}
		}()
		answer, err := puzzle.Solve(solver, part, input)
		done <- outcome{answer, err}
	}()

	select {
	case out := <-done:
		res.Answer, res.Err = out.answer, out.err
	case <-ctx.Done():
		res.Err = fmt.Errorf("day %d part %d abandoned: %w", res.Day, part, ctx.Err())
	}
	res.Elapsed = timer.StopWithThreshold(SlowThreshold)

	if res.Err != nil {
		log.Warn("Part failed", zap.Error(res.Err))
	} else {
		log.Info("Part solved", zap.String("answer", res.Answer), zap.Duration("elapsed", res.Elapsed))
	}
	return res
}

func (r *Runner) record(ctx context.Context, res Result) {
	if r.recorder == nil {
		return
	}
	e := store.Entry{
		ID:      res.RunID,
		Day:     res.Day,
		Part:    int(res.Part),
		Answer:  res.Answer,
		Elapsed: res.Elapsed,
		Source:  string(res.Source),
	}
	if res.Err != nil {
		e.Error = res.Err.Error()
	}
	// Recording is best effort; the answer is still returned.
	if err := r.recorder.Record(context.WithoutCancel(ctx), e); err != nil {
		r.logger.Warn("Failed to record run", zap.String("run_id", res.RunID), zap.Error(err))
	}
}

// SolveAll runs both parts of every listed day, or every registered day
// when days is empty, using up to the configured number of workers.
// Failures for one day are reported in that day's results and do not stop
// the others. Results come back in day order.
func (r *Runner) SolveAll(ctx context.Context, days []int, source Source) ([]Result, error) {
	if len(days) == 0 {
		days = r.registry.Days()
	}

	perDay := make([][]Result, len(days))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(r.workers)

	r.logger.Debug("Scheduling days", zap.Ints("days", days), zap.Int("workers", r.workers))
	for i, day := range days {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			res, err := r.Solve(gctx, day, puzzle.Parts, source)
			if err != nil && gctx.Err() == nil {
				res = failedDay(day, err, source)
			}
			perDay[i] = res
			return nil
		})
	}
	_ = g.Wait()

	var out []Result
	for _, res := range perDay {
		out = append(out, res...)
	}
	return out, ctx.Err()
}

func failedDay(day int, err error, source Source) []Result {
	out := make([]Result, 0, len(puzzle.Parts))
	for _, part := range puzzle.Parts {
		out = append(out, Result{
			RunID:  uuid.NewString(),
			Day:    day,
			Part:   part,
			Err:    err,
			Source: source,
		})
	}
	return out
}
