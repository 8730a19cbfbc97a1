package synth

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"time"

	"github.com/katalvlaran/fcafm/configuration"
	"github.com/katalvlaran/fcafm/converters"
	"github.com/katalvlaran/fcafm/fm"
	"github.com/katalvlaran/fcafm/hierarchy"
	"github.com/katalvlaran/fcafm/poset"
	"github.com/katalvlaran/fcafm/settings"
	"github.com/katalvlaran/fcafm/uvl"
)

// ErrOutputExists indicates an output file that would be overwritten
// without Force.
var ErrOutputExists = errors.New("synth: output file exists")

// Phase names used in logs and metrics.
const (
	PhaseLoad      = "load"
	PhasePoset     = "poset"
	PhaseHierarchy = "hierarchy"
	PhaseModel     = "model"
	PhaseWrite     = "write"
)

// Result carries every intermediate product of one run.
type Result struct {
	Set   *configuration.Set
	Poset *poset.Poset
	Tree  *hierarchy.Tree
	Model *fm.Model
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Panics on nil.
func WithLogger(l *slog.Logger) Option {
	if l == nil {
		panic("synth: WithLogger(nil)")
	}
	return func(r *Runner) { r.log = l }
}

// WithMetrics records every run into m.
func WithMetrics(m *Metrics) Option {
	return func(r *Runner) { r.metrics = m }
}

// WithStdout sets the writer used when no output file is configured.
// Panics on nil.
func WithStdout(w io.Writer) Option {
	if w == nil {
		panic("synth: WithStdout(nil)")
	}
	return func(r *Runner) { r.stdout = w }
}

// Runner executes synthesis runs. A Runner is not safe for concurrent use.
type Runner struct {
	log     *slog.Logger
	metrics *Metrics
	stdout  io.Writer
}

// New returns a Runner with a discarding logger, no metrics and os.Stdout.
func New(opts ...Option) *Runner {
	r := &Runner{
		log:    slog.New(slog.NewTextHandler(io.Discard, nil)),
		stdout: os.Stdout,
	}
	for _, opt := range opts {
		opt(r)
	}

	return r
}

// Run loads s.Input, synthesizes the model and writes every configured
// output.
//
// Steps:
//  1. Validate s; refuse to overwrite existing outputs unless s.Force.
//  2. Load configurations (directory: concurrent, sorted by ID).
//  3. Synthesize.
//  4. Write the model (s.Output or stdout), then the DOT poset.
//  5. Write metrics when s.MetricsFile is set.
func (r *Runner) Run(ctx context.Context, s settings.Settings) (res *Result, err error) {
	metrics := r.metrics
	if metrics == nil && s.MetricsFile != "" {
		if metrics, err = NewMetrics(); err != nil {
			return nil, fmt.Errorf("Run: metrics: %w", err)
		}
	}
	defer func() {
		metrics.recordRun(err)
		if s.MetricsFile == "" {
			return
		}
		if werr := metrics.WriteFile(s.MetricsFile); werr != nil && err == nil {
			err = fmt.Errorf("Run: metrics: %w", werr)
		}
	}()

	// 1. Settings and overwrite protection
	if err = s.Validate(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	for _, path := range []string{s.Output, s.ACPoset} {
		if err = checkWritable(path, s.Force); err != nil {
			return nil, fmt.Errorf("Run: %w", err)
		}
	}

	// 2. Load
	start := time.Now()
	configs, err := load(ctx, s.Input, s.Workers)
	if err != nil {
		return nil, fmt.Errorf("Run: %s: %w", PhaseLoad, err)
	}
	set, err := configuration.NewSet(s.Root, configs)
	if err != nil {
		return nil, fmt.Errorf("Run: %s: %w", PhaseLoad, err)
	}
	r.phase(metrics, PhaseLoad, start, "configurations", set.Len(), "features", len(set.Features))

	// 3. Synthesize
	if err = ctx.Err(); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}
	if res, err = r.synthesize(metrics, set, s); err != nil {
		return nil, fmt.Errorf("Run: %w", err)
	}

	// 4. Outputs
	start = time.Now()
	if err = r.writeModel(s, res.Model); err != nil {
		return nil, fmt.Errorf("Run: %s: %w", PhaseWrite, err)
	}
	if s.ACPoset != "" {
		err = writeFile(s.ACPoset, func(w io.Writer) error {
			return converters.WriteDOT(w, res.Poset, converters.WithTree(res.Tree))
		})
		if err != nil {
			return nil, fmt.Errorf("Run: %s: %w", PhaseWrite, err)
		}
	}
	r.phase(metrics, PhaseWrite, start, "output", s.Output, "ac_poset", s.ACPoset)

	st := res.Model.Stats
	r.log.Info("synthesized feature model",
		"root", s.Root,
		"configurations", set.Len(),
		"concepts", st.Concepts,
		"cross_tree_edges", st.CrossTreeEdges,
		"implies", st.ImpliesConstraints,
		"excludes", st.ExclusiveConstraints,
		"abstract", st.AbstractFeatures,
		"fallback_nodes", st.FallbackNodes,
	)

	return res, nil
}

// Synthesize runs the in-memory pipeline on an already loaded set.
func (r *Runner) Synthesize(set *configuration.Set, s settings.Settings) (*Result, error) {
	if err := s.Validate(); err != nil {
		return nil, fmt.Errorf("Synthesize: %w", err)
	}
	res, err := r.synthesize(r.metrics, set, s)
	r.metrics.recordRun(err)
	if err != nil {
		return nil, fmt.Errorf("Synthesize: %w", err)
	}

	return res, nil
}

func (r *Runner) synthesize(metrics *Metrics, set *configuration.Set, s settings.Settings) (*Result, error) {
	// 1. AC-poset
	start := time.Now()
	p, err := poset.Build(set)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PhasePoset, err)
	}
	r.phase(metrics, PhasePoset, start, "concepts", len(p.Concepts), "edges", p.Graph.EdgeCount())

	// 2. Tree
	start = time.Now()
	sel, err := hierarchy.ByName(s.Selector, s.Seed)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PhaseHierarchy, err)
	}
	tree, err := sel.Select(p)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PhaseHierarchy, err)
	}
	r.phase(metrics, PhaseHierarchy, start, "selector", s.Selector)

	// 3. Feature model
	start = time.Now()
	policy, err := fm.ParseEmptyAssignment(s.EmptyAssignment)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PhaseModel, err)
	}
	model, err := fm.Build(p, tree,
		fm.WithMaxExactChildren(s.MaxExactChildren),
		fm.WithEmptyAssignment(policy),
	)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", PhaseModel, err)
	}
	if model.Stats.FallbackNodes > 0 {
		r.log.Debug("child-count cap reached, used mandatory/optional fallback",
			"nodes", model.Stats.FallbackNodes, "cap", s.MaxExactChildren)
	}
	r.phase(metrics, PhaseModel, start, "exact_nodes", model.Stats.ExactNodes)
	metrics.recordModel(set.Len(), model.Stats)

	return &Result{Set: set, Poset: p, Tree: tree, Model: model}, nil
}

func (r *Runner) writeModel(s settings.Settings, m *fm.Model) error {
	var opts []uvl.Option
	if s.Estimates {
		opts = append(opts, uvl.WithEstimates())
	}
	if s.Output == "" {
		return uvl.Write(r.stdout, m, opts...)
	}

	return writeFile(s.Output, func(w io.Writer) error { return uvl.Write(w, m, opts...) })
}

func (r *Runner) phase(metrics *Metrics, name string, start time.Time, attrs ...any) {
	d := time.Since(start)
	metrics.observePhase(name, d)
	r.log.Debug("phase done", append([]any{"phase", name, "duration", d}, attrs...)...)
}

// load reads a directory concurrently or a single file in order.
func load(ctx context.Context, path string, workers int) ([]configuration.Configuration, error) {
	info, err := os.Stat(path)
	if err != nil {
		return nil, err
	}
	if info.IsDir() {
		return configuration.LoadDir(ctx, path, workers)
	}

	return configuration.LoadFile(path)
}

func checkWritable(path string, force bool) error {
	if path == "" || force {
		return nil
	}
	if _, err := os.Stat(path); err == nil {
		return fmt.Errorf("%s: %w", path, ErrOutputExists)
	}

	return nil
}

func writeFile(path string, write func(io.Writer) error) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	if err = write(f); err != nil {
		f.Close()
		return err
	}

	return f.Close()
}
