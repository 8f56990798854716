package propagate

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/databricks/databricks-jdbc/pkg/bumperrors"
	"github.com/databricks/databricks-jdbc/pkg/relver"
	"github.com/databricks/databricks-jdbc/pkg/rewrite"
)

// Propagator rewrites the release version across a project.
type Propagator struct {
	logger  *slog.Logger
	root    string
	targets []Target
	strict  bool
	dryRun  bool
}

// Option configures a [Propagator].
type Option func(*Propagator)

// WithTargets replaces [DefaultTargets].
func WithTargets(targets []Target) Option {
	return func(p *Propagator) {
		p.targets = targets
	}
}

// WithLogger sets the logger used for progress and warnings.
func WithLogger(logger *slog.Logger) Option {
	return func(p *Propagator) {
		p.logger = logger
	}
}

// WithStrict makes a target whose rule matches nothing fail the run.
func WithStrict(strict bool) Option {
	return func(p *Propagator) {
		p.strict = strict
	}
}

// WithDryRun computes every rewrite without writing any file.
func WithDryRun(dryRun bool) Option {
	return func(p *Propagator) {
		p.dryRun = dryRun
	}
}

// New returns a [Propagator] for the project rooted at root.
func New(root string, opts ...Option) *Propagator {
	p := &Propagator{
		root:    root,
		targets: DefaultTargets(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(p)
	}

	return p
}

// Report lists the per-target results of a run, in target order.
type Report struct {
	Version string
	Results []rewrite.Result
	DryRun  bool
}

// Updated returns the number of targets whose content changed.
func (r *Report) Updated() int {
	n := 0

	for _, res := range r.Results {
		if res.Changed {
			n++
		}
	}

	return n
}

// Unmatched returns the results of targets whose rule matched nothing.
func (r *Report) Unmatched() []rewrite.Result {
	var out []rewrite.Result

	for _, res := range r.Results {
		if !res.Matched() {
			out = append(out, res)
		}
	}

	return out
}

// Run validates version and applies it to every target in order. It stops at
// the first failure and returns the results gathered so far with the error.
func (p *Propagator) Run(ctx context.Context, version string) (*Report, error) {
	report := &Report{Version: version, DryRun: p.dryRun}

	if err := relver.Check(version); err != nil {
		return report, err
	}

	// Numbers too large to compare disable the downgrade check.
	next, parseErr := relver.Parse(version)
	if parseErr != nil {
		p.logger.Debug("version cannot be compared", slog.String("version", version), slog.Any("err", parseErr))
	}

	for _, t := range p.targets {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%s: %w", t.Name, err)
		}

		path := t.resolve(p.root)
		log := p.logger.With(slog.String("target", t.Name), slog.String("path", path))

		res, err := rewrite.File.Rewrite(path, t.Rule, version, p.dryRun)
		if err != nil {
			return report, fmt.Errorf("%s: %w", t.Name, err)
		}

		report.Results = append(report.Results, res)

		if !res.Matched() {
			if p.strict {
				return report, fmt.Errorf("%s: %w in %q: %s", t.Name, bumperrors.ErrNoMatch, path, t.Rule)
			}

			log.Warn("version was not updated, please check the file content", slog.String("rule", t.Rule.Name))

			continue
		}

		if parseErr == nil {
			warnOnDowngrade(log, res.Previous, next)
		}

		switch {
		case !res.Changed:
			log.Info("version already up to date", slog.String("version", version))
		case p.dryRun:
			log.Info("would update version", slog.String("from", res.Previous), slog.String("to", version))
		default:
			log.Info("updated version", slog.String("from", res.Previous), slog.String("to", version))
		}
	}

	return report, nil
}

// Current returns the version each target carries, without modifying
// anything. Targets whose rule matches nothing have an empty Previous.
func (p *Propagator) Current(ctx context.Context) (*Report, error) {
	report := &Report{DryRun: true}

	for _, t := range p.targets {
		if err := ctx.Err(); err != nil {
			return report, fmt.Errorf("%s: %w", t.Name, err)
		}

		path := t.resolve(p.root)

		v, ok, err := rewrite.File.Find(path, t.Rule)
		if err != nil {
			return report, fmt.Errorf("%s: %w", t.Name, err)
		}

		res := rewrite.Result{Path: path, Rule: t.Rule.Name, Previous: v}
		if ok {
			res.Replacements = 1
		}

		report.Results = append(report.Results, res)
	}

	return report, nil
}

// warnOnDowngrade warns when the new version sorts before the one it
// replaces. Previous values that are not release versions, such as the
// "0.0.0" placeholder in tests, are ignored.
func warnOnDowngrade(log *slog.Logger, previous string, next relver.Version) {
	prev, err := relver.Parse(previous)
	if err != nil {
		return
	}

	if next.LessThan(prev) {
		log.Warn("new version is lower than the current one",
			slog.String("from", prev.String()),
			slog.String("to", next.String()),
		)
	}
}
