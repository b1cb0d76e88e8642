// Package checkpoint runs the rule matrix for a named pipeline stage over
// a batch of units and aggregates the results into a Report.
package checkpoint

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os/exec"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/pthm/scenariolint/internal/config"
	"github.com/pthm/scenariolint/internal/enrichment"
	"github.com/pthm/scenariolint/internal/logger"
	"github.com/pthm/scenariolint/internal/model"
	"github.com/pthm/scenariolint/internal/rules"
)

// ErrUnknownCheckpoint is returned for a checkpoint name with no plan.
var ErrUnknownCheckpoint = errors.New("unknown checkpoint")

// Rule names for findings raised by the orchestrator itself.
const (
	RuleUniqueIDs     = "unique-ids"
	RuleExternalCheck = "external-check"
	RuleEnrichment    = "enrichment-read"
)

// Progress receives per-unit progress while a checkpoint runs.
type Progress interface {
	Start(checkpoint string, units int)
	UnitDone()
}

// Orchestrator runs checkpoints with a fixed configuration.
type Orchestrator struct {
	cfg      *config.Config
	registry *rules.Registry
	log      *logger.Logger
	progress Progress
	strict   bool
}

// Option configures an Orchestrator.
type Option func(*Orchestrator)

func WithLogger(log *logger.Logger) Option {
	return func(o *Orchestrator) { o.log = log }
}

func WithProgress(p Progress) Option {
	return func(o *Orchestrator) { o.progress = p }
}

// WithStrict adds the naturalness check to pre-merge.
func WithStrict(strict bool) Option {
	return func(o *Orchestrator) { o.strict = strict }
}

// New creates an orchestrator. A nil registry means rules.DefaultRegistry.
func New(cfg *config.Config, registry *rules.Registry, opts ...Option) *Orchestrator {
	if registry == nil {
		registry = rules.DefaultRegistry()
	}
	o := &Orchestrator{cfg: cfg, registry: registry, log: logger.Nop()}
	for _, opt := range opts {
		opt(o)
	}
	return o
}

// Strict reports whether naturalness checks run at pre-merge.
func (o *Orchestrator) Strict() bool {
	return o.strict || o.cfg.Naturalness.Enabled
}

// Run checks every unit against the named checkpoint's rules. Findings,
// including boundary failures, are reported in the Report; the error is
// non-nil only when the checkpoint is unknown.
func (o *Orchestrator) Run(ctx context.Context, name string, units []model.ContentUnit) (*Report, error) {
	names, err := Plan(name, o.Strict())
	if err != nil {
		return nil, err
	}
	selected, err := o.registry.Select(names...)
	if err != nil {
		return nil, fmt.Errorf("checkpoint %s: %w", name, err)
	}

	start := time.Now()
	report := &Report{
		RunID:      uuid.NewString(),
		Checkpoint: name,
		Rules:      names,
	}
	workers := o.workers(len(units))
	log := o.log.With("run_id", report.RunID, "checkpoint", name)
	log.Info("checkpoint started", "units", len(units), "rules", len(selected), "workers", workers)

	report.General.Merge(duplicateIDs(units))
	report.Units = o.checkUnits(name, units, selected, workers)

	if name == PreMerge && len(o.cfg.Checkpoints.PreMerge.Command) > 0 {
		report.General.Merge(o.runExternal(ctx, log))
	}

	report.Duration = time.Since(start)
	agg := report.Aggregate()
	log.Info("checkpoint finished",
		"valid", report.Valid(),
		"errors", len(agg.Errors),
		"warnings", len(agg.Warnings),
		"duration", report.Duration,
	)
	return report, nil
}

func (o *Orchestrator) workers(n int) int {
	w := o.cfg.Workers
	if w < 1 {
		w = 1
	}
	if n > 0 && w > n {
		w = n
	}
	return w
}

// checkUnits maps the rules over the batch. Each goroutine writes only its
// own slot, so results come back in corpus order without re-sorting.
func (o *Orchestrator) checkUnits(name string, units []model.ContentUnit, selected []rules.Rule, workers int) []UnitResult {
	if o.progress != nil {
		o.progress.Start(name, len(units))
	}

	results := make([]UnitResult, len(units))
	var g errgroup.Group
	g.SetLimit(workers)
	for i := range units {
		g.Go(func() error {
			results[i] = o.checkUnit(&units[i], selected)
			if o.progress != nil {
				o.progress.UnitDone()
			}
			return nil
		})
	}
	_ = g.Wait() // workers never fail; findings are values
	return results
}

func (o *Orchestrator) checkUnit(u *model.ContentUnit, selected []rules.Rule) UnitResult {
	ctx := rules.NewUnitContext(u, o.cfg)
	results := make([]rules.Result, 0, len(selected))
	for _, rule := range selected {
		results = append(results, rule.Check(ctx))
	}
	return UnitResult{
		UnitID: u.ID,
		Topic:  u.Topic,
		Schema: ctx.Schema.Generation.String(),
		Result: rules.Aggregate(results...),
	}
}

// duplicateIDs reports each identifier used by more than one unit once.
func duplicateIDs(units []model.ContentUnit) rules.Result {
	positions := make(map[string][]int)
	var order []string
	for i, u := range units {
		if u.ID == "" {
			continue
		}
		if _, seen := positions[u.ID]; !seen {
			order = append(order, u.ID)
		}
		positions[u.ID] = append(positions[u.ID], i+1)
	}

	var res rules.Result
	for _, id := range order {
		pos := positions[id]
		if len(pos) < 2 {
			continue
		}
		idx := make([]string, len(pos))
		for i, p := range pos {
			idx[i] = fmt.Sprint(p)
		}
		res.Add(rules.Issue{
			Rule:     RuleUniqueIDs,
			Severity: rules.Error,
			Message:  fmt.Sprintf("identifier %q is used by %d units (positions %s)", id, len(pos), strings.Join(idx, ", ")),
			UnitID:   id,
			Field:    "id",
		})
	}
	return res
}

// runExternal runs the configured pre-merge command. Any failure is a
// single error for the checkpoint.
func (o *Orchestrator) runExternal(ctx context.Context, log *logger.Logger) rules.Result {
	pm := o.cfg.Checkpoints.PreMerge
	timeout := pm.Timeout
	if timeout <= 0 {
		timeout = 2 * time.Minute
	}
	cmdCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(cmdCtx, pm.Command[0], pm.Command[1:]...)
	cmd.Dir = pm.Dir
	var stderr bytes.Buffer
	cmd.Stdout = &stderr
	cmd.Stderr = &stderr

	display := strings.Join(pm.Command, " ")
	log.Debug("running external check", "command", display, "timeout", timeout)

	var res rules.Result
	err := cmd.Run()
	if err == nil {
		return res
	}

	msg := fmt.Sprintf("external check %q failed: %v", display, err)
	if errors.Is(cmdCtx.Err(), context.DeadlineExceeded) {
		msg = fmt.Sprintf("external check %q timed out after %s", display, timeout)
	}
	log.Warn("external check failed", "command", display, "error", err)
	res.Add(rules.Issue{
		Rule:     RuleExternalCheck,
		Severity: rules.Error,
		Message:  msg,
		Context:  lastLines(stderr.String(), 10),
	})
	return res
}

func lastLines(s string, n int) string {
	lines := strings.Split(strings.TrimRight(s, "\n"), "\n")
	if len(lines) > n {
		lines = lines[len(lines)-n:]
	}
	return strings.Join(lines, "\n")
}

// RunPipeline runs checkpoints in order and stops after the first report
// with errors. No names means every checkpoint in Order.
func (o *Orchestrator) RunPipeline(ctx context.Context, names []string, units []model.ContentUnit) ([]*Report, error) {
	if len(names) == 0 {
		names = Order
	}
	for _, name := range names {
		if _, err := Plan(name, false); err != nil {
			return nil, err
		}
	}

	var reports []*Report
	for _, name := range names {
		report, err := o.Run(ctx, name, units)
		if err != nil {
			return reports, err
		}
		reports = append(reports, report)
		if !report.Valid() {
			o.log.Warn("pipeline halted", "checkpoint", name)
			break
		}
	}
	return reports, nil
}

// ValidateEnrichment reads and validates an enrichment file against the
// corpus. A read failure is a single error in General.
func (o *Orchestrator) ValidateEnrichment(ctx context.Context, path string, corpus enrichment.Corpus) (*Report, error) {
	start := time.Now()
	report := &Report{RunID: uuid.NewString(), Checkpoint: "enrichment"}
	log := o.log.With("run_id", report.RunID, "file", path)

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := enrichment.ParseFile(path)
	if err != nil {
		log.Warn("enrichment file unreadable", "error", err)
		report.General.Add(rules.Issue{
			Rule:     RuleEnrichment,
			Severity: rules.Error,
			Message:  err.Error(),
		})
		report.Duration = time.Since(start)
		return report, nil
	}
	log.Info("enrichment file parsed", "sections", len(f.Sections), "parse_errors", len(f.Errors))

	res := enrichment.Validate(f, corpus, o.cfg)
	report.General, report.Units = splitBySection(f, corpus, res)
	report.Duration = time.Since(start)
	return report, nil
}

// splitBySection files findings under their section's unit, keeping section
// order; findings for no section stay general.
func splitBySection(f *enrichment.File, corpus enrichment.Corpus, res rules.Result) (rules.Result, []UnitResult) {
	index := make(map[string]int)
	var units []UnitResult
	for _, s := range f.Sections {
		if _, ok := index[s.ID]; ok {
			continue
		}
		topic := s.Title
		if u, ok := corpus.Unit(s.ID); ok && u.Topic != "" {
			topic = u.Topic
		}
		index[s.ID] = len(units)
		units = append(units, UnitResult{UnitID: s.ID, Topic: topic})
	}

	var general rules.Result
	for _, issue := range res.Issues() {
		i, ok := index[issue.UnitID]
		if !ok {
			general.Add(issue)
			continue
		}
		units[i].Result.Add(issue)
	}
	return general, units
}
