package app

import (
	"context"
	"fmt"
	"time"

	"goscore/adapters/chainfile"
	"goscore/domain/core"
	"goscore/domain/dataset"
	"goscore/domain/scoring"
	"goscore/internal"
	"goscore/internal/chain"
	"goscore/internal/errors"
	"goscore/internal/filter"
	"goscore/internal/profiling"
	"goscore/ports"

	"golang.org/x/sync/errgroup"
)

// ScoringService loads datasets, evaluates presets against them and writes
// the materialized result
type ScoringService struct {
	reader   ports.TableReader
	writer   ports.TableWriter
	profiler *profiling.ColumnProfiler
	workers  int
	logger   *internal.Logger
}

// NewScoringService creates a scoring service. workers bounds how many presets
// are evaluated at once.
func NewScoringService(reader ports.TableReader, writer ports.TableWriter, profiler *profiling.ColumnProfiler, workers int) *ScoringService {
	if workers < 1 {
		workers = 1
	}
	return &ScoringService{
		reader:   reader,
		writer:   writer,
		profiler: profiler,
		workers:  workers,
		logger:   internal.DefaultLogger.With("ScoringService"),
	}
}

// LoadRequest names the dataset and its optional summary file
type LoadRequest struct {
	DataFile    string
	SummaryFile string
}

// ScoreRequest describes a full score run from files to an output file
type ScoreRequest struct {
	LoadRequest
	PresetFile string
	OutputFile string
}

// PresetRun is the outcome of evaluating one preset
type PresetRun struct {
	RunID    core.RunID     `json:"run_id"`
	Preset   scoring.Preset `json:"preset"`
	Result   chain.Result   `json:"result"`
	Duration time.Duration  `json:"duration"`
}

// LoadTable reads the dataset, applies the summary file and profiles what is
// still undeclared
func (s *ScoringService) LoadTable(ctx context.Context, req LoadRequest) (*dataset.Table, error) {
	table, err := s.reader.ReadTable(ctx, req.DataFile)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load dataset %s", req.DataFile)
	}

	if req.SummaryFile != "" {
		summary, err := s.reader.ReadSummary(ctx, req.SummaryFile)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to load summary %s", req.SummaryFile)
		}
		for _, key := range table.ApplySummary(summary) {
			s.logger.Warn("Summary column %s not found in dataset, ignoring", key)
		}
	}

	s.profiler.ProfileTable(table)
	return table, nil
}

// LoadPresets reads a preset file, resolving columns against table
func (s *ScoringService) LoadPresets(path string, table *dataset.Table) ([]scoring.Preset, error) {
	presets, err := chainfile.ReadFile(path, table)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to load presets %s", path)
	}
	return presets, nil
}

// PreparePreset repairs then validates a preset's chain. The returned preset
// carries the accepted configs.
func (s *ScoringService) PreparePreset(preset scoring.Preset) (scoring.Preset, error) {
	validated, err := chain.ValidateChain(chain.EnsureChain(preset.Chain))
	if err != nil {
		return preset, errors.Wrapf(err, "preset %q", preset.Name)
	}
	preset.Chain = validated
	return preset, nil
}

// ScorePresets evaluates every preset against table and appends each result
// as a column named after the preset. Presets are prepared up front so one bad
// preset fails the run before any column is written.
func (s *ScoringService) ScorePresets(ctx context.Context, table *dataset.Table, presets []scoring.Preset) ([]PresetRun, error) {
	runs := make([]PresetRun, len(presets))
	outputs := make(map[string]bool, len(presets))
	for i, p := range presets {
		prepared, err := s.PreparePreset(p)
		if err != nil {
			return nil, err
		}
		out := prepared.OutputColumn()
		if out == "" {
			return nil, errors.ValidationError(fmt.Sprintf("preset %s has no output column", prepared.ID))
		}
		if outputs[out] {
			return nil, errors.ValidationError(fmt.Sprintf("output column %q is produced by more than one preset", out))
		}
		outputs[out] = true
		runs[i] = PresetRun{RunID: core.NewRunID(), Preset: prepared}
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(s.workers)
	for i := range runs {
		run := &runs[i]
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			start := time.Now()
			run.Result = chain.EvaluateChain(table.Rows, run.Preset.Chain)
			run.Duration = time.Since(start)

			s.logger.Info("Run %s evaluated %q over %d rows in %.2fms",
				run.RunID, run.Preset.Name, len(table.Rows), float64(run.Duration.Nanoseconds())/1e6)
			for _, d := range run.Result.Diagnostics {
				for _, w := range d.Warnings {
					s.logger.Warn("Run %s: %s on %s: %s", run.RunID, d.Method, d.Column, w)
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	for _, run := range runs {
		table.AppendColumn(dataset.Column{
			Key:         run.Preset.OutputColumn(),
			Type:        dataset.TypeNumeric,
			Description: run.Preset.Name,
		}, run.Result.Result)
	}
	return runs, nil
}

// Score runs a complete request: load, score, write
func (s *ScoringService) Score(ctx context.Context, req ScoreRequest) ([]PresetRun, error) {
	table, err := s.LoadTable(ctx, req.LoadRequest)
	if err != nil {
		return nil, err
	}
	presets, err := s.LoadPresets(req.PresetFile, table)
	if err != nil {
		return nil, err
	}
	runs, err := s.ScorePresets(ctx, table, presets)
	if err != nil {
		return nil, err
	}
	if err := s.writer.WriteTable(ctx, req.OutputFile, table); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", req.OutputFile)
	}
	s.logger.Info("Wrote %d scored columns to %s", len(runs), req.OutputFile)
	return runs, nil
}

// FilterTable returns a copy of table holding only the rows every filter accepts
func (s *ScoringService) FilterTable(table *dataset.Table, filters []filter.Filter) (*dataset.Table, error) {
	rows, err := filter.Apply(table.Rows, filters)
	if err != nil {
		return nil, err
	}
	s.logger.Info("Filters kept %d of %d rows", len(rows), len(table.Rows))
	return &dataset.Table{
		Columns: append([]dataset.Column(nil), table.Columns...),
		Rows:    rows,
	}, nil
}

// Filter loads a dataset, applies filter expressions and writes the kept rows
func (s *ScoringService) Filter(ctx context.Context, load LoadRequest, expressions []string, outputFile string) (*dataset.Table, error) {
	table, err := s.LoadTable(ctx, load)
	if err != nil {
		return nil, err
	}

	filters := make([]filter.Filter, 0, len(expressions))
	for _, expr := range expressions {
		f, err := filter.ParseExpression(expr, table)
		if err != nil {
			return nil, err
		}
		filters = append(filters, f)
	}

	filtered, err := s.FilterTable(table, filters)
	if err != nil {
		return nil, err
	}
	if err := s.writer.WriteTable(ctx, outputFile, filtered); err != nil {
		return nil, errors.Wrapf(err, "failed to write %s", outputFile)
	}
	return filtered, nil
}
