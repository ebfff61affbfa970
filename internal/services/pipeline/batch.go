package pipeline

import (
	"context"
	"errors"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"critiplot/internal/domain"
)

var errNotStarted = errors.New("job not started")

// Job is one input file and the directory its artifacts go to.
type Job struct {
	Input     string
	OutputDir string
}

// JobResult is the outcome of one Job. Result may be set even when Err is,
// if some targets were written.
type JobResult struct {
	Job       Job
	Validated domain.ValidatedTable
	Result    *domain.RenderResult
	Err       error
}

// Run reads, validates and renders a single job.
func (e *Engine) Run(reader domain.TableReader, job Job, theme string, formats []domain.Format) JobResult {
	out := JobResult{Job: job}
	raw, err := reader.ReadFile(job.Input)
	if err != nil {
		out.Err = err
		return out
	}
	if out.Validated, err = e.Process(raw); err != nil {
		out.Err = err
		return out
	}
	out.Result, out.Err = e.Render(out.Validated, theme, e.Targets(job.OutputDir, formats)...)
	return out
}

// Batch runs jobs with at most limit in flight. Results are in job order.
// Per-job failures are reported in JobResult.Err; the returned error is only
// set when ctx is cancelled, in which case jobs that never ran report
// "job not started".
func (e *Engine) Batch(ctx context.Context, reader domain.TableReader, jobs []Job, theme string, formats []domain.Format, limit int) ([]JobResult, error) {
	if limit < 1 {
		limit = 1
	}
	results := make([]JobResult, len(jobs))
	for i, job := range jobs {
		results[i] = JobResult{Job: job, Err: errNotStarted}
	}

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(limit)
	for i, job := range jobs {
		if err := gctx.Err(); err != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				results[i].Err = err
				return err
			}
			results[i] = e.Run(reader, job, theme, formats)
			if results[i].Err != nil {
				e.log.Warn("batch job failed", zap.String("input", job.Input), zap.Error(results[i].Err))
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return results, err
	}
	return results, ctx.Err()
}
