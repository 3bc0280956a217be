package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trendlens/insight-api/internal/store"
	"github.com/trendlens/insight-api/internal/store/model"
	"github.com/trendlens/insight-api/pkg/metrics"
)

// Runner drives analysis jobs through the four-stage pipeline. Each stage
// transition is a single atomic store update; the only observable effect of
// a pipeline is the sequence of store updates for its job. A semaphore
// bounds the number of pipelines in flight.
type Runner struct {
	store      store.Store
	scraper    Scraper
	analyzer   Analyzer
	stageDelay time.Duration
	sem        chan struct{}

	// baseCtx outlives any single request. Cancelling it aborts every
	// in-flight pipeline at its next stage boundary.
	baseCtx context.Context
}

func NewRunner(ctx context.Context, s store.Store, scraper Scraper, analyzer Analyzer, workers int, stageDelay time.Duration) *Runner {
	if workers < 1 {
		workers = 1
	}
	return &Runner{
		store:      s,
		scraper:    scraper,
		analyzer:   analyzer,
		stageDelay: stageDelay,
		sem:        make(chan struct{}, workers),
		baseCtx:    ctx,
	}
}

// Dispatch starts the pipeline for a job and returns immediately. The job
// stays pending until a worker slot frees up.
func (r *Runner) Dispatch(jobID uuid.UUID, url string) {
	go func() {
		select {
		case r.sem <- struct{}{}:
		case <-r.baseCtx.Done():
			r.fail(jobID, fmt.Errorf("analysis aborted: %w", r.baseCtx.Err()))
			return
		}
		defer func() { <-r.sem }()

		metrics.IncreasePipelinesInflightMetric()
		defer metrics.DecreasePipelinesInflightMetric()

		r.run(r.baseCtx, jobID, url)
	}()
}

func (r *Runner) run(ctx context.Context, jobID uuid.UUID, url string) {
	logger := zap.S().Named("pipeline").With("job_id", jobID)

	// The runner never lets a failure escape its own boundary.
	defer func() {
		if rec := recover(); rec != nil {
			logger.Errorw("pipeline panicked", "panic", rec)
			r.fail(jobID, fmt.Errorf("internal stage failure: %v", rec))
		}
	}()

	if err := r.advance(jobID, 25, "Fetching product data..."); err != nil {
		logger.Errorw("failed to advance job", "error", err)
		return
	}
	r.simulateWork(ctx)
	if err := ctx.Err(); err != nil {
		r.fail(jobID, fmt.Errorf("analysis aborted: %w", err))
		return
	}
	product, err := r.scraper.FetchProduct(ctx, url)
	if err != nil {
		r.fail(jobID, err)
		return
	}

	if err := r.advance(jobID, 50, "Analyzing reviews..."); err != nil {
		logger.Errorw("failed to advance job", "error", err)
		return
	}
	r.simulateWork(ctx)
	if err := ctx.Err(); err != nil {
		r.fail(jobID, fmt.Errorf("analysis aborted: %w", err))
		return
	}
	reviews, err := r.scraper.FetchReviews(ctx, url)
	if err != nil {
		r.fail(jobID, err)
		return
	}

	if err := r.advance(jobID, 75, "Generating insights..."); err != nil {
		logger.Errorw("failed to advance job", "error", err)
		return
	}
	r.simulateWork(ctx)
	if err := ctx.Err(); err != nil {
		r.fail(jobID, fmt.Errorf("analysis aborted: %w", err))
		return
	}
	insights, err := r.analyzer.DeriveInsights(ctx, product, reviews)
	if err != nil {
		r.fail(jobID, err)
		return
	}

	if err := r.advance(jobID, 100, "Finalizing results..."); err != nil {
		logger.Errorw("failed to advance job", "error", err)
		return
	}

	results := &model.ResultBundle{
		Product:      product,
		Reviews:      reviews,
		Insights:     insights,
		PriceHistory: GeneratePriceHistory(time.Now()),
		Sentiment:    CalculateSentiment(reviews),
	}

	now := time.Now()
	_, err = r.store.Job().Update(context.Background(), jobID, func(job *model.Job) {
		job.Status = model.JobStatusCompleted
		job.Progress = 100
		job.Message = "Analysis complete"
		job.CompletedAt = &now
		job.Results = results
	})
	if err != nil {
		logger.Errorw("failed to complete job", "error", err)
		return
	}

	metrics.IncreaseJobsCompletedTotalMetric(string(model.JobStatusCompleted))
	logger.Infow("analysis completed", "url", url)
}

// advance records one stage transition. Earlier progress stays visible on
// failure, so the update only ever moves the job forward.
func (r *Runner) advance(jobID uuid.UUID, progress int, message string) error {
	_, err := r.store.Job().Update(context.Background(), jobID, func(job *model.Job) {
		job.Status = model.JobStatusRunning
		job.Progress = progress
		job.Message = message
	})
	return err
}

func (r *Runner) fail(jobID uuid.UUID, cause error) {
	now := time.Now()
	_, err := r.store.Job().Update(context.Background(), jobID, func(job *model.Job) {
		job.Status = model.JobStatusFailed
		job.Message = "Analysis failed"
		job.Error = cause.Error()
		job.CompletedAt = &now
	})
	if err != nil {
		zap.S().Named("pipeline").Errorw("failed to mark job failed", "job_id", jobID, "error", err)
		return
	}

	metrics.IncreaseJobsCompletedTotalMetric(string(model.JobStatusFailed))
	zap.S().Named("pipeline").Warnw("analysis failed", "job_id", jobID, "error", cause)
}

// simulateWork stands in for the latency of real scraping and inference.
func (r *Runner) simulateWork(ctx context.Context) {
	if r.stageDelay <= 0 {
		return
	}
	timer := time.NewTimer(r.stageDelay)
	defer timer.Stop()
	select {
	case <-timer.C:
	case <-ctx.Done():
	}
}
