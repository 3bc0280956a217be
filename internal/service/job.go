package service

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"go.uber.org/zap"

	"github.com/trendlens/insight-api/internal/pipeline"
	"github.com/trendlens/insight-api/internal/store"
	"github.com/trendlens/insight-api/internal/store/model"
	"github.com/trendlens/insight-api/pkg/metrics"
)

// requiredDomain is the marker a submitted product URL must carry.
const requiredDomain = "meesho.com"

type JobService struct {
	store  store.Store
	runner *pipeline.Runner
}

func NewJobService(store store.Store, runner *pipeline.Runner) *JobService {
	return &JobService{store: store, runner: runner}
}

// CreateJob validates the product URL, registers a pending job and
// dispatches the analysis pipeline. It returns before the pipeline starts
// doing any work.
func (s *JobService) CreateJob(ctx context.Context, url string) (*model.Job, error) {
	if !strings.Contains(url, requiredDomain) {
		return nil, NewErrInvalidInput("not a valid Meesho product URL")
	}

	job := model.Job{
		ID:        uuid.New(),
		SourceURL: url,
		Status:    model.JobStatusPending,
		Progress:  0,
		Message:   "Initializing analysis...",
		StartedAt: time.Now(),
	}

	created, err := s.store.Job().Create(ctx, job)
	if err != nil {
		zap.S().Named("job_service").Errorw("failed to create job", "error", err)
		return nil, err
	}

	s.runner.Dispatch(created.ID, created.SourceURL)

	metrics.IncreaseJobsCreatedTotalMetric()
	zap.S().Named("job_service").Infow("analysis job created", "job_id", created.ID, "url", url)
	return created, nil
}

// GetJobStatus returns the lightweight status snapshot of a job.
func (s *JobService) GetJobStatus(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	job, err := s.store.Job().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(id)
		}
		return nil, err
	}
	return job, nil
}

// GetJobResults returns the result bundle of a completed job with the
// price history filtered to the requested lookback window.
func (s *JobService) GetJobResults(ctx context.Context, id uuid.UUID, timeRange TimeRange) (*model.ResultBundle, error) {
	job, err := s.store.Job().Get(ctx, id)
	if err != nil {
		if errors.Is(err, store.ErrRecordNotFound) {
			return nil, NewErrJobNotFound(id)
		}
		return nil, err
	}

	if job.Status != model.JobStatusCompleted || job.Results == nil {
		return nil, NewErrJobNotCompleted(id)
	}

	projected := Project(job.Results, timeRange)
	return &projected, nil
}
