package store

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/trendlens/insight-api/internal/store/model"
)

type Job interface {
	Create(ctx context.Context, job model.Job) (*model.Job, error)
	Get(ctx context.Context, id uuid.UUID) (*model.Job, error)
	Update(ctx context.Context, id uuid.UUID, mutate func(*model.Job)) (*model.Job, error)
	List(ctx context.Context) ([]model.Job, error)
	DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int, error)
}

// JobStore is a process-wide registry of analysis jobs. Map membership is
// guarded by a read-write lock; every record carries its own lock so that
// read-modify-write cycles on distinct jobs never contend.
type JobStore struct {
	mu   sync.RWMutex
	jobs map[uuid.UUID]*jobEntry
}

type jobEntry struct {
	mu  sync.Mutex
	job model.Job
}

// Make sure we conform to Job interface
var _ Job = (*JobStore)(nil)

func NewJobStore() *JobStore {
	return &JobStore{jobs: make(map[uuid.UUID]*jobEntry)}
}

func (s *JobStore) Create(ctx context.Context, job model.Job) (*model.Job, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, exists := s.jobs[job.ID]; exists {
		return nil, ErrDuplicateKey
	}

	s.jobs[job.ID] = &jobEntry{job: job}
	created := job
	return &created, nil
}

func (s *JobStore) Get(ctx context.Context, id uuid.UUID) (*model.Job, error) {
	s.mu.RLock()
	entry, ok := s.jobs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrRecordNotFound
	}

	entry.mu.Lock()
	job := entry.job
	entry.mu.Unlock()
	return &job, nil
}

// Update applies mutate to a copy of the current record and swaps it in as
// a single atomic step. Readers observe either the previous or the new
// record, never a partial write.
func (s *JobStore) Update(ctx context.Context, id uuid.UUID, mutate func(*model.Job)) (*model.Job, error) {
	s.mu.RLock()
	entry, ok := s.jobs[id]
	s.mu.RUnlock()
	if !ok {
		return nil, ErrRecordNotFound
	}

	entry.mu.Lock()
	defer entry.mu.Unlock()

	job := entry.job
	mutate(&job)
	entry.job = job

	updated := job
	return &updated, nil
}

func (s *JobStore) List(ctx context.Context) ([]model.Job, error) {
	s.mu.RLock()
	entries := make([]*jobEntry, 0, len(s.jobs))
	for _, entry := range s.jobs {
		entries = append(entries, entry)
	}
	s.mu.RUnlock()

	jobs := make([]model.Job, 0, len(entries))
	for _, entry := range entries {
		entry.mu.Lock()
		jobs = append(jobs, entry.job)
		entry.mu.Unlock()
	}
	return jobs, nil
}

// DeleteTerminalBefore evicts completed and failed jobs whose terminal
// timestamp is older than cutoff. Running jobs are never touched.
func (s *JobStore) DeleteTerminalBefore(ctx context.Context, cutoff time.Time) (int, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	evicted := 0
	for id, entry := range s.jobs {
		entry.mu.Lock()
		expired := entry.job.Terminal() && entry.job.CompletedAt != nil && entry.job.CompletedAt.Before(cutoff)
		entry.mu.Unlock()
		if expired {
			delete(s.jobs, id)
			evicted++
		}
	}
	return evicted, nil
}
