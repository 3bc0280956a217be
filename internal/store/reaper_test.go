package store_test

import (
	"context"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trendlens/insight-api/internal/store"
	"github.com/trendlens/insight-api/internal/store/model"
)

var _ = Describe("reaper", func() {
	var (
		s   store.Store
		ctx context.Context
	)

	BeforeEach(func() {
		s = store.NewStore()
		ctx = context.Background()
	})

	It("evicts expired terminal jobs on its interval", func() {
		old := time.Now().Add(-time.Minute)
		job := model.Job{
			ID:          uuid.New(),
			SourceURL:   "https://www.meesho.com/x/p/1",
			Status:      model.JobStatusCompleted,
			Progress:    100,
			StartedAt:   old,
			CompletedAt: &old,
		}
		_, err := s.Job().Create(ctx, job)
		Expect(err).To(BeNil())

		runCtx, cancel := context.WithCancel(ctx)
		DeferCleanup(cancel)
		go store.NewReaper(s, time.Millisecond, 10*time.Millisecond).Run(runCtx)

		Eventually(func() error {
			_, err := s.Job().Get(ctx, job.ID)
			return err
		}).WithTimeout(2 * time.Second).Should(MatchError(store.ErrRecordNotFound))
	})

	It("leaves jobs alone when the TTL is zero", func() {
		now := time.Now()
		job := model.Job{
			ID:          uuid.New(),
			SourceURL:   "https://www.meesho.com/x/p/1",
			Status:      model.JobStatusCompleted,
			Progress:    100,
			StartedAt:   now,
			CompletedAt: &now,
		}
		_, err := s.Job().Create(ctx, job)
		Expect(err).To(BeNil())

		runCtx, cancel := context.WithCancel(ctx)
		DeferCleanup(cancel)
		go store.NewReaper(s, 0, time.Millisecond).Run(runCtx)

		Consistently(func() error {
			_, err := s.Job().Get(ctx, job.ID)
			return err
		}).WithTimeout(100 * time.Millisecond).Should(BeNil())
	})
})
