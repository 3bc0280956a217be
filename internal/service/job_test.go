package service_test

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"

	"github.com/trendlens/insight-api/internal/pipeline"
	"github.com/trendlens/insight-api/internal/service"
	"github.com/trendlens/insight-api/internal/store"
	"github.com/trendlens/insight-api/internal/store/model"
)

func TestService(t *testing.T) {
	RegisterFailHandler(Fail)
	RunSpecs(t, "Service Suite")
}

var _ = Describe("job service", func() {
	var (
		s   store.Store
		srv *service.JobService
		ctx context.Context
	)

	BeforeEach(func() {
		s = store.NewStore()
		ctx = context.Background()
		runner := pipeline.NewRunner(ctx, s, pipeline.NewMockScraper(), pipeline.NewMockAnalyzer(), 2, 0)
		srv = service.NewJobService(s, runner)
	})

	waitCompleted := func(id uuid.UUID) {
		Eventually(func() model.JobStatus {
			job, err := srv.GetJobStatus(ctx, id)
			if err != nil {
				return ""
			}
			return job.Status
		}).WithTimeout(2 * time.Second).Should(Equal(model.JobStatusCompleted))
	}

	Context("create", func() {
		It("rejects a URL without the marketplace domain", func() {
			_, err := srv.CreateJob(ctx, "https://example.com/not-meesho")
			Expect(err).To(BeAssignableToTypeOf(&service.ErrInvalidInput{}))

			jobs, err := s.Job().List(ctx)
			Expect(err).To(BeNil())
			Expect(jobs).To(BeEmpty())
		})

		It("returns a resolvable pending or running job", func() {
			job, err := srv.CreateJob(ctx, "https://www.meesho.com/x/p/1")
			Expect(err).To(BeNil())
			Expect(job.ID).NotTo(Equal(uuid.Nil))

			status, err := srv.GetJobStatus(ctx, job.ID)
			Expect(err).To(BeNil())
			Expect(status.Status).To(BeElementOf(
				model.JobStatusPending,
				model.JobStatusRunning,
				model.JobStatusCompleted,
			))
		})

		It("allocates a fresh identifier per request", func() {
			first, err := srv.CreateJob(ctx, "https://www.meesho.com/x/p/1")
			Expect(err).To(BeNil())
			second, err := srv.CreateJob(ctx, "https://www.meesho.com/x/p/2")
			Expect(err).To(BeNil())
			Expect(first.ID).NotTo(Equal(second.ID))
		})
	})

	Context("status", func() {
		It("returns not found for an unknown identifier", func() {
			_, err := srv.GetJobStatus(ctx, uuid.New())
			Expect(err).To(BeAssignableToTypeOf(&service.ErrJobNotFound{}))
		})
	})

	Context("results", func() {
		It("returns not found for an unknown identifier", func() {
			_, err := srv.GetJobResults(ctx, uuid.New(), service.RangeOneMonth)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrJobNotFound{}))
		})

		It("refuses to serve results before the job completes", func() {
			// A long stage delay keeps the job from reaching completed.
			runCtx, cancel := context.WithCancel(ctx)
			DeferCleanup(cancel)
			blockedRunner := pipeline.NewRunner(runCtx, s, pipeline.NewMockScraper(), pipeline.NewMockAnalyzer(), 1, time.Hour)
			blockedSrv := service.NewJobService(s, blockedRunner)

			job, err := blockedSrv.CreateJob(ctx, "https://www.meesho.com/x/p/1")
			Expect(err).To(BeNil())

			_, err = blockedSrv.GetJobResults(ctx, job.ID, service.RangeOneMonth)
			Expect(err).To(BeAssignableToTypeOf(&service.ErrJobNotCompleted{}))
		})

		It("serves the full bundle once completed", func() {
			job, err := srv.CreateJob(ctx, "https://www.meesho.com/x/p/1")
			Expect(err).To(BeNil())
			waitCompleted(job.ID)

			results, err := srv.GetJobResults(ctx, job.ID, service.RangeLifetime)
			Expect(err).To(BeNil())
			Expect(results.PriceHistory).To(HaveLen(31))
			Expect(results.Reviews).To(HaveLen(5))
			Expect(results.Insights.EstimatedRevenue).To(Equal(372750))

			sentiment := results.Sentiment
			Expect(sentiment.Positive + sentiment.Neutral + sentiment.Negative).To(Equal(5))
		})

		It("returns identical output on repeated reads", func() {
			job, err := srv.CreateJob(ctx, "https://www.meesho.com/x/p/1")
			Expect(err).To(BeNil())
			waitCompleted(job.ID)

			first, err := srv.GetJobResults(ctx, job.ID, service.RangeOneMonth)
			Expect(err).To(BeNil())
			second, err := srv.GetJobResults(ctx, job.ID, service.RangeOneMonth)
			Expect(err).To(BeNil())
			Expect(first).To(Equal(second))
		})

		It("filters the price history per lookback window", func() {
			job, err := srv.CreateJob(ctx, "https://www.meesho.com/x/p/1")
			Expect(err).To(BeNil())
			waitCompleted(job.ID)

			life, err := srv.GetJobResults(ctx, job.ID, service.RangeLifetime)
			Expect(err).To(BeNil())
			sixMonths, err := srv.GetJobResults(ctx, job.ID, service.RangeSixMonths)
			Expect(err).To(BeNil())
			oneMonth, err := srv.GetJobResults(ctx, job.ID, service.RangeOneMonth)
			Expect(err).To(BeNil())

			Expect(life.PriceHistory).To(HaveLen(31))
			Expect(len(sixMonths.PriceHistory)).To(BeNumerically("<=", len(life.PriceHistory)))
			Expect(len(oneMonth.PriceHistory)).To(BeNumerically("<=", len(sixMonths.PriceHistory)))
			// The series only spans 30 days, so the six month window keeps everything.
			Expect(sixMonths.PriceHistory).To(HaveLen(31))
			Expect(len(oneMonth.PriceHistory)).To(BeNumerically(">=", 28))
		})

		It("does not mutate the stored bundle when projecting", func() {
			job, err := srv.CreateJob(ctx, "https://www.meesho.com/x/p/1")
			Expect(err).To(BeNil())
			waitCompleted(job.ID)

			_, err = srv.GetJobResults(ctx, job.ID, service.RangeOneMonth)
			Expect(err).To(BeNil())

			stored, err := s.Job().Get(ctx, job.ID)
			Expect(err).To(BeNil())
			Expect(stored.Results.PriceHistory).To(HaveLen(31))
		})
	})
})

var _ = Describe("range normalization", func() {
	It("accepts the known ranges", func() {
		Expect(service.NormalizeRange("1m")).To(Equal(service.RangeOneMonth))
		Expect(service.NormalizeRange("6m")).To(Equal(service.RangeSixMonths))
		Expect(service.NormalizeRange("life")).To(Equal(service.RangeLifetime))
	})

	It("falls back to one month for anything else", func() {
		Expect(service.NormalizeRange("")).To(Equal(service.RangeOneMonth))
		Expect(service.NormalizeRange("1y")).To(Equal(service.RangeOneMonth))
		Expect(service.NormalizeRange("banana")).To(Equal(service.RangeOneMonth))
	})
})
