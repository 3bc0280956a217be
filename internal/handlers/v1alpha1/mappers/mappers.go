package mappers

import (
	"time"

	api "github.com/trendlens/insight-api/api/v1alpha1"
	"github.com/trendlens/insight-api/internal/store/model"
)

// JobToStatusReply builds the lightweight status snapshot. Results and the
// failure reason are never exposed here; the message field is all a poller
// gets to see.
func JobToStatusReply(job *model.Job) api.JobStatusReply {
	reply := api.JobStatusReply{
		Id:        job.ID.String(),
		Status:    string(job.Status),
		Progress:  job.Progress,
		Message:   job.Message,
		StartedAt: job.StartedAt.Format(time.RFC3339),
	}
	if job.CompletedAt != nil {
		completedAt := job.CompletedAt.Format(time.RFC3339)
		reply.CompletedAt = &completedAt
	}
	return reply
}

func ResultsToReply(results *model.ResultBundle) api.ResultsReply {
	return api.ResultsReply{
		Product:      results.Product,
		Reviews:      results.Reviews,
		Insights:     results.Insights,
		PriceHistory: results.PriceHistory,
		Sentiment:    results.Sentiment,
	}
}
